package handler

import (
	"net/http"

	"marketplace-bidding/internal/inbox"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/services/bidding/helpers"
	"marketplace-bidding/utils"

	"github.com/gin-gonic/gin"
)

// ListNotificationsHandler handles GET /notifications
func (h *BiddingHandler) ListNotificationsHandler(c *gin.Context) {
	sess := currentSession(c)
	views, err := h.service.ListNotifications(c.Request.Context(), sess)
	if err != nil {
		helpers.HandleServiceError(c, "ListNotificationsHandler", err, map[string]any{"user_id": sess.UserID})
		return
	}
	if views == nil {
		views = []model.NotificationView{}
	}

	utils.JSONResponse(c, http.StatusOK, views, "notifications retrieved successfully")
	helpers.LogSuccess("ListNotificationsHandler", "notifications retrieved successfully", map[string]any{
		"user_id": sess.UserID,
		"count":   len(views),
	})
}

// UnreadCountHandler handles GET /notifications/unread-count
func (h *BiddingHandler) UnreadCountHandler(c *gin.Context) {
	sess := currentSession(c)
	count, err := h.service.UnreadCount(c.Request.Context(), sess)
	if err != nil {
		helpers.HandleServiceError(c, "UnreadCountHandler", err, map[string]any{"user_id": sess.UserID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.UnreadCountResponse{Unread: count}, "unread count retrieved successfully")
}

// MarkNotificationReadHandler handles POST /notifications/:notification_id/read
func (h *BiddingHandler) MarkNotificationReadHandler(c *gin.Context) {
	sess := currentSession(c)
	id := c.Param("notification_id")
	if err := h.service.MarkNotificationRead(c.Request.Context(), sess, id); err != nil {
		helpers.HandleServiceError(c, "MarkNotificationReadHandler", err, map[string]any{
			"notification_id": id,
			"user_id":         sess.UserID,
		})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"id": id}, "notification marked as read")
}

// DeleteNotificationsHandler handles DELETE /notifications. The ids in the
// body form the selection to delete.
func (h *BiddingHandler) DeleteNotificationsHandler(c *gin.Context) {
	var req helpers.DeleteNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DeleteNotificationsHandler", err)
		return
	}

	sess := currentSession(c)
	result, err := h.service.DeleteNotifications(c.Request.Context(), sess, inbox.NewSelection(req.IDs...))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		if len(result.Deleted) > 0 {
			// partial success still reports what was removed
			utils.JSONPartial(c, status, helpers.ClientError(status, message, err), message, result)
			utils.Warn("DeleteNotificationsHandler: partial failure", map[string]any{
				"user_id": sess.UserID,
				"deleted": len(result.Deleted),
				"failed":  len(result.Failed),
			})
			return
		}
		helpers.HandleServiceError(c, "DeleteNotificationsHandler", err, map[string]any{"user_id": sess.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "notifications deleted successfully")
	helpers.LogSuccess("DeleteNotificationsHandler", "notifications deleted successfully", map[string]any{
		"user_id": sess.UserID,
		"count":   len(result.Deleted),
	})
}
