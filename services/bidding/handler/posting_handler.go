package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	bidding "marketplace-bidding/internal/biddingService"
	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/services/bidding/helpers"
	"marketplace-bidding/utils"

	"github.com/gin-gonic/gin"
)

// imageField is the multipart field carrying a posting image
const imageField = "image"

// CreatePostingHandler handles POST /postings
func (h *BiddingHandler) CreatePostingHandler(c *gin.Context) {
	var req helpers.CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreatePostingHandler", err)
		return
	}

	sess := currentSession(c)
	posting, err := h.service.CreatePosting(c.Request.Context(), sess, bidding.PostingInput{
		Name:           req.Name,
		Address:        req.Address,
		Description:    req.Description,
		Categories:     req.Categories,
		BidClosingTime: req.BidClosingTime,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreatePostingHandler", err, map[string]any{"user_id": sess.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, posting, "posting created successfully")
	helpers.LogSuccess("CreatePostingHandler", "posting created successfully", map[string]any{
		"posting_id": posting.ID,
		"user_id":    sess.UserID,
	})
}

// ListPostingsHandler handles GET /postings
func (h *BiddingHandler) ListPostingsHandler(c *gin.Context) {
	var q helpers.ListPostingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "ListPostingsHandler", err)
		return
	}

	postings, err := h.service.ListPostings(c.Request.Context(), bidding.PostingQuery{
		OwnerID:  q.Owner,
		Category: q.Category,
		OpenOnly: q.Open,
	})
	if err != nil {
		helpers.HandleServiceError(c, "ListPostingsHandler", err, nil)
		return
	}
	if postings == nil {
		postings = []model.BidPosting{}
	}

	utils.JSONResponse(c, http.StatusOK, postings, "postings retrieved successfully")
	helpers.LogSuccess("ListPostingsHandler", "postings retrieved successfully", map[string]any{"count": len(postings)})
}

// GetPostingHandler handles GET /postings/:posting_id
func (h *BiddingHandler) GetPostingHandler(c *gin.Context) {
	postingID := c.Param("posting_id")
	posting, err := h.service.GetPosting(c.Request.Context(), postingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetPostingHandler", err, map[string]any{"posting_id": postingID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, posting, "posting retrieved successfully")
}

// UpdatePostingHandler handles PATCH /postings/:posting_id
func (h *BiddingHandler) UpdatePostingHandler(c *gin.Context) {
	var req helpers.UpdatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdatePostingHandler", err)
		return
	}

	sess := currentSession(c)
	postingID := c.Param("posting_id")
	posting, err := h.service.UpdatePosting(c.Request.Context(), sess, postingID, bidding.PostingChanges{
		Name:           req.Name,
		Address:        req.Address,
		Description:    req.Description,
		Categories:     req.Categories,
		BidClosingTime: req.BidClosingTime,
	})
	if err != nil {
		helpers.HandleServiceError(c, "UpdatePostingHandler", err, map[string]any{
			"posting_id": postingID,
			"user_id":    sess.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, posting, "posting updated successfully")
	helpers.LogSuccess("UpdatePostingHandler", "posting updated successfully", map[string]any{"posting_id": postingID})
}

// DeletePostingHandler handles DELETE /postings/:posting_id
func (h *BiddingHandler) DeletePostingHandler(c *gin.Context) {
	sess := currentSession(c)
	postingID := c.Param("posting_id")
	if err := h.service.DeletePosting(c.Request.Context(), sess, postingID); err != nil {
		helpers.HandleServiceError(c, "DeletePostingHandler", err, map[string]any{
			"posting_id": postingID,
			"user_id":    sess.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"id": postingID}, "posting deleted successfully")
	helpers.LogSuccess("DeletePostingHandler", "posting deleted successfully", map[string]any{"posting_id": postingID})
}

// UploadPostingImageHandler handles PUT /postings/:posting_id/image
func (h *BiddingHandler) UploadPostingImageHandler(c *gin.Context) {
	header, err := c.FormFile(imageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.JSONError(c, http.StatusRequestEntityTooLarge, fmt.Errorf("image too large: %w", biddingerrors.ErrImageTooLarge), "image too large")
			utils.Warn("UploadPostingImageHandler: request body too large", map[string]any{"limit": tooLarge.Limit})
			return
		}
		helpers.HandleBindError(c, "UploadPostingImageHandler", err)
		return
	}

	file, err := header.Open()
	if err != nil {
		helpers.HandleBindError(c, "UploadPostingImageHandler", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		helpers.HandleBindError(c, "UploadPostingImageHandler", err)
		return
	}

	sess := currentSession(c)
	postingID := c.Param("posting_id")
	posting, err := h.service.UploadPostingImage(c.Request.Context(), sess, postingID, data)
	if err != nil {
		helpers.HandleServiceError(c, "UploadPostingImageHandler", err, map[string]any{
			"posting_id": postingID,
			"user_id":    sess.UserID,
			"bytes":      len(data),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, posting, "image uploaded successfully")
	helpers.LogSuccess("UploadPostingImageHandler", "image uploaded successfully", map[string]any{
		"posting_id": postingID,
		"path":       posting.ImagePath,
	})
}
