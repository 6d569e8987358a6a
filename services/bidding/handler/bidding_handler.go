//go:generate mockgen -destination=mock_service.go -package=handler marketplace-bidding/services/bidding/handler BiddingServiceInterface

package handler

import (
	"context"
	"net/http"

	bidding "marketplace-bidding/internal/biddingService"
	"marketplace-bidding/internal/inbox"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/internal/session"
	"marketplace-bidding/services/bidding/helpers"
	"marketplace-bidding/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, sess model.Session, postingID, rawAmount string) (bidding.Placement, error)
	ListBidsForPosting(ctx context.Context, sess model.Session, postingID string) ([]model.PlacedBid, error)
	ListMyBids(ctx context.Context, sess model.Session) ([]model.PlacedBid, error)
	AcceptBid(ctx context.Context, sess model.Session, placedBidID string) (bidding.Acceptance, error)
	AcceptBidByEntrepreneur(ctx context.Context, sess model.Session, entrepreneurID, postingID string) (bidding.Acceptance, error)

	ListNotifications(ctx context.Context, sess model.Session) ([]model.NotificationView, error)
	UnreadCount(ctx context.Context, sess model.Session) (int, error)
	MarkNotificationRead(ctx context.Context, sess model.Session, id string) error
	DeleteNotifications(ctx context.Context, sess model.Session, sel *inbox.Selection) (bidding.DeleteResult, error)

	CreatePosting(ctx context.Context, sess model.Session, in bidding.PostingInput) (model.BidPosting, error)
	UpdatePosting(ctx context.Context, sess model.Session, id string, changes bidding.PostingChanges) (model.BidPosting, error)
	DeletePosting(ctx context.Context, sess model.Session, id string) error
	GetPosting(ctx context.Context, id string) (model.BidPosting, error)
	ListPostings(ctx context.Context, q bidding.PostingQuery) ([]model.BidPosting, error)
	UploadPostingImage(ctx context.Context, sess model.Session, id string, data []byte) (model.BidPosting, error)

	SaveProfile(ctx context.Context, sess model.Session, in bidding.ProfileInput) (model.Profile, error)
	GetProfile(ctx context.Context, uid string) (model.Profile, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, sess model.Session, name string) (model.Category, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// currentSession returns the caller set by the session middleware. A missing
// session is left for the service to reject.
func currentSession(c *gin.Context) model.Session {
	sess, _ := session.FromGin(c)
	return sess
}

// PlaceBidHandler handles POST /postings/:posting_id/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	sess := currentSession(c)
	postingID := c.Param("posting_id")
	placement, err := h.service.PlaceBid(c.Request.Context(), sess, postingID, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{
			"posting_id": postingID,
			"user_id":    sess.UserID,
			"amount":     req.Amount,
		})
		return
	}

	resp := helpers.PlaceBidResponse{
		Bid:            helpers.NewPlacedBidResponse(placement.Bid),
		NotificationID: placement.Notification.ID,
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"placed_bid_id": placement.Bid.ID,
		"posting_id":    postingID,
		"user_id":       sess.UserID,
		"amount":        placement.Bid.Amount,
	})
}

// ListBidsForPostingHandler handles GET /postings/:posting_id/bids
func (h *BiddingHandler) ListBidsForPostingHandler(c *gin.Context) {
	sess := currentSession(c)
	postingID := c.Param("posting_id")
	bids, err := h.service.ListBidsForPosting(c.Request.Context(), sess, postingID)
	if err != nil {
		helpers.HandleServiceError(c, "ListBidsForPostingHandler", err, map[string]any{"posting_id": postingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewPlacedBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("ListBidsForPostingHandler", "bids retrieved successfully", map[string]any{
		"posting_id": postingID,
		"count":      len(bids),
	})
}

// ListMyBidsHandler handles GET /bids/mine
func (h *BiddingHandler) ListMyBidsHandler(c *gin.Context) {
	sess := currentSession(c)
	bids, err := h.service.ListMyBids(c.Request.Context(), sess)
	if err != nil {
		helpers.HandleServiceError(c, "ListMyBidsHandler", err, map[string]any{"user_id": sess.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewPlacedBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("ListMyBidsHandler", "bids retrieved successfully", map[string]any{
		"user_id": sess.UserID,
		"count":   len(bids),
	})
}

// AcceptBidHandler handles POST /bids/:bid_id/accept
func (h *BiddingHandler) AcceptBidHandler(c *gin.Context) {
	sess := currentSession(c)
	placedBidID := c.Param("bid_id")
	acc, err := h.service.AcceptBid(c.Request.Context(), sess, placedBidID)
	if err != nil {
		helpers.HandleServiceError(c, "AcceptBidHandler", err, map[string]any{
			"placed_bid_id": placedBidID,
			"user_id":       sess.UserID,
		})
		return
	}
	h.respondAccepted(c, "AcceptBidHandler", acc)
}

// AcceptBidByEntrepreneurHandler handles POST /entrepreneurs/:entrepreneur_id/accept
func (h *BiddingHandler) AcceptBidByEntrepreneurHandler(c *gin.Context) {
	sess := currentSession(c)
	entrepreneurID := c.Param("entrepreneur_id")
	postingID := c.Query("posting_id")
	acc, err := h.service.AcceptBidByEntrepreneur(c.Request.Context(), sess, entrepreneurID, postingID)
	if err != nil {
		helpers.HandleServiceError(c, "AcceptBidByEntrepreneurHandler", err, map[string]any{
			"entrepreneur_id": entrepreneurID,
			"posting_id":      postingID,
			"user_id":         sess.UserID,
		})
		return
	}
	h.respondAccepted(c, "AcceptBidByEntrepreneurHandler", acc)
}

func (h *BiddingHandler) respondAccepted(c *gin.Context, handlerName string, acc bidding.Acceptance) {
	resp := helpers.AcceptBidResponse{
		Bid:            helpers.NewPlacedBidResponse(acc.Bid),
		NotificationID: acc.Notification.ID,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "bid accepted successfully")
	helpers.LogSuccess(handlerName, "bid accepted successfully", map[string]any{
		"placed_bid_id":   acc.Bid.ID,
		"posting_id":      acc.Bid.BidID,
		"entrepreneur_id": acc.Bid.EntrepreneurID,
	})
}
