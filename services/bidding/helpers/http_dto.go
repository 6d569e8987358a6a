package helpers

import (
	"time"

	"marketplace-bidding/internal/amount"
	model "marketplace-bidding/internal/models"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type CreatePostingRequest struct {
	Name           string    `json:"name" binding:"required"`
	Address        string    `json:"address" binding:"required"`
	Description    string    `json:"description" binding:"required"`
	Categories     string    `json:"categories" binding:"required"`
	BidClosingTime time.Time `json:"bid_closing_time" binding:"required"`
}

type UpdatePostingRequest struct {
	Name           *string    `json:"name"`
	Address        *string    `json:"address"`
	Description    *string    `json:"description"`
	Categories     *string    `json:"categories"`
	BidClosingTime *time.Time `json:"bid_closing_time"`
}

type ListPostingsQuery struct {
	Owner    string `form:"owner"`
	Category string `form:"category"`
	Open     bool   `form:"open"`
}

type ProfileRequest struct {
	Username     string `json:"username" binding:"required"`
	PhoneNumber  string `json:"phone_number"`
	Role         string `json:"role" binding:"required,oneof=buyer entrepreneur"`
	ProfileImage string `json:"profile_image"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type DeleteNotificationsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

type PlacedBidResponse struct {
	ID             string  `json:"id"`
	PostingID      string  `json:"posting_id"`
	EntrepreneurID string  `json:"entrepreneur_id"`
	OwnerID        string  `json:"owner_id"`
	Amount         float64 `json:"amount"`
	DisplayAmount  string  `json:"display_amount"`
	Status         string  `json:"status"`
	Timestamp      string  `json:"timestamp"`
}

type PlaceBidResponse struct {
	Bid            PlacedBidResponse `json:"bid"`
	NotificationID string            `json:"notification_id"`
}

type AcceptBidResponse struct {
	Bid            PlacedBidResponse `json:"bid"`
	NotificationID string            `json:"notification_id"`
}

type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

// NewPlacedBidResponse converts a stored placed bid to its API shape
func NewPlacedBidResponse(b model.PlacedBid) PlacedBidResponse {
	return PlacedBidResponse{
		ID:             b.ID,
		PostingID:      b.BidID,
		EntrepreneurID: b.EntrepreneurID,
		OwnerID:        b.OwnerID,
		Amount:         b.Amount,
		DisplayAmount:  amount.Format(b.Amount),
		Status:         string(b.Status),
		Timestamp:      b.Timestamp.UTC().Format(time.RFC3339),
	}
}

// NewPlacedBidResponses converts a list, never returning nil
func NewPlacedBidResponses(bids []model.PlacedBid) []PlacedBidResponse {
	out := make([]PlacedBidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, NewPlacedBidResponse(b))
	}
	return out
}
