//go:generate mockgen -destination=mock_repository.go -package=repository marketplace-bidding/internal/repository MarketplaceDB

package repository

import (
	"context"
	"fmt"
	"time"

	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"
)

// Collection names shared by every backend
const (
	CollectionBids                      = "Bids"
	CollectionPlacedBids                = "PlacedBids"
	CollectionBuyerNotifications        = "BuyerNotifications"
	CollectionEntrepreneurNotifications = "EntrepreneurNotifications"
	CollectionUsers                     = "users"
	CollectionBuyers                    = "buyers"
	CollectionEntrepreneurs             = "entrepreneurs"
	CollectionCategories                = "Category"
)

// PostingStore persists bid postings
type PostingStore interface {
	CreatePosting(ctx context.Context, posting model.BidPosting) (model.BidPosting, error)
	GetPosting(ctx context.Context, id string) (model.BidPosting, error)
	UpdatePosting(ctx context.Context, id string, update model.PostingUpdate) error
	DeletePosting(ctx context.Context, id string) error
	ListPostings(ctx context.Context, filter model.PostingFilter) ([]model.BidPosting, error)
}

// PlacedBidStore persists placed bids
type PlacedBidStore interface {
	CreatePlacedBid(ctx context.Context, bid model.PlacedBid) (model.PlacedBid, error)
	GetPlacedBid(ctx context.Context, id string) (model.PlacedBid, error)
	UpdatePlacedBidStatus(ctx context.Context, id string, status model.BidStatus, at time.Time) error
	DeletePlacedBid(ctx context.Context, id string) error
	ListPlacedBids(ctx context.Context, filter model.PlacedBidFilter) ([]model.PlacedBid, error)
}

// NotificationStore persists both notification collections. Create honours a
// preset ID so a deleted notification can be restored under the same id.
type NotificationStore interface {
	CreateBuyerNotification(ctx context.Context, n model.BuyerNotification) (model.BuyerNotification, error)
	GetBuyerNotification(ctx context.Context, id string) (model.BuyerNotification, error)
	DeleteBuyerNotification(ctx context.Context, id string) error
	ListBuyerNotifications(ctx context.Context, filter model.BuyerNotificationFilter) ([]model.BuyerNotification, error)

	CreateEntrepreneurNotification(ctx context.Context, n model.EntrepreneurNotification) (model.EntrepreneurNotification, error)
	GetEntrepreneurNotification(ctx context.Context, id string) (model.EntrepreneurNotification, error)
	UpdateEntrepreneurNotificationStatus(ctx context.Context, id string, status model.NotificationStatus) error
	DeleteEntrepreneurNotification(ctx context.Context, id string) error
	ListEntrepreneurNotifications(ctx context.Context, filter model.EntrepreneurNotificationFilter) ([]model.EntrepreneurNotification, error)
}

// ProfileStore persists the users record and its role-specific record
type ProfileStore interface {
	SaveProfile(ctx context.Context, profile model.Profile) error
	GetProfile(ctx context.Context, uid string) (model.Profile, error)
}

// CategoryStore persists posting categories
type CategoryStore interface {
	CreateCategory(ctx context.Context, category model.Category) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}

// MarketplaceDB is the document store consumed by the bidding service
type MarketplaceDB interface {
	PostingStore
	PlacedBidStore
	NotificationStore
	ProfileStore
	CategoryStore
}

// roleCollection returns the collection holding the role-specific profile
func roleCollection(role model.Role) string {
	if role == model.RoleEntrepreneur {
		return CollectionEntrepreneurs
	}
	return CollectionBuyers
}

// normalizePlacedBid resolves the stored status into the explicit enum
func normalizePlacedBid(bid model.PlacedBid) (model.PlacedBid, error) {
	status, err := model.ParseBidStatus(string(bid.Status))
	if err != nil {
		return model.PlacedBid{}, fmt.Errorf("placed bid %s: %w: %v", bid.ID, biddingerrors.ErrInvalidStatus, err)
	}
	bid.Status = status
	return bid, nil
}

func normalizePlacedBids(bids []model.PlacedBid) ([]model.PlacedBid, error) {
	out := make([]model.PlacedBid, 0, len(bids))
	for _, b := range bids {
		nb, err := normalizePlacedBid(b)
		if err != nil {
			return nil, err
		}
		out = append(out, nb)
	}
	return out, nil
}

// applyPostingUpdate merges the non-nil fields of update into posting
func applyPostingUpdate(posting model.BidPosting, update model.PostingUpdate) model.BidPosting {
	if update.Name != nil {
		posting.Name = *update.Name
	}
	if update.Address != nil {
		posting.Address = *update.Address
	}
	if update.Description != nil {
		posting.Description = *update.Description
	}
	if update.Categories != nil {
		posting.Categories = *update.Categories
	}
	if update.Image != nil {
		posting.Image = *update.Image
	}
	if update.ImagePath != nil {
		posting.ImagePath = *update.ImagePath
	}
	if update.BidClosingTime != nil {
		posting.BidClosingTime = *update.BidClosingTime
	}
	if !update.UpdatedAt.IsZero() {
		posting.UpdatedAt = update.UpdatedAt
	}
	return posting
}

// postingUpdateFields lists the stored field names an update touches
func postingUpdateFields(update model.PostingUpdate) map[string]any {
	fields := map[string]any{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Address != nil {
		fields["address"] = *update.Address
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Categories != nil {
		fields["categories"] = *update.Categories
	}
	if update.Image != nil {
		fields["image"] = *update.Image
	}
	if update.ImagePath != nil {
		fields["imagePath"] = *update.ImagePath
	}
	if update.BidClosingTime != nil {
		fields["bidClosingTime"] = *update.BidClosingTime
	}
	if !update.UpdatedAt.IsZero() {
		fields["updatedAt"] = update.UpdatedAt
	}
	return fields
}
