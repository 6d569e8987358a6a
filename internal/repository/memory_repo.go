package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/utils"
)

// MemoryRepo is a concurrency-safe in-memory implementation of MarketplaceDB
type MemoryRepo struct {
	mu                        sync.RWMutex
	postings                  map[string]model.BidPosting               // key: postingID
	placedBids                map[string]model.PlacedBid                // key: placedBidID
	buyerNotifications        map[string]model.BuyerNotification        // key: notificationID
	entrepreneurNotifications map[string]model.EntrepreneurNotification // key: notificationID
	users                     map[string]model.Profile                  // key: uid -> users record
	roleProfiles              map[string]map[string]model.Profile       // key: collection -> uid -> record
	categories                map[string]model.Category                 // key: categoryID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		postings:                  make(map[string]model.BidPosting),
		placedBids:                make(map[string]model.PlacedBid),
		buyerNotifications:        make(map[string]model.BuyerNotification),
		entrepreneurNotifications: make(map[string]model.EntrepreneurNotification),
		users:                     make(map[string]model.Profile),
		roleProfiles: map[string]map[string]model.Profile{
			CollectionBuyers:        {},
			CollectionEntrepreneurs: {},
		},
		categories: make(map[string]model.Category),
	}
}

// CreatePosting stores a new posting under a generated id
func (r *MemoryRepo) CreatePosting(_ context.Context, posting model.BidPosting) (model.BidPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if posting.ID == "" {
		posting.ID = utils.GenerateID()
	}
	r.postings[posting.ID] = posting
	return posting, nil
}

// GetPosting returns a posting by id
func (r *MemoryRepo) GetPosting(_ context.Context, id string) (model.BidPosting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posting, ok := r.postings[id]
	if !ok {
		return model.BidPosting{}, fmt.Errorf("get posting %s: %w", id, biddingerrors.ErrPostingNotFound)
	}
	return posting, nil
}

// UpdatePosting merges the supplied fields into an existing posting
func (r *MemoryRepo) UpdatePosting(_ context.Context, id string, update model.PostingUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	posting, ok := r.postings[id]
	if !ok {
		return fmt.Errorf("update posting %s: %w", id, biddingerrors.ErrPostingNotFound)
	}
	r.postings[id] = applyPostingUpdate(posting, update)
	return nil
}

// DeletePosting removes a posting
func (r *MemoryRepo) DeletePosting(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.postings[id]; !ok {
		return fmt.Errorf("delete posting %s: %w", id, biddingerrors.ErrPostingNotFound)
	}
	delete(r.postings, id)
	return nil
}

// ListPostings returns postings matching filter, soonest closing first
func (r *MemoryRepo) ListPostings(_ context.Context, filter model.PostingFilter) ([]model.BidPosting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	postings := make([]model.BidPosting, 0)
	for _, p := range r.postings {
		if filter.OwnerID != "" && p.UserID != filter.OwnerID {
			continue
		}
		if filter.Category != "" && p.Categories != filter.Category {
			continue
		}
		if filter.OpenAt != nil && !p.Open(*filter.OpenAt) {
			continue
		}
		postings = append(postings, p)
	}
	sort.Slice(postings, func(i, j int) bool {
		return postings[i].BidClosingTime.Before(postings[j].BidClosingTime)
	})
	return postings, nil
}

// CreatePlacedBid stores a placed bid under a generated id
func (r *MemoryRepo) CreatePlacedBid(_ context.Context, bid model.PlacedBid) (model.PlacedBid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bid.ID == "" {
		bid.ID = utils.GenerateID()
	}
	r.placedBids[bid.ID] = bid
	return normalizePlacedBid(bid)
}

// GetPlacedBid returns a placed bid by id
func (r *MemoryRepo) GetPlacedBid(_ context.Context, id string) (model.PlacedBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.placedBids[id]
	if !ok {
		return model.PlacedBid{}, fmt.Errorf("get placed bid %s: %w", id, biddingerrors.ErrPlacedBidNotFound)
	}
	return normalizePlacedBid(bid)
}

// UpdatePlacedBidStatus sets the status and timestamp of a placed bid
func (r *MemoryRepo) UpdatePlacedBidStatus(_ context.Context, id string, status model.BidStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bid, ok := r.placedBids[id]
	if !ok {
		return fmt.Errorf("update placed bid %s: %w", id, biddingerrors.ErrPlacedBidNotFound)
	}
	bid.Status = status
	bid.Timestamp = at
	r.placedBids[id] = bid
	return nil
}

// DeletePlacedBid removes a placed bid
func (r *MemoryRepo) DeletePlacedBid(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.placedBids[id]; !ok {
		return fmt.Errorf("delete placed bid %s: %w", id, biddingerrors.ErrPlacedBidNotFound)
	}
	delete(r.placedBids, id)
	return nil
}

// ListPlacedBids returns placed bids matching filter, oldest first
func (r *MemoryRepo) ListPlacedBids(_ context.Context, filter model.PlacedBidFilter) ([]model.PlacedBid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.PlacedBid, 0)
	for _, b := range r.placedBids {
		if filter.BidID != "" && b.BidID != filter.BidID {
			continue
		}
		if filter.EntrepreneurID != "" && b.EntrepreneurID != filter.EntrepreneurID {
			continue
		}
		if filter.OwnerID != "" && b.OwnerID != filter.OwnerID {
			continue
		}
		bids = append(bids, b)
	}
	sort.Slice(bids, func(i, j int) bool {
		if bids[i].Timestamp.Equal(bids[j].Timestamp) {
			return bids[i].ID < bids[j].ID
		}
		return bids[i].Timestamp.Before(bids[j].Timestamp)
	})
	return normalizePlacedBids(bids)
}

// CreateBuyerNotification stores a buyer notification, keeping a preset id
func (r *MemoryRepo) CreateBuyerNotification(_ context.Context, n model.BuyerNotification) (model.BuyerNotification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = utils.GenerateID()
	}
	r.buyerNotifications[n.ID] = n
	return n, nil
}

// GetBuyerNotification returns a buyer notification by id
func (r *MemoryRepo) GetBuyerNotification(_ context.Context, id string) (model.BuyerNotification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.buyerNotifications[id]
	if !ok {
		return model.BuyerNotification{}, fmt.Errorf("get buyer notification %s: %w", id, biddingerrors.ErrNotificationNotFound)
	}
	return n, nil
}

// DeleteBuyerNotification removes a buyer notification
func (r *MemoryRepo) DeleteBuyerNotification(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.buyerNotifications[id]; !ok {
		return fmt.Errorf("delete buyer notification %s: %w", id, biddingerrors.ErrNotificationNotFound)
	}
	delete(r.buyerNotifications, id)
	return nil
}

// ListBuyerNotifications returns matching buyer notifications, newest first
func (r *MemoryRepo) ListBuyerNotifications(_ context.Context, filter model.BuyerNotificationFilter) ([]model.BuyerNotification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.BuyerNotification, 0)
	for _, n := range r.buyerNotifications {
		if filter.OwnerID != "" && n.OwnerID != filter.OwnerID {
			continue
		}
		if filter.BidID != "" && n.BidID != filter.BidID {
			continue
		}
		if filter.EntrepreneurID != "" && n.EntrepreneurID != filter.EntrepreneurID {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID < out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// CreateEntrepreneurNotification stores an entrepreneur notification, keeping a preset id
func (r *MemoryRepo) CreateEntrepreneurNotification(_ context.Context, n model.EntrepreneurNotification) (model.EntrepreneurNotification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = utils.GenerateID()
	}
	r.entrepreneurNotifications[n.ID] = n
	return n, nil
}

// GetEntrepreneurNotification returns an entrepreneur notification by id
func (r *MemoryRepo) GetEntrepreneurNotification(_ context.Context, id string) (model.EntrepreneurNotification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.entrepreneurNotifications[id]
	if !ok {
		return model.EntrepreneurNotification{}, fmt.Errorf("get entrepreneur notification %s: %w", id, biddingerrors.ErrNotificationNotFound)
	}
	return n, nil
}

// UpdateEntrepreneurNotificationStatus sets the read status of a notification
func (r *MemoryRepo) UpdateEntrepreneurNotificationStatus(_ context.Context, id string, status model.NotificationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.entrepreneurNotifications[id]
	if !ok {
		return fmt.Errorf("update entrepreneur notification %s: %w", id, biddingerrors.ErrNotificationNotFound)
	}
	n.Status = status
	r.entrepreneurNotifications[id] = n
	return nil
}

// DeleteEntrepreneurNotification removes an entrepreneur notification
func (r *MemoryRepo) DeleteEntrepreneurNotification(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entrepreneurNotifications[id]; !ok {
		return fmt.Errorf("delete entrepreneur notification %s: %w", id, biddingerrors.ErrNotificationNotFound)
	}
	delete(r.entrepreneurNotifications, id)
	return nil
}

// ListEntrepreneurNotifications returns matching entrepreneur notifications, newest first
func (r *MemoryRepo) ListEntrepreneurNotifications(_ context.Context, filter model.EntrepreneurNotificationFilter) ([]model.EntrepreneurNotification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.EntrepreneurNotification, 0)
	for _, n := range r.entrepreneurNotifications {
		if filter.EntrepreneurID != "" && n.EntrepreneurID != filter.EntrepreneurID {
			continue
		}
		if filter.BidID != "" && n.BidID != filter.BidID {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID < out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// SaveProfile upserts the users record and the role-specific record
func (r *MemoryRepo) SaveProfile(_ context.Context, profile model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.users[profile.UID]; ok && profile.CreatedAt.IsZero() {
		profile.CreatedAt = existing.CreatedAt
	}
	r.users[profile.UID] = profile
	r.roleProfiles[roleCollection(profile.Role)][profile.UID] = profile
	return nil
}

// GetProfile returns the merged profile of uid
func (r *MemoryRepo) GetProfile(_ context.Context, uid string) (model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[uid]
	if !ok {
		return model.Profile{}, fmt.Errorf("get profile %s: %w", uid, biddingerrors.ErrProfileNotFound)
	}
	specific, ok := r.roleProfiles[roleCollection(user.Role)][uid]
	if !ok {
		return model.Profile{}, fmt.Errorf("get %s profile %s: %w", user.Role, uid, biddingerrors.ErrProfileNotFound)
	}
	specific.Role = user.Role
	specific.CreatedAt = user.CreatedAt
	return specific, nil
}

// CreateCategory stores a category under a generated id
func (r *MemoryRepo) CreateCategory(_ context.Context, category model.Category) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == "" {
		category.ID = utils.GenerateID()
	}
	r.categories[category.ID] = category
	return category, nil
}

// ListCategories returns all categories sorted by name
func (r *MemoryRepo) ListCategories(_ context.Context) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
