package bidding

import (
	"context"
	"errors"
	"fmt"

	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/utils"
)

// Acceptance is the outcome of a successful acceptance handshake
type Acceptance struct {
	Bid          model.PlacedBid                `json:"bid"`
	Notification model.EntrepreneurNotification `json:"notification"`
}

// AcceptBid accepts one placed bid on a posting owned by the caller
func (s *BiddingService) AcceptBid(ctx context.Context, sess model.Session, placedBidID string) (Acceptance, error) {
	if err := requireRole(sess, model.RoleBuyer); err != nil {
		return Acceptance{}, err
	}
	if placedBidID == "" {
		return Acceptance{}, fmt.Errorf("service: %w - empty placed bid ID", biddingerrors.ErrPlacedBidNotFound)
	}
	return s.accept(ctx, sess, placedBidID)
}

// AcceptBidByEntrepreneur accepts the earliest bid the entrepreneur placed on
// the caller's postings, narrowed to one posting when postingID is set
func (s *BiddingService) AcceptBidByEntrepreneur(ctx context.Context, sess model.Session, entrepreneurID, postingID string) (Acceptance, error) {
	if err := requireRole(sess, model.RoleBuyer); err != nil {
		return Acceptance{}, err
	}
	if entrepreneurID == "" {
		return Acceptance{}, fmt.Errorf("service: %w - empty entrepreneur ID", biddingerrors.ErrPlacedBidNotFound)
	}

	bids, err := s.repo.ListPlacedBids(ctx, model.PlacedBidFilter{
		BidID:          postingID,
		EntrepreneurID: entrepreneurID,
		OwnerID:        sess.UserID,
	})
	if err != nil {
		return Acceptance{}, fmt.Errorf("service: failed to find bids of entrepreneur %s: %w", entrepreneurID, err)
	}
	if len(bids) == 0 {
		return Acceptance{}, fmt.Errorf("service: %w - no bids from entrepreneur %s", biddingerrors.ErrPlacedBidNotFound, entrepreneurID)
	}
	if len(bids) > 1 {
		utils.Warn("Several placed bids match, accepting the earliest", map[string]any{
			"entrepreneur_id": entrepreneurID,
			"posting_id":      postingID,
			"matches":         len(bids),
			"placed_bid_id":   bids[0].ID,
		})
	}

	return s.accept(ctx, sess, bids[0].ID)
}

// accept runs the handshake under the placed bid's lock: mark the bid accepted,
// drop the buyer notification it produced, notify the entrepreneur
func (s *BiddingService) accept(ctx context.Context, sess model.Session, placedBidID string) (Acceptance, error) {
	release, err := s.locks.Acquire(ctx, "accept:"+placedBidID)
	if err != nil {
		return Acceptance{}, fmt.Errorf("service: failed to lock placed bid %s: %w", placedBidID, err)
	}
	defer release()

	bid, err := s.repo.GetPlacedBid(ctx, placedBidID)
	if err != nil {
		return Acceptance{}, fmt.Errorf("service: failed to load placed bid %s: %w", placedBidID, err)
	}
	if bid.OwnerID != sess.UserID {
		return Acceptance{}, fmt.Errorf("service: %w - placed bid %s is on another buyer's posting", biddingerrors.ErrForbidden, placedBidID)
	}
	if bid.Status == model.BidStatusAccepted {
		return Acceptance{}, fmt.Errorf("service: %w - placed bid %s", biddingerrors.ErrBidAlreadyAccepted, placedBidID)
	}

	buyerName, err := s.buyerDisplayName(ctx, bid.OwnerID)
	if err != nil {
		return Acceptance{}, err
	}

	now := s.clock()
	var (
		removed  *model.BuyerNotification
		notified model.EntrepreneurNotification
	)

	sg := newSaga("accept_bid",
		sagaStep{
			name: "mark_accepted",
			do: func(ctx context.Context) error {
				return s.repo.UpdatePlacedBidStatus(ctx, bid.ID, model.BidStatusAccepted, now)
			},
			undo: func(ctx context.Context) error {
				return s.repo.UpdatePlacedBidStatus(ctx, bid.ID, model.BidStatusPending, bid.Timestamp)
			},
		},
		sagaStep{
			name: "remove_buyer_notification",
			do: func(ctx context.Context) error {
				n, err := s.removeBuyerNotification(ctx, bid)
				removed = n
				return err
			},
			undo: func(ctx context.Context) error {
				if removed == nil {
					return nil
				}
				_, err := s.repo.CreateBuyerNotification(ctx, *removed)
				return err
			},
		},
		sagaStep{
			name: "notify_entrepreneur",
			do: func(ctx context.Context) error {
				n, err := s.repo.CreateEntrepreneurNotification(ctx, model.EntrepreneurNotification{
					EntrepreneurID: bid.EntrepreneurID,
					BuyerID:        bid.OwnerID,
					BidID:          bid.BidID,
					Message:        fmt.Sprintf("Your bid has been accepted by %s", buyerName),
					Status:         model.NotificationUnread,
					Timestamp:      now,
				})
				notified = n
				return err
			},
		},
	)
	if err := sg.run(ctx); err != nil {
		return Acceptance{}, fmt.Errorf("service: failed to accept placed bid %s: %w", placedBidID, err)
	}

	bid.Status = model.BidStatusAccepted
	bid.Timestamp = now
	utils.Info("Bid accepted", map[string]any{
		"placed_bid_id":   bid.ID,
		"posting_id":      bid.BidID,
		"entrepreneur_id": bid.EntrepreneurID,
		"buyer_id":        bid.OwnerID,
	})
	return Acceptance{Bid: bid, Notification: notified}, nil
}

// removeBuyerNotification deletes the first buyer notification produced by bid.
// Finding none is not an error.
func (s *BiddingService) removeBuyerNotification(ctx context.Context, bid model.PlacedBid) (*model.BuyerNotification, error) {
	matches, err := s.repo.ListBuyerNotifications(ctx, model.BuyerNotificationFilter{
		BidID:          bid.BidID,
		OwnerID:        bid.OwnerID,
		EntrepreneurID: bid.EntrepreneurID,
	})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		utils.Info("No matching buyer notification to remove", map[string]any{
			"posting_id":      bid.BidID,
			"owner_id":        bid.OwnerID,
			"entrepreneur_id": bid.EntrepreneurID,
		})
		return nil, nil
	}

	n := matches[0]
	if err := s.repo.DeleteBuyerNotification(ctx, n.ID); err != nil {
		if errors.Is(err, biddingerrors.ErrNotificationNotFound) {
			// deleted by the buyer in the meantime
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

// buyerDisplayName resolves the name shown to the entrepreneur, falling back
// to unknownBuyer when the buyer has no profile
func (s *BiddingService) buyerDisplayName(ctx context.Context, buyerID string) (string, error) {
	profile, err := s.repo.GetProfile(ctx, buyerID)
	if err != nil {
		if errors.Is(err, biddingerrors.ErrProfileNotFound) {
			utils.Info("Buyer profile not found", map[string]any{"buyer_id": buyerID})
			return unknownBuyer, nil
		}
		return "", fmt.Errorf("service: failed to load buyer profile %s: %w", buyerID, err)
	}
	return profile.DisplayName(unknownBuyer), nil
}
