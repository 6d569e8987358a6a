package bidding

import (
	"context"
	"fmt"

	"marketplace-bidding/internal/amount"
	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/utils"
)

// Placement is the outcome of a successful bid submission
type Placement struct {
	Bid          model.PlacedBid         `json:"bid"`
	Notification model.BuyerNotification `json:"notification"`
}

// PlaceBid validates rawAmount and records an entrepreneur's bid against a
// posting together with the notification to the posting owner
func (s *BiddingService) PlaceBid(ctx context.Context, sess model.Session, postingID, rawAmount string) (Placement, error) {
	if err := requireRole(sess, model.RoleEntrepreneur); err != nil {
		return Placement{}, err
	}
	if postingID == "" {
		return Placement{}, fmt.Errorf("service: %w - empty posting ID", biddingerrors.ErrInvalidPosting)
	}

	value, err := amount.Parse(rawAmount)
	if err != nil {
		return Placement{}, fmt.Errorf("service: %w", err)
	}

	posting, err := s.repo.GetPosting(ctx, postingID)
	if err != nil {
		return Placement{}, fmt.Errorf("service: failed to load posting %s: %w", postingID, err)
	}

	now := s.clock()
	if !posting.Open(now) {
		return Placement{}, fmt.Errorf("service: %w - closed at %s", biddingerrors.ErrBiddingClosed, posting.BidClosingTime.Format("2006-01-02 15:04"))
	}

	username := sess.Username
	if username == "" {
		username = sess.UserID
	}

	var placement Placement
	sg := newSaga("place_bid",
		sagaStep{
			name: "create_placed_bid",
			do: func(ctx context.Context) error {
				bid, err := s.repo.CreatePlacedBid(ctx, model.PlacedBid{
					BidID:          posting.ID,
					EntrepreneurID: sess.UserID,
					Amount:         value,
					OwnerID:        posting.UserID,
					Status:         model.BidStatusPending,
					Timestamp:      now,
				})
				placement.Bid = bid
				return err
			},
			undo: func(ctx context.Context) error {
				return s.repo.DeletePlacedBid(ctx, placement.Bid.ID)
			},
		},
		sagaStep{
			name: "notify_buyer",
			do: func(ctx context.Context) error {
				n, err := s.repo.CreateBuyerNotification(ctx, model.BuyerNotification{
					BidID:          posting.ID,
					OwnerID:        posting.UserID,
					EntrepreneurID: sess.UserID,
					Message:        fmt.Sprintf("You have received a new bid of %s from Entrepreneur %s.", amount.Format(value), username),
					Timestamp:      now,
				})
				placement.Notification = n
				return err
			},
		},
	)
	if err := sg.run(ctx); err != nil {
		return Placement{}, fmt.Errorf("service: failed to place bid on posting %s: %w", postingID, err)
	}

	utils.Info("Bid placed", map[string]any{
		"placed_bid_id":   placement.Bid.ID,
		"posting_id":      posting.ID,
		"entrepreneur_id": sess.UserID,
		"amount":          value,
	})
	return placement, nil
}

// ListBidsForPosting returns the bids placed on a posting, visible to its owner only
func (s *BiddingService) ListBidsForPosting(ctx context.Context, sess model.Session, postingID string) ([]model.PlacedBid, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	posting, err := s.repo.GetPosting(ctx, postingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load posting %s: %w", postingID, err)
	}
	if posting.UserID != sess.UserID {
		return nil, fmt.Errorf("service: %w - posting %s belongs to another buyer", biddingerrors.ErrForbidden, postingID)
	}

	bids, err := s.repo.ListPlacedBids(ctx, model.PlacedBidFilter{BidID: postingID})
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for posting %s: %w", postingID, err)
	}
	return bids, nil
}

// ListMyBids returns the caller's own placed bids with their status
func (s *BiddingService) ListMyBids(ctx context.Context, sess model.Session) ([]model.PlacedBid, error) {
	if err := requireRole(sess, model.RoleEntrepreneur); err != nil {
		return nil, err
	}

	bids, err := s.repo.ListPlacedBids(ctx, model.PlacedBidFilter{EntrepreneurID: sess.UserID})
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids of entrepreneur %s: %w", sess.UserID, err)
	}
	return bids, nil
}
