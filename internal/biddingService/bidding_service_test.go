package bidding

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-bidding/internal/biddingerrors"
	"marketplace-bidding/internal/locker"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/internal/objectstore"
	"marketplace-bidding/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

var (
	buyerSession        = model.Session{UserID: "buyer1", Email: "buyer1@example.com", Role: model.RoleBuyer, Username: "Asha"}
	entrepreneurSession = model.Session{UserID: "ent1", Email: "ent1@example.com", Role: model.RoleEntrepreneur, Username: "Nimal"}
)

// Helper to build a service over a mocked repository
func newMockedService(t *testing.T) (*BiddingService, *repository.MockMarketplaceDB) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockMarketplaceDB(ctrl)
	objects, err := objectstore.NewMemoryStore("http://localhost/objects")
	require.NoError(t, err)
	svc := NewBiddingService(mockRepo, objects, locker.NewMemoryLocker(), WithClock(func() time.Time { return fixedNow }))
	return svc, mockRepo
}

func openPosting() model.BidPosting {
	return model.BidPosting{
		ID:             "post1",
		Name:           "Kitchen shelves",
		Categories:     "Woodwork",
		BidClosingTime: fixedNow.Add(48 * time.Hour),
		UserID:         "buyer1",
	}
}

// Tests PlaceBid input checks that never reach the store
func TestBiddingService_PlaceBid_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		sess          model.Session
		postingID     string
		amount        string
		expectedError error
	}{
		{name: "anonymous", sess: model.Session{}, postingID: "post1", amount: "Rs. 500", expectedError: biddingerrors.ErrUnauthenticated},
		{name: "buyer_cannot_bid", sess: buyerSession, postingID: "post1", amount: "Rs. 500", expectedError: biddingerrors.ErrForbidden},
		{name: "empty_posting", sess: entrepreneurSession, postingID: "", amount: "Rs. 500", expectedError: biddingerrors.ErrInvalidPosting},
		{name: "empty_amount", sess: entrepreneurSession, postingID: "post1", amount: "", expectedError: biddingerrors.ErrInvalidAmount},
		{name: "zero_amount", sess: entrepreneurSession, postingID: "post1", amount: "0", expectedError: biddingerrors.ErrInvalidAmount},
		{name: "letters_only", sess: entrepreneurSession, postingID: "post1", amount: "abc", expectedError: biddingerrors.ErrInvalidAmount},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newMockedService(t)

			_, err := svc.PlaceBid(context.Background(), tc.sess, tc.postingID, tc.amount)
			require.ErrorIs(t, err, tc.expectedError)
		})
	}
}

// Tests the two writes of PlaceBid
func TestBiddingService_PlaceBid(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		svc, mockRepo := newMockedService(t)

		mockRepo.EXPECT().GetPosting(gomock.Any(), "post1").Return(openPosting(), nil)
		mockRepo.EXPECT().CreatePlacedBid(gomock.Any(), model.PlacedBid{
			BidID:          "post1",
			EntrepreneurID: "ent1",
			Amount:         500,
			OwnerID:        "buyer1",
			Status:         model.BidStatusPending,
			Timestamp:      fixedNow,
		}).DoAndReturn(func(_ context.Context, b model.PlacedBid) (model.PlacedBid, error) {
			b.ID = "pb1"
			return b, nil
		})
		mockRepo.EXPECT().CreateBuyerNotification(gomock.Any(), model.BuyerNotification{
			BidID:          "post1",
			OwnerID:        "buyer1",
			EntrepreneurID: "ent1",
			Message:        "You have received a new bid of Rs. 500 from Entrepreneur Nimal.",
			Timestamp:      fixedNow,
		}).DoAndReturn(func(_ context.Context, n model.BuyerNotification) (model.BuyerNotification, error) {
			n.ID = "n1"
			return n, nil
		})

		placement, err := svc.PlaceBid(context.Background(), entrepreneurSession, "post1", "Rs. 500")
		require.NoError(t, err)
		require.Equal(t, "pb1", placement.Bid.ID)
		require.Equal(t, "n1", placement.Notification.ID)
		require.Equal(t, placement.Bid.BidID, placement.Notification.BidID)
	})

	t.Run("closed_posting", func(t *testing.T) {
		t.Parallel()
		svc, mockRepo := newMockedService(t)

		closed := openPosting()
		closed.BidClosingTime = fixedNow.Add(-time.Minute)
		mockRepo.EXPECT().GetPosting(gomock.Any(), "post1").Return(closed, nil)

		_, err := svc.PlaceBid(context.Background(), entrepreneurSession, "post1", "Rs. 500")
		require.ErrorIs(t, err, biddingerrors.ErrBiddingClosed)
	})

	t.Run("posting_not_found", func(t *testing.T) {
		t.Parallel()
		svc, mockRepo := newMockedService(t)

		mockRepo.EXPECT().GetPosting(gomock.Any(), "post1").Return(model.BidPosting{}, biddingerrors.ErrPostingNotFound)

		_, err := svc.PlaceBid(context.Background(), entrepreneurSession, "post1", "Rs. 500")
		require.ErrorIs(t, err, biddingerrors.ErrPostingNotFound)
	})

	t.Run("username_falls_back_to_id", func(t *testing.T) {
		t.Parallel()
		svc, mockRepo := newMockedService(t)

		sess := entrepreneurSession
		sess.Username = ""
		mockRepo.EXPECT().GetPosting(gomock.Any(), "post1").Return(openPosting(), nil)
		mockRepo.EXPECT().CreatePlacedBid(gomock.Any(), gomock.Any()).Return(model.PlacedBid{ID: "pb1"}, nil)
		mockRepo.EXPECT().CreateBuyerNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n model.BuyerNotification) (model.BuyerNotification, error) {
				require.Equal(t, "You have received a new bid of Rs. 12.5 from Entrepreneur ent1.", n.Message)
				return n, nil
			})

		_, err := svc.PlaceBid(context.Background(), sess, "post1", "12.5")
		require.NoError(t, err)
	})

	t.Run("notification_failure_removes_bid", func(t *testing.T) {
		t.Parallel()
		svc, mockRepo := newMockedService(t)

		writeErr := errors.New("store unavailable")
		gomock.InOrder(
			mockRepo.EXPECT().GetPosting(gomock.Any(), "post1").Return(openPosting(), nil),
			mockRepo.EXPECT().CreatePlacedBid(gomock.Any(), gomock.Any()).Return(model.PlacedBid{ID: "pb1"}, nil),
			mockRepo.EXPECT().CreateBuyerNotification(gomock.Any(), gomock.Any()).Return(model.BuyerNotification{}, writeErr),
			mockRepo.EXPECT().DeletePlacedBid(gomock.Any(), "pb1").Return(nil),
		)

		_, err := svc.PlaceBid(context.Background(), entrepreneurSession, "post1", "Rs. 500")
		require.ErrorIs(t, err, writeErr)

		var stepErr *biddingerrors.StepError
		require.ErrorAs(t, err, &stepErr)
		require.Equal(t, "place_bid", stepErr.Saga)
		require.Equal(t, "notify_buyer", stepErr.Step)
		require.NoError(t, stepErr.CompensationErr)
	})

	t.Run("first_write_failure_needs_no_compensation", func(t *testing.T) {
		t.Parallel()
		svc, mockRepo := newMockedService(t)

		writeErr := errors.New("store unavailable")
		mockRepo.EXPECT().GetPosting(gomock.Any(), "post1").Return(openPosting(), nil)
		mockRepo.EXPECT().CreatePlacedBid(gomock.Any(), gomock.Any()).Return(model.PlacedBid{}, writeErr)

		_, err := svc.PlaceBid(context.Background(), entrepreneurSession, "post1", "Rs. 500")
		var stepErr *biddingerrors.StepError
		require.ErrorAs(t, err, &stepErr)
		require.Equal(t, "create_placed_bid", stepErr.Step)
	})
}

// Tests the acceptance handshake step by step
func TestBiddingService_AcceptBid(t *testing.T) {
	t.Parallel()

	placedAt := fixedNow.Add(-time.Hour)
	pending := model.PlacedBid{
		ID:             "pb1",
		BidID:          "post1",
		EntrepreneurID: "ent1",
		Amount:         500,
		OwnerID:        "buyer1",
		Status:         model.BidStatusPending,
		Timestamp:      placedAt,
	}
	buyerNote := model.BuyerNotification{ID: "n1", BidID: "post1", OwnerID: "buyer1", EntrepreneurID: "ent1", Message: "bid", Timestamp: placedAt}
	noteFilter := model.BuyerNotificationFilter{BidID: "post1", OwnerID: "buyer1", EntrepreneurID: "ent1"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		svc, mockRepo := newMockedService(t)

		gomock.InOrder(
			mockRepo.EXPECT().GetPlacedBid(gomock.Any(), "pb1").Return(pending, nil),
			mockRepo.EXPECT().GetProfile(gomock.Any(), "buyer1").Return(model.Profile{UID: "buyer1", Username: "Asha"}, nil),
			mockRepo.EXPECT().UpdatePlacedBidStatus(gomock.Any(), "pb1", model.BidStatusAccepted, fixedNow).Return(nil),
			mockRepo.EXPECT().ListBuyerNotifications(gomock.Any(), noteFilter).Return([]model.BuyerNotification{buyerNote}, nil),
			mockRepo.EXPECT().DeleteBuyerNotification(gomock.Any(), "n1").Return(nil),
			mockRepo.EXPECT().CreateEntrepreneurNotification(gomock.Any(), model.EntrepreneurNotification{
				EntrepreneurID: "ent1",
				BuyerID:        "buyer1",
				BidID:          "post1",
				Message:        "Your bid has been accepted by Asha",
				Status:         model.NotificationUnread,
				Timestamp:      fixedNow,
			}).DoAndReturn(func(_ context.Context, n model.EntrepreneurNotification) (model.EntrepreneurNotification, error) {
				n.ID = "en1"
				return n, nil
			}),
		)

		acc, err := svc.AcceptBid(context.Background(), buyerSession, "pb1")
		require.NoError(t, err)
		require.Equal(t, model.BidStatusAccepted, acc.Bid.Status)
		require.Equal(t, fixedNow, acc.Bid.Timestamp)
		require.Equal(t, "en1", acc.Notification.ID)
	})

	t.Run("missing_profile_and_notification_are_not_fatal", func(t *testing.T) {
		t.Parallel()
		svc, mockRepo := newMockedService(t)

		mockRepo.EXPECT().GetPlacedBid(gomock.Any(), "pb1").Return(pending, nil)
		mockRepo.EXPECT().GetProfile(gomock.Any(), "buyer1").Return(model.Profile{}, biddingerrors.ErrProfileNotFound)
		mockRepo.EXPECT().UpdatePlacedBidStatus(gomock.Any(), "pb1", model.BidStatusAccepted, fixedNow).Return(nil)
		mockRepo.EXPECT().ListBuyerNotifications(gomock.Any(), noteFilter).Return(nil, nil)
		mockRepo.EXPECT().CreateEntrepreneurNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n model.EntrepreneurNotification) (model.EntrepreneurNotification, error) {
				require.Equal(t, "Your bid has been accepted by Unknown", n.Message)
				return n, nil
			})

		_, err := svc.AcceptBid(context.Background(), buyerSession, "pb1")
		require.NoError(t, err)
	})

	t.Run("entrepreneur_notification_failure_restores_state", func(t *testing.T) {
		t.Parallel()
		svc, mockRepo := newMockedService(t)

		writeErr := errors.New("quota exceeded")
		gomock.InOrder(
			mockRepo.EXPECT().GetPlacedBid(gomock.Any(), "pb1").Return(pending, nil),
			mockRepo.EXPECT().GetProfile(gomock.Any(), "buyer1").Return(model.Profile{Username: "Asha"}, nil),
			mockRepo.EXPECT().UpdatePlacedBidStatus(gomock.Any(), "pb1", model.BidStatusAccepted, fixedNow).Return(nil),
			mockRepo.EXPECT().ListBuyerNotifications(gomock.Any(), noteFilter).Return([]model.BuyerNotification{buyerNote}, nil),
			mockRepo.EXPECT().DeleteBuyerNotification(gomock.Any(), "n1").Return(nil),
			mockRepo.EXPECT().CreateEntrepreneurNotification(gomock.Any(), gomock.Any()).Return(model.EntrepreneurNotification{}, writeErr),
			// undone in reverse order
			mockRepo.EXPECT().CreateBuyerNotification(gomock.Any(), buyerNote).Return(buyerNote, nil),
			mockRepo.EXPECT().UpdatePlacedBidStatus(gomock.Any(), "pb1", model.BidStatusPending, placedAt).Return(nil),
		)

		_, err := svc.AcceptBid(context.Background(), buyerSession, "pb1")
		require.ErrorIs(t, err, writeErr)

		var stepErr *biddingerrors.StepError
		require.ErrorAs(t, err, &stepErr)
		require.Equal(t, "accept_bid", stepErr.Saga)
		require.Equal(t, "notify_entrepreneur", stepErr.Step)
		require.NoError(t, stepErr.CompensationErr)
	})

	t.Run("compensation_failure_is_reported", func(t *testing.T) {
		t.Parallel()
		svc, mockRepo := newMockedService(t)

		writeErr := errors.New("delete failed")
		undoErr := errors.New("restore failed")
		gomock.InOrder(
			mockRepo.EXPECT().GetPlacedBid(gomock.Any(), "pb1").Return(pending, nil),
			mockRepo.EXPECT().GetProfile(gomock.Any(), "buyer1").Return(model.Profile{Username: "Asha"}, nil),
			mockRepo.EXPECT().UpdatePlacedBidStatus(gomock.Any(), "pb1", model.BidStatusAccepted, fixedNow).Return(nil),
			mockRepo.EXPECT().ListBuyerNotifications(gomock.Any(), noteFilter).Return([]model.BuyerNotification{buyerNote}, nil),
			mockRepo.EXPECT().DeleteBuyerNotification(gomock.Any(), "n1").Return(writeErr),
			mockRepo.EXPECT().UpdatePlacedBidStatus(gomock.Any(), "pb1", model.BidStatusPending, placedAt).Return(undoErr),
		)

		_, err := svc.AcceptBid(context.Background(), buyerSession, "pb1")
		var stepErr *biddingerrors.StepError
		require.ErrorAs(t, err, &stepErr)
		require.Equal(t, "remove_buyer_notification", stepErr.Step)
		require.ErrorIs(t, stepErr.CompensationErr, undoErr)
	})

	t.Run("already_accepted", func(t *testing.T) {
		t.Parallel()
		svc, mockRepo := newMockedService(t)

		accepted := pending
		accepted.Status = model.BidStatusAccepted
		mockRepo.EXPECT().GetPlacedBid(gomock.Any(), "pb1").Return(accepted, nil)

		_, err := svc.AcceptBid(context.Background(), buyerSession, "pb1")
		require.ErrorIs(t, err, biddingerrors.ErrBidAlreadyAccepted)
	})

	t.Run("another_buyers_bid", func(t *testing.T) {
		t.Parallel()
		svc, mockRepo := newMockedService(t)

		mockRepo.EXPECT().GetPlacedBid(gomock.Any(), "pb1").Return(pending, nil)

		other := buyerSession
		other.UserID = "buyer2"
		_, err := svc.AcceptBid(context.Background(), other, "pb1")
		require.ErrorIs(t, err, biddingerrors.ErrForbidden)
	})

	t.Run("entrepreneur_cannot_accept", func(t *testing.T) {
		t.Parallel()
		svc, _ := newMockedService(t)

		_, err := svc.AcceptBid(context.Background(), entrepreneurSession, "pb1")
		require.ErrorIs(t, err, biddingerrors.ErrForbidden)
	})

	t.Run("empty_id", func(t *testing.T) {
		t.Parallel()
		svc, _ := newMockedService(t)

		_, err := svc.AcceptBid(context.Background(), buyerSession, "")
		require.ErrorIs(t, err, biddingerrors.ErrPlacedBidNotFound)
	})
}

// Tests lookup of the bid to accept by entrepreneur
func TestBiddingService_AcceptBidByEntrepreneur(t *testing.T) {
	t.Parallel()

	t.Run("no_bids", func(t *testing.T) {
		t.Parallel()
		svc, mockRepo := newMockedService(t)

		mockRepo.EXPECT().ListPlacedBids(gomock.Any(), model.PlacedBidFilter{EntrepreneurID: "ent1", OwnerID: "buyer1"}).Return(nil, nil)

		_, err := svc.AcceptBidByEntrepreneur(context.Background(), buyerSession, "ent1", "")
		require.ErrorIs(t, err, biddingerrors.ErrPlacedBidNotFound)
	})

	t.Run("store_failure", func(t *testing.T) {
		t.Parallel()
		svc, mockRepo := newMockedService(t)

		mockRepo.EXPECT().ListPlacedBids(gomock.Any(), gomock.Any()).Return(nil, biddingerrors.ErrInvalidStatus)

		_, err := svc.AcceptBidByEntrepreneur(context.Background(), buyerSession, "ent1", "post1")
		require.ErrorIs(t, err, biddingerrors.ErrInvalidStatus)
	})
}
