package bidding

import (
	"context"
	"errors"
	"fmt"

	"marketplace-bidding/internal/biddingerrors"
	"marketplace-bidding/internal/inbox"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/utils"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// DeleteResult lists the notifications a bulk delete removed
type DeleteResult struct {
	Deleted []string `json:"deleted"`
	Failed  []string `json:"failed"`
}

func buyerView(n model.BuyerNotification, _ int) model.NotificationView {
	return model.NotificationView{
		ID:        n.ID,
		Kind:      model.NotificationKindBidReceived,
		BidID:     n.BidID,
		SenderID:  n.EntrepreneurID,
		Message:   n.Message,
		Unread:    true,
		Timestamp: n.Timestamp,
	}
}

func entrepreneurView(n model.EntrepreneurNotification, _ int) model.NotificationView {
	return model.NotificationView{
		ID:        n.ID,
		Kind:      model.NotificationKindBidAccepted,
		BidID:     n.BidID,
		SenderID:  n.BuyerID,
		Message:   n.Message,
		Unread:    n.Status != model.NotificationRead,
		Timestamp: n.Timestamp,
	}
}

// ListNotifications returns the caller's inbox, newest first
func (s *BiddingService) ListNotifications(ctx context.Context, sess model.Session) ([]model.NotificationView, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	switch sess.Role {
	case model.RoleBuyer:
		list, err := s.repo.ListBuyerNotifications(ctx, model.BuyerNotificationFilter{OwnerID: sess.UserID})
		if err != nil {
			return nil, fmt.Errorf("service: failed to get notifications for buyer %s: %w", sess.UserID, err)
		}
		return lo.Map(list, buyerView), nil
	case model.RoleEntrepreneur:
		list, err := s.repo.ListEntrepreneurNotifications(ctx, model.EntrepreneurNotificationFilter{EntrepreneurID: sess.UserID})
		if err != nil {
			return nil, fmt.Errorf("service: failed to get notifications for entrepreneur %s: %w", sess.UserID, err)
		}
		return lo.Map(list, entrepreneurView), nil
	default:
		return nil, fmt.Errorf("service: %w - a profile role is required", biddingerrors.ErrForbidden)
	}
}

// UnreadCount counts the caller's unread notifications. Buyer notifications
// have no read flag and always count.
func (s *BiddingService) UnreadCount(ctx context.Context, sess model.Session) (int, error) {
	views, err := s.ListNotifications(ctx, sess)
	if err != nil {
		return 0, err
	}
	return lo.CountBy(views, func(v model.NotificationView) bool { return v.Unread }), nil
}

// MarkNotificationRead marks one of the caller's entrepreneur notifications read
func (s *BiddingService) MarkNotificationRead(ctx context.Context, sess model.Session, id string) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if sess.Role != model.RoleEntrepreneur {
		return fmt.Errorf("service: %w - only entrepreneur notifications carry a read status", biddingerrors.ErrInvalidNotification)
	}

	n, err := s.repo.GetEntrepreneurNotification(ctx, id)
	if err != nil {
		return fmt.Errorf("service: failed to load notification %s: %w", id, err)
	}
	if n.EntrepreneurID != sess.UserID {
		return fmt.Errorf("service: %w - notification %s is addressed to someone else", biddingerrors.ErrForbidden, id)
	}
	if n.Status == model.NotificationRead {
		return nil
	}

	if err := s.repo.UpdateEntrepreneurNotificationStatus(ctx, id, model.NotificationRead); err != nil {
		return fmt.Errorf("service: failed to mark notification %s read: %w", id, err)
	}
	return nil
}

// DeleteNotifications deletes every selected notification concurrently and
// returns the selection to Idle. Each failure is reported; the others still run.
func (s *BiddingService) DeleteNotifications(ctx context.Context, sess model.Session, sel *inbox.Selection) (DeleteResult, error) {
	if err := requireSession(sess); err != nil {
		return DeleteResult{}, err
	}
	if sel == nil || sel.State() == inbox.Idle {
		return DeleteResult{}, fmt.Errorf("service: %w - nothing selected", biddingerrors.ErrInvalidNotification)
	}
	if sess.Role != model.RoleBuyer && sess.Role != model.RoleEntrepreneur {
		return DeleteResult{}, fmt.Errorf("service: %w - a profile role is required", biddingerrors.ErrForbidden)
	}

	ids := sel.Selected()
	defer sel.Reset()

	errs := make([]error, len(ids))
	var g errgroup.Group
	g.SetLimit(s.deleteWorkers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := s.deleteNotification(ctx, sess, id); err != nil {
				errs[i] = fmt.Errorf("notification %s: %w", id, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	var result DeleteResult
	for i, id := range ids {
		if errs[i] == nil {
			result.Deleted = append(result.Deleted, id)
		} else {
			result.Failed = append(result.Failed, id)
		}
	}

	if err := errors.Join(errs...); err != nil {
		utils.Warn("Some notifications were not deleted", map[string]any{
			"user_id": sess.UserID,
			"deleted": len(result.Deleted),
			"failed":  len(result.Failed),
		})
		return result, fmt.Errorf("service: failed to delete %d of %d notifications: %w", len(result.Failed), len(ids), err)
	}
	return result, nil
}

// deleteNotification removes one notification after checking it is addressed to the caller
func (s *BiddingService) deleteNotification(ctx context.Context, sess model.Session, id string) error {
	if sess.Role == model.RoleBuyer {
		n, err := s.repo.GetBuyerNotification(ctx, id)
		if err != nil {
			return err
		}
		if n.OwnerID != sess.UserID {
			return biddingerrors.ErrForbidden
		}
		return s.repo.DeleteBuyerNotification(ctx, id)
	}

	n, err := s.repo.GetEntrepreneurNotification(ctx, id)
	if err != nil {
		return err
	}
	if n.EntrepreneurID != sess.UserID {
		return biddingerrors.ErrForbidden
	}
	return s.repo.DeleteEntrepreneurNotification(ctx, id)
}
