package bidding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/internal/objectstore"
	"marketplace-bidding/utils"

	"github.com/samber/lo"
)

// PostingInput is the form a buyer fills in to publish a posting
type PostingInput struct {
	Name           string    `validate:"required,max=200"`
	Address        string    `validate:"required,max=500"`
	Description    string    `validate:"required,max=5000"`
	Categories     string    `validate:"required,max=100"`
	BidClosingTime time.Time `validate:"required"`
}

// PostingChanges is a partial edit; nil fields stay as they are
type PostingChanges struct {
	Name           *string    `validate:"omitempty,min=1,max=200"`
	Address        *string    `validate:"omitempty,min=1,max=500"`
	Description    *string    `validate:"omitempty,min=1,max=5000"`
	Categories     *string    `validate:"omitempty,min=1,max=100"`
	BidClosingTime *time.Time `validate:"omitempty"`
}

// PostingQuery narrows ListPostings
type PostingQuery struct {
	OwnerID  string
	Category string
	OpenOnly bool
}

// CreatePosting publishes a new posting owned by the calling buyer
func (s *BiddingService) CreatePosting(ctx context.Context, sess model.Session, in PostingInput) (model.BidPosting, error) {
	if err := requireRole(sess, model.RoleBuyer); err != nil {
		return model.BidPosting{}, err
	}

	in.Name = s.cleanText(in.Name)
	in.Address = s.cleanText(in.Address)
	in.Description = s.cleanText(in.Description)
	in.Categories = s.cleanText(in.Categories)
	if err := s.validate.Struct(in); err != nil {
		return model.BidPosting{}, fmt.Errorf("service: %w - %v", biddingerrors.ErrInvalidPosting, err)
	}

	now := s.clock()
	if !in.BidClosingTime.After(now) {
		return model.BidPosting{}, fmt.Errorf("service: %w - bid closing time must be in the future", biddingerrors.ErrInvalidPosting)
	}
	if err := s.checkCategory(ctx, in.Categories); err != nil {
		return model.BidPosting{}, err
	}

	posting, err := s.repo.CreatePosting(ctx, model.BidPosting{
		Name:           in.Name,
		Address:        in.Address,
		Description:    in.Description,
		Categories:     in.Categories,
		BidClosingTime: in.BidClosingTime.UTC(),
		UserID:         sess.UserID,
		UserEmail:      sess.Email,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return model.BidPosting{}, fmt.Errorf("service: failed to create posting: %w", err)
	}

	utils.Info("Posting created", map[string]any{"posting_id": posting.ID, "owner_id": sess.UserID})
	return posting, nil
}

// UpdatePosting merges changes into a posting owned by the caller
func (s *BiddingService) UpdatePosting(ctx context.Context, sess model.Session, id string, changes PostingChanges) (model.BidPosting, error) {
	posting, err := s.ownedPosting(ctx, sess, id)
	if err != nil {
		return model.BidPosting{}, err
	}

	for _, field := range []*string{changes.Name, changes.Address, changes.Description, changes.Categories} {
		if field != nil {
			*field = s.cleanText(*field)
		}
	}
	if err := s.validate.Struct(changes); err != nil {
		return model.BidPosting{}, fmt.Errorf("service: %w - %v", biddingerrors.ErrInvalidPosting, err)
	}

	now := s.clock()
	if changes.BidClosingTime != nil {
		if !changes.BidClosingTime.After(now) {
			return model.BidPosting{}, fmt.Errorf("service: %w - bid closing time must be in the future", biddingerrors.ErrInvalidPosting)
		}
		closes := changes.BidClosingTime.UTC()
		changes.BidClosingTime = &closes
	}
	if changes.Categories != nil {
		if err := s.checkCategory(ctx, *changes.Categories); err != nil {
			return model.BidPosting{}, err
		}
	}

	update := model.PostingUpdate{
		Name:           changes.Name,
		Address:        changes.Address,
		Description:    changes.Description,
		Categories:     changes.Categories,
		BidClosingTime: changes.BidClosingTime,
		UpdatedAt:      now,
	}
	if err := s.repo.UpdatePosting(ctx, id, update); err != nil {
		return model.BidPosting{}, fmt.Errorf("service: failed to update posting %s: %w", id, err)
	}

	updated, err := s.repo.GetPosting(ctx, id)
	if err != nil {
		return model.BidPosting{}, fmt.Errorf("service: failed to reload posting %s: %w", id, err)
	}
	utils.Info("Posting updated", map[string]any{"posting_id": id, "owner_id": posting.UserID})
	return updated, nil
}

// DeletePosting removes a posting owned by the caller and, best effort, its image
func (s *BiddingService) DeletePosting(ctx context.Context, sess model.Session, id string) error {
	posting, err := s.ownedPosting(ctx, sess, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeletePosting(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete posting %s: %w", id, err)
	}
	s.deleteImage(ctx, posting.ImagePath)

	utils.Info("Posting deleted", map[string]any{"posting_id": id, "owner_id": sess.UserID})
	return nil
}

// GetPosting returns a single posting
func (s *BiddingService) GetPosting(ctx context.Context, id string) (model.BidPosting, error) {
	if id == "" {
		return model.BidPosting{}, fmt.Errorf("service: %w - empty posting ID", biddingerrors.ErrInvalidPosting)
	}
	posting, err := s.repo.GetPosting(ctx, id)
	if err != nil {
		return model.BidPosting{}, fmt.Errorf("service: failed to get posting %s: %w", id, err)
	}
	return posting, nil
}

// ListPostings returns postings matching q, soonest closing first
func (s *BiddingService) ListPostings(ctx context.Context, q PostingQuery) ([]model.BidPosting, error) {
	filter := model.PostingFilter{
		OwnerID:  strings.TrimSpace(q.OwnerID),
		Category: strings.TrimSpace(q.Category),
	}
	if q.OpenOnly {
		now := s.clock()
		filter.OpenAt = &now
	}

	postings, err := s.repo.ListPostings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list postings: %w", err)
	}
	return postings, nil
}

// UploadPostingImage stores data as the image of a posting owned by the caller
// and replaces any previous image
func (s *BiddingService) UploadPostingImage(ctx context.Context, sess model.Session, id string, data []byte) (model.BidPosting, error) {
	posting, err := s.ownedPosting(ctx, sess, id)
	if err != nil {
		return model.BidPosting{}, err
	}
	if int64(len(data)) > s.maxImageBytes {
		return model.BidPosting{}, fmt.Errorf("service: %w - %d bytes, limit %d", biddingerrors.ErrImageTooLarge, len(data), s.maxImageBytes)
	}

	contentType, ext, err := objectstore.DetectImage(data)
	if err != nil {
		return model.BidPosting{}, fmt.Errorf("service: %w", err)
	}

	now := s.clock()
	path := utils.ObjectPath(imageFolder, sess.UserID, now, ext)
	url, err := s.objects.Upload(ctx, path, contentType, data)
	if err != nil {
		return model.BidPosting{}, fmt.Errorf("service: failed to upload image for posting %s: %w", id, err)
	}

	update := model.PostingUpdate{Image: &url, ImagePath: &path, UpdatedAt: now}
	if err := s.repo.UpdatePosting(ctx, id, update); err != nil {
		s.deleteImage(context.WithoutCancel(ctx), path)
		return model.BidPosting{}, fmt.Errorf("service: failed to attach image to posting %s: %w", id, err)
	}
	if posting.ImagePath != path {
		s.deleteImage(ctx, posting.ImagePath)
	}

	posting.Image = url
	posting.ImagePath = path
	posting.UpdatedAt = now
	utils.Info("Posting image uploaded", map[string]any{"posting_id": id, "path": path, "bytes": len(data)})
	return posting, nil
}

// ownedPosting loads a posting and checks the caller owns it
func (s *BiddingService) ownedPosting(ctx context.Context, sess model.Session, id string) (model.BidPosting, error) {
	if err := requireSession(sess); err != nil {
		return model.BidPosting{}, err
	}
	if id == "" {
		return model.BidPosting{}, fmt.Errorf("service: %w - empty posting ID", biddingerrors.ErrInvalidPosting)
	}

	posting, err := s.repo.GetPosting(ctx, id)
	if err != nil {
		return model.BidPosting{}, fmt.Errorf("service: failed to load posting %s: %w", id, err)
	}
	if posting.UserID != sess.UserID {
		return model.BidPosting{}, fmt.Errorf("service: %w - posting %s belongs to another buyer", biddingerrors.ErrForbidden, id)
	}
	return posting, nil
}

// checkCategory requires name to be one of the stored categories
func (s *BiddingService) checkCategory(ctx context.Context, name string) error {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to load categories: %w", err)
	}
	if !lo.ContainsBy(categories, func(c model.Category) bool { return c.Name == name }) {
		return fmt.Errorf("service: %w - unknown category %q", biddingerrors.ErrInvalidCategory, name)
	}
	return nil
}

// deleteImage removes a stored image; failures are logged, never returned
func (s *BiddingService) deleteImage(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.objects.Delete(ctx, path); err != nil {
		utils.Warn("Failed to delete posting image", map[string]any{"path": path, "error": err.Error()})
	}
}
