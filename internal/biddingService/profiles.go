package bidding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/utils"

	"github.com/samber/lo"
)

// ProfileInput is what a user submits when completing sign-up or editing their profile
type ProfileInput struct {
	Username     string     `validate:"required,max=100"`
	PhoneNumber  string     `validate:"omitempty,max=32"`
	Role         model.Role `validate:"required,oneof=buyer entrepreneur"`
	ProfileImage string     `validate:"omitempty,url"`
}

// SaveProfile writes the caller's profile. The role is fixed after the first save.
func (s *BiddingService) SaveProfile(ctx context.Context, sess model.Session, in ProfileInput) (model.Profile, error) {
	if err := requireSession(sess); err != nil {
		return model.Profile{}, err
	}

	in.Username = s.cleanText(in.Username)
	in.PhoneNumber = s.cleanText(in.PhoneNumber)
	in.ProfileImage = strings.TrimSpace(in.ProfileImage)
	if err := s.validate.Struct(in); err != nil {
		return model.Profile{}, fmt.Errorf("service: %w - %v", biddingerrors.ErrInvalidProfile, err)
	}

	profile := model.Profile{
		UID:          sess.UserID,
		Email:        sess.Email,
		Username:     in.Username,
		PhoneNumber:  in.PhoneNumber,
		Role:         in.Role,
		ProfileImage: in.ProfileImage,
	}

	existing, err := s.repo.GetProfile(ctx, sess.UserID)
	switch {
	case err == nil:
		if existing.Role.Valid() && existing.Role != in.Role {
			return model.Profile{}, fmt.Errorf("service: %w - role is already %s", biddingerrors.ErrForbidden, existing.Role)
		}
		profile.CreatedAt = existing.CreatedAt
		if profile.Email == "" {
			profile.Email = existing.Email
		}
	case errors.Is(err, biddingerrors.ErrProfileNotFound):
		profile.CreatedAt = s.clock()
	default:
		return model.Profile{}, fmt.Errorf("service: failed to load profile %s: %w", sess.UserID, err)
	}

	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return model.Profile{}, fmt.Errorf("service: failed to save profile %s: %w", sess.UserID, err)
	}

	utils.Info("Profile saved", map[string]any{"user_id": sess.UserID, "role": profile.Role})
	return profile, nil
}

// GetProfile returns the merged profile of a user
func (s *BiddingService) GetProfile(ctx context.Context, uid string) (model.Profile, error) {
	if uid == "" {
		return model.Profile{}, fmt.Errorf("service: %w - empty user ID", biddingerrors.ErrProfileNotFound)
	}
	profile, err := s.repo.GetProfile(ctx, uid)
	if err != nil {
		return model.Profile{}, fmt.Errorf("service: failed to get profile %s: %w", uid, err)
	}
	return profile, nil
}

// ListCategories returns every posting category ordered by name
func (s *BiddingService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory adds a posting category. Names are unique regardless of case.
func (s *BiddingService) CreateCategory(ctx context.Context, sess model.Session, name string) (model.Category, error) {
	if err := requireSession(sess); err != nil {
		return model.Category{}, err
	}

	name = s.cleanText(name)
	if name == "" || len(name) > 100 {
		return model.Category{}, fmt.Errorf("service: %w - name must be 1 to 100 characters", biddingerrors.ErrInvalidCategory)
	}

	existing, err := s.repo.ListCategories(ctx)
	if err != nil {
		return model.Category{}, fmt.Errorf("service: failed to load categories: %w", err)
	}
	if lo.ContainsBy(existing, func(c model.Category) bool { return strings.EqualFold(c.Name, name) }) {
		return model.Category{}, fmt.Errorf("service: %w - %q already exists", biddingerrors.ErrInvalidCategory, name)
	}

	category, err := s.repo.CreateCategory(ctx, model.Category{Name: name})
	if err != nil {
		return model.Category{}, fmt.Errorf("service: failed to create category %q: %w", name, err)
	}
	utils.Info("Category created", map[string]any{"category_id": category.ID, "name": name})
	return category, nil
}

// EnsureCategories creates whichever of names is missing. It returns how many were added.
func (s *BiddingService) EnsureCategories(ctx context.Context, names []string) (int, error) {
	existing, err := s.repo.ListCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: failed to load categories: %w", err)
	}
	known := lo.SliceToMap(existing, func(c model.Category) (string, struct{}) {
		return strings.ToLower(c.Name), struct{}{}
	})

	added := 0
	for _, name := range lo.Uniq(lo.Map(names, func(n string, _ int) string { return strings.TrimSpace(n) })) {
		key := strings.ToLower(name)
		if name == "" {
			continue
		}
		if _, ok := known[key]; ok {
			continue
		}
		if _, err := s.repo.CreateCategory(ctx, model.Category{Name: name}); err != nil {
			return added, fmt.Errorf("service: failed to seed category %q: %w", name, err)
		}
		known[key] = struct{}{}
		added++
	}
	return added, nil
}
