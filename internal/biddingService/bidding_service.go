package bidding

import (
	"fmt"
	"html"
	"strings"
	"time"

	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/internal/locker"
	"marketplace-bidding/internal/objectstore"
	"marketplace-bidding/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

const (
	// unknownBuyer names a buyer whose profile cannot be found
	unknownBuyer = "Unknown"

	imageFolder = "bid-images"

	defaultMaxImageBytes = 5 << 20
	defaultDeleteWorkers = 8
)

// BiddingService defines the business logic of the bid lifecycle
type BiddingService struct {
	repo     repository.MarketplaceDB
	objects  objectstore.ObjectStore
	locks    locker.Locker
	validate *validator.Validate
	policy   *bluemonday.Policy

	now           func() time.Time
	maxImageBytes int64
	deleteWorkers int
}

// Option customises a BiddingService
type Option func(*BiddingService)

// WithClock replaces the wall clock, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(s *BiddingService) {
		s.now = now
	}
}

// WithMaxImageBytes caps the size of posting images
func WithMaxImageBytes(n int64) Option {
	return func(s *BiddingService) {
		if n > 0 {
			s.maxImageBytes = n
		}
	}
}

// WithDeleteWorkers bounds how many notification deletes run at once
func WithDeleteWorkers(n int) Option {
	return func(s *BiddingService) {
		if n > 0 {
			s.deleteWorkers = n
		}
	}
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.MarketplaceDB, objects objectstore.ObjectStore, locks locker.Locker, opts ...Option) *BiddingService {
	s := &BiddingService{
		repo:          repo,
		objects:       objects,
		locks:         locks,
		validate:      validator.New(),
		policy:        bluemonday.StrictPolicy(),
		now:           time.Now,
		maxImageBytes: defaultMaxImageBytes,
		deleteWorkers: defaultDeleteWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *BiddingService) clock() time.Time {
	return s.now().UTC()
}

// cleanText strips markup and surrounding whitespace from user supplied text
func (s *BiddingService) cleanText(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}

// requireSession rejects anonymous callers
func requireSession(sess model.Session) error {
	if !sess.Authenticated() {
		return fmt.Errorf("service: %w", biddingerrors.ErrUnauthenticated)
	}
	return nil
}

// requireRole rejects callers that are anonymous or hold another role
func requireRole(sess model.Session, role model.Role) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if sess.Role != role {
		return fmt.Errorf("service: %w - %s only", biddingerrors.ErrForbidden, role)
	}
	return nil
}
