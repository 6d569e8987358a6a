package server

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/internal/session"
	"marketplace-bidding/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}
	if sess, ok := session.FromGin(c); ok {
		fields["user_id"] = sess.UserID
	}
	utils.Info("HTTP Request", fields)
}

// ProfileReader resolves the stored profile of an authenticated user
type ProfileReader interface {
	GetProfile(ctx context.Context, uid string) (model.Profile, error)
}

// SessionMiddleware authenticates the request and completes the session with
// the caller's role and username. Users without a profile yet are let through
// with an empty role so they can create one.
func SessionMiddleware(verifier session.Verifier, profiles ProfileReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sess, err := verifier.Verify(ctx, c.Request)
		if err != nil {
			utils.JSONAbort(c, http.StatusUnauthorized, err, "authentication required")
			utils.Warn("SessionMiddleware: authentication failed", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			return
		}

		profile, err := profiles.GetProfile(ctx, sess.UserID)
		switch {
		case err == nil:
			sess.Role = profile.Role
			sess.Username = profile.Username
			if sess.Email == "" {
				sess.Email = profile.Email
			}
		case errors.Is(err, biddingerrors.ErrProfileNotFound):
			utils.Debug("SessionMiddleware: no profile yet", map[string]any{"user_id": sess.UserID})
		default:
			utils.JSONAbort(c, http.StatusInternalServerError, errors.New("internal server error"), "internal server error")
			utils.Error("SessionMiddleware: failed to load profile", map[string]any{
				"user_id": sess.UserID,
				"error":   err.Error(),
			})
			return
		}

		session.Set(c, sess)
		c.Next()
	}
}

// BodyLimitMiddleware caps the request body at limit bytes
func BodyLimitMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// limiterIdleTTL is how long an unused per-user limiter is kept
const limiterIdleTTL = 10 * time.Minute

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per authenticated user with a token bucket
type RateLimiter struct {
	mu        sync.Mutex
	users     map[string]*userLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter allows perSecond requests per user with bursts of burst
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		users: make(map[string]*userLimiter),
		limit: rate.Limit(perSecond),
		burst: burst,
		now:   time.Now,
	}
}

// Allow reports whether key may proceed now
func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) > limiterIdleTTL {
		for k, u := range r.users {
			if now.Sub(u.lastSeen) > limiterIdleTTL {
				delete(r.users, k)
			}
		}
		r.lastSweep = now
	}

	u, ok := r.users[key]
	if !ok {
		u = &userLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.users[key] = u
	}
	u.lastSeen = now
	return u.limiter.AllowN(now, 1)
}

// retryAfter is the number of whole seconds until one token is refilled
func (r *RateLimiter) retryAfter() int {
	if r.limit <= 0 {
		return 60
	}
	return int(math.Ceil(1 / float64(r.limit)))
}

// Middleware rejects a user's requests beyond the configured rate with 429.
// It must run after SessionMiddleware.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if sess, ok := session.FromGin(c); ok {
			key = sess.UserID
		}

		if !r.Allow(key) {
			c.Header("Retry-After", strconv.Itoa(r.retryAfter()))
			utils.JSONAbort(c, http.StatusTooManyRequests,
				fmt.Errorf("%w: slow down before placing another bid", biddingerrors.ErrRateLimited), "too many requests")
			utils.Warn("RateLimiter: request throttled", map[string]any{
				"key":  key,
				"path": c.Request.URL.Path,
			})
			return
		}
		c.Next()
	}
}
