package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"
	"marketplace-bidding/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubProfiles map[string]model.Profile

func (s stubProfiles) GetProfile(_ context.Context, uid string) (model.Profile, error) {
	if uid == "broken" {
		return model.Profile{}, errors.New("store unavailable")
	}
	p, ok := s[uid]
	if !ok {
		return model.Profile{}, biddingerrors.ErrProfileNotFound
	}
	return p, nil
}

func TestSessionMiddleware(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	profiles := stubProfiles{"buyer1": {UID: "buyer1", Username: "Asha", Email: "asha@example.com", Role: model.RoleBuyer}}
	router := gin.New()
	router.GET("/me", SessionMiddleware(session.HeaderVerifier{}, profiles), func(c *gin.Context) {
		sess, ok := session.FromGin(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, sess)
	})

	tests := []struct {
		name           string
		userID         string
		expectedStatus int
		expected       model.Session
	}{
		{name: "no_identity", userID: "", expectedStatus: http.StatusUnauthorized},
		{
			name:           "profile_completes_session",
			userID:         "buyer1",
			expectedStatus: http.StatusOK,
			expected:       model.Session{UserID: "buyer1", Email: "asha@example.com", Role: model.RoleBuyer, Username: "Asha"},
		},
		{
			name:           "no_profile_yet",
			userID:         "newcomer",
			expectedStatus: http.StatusOK,
			expected:       model.Session{UserID: "newcomer"},
		},
		{name: "profile_store_down", userID: "broken", expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.userID != "" {
				req.Header.Set(session.HeaderUserID, tc.userID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusOK {
				var got model.Session
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				require.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 2)
	limiter.now = func() time.Time { return now }

	require.True(t, limiter.Allow("ent1"))
	require.True(t, limiter.Allow("ent1"))
	require.False(t, limiter.Allow("ent1"), "burst exhausted")
	require.True(t, limiter.Allow("ent2"), "users are limited independently")

	now = now.Add(time.Second)
	require.True(t, limiter.Allow("ent1"), "one token refilled")

	now = now.Add(limiterIdleTTL + time.Minute)
	require.True(t, limiter.Allow("ent3"))
	require.Len(t, limiter.users, 1, "idle limiters are swept")
}

func TestRateLimiter_Middleware(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(0.5, 1)
	router := gin.New()
	router.POST("/bids", func(c *gin.Context) {
		session.Set(c, model.Session{UserID: c.GetHeader(session.HeaderUserID)})
		c.Next()
	}, limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	send := func(uid string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/bids", nil)
		req.Header.Set(session.HeaderUserID, uid)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusCreated, send("ent1").Code)

	w := send("ent1")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "2", w.Header().Get("Retry-After"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "too many requests", resp["message"])

	require.Equal(t, http.StatusCreated, send("ent2").Code)
}
