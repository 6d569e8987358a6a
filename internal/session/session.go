// Package session resolves the caller of an HTTP request into a models.Session.
package session

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"

	ginKey = "session"
)

// Verifier authenticates a request. It never issues credentials.
type Verifier interface {
	Verify(ctx context.Context, r *http.Request) (model.Session, error)
}

// HeaderVerifier trusts identity headers set by a gateway in front of the service
type HeaderVerifier struct{}

func (HeaderVerifier) Verify(_ context.Context, r *http.Request) (model.Session, error) {
	uid := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if uid == "" {
		return model.Session{}, fmt.Errorf("%w: missing %s header", biddingerrors.ErrUnauthenticated, HeaderUserID)
	}
	return model.Session{
		UserID: uid,
		Email:  strings.TrimSpace(r.Header.Get(HeaderUserEmail)),
	}, nil
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", fmt.Errorf("%w: missing bearer token", biddingerrors.ErrUnauthenticated)
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", fmt.Errorf("%w: empty bearer token", biddingerrors.ErrUnauthenticated)
	}
	return token, nil
}

// Set stores the session on the gin context
func Set(c *gin.Context, s model.Session) {
	c.Set(ginKey, s)
}

// FromGin returns the session stored by Set
func FromGin(c *gin.Context) (model.Session, bool) {
	v, ok := c.Get(ginKey)
	if !ok {
		return model.Session{}, false
	}
	s, ok := v.(model.Session)
	return s, ok && s.Authenticated()
}
