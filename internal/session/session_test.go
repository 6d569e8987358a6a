package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeTokens map[string]*auth.Token

func (f fakeTokens) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	token, ok := f[idToken]
	if !ok {
		return nil, errors.New("ID token has expired")
	}
	return token, nil
}

func TestHeaderVerifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		headers     map[string]string
		want        model.Session
		expectError bool
	}{
		{
			name:    "id_and_email",
			headers: map[string]string{HeaderUserID: "buyer1", HeaderUserEmail: "buyer1@example.com"},
			want:    model.Session{UserID: "buyer1", Email: "buyer1@example.com"},
		},
		{name: "id_only", headers: map[string]string{HeaderUserID: " ent1 "}, want: model.Session{UserID: "ent1"}},
		{name: "missing_id", headers: map[string]string{HeaderUserEmail: "x@example.com"}, expectError: true},
		{name: "blank_id", headers: map[string]string{HeaderUserID: "   "}, expectError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			got, err := HeaderVerifier{}.Verify(context.Background(), req)
			if tc.expectError {
				require.True(t, errors.Is(err, biddingerrors.ErrUnauthenticated), "got: %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFirebaseVerifier(t *testing.T) {
	t.Parallel()

	verifier := NewFirebaseVerifierWith(fakeTokens{
		"good-token": {UID: "ent1", Claims: map[string]interface{}{"email": "ent1@example.com"}},
		"no-email":   {UID: "buyer1", Claims: map[string]interface{}{}},
	})

	tests := []struct {
		name        string
		header      string
		want        model.Session
		expectError bool
	}{
		{name: "valid_token", header: "Bearer good-token", want: model.Session{UserID: "ent1", Email: "ent1@example.com"}},
		{name: "token_without_email", header: "Bearer no-email", want: model.Session{UserID: "buyer1"}},
		{name: "rejected_token", header: "Bearer forged", expectError: true},
		{name: "missing_header", header: "", expectError: true},
		{name: "wrong_scheme", header: "Basic abc", expectError: true},
		{name: "empty_token", header: "Bearer   ", expectError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			got, err := verifier.Verify(context.Background(), req)
			if tc.expectError {
				require.True(t, errors.Is(err, biddingerrors.ErrUnauthenticated), "got: %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestGinRoundTrip(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := FromGin(c)
	require.False(t, ok)

	Set(c, model.Session{UserID: "buyer1", Role: model.RoleBuyer})
	got, ok := FromGin(c)
	require.True(t, ok)
	require.Equal(t, model.RoleBuyer, got.Role)
}
