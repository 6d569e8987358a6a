package session

import (
	"context"
	"fmt"
	"net/http"

	"marketplace-bidding/internal/biddingerrors"
	model "marketplace-bidding/internal/models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

// IDTokenVerifier is the part of the Firebase auth client used here
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseVerifier authenticates requests carrying a Firebase ID token
type FirebaseVerifier struct {
	tokens IDTokenVerifier
}

// NewFirebaseVerifier opens the auth client of an initialised Firebase app
func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (*FirebaseVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: open auth client: %w", err)
	}
	return NewFirebaseVerifierWith(client), nil
}

// NewFirebaseVerifierWith wraps any ID token verifier
func NewFirebaseVerifierWith(tokens IDTokenVerifier) *FirebaseVerifier {
	return &FirebaseVerifier{tokens: tokens}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, r *http.Request) (model.Session, error) {
	raw, err := bearerToken(r)
	if err != nil {
		return model.Session{}, err
	}

	token, err := v.tokens.VerifyIDToken(ctx, raw)
	if err != nil {
		return model.Session{}, fmt.Errorf("%w: %v", biddingerrors.ErrUnauthenticated, err)
	}

	email, _ := token.Claims["email"].(string)
	return model.Session{UserID: token.UID, Email: email}, nil
}
