package biddingerrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrPostingNotFound      = errors.New("bid posting not found")
	ErrPlacedBidNotFound    = errors.New("placed bid not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrObjectNotFound       = errors.New("object not found")
	ErrInvalidStatus        = errors.New("invalid stored status")
)

// business logic errors
var (
	ErrInvalidAmount        = errors.New("invalid bid amount")
	ErrInvalidPosting       = errors.New("invalid bid posting")
	ErrInvalidProfile       = errors.New("invalid profile")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidNotification  = errors.New("invalid notification operation")
	ErrInvalidImage         = errors.New("invalid image")
	ErrImageTooLarge        = errors.New("image too large")
	ErrBiddingClosed        = errors.New("bidding closed for posting")
	ErrBidAlreadyAccepted   = errors.New("bid already accepted")
	ErrAcceptanceInProgress = errors.New("bid acceptance already in progress")
)

// caller errors
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrRateLimited     = errors.New("too many requests")
)

// StepError reports which step of a multi-write sequence failed and whether
// undoing the earlier steps succeeded.
type StepError struct {
	Saga            string
	Step            string
	Err             error
	CompensationErr error
}

func (e *StepError) Error() string {
	if e.CompensationErr != nil {
		return fmt.Sprintf("%s: step %s failed: %v (compensation failed: %v)", e.Saga, e.Step, e.Err, e.CompensationErr)
	}
	return fmt.Sprintf("%s: step %s failed: %v", e.Saga, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
