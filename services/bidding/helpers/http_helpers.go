package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"marketplace-bidding/internal/biddingerrors"
	"marketplace-bidding/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var stepErr *biddingerrors.StepError
	switch {
	case errors.As(err, &stepErr):
		return http.StatusInternalServerError, "internal server error"
	case errors.Is(err, biddingerrors.ErrPostingNotFound):
		return http.StatusNotFound, "bid posting not found"
	case errors.Is(err, biddingerrors.ErrPlacedBidNotFound):
		return http.StatusNotFound, "placed bid not found"
	case errors.Is(err, biddingerrors.ErrNotificationNotFound):
		return http.StatusNotFound, "notification not found"
	case errors.Is(err, biddingerrors.ErrProfileNotFound):
		return http.StatusNotFound, "profile not found"
	case errors.Is(err, biddingerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "please enter a valid bid amount"
	case errors.Is(err, biddingerrors.ErrInvalidPosting):
		return http.StatusBadRequest, "invalid bid posting details"
	case errors.Is(err, biddingerrors.ErrInvalidProfile):
		return http.StatusBadRequest, "invalid profile details"
	case errors.Is(err, biddingerrors.ErrInvalidCategory):
		return http.StatusBadRequest, "invalid category"
	case errors.Is(err, biddingerrors.ErrInvalidNotification):
		return http.StatusBadRequest, "invalid notification operation"
	case errors.Is(err, biddingerrors.ErrInvalidImage):
		return http.StatusBadRequest, "unsupported image type"
	case errors.Is(err, biddingerrors.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge, "image too large"
	case errors.Is(err, biddingerrors.ErrBiddingClosed):
		return http.StatusConflict, "bidding is closed for this posting"
	case errors.Is(err, biddingerrors.ErrBidAlreadyAccepted):
		return http.StatusConflict, "bid already accepted"
	case errors.Is(err, biddingerrors.ErrAcceptanceInProgress):
		return http.StatusConflict, "bid acceptance already in progress"
	case errors.Is(err, biddingerrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, biddingerrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, biddingerrors.ErrRateLimited):
		return http.StatusTooManyRequests, "too many requests"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ClientError is the error reported in a response body. Server failures
// carry only the generic message; their detail stays in the log.
func ClientError(status int, message string, err error) error {
	if status >= http.StatusInternalServerError {
		return errors.New(message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// HandleServiceError writes the mapped error response and logs it, as a
// warning for caller errors and as an error for server failures
func HandleServiceError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, ClientError(status, message, err), message)

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
