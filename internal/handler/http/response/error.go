package response

import (
	"errors"
	"net/http"

	"github.com/fdestech/timetrack-backend-go/internal/domain/auth"
	"github.com/fdestech/timetrack-backend-go/internal/domain/user"
	"github.com/fdestech/timetrack-backend-go/internal/domain/workentry"
	"github.com/fdestech/timetrack-backend-go/internal/domain/workhour"
	"github.com/fdestech/timetrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound),
		errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token missing")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrEmailNotRegistered):
		Forbidden(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already registered")
	case errors.Is(err, user.ErrLastManager):
		Conflict(w, "Cannot remove the last manager")
	case errors.Is(err, user.ErrSelfDelete):
		Conflict(w, "Cannot delete your own account")
	case errors.Is(err, user.ErrReviewerRoleRequired),
		errors.Is(err, user.ErrManagerRoleRequired),
		errors.Is(err, user.ErrEmployeeRoleRequired):
		Forbidden(w, err.Error())

	// Work entry domain errors
	case errors.Is(err, workentry.ErrEntryNotFound):
		NotFound(w, "Work entry not found")
	case errors.Is(err, workentry.ErrDuplicateEntry):
		Conflict(w, "A work entry already exists for this date")
	case errors.Is(err, workentry.ErrDateNotAllowed):
		BadRequest(w, "Entries can only be logged for today or an approved past date", nil)
	case errors.Is(err, workentry.ErrEntryAlreadyReviewed):
		Conflict(w, "Work entry has already been reviewed")

	// Work hour request domain errors
	case errors.Is(err, workhour.ErrRequestNotFound):
		NotFound(w, "Work hour request not found")
	case errors.Is(err, workhour.ErrDuplicatePendingRequest):
		Conflict(w, "A request for this date is already pending")
	case errors.Is(err, workhour.ErrDateAlreadyLogged):
		Conflict(w, "A work entry already exists for this date")
	case errors.Is(err, workhour.ErrDateNotInPast):
		BadRequest(w, "Work hours can only be requested for past dates", nil)
	case errors.Is(err, workhour.ErrRequestAlreadyProcessed):
		Conflict(w, "Work hour request has already been processed")
	case errors.Is(err, workhour.ErrAccessDenied):
		Forbidden(w, "Access denied")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
