package response

import (
	"errors"
	"net/http"

	"github.com/staffdeck/staffdeck-backend-go/internal/domain/assignment"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/auth"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/client"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/event"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/operator"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/user"
	"github.com/staffdeck/staffdeck-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrClientNameExists):
		Conflict(w, "Client name already exists")

	// Operator domain errors
	case errors.Is(err, operator.ErrOperatorNotFound):
		NotFound(w, "Operator not found")
	case errors.Is(err, operator.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, operator.ErrOperatorInactive):
		Conflict(w, "Operator is inactive")
	case errors.Is(err, operator.ErrOperatorHasShifts):
		Conflict(w, "Operator still has assignments")

	// Event domain errors
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Event not found")
	case errors.Is(err, event.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, event.ErrEventCancelled):
		Conflict(w, "Event is cancelled")
	case errors.Is(err, event.ErrInvalidDateRange):
		BadRequest(w, "end_at must be after start_at", nil)
	case errors.Is(err, event.ErrShiftNotFound):
		NotFound(w, "Shift template not found")

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, assignment.ErrAlreadyAssigned):
		Conflict(w, "Operator already assigned to this event")
	case errors.Is(err, assignment.ErrAlreadyCheckedIn):
		Conflict(w, "Assignment already checked in")
	case errors.Is(err, assignment.ErrNotCheckedIn):
		Conflict(w, "Assignment has no check-in")
	case errors.Is(err, assignment.ErrEventCancelled):
		Conflict(w, "Cannot record attendance on a cancelled event")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
