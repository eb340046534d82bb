package response

import (
	"errors"
	"net/http"

	"github.com/worklens/hr-portal-go/internal/domain/attendance"
	"github.com/worklens/hr-portal-go/internal/domain/leave"
	"github.com/worklens/hr-portal-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Attendance domain errors
	switch {
	case errors.Is(err, attendance.ErrInvalidTransition):
		Conflict(w, "Clock action is not valid for the current status")
	case errors.Is(err, attendance.ErrDayNotTrackable):
		Conflict(w, "Clock actions are disabled for this day")
	case errors.Is(err, attendance.ErrEditPending):
		Conflict(w, "A time edit request is already pending for this day")
	case errors.Is(err, attendance.ErrUnknownAction):
		BadRequest(w, "Unknown clock action", nil)
	case errors.Is(err, attendance.ErrSlotNotFound):
		NotFound(w, "Attendance slot not found")
	case errors.Is(err, attendance.ErrEditRequestNotFound):
		NotFound(w, "Time edit request not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
