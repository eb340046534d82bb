package attendance

import "errors"

// Attendance domain errors
var (
	// Clock action errors
	ErrInvalidTransition = errors.New("clock action is not valid for the current status")
	ErrDayNotTrackable   = errors.New("clock actions are disabled for this day")
	ErrEditPending       = errors.New("a time edit request is already pending for this day")
	ErrUnknownAction     = errors.New("unknown clock action")

	// General errors
	ErrSlotNotFound        = errors.New("attendance slot not found")
	ErrEditRequestNotFound = errors.New("time edit request not found")
)
