package attendance

import (
	"context"
)

// AttendanceService defines business logic for the attendance status engine
type AttendanceService interface {
	// Status returns the authoritative snapshot for the employee's current
	// local day
	Status(ctx context.Context) (StatusResponse, error)

	// Clock validates and stores a clock action, then returns the snapshot
	// re-derived from the fresh slot list
	Clock(ctx context.Context, req ClockRequest) (StatusResponse, error)

	// Timesheet returns per-day worked durations over a date range
	Timesheet(ctx context.Context, filter TimesheetFilter) (TimesheetResponse, error)

	// SubmitEditRequest files a manual correction for a day's clock times
	SubmitEditRequest(ctx context.Context, req SubmitEditRequest) (EditRequestResponse, error)

	// ListEditRequests returns the employee's edit requests, newest first
	ListEditRequests(ctx context.Context) ([]EditRequestResponse, error)
}
