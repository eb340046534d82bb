package attendance

import (
	"context"
	"time"
)

// SlotRepository defines data access for clock events. All methods include
// companyID to prevent cross-company data access.
type SlotRepository interface {
	// Create stores a new clock event
	Create(ctx context.Context, slot Slot) (Slot, error)

	// CloseOpen sets ended_at on the employee's open slot for the date, if any
	CloseOpen(ctx context.Context, employeeID string, workDate time.Time, endedAt time.Time, companyID string) error

	// ListByDate returns the day's slots ordered by start time
	ListByDate(ctx context.Context, employeeID string, workDate time.Time, companyID string) ([]Slot, error)

	// ListByRange returns slots for a date range ordered by start time
	ListByRange(ctx context.Context, employeeID string, startDate, endDate time.Time, companyID string) ([]Slot, error)
}

// CalendarRepository answers holiday and working-day questions for a company.
type CalendarRepository interface {
	IsHoliday(ctx context.Context, workDate time.Time, companyID string) (bool, error)
	IsWorkingDay(ctx context.Context, workDate time.Time, companyID string) (bool, error)
}

// EditRequestRepository defines data access for manual time-edit requests.
type EditRequestRepository interface {
	Create(ctx context.Context, req EditRequest) (EditRequest, error)
	HasPendingForDate(ctx context.Context, employeeID string, workDate time.Time, companyID string) (bool, error)
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]EditRequest, error)
}

// BranchRepository resolves the timezone that determines an employee's local
// work date.
type BranchRepository interface {
	GetTimezoneByEmployeeID(ctx context.Context, employeeID string, companyID string) (string, error)
}
