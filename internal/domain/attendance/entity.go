package attendance

import (
	"time"
)

// SlotType classifies a clock event, and doubles as the derived display
// status for a day. Only START, RESUME, PAUSE and END are ever stored; the
// rest are computed.
type SlotType string

const (
	SlotReady  SlotType = "READY"
	SlotStart  SlotType = "START"
	SlotResume SlotType = "RESUME"
	SlotPause  SlotType = "PAUSE"
	SlotEnd    SlotType = "END"

	// Calendar overrides. Terminal for the whole day regardless of any
	// slot history.
	SlotHoliday       SlotType = "HOLIDAY"
	SlotNonWorkingDay SlotType = "NON_WORKING_DAY"
	SlotLeaveDay      SlotType = "LEAVE_DAY"
)

// IsStored reports whether t is a persistable clock event.
func (t SlotType) IsStored() bool {
	switch t {
	case SlotStart, SlotResume, SlotPause, SlotEnd:
		return true
	}
	return false
}

// IsActive reports whether t means the timer is running.
func (t SlotType) IsActive() bool {
	return t == SlotStart || t == SlotResume
}

// IsTerminal reports whether t disables clock actions for the rest of the day.
func (t SlotType) IsTerminal() bool {
	switch t {
	case SlotEnd, SlotHoliday, SlotNonWorkingDay, SlotLeaveDay:
		return true
	}
	return false
}

// Slot is a single clock event. Immutable once stored except through explicit
// time-edit requests; the set of a day's slots is the unit worked duration is
// derived from.
type Slot struct {
	ID         string
	EmployeeID string
	CompanyID  string
	WorkDate   time.Time
	Type       SlotType
	StartedAt  time.Time
	EndedAt    *time.Time
	IsManual   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DayContext is the calendar state of a work date, looked up independently of
// the slot sequence.
type DayContext struct {
	IsHoliday       bool
	IsNonWorkingDay bool
	IsLeaveDay      bool
}

// EditRequestStatus tracks the lifecycle of a manual time-edit request.
type EditRequestStatus string

const (
	EditRequestPending  EditRequestStatus = "pending"
	EditRequestApproved EditRequestStatus = "approved"
	EditRequestRejected EditRequestStatus = "rejected"
)

// EditRequest is a manual correction of a day's clock times. While one is
// pending for a date, live tracking for that date is disabled.
type EditRequest struct {
	ID           string
	EmployeeID   string
	CompanyID    string
	WorkDate     time.Time
	RequestedIn  *time.Time
	RequestedOut *time.Time
	Reason       string
	Status       EditRequestStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
