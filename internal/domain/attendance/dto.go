package attendance

import (
	"github.com/worklens/hr-portal-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// ClockRequest posts a single clock action. The action is validated against
// the current derived status server-side.
type ClockRequest struct {
	Action string `json:"action"`
	Manual bool   `json:"manual,omitempty"`
}

// actionSlotTypes maps wire actions to the slot event they create.
var actionSlotTypes = map[string]SlotType{
	"start":  SlotStart,
	"pause":  SlotPause,
	"resume": SlotResume,
	"end":    SlotEnd,
}

// SlotType resolves the wire action into a stored slot type.
func (r *ClockRequest) SlotType() (SlotType, bool) {
	t, ok := actionSlotTypes[r.Action]
	return t, ok
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action is required",
		})
	} else if _, ok := actionSlotTypes[r.Action]; !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of start, pause, resume, end",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StatusResponse is the authoritative snapshot of a day. WorkedSeconds and
// ActiveSince let a client tick a local timer between reconciliations; the
// server value always wins on the next fetch.
type StatusResponse struct {
	EmployeeID       string         `json:"employee_id"`
	Date             string         `json:"date"`
	Status           SlotType       `json:"status"`
	WorkedSeconds    int64          `json:"worked_seconds"`
	WorkedFormatted  string         `json:"worked_formatted"`
	ActiveSince      *string        `json:"active_since,omitempty"`
	ServerTime       string         `json:"server_time"`
	ControlsDisabled bool           `json:"controls_disabled"`
	Slots            []SlotResponse `json:"slots"`
}

type SlotResponse struct {
	ID        string   `json:"id"`
	Type      SlotType `json:"slot_type"`
	StartedAt string   `json:"started_at"`
	EndedAt   *string  `json:"ended_at,omitempty"`
	IsManual  bool     `json:"is_manual"`
}

// TimesheetFilter selects a date range of the authenticated employee's days.
type TimesheetFilter struct {
	StartDate string
	EndDate   string
}

func (f *TimesheetFilter) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(f.StartDate)
	if f.StartDate == "" || !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	end, okEnd := validator.IsValidDate(f.EndDate)
	if f.EndDate == "" || !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimesheetDayResponse struct {
	Date            string   `json:"date"`
	Status          SlotType `json:"status"`
	WorkedSeconds   int64    `json:"worked_seconds"`
	WorkedFormatted string   `json:"worked_formatted"`
	HasManualEntry  bool     `json:"has_manual_entry"`
}

type TimesheetResponse struct {
	EmployeeID     string                 `json:"employee_id"`
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	TotalSeconds   int64                  `json:"total_seconds"`
	TotalFormatted string                 `json:"total_formatted"`
	Days           []TimesheetDayResponse `json:"days"`
}

// SubmitEditRequest files a manual correction for a day's clock times.
type SubmitEditRequest struct {
	Date         string  `json:"date"`
	RequestedIn  *string `json:"requested_in,omitempty"`
	RequestedOut *string `json:"requested_out,omitempty"`
	Reason       string  `json:"reason"`
}

func (r *SubmitEditRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}

	if r.RequestedIn == nil && r.RequestedOut == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_in",
			Message: "at least one of requested_in or requested_out is required",
		})
	}

	if r.RequestedIn != nil {
		if _, ok := validator.IsValidDateTime(*r.RequestedIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "requested_in",
				Message: "requested_in must be an ISO8601 timestamp",
			})
		}
	}

	if r.RequestedOut != nil {
		if _, ok := validator.IsValidDateTime(*r.RequestedOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "requested_out",
				Message: "requested_out must be an ISO8601 timestamp",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EditRequestResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	RequestedIn  *string `json:"requested_in,omitempty"`
	RequestedOut *string `json:"requested_out,omitempty"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}
