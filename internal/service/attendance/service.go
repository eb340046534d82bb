package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/worklens/hr-portal-go/internal/domain/attendance"
	"github.com/worklens/hr-portal-go/internal/domain/leave"
	"github.com/worklens/hr-portal-go/internal/pkg/database"
	"github.com/worklens/hr-portal-go/internal/pkg/timeutil"
	"github.com/worklens/hr-portal-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.SlotRepository
	attendance.CalendarRepository
	attendance.EditRequestRepository
	attendance.BranchRepository
	leaveDays leave.LeaveDayRepository
	now       func() time.Time
	runInTx   func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAttendanceService(
	db *database.DB,
	slotRepo attendance.SlotRepository,
	calendarRepo attendance.CalendarRepository,
	editRequestRepo attendance.EditRequestRepository,
	branchRepo attendance.BranchRepository,
	leaveDayRepo leave.LeaveDayRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                    db,
		SlotRepository:        slotRepo,
		CalendarRepository:    calendarRepo,
		EditRequestRepository: editRequestRepo,
		BranchRepository:      branchRepo,
		leaveDays:             leaveDayRepo,
		now:                   func() time.Time { return time.Now().UTC() },
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				txCtx := context.WithValue(ctx, "tx", tx)
				return fn(txCtx)
			})
		},
	}
}

// identityFromContext pulls the employee and company the token was issued
// for.
func identityFromContext(ctx context.Context) (employeeID, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok = claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, companyID, nil
}

// location resolves the employee's branch timezone. Employees without a
// branch fall back to UTC rather than failing the snapshot.
func (a *AttendanceServiceImpl) location(ctx context.Context, employeeID, companyID string) (*time.Location, error) {
	timezoneStr, err := a.BranchRepository.GetTimezoneByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.UTC, nil
		}
		return nil, fmt.Errorf("failed to get timezone by employee ID: %w", err)
	}

	loc, err := time.LoadLocation(timezoneStr)
	if err != nil {
		loc = time.UTC
	}
	return loc, nil
}

// dayContext looks up the calendar state of a local work date.
func (a *AttendanceServiceImpl) dayContext(ctx context.Context, employeeID, companyID string, workDate time.Time) (attendance.DayContext, error) {
	day := attendance.DayContext{}

	isLeave, err := a.leaveDays.IsLeaveDay(ctx, employeeID, workDate, companyID)
	if err != nil {
		return day, fmt.Errorf("failed to check leave day: %w", err)
	}
	day.IsLeaveDay = isLeave

	isHoliday, err := a.CalendarRepository.IsHoliday(ctx, workDate, companyID)
	if err != nil {
		return day, fmt.Errorf("failed to check holiday: %w", err)
	}
	day.IsHoliday = isHoliday

	isWorking, err := a.CalendarRepository.IsWorkingDay(ctx, workDate, companyID)
	if err != nil {
		return day, fmt.Errorf("failed to check working day: %w", err)
	}
	day.IsNonWorkingDay = !isWorking

	return day, nil
}

// Status implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Status(ctx context.Context) (attendance.StatusResponse, error) {
	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	loc, err := a.location(ctx, employeeID, companyID)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	nowUTC := a.now()
	workDate := localWorkDate(nowUTC, loc)

	return a.snapshot(ctx, employeeID, companyID, workDate, nowUTC)
}

// Clock implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Clock(ctx context.Context, req attendance.ClockRequest) (attendance.StatusResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.StatusResponse{}, err
	}

	slotType, ok := req.SlotType()
	if !ok {
		return attendance.StatusResponse{}, attendance.ErrUnknownAction
	}

	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	loc, err := a.location(ctx, employeeID, companyID)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	nowUTC := a.now()
	workDate := localWorkDate(nowUTC, loc)

	day, err := a.dayContext(ctx, employeeID, companyID, workDate)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	slots, err := a.SlotRepository.ListByDate(ctx, employeeID, workDate, companyID)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to list slots: %w", err)
	}

	pendingEdit, err := a.EditRequestRepository.HasPendingForDate(ctx, employeeID, workDate, companyID)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to check pending edit request: %w", err)
	}

	status := attendance.DeriveStatus(slots, day)
	if pendingEdit {
		return attendance.StatusResponse{}, attendance.ErrEditPending
	}
	if status.IsTerminal() {
		return attendance.StatusResponse{}, attendance.ErrDayNotTrackable
	}
	if !attendance.CanTransition(status, slotType) {
		return attendance.StatusResponse{}, attendance.ErrInvalidTransition
	}

	// Closing the open interval and recording the new event must land
	// together or the duration derivation sees a half-written day.
	err = a.runInTx(ctx, func(txCtx context.Context) error {
		if err := a.SlotRepository.CloseOpen(txCtx, employeeID, workDate, nowUTC, companyID); err != nil {
			return fmt.Errorf("failed to close open slot: %w", err)
		}

		_, err := a.SlotRepository.Create(txCtx, attendance.Slot{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			CompanyID:  companyID,
			WorkDate:   workDate,
			Type:       slotType,
			StartedAt:  nowUTC,
			IsManual:   req.Manual,
		})
		if err != nil {
			return fmt.Errorf("failed to create slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	// The response is re-derived from the stored slot list, not from the
	// request, so the client sees exactly what the next refetch would.
	return a.snapshot(ctx, employeeID, companyID, workDate, nowUTC)
}

// snapshot assembles the authoritative view of one work date.
func (a *AttendanceServiceImpl) snapshot(ctx context.Context, employeeID, companyID string, workDate, nowUTC time.Time) (attendance.StatusResponse, error) {
	day, err := a.dayContext(ctx, employeeID, companyID, workDate)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	slots, err := a.SlotRepository.ListByDate(ctx, employeeID, workDate, companyID)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to list slots: %w", err)
	}

	pendingEdit, err := a.EditRequestRepository.HasPendingForDate(ctx, employeeID, workDate, companyID)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to check pending edit request: %w", err)
	}

	status := attendance.DeriveStatus(slots, day)
	worked := attendance.WorkedDuration(slots, nowUTC)

	resp := attendance.StatusResponse{
		EmployeeID:       employeeID,
		Date:             workDate.Format("2006-01-02"),
		Status:           status,
		WorkedSeconds:    int64(worked.Seconds()),
		WorkedFormatted:  timeutil.FormatSeconds(int64(worked.Seconds())),
		ServerTime:       nowUTC.Format(time.RFC3339),
		ControlsDisabled: attendance.ControlsDisabled(status, pendingEdit),
		Slots:            mapSlots(slots),
	}

	if since := attendance.ActiveSince(slots, day); since != nil {
		s := since.Format(time.RFC3339)
		resp.ActiveSince = &s
	}

	return resp, nil
}

// Timesheet implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Timesheet(ctx context.Context, filter attendance.TimesheetFilter) (attendance.TimesheetResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.TimesheetResponse{}, err
	}

	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.TimesheetResponse{}, err
	}

	loc, err := a.location(ctx, employeeID, companyID)
	if err != nil {
		return attendance.TimesheetResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", filter.StartDate)
	endDate, _ := time.Parse("2006-01-02", filter.EndDate)

	slots, err := a.SlotRepository.ListByRange(ctx, employeeID, startDate, endDate, companyID)
	if err != nil {
		return attendance.TimesheetResponse{}, fmt.Errorf("failed to list slots: %w", err)
	}

	byDate := make(map[string][]attendance.Slot)
	for _, slot := range slots {
		key := slot.WorkDate.Format("2006-01-02")
		byDate[key] = append(byDate[key], slot)
	}

	nowUTC := a.now()
	resp := attendance.TimesheetResponse{
		EmployeeID: employeeID,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
	}

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		daySlots := byDate[key]

		day, err := a.dayContext(ctx, employeeID, companyID, d)
		if err != nil {
			return attendance.TimesheetResponse{}, err
		}

		// Open intervals on past days stop accruing at local midnight.
		_, dayEnd := timeutil.DayBounds(d, loc)
		cutoff := nowUTC
		if dayEnd.Before(cutoff) {
			cutoff = dayEnd
		}

		worked := attendance.WorkedDuration(daySlots, cutoff)
		seconds := int64(worked.Seconds())

		resp.Days = append(resp.Days, attendance.TimesheetDayResponse{
			Date:            key,
			Status:          attendance.DeriveStatus(daySlots, day),
			WorkedSeconds:   seconds,
			WorkedFormatted: timeutil.FormatSeconds(seconds),
			HasManualEntry:  hasManual(daySlots),
		})
		resp.TotalSeconds += seconds
	}

	resp.TotalFormatted = timeutil.FormatSeconds(resp.TotalSeconds)
	return resp, nil
}

// SubmitEditRequest implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SubmitEditRequest(ctx context.Context, req attendance.SubmitEditRequest) (attendance.EditRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EditRequestResponse{}, err
	}

	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return attendance.EditRequestResponse{}, err
	}

	workDate, _ := time.Parse("2006-01-02", req.Date)

	pending, err := a.EditRequestRepository.HasPendingForDate(ctx, employeeID, workDate, companyID)
	if err != nil {
		return attendance.EditRequestResponse{}, fmt.Errorf("failed to check pending edit request: %w", err)
	}
	if pending {
		return attendance.EditRequestResponse{}, attendance.ErrEditPending
	}

	created, err := a.EditRequestRepository.Create(ctx, attendance.EditRequest{
		ID:           uuid.NewString(),
		EmployeeID:   employeeID,
		CompanyID:    companyID,
		WorkDate:     workDate,
		RequestedIn:  parseTimePtr(req.RequestedIn),
		RequestedOut: parseTimePtr(req.RequestedOut),
		Reason:       req.Reason,
		Status:       attendance.EditRequestPending,
	})
	if err != nil {
		return attendance.EditRequestResponse{}, fmt.Errorf("failed to create edit request: %w", err)
	}

	return mapEditRequest(created), nil
}

// ListEditRequests implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListEditRequests(ctx context.Context) ([]attendance.EditRequestResponse, error) {
	employeeID, companyID, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := a.EditRequestRepository.ListByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list edit requests: %w", err)
	}

	responses := make([]attendance.EditRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, mapEditRequest(req))
	}
	return responses, nil
}

// localWorkDate truncates an instant to the employee's local calendar date.
func localWorkDate(nowUTC time.Time, loc *time.Location) time.Time {
	nowLocal := nowUTC.In(loc)
	return time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, time.UTC)
}

func mapSlots(slots []attendance.Slot) []attendance.SlotResponse {
	responses := make([]attendance.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		responses = append(responses, attendance.SlotResponse{
			ID:        slot.ID,
			Type:      slot.Type,
			StartedAt: slot.StartedAt.Format(time.RFC3339),
			EndedAt:   timePtrToString(slot.EndedAt),
			IsManual:  slot.IsManual,
		})
	}
	return responses
}

func mapEditRequest(req attendance.EditRequest) attendance.EditRequestResponse {
	return attendance.EditRequestResponse{
		ID:           req.ID,
		Date:         req.WorkDate.Format("2006-01-02"),
		RequestedIn:  timePtrToString(req.RequestedIn),
		RequestedOut: timePtrToString(req.RequestedOut),
		Reason:       req.Reason,
		Status:       string(req.Status),
		CreatedAt:    req.CreatedAt.Format(time.RFC3339),
	}
}

func hasManual(slots []attendance.Slot) bool {
	for _, slot := range slots {
		if slot.IsManual {
			return true
		}
	}
	return false
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

func parseTimePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	u := t.UTC()
	return &u
}
