package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/worklens/hr-portal-go/internal/domain/attendance"
	"github.com/worklens/hr-portal-go/internal/handler/http/response"
	"github.com/worklens/hr-portal-go/internal/pkg/timeutil"
)

type AttendanceHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	Clock(w http.ResponseWriter, r *http.Request)
	Timesheet(w http.ResponseWriter, r *http.Request)
	SubmitEditRequest(w http.ResponseWriter, r *http.Request)
	ListEditRequests(w http.ResponseWriter, r *http.Request)
	TimeSlots(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Status implements AttendanceHandler.
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.attendanceService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}

// Clock implements AttendanceHandler.
func (h *attendanceHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode clock request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	snapshot, err := h.attendanceService.Clock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}

// Timesheet implements AttendanceHandler.
func (h *attendanceHandlerImpl) Timesheet(w http.ResponseWriter, r *http.Request) {
	filter := attendance.TimesheetFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	timesheet, err := h.attendanceService.Timesheet(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheet)
}

// SubmitEditRequest implements AttendanceHandler.
func (h *attendanceHandlerImpl) SubmitEditRequest(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitEditRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode edit request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.attendanceService.SubmitEditRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time edit request submitted", created)
}

type timeSlotResponse struct {
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

// TimeSlots implements AttendanceHandler. Returns the boundary labels the
// time pickers offer, with their decimal-hour values.
func (h *attendanceHandlerImpl) TimeSlots(w http.ResponseWriter, r *http.Request) {
	labels := timeutil.GenerateTimeSlots()

	slots := make([]timeSlotResponse, 0, len(labels))
	for _, label := range labels {
		hours, err := timeutil.TimeStringToDecimalHours(label)
		if err != nil {
			response.InternalServerError(w, "Failed to build time slots")
			return
		}
		slots = append(slots, timeSlotResponse{Label: label, Hours: hours})
	}

	response.Success(w, slots)
}

// ListEditRequests implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListEditRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.attendanceService.ListEditRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}
