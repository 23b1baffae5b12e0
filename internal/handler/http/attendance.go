package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/user"
	"github.com/talenthub-hr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/talenthub-hr/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFromRequest(r)

	resp, err := h.attendanceService.CheckIn(r.Context(), id.EmployeeID)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked in successfully", resp)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFromRequest(r)

	resp, err := h.attendanceService.CheckOut(r.Context(), id.EmployeeID)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", resp)
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFromRequest(r)

	resp, err := h.attendanceService.Today(r.Context(), id.EmployeeID)
	if err != nil {
		slog.Error("Today service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements AttendanceHandler. Employees see only their own rows;
// HR may scope to any employee via the employee_id query param.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	filter := attendance.ListFilter{
		Date:      r.URL.Query().Get("date"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if id.IsHR() {
		filter.EmployeeID = r.URL.Query().Get("employee_id")
	} else {
		filter.EmployeeID = id.EmployeeID
	}

	resp, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MonthlySummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	employeeID := id.EmployeeID
	if id.IsHR() {
		if qID := r.URL.Query().Get("employee_id"); qID != "" {
			employeeID = qID
		}
	}
	if employeeID == "" {
		response.HandleError(w, user.ErrEmployeeOnlyAction)
		return
	}

	resp, err := h.attendanceService.MonthlySummary(r.Context(), employeeID)
	if err != nil {
		slog.Error("MonthlySummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Create implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.CreateForDate(r.Context(), req)
	if err != nil {
		slog.Error("Create attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record created successfully", resp)
}

// Update implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.attendanceService.UpdateForDate(r.Context(), req)
	if err != nil {
		slog.Error("Update attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record updated successfully", resp)
}
