package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/leave"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/user"
	"github.com/talenthub-hr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/talenthub-hr/hrms-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFromRequest(r)

	var req leave.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.leaveService.Apply(r.Context(), id.EmployeeID, req)
	if err != nil {
		slog.Error("Apply leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", resp)
}

// Get implements LeaveHandler.
func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	resp, err := h.leaveService.Get(r.Context(), chi.URLParam(r, "id"), id.EmployeeID, id.IsHR())
	if err != nil {
		slog.Error("Get leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements LeaveHandler. Employees see only their own requests;
// HR may filter by employee, status and type.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	filter := leave.Filter{
		Status:      r.URL.Query().Get("status"),
		TimeOffType: r.URL.Query().Get("time_off_type"),
	}
	if id.IsHR() {
		filter.EmployeeID = r.URL.Query().Get("employee_id")
	} else {
		filter.EmployeeID = id.EmployeeID
	}

	resp, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Review implements LeaveHandler.
func (h *LeaveHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFromRequest(r)

	var req leave.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.leaveService.Review(r.Context(), id.UserID, req)
	if err != nil {
		slog.Error("Review leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request reviewed successfully", resp)
}

// Delete implements LeaveHandler.
func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.leaveService.Delete(r.Context(), chi.URLParam(r, "id"), id.EmployeeID, id.IsHR()); err != nil {
		slog.Error("Delete leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted successfully", nil)
}

// Summary implements LeaveHandler.
func (h *LeaveHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.leaveService.Summary(r.Context(), employeeID)
	if err != nil {
		slog.Error("Leave summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
