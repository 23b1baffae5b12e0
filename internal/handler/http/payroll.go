package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/payroll"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/user"
	"github.com/talenthub-hr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/talenthub-hr/hrms-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Save(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Save implements PayrollHandler.
func (h *PayrollHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req payroll.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.payrollService.Save(r.Context(), req)
	if err != nil {
		slog.Error("Save payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll saved successfully", resp)
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	resp, err := h.payrollService.Get(r.Context(), chi.URLParam(r, "id"), id.EmployeeID, id.IsHR())
	if err != nil {
		slog.Error("Get payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetMine implements PayrollHandler.
func (h *PayrollHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromRequest(r)
	if !ok || id.EmployeeID == "" {
		response.HandleError(w, user.ErrEmployeeOnlyAction)
		return
	}

	resp, err := h.payrollService.GetByEmployee(r.Context(), id.EmployeeID)
	if err != nil {
		slog.Error("GetMine payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payrollService.List(r.Context(), r.URL.Query().Get("employee_id"))
	if err != nil {
		slog.Error("List payrolls service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Deactivate implements PayrollHandler.
func (h *PayrollHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Deactivate payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll deactivated successfully", nil)
}
