package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/talenthub-hr/hrms-backend-go/internal/domain/report"
	"github.com/talenthub-hr/hrms-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
	Leaves(w http.ResponseWriter, r *http.Request)
	Payroll(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Attendance implements ReportHandler.
func (h *ReportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	var from, to time.Time
	if v := r.URL.Query().Get("start_date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "start_date must be in YYYY-MM-DD format", nil)
			return
		}
		from = parsed
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "end_date must be in YYYY-MM-DD format", nil)
			return
		}
		to = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	resp, err := h.reportService.Attendance(r.Context(), r.URL.Query().Get("employee_id"), from, to)
	if err != nil {
		slog.Error("Attendance report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Leaves implements ReportHandler.
func (h *ReportHandlerImpl) Leaves(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.Leaves(r.Context(), r.URL.Query().Get("status"), r.URL.Query().Get("time_off_type"))
	if err != nil {
		slog.Error("Leaves report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Payroll implements ReportHandler.
func (h *ReportHandlerImpl) Payroll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.Payroll(r.Context())
	if err != nil {
		slog.Error("Payroll report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Dashboard implements ReportHandler.
func (h *ReportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		slog.Error("Dashboard report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
