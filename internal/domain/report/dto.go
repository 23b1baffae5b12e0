package report

import (
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/leave"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/payroll"
)

// AttendanceSummary aggregates attendance rows over a reporting window.
type AttendanceSummary struct {
	TotalRecords   int     `json:"total_records"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	OnLeave        int     `json:"on_leave"`
	HalfDay        int     `json:"half_day"`
	TotalWorkHours float64 `json:"total_work_hours"`
	TotalExtraHour float64 `json:"total_extra_hours"`
}

type AttendanceReport struct {
	Summary AttendanceSummary           `json:"summary"`
	Data    []attendance.RecordResponse `json:"data"`
}

// LeaveSummary counts requests by status and approved days by type.
type LeaveSummary struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	Approved     int `json:"approved"`
	Rejected     int `json:"rejected"`
	PaidTimeOff  int `json:"paid_time_off"`
	SickLeave    int `json:"sick_leave"`
	UnpaidLeaves int `json:"unpaid_leaves"`
	TotalDays    int `json:"total_days"`
}

type LeaveReport struct {
	Summary LeaveSummary            `json:"summary"`
	Data    []leave.RequestResponse `json:"data"`
}

// PayrollSummary totals the active payroll records.
type PayrollSummary struct {
	TotalEmployees      int     `json:"total_employees"`
	TotalMonthlyWage    float64 `json:"total_monthly_wage"`
	TotalYearlyWage     float64 `json:"total_yearly_wage"`
	TotalGrossSalary    float64 `json:"total_gross_salary"`
	TotalNetSalary      float64 `json:"total_net_salary"`
	TotalPFContribution float64 `json:"total_pf_contribution"`
}

type PayrollReport struct {
	Summary PayrollSummary            `json:"summary"`
	Data    []payroll.PayrollResponse `json:"data"`
}

// DashboardSummary backs the HR dashboard headline counts.
type DashboardSummary struct {
	TotalEmployees        int `json:"total_employees"`
	EmployeesPresentToday int `json:"employees_present_today"`
	EmployeesOnLeaveToday int `json:"employees_on_leave_today"`
	PendingLeaveRequests  int `json:"pending_leave_requests"`
}
