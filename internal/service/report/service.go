package report

import (
	"context"
	"fmt"
	"time"

	"github.com/talenthub-hr/hrms-backend-go/internal/domain/attendance"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/employee"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/leave"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/payroll"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.RecordRepository
	leaveRepo      leave.RequestRepository
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository

	now func() time.Time
}

func NewReportService(
	attendanceRepo attendance.RecordRepository,
	leaveRepo leave.RequestRepository,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

// WithClock overrides the service clock.
func (r *ReportServiceImpl) WithClock(now func() time.Time) *ReportServiceImpl {
	r.now = now
	return r
}

// Attendance implements report.Service.
func (r *ReportServiceImpl) Attendance(ctx context.Context, employeeID string, from, to time.Time) (report.AttendanceReport, error) {
	if from.IsZero() || to.IsZero() {
		now := r.now()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	}

	records, err := r.attendanceRepo.List(ctx, attendance.Filter{EmployeeID: employeeID, From: from, To: to})
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	var out report.AttendanceReport
	out.Summary.TotalRecords = len(records)
	out.Data = make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		out.Data = append(out.Data, attendance.ToResponse(rec))
		out.Summary.TotalWorkHours += rec.WorkHours
		out.Summary.TotalExtraHour += rec.ExtraHours
		switch rec.Status {
		case attendance.StatusPresent:
			out.Summary.Present++
		case attendance.StatusAbsent:
			out.Summary.Absent++
		case attendance.StatusOnLeave, attendance.StatusLeave:
			out.Summary.OnLeave++
		case attendance.StatusHalfDay:
			out.Summary.HalfDay++
		}
	}
	return out, nil
}

// Leaves implements report.Service.
func (r *ReportServiceImpl) Leaves(ctx context.Context, status, timeOffType string) (report.LeaveReport, error) {
	requests, err := r.leaveRepo.List(ctx, leave.Filter{Status: status, TimeOffType: timeOffType})
	if err != nil {
		return report.LeaveReport{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	var out report.LeaveReport
	out.Summary.Total = len(requests)
	out.Data = make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		out.Data = append(out.Data, leave.ToResponse(req))
		switch req.Status {
		case leave.StatusPending:
			out.Summary.Pending++
		case leave.StatusApproved:
			out.Summary.Approved++
			out.Summary.TotalDays += req.Allocation
			switch req.TimeOffType {
			case leave.TimeOffPaid:
				out.Summary.PaidTimeOff += req.Allocation
			case leave.TimeOffSick:
				out.Summary.SickLeave += req.Allocation
			case leave.TimeOffUnpaid:
				out.Summary.UnpaidLeaves += req.Allocation
			}
		case leave.StatusRejected:
			out.Summary.Rejected++
		}
	}
	return out, nil
}

// Payroll implements report.Service.
func (r *ReportServiceImpl) Payroll(ctx context.Context) (report.PayrollReport, error) {
	records, err := r.payrollRepo.List(ctx, "")
	if err != nil {
		return report.PayrollReport{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	var out report.PayrollReport
	out.Summary.TotalEmployees = len(records)
	out.Data = make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		out.Data = append(out.Data, payroll.ToResponse(rec))
		out.Summary.TotalMonthlyWage += rec.MonthWage
		out.Summary.TotalYearlyWage += rec.YearlyWage
		out.Summary.TotalGrossSalary += rec.GrossSalary
		out.Summary.TotalNetSalary += rec.NetSalary
		out.Summary.TotalPFContribution += rec.ProvidentFund.Employee.Amount + rec.ProvidentFund.Employer.Amount
	}
	return out, nil
}

// Dashboard implements report.Service.
func (r *ReportServiceImpl) Dashboard(ctx context.Context) (report.DashboardSummary, error) {
	var out report.DashboardSummary

	employees, err := r.employeeRepo.List(ctx)
	if err != nil {
		return out, fmt.Errorf("failed to list employees: %w", err)
	}
	out.TotalEmployees = len(employees)

	today := attendance.StartOfDay(r.now())
	records, err := r.attendanceRepo.List(ctx, attendance.Filter{
		From: today,
		To:   today.AddDate(0, 0, 1).Add(-time.Nanosecond),
	})
	if err != nil {
		return out, fmt.Errorf("failed to list attendance records: %w", err)
	}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent, attendance.StatusHalfDay:
			out.EmployeesPresentToday++
		case attendance.StatusOnLeave, attendance.StatusLeave:
			out.EmployeesOnLeaveToday++
		}
	}

	pending, err := r.leaveRepo.List(ctx, leave.Filter{Status: string(leave.StatusPending)})
	if err != nil {
		return out, fmt.Errorf("failed to list leave requests: %w", err)
	}
	out.PendingLeaveRequests = len(pending)

	return out, nil
}
