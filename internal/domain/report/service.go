package report

import (
	"context"
	"time"
)

// Service defines HR-only reporting queries
type Service interface {
	// Attendance reports records and a summary for the window; zero
	// bounds default to the current month
	Attendance(ctx context.Context, employeeID string, from, to time.Time) (AttendanceReport, error)

	// Leaves reports leave requests filtered by status/type/window
	Leaves(ctx context.Context, status, timeOffType string) (LeaveReport, error)

	// Payroll reports all active payroll records with totals
	Payroll(ctx context.Context) (PayrollReport, error)

	// Dashboard returns today's headline counts
	Dashboard(ctx context.Context) (DashboardSummary, error)
}
