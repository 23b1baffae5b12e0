package attendance

import "context"

// Service defines business logic for attendance operations
type Service interface {
	// CheckIn records the employee's first check-in of the day, creating
	// the day's record when none exists
	CheckIn(ctx context.Context, employeeID string) (RecordResponse, error)

	// CheckOut closes the day's open record and computes work/extra hours
	CheckOut(ctx context.Context, employeeID string) (RecordResponse, error)

	// Today reports the state of today's record for the employee
	Today(ctx context.Context, employeeID string) (TodayResponse, error)

	// List retrieves records by filter; defaults to the current month
	List(ctx context.Context, filter ListFilter) ([]RecordResponse, error)

	// MonthlySummary aggregates the employee's current month
	MonthlySummary(ctx context.Context, employeeID string) (MonthlySummaryResponse, error)

	// CreateForDate creates a record for an arbitrary employee/date (HR),
	// bypassing the check-in/out state machine
	CreateForDate(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)

	// UpdateForDate edits an existing record (HR)
	UpdateForDate(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)
}
