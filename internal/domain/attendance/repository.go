package attendance

import (
	"context"
	"time"
)

// Filter selects attendance rows for listing and reports. Zero date
// bounds mean "current month" at the service layer.
type Filter struct {
	EmployeeID string
	From       time.Time
	To         time.Time
}

// RecordRepository defines data access for attendance records. The store
// enforces the (employee, date) uniqueness invariant so that at most one
// of two concurrent check-ins can create the day's row.
type RecordRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeeAndDate returns nil when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	Update(ctx context.Context, rec Record) error
	List(ctx context.Context, filter Filter) ([]Record, error)

	// Upsert writes the day's record keyed by (employee, date), replacing
	// status and notes when a row already exists. Used by the leave
	// approval fan-out; idempotent per day.
	Upsert(ctx context.Context, employeeID string, date time.Time, status Status, notes string) error

	// ListEmployeesWithoutRecord returns active employee IDs having no
	// attendance row on the given date.
	ListEmployeesWithoutRecord(ctx context.Context, date time.Time) ([]string, error)
}
