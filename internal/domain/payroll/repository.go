package payroll

import "context"

// PayrollRepository defines data access for payroll records.
type PayrollRepository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)

	// GetActiveByEmployee returns nil when the employee has no active
	// payroll record.
	GetActiveByEmployee(ctx context.Context, employeeID string) (*Payroll, error)

	List(ctx context.Context, employeeID string) ([]Payroll, error)
	Update(ctx context.Context, p Payroll) error
	Deactivate(ctx context.Context, id string) error
}
