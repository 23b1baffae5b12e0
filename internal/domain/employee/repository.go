package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error

	// Deactivate soft-deletes the employee record
	Deactivate(ctx context.Context, id string) error

	// LastSerialNumber returns the highest login-ID serial already issued
	// for the (company, year) pair, 0 when none exists.
	LastSerialNumber(ctx context.Context, companyName string, yearOfJoining int) (int, error)
}
