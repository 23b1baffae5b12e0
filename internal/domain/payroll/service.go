package payroll

import "context"

// Service defines business logic for payroll records
type Service interface {
	// Save creates or replaces the employee's active payroll record (HR),
	// running the component calculator on the submitted wage
	Save(ctx context.Context, req SaveRequest) (PayrollResponse, error)

	// Get retrieves a payroll record by ID; employees only their own
	Get(ctx context.Context, id, requesterEmployeeID string, isHR bool) (PayrollResponse, error)

	// GetByEmployee retrieves the active record for an employee
	GetByEmployee(ctx context.Context, employeeID string) (PayrollResponse, error)

	// List retrieves active payroll records; employees see only their own
	List(ctx context.Context, employeeID string) ([]PayrollResponse, error)

	// Deactivate soft-deletes a payroll record (HR)
	Deactivate(ctx context.Context, id string) error
}
