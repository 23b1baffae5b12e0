package employee

import "context"

// EmployeeService defines business logic for employee record management
type EmployeeService interface {
	// Create provisions an employee record plus a login account (HR only)
	Create(ctx context.Context, req CreateEmployeeRequest) (CreatedEmployeeResponse, error)

	// Get retrieves a single employee; employees may only fetch themselves
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List retrieves all active employees (HR only)
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Update applies a partial update to an employee record
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate soft-deletes an employee (HR only)
	Deactivate(ctx context.Context, id string) error
}
