package leave

import "context"

// Service defines business logic for the leave request workflow
type Service interface {
	// Apply files a new pending request for the employee; allocation is
	// computed once here and never recomputed
	Apply(ctx context.Context, employeeID string, req CreateRequestRequest) (RequestResponse, error)

	// Get retrieves a single request; employees may only fetch their own
	Get(ctx context.Context, id, requesterEmployeeID string, isHR bool) (RequestResponse, error)

	// List retrieves requests; employees see only their own
	List(ctx context.Context, filter Filter) ([]RequestResponse, error)

	// Review approves or rejects a pending request (HR). Approval fans
	// out "On Leave" attendance records across the inclusive date range.
	Review(ctx context.Context, reviewerUserID string, req ReviewRequest) (RequestResponse, error)

	// Delete removes a pending request; owners may delete their own, HR
	// may delete any
	Delete(ctx context.Context, id, requesterEmployeeID string, isHR bool) error

	// Summary reports per-type balances for the employee
	Summary(ctx context.Context, employeeID string) (SummaryResponse, error)
}
