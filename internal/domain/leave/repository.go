package leave

import "context"

// Filter narrows leave request listings and reports.
type Filter struct {
	EmployeeID  string
	Status      string
	TimeOffType string
}

// RequestRepository defines data access for leave requests.
type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter Filter) ([]Request, error)

	// UpdateReview stamps the one-shot review outcome.
	UpdateReview(ctx context.Context, req Request) error

	Delete(ctx context.Context, id string) error
}
