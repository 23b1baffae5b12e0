package leave

import "time"

type TimeOffType string

const (
	TimeOffPaid   TimeOffType = "Paid Time Off"
	TimeOffSick   TimeOffType = "Sick Leave"
	TimeOffUnpaid TimeOffType = "Unpaid Leaves"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

// Request is created by an employee with status Pending and reviewed
// exactly once by HR; Approved and Rejected are terminal.
type Request struct {
	ID          string
	EmployeeID  string
	TimeOffType TimeOffType
	StartDate   time.Time
	EndDate     time.Time // inclusive
	Allocation  int       // inclusive day count, fixed at creation
	Reason      string
	Attachment  *string
	Status      RequestStatus

	ReviewedBy     *string
	ReviewComments *string
	ReviewedAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeLogin *string
	ReviewerEmail *string
}

// ValidTimeOffTypes lists accepted time-off types for request creation.
var ValidTimeOffTypes = []string{
	string(TimeOffPaid),
	string(TimeOffSick),
	string(TimeOffUnpaid),
}
