package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half-Day"
	StatusLeave   Status = "Leave"
	StatusOnLeave Status = "On Leave"
)

// Record is keyed uniquely by (employee, date): exactly one row per
// employee per calendar day, enforced by the store.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time // start of day
	CheckIn    *time.Time
	CheckOut   *time.Time
	WorkHours  float64
	ExtraHours float64
	Status     Status
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeLogin *string
}

// ValidStatuses lists the accepted attendance statuses for HR entry.
var ValidStatuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusHalfDay),
	string(StatusLeave),
	string(StatusOnLeave),
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
