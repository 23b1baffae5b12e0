package attendance

import (
	"time"

	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/validator"
)

type RecordResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	EmployeeLogin *string `json:"employee_login,omitempty"`
	Date          string  `json:"date"`
	CheckIn       *string `json:"check_in"`
	CheckOut      *string `json:"check_out"`
	WorkHours     float64 `json:"work_hours"`
	ExtraHours    float64 `json:"extra_hours"`
	Status        Status  `json:"status"`
	Notes         string  `json:"notes,omitempty"`
}

// TodayResponse reports the state of today's check-in/out cycle.
type TodayResponse struct {
	CheckedIn    bool    `json:"checked_in"`
	CheckedOut   bool    `json:"checked_out"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	WorkHours    float64 `json:"work_hours"`
}

// MonthlySummaryResponse aggregates the current month per employee.
type MonthlySummaryResponse struct {
	PresentDays   int `json:"present_days"`
	LeavesCount   int `json:"leaves_count"`
	TotalWorkDays int `json:"total_work_days"`
	AbsentDays    int `json:"absent_days"`
}

type ListFilter struct {
	Date       string `json:"date"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	EmployeeID string `json:"employee_id"`
}

// CreateRecordRequest is the HR direct-entry payload. Check-in/out are
// wall-clock times ("HH:MM") applied to the record's date.
type CreateRecordRequest struct {
	EmployeeID string   `json:"employee_id"`
	Date       string   `json:"date"`
	Status     string   `json:"status"`
	CheckIn    string   `json:"check_in"`
	CheckOut   string   `json:"check_out"`
	WorkHours  *float64 `json:"work_hours"`
	ExtraHours *float64 `json:"extra_hours"`
	Notes      string   `json:"notes"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid attendance status"})
	}
	if r.CheckIn != "" {
		if _, ok := validator.IsValidClockTime(r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be in HH:MM format"})
		}
	}
	if r.CheckOut != "" {
		if _, ok := validator.IsValidClockTime(r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "check_out must be in HH:MM format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRecordRequest edits an existing record (HR only). Nil fields are
// left untouched.
type UpdateRecordRequest struct {
	ID         string   `json:"-"`
	Status     *string  `json:"status"`
	CheckIn    *string  `json:"check_in"`
	CheckOut   *string  `json:"check_out"`
	WorkHours  *float64 `json:"work_hours"`
	ExtraHours *float64 `json:"extra_hours"`
	Notes      *string  `json:"notes"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid attendance status"})
	}
	if r.CheckIn != nil {
		if _, ok := validator.IsValidClockTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be in HH:MM format"})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidClockTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "check_out must be in HH:MM format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// timePtrToString formats a nullable timestamp for responses.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		EmployeeLogin: rec.EmployeeLogin,
		Date:          rec.Date.Format("2006-01-02"),
		CheckIn:       timePtrToString(rec.CheckIn),
		CheckOut:      timePtrToString(rec.CheckOut),
		WorkHours:     rec.WorkHours,
		ExtraHours:    rec.ExtraHours,
		Status:        rec.Status,
		Notes:         rec.Notes,
	}
}
