package leave

import (
	"time"

	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	TimeOffType string  `json:"time_off_type"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Reason      string  `json:"reason"`
	Attachment  *string `json:"attachment"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.TimeOffType, ValidTimeOffTypes) {
		errs = append(errs, validator.ValidationError{Field: "time_off_type", Message: "time_off_type must be Paid Time Off, Sick Leave or Unpaid Leaves"})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReviewRequest is the HR approve/reject payload.
type ReviewRequest struct {
	ID             string `json:"-"`
	Status         string `json:"status"`
	ReviewComments string `json:"review_comments"`
}

type RequestResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	EmployeeLogin  *string `json:"employee_login,omitempty"`
	TimeOffType    string  `json:"time_off_type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Allocation     int     `json:"allocation"`
	Reason         string  `json:"reason,omitempty"`
	Attachment     *string `json:"attachment,omitempty"`
	Status         string  `json:"status"`
	ReviewedBy     *string `json:"reviewed_by,omitempty"`
	ReviewerEmail  *string `json:"reviewer_email,omitempty"`
	ReviewComments *string `json:"review_comments,omitempty"`
	ReviewedAt     *string `json:"reviewed_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

// TypeSummary tracks one time-off type's balance.
type TypeSummary struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Available int `json:"available"`
}

// SummaryResponse reports per-type leave balances against the fixed
// yearly entitlements.
type SummaryResponse struct {
	PaidTimeOff  TypeSummary `json:"paid_time_off"`
	SickLeave    TypeSummary `json:"sick_leave"`
	UnpaidLeaves TypeSummary `json:"unpaid_leaves"`
}

func ToResponse(req Request) RequestResponse {
	var reviewedAt *string
	if req.ReviewedAt != nil {
		formatted := req.ReviewedAt.Format(time.RFC3339)
		reviewedAt = &formatted
	}

	return RequestResponse{
		ID:             req.ID,
		EmployeeID:     req.EmployeeID,
		EmployeeName:   req.EmployeeName,
		EmployeeLogin:  req.EmployeeLogin,
		TimeOffType:    string(req.TimeOffType),
		StartDate:      req.StartDate.Format("2006-01-02"),
		EndDate:        req.EndDate.Format("2006-01-02"),
		Allocation:     req.Allocation,
		Reason:         req.Reason,
		Attachment:     req.Attachment,
		Status:         string(req.Status),
		ReviewedBy:     req.ReviewedBy,
		ReviewerEmail:  req.ReviewerEmail,
		ReviewComments: req.ReviewComments,
		ReviewedAt:     reviewedAt,
		CreatedAt:      req.CreatedAt.Format(time.RFC3339),
	}
}
