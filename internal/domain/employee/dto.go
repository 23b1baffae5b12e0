package employee

import (
	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone"`
	CompanyName   string  `json:"company_name"`
	JobPosition   *string `json:"job_position"`
	Department    *string `json:"department"`
	Manager       *string `json:"manager"`
	Location      *string `json:"location"`
	DateOfJoining string  `json:"date_of_joining"` // "YYYY-MM-DD", defaults to today
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if validator.IsEmpty(r.CompanyName) {
		errs = append(errs, validator.ValidationError{Field: "company_name", Message: "company_name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if r.DateOfJoining != "" {
		if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "date_of_joining must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                  string         `json:"-"`
	FirstName           *string        `json:"first_name"`
	LastName            *string        `json:"last_name"`
	Phone               *string        `json:"phone"`
	JobPosition         *string        `json:"job_position"`
	Department          *string        `json:"department"`
	Manager             *string        `json:"manager"`
	Location            *string        `json:"location"`
	ProfilePicture      *string        `json:"profile_picture"`
	ResidingAddress     *string        `json:"residing_address"`
	Nationality         *string        `json:"nationality"`
	PersonalEmail       *string        `json:"personal_email"`
	Gender              *Gender        `json:"gender"`
	MaritalStatus       *MaritalStatus `json:"marital_status"`
	About               *string        `json:"about"`
	WhatILoveAboutJob   *string        `json:"what_i_love_about_job"`
	InterestsAndHobbies *string        `json:"interests_and_hobbies"`
	Skills              []string       `json:"skills"`
	BankDetails         *BankDetails   `json:"bank_details"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PersonalEmail != nil && !validator.IsValidEmail(*r.PersonalEmail) {
		errs = append(errs, validator.ValidationError{Field: "personal_email", Message: "personal_email must be a valid email"})
	}
	if r.Gender != nil && !validator.IsInSlice(string(*r.Gender), []string{"Male", "Female", "Other"}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be Male, Female or Other"})
	}
	if r.MaritalStatus != nil && !validator.IsInSlice(string(*r.MaritalStatus), []string{"Single", "Married", "Divorced", "Widowed"}) {
		errs = append(errs, validator.ValidationError{Field: "marital_status", Message: "invalid marital status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	LoginID        string  `json:"login_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	CompanyName    string  `json:"company_name"`
	JobPosition    *string `json:"job_position,omitempty"`
	Department     *string `json:"department,omitempty"`
	Manager        *string `json:"manager,omitempty"`
	Location       *string `json:"location,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
	DateOfJoining  string  `json:"date_of_joining"`
	IsActive       bool    `json:"is_active"`
}

// CreatedEmployeeResponse is returned from HR employee creation and carries
// the one-time temporary password for the provisioned user account.
type CreatedEmployeeResponse struct {
	EmployeeResponse
	TemporaryPassword string `json:"temporary_password"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		LoginID:        e.LoginID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		CompanyName:    e.CompanyName,
		JobPosition:    e.JobPosition,
		Department:     e.Department,
		Manager:        e.Manager,
		Location:       e.Location,
		ProfilePicture: e.ProfilePicture,
		DateOfJoining:  e.DateOfJoining.Format("2006-01-02"),
		IsActive:       e.IsActive,
	}
}
