package employee

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type MaritalStatus string

const (
	MaritalStatusSingle   MaritalStatus = "Single"
	MaritalStatusMarried  MaritalStatus = "Married"
	MaritalStatusDivorced MaritalStatus = "Divorced"
	MaritalStatusWidowed  MaritalStatus = "Widowed"
)

type Employee struct {
	ID             string
	LoginID        string
	FirstName      string
	LastName       string
	Email          string
	Phone          *string
	CompanyName    string
	CompanyLogo    *string
	JobPosition    *string
	Department     *string
	Manager        *string
	Location       *string
	ProfilePicture *string
	DateOfJoining  time.Time
	YearOfJoining  int
	SerialNumber   int

	// Personal information
	ResidingAddress *string
	Nationality     *string
	PersonalEmail   *string
	Gender          *Gender
	MaritalStatus   *MaritalStatus

	// Private info
	About               *string
	WhatILoveAboutJob   *string
	InterestsAndHobbies *string
	Skills              []string

	BankDetails *BankDetails

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BankDetails struct {
	AccountNumber string `json:"account_number,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	IFSCCode      string `json:"ifsc_code,omitempty"`
	PANNo         string `json:"pan_no,omitempty"`
	UANNo         string `json:"uan_no,omitempty"`
	EmpCode       string `json:"emp_code,omitempty"`
}

// FullName returns the display name used in list responses.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
