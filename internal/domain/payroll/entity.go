package payroll

import "time"

// Payroll is the active wage record for an employee. One active record
// per employee; saving again replaces the amounts in place.
type Payroll struct {
	ID                 string
	EmployeeID         string
	MonthWage          float64
	YearlyWage         float64
	WorkingDaysPerWeek int
	WorkingHoursPerDay int
	BreakTimeMinutes   int

	SalaryComponents SalaryComponents
	ProvidentFund    ProvidentFund
	ProfessionalTax  ProfessionalTax
	GrossSalary      float64
	NetSalary        float64

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeLogin *string
}

// Defaults applied when the save request omits the scheduling fields.
const (
	DefaultWorkingDaysPerWeek = 5
	DefaultWorkingHoursPerDay = 8
	DefaultBreakTimeMinutes   = 60
)
