package payroll

import (
	"time"

	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/validator"
)

// SaveRequest creates or replaces the employee's active payroll record.
// Boundary validation rejects nonsensical wages before the calculator
// runs; the calculator itself is permissive.
type SaveRequest struct {
	EmployeeID         string              `json:"employee_id"`
	MonthWage          float64             `json:"month_wage"`
	YearlyWage         *float64            `json:"yearly_wage"`
	WorkingDaysPerWeek *int                `json:"working_days_per_week"`
	WorkingHoursPerDay *int                `json:"working_hours_per_day"`
	BreakTimeMinutes   *int                `json:"break_time"`
	Config             *WageConfigOverride `json:"config"`
}

func (r *SaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.MonthWage <= 0 {
		errs = append(errs, validator.ValidationError{Field: "month_wage", Message: "month_wage must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID                 string           `json:"id"`
	EmployeeID         string           `json:"employee_id"`
	EmployeeName       *string          `json:"employee_name,omitempty"`
	EmployeeLogin      *string          `json:"employee_login,omitempty"`
	MonthWage          float64          `json:"month_wage"`
	YearlyWage         float64          `json:"yearly_wage"`
	WorkingDaysPerWeek int              `json:"working_days_per_week"`
	WorkingHoursPerDay int              `json:"working_hours_per_day"`
	BreakTimeMinutes   int              `json:"break_time"`
	SalaryComponents   SalaryComponents `json:"salary_components"`
	ProvidentFund      ProvidentFund    `json:"provident_fund"`
	ProfessionalTax    ProfessionalTax  `json:"professional_tax"`
	GrossSalary        float64          `json:"gross_salary"`
	NetSalary          float64          `json:"net_salary"`
	IsActive           bool             `json:"is_active"`
	CreatedAt          string           `json:"created_at"`
	UpdatedAt          string           `json:"updated_at"`
}

func ToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:                 p.ID,
		EmployeeID:         p.EmployeeID,
		EmployeeName:       p.EmployeeName,
		EmployeeLogin:      p.EmployeeLogin,
		MonthWage:          p.MonthWage,
		YearlyWage:         p.YearlyWage,
		WorkingDaysPerWeek: p.WorkingDaysPerWeek,
		WorkingHoursPerDay: p.WorkingHoursPerDay,
		BreakTimeMinutes:   p.BreakTimeMinutes,
		SalaryComponents:   p.SalaryComponents,
		ProvidentFund:      p.ProvidentFund,
		ProfessionalTax:    p.ProfessionalTax,
		GrossSalary:        p.GrossSalary,
		NetSalary:          p.NetSalary,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          p.UpdatedAt.Format(time.RFC3339),
	}
}
