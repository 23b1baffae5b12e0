package payroll

// WageConfig governs how a gross monthly wage is decomposed into salary
// components. Percentages are 0-100 values applied successively: HRA,
// performance bonus, LTA and PF are percentages of the basic salary,
// not of the wage. StandardAllowanceAmount and ProfessionalTax are flat
// currency amounts.
type WageConfig struct {
	BasicSalaryPercent          float64
	HRAPercentOfBasic           float64
	StandardAllowanceAmount     float64
	PerformanceBonusPercent     float64
	LeaveTravelAllowancePercent float64
	PFPercent                   float64
	ProfessionalTax             float64
}

// DefaultWageConfig returns the historical default percentage scheme.
func DefaultWageConfig() WageConfig {
	return WageConfig{
		BasicSalaryPercent:          50,
		HRAPercentOfBasic:           50,
		StandardAllowanceAmount:     4167,
		PerformanceBonusPercent:     8.33,
		LeaveTravelAllowancePercent: 8.333,
		PFPercent:                   12,
		ProfessionalTax:             200,
	}
}

// WageConfigOverride carries optional per-field overrides; nil fields
// fall back to the defaults.
type WageConfigOverride struct {
	BasicSalaryPercent          *float64 `json:"basic_salary_percent"`
	HRAPercentOfBasic           *float64 `json:"hra_percent_of_basic"`
	StandardAllowanceAmount     *float64 `json:"standard_allowance_amount"`
	PerformanceBonusPercent     *float64 `json:"performance_bonus_percent"`
	LeaveTravelAllowancePercent *float64 `json:"leave_travel_allowance_percent"`
	PFPercent                   *float64 `json:"pf_percent"`
	ProfessionalTax             *float64 `json:"professional_tax"`
}

// Apply merges the override over c, returning the effective config.
func (c WageConfig) Apply(o *WageConfigOverride) WageConfig {
	if o == nil {
		return c
	}
	if o.BasicSalaryPercent != nil {
		c.BasicSalaryPercent = *o.BasicSalaryPercent
	}
	if o.HRAPercentOfBasic != nil {
		c.HRAPercentOfBasic = *o.HRAPercentOfBasic
	}
	if o.StandardAllowanceAmount != nil {
		c.StandardAllowanceAmount = *o.StandardAllowanceAmount
	}
	if o.PerformanceBonusPercent != nil {
		c.PerformanceBonusPercent = *o.PerformanceBonusPercent
	}
	if o.LeaveTravelAllowancePercent != nil {
		c.LeaveTravelAllowancePercent = *o.LeaveTravelAllowancePercent
	}
	if o.PFPercent != nil {
		c.PFPercent = *o.PFPercent
	}
	if o.ProfessionalTax != nil {
		c.ProfessionalTax = *o.ProfessionalTax
	}
	return c
}

// Component is one named slice of the wage.
type Component struct {
	Amount      float64 `json:"amount"`
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description"`
}

// Contribution is one side of the provident fund.
type Contribution struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type ProvidentFund struct {
	Employee Contribution `json:"employee"`
	Employer Contribution `json:"employer"`
}

type ProfessionalTax struct {
	Amount float64 `json:"amount"`
}

type SalaryComponents struct {
	BasicSalary          Component `json:"basic_salary"`
	HouseRentAllowance   Component `json:"house_rent_allowance"`
	StandardAllowance    Component `json:"standard_allowance"`
	PerformanceBonus     Component `json:"performance_bonus"`
	LeaveTravelAllowance Component `json:"leave_travel_allowance"`
	FixedAllowance       Component `json:"fixed_allowance"`
}

// Breakdown is the full decomposition of one monthly wage. By
// construction GrossSalary equals the input wage, the six component
// amounts sum to the wage, and NetSalary is gross minus the employee PF
// contribution and professional tax.
type Breakdown struct {
	SalaryComponents SalaryComponents `json:"salary_components"`
	ProvidentFund    ProvidentFund    `json:"provident_fund"`
	ProfessionalTax  ProfessionalTax  `json:"professional_tax"`
	GrossSalary      float64          `json:"gross_salary"`
	NetSalary        float64          `json:"net_salary"`
}

// Component descriptions are stable output contract; consumers render
// them verbatim.
const (
	descBasicSalary          = "Define Basic salary from company cost compute it based on monthly wages."
	descHouseRentAllowance   = "HRA provided to employees 50% of the basic salary"
	descStandardAllowance    = "A standard allowance is a predetermined, fixed amount provided to employee as part of their salary"
	descPerformanceBonus     = "Variable amount paid during payroll. The value defined by the company calculated as a % of the basic salary"
	descLeaveTravelAllowance = "LTA is paid by the company to employees to cover their travel expenses. and calculated as a % of the basic salary"
	descFixedAllowance       = "fixed allowance portion of wages is determined after calculating all salary components"
)

// CalculateComponents decomposes a gross monthly wage under the given
// config, with nil override meaning defaults. The fixed allowance is a
// residual balancing term that forces the component amounts to sum to
// the wage; it may go negative when the configured percentages exceed
// the wage and is deliberately not clamped. The function has no failure
// mode: any numeric wage, including zero or negative, produces a
// defined (if degenerate) breakdown.
func CalculateComponents(monthWage float64, override *WageConfigOverride) Breakdown {
	cfg := DefaultWageConfig().Apply(override)

	basicSalary := monthWage * cfg.BasicSalaryPercent / 100
	hra := basicSalary * cfg.HRAPercentOfBasic / 100
	standardAllowance := cfg.StandardAllowanceAmount
	performanceBonus := basicSalary * cfg.PerformanceBonusPercent / 100
	leaveTravelAllowance := basicSalary * cfg.LeaveTravelAllowancePercent / 100

	// Residual: wage minus every other component.
	totalOtherComponents := basicSalary + hra + standardAllowance + performanceBonus + leaveTravelAllowance
	fixedAllowance := monthWage - totalOtherComponents

	// Employer and employee PF contributions are symmetric.
	pfEmployee := basicSalary * cfg.PFPercent / 100
	pfEmployer := basicSalary * cfg.PFPercent / 100

	grossSalary := monthWage
	netSalary := grossSalary - pfEmployee - cfg.ProfessionalTax

	return Breakdown{
		SalaryComponents: SalaryComponents{
			BasicSalary: Component{
				Amount:      basicSalary,
				Percentage:  cfg.BasicSalaryPercent,
				Description: descBasicSalary,
			},
			HouseRentAllowance: Component{
				Amount:      hra,
				Percentage:  cfg.HRAPercentOfBasic,
				Description: descHouseRentAllowance,
			},
			StandardAllowance: Component{
				Amount:      standardAllowance,
				Percentage:  percentOfWage(standardAllowance, monthWage),
				Description: descStandardAllowance,
			},
			PerformanceBonus: Component{
				Amount:      performanceBonus,
				Percentage:  cfg.PerformanceBonusPercent,
				Description: descPerformanceBonus,
			},
			LeaveTravelAllowance: Component{
				Amount:      leaveTravelAllowance,
				Percentage:  cfg.LeaveTravelAllowancePercent,
				Description: descLeaveTravelAllowance,
			},
			FixedAllowance: Component{
				Amount:      fixedAllowance,
				Percentage:  percentOfWage(fixedAllowance, monthWage),
				Description: descFixedAllowance,
			},
		},
		ProvidentFund: ProvidentFund{
			Employee: Contribution{Amount: pfEmployee, Percentage: cfg.PFPercent},
			Employer: Contribution{Amount: pfEmployer, Percentage: cfg.PFPercent},
		},
		ProfessionalTax: ProfessionalTax{Amount: cfg.ProfessionalTax},
		GrossSalary:     grossSalary,
		NetSalary:       netSalary,
	}
}

// percentOfWage derives a component's share of the wage, guarding the
// zero-wage case so the output stays 0 rather than NaN or Inf.
func percentOfWage(amount, monthWage float64) float64 {
	if monthWage == 0 {
		return 0
	}
	return amount / monthWage * 100
}
