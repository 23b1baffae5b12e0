package payroll

import (
	"context"
	"fmt"

	"github.com/talenthub-hr/hrms-backend-go/internal/domain/employee"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	repo         payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(repo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		repo:         repo,
		employeeRepo: employeeRepo,
	}
}

// Save implements payroll.Service. Runs the component calculator on the
// submitted wage and creates or replaces the employee's active record.
func (p *PayrollServiceImpl) Save(ctx context.Context, req payroll.SaveRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	if _, err := p.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.PayrollResponse{}, err
	}

	breakdown := payroll.CalculateComponents(req.MonthWage, req.Config)

	record := payroll.Payroll{
		EmployeeID:         req.EmployeeID,
		MonthWage:          req.MonthWage,
		YearlyWage:         req.MonthWage * 12,
		WorkingDaysPerWeek: payroll.DefaultWorkingDaysPerWeek,
		WorkingHoursPerDay: payroll.DefaultWorkingHoursPerDay,
		BreakTimeMinutes:   payroll.DefaultBreakTimeMinutes,
		SalaryComponents:   breakdown.SalaryComponents,
		ProvidentFund:      breakdown.ProvidentFund,
		ProfessionalTax:    breakdown.ProfessionalTax,
		GrossSalary:        breakdown.GrossSalary,
		NetSalary:          breakdown.NetSalary,
		IsActive:           true,
	}
	if req.YearlyWage != nil {
		record.YearlyWage = *req.YearlyWage
	}
	if req.WorkingDaysPerWeek != nil {
		record.WorkingDaysPerWeek = *req.WorkingDaysPerWeek
	}
	if req.WorkingHoursPerDay != nil {
		record.WorkingHoursPerDay = *req.WorkingHoursPerDay
	}
	if req.BreakTimeMinutes != nil {
		record.BreakTimeMinutes = *req.BreakTimeMinutes
	}

	existing, err := p.repo.GetActiveByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to look up active payroll: %w", err)
	}

	if existing == nil {
		created, err := p.repo.Create(ctx, record)
		if err != nil {
			return payroll.PayrollResponse{}, fmt.Errorf("failed to create payroll record: %w", err)
		}
		return payroll.ToResponse(created), nil
	}

	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	if err := p.repo.Update(ctx, record); err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update payroll record: %w", err)
	}
	return payroll.ToResponse(record), nil
}

// Get implements payroll.Service.
func (p *PayrollServiceImpl) Get(ctx context.Context, id, requesterEmployeeID string, isHR bool) (payroll.PayrollResponse, error) {
	record, err := p.repo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if !isHR && record.EmployeeID != requesterEmployeeID {
		return payroll.PayrollResponse{}, payroll.ErrPayrollNotFound
	}
	return payroll.ToResponse(record), nil
}

// GetByEmployee implements payroll.Service.
func (p *PayrollServiceImpl) GetByEmployee(ctx context.Context, employeeID string) (payroll.PayrollResponse, error) {
	record, err := p.repo.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to look up active payroll: %w", err)
	}
	if record == nil {
		return payroll.PayrollResponse{}, payroll.ErrPayrollNotFound
	}
	return payroll.ToResponse(*record), nil
}

// List implements payroll.Service.
func (p *PayrollServiceImpl) List(ctx context.Context, employeeID string) ([]payroll.PayrollResponse, error) {
	records, err := p.repo.List(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, payroll.ToResponse(record))
	}
	return responses, nil
}

// Deactivate implements payroll.Service.
func (p *PayrollServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := p.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := p.repo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate payroll record: %w", err)
	}
	return nil
}
