package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/payroll"
	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// Component breakdowns are stored as jsonb; amounts that reports sum
// over (wages, gross, net) live in their own numeric columns.
const payrollColumns = `
	p.id, p.employee_id, p.month_wage, p.yearly_wage,
	p.working_days_per_week, p.working_hours_per_day, p.break_time_minutes,
	p.salary_components, p.provident_fund, p.professional_tax,
	p.gross_salary, p.net_salary, p.is_active,
	p.created_at, p.updated_at,
	e.first_name || ' ' || e.last_name, e.login_id`

const payrollJoin = ` FROM payrolls p JOIN employees e ON e.id = p.employee_id`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var rec payroll.Payroll
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.MonthWage,
		&rec.YearlyWage,
		&rec.WorkingDaysPerWeek,
		&rec.WorkingHoursPerDay,
		&rec.BreakTimeMinutes,
		&rec.SalaryComponents,
		&rec.ProvidentFund,
		&rec.ProfessionalTax,
		&rec.GrossSalary,
		&rec.NetSalary,
		&rec.IsActive,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.EmployeeName,
		&rec.EmployeeLogin,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	if err != nil {
		return payroll.Payroll{}, err
	}
	return rec, nil
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO payrolls (
				id, employee_id, month_wage, yearly_wage,
				working_days_per_week, working_hours_per_day, break_time_minutes,
				salary_components, provident_fund, professional_tax,
				gross_salary, net_salary, is_active
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING *
		)
		SELECT ` + payrollColumns + `
		FROM inserted p JOIN employees e ON e.id = p.employee_id
	`

	return scanPayroll(q.QueryRow(ctx, query,
		uuid.NewString(),
		p.EmployeeID,
		p.MonthWage,
		p.YearlyWage,
		p.WorkingDaysPerWeek,
		p.WorkingHoursPerDay,
		p.BreakTimeMinutes,
		p.SalaryComponents,
		p.ProvidentFund,
		p.ProfessionalTax,
		p.GrossSalary,
		p.NetSalary,
		p.IsActive,
	))
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + payrollJoin + ` WHERE p.id = $1`
	return scanPayroll(q.QueryRow(ctx, query, id))
}

// GetActiveByEmployee implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetActiveByEmployee(ctx context.Context, employeeID string) (*payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + payrollJoin + ` WHERE p.employee_id = $1 AND p.is_active = true`

	rec, err := scanPayroll(q.QueryRow(ctx, query, employeeID))
	if errors.Is(err, payroll.ErrPayrollNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + payrollJoin + ` WHERE p.is_active = true`
	args := []interface{}{}

	if employeeID != "" {
		args = append(args, employeeID)
		query += ` AND p.employee_id = $1`
	}
	query += ` ORDER BY e.first_name, e.last_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, p payroll.Payroll) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET month_wage = $1, yearly_wage = $2,
			working_days_per_week = $3, working_hours_per_day = $4, break_time_minutes = $5,
			salary_components = $6, provident_fund = $7, professional_tax = $8,
			gross_salary = $9, net_salary = $10, updated_at = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, query,
		p.MonthWage,
		p.YearlyWage,
		p.WorkingDaysPerWeek,
		p.WorkingHoursPerDay,
		p.BreakTimeMinutes,
		p.SalaryComponents,
		p.ProvidentFund,
		p.ProfessionalTax,
		p.GrossSalary,
		p.NetSalary,
		p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}

// Deactivate implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE payrolls SET is_active = false, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}
