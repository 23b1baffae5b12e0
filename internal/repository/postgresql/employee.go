package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/employee"
	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, login_id, first_name, last_name, email, phone, company_name, company_logo,
	job_position, department, manager, location, profile_picture,
	date_of_joining, year_of_joining, serial_number,
	residing_address, nationality, personal_email, gender, marital_status,
	about, what_i_love_about_job, interests_and_hobbies, skills, bank_details,
	is_active, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.LoginID,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.Phone,
		&e.CompanyName,
		&e.CompanyLogo,
		&e.JobPosition,
		&e.Department,
		&e.Manager,
		&e.Location,
		&e.ProfilePicture,
		&e.DateOfJoining,
		&e.YearOfJoining,
		&e.SerialNumber,
		&e.ResidingAddress,
		&e.Nationality,
		&e.PersonalEmail,
		&e.Gender,
		&e.MaritalStatus,
		&e.About,
		&e.WhatILoveAboutJob,
		&e.InterestsAndHobbies,
		&e.Skills,
		&e.BankDetails,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, login_id, first_name, last_name, email, phone, company_name,
			job_position, department, manager, location,
			date_of_joining, year_of_joining, serial_number, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		uuid.NewString(),
		emp.LoginID,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.Phone,
		emp.CompanyName,
		emp.JobPosition,
		emp.Department,
		emp.Manager,
		emp.Location,
		emp.DateOfJoining,
		emp.YearOfJoining,
		emp.SerialNumber,
		emp.IsActive,
	))
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`
	return scanEmployee(q.QueryRow(ctx, query, email))
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active = true ORDER BY first_name, last_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, phone = $3,
			job_position = $4, department = $5, manager = $6, location = $7,
			profile_picture = $8, residing_address = $9, nationality = $10,
			personal_email = $11, gender = $12, marital_status = $13,
			about = $14, what_i_love_about_job = $15, interests_and_hobbies = $16,
			skills = $17, bank_details = $18, updated_at = NOW()
		WHERE id = $19
	`

	tag, err := q.Exec(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Phone,
		emp.JobPosition,
		emp.Department,
		emp.Manager,
		emp.Location,
		emp.ProfilePicture,
		emp.ResidingAddress,
		emp.Nationality,
		emp.PersonalEmail,
		emp.Gender,
		emp.MaritalStatus,
		emp.About,
		emp.WhatILoveAboutJob,
		emp.InterestsAndHobbies,
		emp.Skills,
		emp.BankDetails,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET is_active = false, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// LastSerialNumber implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) LastSerialNumber(ctx context.Context, companyName string, yearOfJoining int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(MAX(serial_number), 0)
		FROM employees
		WHERE company_name = $1 AND year_of_joining = $2
	`

	var last int
	if err := q.QueryRow(ctx, query, companyName, yearOfJoining).Scan(&last); err != nil {
		return 0, err
	}
	return last, nil
}
