package employee

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/employee"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/user"
	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/database"
	"github.com/talenthub-hr/hrms-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

const tempPasswordLength = 16

type EmployeeServiceImpl struct {
	db       *database.DB
	repo     employee.EmployeeRepository
	userRepo user.UserRepository

	// inTx wraps employee plus account provisioning; overridable in tests
	inTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewEmployeeService(db *database.DB, repo employee.EmployeeRepository, userRepo user.UserRepository) *EmployeeServiceImpl {
	s := &EmployeeServiceImpl{
		db:       db,
		repo:     repo,
		userRepo: userRepo,
	}
	s.inTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			return fn(context.WithValue(ctx, "tx", tx))
		})
	}
	return s
}

// WithTxRunner overrides the transaction wrapper.
func (s *EmployeeServiceImpl) WithTxRunner(inTx func(ctx context.Context, fn func(ctx context.Context) error) error) *EmployeeServiceImpl {
	s.inTx = inTx
	return s
}

// Create implements employee.EmployeeService. Issues the next login ID
// for the company/year pair, creates the record, and provisions an
// Employee user account with a one-time temporary password. Record and
// account commit atomically.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreatedEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.CreatedEmployeeResponse{}, err
	}

	email := strings.ToLower(req.Email)

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return employee.CreatedEmployeeResponse{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.CreatedEmployeeResponse{}, fmt.Errorf("failed to check employee email: %w", err)
	}

	dateOfJoining := time.Now()
	if req.DateOfJoining != "" {
		dateOfJoining, _ = time.Parse("2006-01-02", req.DateOfJoining)
	}
	yearOfJoining := dateOfJoining.Year()

	tempPassword, err := generateTempPassword()
	if err != nil {
		return employee.CreatedEmployeeResponse{}, fmt.Errorf("failed to generate temporary password: %w", err)
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return employee.CreatedEmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created employee.Employee
	err = s.inTx(ctx, func(txCtx context.Context) error {
		lastSerial, err := s.repo.LastSerialNumber(txCtx, req.CompanyName, yearOfJoining)
		if err != nil {
			return fmt.Errorf("failed to get last serial number: %w", err)
		}
		serialNumber := lastSerial + 1
		loginID := employee.FormatLoginID(req.CompanyName, req.FirstName, req.LastName, yearOfJoining, serialNumber)

		created, err = s.repo.Create(txCtx, employee.Employee{
			LoginID:       loginID,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         email,
			Phone:         req.Phone,
			CompanyName:   req.CompanyName,
			JobPosition:   req.JobPosition,
			Department:    req.Department,
			Manager:       req.Manager,
			Location:      req.Location,
			DateOfJoining: dateOfJoining,
			YearOfJoining: yearOfJoining,
			SerialNumber:  serialNumber,
			IsActive:      true,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		_, err = s.userRepo.Create(txCtx, user.User{
			Email:        email,
			PasswordHash: string(passwordHash),
			Role:         user.RoleEmployee,
			LoginID:      &created.LoginID,
			EmployeeID:   &created.ID,
			IsActive:     true,
		})
		if err != nil {
			return fmt.Errorf("failed to create user account: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.CreatedEmployeeResponse{}, err
	}

	return employee.CreatedEmployeeResponse{
		EmployeeResponse:  employee.ToResponse(created),
		TemporaryPassword: tempPassword,
	}, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.JobPosition != nil {
		emp.JobPosition = req.JobPosition
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.Manager != nil {
		emp.Manager = req.Manager
	}
	if req.Location != nil {
		emp.Location = req.Location
	}
	if req.ProfilePicture != nil {
		emp.ProfilePicture = req.ProfilePicture
	}
	if req.ResidingAddress != nil {
		emp.ResidingAddress = req.ResidingAddress
	}
	if req.Nationality != nil {
		emp.Nationality = req.Nationality
	}
	if req.PersonalEmail != nil {
		emp.PersonalEmail = req.PersonalEmail
	}
	if req.Gender != nil {
		emp.Gender = req.Gender
	}
	if req.MaritalStatus != nil {
		emp.MaritalStatus = req.MaritalStatus
	}
	if req.About != nil {
		emp.About = req.About
	}
	if req.WhatILoveAboutJob != nil {
		emp.WhatILoveAboutJob = req.WhatILoveAboutJob
	}
	if req.InterestsAndHobbies != nil {
		emp.InterestsAndHobbies = req.InterestsAndHobbies
	}
	if req.Skills != nil {
		emp.Skills = req.Skills
	}
	if req.BankDetails != nil {
		emp.BankDetails = req.BankDetails
	}

	if err := s.repo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee.ToResponse(emp), nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}

func generateTempPassword() (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	password := make([]byte, tempPasswordLength)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		password[i] = charset[n.Int64()]
	}
	return string(password), nil
}
