package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/auth"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/employee"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/user"
	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/database"
	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/talenthub-hr/hrms-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db           *database.DB
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service

	inTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, employeeRepo employee.EmployeeRepository, jwtService jwt.Service) *AuthServiceImpl {
	s := &AuthServiceImpl{
		db:           db,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
	s.inTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			return fn(context.WithValue(ctx, "tx", tx))
		})
	}
	return s
}

// WithTxRunner overrides the transaction wrapper.
func (a *AuthServiceImpl) WithTxRunner(inTx func(ctx context.Context, fn func(ctx context.Context) error) error) *AuthServiceImpl {
	a.inTx = inTx
	return a
}

// SignUp implements auth.Service. An HR sign-up carrying company and
// name details also bootstraps the HR's own employee record so the HR
// account gets a login ID like any other member of the company.
func (a *AuthServiceImpl) SignUp(ctx context.Context, req auth.SignUpRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	email := strings.ToLower(req.Email)

	if _, err := a.userRepo.GetByEmail(ctx, email); err == nil {
		return auth.AuthResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.AuthResponse{}, fmt.Errorf("failed to check user email: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         user.Role(req.Role),
		IsActive:     true,
	}

	bootstrapEmployee := newUser.Role == user.RoleHR &&
		req.CompanyName != "" && req.FirstName != "" && req.LastName != ""

	var created user.User
	err = a.inTx(ctx, func(txCtx context.Context) error {
		if bootstrapEmployee {
			now := time.Now()
			year := now.Year()

			lastSerial, err := a.employeeRepo.LastSerialNumber(txCtx, req.CompanyName, year)
			if err != nil {
				return fmt.Errorf("failed to get last serial number: %w", err)
			}
			serialNumber := lastSerial + 1
			loginID := employee.FormatLoginID(req.CompanyName, req.FirstName, req.LastName, year, serialNumber)

			var phone *string
			if req.Phone != "" {
				phone = &req.Phone
			}
			emp, err := a.employeeRepo.Create(txCtx, employee.Employee{
				LoginID:       loginID,
				FirstName:     req.FirstName,
				LastName:      req.LastName,
				Email:         email,
				Phone:         phone,
				CompanyName:   req.CompanyName,
				DateOfJoining: now,
				YearOfJoining: year,
				SerialNumber:  serialNumber,
				IsActive:      true,
			})
			if err != nil {
				return fmt.Errorf("failed to create employee record: %w", err)
			}
			newUser.LoginID = &emp.LoginID
			newUser.EmployeeID = &emp.ID
		}

		var err error
		created, err = a.userRepo.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return a.issueToken(created)
}

// SignIn implements auth.Service.
func (a *AuthServiceImpl) SignIn(ctx context.Context, req auth.SignInRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	u, err := a.userRepo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if !u.IsActive {
		return auth.AuthResponse{}, auth.ErrAccountInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueToken(u)
}

// Me implements auth.Service.
func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (auth.UserResponse, error) {
	u, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}
	return toUserResponse(u), nil
}

func (a *AuthServiceImpl) issueToken(u user.User) (auth.AuthResponse, error) {
	token, expiresAt, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return auth.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(u),
	}, nil
}

func toUserResponse(u user.User) auth.UserResponse {
	return auth.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Role:       string(u.Role),
		LoginID:    u.LoginID,
		EmployeeID: u.EmployeeID,
	}
}
