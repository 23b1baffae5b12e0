package user

import "time"

type Role string

const (
	RoleHR       Role = "HR"       // HR/admin - manages employees, attendance, leaves, payroll
	RoleEmployee Role = "Employee" // Regular employee
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	LoginID      *string // mirrors the employee's generated login ID
	EmployeeID   *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsHR checks if user has the HR role
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// IsEmployee checks if user has the employee role
func (u *User) IsEmployee() bool {
	return u.Role == RoleEmployee
}
