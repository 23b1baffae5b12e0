package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrHRAccessRequired   = errors.New("HR role required")
	ErrEmployeeOnlyAction = errors.New("only employees can perform this action")
)
