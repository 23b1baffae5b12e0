package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out state conflicts, user-facing and recoverable
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("please check in first")
	ErrAlreadyCheckedOut = errors.New("already checked out today")

	ErrRecordNotFound = errors.New("attendance record not found")
	ErrRecordExists   = errors.New("attendance record already exists for this date")
	ErrInvalidStatus  = errors.New("invalid attendance status")
)
