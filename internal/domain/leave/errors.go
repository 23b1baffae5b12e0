package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrInvalidDecision  = errors.New("status must be Approved or Rejected")
	ErrAlreadyReviewed  = errors.New("leave request has already been reviewed")
	ErrNotPending       = errors.New("can only delete pending requests")
	ErrNotRequestOwner  = errors.New("access denied")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)
