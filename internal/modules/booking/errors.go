package booking

import "errors"

var (
	ErrMissingFields        = errors.New("missing required fields")
	ErrInvalidServiceID     = errors.New("invalid service id")
	ErrServiceNotFound      = errors.New("service not found")
	ErrNotFound             = errors.New("booking not found")
	ErrInvalidStatus        = errors.New("unknown status value")
	ErrInvalidPaymentStatus = errors.New("unknown payment status value")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrNotAWasher           = errors.New("assignee is not a washer")
)
