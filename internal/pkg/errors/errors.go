package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidOperation is a generic sentinel for business-rule violations.
	ErrInvalidOperation = errors.New("invalid operation")
)
