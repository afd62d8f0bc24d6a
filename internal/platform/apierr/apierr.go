package apierr

import (
	"errors"
	"fmt"
	"net/http"

	errs "github.com/yungbote/chinook-backend/internal/pkg/errors"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether e belongs to one of the domain error kinds.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case errs.ErrNotFound:
		return e.Status == http.StatusNotFound
	case errs.ErrInvalidOperation:
		return e.Status == http.StatusBadRequest
	}
	return false
}

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// NotFound reports a missing target or referenced record.
func NotFound(code, msg string) *Error {
	return New(http.StatusNotFound, code, errors.New(msg))
}

// InvalidOperation reports a business-rule violation.
func InvalidOperation(code, msg string) *Error {
	return New(http.StatusBadRequest, code, errors.New(msg))
}
