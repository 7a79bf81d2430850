package targeting

import (
	"errors"
	"fmt"
)

var (
	ErrNoRange     = errors.New("no date range for year and week")
	ErrInvalidDate = errors.New("invalid date")

	ErrDatabaseOperation = errors.New("database operation error")
)

type TargetError struct {
	Err     error
	Code    string
	Details string
}

func (e *TargetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

func NewTargetError(err error, code string, details string) *TargetError {
	return &TargetError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
