package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWeek = errors.New("week must be between 1 and 53")
	ErrInvalidYear = errors.New("invalid year")
	ErrInvalidDate = errors.New("invalid date")

	ErrDatabaseOperation = errors.New("database operation error")
)

// ReportError carries the API error code alongside the cause.
type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
