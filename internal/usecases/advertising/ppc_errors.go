package advertising

import (
	"errors"
	"fmt"
)

var (
	ErrNoData        = errors.New("no ppc data for the selection")
	ErrInvalidPeriod = errors.New("start date is after end date")

	ErrDatabaseOperation = errors.New("database operation error")
)

type PPCError struct {
	Err     error
	Code    string
	Country string
	Details string
}

func (e *PPCError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PPCError) Unwrap() error {
	return e.Err
}

func NewPPCError(err error, code string, country string, details string) *PPCError {
	return &PPCError{
		Err:     err,
		Code:    code,
		Country: country,
		Details: details,
	}
}
