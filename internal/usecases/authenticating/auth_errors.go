package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("token expired")
	ErrInsufficientPrivilege = errors.New("insufficient privileges")

	ErrMissingRequiredData = errors.New("missing required data")
	ErrInvalidRole         = errors.New("invalid role")
	ErrMissingSecret       = errors.New("auth secret is not configured")
)

// AuthError carries the API error code alongside the cause.
type AuthError struct {
	Err     error
	Code    string
	Subject string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewSubjectAuthError(baseErr error, code string, subject string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Subject: subject,
		Details: details,
	}
}
