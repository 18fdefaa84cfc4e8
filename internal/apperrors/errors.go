package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but does not own the target resource.
var ErrForbidden = errors.New("forbidden")

// ErrNoRegisterFound indicates the member has no point-of-sale registered to it.
var ErrNoRegisterFound = errors.New("no point-of-sale registered for this member")

// ErrBadRange indicates a reporting window whose start is after its end.
var ErrBadRange = errors.New("invalid time range: start is after end")

// ErrInactiveMember indicates a login attempt against a deactivated account.
var ErrInactiveMember = errors.New("member account is inactive")

// ErrRefreshTokenExpired indicates the stored refresh token is gone or past its TTL.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AppError carries an HTTP status alongside an infrastructure failure.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
