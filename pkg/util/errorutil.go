package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewInvalidCredentials signals a failed username/password check.
func NewInvalidCredentials() error {
	return NewDomainError("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized, nil)
}

// NewTokenMissing signals an absent Authorization header.
func NewTokenMissing() error {
	return NewDomainError("TOKEN_MISSING", "Token missing", http.StatusUnauthorized, nil)
}

// NewTokenInvalid covers malformed, unsigned and expired tokens alike.
func NewTokenInvalid() error {
	return NewDomainError("TOKEN_INVALID", "Invalid token", http.StatusUnauthorized, nil)
}

// NewAccessDenied signals a role mismatch.
func NewAccessDenied() error {
	return NewDomainError("ACCESS_DENIED", "Access denied", http.StatusForbidden, nil)
}

// NewMalformedRequest signals a missing field or an unparseable identifier.
func NewMalformedRequest(message string, details map[string]any) error {
	return NewDomainError("MALFORMED_REQUEST", message, http.StatusBadRequest, details)
}

// NewRateLimited signals too many login attempts in the window.
func NewRateLimited(message string) error {
	return NewDomainError("RATE_LIMITED", message, http.StatusTooManyRequests, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
