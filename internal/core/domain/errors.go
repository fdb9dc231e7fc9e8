package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRateLimited signals a 429 from the platform. Callers recover by
	// waiting out the cooldown and retrying.
	ErrRateLimited = errors.New("rate limited by platform")

	// ErrInvalidCredential signals the security cookie was rejected.
	// Never retried.
	ErrInvalidCredential = errors.New("invalid security credential")
)

// CodeAlreadyHasRole is the platform error code returned when the target
// user already holds the role being assigned. Treated as success.
const CodeAlreadyHasRole = 26

// RoleNotFoundError is returned when a configured role name does not exist
// in the group's role list.
type RoleNotFoundError struct {
	Name string
}

func (e *RoleNotFoundError) Error() string {
	return fmt.Sprintf("role %s not found", e.Name)
}

// RetryLimitError is returned when an endpoint's retry budget is exhausted.
type RetryLimitError struct {
	Endpoint string
}

func (e *RetryLimitError) Error() string {
	return fmt.Sprintf("%s endpoint exceeded retry limit", e.Endpoint)
}

// PlatformError carries a structured error returned by the platform API.
// Code is the platform's own numeric error code, not the HTTP status.
type PlatformError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *PlatformError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("platform error %d (http %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("platform error %d (http %d)", e.Code, e.StatusCode)
}

// IsAlreadyHasRole reports whether err is the platform's idempotency
// conflict for role assignment.
func IsAlreadyHasRole(err error) bool {
	var pe *PlatformError
	return errors.As(err, &pe) && pe.Code == CodeAlreadyHasRole
}
