package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRejected     = errors.New("request rejected")
	ErrEmailTaken   = errors.New("email already registered")
	ErrNoToken      = errors.New("no session token")
)

// EmailTakenDetail is the detail the API returns for a duplicate sign-up.
const EmailTakenDetail = "Email already registered"

// APIError is a non-2xx response. Err classifies it as one of the sentinel
// errors above so callers can use errors.Is.
type APIError struct {
	Status int
	Detail string
	Err    error
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s (status %d)", e.Err, e.Status)
	}
	return fmt.Sprintf("%s (status %d): %s", e.Err, e.Status, e.Detail)
}

func (e *APIError) Unwrap() error { return e.Err }

// Detail returns the server-supplied reason of err, if it carries one.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
