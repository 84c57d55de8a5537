package api

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx response from the marketplace API, carrying the
// server-supplied message when the body had one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// NetworkError means no usable response reached the client at all
// (DNS failure, timeout, refused connection).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// UnexpectedError means a response arrived but its shape did not match
// what the operation expected.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string { return "unexpected response: " + e.Err.Error() }
func (e *UnexpectedError) Unwrap() error { return e.Err }

// IsStatus reports whether err (or any wrapped error) is an APIError with
// the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}
	return false
}

// UserMessage derives the message a screen should display for a failed
// call: the server-supplied message when there is one, fallback otherwise.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
