package client

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx backend response. Message carries the server-provided
// error envelope text when one was decodable, otherwise the per-operation
// fallback string.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Unauthorized reports whether the error is an authorization rejection. By the
// time the caller sees it the session store has already been cleared by the
// transport decorator.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsUnauthorized reports whether err is an authorization-rejection APIError.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}
