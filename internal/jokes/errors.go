package jokes

import (
	"errors"
	"fmt"
)

// Common errors returned by the jokes client.
var (
	// ErrNotFound indicates the provider has no joke with the requested ID.
	ErrNotFound = errors.New("joke not found")

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error communicating with joke provider")

	// ErrInvalidResponse indicates an unexpected or malformed response body.
	ErrInvalidResponse = errors.New("invalid response from joke provider")
)

// APIError is a non-2xx response from the provider.
type APIError struct {
	StatusCode int
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("joke provider returned status %d for %s", e.StatusCode, e.Path)
}

// IsNotFound returns true if the error indicates a joke was not found.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsNetworkError returns true if the provider could not be reached.
func IsNetworkError(err error) bool {
	return errors.Is(err, ErrNetworkError)
}
