package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: the request never
	// produced a well-formed response.
	ErrUnavailable = errors.New("server unavailable")
)

// APIError is a server rejection: a non-2xx response carrying a
// human-readable message that is surfaced to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}
