package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable marks transport-level failures: the backend could not be
// reached or its response could not be read.  Handlers turn these into
// generic retry-prompting messages.
var ErrUnavailable = errors.New("backend unavailable")

// APIError is a request the backend received and refused: validation
// errors, hold conflicts, cancellation-window violations, unknown codes.
// Message carries the envelope's message verbatim when the backend sent
// one; UserMessage supplies the fallback otherwise.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend: %d", e.Status)
}

// UserMessage returns the text to surface to the user: the backend's own
// message when present, a generic fallback otherwise.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "The request was rejected. Please try again."
}

// NotFound reports whether the error is a backend 404.
func NotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Conflict reports whether the error is a backend rejection of a hold or
// booking because a seat was claimed concurrently.
func Conflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		(apiErr.Status == http.StatusConflict || apiErr.Status == http.StatusBadRequest)
}
