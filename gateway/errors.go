package gateway

import (
	"errors"
	"fmt"
)

// Failure classes surfaced by the gateway. Controllers only ever need to
// distinguish network trouble, an expired session, and the trending 404 that
// callers treat as empty data; everything else is a StatusError.
var (
	// ErrNetwork indicates the backend could not be reached at all.
	ErrNetwork = errors.New("Network error. Please check your connection and try again.")

	// ErrSessionExpired indicates a 401 response. The token has already been
	// cleared and the OnSessionExpired callback raised by the time a caller
	// observes this error.
	ErrSessionExpired = errors.New("session expired")

	// ErrTrendingNotFound is the sentinel for a 404 on a trending
	// sub-resource. Its message is the bare status so existing callers that
	// match on "404" keep working.
	ErrTrendingNotFound = errors.New("404")
)

// StatusError carries a non-2xx status and the human-readable message parsed
// from the server's JSON error body, or a generic fallback.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

func newStatusError(status int, message string) *StatusError {
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}
	return &StatusError{Status: status, Message: message}
}
