package client

import (
	"errors"
	"fmt"
)

// The booking API surfaces exactly three failure categories to the user:
// no server response, unauthorized, and a generic operation failure.
// Call sites translate these into flash notifications; nothing propagates
// as a panic and nothing is retried.
var (
	// ErrNoServerResponse marks transport-level failures: the request never
	// reached a server (connection refused, DNS, timeout).
	ErrNoServerResponse = errors.New("no server response")

	// ErrUnauthorized marks an HTTP 401. On the login flow this means bad
	// credentials; on authenticated calls it means the token was rejected.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is any other non-2xx response, carried with enough detail for
// logs while the user sees an operation-specific message.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("booking API returned %d: %s", e.StatusCode, e.Body)
}

// IsNoServerResponse reports whether err is a transport-level failure.
func IsNoServerResponse(err error) bool {
	return errors.Is(err, ErrNoServerResponse)
}

// IsUnauthorized reports whether err is an HTTP 401.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
