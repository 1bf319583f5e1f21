package api

import "errors"

var (
	// ErrUnavailable marks transport-level failures: the endpoint could not
	// be reached or returned no usable response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized maps HTTP 401: bad credentials or a rejected token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden maps HTTP 403: the authenticated role may not do this.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound maps HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrRequestFailed marks any other non-2xx response.
	ErrRequestFailed = errors.New("request failed")
)

// Fallback messages shown when the server response carries no message of
// its own. Wording matches what the web client historically displayed.
const (
	FallbackLoginMessage    = "Login failed. Please try again."
	FallbackRegisterMessage = "Registration failed. Please try again."
	FallbackRequestMessage  = "Request failed. Please try again."
)

// Error carries the single human-readable message derived from a server
// error payload, wrapping a sentinel for programmatic checks.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// UserMessage extracts the message to show the user for err: the
// server-provided one when present, otherwise the given fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
