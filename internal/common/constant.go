// Package common contains shared constants and small helpers used across
// ProAim client components.
package common

const (
	// AuthHeaderName is the HTTP header carrying the session token on
	// outbound requests.
	AuthHeaderName = "Authorization"

	// BearerPrefix prepends the token in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName carries a client-generated id for request tracing.
	RequestIDHeaderName = "X-Request-Id"
)
