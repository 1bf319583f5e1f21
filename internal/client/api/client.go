// Package api implements the typed HTTP client for the ProAim REST backend.
//
// The client holds the session token and attaches it as a bearer
// Authorization header to every request; no other component touches the
// header. Failures collapse to sentinel errors plus at most one
// human-readable message taken from the server's error envelope.
package api

import (
	"context"

	"github.com/proaim/proaimctl/internal/client/models"
)

// RegisterRequest carries the new-account fields for /api/auth/register.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Client is the surface the services consume. Implemented by HTTPClient;
// tests substitute fakes.
type Client interface {
	// Login exchanges credentials for a token and the normalized user.
	Login(ctx context.Context, username, password string) (string, *models.User, error)

	// Register creates an account. When the backend auto-logs the new user
	// in, the returned token is non-empty.
	Register(ctx context.Context, req RegisterRequest) (string, error)

	// SetToken attaches the bearer token to all subsequent requests.
	SetToken(token string)

	// ClearToken removes the attached bearer token.
	ClearToken()

	// Token reports the currently attached token ("" when none).
	Token() string

	ListProperties(ctx context.Context) ([]models.Property, error)
	GetProperty(ctx context.Context, id int64) (*models.Property, error)
	CreateProperty(ctx context.Context, p *models.Property) (*models.Property, error)
	ListListings(ctx context.Context) ([]models.Listing, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
	CreatePayment(ctx context.Context, p *models.Payment) (*models.Payment, error)
	Dashboard(ctx context.Context) (*models.DashboardSummary, error)
	Profile(ctx context.Context) (*models.User, error)

	// Admin-only surface; the backend enforces the role server-side,
	// the route guard keeps honest clients from even asking.
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
