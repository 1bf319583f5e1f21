// Package services contains application services for the ProAim client.
// This file defines the authentication service: login, registration,
// logout, and restoration of a persisted session at startup.
package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/proaim/proaimctl/internal/client/api"
	"github.com/proaim/proaimctl/internal/client/credentials"
	"github.com/proaim/proaimctl/internal/client/models"
	"github.com/proaim/proaimctl/internal/logging"
)

// AuthService defines the authentication operations the session provider
// delegates to.
//
// Contract:
//   - Login: authenticate against the server, persist credentials, attach
//     the bearer token; on failure nothing is attached or persisted.
//   - Register: create an account; adopt the session when the backend
//     auto-logs the new user in.
//   - Logout: clear persisted credentials and detach the token; idempotent.
//   - Restore: one-shot read of persisted credentials; storage failures
//     degrade to "no session" and are logged, never returned.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Register(ctx context.Context, req api.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.User, bool)
}

type authService struct {
	client api.Client
	store  credentials.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client,
// credential store, and logger.
func NewAuthService(client api.Client, store credentials.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log.With("component", "auth")}
}

// Login exchanges credentials for a session. The token is attached to
// subsequent requests and the (token, user) pair is persisted; a persist
// failure is logged and the session continues in memory only.
func (a *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	token, user, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	a.client.SetToken(token)
	if err := a.store.Save(ctx, token, user); err != nil {
		a.log.Warn(ctx, "failed to persist credentials, session will not survive restart", "err", err)
	}
	return user, nil
}

// Register creates an account. When the backend returns a token
// (auto-login policy), the token is attached, the new user's profile is
// fetched, and the pair is persisted; the returned user is non-nil.
// Without a token the caller stays unauthenticated and logs in explicitly.
func (a *authService) Register(ctx context.Context, req api.RegisterRequest) (*models.User, error) {
	token, err := a.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	a.client.SetToken(token)

	user, err := a.client.Profile(ctx)
	if err != nil {
		// Token works but the profile fetch failed: keep the in-memory
		// session, skip persisting so the store never holds a token
		// without its user snapshot.
		a.log.Warn(ctx, "registered and attached token, but profile fetch failed", "err", err)
		return &models.User{Username: req.Username, Email: req.Email, Role: models.RoleUser}, nil
	}

	if err := a.store.Save(ctx, token, user); err != nil {
		a.log.Warn(ctx, "failed to persist credentials, session will not survive restart", "err", err)
	}
	return user, nil
}

// Logout clears persisted credentials and detaches the bearer token.
// Calling it when already logged out is a no-op; storage failures are
// logged, not returned, so logout always leaves the client unauthenticated.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Warn(ctx, "failed to clear persisted credentials", "err", err)
	}
	a.client.ClearToken()
	return nil
}

// Restore loads the persisted credential record and re-attaches its token.
// Any storage error degrades to "no session found": the failure is logged
// and the client starts unauthenticated.
func (a *authService) Restore(ctx context.Context) (*models.User, bool) {
	rec, ok, err := a.store.Load(ctx)
	if err != nil {
		a.log.Warn(ctx, "credential store unavailable, starting unauthenticated", "err", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	// The token is not re-validated against the backend here; a stale or
	// revoked token surfaces on the first rejected request. Expiry is
	// logged when the token is inspectable so the condition is visible.
	if exp, known := tokenExpiry(rec.Token); known && exp.Before(time.Now()) {
		a.log.Warn(ctx, "stored token is past its expiry, requests may be rejected",
			"expired_at", exp, "user", rec.User.Username)
	}

	a.client.SetToken(rec.Token)
	return &rec.User, true
}

// tokenExpiry parses the token as a JWT without verifying its signature
// and reports the exp claim. known=false for opaque or claimless tokens.
func tokenExpiry(token string) (exp time.Time, known bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	numeric, err := claims.GetExpirationTime()
	if err != nil || numeric == nil {
		return time.Time{}, false
	}
	return numeric.Time, true
}
