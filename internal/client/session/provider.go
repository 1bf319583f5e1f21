// Package session holds the process-wide source of truth for "who is
// logged in". The Provider is injectable state, not an ambient singleton:
// the CLI constructs one and hands it to every view that needs identity.
package session

import (
	"context"
	"sync"

	"github.com/proaim/proaimctl/internal/client/api"
	"github.com/proaim/proaimctl/internal/client/models"
	"github.com/proaim/proaimctl/internal/client/services"
	"github.com/proaim/proaimctl/internal/logging"
)

// Snapshot is the immutable view of the current session.
//
// Invariant: IsAuthenticated is true exactly when CurrentUser is non-nil
// and a token is attached to the API client. IsInitializing is true only
// until the one-time startup restore completes.
type Snapshot struct {
	CurrentUser     *models.User
	IsAuthenticated bool
	IsInitializing  bool
}

// Provider owns the session snapshot and exposes the three auth operations.
// Every successful operation updates the snapshot exactly once and pushes
// it to subscribers synchronously.
type Provider struct {
	mu       sync.Mutex
	auth     services.AuthService
	log      logging.Logger
	snap     Snapshot
	subs     []func(Snapshot)
	restored bool
}

// NewProvider builds a Provider in the initializing state; call Restore
// once at startup to finish initialization.
func NewProvider(auth services.AuthService, log logging.Logger) *Provider {
	return &Provider{
		auth: auth,
		log:  log.With("component", "session"),
		snap: Snapshot{IsInitializing: true},
	}
}

// Snapshot returns the current session view.
func (p *Provider) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

// Subscribe registers fn to be called with every published snapshot.
// Notifications are synchronous with the operation that caused them.
func (p *Provider) Subscribe(fn func(Snapshot)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, fn)
}

// publish stores the snapshot and notifies subscribers outside the lock.
func (p *Provider) publish(snap Snapshot) {
	p.mu.Lock()
	p.snap = snap
	subs := make([]func(Snapshot), len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Restore performs the one-time startup read of persisted credentials.
// It runs at most once per Provider; repeat calls are no-ops. Whatever the
// outcome, the provider leaves the initializing state.
func (p *Provider) Restore(ctx context.Context) {
	p.mu.Lock()
	if p.restored {
		p.mu.Unlock()
		return
	}
	p.restored = true
	p.mu.Unlock()

	user, ok := p.auth.Restore(ctx)
	if ok {
		p.log.Info(ctx, "session restored", "user", user.Username, "role", user.Role)
	} else {
		p.log.Debug(ctx, "no persisted session found")
	}

	p.publish(Snapshot{CurrentUser: user, IsAuthenticated: ok})
}

// Login authenticates and, on success, publishes the new identity. A new
// login overwrites any previous session; it never merges.
func (p *Provider) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := p.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	p.publish(Snapshot{CurrentUser: user, IsAuthenticated: true})
	return user, nil
}

// Register creates an account. When the backend auto-logs the new user in,
// the session adopts the identity. Without a token the current session,
// authenticated or not, is left exactly as it was: creating an account for
// someone else must never sign the caller out.
func (p *Provider) Register(ctx context.Context, req api.RegisterRequest) (*models.User, error) {
	user, err := p.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	p.publish(Snapshot{CurrentUser: user, IsAuthenticated: true})
	return user, nil
}

// Logout resets the session to unauthenticated. Idempotent.
func (p *Provider) Logout(ctx context.Context) error {
	if err := p.auth.Logout(ctx); err != nil {
		return err
	}

	p.publish(Snapshot{})
	return nil
}
