// Package credentials persists the session token and the cached user
// snapshot between runs.
//
// The record is written and cleared as a unit: a reader either sees the
// complete (token, user) pair or nothing. Storage failures are reported to
// the caller as errors; the session layer treats them as "no session found"
// and logs them, so the UI degrades to unauthenticated instead of failing.
package credentials

import (
	"context"

	"github.com/proaim/proaimctl/internal/client/models"
)

// Record is the persisted credential pair.
type Record struct {
	Token string
	User  models.User
}

// Store defines durable storage for the credential record.
type Store interface {
	// Save persists the pair atomically, replacing any previous record.
	Save(ctx context.Context, token string, user *models.User) error

	// Load returns the last saved record, or ok=false if none exists.
	Load(ctx context.Context) (rec *Record, ok bool, err error)

	// Clear removes the record. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
