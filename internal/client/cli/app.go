package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/proaim/proaimctl/internal/client/api"
	"github.com/proaim/proaimctl/internal/client/config"
	"github.com/proaim/proaimctl/internal/client/credentials"
	"github.com/proaim/proaimctl/internal/client/models"
	"github.com/proaim/proaimctl/internal/client/services"
	"github.com/proaim/proaimctl/internal/client/session"
	"github.com/proaim/proaimctl/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the client together: config, credential store, API client,
// services, and the session provider every view reads from.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Provider
	rentals services.RentalService
	admin   services.AdminService
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewTextLogger(os.Stderr, c.SlogLevel())

	db, err := credentials.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		// The store is optional by contract: without it the session just
		// will not survive restarts.
		log.Warn(ctx, "credential store unavailable, sessions will not persist",
			"path", c.DatabasePath, "err", err)
		db = nil
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)

	var store credentials.Store
	if db != nil {
		store = credentials.NewSQLiteStore(db)
	} else {
		store = noopStore{}
	}

	auth := services.NewAuthService(apiClient, store, log)

	return &App{
		config:  c,
		log:     log,
		db:      db,
		session: session.NewProvider(auth, log),
		rentals: services.NewRentalService(apiClient),
		admin:   services.NewAdminService(apiClient),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.session.Restore(ctx)

	if snap := a.session.Snapshot(); snap.IsAuthenticated {
		printlnFn("Welcome back, " + snap.CurrentUser.FullName() + "!")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the credential database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated
}

func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated || snap.CurrentUser == nil {
		return "(signed out)"
	}
	return "(" + snap.CurrentUser.Username + " " + string(snap.CurrentUser.Role) + ")"
}

// noopStore stands in when the local database cannot be opened; every
// load reports "no session".
type noopStore struct{}

func (noopStore) Save(context.Context, string, *models.User) error { return nil }

func (noopStore) Load(context.Context) (*credentials.Record, bool, error) {
	return nil, false, nil
}

func (noopStore) Clear(context.Context) error { return nil }
