package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/proaim/proaimctl/internal/client/migrations"
	"github.com/proaim/proaimctl/internal/client/models"
	"github.com/proaim/proaimctl/internal/dbx"
)

// SQLiteStore is the Store implementation over a client-local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenDatabase opens (or creates) the client database at dsn and applies
// pending migrations. The caller owns closing the handle.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open client database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate client database: %w", err)
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Save persists (token, user) in a single transaction, replacing any
// previous record.
func (s *SQLiteStore) Save(ctx context.Context, token string, user *models.User) error {
	if token == "" {
		return errors.New("refusing to save empty token")
	}
	if user == nil {
		return errors.New("refusing to save credentials without a user")
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user snapshot: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO credentials (id, token, user_json) VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				token = excluded.token,
				user_json = excluded.user_json,
				saved_at = CURRENT_TIMESTAMP
		`, token, userJSON)
		if err != nil {
			return fmt.Errorf("failed to save credentials: %w", err)
		}
		return nil
	})
}

// Load returns the saved record, or ok=false if the store is empty.
// A record whose user snapshot no longer deserializes is reported as an
// error; callers treat that the same as an empty store.
func (s *SQLiteStore) Load(ctx context.Context) (*Record, bool, error) {
	var (
		token    string
		userJSON []byte
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT token, user_json FROM credentials WHERE id = 1`,
	).Scan(&token, &userJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load credentials: %w", err)
	}

	rec := &Record{Token: token}
	if err := json.Unmarshal(userJSON, &rec.User); err != nil {
		return nil, false, fmt.Errorf("corrupted user snapshot: %w", err)
	}
	return rec, true, nil
}

// Clear removes the record; clearing an already empty store succeeds.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
