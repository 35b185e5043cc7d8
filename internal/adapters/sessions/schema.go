package sessions

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the admin_sessions table used by PostgresStore.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSessionsQuery := `
	CREATE TABLE IF NOT EXISTS admin_sessions (
		id TEXT PRIMARY KEY,
		token TEXT NOT NULL DEFAULT '',
		pending_email TEXT NOT NULL DEFAULT '',
		flash TEXT NOT NULL DEFAULT '',
		expires_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_admin_sessions_expires_at
	ON admin_sessions(expires_at);
	`

	statements := []string{
		createSessionsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
