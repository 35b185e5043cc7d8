package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"naiyuan-admin/internal/platform/obs"
	"naiyuan-admin/internal/ports"
)

// PostgresStore keeps sessions in the admin_sessions table (see InitSchema).
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) Get(ctx context.Context, id string) (_ *ports.Session, err error) {
	defer obs.Time(ctx, "sessions.pg.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("session store: db is nil")
	}

	q := `
	SELECT id, token, pending_email, flash, expires_at
	FROM admin_sessions
	WHERE id = $1 AND expires_at > now();
	`

	var sess ports.Session
	err = s.DB.QueryRowContext(ctx, q, id).Scan(
		&sess.ID, &sess.Token, &sess.PendingEmail, &sess.Flash, &sess.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: query admin_sessions: %w", err)
	}
	return &sess, nil
}

func (s *PostgresStore) Save(ctx context.Context, sess *ports.Session) (err error) {
	defer obs.Time(ctx, "sessions.pg.Save")(&err)

	if s.DB == nil {
		return errors.New("session store: db is nil")
	}

	q := `
	INSERT INTO admin_sessions (id, token, pending_email, flash, expires_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, now())
	ON CONFLICT (id) DO UPDATE
	SET token = EXCLUDED.token,
		pending_email = EXCLUDED.pending_email,
		flash = EXCLUDED.flash,
		expires_at = EXCLUDED.expires_at,
		updated_at = now();
	`
	if _, err := s.DB.ExecContext(ctx, q, sess.ID, sess.Token, sess.PendingEmail, sess.Flash, sess.ExpiresAt); err != nil {
		return fmt.Errorf("save session id=%q: %w", sess.ID, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if s.DB == nil {
		return errors.New("session store: db is nil")
	}
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM admin_sessions WHERE id = $1;`, id); err != nil {
		return fmt.Errorf("delete session id=%q: %w", id, err)
	}
	return nil
}

// DeleteExpired removes expired rows and reports how many were removed.
func (s *PostgresStore) DeleteExpired(ctx context.Context) (_ int64, err error) {
	defer obs.Time(ctx, "sessions.pg.DeleteExpired")(&err)

	if s.DB == nil {
		return 0, errors.New("session store: db is nil")
	}
	res, err := s.DB.ExecContext(ctx, `DELETE FROM admin_sessions WHERE expires_at <= now();`)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}
