package ports

import (
	"context"
	"time"
)

// Session is the server-side state behind a web console cookie.
type Session struct {
	ID           string    `json:"id"`
	Token        string    `json:"token,omitempty"`
	PendingEmail string    `json:"pendingEmail,omitempty"`
	Flash        string    `json:"flash,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Persistence for web console sessions. Implementations must be safe for
// concurrent use and treat expired sessions as missing.
type SessionStore interface {
	// Get returns ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
