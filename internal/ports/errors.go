package ports

import "errors"

var (
	// ErrUnauthorized means the backend rejected the bearer token. The stored
	// token has already been cleared; callers send the admin back to login.
	ErrUnauthorized = errors.New("Unauthorized")

	// ErrAdminRequired means the token is valid but lacks the admin role.
	ErrAdminRequired = errors.New("Admin access required")

	// ErrSessionNotFound is returned by session stores for unknown or expired ids.
	ErrSessionNotFound = errors.New("session not found")
)
