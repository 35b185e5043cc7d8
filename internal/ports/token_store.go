package ports

import "context"

// Holds the backend bearer token for whoever is driving the client.
type TokenStore interface {
	// Token returns "" when no token is stored.
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}
