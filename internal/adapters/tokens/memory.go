package tokens

import (
	"context"
	"sync"
)

// MemoryStore keeps the token in process memory only.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (s *MemoryStore) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ClearToken(ctx context.Context) error {
	return s.SetToken(ctx, "")
}
