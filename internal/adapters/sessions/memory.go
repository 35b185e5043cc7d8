package sessions

import (
	"context"
	"naiyuan-admin/internal/ports"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Sessions are lost on restart.
type MemoryStore struct {
	mu  sync.RWMutex
	m   map[string]ports.Session
	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]ports.Session), now: time.Now}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*ports.Session, error) {
	s.mu.RLock()
	sess, ok := s.m[id]
	s.mu.RUnlock()

	if !ok || !sess.ExpiresAt.After(s.now()) {
		return nil, ports.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *MemoryStore) Save(ctx context.Context, sess *ports.Session) error {
	s.mu.Lock()
	s.m[sess.ID] = *sess
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
	return nil
}

// DeleteExpired drops expired sessions and reports how many were removed.
func (s *MemoryStore) DeleteExpired(ctx context.Context) (int64, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, sess := range s.m {
		if !sess.ExpiresAt.After(now) {
			delete(s.m, id)
			n++
		}
	}
	return n, nil
}
