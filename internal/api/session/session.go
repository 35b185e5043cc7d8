package session

import (
	"context"
	"fmt"
	"naiyuan-admin/internal/ports"
	"sync"
)

// State is the session of the request being served. It implements
// ports.TokenStore so a backend client can read and clear the token of the
// admin behind the cookie. Every mutation is written through to the store
// before it returns, so a redirect never races the save.
type State struct {
	store ports.SessionStore

	mu   sync.Mutex
	sess ports.Session
}

var _ ports.TokenStore = (*State)(nil)

func newState(store ports.SessionStore, sess ports.Session) *State {
	return &State{store: store, sess: sess}
}

func (s *State) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.ID
}

func (s *State) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.Token, nil
}

// LoggedIn reports whether a backend token is held.
func (s *State) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.Token != ""
}

func (s *State) SetToken(ctx context.Context, token string) error {
	return s.update(ctx, func(sess *ports.Session) {
		sess.Token = token
		sess.PendingEmail = ""
	})
}

func (s *State) ClearToken(ctx context.Context) error {
	return s.update(ctx, func(sess *ports.Session) { sess.Token = "" })
}

// PendingEmail is the address an OTP was sent to, "" before login step one.
func (s *State) PendingEmail() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.PendingEmail
}

func (s *State) SetPendingEmail(ctx context.Context, email string) error {
	return s.update(ctx, func(sess *ports.Session) { sess.PendingEmail = email })
}

// SetFlash stores a one-shot message shown as an alert on the next page.
func (s *State) SetFlash(ctx context.Context, msg string) error {
	return s.update(ctx, func(sess *ports.Session) { sess.Flash = msg })
}

// TakeFlash returns and clears the pending flash message.
func (s *State) TakeFlash(ctx context.Context) (string, error) {
	s.mu.Lock()
	msg := s.sess.Flash
	s.mu.Unlock()

	if msg == "" {
		return "", nil
	}
	if err := s.update(ctx, func(sess *ports.Session) { sess.Flash = "" }); err != nil {
		return msg, err
	}
	return msg, nil
}

func (s *State) update(ctx context.Context, fn func(*ports.Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.sess
	fn(&next)
	if err := s.store.Save(ctx, &next); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.sess = next
	return nil
}

type ctxKey struct{}

func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the request's session. It panics when the session
// middleware did not run, which is a wiring bug.
func FromContext(ctx context.Context) *State {
	s, ok := ctx.Value(ctxKey{}).(*State)
	if !ok {
		panic("session: no session in context")
	}
	return s
}
