package session

import (
	"errors"
	"naiyuan-admin/internal/adapters/audit"
	"naiyuan-admin/internal/ports"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const CookieName = "naiyuan_admin_session"

// Manager loads the session named by the request cookie, or starts a new
// one, and puts it in the request context.
type Manager struct {
	Store  ports.SessionStore
	TTL    time.Duration
	Secure bool
	Logger *zap.Logger
}

func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var sess *ports.Session
		if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
			got, err := m.Store.Get(ctx, c.Value)
			switch {
			case err == nil:
				sess = got
			case !errors.Is(err, ports.ErrSessionNotFound):
				m.Logger.Error("load session failed", zap.Error(err))
			}
		}

		if sess == nil {
			sess = &ports.Session{
				ID:        uuid.NewString(),
				ExpiresAt: time.Now().Add(m.TTL),
			}
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    sess.ID,
				Path:     "/",
				Expires:  sess.ExpiresAt,
				HttpOnly: true,
				Secure:   m.Secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		st := newState(m.Store, *sess)
		ctx = WithState(ctx, st)
		ctx = audit.WithActor(ctx, actor(sess.ID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Destroy deletes the session and expires its cookie.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	st := FromContext(r.Context())
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return m.Store.Delete(r.Context(), st.ID())
}

// RequireAuth sends requests without a backend token to /login.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !FromContext(r.Context()).LoggedIn() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// actor is the short session label recorded on audit events.
func actor(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return "session:" + id
}
