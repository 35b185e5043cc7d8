package session

import (
	"context"
	"naiyuan-admin/internal/adapters/sessions"
	"naiyuan-admin/internal/ports"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newManager() (*Manager, *sessions.MemoryStore) {
	store := sessions.NewMemoryStore()
	return &Manager{Store: store, TTL: time.Hour, Logger: zap.NewNop()}, store
}

func TestMiddlewareStartsSessionAndSetsCookie(t *testing.T) {
	m, _ := newManager()
	var st *State
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st = FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	require.NotNil(t, st)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, st.ID(), cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestMiddlewareLoadsExistingSession(t *testing.T) {
	m, store := newManager()
	require.NoError(t, store.Save(context.Background(), &ports.Session{
		ID: "known", Token: "tok", ExpiresAt: time.Now().Add(time.Hour),
	}))

	var st *State
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "known"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "known", st.ID())
	assert.True(t, st.LoggedIn())
	assert.Empty(t, rec.Result().Cookies())
}

func TestUnknownCookieGetsFreshSession(t *testing.T) {
	m, _ := newManager()
	var st *State
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "forged"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotEqual(t, "forged", st.ID())
	assert.False(t, st.LoggedIn())
}

func TestStateWritesThrough(t *testing.T) {
	ctx := context.Background()
	store := sessions.NewMemoryStore()
	st := newState(store, ports.Session{ID: "s1", ExpiresAt: time.Now().Add(time.Hour)})

	require.NoError(t, st.SetPendingEmail(ctx, "ops@naiyuan.test"))
	require.NoError(t, st.SetToken(ctx, "tok"))
	require.NoError(t, st.SetFlash(ctx, "Update failed"))

	saved, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok", saved.Token)
	assert.Empty(t, saved.PendingEmail)
	assert.Equal(t, "Update failed", saved.Flash)

	msg, err := st.TakeFlash(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Update failed", msg)

	msg, _ = st.TakeFlash(ctx)
	assert.Empty(t, msg)

	require.NoError(t, st.ClearToken(ctx))
	saved, _ = store.Get(ctx, "s1")
	assert.Empty(t, saved.Token)
}

func TestRequireAuthRedirectsToLogin(t *testing.T) {
	m, _ := newManager()
	called := false
	h := m.Middleware(RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bills", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestDestroy(t *testing.T) {
	m, store := newManager()
	require.NoError(t, store.Save(context.Background(), &ports.Session{
		ID: "known", Token: "tok", ExpiresAt: time.Now().Add(time.Hour),
	}))

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, m.Destroy(w, r))
	}))
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "known"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	_, err := store.Get(context.Background(), "known")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
}
