package sessions

import (
	"context"
	"database/sql"
	"naiyuan-admin/internal/ports"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, store ports.SessionStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	sess := &ports.Session{
		ID:           uuid.NewString(),
		PendingEmail: "ops@naiyuan.test",
		ExpiresAt:    time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "ops@naiyuan.test", got.PendingEmail)
	assert.Empty(t, got.Token)

	sess.Token = "tok"
	sess.PendingEmail = ""
	sess.Flash = "Shipment already billed"
	require.NoError(t, store.Save(ctx, sess))

	got, err = store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
	assert.Empty(t, got.PendingEmail)
	assert.Equal(t, "Shipment already billed", got.Flash)
	assert.True(t, got.ExpiresAt.Equal(sess.ExpiresAt))

	require.NoError(t, store.Delete(ctx, sess.ID))
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, &ports.Session{ID: "a", ExpiresAt: now.Add(time.Minute)}))
	require.NoError(t, store.Save(ctx, &ports.Session{ID: "b", ExpiresAt: now.Add(time.Hour)}))

	now = now.Add(10 * time.Minute)

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	n, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = store.Get(ctx, "b")
	assert.NoError(t, err)
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb), mr
}

func TestRedisStore(t *testing.T) {
	store, _ := newRedisStore(t)
	exerciseStore(t, store)
}

func TestRedisStoreSetsTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	sess := &ports.Session{ID: "s1", Token: "tok", ExpiresAt: time.Now().Add(30 * time.Minute)}
	require.NoError(t, store.Save(ctx, sess))

	ttl := mr.TTL(redisKeyPrefix + "s1")
	assert.Greater(t, ttl, 29*time.Minute)
	assert.LessOrEqual(t, ttl, 30*time.Minute)

	mr.FastForward(31 * time.Minute)
	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestRedisStoreSaveExpiredDeletes(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	require.NoError(t, store.Save(ctx, &ports.Session{ID: "s1", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, store.Save(ctx, &ports.Session{ID: "s1", ExpiresAt: time.Now().Add(-time.Second)}))

	assert.False(t, mr.Exists(redisKeyPrefix+"s1"))
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("NAIYUAN_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("NAIYUAN_TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, InitSchema(db))
	store := NewPostgresStore(db)
	exerciseStore(t, store)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &ports.Session{ID: uuid.NewString(), ExpiresAt: time.Now().Add(-time.Minute)}))
	n, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))
}

func TestInitSchemaNilDB(t *testing.T) {
	assert.Error(t, InitSchema(nil))
}
