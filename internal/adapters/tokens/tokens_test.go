package tokens

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	s := NewFileStore(path)

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, s.SetToken(ctx, "abc"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	fresh := NewFileStore(path)
	tok, err = fresh.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	require.NoError(t, fresh.ClearToken(ctx))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	tok, err = fresh.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestFileStoreCachesAfterFirstRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"first"}`), 0o600))

	s := NewFileStore(path)
	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", tok)

	// Changes on disk are not picked up once loaded.
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"second"}`), 0o600))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", tok)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))

	_, err := NewFileStore(path).Token(context.Background())
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("t1")

	tok, _ := s.Token(ctx)
	assert.Equal(t, "t1", tok)

	require.NoError(t, s.ClearToken(ctx))
	tok, _ = s.Token(ctx)
	assert.Empty(t, tok)
}
