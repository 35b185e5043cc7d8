package tokens

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type fileRecord struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"savedAt"`
}

// FileStore persists the token as JSON on disk for adminctl. The file is
// read on first use and cached in memory afterwards.
type FileStore struct {
	path string

	mu     sync.Mutex
	loaded bool
	token  string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.token, nil
	}

	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.loaded = true
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("token file: read %q: %w", s.path, err)
	}

	var rec fileRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return "", fmt.Errorf("token file: decode %q: %w", s.path, err)
	}
	s.token = rec.Token
	s.loaded = true
	return s.token, nil
}

func (s *FileStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.MarshalIndent(fileRecord{Token: token, SavedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("token file: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("token file: create dir: %w", err)
	}
	if err := writeFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("token file: write %q: %w", s.path, err)
	}

	s.token = token
	s.loaded = true
	return nil
}

func (s *FileStore) ClearToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("token file: remove %q: %w", s.path, err)
	}
	s.token = ""
	s.loaded = true
	return nil
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
