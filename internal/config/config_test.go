package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Sessions.Backend != "memory" {
		t.Errorf("expected memory sessions, got %s", cfg.Sessions.Backend)
	}
	if got := cfg.BackendTimeout(); got != 15*time.Second {
		t.Errorf("BackendTimeout() = %v, want 15s", got)
	}
	if got := cfg.SessionTTL(); got != 12*time.Hour {
		t.Errorf("SessionTTL() = %v, want 12h", got)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.BaseURL != "http://localhost:3000/api" {
		t.Errorf("unexpected base url %s", cfg.Backend.BaseURL)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.yaml")
	data := []byte(`
server:
  port: "9090"
backend:
  base_url: https://api.naiyuan.test/api
  timeout: 5s
sessions:
  backend: redis
  redis_addr: redis:6379
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "7070")
	t.Setenv("KAFKA_BROKER", "kafka:9092")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("env should override port, got %s", cfg.Server.Port)
	}
	if cfg.Backend.BaseURL != "https://api.naiyuan.test/api" {
		t.Errorf("base url from file, got %s", cfg.Backend.BaseURL)
	}
	if cfg.BackendTimeout() != 5*time.Second {
		t.Errorf("timeout from file, got %v", cfg.BackendTimeout())
	}
	if cfg.Sessions.Backend != "redis" || cfg.Sessions.RedisAddr != "redis:6379" {
		t.Errorf("sessions from file, got %+v", cfg.Sessions)
	}
	if cfg.Audit.KafkaBroker != "kafka:9092" {
		t.Errorf("kafka broker from env, got %s", cfg.Audit.KafkaBroker)
	}
	if !cfg.Server.CookieSecure {
		t.Error("expected secure cookies")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.yaml")
	if err := os.WriteFile(path, []byte("server: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sessions.Backend = "etcd"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown session backend")
	}

	cfg = DefaultConfig()
	cfg.Sessions.Backend = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for postgres without DATABASE_URL")
	}

	cfg.Sessions.DatabaseURL = "postgres://localhost/naiyuan"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDurationFallbacks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend.Timeout = "soon"
	cfg.Sessions.TTL = "-1h"

	if cfg.BackendTimeout() != 15*time.Second {
		t.Errorf("BackendTimeout() = %v", cfg.BackendTimeout())
	}
	if cfg.SessionTTL() != 12*time.Hour {
		t.Errorf("SessionTTL() = %v", cfg.SessionTTL())
	}
}

func TestGet(t *testing.T) {
	t.Setenv("NAIYUAN_TEST_KEY", "set")
	if Get("NAIYUAN_TEST_KEY", "fallback") != "set" {
		t.Error("expected env value")
	}
	if Get("NAIYUAN_TEST_MISSING", "fallback") != "fallback" {
		t.Error("expected fallback")
	}
}

func TestTokenPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CLI.Home = "/tmp/adminctl"
	if got := cfg.TokenPath(); got != filepath.Join("/tmp/adminctl", "token.json") {
		t.Errorf("TokenPath() = %s", got)
	}
}
