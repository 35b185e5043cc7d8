package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds settings for the web console, adminctl and dbtool.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Backend  BackendConfig  `yaml:"backend"`
	Sessions SessionsConfig `yaml:"sessions"`
	Audit    AuditConfig    `yaml:"audit"`
	Logging  LoggingConfig  `yaml:"logging"`
	CLI      CLIConfig      `yaml:"cli"`
}

type ServerConfig struct {
	Port         string `yaml:"port"`
	CookieSecure bool   `yaml:"cookie_secure"`
}

type BackendConfig struct {
	// BaseURL includes the /api prefix, e.g. https://api.naiyuan.example/api.
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type SessionsConfig struct {
	// Backend is memory, redis or postgres.
	Backend     string `yaml:"backend"`
	TTL         string `yaml:"ttl"`
	RedisAddr   string `yaml:"redis_addr"`
	DatabaseURL string `yaml:"database_url"`
}

type AuditConfig struct {
	// KafkaBroker empty means audit events are only logged.
	KafkaBroker string `yaml:"kafka_broker"`
	Topic       string `yaml:"topic"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type CLIConfig struct {
	Home string `yaml:"home"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Backend: BackendConfig{
			BaseURL: "http://localhost:3000/api",
			Timeout: "15s",
		},
		Sessions: SessionsConfig{
			Backend:   "memory",
			TTL:       "12h",
			RedisAddr: "localhost:6379",
		},
		Audit:   AuditConfig{Topic: "naiyuan.admin.actions"},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		CLI:     CLIConfig{Home: defaultCLIHome()},
	}
}

// Load reads defaults, then the YAML file at path (if any), then env overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %q: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv loads using the ADMIN_CONFIG path.
func FromEnv() (*Config, error) {
	return Load(os.Getenv("ADMIN_CONFIG"))
}

// Get returns the environment value for key or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) applyEnvOverrides() {
	c.Server.Port = Get("PORT", c.Server.Port)
	if v, err := strconv.ParseBool(os.Getenv("COOKIE_SECURE")); err == nil {
		c.Server.CookieSecure = v
	}

	c.Backend.BaseURL = Get("BACKEND_URL", c.Backend.BaseURL)
	c.Backend.Timeout = Get("BACKEND_TIMEOUT", c.Backend.Timeout)

	c.Sessions.Backend = Get("SESSION_BACKEND", c.Sessions.Backend)
	c.Sessions.TTL = Get("SESSION_TTL", c.Sessions.TTL)
	c.Sessions.RedisAddr = Get("REDIS_ADDR", c.Sessions.RedisAddr)
	c.Sessions.DatabaseURL = Get("DATABASE_URL", c.Sessions.DatabaseURL)

	c.Audit.KafkaBroker = Get("KAFKA_BROKER", c.Audit.KafkaBroker)
	c.Audit.Topic = Get("KAFKA_AUDIT_TOPIC", c.Audit.Topic)

	c.Logging.Level = Get("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = Get("LOG_FORMAT", c.Logging.Format)

	c.CLI.Home = Get("ADMINCTL_HOME", c.CLI.Home)
}

var validSessionBackends = []string{"memory", "redis", "postgres"}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return errors.New("config: backend base url is required (BACKEND_URL)")
	}

	valid := false
	for _, b := range validSessionBackends {
		if c.Sessions.Backend == b {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("config: invalid session backend %q (valid: %v)", c.Sessions.Backend, validSessionBackends)
	}
	if c.Sessions.Backend == "postgres" && strings.TrimSpace(c.Sessions.DatabaseURL) == "" {
		return errors.New("config: DATABASE_URL is required for postgres sessions")
	}
	return nil
}

func (c *Config) BackendTimeout() time.Duration {
	return parseDuration(c.Backend.Timeout, 15*time.Second)
}

func (c *Config) SessionTTL() time.Duration {
	return parseDuration(c.Sessions.TTL, 12*time.Hour)
}

// TokenPath is where adminctl keeps its bearer token.
func (c *Config) TokenPath() string {
	return filepath.Join(c.CLI.Home, "token.json")
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func defaultCLIHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".naiyuan-admin"
	}
	return filepath.Join(home, ".naiyuan-admin")
}
