package main

import (
	"context"
	"errors"
	"log"
	"naiyuan-admin/internal/adapters/audit"
	"naiyuan-admin/internal/adapters/backend"
	"naiyuan-admin/internal/adapters/sessions"
	"naiyuan-admin/internal/adapters/tokens"
	"naiyuan-admin/internal/api"
	"naiyuan-admin/internal/api/handlers"
	"naiyuan-admin/internal/api/session"
	"naiyuan-admin/internal/config"
	"naiyuan-admin/internal/platform/db"
	"naiyuan-admin/internal/platform/logging"
	"naiyuan-admin/internal/platform/poll"
	"naiyuan-admin/internal/ports"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionJanitorInterval = 10 * time.Minute

// main is the application composition root.
// It wires concrete adapters (backend client, session store, audit sink)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open session store", zap.Error(err))
	}
	defer closeStore()

	publisher := openAuditPublisher(cfg, logger)
	defer publisher.Close()

	views, err := handlers.NewViews()
	if err != nil {
		logger.Fatal("parse templates", zap.Error(err))
	}

	// Fail fast on a bad base URL; per-request clients below cannot fail after this.
	if _, err := backend.New(cfg.Backend.BaseURL, tokens.NewMemoryStore("")); err != nil {
		logger.Fatal("backend client", zap.Error(err))
	}
	httpClient := &http.Client{Timeout: cfg.BackendTimeout()}
	apiFactory := func(ts ports.TokenStore) ports.AdminAPI {
		c, _ := backend.New(cfg.Backend.BaseURL, ts, backend.WithHTTPClient(httpClient))
		return c
	}

	router := api.NewRouter(api.Deps{
		API:   apiFactory,
		Views: views,
		Sessions: &session.Manager{
			Store:  store,
			TTL:    cfg.SessionTTL(),
			Secure: cfg.Server.CookieSecure,
			Logger: logger,
		},
		Audit:  audit.NewRecorder(publisher, logger),
		Logger: logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.BackendTimeout() * 3,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("server listening",
		zap.String("addr", srv.Addr),
		zap.String("backend", cfg.Backend.BaseURL),
		zap.String("sessions", cfg.Sessions.Backend),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", zap.Error(err))
	}
}

type expiringStore interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// openSessionStore builds the configured store. Stores that keep expired
// rows get a janitor; Redis expires keys itself.
func openSessionStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.SessionStore, func(), error) {
	var (
		store   ports.SessionStore
		closers []func()
	)

	switch cfg.Sessions.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Sessions.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, err
		}
		closers = append(closers, func() { _ = rdb.Close() })
		store = sessions.NewRedisStore(rdb)
	case "postgres":
		conn, err := db.Open(ctx, cfg.Sessions.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := sessions.InitSchema(conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		closers = append(closers, func() { _ = conn.Close() })
		store = sessions.NewPostgresStore(conn)
	default:
		store = sessions.NewMemoryStore()
	}

	if es, ok := store.(expiringStore); ok {
		stopJanitor := poll.Start(ctx, sessionJanitorInterval, func(ctx context.Context) {
			n, err := es.DeleteExpired(ctx)
			if err != nil {
				logger.Warn("purge expired sessions", zap.Error(err))
				return
			}
			if n > 0 {
				logger.Info("purged expired sessions", zap.Int64("count", n))
			}
		})
		closers = append([]func(){stopJanitor}, closers...)
	}

	return store, func() {
		for _, c := range closers {
			c()
		}
	}, nil
}

func openAuditPublisher(cfg *config.Config, logger *zap.Logger) ports.AuditPublisher {
	if cfg.Audit.KafkaBroker == "" {
		return audit.NewLogPublisher(logger)
	}
	logger.Info("audit events to kafka",
		zap.String("broker", cfg.Audit.KafkaBroker),
		zap.String("topic", cfg.Audit.Topic),
	)
	return audit.NewKafkaPublisher(cfg.Audit.KafkaBroker, cfg.Audit.Topic)
}
