package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"naiyuan-admin/internal/adapters/sessions"
	"naiyuan-admin/internal/config"
	"naiyuan-admin/internal/platform/db"
	"naiyuan-admin/internal/platform/logging"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	root := &cobra.Command{
		Use:          "dbtool",
		Short:        "Maintain the Postgres session store",
		SilenceUsage: true,
	}
	root.AddCommand(initCmd(), purgeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the admin_sessions table and its index",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(conn *sql.DB, logger *zap.Logger) error {
				logger.Info("initializing session schema")
				if err := sessions.InitSchema(conn); err != nil {
					return err
				}
				logger.Info("schema ready")
				return nil
			})
		},
	}
}

func purgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-expired",
		Short: "Delete sessions past their expiry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(conn *sql.DB, logger *zap.Logger) error {
				n, err := sessions.NewPostgresStore(conn).DeleteExpired(cmd.Context())
				if err != nil {
					return err
				}
				logger.Info("purged expired sessions", zap.Int64("count", n))
				return nil
			})
		},
	}
}

func withDB(ctx context.Context, fn func(conn *sql.DB, logger *zap.Logger) error) error {
	cfg := config.DefaultConfig()
	logger, err := logging.New(config.Get("LOG_LEVEL", cfg.Logging.Level), "console")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		return errors.New("DATABASE_URL is required")
	}

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := fn(conn, logger); err != nil {
		logger.Error("dbtool failed", zap.Error(err))
		return err
	}
	return nil
}
