package commands

import (
	"errors"
	"fmt"
	"naiyuan-admin/internal/adapters/backend"
	"naiyuan-admin/internal/adapters/tokens"
	"naiyuan-admin/internal/config"
	"naiyuan-admin/internal/platform/logging"
	"naiyuan-admin/internal/ports"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	home       string
	backendURL string
	verbose    bool

	cfg *config.Config
	api ports.AdminAPI
)

// Execute runs adminctl with os.Args.
func Execute() error {
	return execute(newRootCmd())
}

func newRootCmd() *cobra.Command {
	configPath, home, backendURL, verbose = "", "", "", false

	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Naiyuan freight admin console for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv("ADMIN_CONFIG")
			}
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if home != "" {
				c.CLI.Home = home
			}
			if backendURL != "" {
				c.Backend.BaseURL = backendURL
			}

			level := "warn"
			if verbose {
				level = "debug"
			}
			if _, err := logging.New(level, "console"); err != nil {
				return err
			}

			client, err := backend.New(c.Backend.BaseURL, tokens.NewFileStore(c.TokenPath()), backend.WithTimeout(c.BackendTimeout()))
			if err != nil {
				return err
			}
			cfg, api = c, client
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $ADMIN_CONFIG)")
	root.PersistentFlags().StringVar(&home, "home", "", "token directory (default ~/.naiyuan-admin)")
	root.PersistentFlags().StringVar(&backendURL, "backend", "", "backend base URL including /api")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log backend call timings")

	root.AddCommand(
		loginCmd(), logoutCmd(), dashboardCmd(),
		packagesCmd(), shipmentsCmd(), masterShipmentsCmd(), billsCmd(),
		pickupsCmd(), requestsCmd(), usersCmd(),
		ratesCmd(), exchangeRatesCmd(), trackingCmd(), rewardsCmd(),
		browseCmd(),
	)

	return root
}

// execute runs root and reports any failure on stderr in the CLI's words.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), errorStyle.Render("Error: "+describe(err)))
		zap.L().Debug("command failed", zap.Error(err))
	}
	return err
}

func describe(err error) string {
	var se *backend.StatusError
	switch {
	case errors.Is(err, ports.ErrUnauthorized):
		return "session expired, run adminctl login"
	case errors.Is(err, ports.ErrAdminRequired):
		return ports.ErrAdminRequired.Error()
	case errors.As(err, &se):
		return se.Message
	}
	return err.Error()
}
