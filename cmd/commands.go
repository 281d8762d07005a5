package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/career-toolkit/internal/config"
	"github.com/sbilibin2017/career-toolkit/internal/logger"
	"github.com/sbilibin2017/career-toolkit/internal/server"
	"github.com/sbilibin2017/career-toolkit/internal/services"
)

// errMigrateMemory is returned when migrations are requested for the in-memory store.
var errMigrateMemory = errors.New("migrate requires STORAGE_DRIVER=postgres")

// NewRootCmd creates the root command of the service CLI.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		cfg        config.Config
	)

	cmd := &cobra.Command{
		Use:           "career-toolkit",
		Short:         "AI Career Toolkit backend",
		Long:          `Account registration, login and career profile API.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to parse config: %w", err)
			}
			if err := logger.Initialize(cfg.App.LogLevel); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")

	cmd.AddCommand(
		newServeCmd(&cfg),
		newMigrateCmd(&cfg),
		newBackfillCmd(&cfg),
	)

	return cmd
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  `Apply pending migrations and serve the HTTP API until interrupted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
			defer stop()

			app, err := newApp(ctx, *cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			return server.Run(ctx, cfg.App.Addr(), app.handler)
		},
	}
}

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Run all pending database migrations against the PostgreSQL database.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.App.StorageDriver != config.StoragePostgres {
				return errMigrateMemory
			}

			db, err := openPostgres(cmd.Context(), cfg.Postgres)
			if err != nil {
				return err
			}
			defer db.Close()

			cmd.Println("Migrations completed successfully")
			return nil
		},
	}
}

func newBackfillCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "backfill-usernames",
		Short: "Assign usernames to legacy accounts",
		Long: `Give every account created before usernames existed a username derived
from its email address. All changes are applied in one transaction.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := openDirectory(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer dir.Close()

			n, err := services.NewUsernameBackfiller(dir.accounts, dir.writer, dir.tx).Run(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Printf("Updated %d accounts\n", n)
			return nil
		},
	}
}
