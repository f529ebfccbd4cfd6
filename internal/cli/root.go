// Package cli holds the inventory command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/rogerio-castellano/inventory-api/internal/config"
	"github.com/rogerio-castellano/inventory-api/internal/db"
	"github.com/rogerio-castellano/inventory-api/internal/logging"
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "inventory",
		Short:         "Inventory backend API",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running the binary without a subcommand starts the server.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), "")
		},
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newSeedCommand())
	root.AddCommand(newCreateAdminCommand())
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration, installs the logger and opens the
// database, the steps every command shares.
func bootstrap(ctx context.Context) (*config.Config, *slog.Logger, *sqlx.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger := logging.New(cfg.Env, os.Stdout)

	database, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Info("connected to database", "driver", cfg.DBDriver)
	return cfg, logger, database, nil
}
