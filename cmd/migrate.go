package main

import (
	"context"
	"io/fs"
	root "recon"
	"recon/internal/config"
	"recon/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies the
// embedded schema migrations and the River queue migrations.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			migrations, err := fs.Sub(root.Migrations, "migrations")
			if err != nil {
				logger.Fatal(ctx, "could not open embedded migrations", zap.Error(err))
			}

			if err := strg.Migrate(ctx, migrations); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			logger.Info(ctx, "database is up to date")
		},
	}

	return cmd
}
