package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"recon/pkg/logger"
	"recon/pkg/storage"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"go.uber.org/zap"
)

// Migrate applies the goose migrations found at the root of fsys and then
// brings the River queue tables to their latest version.
func (p *PgSQL) Migrate(ctx context.Context, fsys fs.FS) error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("could not create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("could not migrate pgsql: %w", err)
	}
	for _, r := range results {
		logger.Info(ctx, "applied migration", zap.String("source", r.Source.Path), zap.Duration("duration", r.Duration))
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}
	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	currentVersion := 0
	currentMigrations, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(currentMigrations) > 0 {
		currentVersion = currentMigrations[len(currentMigrations)-1].Version
	}
	if latestVersion > currentVersion {
		if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
			TargetVersion: latestVersion,
		}); err != nil {
			return fmt.Errorf("could not migrate river queue: %w", err)
		}
	}

	return nil
}
