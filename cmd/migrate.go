package main

import (
	"context"
	"database/sql"
	"fmt"
	root "pricewatch"
	"pricewatch/internal/config"
	"pricewatch/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that brings both the
// application tables and the River job tables to their latest version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "unexpected postgres handle", zap.String("type", fmt.Sprintf("%T", strg.DB)))
			}

			if err := migrateSchema(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			if err := migrateRiver(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
		},
	}

	return cmd
}

func migrateSchema(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	return nil
}

func migrateRiver(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}

	// a nil target migrates all the way up; already applied versions are skipped
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not apply river migrations: %w", err)
	}

	for _, v := range res.Versions {
		logger.Info(ctx, "applied river migration", zap.Int("version", v.Version), zap.Duration("took", v.Duration))
	}

	return nil
}
