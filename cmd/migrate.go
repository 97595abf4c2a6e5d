package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shivanand-hulikatti/medcamp/internal/config"
	"github.com/Shivanand-hulikatti/medcamp/internal/database"
	"github.com/Shivanand-hulikatti/medcamp/internal/repository/mongostore"
)

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Prepare the configured storage",
		Long: `Prepare the configured storage backend.

postgres: applies pending SQL files from storage.migrations_dir in order.
mongo:    creates the collection indexes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runMigrate(ctx, *configPath)
		},
	}
}

func runMigrate(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := newLogger(cfg.Log)

	var applied []string
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg.Postgres, log)
		if err != nil {
			return err
		}
		defer pool.Close()
		applied, err = database.ApplyMigrations(ctx, pool, cfg.Storage.MigrationsDir, log)
		if err != nil {
			return err
		}

	case config.DriverMongo:
		client, db, err := database.NewMongo(ctx, cfg.Mongo)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		applied, err = mongostore.EnsureIndexes(ctx, db)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	log.Info().Strs("applied", applied).Int("count", len(applied)).Msg("migrations complete")
	return nil
}
