package main

import (
	"errors"

	"github.com/spf13/cobra"

	"tripapp/internal/booking/store"
	"tripapp/internal/platform/config"
	"tripapp/internal/platform/logger"
	"tripapp/internal/platform/postgres"
)

func newMigrateCmd(load func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the booking tables in the configured Postgres database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if cfg.Database.URL == "" {
				return errors.New("migrate requires database.url")
			}
			log := logger.New(cfg.Log.Level, cfg.Log.Format)

			db, err := postgres.Open(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgres.Migrate(cmd.Context(), db, store.Schema); err != nil {
				return err
			}
			log.InfoContext(cmd.Context(), "schema applied")
			return nil
		},
	}
}
