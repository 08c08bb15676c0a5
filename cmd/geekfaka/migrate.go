package main

import (
	"log/slog"

	repository "github.com/geekfaka/storefront/internal/repositories"
	"github.com/spf13/cobra"
)

// geekfaka migrate: apply the schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		repos, err := repository.New(cfg)
		if err != nil {
			return err
		}
		defer repos.Close()

		if err := repository.Migrate(cmd.Context(), repos.DB); err != nil {
			return err
		}

		slog.Info("✅ Schema applied", slog.String("database", cfg.Database.Name))
		return nil
	},
}
