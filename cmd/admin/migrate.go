package main

import (
	"github.com/spf13/cobra"

	"bookkeeper/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Creates every table and index that does not exist yet. Safe to run
repeatedly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := postgres.Migrate(e.ctx, e.db); err != nil {
			return err
		}
		e.log.Info().Msg("Database schema applied")
		return nil
	},
}
