package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"bookkeeper/internal/infrastructure/postgres"
	"bookkeeper/internal/shared/config"
	"bookkeeper/internal/shared/logger"
)

var (
	debug   bool
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Management commands for the bookkeeper API",
	Long: `admin runs maintenance tasks against the bookkeeper database.

Examples:
  admin migrate
  admin seed-categories --business-id=1,2
  admin seed-categories --all --workers=8 --timeout=10m`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Minute, "timeout for the operation")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCategoriesCmd)
}

// env is what every subcommand needs: config, logger and a postgres
// connection bounded by --timeout.
type env struct {
	cfg    *config.Config
	log    zerolog.Logger
	db     *postgres.DB
	ctx    context.Context
	cancel context.CancelFunc
}

func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Log.Level
	if debug {
		level = "debug"
	}
	log := logger.New(logger.Options{Level: level, Format: cfg.Log.Format})

	if cfg.Database.Driver != config.DriverPostgres {
		return nil, fmt.Errorf("admin commands need DB_DRIVER=%s, got %q", config.DriverPostgres, cfg.Database.Driver)
	}

	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Connected to database")

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	ctx = logger.WithContext(ctx, log)

	return &env{cfg: cfg, log: log, db: db, ctx: ctx, cancel: cancel}, nil
}

func (e *env) Close() {
	e.cancel()
	e.db.Close()
}
