package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"bookkeeper/internal/domain/uow"
	"bookkeeper/internal/infrastructure/memory"
	"bookkeeper/internal/infrastructure/postgres"
	httphandlers "bookkeeper/internal/interfaces/http"
	"bookkeeper/internal/service"
	"bookkeeper/internal/shared/config"
	"bookkeeper/internal/shared/telemetry"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB // nil with the memory driver

	Handlers httphandlers.Handlers
}

// NewDependencies opens the configured storage and wires services and handlers on top of it.
func NewDependencies(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{}

	var store uow.UnitOfWork
	switch cfg.Database.Driver {
	case config.DriverMemory:
		log.Warn().Msg("Using in-memory storage; data is lost on restart")
		store = memory.NewStore()

	case config.DriverPostgres:
		db, err := postgres.New(cfg.Database.ConnectionString())
		if err != nil {
			return nil, err
		}
		deps.DB = db
		log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Connected to database")

		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, db); err != nil {
				db.Close()
				return nil, err
			}
			log.Info().Msg("Database schema applied")
		}

		if cfg.Telemetry.Enabled {
			if err := telemetry.RegisterDBStats(db.DB); err != nil {
				log.Warn().Err(err).Msg("Failed to register database pool metrics")
			}
		}

		store = postgres.NewUnitOfWork(db)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	deps.Handlers = httphandlers.Handlers{
		Business:    httphandlers.NewBusinessHandler(service.NewBusinessService(store)),
		Account:     httphandlers.NewAccountHandler(service.NewAccountService(store)),
		Category:    httphandlers.NewCategoryHandler(service.NewCategoryService(store)),
		Vendor:      httphandlers.NewVendorHandler(service.NewVendorService(store)),
		Transaction: httphandlers.NewTransactionHandler(service.NewTransactionService(store)),
	}

	return deps, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
