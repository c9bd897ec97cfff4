package main

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	httphandlers "bookkeeper/internal/interfaces/http"
	"bookkeeper/internal/shared/config"
	"bookkeeper/internal/shared/middleware"
)

// SetupRoutes builds the API router and wraps it in the global middleware.
// The outermost middleware runs first.
func SetupRoutes(deps *Dependencies, cfg *config.Config, log zerolog.Logger) http.Handler {
	var handler http.Handler = httphandlers.NewRouter(deps.Handlers, cfg.Server.APIPrefix)

	handler = middleware.Recovery(handler)
	handler = middleware.CORS(cfg.Server.AllowedHosts)(handler)
	if cfg.Telemetry.Enabled {
		handler = middleware.Tracing(handler)
	}
	handler = middleware.Logging(log)(handler)
	handler = middleware.RequestID(handler)
	handler = chimw.RealIP(handler)
	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(cfg.Telemetry.ServiceName)(handler)
	}

	if cfg.TLS.Enabled {
		handler = middleware.HSTS(handler)
		log.Info().Msg("TLS security middleware enabled (HSTS)")
	}

	return handler
}
