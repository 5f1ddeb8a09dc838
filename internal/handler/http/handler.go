package http

import (
	"github.com/gillani-market/shoprent/internal/config"
	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/internal/service"
	"github.com/gillani-market/shoprent/internal/store"
)

// Handler owns the HTTP transport layer: routes, middleware, and request
// handlers. All domain behavior lives behind the injected services; the
// database handle is held only for the health endpoint's readiness probe.
type Handler struct {
	services *service.Services
	db       *store.DB

	uploadsDir  string
	corsOrigins []string

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler with its dependencies.
func NewHandler(services *service.Services, db *store.DB, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		db:          db,
		uploadsDir:  cfg.Storage.Files.UploadsDir,
		corsOrigins: cfg.Server.CORSOrigins,
		logger:      logger,
	}
}
