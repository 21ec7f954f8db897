package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"crossover-service/internal/config"
	xoHnd "crossover-service/internal/crossover/handler"
	"crossover-service/internal/crossover/service"
	"crossover-service/internal/middleware"
	"crossover-service/internal/nomenclature"
	"crossover-service/server/http/handlers"
)

func NewRouter(cfg config.Config, reg *nomenclature.Registry, weights service.Weights, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health)

	// codec endpoints (the builder UI hits /encode on every field change)
	r.Post("/decode", xoHnd.Decode(reg, logger))
	r.Post("/encode", xoHnd.Encode(reg, logger))

	// replacement search over an uploaded catalog
	r.Post("/crossover", xoHnd.Crossover(cfg, reg, weights, logger))

	return r
}
