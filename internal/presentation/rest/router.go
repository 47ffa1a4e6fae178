package rest

import (
	"log/slog"
	"net/http"

	"github.com/ktp-forked-repos/ibantools/pkg/auth"
)

// RouterConfig holds everything the HTTP router serves.
type RouterConfig struct {
	API    *Handler
	Health *HealthHandler
	// Metrics serves /metrics when non-nil.
	Metrics http.Handler
	// Verifier enables bearer-token checks on /v1 routes when non-nil.
	Verifier *auth.Verifier
	Logger   *slog.Logger
}

// publicPaths are served without authentication.
var publicPaths = []string{"/healthz", "/readyz", "/metrics"}

// NewRouter builds the HTTP handler tree.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	cfg.Health.RegisterRoutes(mux)
	cfg.API.RegisterRoutes(mux)
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics)
	}

	middlewares := []func(http.Handler) http.Handler{
		RecoveryMiddleware(cfg.Logger),
		LoggingMiddleware(cfg.Logger),
	}
	if cfg.Verifier != nil {
		middlewares = append(middlewares, auth.HTTPMiddleware(cfg.Verifier, publicPaths))
	}
	return Chain(mux, middlewares...)
}
