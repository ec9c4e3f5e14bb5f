package http

import (
	"net/http"

	"go-shortlink/internal/shared/httpx"
	"go-shortlink/internal/shared/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RouterConfig carries the optional pieces of the redirect router.
type RouterConfig struct {
	Metrics http.Handler
	Ready   []httpx.Check
}

func NewRouter(handler *Handler, logger *zap.Logger, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Standard(logger)...)

	r.Get("/healthz", httpx.Healthz)
	r.Get("/readyz", httpx.Readyz(cfg.Ready...))
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Get("/r/{code}", handler.Redirect)
	r.Get("/{code}", handler.Redirect)

	return r
}
