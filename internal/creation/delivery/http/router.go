package http

import (
	"net/http"

	"go-shortlink/internal/shared/httpx"
	"go-shortlink/internal/shared/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RouterConfig carries the optional pieces of the Creation Service router.
type RouterConfig struct {
	RateLimiter *middleware.RateLimiter
	Metrics     http.Handler
	Ready       []httpx.Check
}

func NewRouter(handler *Handler, logger *zap.Logger, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Standard(logger)...)

	// Health checks, metrics and the peer lookup are exempt from rate limiting.
	r.Get("/healthz", httpx.Healthz)
	r.Get("/readyz", httpx.Readyz(cfg.Ready...))
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}
	r.Get("/api/url/{code}", handler.GetLink)

	r.Group(func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Middleware)
		}
		r.Post("/api/shorten", handler.Shorten)
	})

	return r
}
