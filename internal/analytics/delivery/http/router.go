package http

import (
	"net/http"

	"go-shortlink/internal/shared/events"
	"go-shortlink/internal/shared/httpx"
	"go-shortlink/internal/shared/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RouterConfig carries the optional pieces of the Analytics Service router.
type RouterConfig struct {
	Events  *EventHandler
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

	r.Route("/api", func(r chi.Router) {
		r.Post("/track", handler.Track)
		r.Get("/stats/{code}", handler.GetStats)
		r.Get("/stats/{code}/summary", handler.GetSummary)
		r.Get("/history/{code}", handler.GetHistory)
		r.Get("/top", handler.GetTop)
	})

	if cfg.Events != nil {
		r.Get("/dapr/subscribe", cfg.Events.Subscribe)
		r.Post(events.Route(events.ClickTopic), cfg.Events.HandleClick)
		r.Post(events.Route(events.LinkCreatedTopic), cfg.Events.HandleLink)
	}

	return r
}
