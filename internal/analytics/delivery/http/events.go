package http

import (
	"context"
	"encoding/json"
	"net/http"

	"go-shortlink/internal/shared/events"
	"go-shortlink/internal/shared/httpx"

	"go.uber.org/zap"
)

// EventConsumer processes raw event payloads.
type EventConsumer interface {
	ConsumeClick(ctx context.Context, data []byte) error
	ConsumeLink(ctx context.Context, data []byte) error
}

// Subscription is one entry of the Dapr programmatic subscription list.
type Subscription struct {
	PubSubName string `json:"pubsubname"`
	Topic      string `json:"topic"`
	Route      string `json:"route"`
}

// EventHandler receives Dapr pub/sub deliveries.
type EventHandler struct {
	consumer EventConsumer
	logger   *zap.Logger
}

func NewEventHandler(consumer EventConsumer, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		consumer: consumer,
		logger:   logger,
	}
}

// Subscribe handles GET /dapr/subscribe
func (h *EventHandler) Subscribe(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, []Subscription{
		{PubSubName: events.PubSubName, Topic: events.ClickTopic, Route: events.Route(events.ClickTopic)},
		{PubSubName: events.PubSubName, Topic: events.LinkCreatedTopic, Route: events.Route(events.LinkCreatedTopic)},
	})
}

// HandleClick handles POST /events/click
func (h *EventHandler) HandleClick(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "click", h.consumer.ConsumeClick)
}

// HandleLink handles POST /events/link
func (h *EventHandler) HandleLink(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "link", h.consumer.ConsumeLink)
}

// handle unwraps the CloudEvent envelope. Every delivery is acknowledged
// with 200 so Dapr never redelivers.
func (h *EventHandler) handle(w http.ResponseWriter, r *http.Request, kind string, consume func(context.Context, []byte) error) {
	var cloudEvent struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&cloudEvent); err != nil {
		h.logger.Error("failed to decode cloud event", zap.String("kind", kind), zap.Error(err))
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := consume(r.Context(), cloudEvent.Data); err != nil {
		h.logger.Error("failed to process event", zap.String("kind", kind), zap.Error(err))
	}
	w.WriteHeader(http.StatusOK)
}
