package usecase

import (
	"context"

	"go-shortlink/internal/shared/dispatch"
	"go-shortlink/internal/shared/events"

	"go.uber.org/zap"
)

// ClickTracker records clicks off the request path. Publishing happens on the
// dispatcher's workers; failures there are only logged.
type ClickTracker struct {
	dispatcher *dispatch.Dispatcher
	publisher  ClickPublisher
	logger     *zap.Logger
}

func NewClickTracker(dispatcher *dispatch.Dispatcher, publisher ClickPublisher, logger *zap.Logger) *ClickTracker {
	return &ClickTracker{
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
	}
}

// TrackClick queues event and returns immediately. It reports whether the
// event was accepted; a full queue drops it.
func (t *ClickTracker) TrackClick(event events.ClickEvent) bool {
	if t == nil || t.publisher == nil || t.dispatcher == nil {
		return false
	}

	accepted := t.dispatcher.Dispatch("click", func(ctx context.Context) error {
		return t.publisher.Publish(ctx, event)
	})
	if !accepted {
		t.logger.Debug("click dropped", zap.String("short_code", event.ShortCode))
	}
	return accepted
}
