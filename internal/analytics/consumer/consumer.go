// Package consumer feeds broker deliveries into the analytics service.
// Malformed or rejected messages are logged and acknowledged, never retried.
package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-shortlink/internal/analytics/domain"
	"go-shortlink/internal/analytics/usecase"
	"go-shortlink/internal/shared/events"
	"go-shortlink/internal/shared/pubsub"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// QueueGroup spreads deliveries across analytics replicas.
const QueueGroup = "analytics-service"

const handleTimeout = 5 * time.Second

type EventConsumer struct {
	service *usecase.AnalyticsService
	logger  *zap.Logger
}

func NewEventConsumer(service *usecase.AnalyticsService, logger *zap.Logger) *EventConsumer {
	return &EventConsumer{
		service: service,
		logger:  logger,
	}
}

// ConsumeClick records a ClickEvent payload. Only storage failures are
// returned.
func (c *EventConsumer) ConsumeClick(ctx context.Context, data []byte) error {
	var event events.ClickEvent
	if err := json.Unmarshal(data, &event); err != nil {
		c.logger.Error("failed to unmarshal click event", zap.Error(err))
		return nil
	}

	click, err := c.service.RecordClickEvent(ctx, event)
	if err != nil {
		if isRejected(err) {
			c.logger.Warn("click event rejected",
				zap.String("event_id", event.EventID),
				zap.String("short_code", event.ShortCode),
				zap.Error(err),
			)
			return nil
		}
		return err
	}

	c.logger.Debug("click event recorded",
		zap.String("event_id", event.EventID),
		zap.String("short_code", click.ShortCode),
		zap.String("country", click.CountryCode),
		zap.String("device", click.DeviceType),
		zap.String("source", click.TrafficSource),
	)
	return nil
}

// ConsumeLink stores a LinkCreatedEvent payload in the replica.
func (c *EventConsumer) ConsumeLink(ctx context.Context, data []byte) error {
	var event events.LinkCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		c.logger.Error("failed to unmarshal link created event", zap.Error(err))
		return nil
	}

	if err := c.service.RecordLink(ctx, event); err != nil {
		if errors.Is(err, domain.ErrInvalidCode) {
			c.logger.Warn("link created event rejected",
				zap.String("short_code", event.ShortCode),
				zap.Error(err),
			)
			return nil
		}
		return err
	}

	c.logger.Debug("link replica updated", zap.String("short_code", event.ShortCode))
	return nil
}

// SubscribeNATS attaches both consumers to their subjects in QueueGroup.
func (c *EventConsumer) SubscribeNATS(conn *nats.Conn) ([]*nats.Subscription, error) {
	clicks, err := pubsub.Subscribe(conn, events.ClickTopic, QueueGroup, handleTimeout, c.logger, c.ConsumeClick)
	if err != nil {
		return nil, err
	}

	links, err := pubsub.Subscribe(conn, events.LinkCreatedTopic, QueueGroup, handleTimeout, c.logger, c.ConsumeLink)
	if err != nil {
		_ = clicks.Unsubscribe()
		return nil, err
	}

	return []*nats.Subscription{clicks, links}, nil
}

func isRejected(err error) bool {
	return errors.Is(err, domain.ErrInvalidCode) || errors.Is(err, domain.ErrInvalidClick)
}
