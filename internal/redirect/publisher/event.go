package publisher

import (
	"context"

	"go-shortlink/internal/redirect/usecase"
	"go-shortlink/internal/shared/events"
	"go-shortlink/internal/shared/pubsub"
)

// EventPublisher sends clicks to the clicks topic of a broker.
type EventPublisher struct {
	publisher pubsub.Publisher
}

var _ usecase.ClickPublisher = (*EventPublisher)(nil)

func NewEventPublisher(p pubsub.Publisher) *EventPublisher {
	return &EventPublisher{publisher: p}
}

func (p *EventPublisher) Publish(ctx context.Context, event events.ClickEvent) error {
	return p.publisher.Publish(ctx, events.ClickTopic, event)
}
