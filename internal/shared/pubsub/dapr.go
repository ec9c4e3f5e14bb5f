package pubsub

import (
	"context"
	"fmt"

	"go-shortlink/internal/shared/events"

	dapr "github.com/dapr/go-sdk/client"
)

// DaprClient is the slice of dapr.Client used for publishing.
type DaprClient interface {
	PublishEvent(ctx context.Context, pubsubName, topicName string, data interface{}, opts ...dapr.PublishEventOption) error
}

// DaprPublisher publishes through the sidecar's pub/sub component.
type DaprPublisher struct {
	client     DaprClient
	pubsubName string
}

var _ Publisher = (*DaprPublisher)(nil)

func NewDaprPublisher(client DaprClient) *DaprPublisher {
	return &DaprPublisher{
		client:     client,
		pubsubName: events.PubSubName,
	}
}

func (p *DaprPublisher) Publish(ctx context.Context, topic string, event any) error {
	if err := p.client.PublishEvent(ctx, p.pubsubName, topic, event); err != nil {
		return fmt.Errorf("dapr publish %s: %w", topic, err)
	}
	return nil
}
