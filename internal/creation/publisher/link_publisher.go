// Package publisher announces newly minted links to the other services.
package publisher

import (
	"context"

	"go-shortlink/internal/creation/domain"
	"go-shortlink/internal/creation/usecase"
	"go-shortlink/internal/shared/events"
	"go-shortlink/internal/shared/pubsub"
)

// LinkPublisher sends a LinkCreatedEvent for every new link.
type LinkPublisher struct {
	publisher pubsub.Publisher
}

var _ usecase.LinkPublisher = (*LinkPublisher)(nil)

func NewLinkPublisher(p pubsub.Publisher) *LinkPublisher {
	return &LinkPublisher{publisher: p}
}

func (p *LinkPublisher) PublishLinkCreated(ctx context.Context, link domain.Link) error {
	return p.publisher.Publish(ctx, events.LinkCreatedTopic, events.LinkCreatedEvent{
		ShortCode:   link.ShortCode,
		OriginalURL: link.OriginalURL,
		CreatedAt:   link.CreatedAt.UTC(),
	})
}
