package usecase

import (
	"context"

	"go-shortlink/internal/shared/events"
)

// LinkStore is an optional read-only view of the Record Store. It returns
// domain.ErrLinkNotFound on a miss.
type LinkStore interface {
	FindOriginalURL(ctx context.Context, code string) (string, error)
}

// ClickPublisher hands a click to the Analytics Service.
type ClickPublisher interface {
	Publish(ctx context.Context, event events.ClickEvent) error
}
