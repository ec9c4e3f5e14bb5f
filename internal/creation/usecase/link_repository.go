package usecase

import (
	"context"

	"go-shortlink/internal/creation/domain"
)

// LinkRepository is the Record Store. Save must return an error matching
// domain.ErrShortCodeConflict when the code is already taken.
type LinkRepository interface {
	Save(ctx context.Context, shortCode, originalURL string) (*domain.Link, error)
	FindByShortCode(ctx context.Context, code string) (*domain.Link, error)
	FindByOriginalURL(ctx context.Context, originalURL string) (*domain.Link, error)
	Exists(ctx context.Context, code string) (bool, error)
	ListCodes(ctx context.Context) ([]string, error)
}

// LinkPublisher announces new links to other services.
type LinkPublisher interface {
	PublishLinkCreated(ctx context.Context, link domain.Link) error
}
