// Package sqlite reads the Creation Service's SQLite file in place. It is
// only used when the redirect service is deployed next to that file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"go-shortlink/internal/redirect/domain"
	"go-shortlink/internal/redirect/usecase"
)

// LinkStore is a read-only usecase.LinkStore.
type LinkStore struct {
	db *sql.DB
}

var _ usecase.LinkStore = (*LinkStore)(nil)

func NewLinkStore(db *sql.DB) *LinkStore {
	return &LinkStore{db: db}
}

func (s *LinkStore) FindOriginalURL(ctx context.Context, code string) (string, error) {
	var url string
	err := s.db.QueryRowContext(ctx,
		`SELECT original_url FROM links WHERE short_code = ?`, code,
	).Scan(&url)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrLinkNotFound
	}
	if err != nil {
		return "", err
	}
	return url, nil
}
