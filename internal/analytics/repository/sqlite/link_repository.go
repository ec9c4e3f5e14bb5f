package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-shortlink/internal/analytics/domain"
	"go-shortlink/internal/analytics/usecase"
)

// LinkRepository implements usecase.LinkRepository on SQLite.
type LinkRepository struct {
	db *sql.DB
}

var _ usecase.LinkRepository = (*LinkRepository)(nil)

func NewLinkRepository(db *sql.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// UpsertLink keeps the first original_url seen; mappings are immutable.
func (r *LinkRepository) UpsertLink(ctx context.Context, link domain.Link) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO links (short_code, original_url, created_at) VALUES (?, ?, ?)
		ON CONFLICT (short_code) DO NOTHING`,
		link.ShortCode, link.OriginalURL, link.CreatedAt.UnixMilli(),
	)
	return err
}

func (r *LinkRepository) FindLink(ctx context.Context, code string) (*domain.Link, error) {
	var (
		link      domain.Link
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT short_code, original_url, created_at FROM links WHERE short_code = ?`, code,
	).Scan(&link.ShortCode, &link.OriginalURL, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	link.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &link, nil
}

func (r *LinkRepository) TopLinks(ctx context.Context, limit int) ([]domain.LinkWithClicks, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.short_code, l.original_url, l.created_at, COUNT(c.id) AS click_count
		FROM links l
		LEFT JOIN clicks c ON c.short_code = l.short_code
		GROUP BY l.short_code, l.original_url, l.created_at
		ORDER BY click_count DESC, l.created_at DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	top := []domain.LinkWithClicks{}
	for rows.Next() {
		var (
			l         domain.LinkWithClicks
			createdAt int64
		)
		if err := rows.Scan(&l.ShortCode, &l.OriginalURL, &createdAt, &l.ClickCount); err != nil {
			return nil, err
		}
		l.CreatedAt = time.UnixMilli(createdAt).UTC()
		top = append(top, l)
	}
	return top, rows.Err()
}
