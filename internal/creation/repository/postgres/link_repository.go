package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-shortlink/internal/creation/domain"
	"go-shortlink/internal/creation/usecase"

	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = pq.ErrorCode("23505")

// LinkRepository implements usecase.LinkRepository on PostgreSQL.
type LinkRepository struct {
	db *sql.DB
}

func NewLinkRepository(db *sql.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

var _ usecase.LinkRepository = (*LinkRepository)(nil)

func (r *LinkRepository) Save(ctx context.Context, shortCode, originalURL string) (*domain.Link, error) {
	link := domain.Link{ShortCode: shortCode, OriginalURL: originalURL}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO links (short_code, original_url) VALUES ($1, $2) RETURNING id, created_at`,
		shortCode, originalURL,
	).Scan(&link.ID, &link.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %s", domain.ErrShortCodeConflict, shortCode)
		}
		return nil, err
	}

	link.CreatedAt = link.CreatedAt.UTC()
	return &link, nil
}

func (r *LinkRepository) FindByShortCode(ctx context.Context, code string) (*domain.Link, error) {
	return r.findOne(ctx,
		`SELECT id, short_code, original_url, created_at FROM links WHERE short_code = $1`, code)
}

func (r *LinkRepository) FindByOriginalURL(ctx context.Context, originalURL string) (*domain.Link, error) {
	return r.findOne(ctx,
		`SELECT id, short_code, original_url, created_at FROM links WHERE original_url = $1 ORDER BY id LIMIT 1`, originalURL)
}

func (r *LinkRepository) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM links WHERE short_code = $1)`, code,
	).Scan(&exists)
	return exists, err
}

func (r *LinkRepository) ListCodes(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT short_code FROM links`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

func (r *LinkRepository) findOne(ctx context.Context, query, arg string) (*domain.Link, error) {
	var link domain.Link
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&link.ID, &link.ShortCode, &link.OriginalURL, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, err
	}
	link.CreatedAt = link.CreatedAt.UTC()
	return &link, nil
}
