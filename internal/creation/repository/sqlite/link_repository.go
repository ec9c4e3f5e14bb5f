package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-shortlink/internal/creation/domain"
	"go-shortlink/internal/creation/usecase"
)

// LinkRepository implements usecase.LinkRepository on SQLite.
// created_at is stored as unix milliseconds.
type LinkRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewLinkRepository creates a new SQLite-backed link repository
func NewLinkRepository(db *sql.DB) *LinkRepository {
	return &LinkRepository{db: db, now: time.Now}
}

var _ usecase.LinkRepository = (*LinkRepository)(nil)

const selectLink = `SELECT id, short_code, original_url, created_at FROM links`

func (r *LinkRepository) Save(ctx context.Context, shortCode, originalURL string) (*domain.Link, error) {
	createdAt := r.now().UTC().Truncate(time.Millisecond)

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO links (short_code, original_url, created_at) VALUES (?, ?, ?)`,
		shortCode, originalURL, createdAt.UnixMilli(),
	)
	if err != nil {
		// modernc reports constraint violations by message only
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, fmt.Errorf("%w: %s", domain.ErrShortCodeConflict, shortCode)
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &domain.Link{
		ID:          id,
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		CreatedAt:   createdAt,
	}, nil
}

func (r *LinkRepository) FindByShortCode(ctx context.Context, code string) (*domain.Link, error) {
	return r.findOne(ctx, selectLink+` WHERE short_code = ?`, code)
}

// FindByOriginalURL returns the oldest link for originalURL.
func (r *LinkRepository) FindByOriginalURL(ctx context.Context, originalURL string) (*domain.Link, error) {
	return r.findOne(ctx, selectLink+` WHERE original_url = ? ORDER BY id LIMIT 1`, originalURL)
}

func (r *LinkRepository) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM links WHERE short_code = ?)`, code,
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

func (r *LinkRepository) findOne(ctx context.Context, query string, arg string) (*domain.Link, error) {
	var (
		link      domain.Link
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&link.ID, &link.ShortCode, &link.OriginalURL, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, err
	}
	link.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &link, nil
}
