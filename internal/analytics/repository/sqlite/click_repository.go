package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-shortlink/internal/analytics/domain"
	"go-shortlink/internal/analytics/usecase"
)

// ClickRepository implements usecase.ClickRepository on SQLite. Times are
// stored as unix milliseconds.
type ClickRepository struct {
	db *sql.DB
}

var _ usecase.ClickRepository = (*ClickRepository)(nil)

func NewClickRepository(db *sql.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

func (r *ClickRepository) InsertClick(ctx context.Context, c *domain.Click) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO clicks (short_code, clicked_at, user_agent, ip_address, referer, country_code, device_type, traffic_source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ShortCode, c.ClickedAt.UnixMilli(), c.UserAgent, c.IPAddress, c.Referer,
		c.CountryCode, c.DeviceType, c.TrafficSource,
	)
	if err != nil {
		return 0, fmt.Errorf("insert click: %w", err)
	}
	return res.LastInsertId()
}

func (r *ClickRepository) Totals(ctx context.Context, shortCode string) (int64, *time.Time, error) {
	var (
		count int64
		last  sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), MAX(clicked_at) FROM clicks WHERE short_code = ?`, shortCode,
	).Scan(&count, &last)
	if err != nil {
		return 0, nil, err
	}
	if !last.Valid {
		return count, nil, nil
	}
	t := time.UnixMilli(last.Int64).UTC()
	return count, &t, nil
}

func (r *ClickRepository) History(ctx context.Context, shortCode string, limit, offset int) ([]domain.Click, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, short_code, clicked_at, user_agent, ip_address, referer, country_code, device_type, traffic_source
		FROM clicks
		WHERE short_code = ?
		ORDER BY clicked_at DESC, id DESC
		LIMIT ? OFFSET ?`,
		shortCode, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clicks := []domain.Click{}
	for rows.Next() {
		var (
			c         domain.Click
			clickedAt int64
		)
		if err := rows.Scan(&c.ID, &c.ShortCode, &clickedAt, &c.UserAgent, &c.IPAddress, &c.Referer,
			&c.CountryCode, &c.DeviceType, &c.TrafficSource); err != nil {
			return nil, err
		}
		c.ClickedAt = time.UnixMilli(clickedAt).UTC()
		clicks = append(clicks, c)
	}
	return clicks, rows.Err()
}

func (r *ClickRepository) CountBy(ctx context.Context, shortCode string, dim usecase.Dimension) ([]domain.GroupCount, error) {
	switch dim {
	case usecase.DimensionCountry, usecase.DimensionDevice, usecase.DimensionSource:
	default:
		return nil, fmt.Errorf("unknown dimension %q", dim)
	}

	// dim is one of the constants above, never user input
	query := fmt.Sprintf(`
		SELECT %[1]s, COUNT(*) AS n
		FROM clicks
		WHERE short_code = ?
		GROUP BY %[1]s
		ORDER BY n DESC, %[1]s ASC`, dim)

	rows, err := r.db.QueryContext(ctx, query, shortCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []domain.GroupCount{}
	for rows.Next() {
		var g domain.GroupCount
		if err := rows.Scan(&g.Value, &g.Count); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
