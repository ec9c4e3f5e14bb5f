package usecase

import (
	"context"
	"time"

	"go-shortlink/internal/analytics/domain"
)

// Dimension names an enrichment column clicks can be grouped by.
type Dimension string

const (
	DimensionCountry Dimension = "country_code"
	DimensionDevice  Dimension = "device_type"
	DimensionSource  Dimension = "traffic_source"
)

// ClickRepository is the append-only click log.
type ClickRepository interface {
	// InsertClick stores click and returns its assigned id.
	InsertClick(ctx context.Context, click *domain.Click) (int64, error)
	// Totals returns the click count and the latest click time (nil with no clicks).
	Totals(ctx context.Context, shortCode string) (int64, *time.Time, error)
	// History pages clicks newest first, ties broken by id descending.
	History(ctx context.Context, shortCode string, limit, offset int) ([]domain.Click, error)
	// CountBy groups clicks for shortCode by dim, largest group first.
	CountBy(ctx context.Context, shortCode string, dim Dimension) ([]domain.GroupCount, error)
}

// LinkRepository is the local replica of links learned from the Creation Service.
type LinkRepository interface {
	// UpsertLink inserts or refreshes a replica row.
	UpsertLink(ctx context.Context, link domain.Link) error
	// FindLink returns domain.ErrLinkNotFound when the replica lacks code.
	FindLink(ctx context.Context, code string) (*domain.Link, error)
	// TopLinks ranks replica links by click count, then newest first.
	TopLinks(ctx context.Context, limit int) ([]domain.LinkWithClicks, error)
}

// GeoIPResolver maps an IP address to a country code.
type GeoIPResolver interface {
	ResolveCountry(ip string) string
}

// DeviceDetector maps a User-Agent to a device class.
type DeviceDetector interface {
	DetectDevice(userAgent string) string
}

// RefererClassifier maps a referer to a traffic source.
type RefererClassifier interface {
	ClassifySource(referer string) string
}
