package usecase

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
	"unicode/utf8"

	"go-shortlink/internal/analytics/domain"
	"go-shortlink/internal/shared/events"
	"go-shortlink/internal/shared/lookup"
	"go-shortlink/internal/shared/metrics"
	"go-shortlink/pkg/shortcode"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 1000
	DefaultTopLimit     = 10
	MaxTopLimit         = 100
)

// AnalyticsService records clicks and answers queries over them.
type AnalyticsService struct {
	clicks  ClickRepository
	links   LinkRepository
	geoIP   GeoIPResolver
	device  DeviceDetector
	referer RefererClassifier
	peer    *lookup.Bounded
	logger  *zap.Logger
	metrics metrics.Sink
	now     func() time.Time
}

type Option func(*AnalyticsService)

// WithPeer enables the Creation Service fallback for unknown codes.
func WithPeer(peer *lookup.Bounded) Option {
	return func(s *AnalyticsService) { s.peer = peer }
}

func WithMetrics(sink metrics.Sink) Option {
	return func(s *AnalyticsService) { s.metrics = metrics.OrNop(sink) }
}

func WithClock(now func() time.Time) Option {
	return func(s *AnalyticsService) { s.now = now }
}

func NewAnalyticsService(
	clicks ClickRepository,
	links LinkRepository,
	geoIP GeoIPResolver,
	device DeviceDetector,
	referer RefererClassifier,
	logger *zap.Logger,
	opts ...Option,
) *AnalyticsService {
	s := &AnalyticsService{
		clicks:  clicks,
		links:   links,
		geoIP:   geoIP,
		device:  device,
		referer: referer,
		logger:  logger,
		metrics: metrics.Nop{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordClick validates, enriches and appends a click. Codes are not checked
// against the replica; clicks for unknown codes are kept.
func (s *AnalyticsService) RecordClick(ctx context.Context, in domain.ClickInput) (*domain.Click, error) {
	if !shortcode.Valid(in.ShortCode) {
		return nil, domain.ErrInvalidCode
	}
	if err := validateClick(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidClick, err)
	}

	clickedAt := s.now().UTC()
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		clickedAt = in.Timestamp.UTC()
	}

	click := &domain.Click{
		ShortCode:     in.ShortCode,
		ClickedAt:     clickedAt.Truncate(time.Millisecond),
		UserAgent:     in.UserAgent,
		IPAddress:     in.IPAddress,
		Referer:       in.Referer,
		CountryCode:   s.geoIP.ResolveCountry(in.IPAddress),
		DeviceType:    s.device.DetectDevice(in.UserAgent),
		TrafficSource: s.referer.ClassifySource(in.Referer),
	}

	id, err := s.clicks.InsertClick(ctx, click)
	if err != nil {
		return nil, err
	}
	click.ID = id

	s.metrics.IncClicksRecorded()
	return click, nil
}

// RecordClickEvent records a click delivered over pub/sub.
func (s *AnalyticsService) RecordClickEvent(ctx context.Context, event events.ClickEvent) (*domain.Click, error) {
	in := domain.ClickInput{
		ShortCode: event.ShortCode,
		UserAgent: event.UserAgent,
		IPAddress: event.IPAddress,
		Referer:   event.Referer,
	}
	if !event.Timestamp.IsZero() {
		in.Timestamp = &event.Timestamp
	}
	return s.RecordClick(ctx, in)
}

// RecordLink stores a link announced by the Creation Service.
func (s *AnalyticsService) RecordLink(ctx context.Context, event events.LinkCreatedEvent) error {
	if !shortcode.Valid(event.ShortCode) {
		return domain.ErrInvalidCode
	}
	if event.OriginalURL == "" {
		return fmt.Errorf("link event for %s has no original url", event.ShortCode)
	}
	return s.links.UpsertLink(ctx, domain.Link{
		ShortCode:   event.ShortCode,
		OriginalURL: event.OriginalURL,
		CreatedAt:   event.CreatedAt.UTC(),
	})
}

// GetStats joins a link with its clicks. A code missing from the replica is
// looked up at the Creation Service; a hit there is written to the replica.
func (s *AnalyticsService) GetStats(ctx context.Context, code string) (*domain.Stats, error) {
	if !shortcode.Valid(code) {
		return nil, domain.ErrInvalidCode
	}
	s.metrics.IncAnalyticsRequests()

	link, err := s.resolveLink(ctx, code)
	if err != nil {
		return nil, err
	}

	count, last, err := s.clicks.Totals(ctx, code)
	if err != nil {
		return nil, err
	}

	return &domain.Stats{
		ShortCode:     link.ShortCode,
		OriginalURL:   link.OriginalURL,
		CreatedAt:     link.CreatedAt,
		ClickCount:    count,
		LastClickedAt: last,
	}, nil
}

// GetHistory pages a code's clicks newest first.
func (s *AnalyticsService) GetHistory(ctx context.Context, code string, limit, offset int) ([]domain.Click, error) {
	if !shortcode.Valid(code) {
		return nil, domain.ErrInvalidCode
	}
	s.metrics.IncAnalyticsRequests()

	return s.clicks.History(ctx, code, HistoryLimit(limit), max(offset, 0))
}

// GetTopLinks ranks known links by click count.
func (s *AnalyticsService) GetTopLinks(ctx context.Context, limit int) ([]domain.LinkWithClicks, error) {
	s.metrics.IncAnalyticsRequests()
	return s.links.TopLinks(ctx, TopLimit(limit))
}

// GetSummary breaks a code's clicks down by country, device and source.
func (s *AnalyticsService) GetSummary(ctx context.Context, code string) (*domain.Summary, error) {
	if !shortcode.Valid(code) {
		return nil, domain.ErrInvalidCode
	}
	s.metrics.IncAnalyticsRequests()

	total, _, err := s.clicks.Totals(ctx, code)
	if err != nil {
		return nil, err
	}

	summary := &domain.Summary{ShortCode: code, TotalClicks: total}
	for _, part := range []struct {
		dim Dimension
		out *[]domain.BreakdownItem
	}{
		{DimensionCountry, &summary.Countries},
		{DimensionDevice, &summary.DeviceTypes},
		{DimensionSource, &summary.TrafficSources},
	} {
		groups, err := s.clicks.CountBy(ctx, code, part.dim)
		if err != nil {
			return nil, err
		}
		*part.out = breakdown(groups, total)
	}
	return summary, nil
}

func (s *AnalyticsService) resolveLink(ctx context.Context, code string) (*domain.Link, error) {
	link, err := s.links.FindLink(ctx, code)
	if err == nil {
		return link, nil
	}
	if !errors.Is(err, domain.ErrLinkNotFound) {
		return nil, err
	}

	remote, ok := s.peer.Find(ctx, code)
	if !ok {
		return nil, domain.ErrLinkNotFound
	}

	link = &domain.Link{
		ShortCode:   code,
		OriginalURL: remote.OriginalURL,
		CreatedAt:   remote.CreatedAt.UTC(),
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = s.now().UTC()
	}
	if err := s.links.UpsertLink(ctx, *link); err != nil {
		s.logger.Warn("failed to store link replica",
			zap.String("short_code", code),
			zap.Error(err),
		)
	}
	return link, nil
}

func validateClick(in domain.ClickInput) error {
	if utf8.RuneCountInString(in.UserAgent) > events.MaxUserAgentLength {
		return fmt.Errorf("user agent exceeds %d characters", events.MaxUserAgentLength)
	}
	if in.IPAddress != "" && net.ParseIP(in.IPAddress) == nil {
		return fmt.Errorf("ip address %q is not valid", in.IPAddress)
	}
	if in.Referer != "" && !events.IsAbsoluteURL(in.Referer) {
		return fmt.Errorf("referer must be an absolute URL")
	}
	return nil
}

func breakdown(groups []domain.GroupCount, total int64) []domain.BreakdownItem {
	return lo.Map(groups, func(g domain.GroupCount, _ int) domain.BreakdownItem {
		item := domain.BreakdownItem{Value: g.Value, Count: g.Count}
		if total > 0 {
			item.Percentage = float64(g.Count) / float64(total) * 100
		}
		return item
	})
}

// HistoryLimit is the page size GetHistory uses for a requested limit.
func HistoryLimit(limit int) int {
	return clamp(limit, DefaultHistoryLimit, MaxHistoryLimit)
}

// TopLimit is the ranking size GetTopLinks uses for a requested limit.
func TopLimit(limit int) int {
	return clamp(limit, DefaultTopLimit, MaxTopLimit)
}

func clamp(v, def, hi int) int {
	if v <= 0 {
		return def
	}
	return min(v, hi)
}
