package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go-shortlink/internal/analytics/domain"
	"go-shortlink/internal/analytics/testutil/mocks"
	"go-shortlink/internal/analytics/usecase"
	"go-shortlink/internal/shared/events"
	"go-shortlink/internal/shared/lookup"
	sharedmocks "go-shortlink/internal/testutil/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	clicks  *mocks.MockClickRepository
	links   *mocks.MockLinkRepository
	geoIP   *mocks.MockGeoIPResolver
	device  *mocks.MockDeviceDetector
	referer *mocks.MockRefererClassifier
	oracle  *sharedmocks.MockOracle
}

func setupService(t *testing.T) (*usecase.AnalyticsService, *serviceMocks) {
	m := &serviceMocks{
		clicks:  mocks.NewMockClickRepository(t),
		links:   mocks.NewMockLinkRepository(t),
		geoIP:   mocks.NewMockGeoIPResolver(t),
		device:  mocks.NewMockDeviceDetector(t),
		referer: mocks.NewMockRefererClassifier(t),
		oracle:  sharedmocks.NewMockOracle(t),
	}
	peer := lookup.NewBounded(m.oracle, 100*time.Millisecond, zap.NewNop(), nil)
	service := usecase.NewAnalyticsService(m.clicks, m.links, m.geoIP, m.device, m.referer, zap.NewNop(),
		usecase.WithPeer(peer),
		usecase.WithClock(func() time.Time { return fixedNow }),
	)
	return service, m
}

func (m *serviceMocks) expectEnrichment(ip, ua, ref string) {
	m.geoIP.EXPECT().ResolveCountry(ip).Return("US")
	m.device.EXPECT().DetectDevice(ua).Return("Desktop")
	m.referer.EXPECT().ClassifySource(ref).Return("Search")
}

// TestRecordClick_EnrichesAndStores verifies enrichment services are called and click is stored
func TestRecordClick_EnrichesAndStores(t *testing.T) {
	// Setup
	service, m := setupService(t)
	ctx := context.Background()
	m.expectEnrichment("203.0.113.7", "Mozilla/5.0", "https://google.com")

	m.clicks.EXPECT().InsertClick(ctx, mock.MatchedBy(func(c *domain.Click) bool {
		return c.ShortCode == "abc123" &&
			c.ClickedAt.Equal(fixedNow) &&
			c.CountryCode == "US" &&
			c.DeviceType == "Desktop" &&
			c.TrafficSource == "Search" &&
			c.IPAddress == "203.0.113.7"
	})).Return(int64(7), nil)

	// Act
	click, err := service.RecordClick(ctx, domain.ClickInput{
		ShortCode: "abc123",
		UserAgent: "Mozilla/5.0",
		IPAddress: "203.0.113.7",
		Referer:   "https://google.com",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(7), click.ID)
	assert.Equal(t, fixedNow, click.ClickedAt)
}

// TestRecordClick_NoMetadata_Accepted verifies every optional field may be absent
func TestRecordClick_NoMetadata_Accepted(t *testing.T) {
	service, m := setupService(t)
	m.geoIP.EXPECT().ResolveCountry("").Return(domain.Unknown)
	m.device.EXPECT().DetectDevice("").Return(domain.Unknown)
	m.referer.EXPECT().ClassifySource("").Return("Direct")
	m.clicks.EXPECT().InsertClick(mock.Anything, mock.Anything).Return(int64(1), nil)

	click, err := service.RecordClick(context.Background(), domain.ClickInput{ShortCode: "K1abcd"})

	require.NoError(t, err)
	assert.Equal(t, "Direct", click.TrafficSource)
}

// TestRecordClick_UsesProvidedTimestamp verifies reported click times are kept
func TestRecordClick_UsesProvidedTimestamp(t *testing.T) {
	service, m := setupService(t)
	at := time.Date(2024, 5, 31, 23, 59, 0, 0, time.FixedZone("EST", -5*3600))
	m.expectEnrichment("", "", "")
	m.clicks.EXPECT().InsertClick(mock.Anything, mock.MatchedBy(func(c *domain.Click) bool {
		return c.ClickedAt.Equal(at) && c.ClickedAt.Location() == time.UTC
	})).Return(int64(1), nil)

	_, err := service.RecordClick(context.Background(), domain.ClickInput{ShortCode: "abc123", Timestamp: &at})

	require.NoError(t, err)
}

// TestRecordClick_Validation rejects malformed input before any I/O
func TestRecordClick_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.ClickInput
		want  error
	}{
		{"bad code", domain.ClickInput{ShortCode: "abc"}, domain.ErrInvalidCode},
		{"long user agent", domain.ClickInput{ShortCode: "abc123", UserAgent: strings.Repeat("a", 501)}, domain.ErrInvalidClick},
		{"bad ip", domain.ClickInput{ShortCode: "abc123", IPAddress: "999.1.1.1"}, domain.ErrInvalidClick},
		{"relative referer", domain.ClickInput{ShortCode: "abc123", Referer: "/home"}, domain.ErrInvalidClick},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := setupService(t)

			_, err := service.RecordClick(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestRecordClick_UserAgentAtLimit_Accepted verifies the 500 character bound is inclusive
func TestRecordClick_UserAgentAtLimit_Accepted(t *testing.T) {
	service, m := setupService(t)
	ua := strings.Repeat("a", 500)
	m.expectEnrichment("::1", ua, "")
	m.clicks.EXPECT().InsertClick(mock.Anything, mock.Anything).Return(int64(1), nil)

	_, err := service.RecordClick(context.Background(), domain.ClickInput{ShortCode: "abc123", UserAgent: ua, IPAddress: "::1"})

	require.NoError(t, err)
}

// TestRecordClick_MultibyteUserAgentAtLimit_Accepted counts characters, not bytes
func TestRecordClick_MultibyteUserAgentAtLimit_Accepted(t *testing.T) {
	service, m := setupService(t)
	ua := strings.Repeat("é", 500)
	m.expectEnrichment("", ua, "")
	m.clicks.EXPECT().InsertClick(mock.Anything, mock.Anything).Return(int64(1), nil)

	_, err := service.RecordClick(context.Background(), domain.ClickInput{ShortCode: "abc123", UserAgent: ua})

	require.NoError(t, err)
}

// TestRecordClick_RepositoryError_ReturnsError verifies repo errors are propagated
func TestRecordClick_RepositoryError_ReturnsError(t *testing.T) {
	service, m := setupService(t)
	m.expectEnrichment("", "", "")
	repoErr := errors.New("database error")
	m.clicks.EXPECT().InsertClick(mock.Anything, mock.Anything).Return(int64(0), repoErr)

	_, err := service.RecordClick(context.Background(), domain.ClickInput{ShortCode: "abc123"})

	assert.ErrorIs(t, err, repoErr)
}

// TestRecordClickEvent_MapsEventFields verifies pub/sub events are recorded
func TestRecordClickEvent_MapsEventFields(t *testing.T) {
	service, m := setupService(t)
	ev := events.ClickEvent{
		EventID:   "e1",
		ShortCode: "abc123",
		Timestamp: fixedNow.Add(-time.Minute),
		IPAddress: "203.0.113.7",
		UserAgent: "curl/8.0",
		Referer:   "https://google.com",
	}
	m.expectEnrichment("203.0.113.7", "curl/8.0", "https://google.com")
	m.clicks.EXPECT().InsertClick(mock.Anything, mock.MatchedBy(func(c *domain.Click) bool {
		return c.ClickedAt.Equal(ev.Timestamp)
	})).Return(int64(1), nil)

	_, err := service.RecordClickEvent(context.Background(), ev)

	require.NoError(t, err)
}

// TestRecordLink_UpsertsReplica verifies link announcements feed the replica
func TestRecordLink_UpsertsReplica(t *testing.T) {
	service, m := setupService(t)
	m.links.EXPECT().UpsertLink(mock.Anything, domain.Link{
		ShortCode:   "abc123",
		OriginalURL: "https://example.com",
		CreatedAt:   fixedNow,
	}).Return(nil)

	err := service.RecordLink(context.Background(), events.LinkCreatedEvent{
		ShortCode:   "abc123",
		OriginalURL: "https://example.com",
		CreatedAt:   fixedNow,
	})

	require.NoError(t, err)
}

func TestRecordLink_RejectsMalformedEvents(t *testing.T) {
	service, _ := setupService(t)

	assert.ErrorIs(t, service.RecordLink(context.Background(), events.LinkCreatedEvent{ShortCode: "x"}), domain.ErrInvalidCode)
	assert.Error(t, service.RecordLink(context.Background(), events.LinkCreatedEvent{ShortCode: "abc123"}))
}

// TestGetStats_LocalLink_JoinsClicks verifies the replica path
func TestGetStats_LocalLink_JoinsClicks(t *testing.T) {
	// Setup
	service, m := setupService(t)
	last := fixedNow.Add(-time.Hour)
	m.links.EXPECT().FindLink(mock.Anything, "abc123").Return(&domain.Link{
		ShortCode:   "abc123",
		OriginalURL: "https://example.com",
		CreatedAt:   fixedNow.Add(-24 * time.Hour),
	}, nil)
	m.clicks.EXPECT().Totals(mock.Anything, "abc123").Return(int64(3), &last, nil)

	// Act
	stats, err := service.GetStats(context.Background(), "abc123")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", stats.OriginalURL)
	assert.Equal(t, int64(3), stats.ClickCount)
	require.NotNil(t, stats.LastClickedAt)
	assert.Equal(t, last, *stats.LastClickedAt)
}

// TestGetStats_ReplicaMiss_PeerHit_StoresAndJoinsLocalClicks verifies the fallback
func TestGetStats_ReplicaMiss_PeerHit_StoresAndJoinsLocalClicks(t *testing.T) {
	// Setup
	service, m := setupService(t)
	created := fixedNow.Add(-time.Hour)
	last := fixedNow.Add(-time.Minute)

	m.links.EXPECT().FindLink(mock.Anything, "abc123").Return(nil, domain.ErrLinkNotFound)
	m.oracle.EXPECT().Lookup(mock.Anything, "abc123").Return(&lookup.Link{
		ShortCode:   "abc123",
		OriginalURL: "https://example.com",
		CreatedAt:   created,
	}, nil)
	m.links.EXPECT().UpsertLink(mock.Anything, domain.Link{
		ShortCode:   "abc123",
		OriginalURL: "https://example.com",
		CreatedAt:   created,
	}).Return(nil)
	m.clicks.EXPECT().Totals(mock.Anything, "abc123").Return(int64(1), &last, nil)

	// Act
	stats, err := service.GetStats(context.Background(), "abc123")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ClickCount)
	assert.Equal(t, created, stats.CreatedAt)
}

// TestGetStats_PeerHit_NoClicks_ZeroStats verifies the synthesized zero record
func TestGetStats_PeerHit_NoClicks_ZeroStats(t *testing.T) {
	service, m := setupService(t)
	m.links.EXPECT().FindLink(mock.Anything, "abc123").Return(nil, domain.ErrLinkNotFound)
	m.oracle.EXPECT().Lookup(mock.Anything, "abc123").Return(&lookup.Link{OriginalURL: "https://example.com"}, nil)
	m.links.EXPECT().UpsertLink(mock.Anything, mock.Anything).Return(errors.New("disk full"))
	m.clicks.EXPECT().Totals(mock.Anything, "abc123").Return(int64(0), nil, nil)

	stats, err := service.GetStats(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Zero(t, stats.ClickCount)
	assert.Nil(t, stats.LastClickedAt)
	assert.Equal(t, fixedNow, stats.CreatedAt)
}

// TestGetStats_PeerMissOrTimeout_NotFound verifies peer failures never surface
func TestGetStats_PeerMissOrTimeout_NotFound(t *testing.T) {
	t.Run("miss", func(t *testing.T) {
		service, m := setupService(t)
		m.links.EXPECT().FindLink(mock.Anything, "ZZZZZZ").Return(nil, domain.ErrLinkNotFound)
		m.oracle.EXPECT().Lookup(mock.Anything, "ZZZZZZ").Return(nil, lookup.ErrNotFound)

		_, err := service.GetStats(context.Background(), "ZZZZZZ")

		assert.ErrorIs(t, err, domain.ErrLinkNotFound)
	})

	t.Run("timeout", func(t *testing.T) {
		service, m := setupService(t)
		m.links.EXPECT().FindLink(mock.Anything, "ZZZZZZ").Return(nil, domain.ErrLinkNotFound)
		m.oracle.EXPECT().Lookup(mock.Anything, "ZZZZZZ").RunAndReturn(func(ctx context.Context, _ string) (*lookup.Link, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

		_, err := service.GetStats(context.Background(), "ZZZZZZ")

		assert.ErrorIs(t, err, domain.ErrLinkNotFound)
	})
}

func TestGetStats_InvalidCode(t *testing.T) {
	service, _ := setupService(t)

	_, err := service.GetStats(context.Background(), "abc")

	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

// TestGetHistory_ClampsPaging verifies defaults and bounds
func TestGetHistory_ClampsPaging(t *testing.T) {
	service, m := setupService(t)
	m.clicks.EXPECT().History(mock.Anything, "abc123", usecase.DefaultHistoryLimit, 0).Return([]domain.Click{}, nil).Once()
	m.clicks.EXPECT().History(mock.Anything, "abc123", usecase.MaxHistoryLimit, 5).Return([]domain.Click{}, nil).Once()

	_, err := service.GetHistory(context.Background(), "abc123", 0, -3)
	require.NoError(t, err)
	_, err = service.GetHistory(context.Background(), "abc123", 1_000_000, 5)
	require.NoError(t, err)
}

func TestGetTopLinks_DefaultLimit(t *testing.T) {
	service, m := setupService(t)
	m.links.EXPECT().TopLinks(mock.Anything, usecase.DefaultTopLimit).Return([]domain.LinkWithClicks{}, nil)

	top, err := service.GetTopLinks(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, top)
}

// TestGetSummary_ReturnsBreakdowns verifies summary with correct percentage calculation
func TestGetSummary_ReturnsBreakdowns(t *testing.T) {
	// Setup
	service, m := setupService(t)
	m.clicks.EXPECT().Totals(mock.Anything, "abc123").Return(int64(12), nil, nil)
	m.clicks.EXPECT().CountBy(mock.Anything, "abc123", usecase.DimensionCountry).Return([]domain.GroupCount{
		{Value: "US", Count: 7},
		{Value: "DE", Count: 5},
	}, nil)
	m.clicks.EXPECT().CountBy(mock.Anything, "abc123", usecase.DimensionDevice).Return([]domain.GroupCount{
		{Value: "Desktop", Count: 12},
	}, nil)
	m.clicks.EXPECT().CountBy(mock.Anything, "abc123", usecase.DimensionSource).Return([]domain.GroupCount{}, nil)

	// Act
	summary, err := service.GetSummary(context.Background(), "abc123")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.TotalClicks)
	require.Len(t, summary.Countries, 2)
	assert.InDelta(t, 58.33, summary.Countries[0].Percentage, 0.01)
	assert.InDelta(t, 41.67, summary.Countries[1].Percentage, 0.01)
	assert.InDelta(t, 100.0, summary.DeviceTypes[0].Percentage, 0.001)
	assert.Empty(t, summary.TrafficSources)
}

// TestGetSummary_CountError_ReturnsError verifies errors are propagated
func TestGetSummary_CountError_ReturnsError(t *testing.T) {
	service, m := setupService(t)
	m.clicks.EXPECT().Totals(mock.Anything, "abc123").Return(int64(0), nil, errors.New("database error"))

	_, err := service.GetSummary(context.Background(), "abc123")

	assert.Error(t, err)
}
