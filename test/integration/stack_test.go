//go:build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-shortlink/internal/analytics/consumer"
	analyticsdb "go-shortlink/internal/analytics/database"
	analyticshttp "go-shortlink/internal/analytics/delivery/http"
	"go-shortlink/internal/analytics/enrichment"
	analyticssqlite "go-shortlink/internal/analytics/repository/sqlite"
	analyticsusecase "go-shortlink/internal/analytics/usecase"
	creationdb "go-shortlink/internal/creation/database"
	creationhttp "go-shortlink/internal/creation/delivery/http"
	creationpublisher "go-shortlink/internal/creation/publisher"
	creationsqlite "go-shortlink/internal/creation/repository/sqlite"
	creationusecase "go-shortlink/internal/creation/usecase"
	redirecthttp "go-shortlink/internal/redirect/delivery/http"
	redirectpublisher "go-shortlink/internal/redirect/publisher"
	redirectusecase "go-shortlink/internal/redirect/usecase"
	"go-shortlink/internal/shared/cache"
	shareddb "go-shortlink/internal/shared/database"
	"go-shortlink/internal/shared/dispatch"
	"go-shortlink/internal/shared/lookup"
	"go-shortlink/internal/shared/pubsub"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const peerTimeout = 2 * time.Second

// stack is the three services running in-process over the HTTP transport,
// each with its own cache and database.
type stack struct {
	creation  *httptest.Server
	redirect  *httptest.Server
	analytics *httptest.Server
}

func skipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if os.Getenv("SKIP_INTEGRATION") != "" {
		t.Skip("Skipping integration test (SKIP_INTEGRATION set)")
	}
}

func startStack(t *testing.T) *stack {
	t.Helper()
	logger := zap.NewNop()
	dir := t.TempDir()
	s := &stack{}

	// Creation and Analytics point at each other, so the Creation router is
	// installed once the Analytics URL is known.
	var creationRouter http.Handler
	s.creation = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creationRouter.ServeHTTP(w, r)
	}))
	t.Cleanup(s.creation.Close)

	// Analytics Service
	analyticsDB, err := analyticsdb.Open(filepath.Join(dir, "analytics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { analyticsDB.Close() })

	stats := analyticsusecase.NewAnalyticsService(
		analyticssqlite.NewClickRepository(analyticsDB),
		analyticssqlite.NewLinkRepository(analyticsDB),
		enrichment.NoGeoIP{},
		enrichment.NewDeviceDetector(),
		enrichment.NewRefererClassifier(),
		logger,
		analyticsusecase.WithPeer(lookup.NewBounded(lookup.NewHTTPOracle(s.creation.URL, nil), peerTimeout, logger, nil)),
	)
	s.analytics = httptest.NewServer(analyticshttp.NewRouter(analyticshttp.NewHandler(stats, logger), logger, analyticshttp.RouterConfig{
		Events: analyticshttp.NewEventHandler(consumer.NewEventConsumer(stats, logger), logger),
	}))
	t.Cleanup(s.analytics.Close)

	// Creation Service, announcing new links to Analytics over HTTP
	recordDB, err := creationdb.Open(shareddb.DialectSQLite, filepath.Join(dir, "shortlink.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { recordDB.Close() })

	announcements := dispatch.New(100, 1, peerTimeout, logger, nil)
	announcements.Start()
	t.Cleanup(func() { _ = announcements.Close(context.Background()) })

	links := creationusecase.NewLinkService(creationsqlite.NewLinkRepository(recordDB), cache.NewMemory(), logger, "http://short.test",
		creationusecase.WithPublisher(creationpublisher.NewLinkPublisher(pubsub.NewHTTPPublisher(s.analytics.URL, nil)), announcements),
	)
	creationRouter = creationhttp.NewRouter(creationhttp.NewHandler(links, logger), logger, creationhttp.RouterConfig{})

	// Redirect Service, store-less
	dispatcher := dispatch.New(100, 2, peerTimeout, logger, nil)
	dispatcher.Start()
	t.Cleanup(func() { _ = dispatcher.Close(context.Background()) })

	resolver := redirectusecase.NewResolver(cache.NewMemory(), nil,
		lookup.NewBounded(lookup.NewHTTPOracle(s.creation.URL, nil), peerTimeout, logger, nil), logger)
	tracker := redirectusecase.NewClickTracker(dispatcher, redirectpublisher.NewHTTPPublisher(s.analytics.URL, nil), logger)
	s.redirect = httptest.NewServer(redirecthttp.NewRouter(
		redirecthttp.NewHandler(resolver, tracker, http.StatusFound, logger), logger, redirecthttp.RouterConfig{}))
	t.Cleanup(s.redirect.Close)

	return s
}

// noFollow is a client that returns redirect responses instead of following them.
var noFollow = &http.Client{
	Timeout: 5 * time.Second,
	CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	},
}
