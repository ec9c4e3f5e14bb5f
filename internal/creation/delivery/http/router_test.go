package http_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httphandler "go-shortlink/internal/creation/delivery/http"
	"go-shortlink/internal/creation/domain"
	"go-shortlink/internal/creation/testutil/mocks"
	"go-shortlink/internal/creation/usecase"
	"go-shortlink/internal/shared/httpx"
	"go-shortlink/internal/shared/metrics"
	"go-shortlink/internal/shared/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func rateLimitedRouter(t *testing.T, limit int, ready ...httpx.Check) (http.Handler, *mocks.MockLinkRepository) {
	mockRepo := mocks.NewMockLinkRepository(t)
	service := usecase.NewLinkService(mockRepo, nil, zap.NewNop(), testBaseURL)
	rl := middleware.NewRateLimiter(limit)
	t.Cleanup(rl.Stop)

	router := httphandler.NewRouter(httphandler.NewHandler(service, zap.NewNop()), zap.NewNop(), httphandler.RouterConfig{
		RateLimiter: rl,
		Metrics:     metrics.NewPrometheus().Handler(),
		Ready:       ready,
	})
	return router, mockRepo
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "192.168.1.1:12345"
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// TestNewRouter_HealthAndMetrics_BypassRateLimit verifies exempt routes
func TestNewRouter_HealthAndMetrics_BypassRateLimit(t *testing.T) {
	router, _ := rateLimitedRouter(t, 1)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(router, "/healthz").Code)
		assert.Equal(t, http.StatusOK, get(router, "/readyz").Code)
		assert.Equal(t, http.StatusOK, get(router, "/metrics").Code)
	}
}

// TestNewRouter_PeerLookup_BypassesRateLimit verifies other services are never throttled
func TestNewRouter_PeerLookup_BypassesRateLimit(t *testing.T) {
	router, mockRepo := rateLimitedRouter(t, 1)
	mockRepo.EXPECT().FindByShortCode(mock.Anything, "abc123").Return(nil, domain.ErrLinkNotFound)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNotFound, get(router, "/api/url/abc123").Code)
	}
}

// TestNewRouter_Shorten_RateLimited verifies the creation endpoint is throttled
func TestNewRouter_Shorten_RateLimited(t *testing.T) {
	router, _ := rateLimitedRouter(t, 1)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/shorten", bytes.NewBufferString(`{"url":"ftp://x"}`))
		req.RemoteAddr = "192.168.1.1:12345"
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusBadRequest, http.StatusTooManyRequests}, codes)
}

// TestNewRouter_Readyz_FailingCheck_Returns503 verifies readiness wiring
func TestNewRouter_Readyz_FailingCheck_Returns503(t *testing.T) {
	router, _ := rateLimitedRouter(t, 10, func(context.Context) error {
		return errors.New("database unavailable")
	})

	assert.Equal(t, http.StatusServiceUnavailable, get(router, "/readyz").Code)
}
