package config_test

import (
	"testing"
	"time"

	"go-shortlink/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreation_Defaults(t *testing.T) {
	cfg, err := config.LoadCreation()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "http://localhost:8081", cfg.BaseURL)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 2*time.Second, cfg.PeerTimeout)
	assert.Equal(t, "memory", cfg.CacheDriver)
	assert.Equal(t, "http://localhost:8082", cfg.AnalyticsServiceURL)
}

func TestLoadCreation_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BASE_URL", "https://sho.rt/")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("ANALYTICS_SERVICE_URL", "http://analytics:8082")

	cfg, err := config.LoadCreation()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "http://analytics:8082", cfg.AnalyticsServiceURL)
	assert.Equal(t, "https://sho.rt", cfg.BaseURL)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoadCreation_PostgresNeedsURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := config.LoadCreation()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadRedirect_Defaults(t *testing.T) {
	cfg, err := config.LoadRedirect()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, 302, cfg.RedirectStatus)
	assert.Empty(t, cfg.LocalStorePath)
	assert.Equal(t, config.TransportHTTP, cfg.ClickTransport)
	assert.Equal(t, 10000, cfg.ClickQueueSize)
}

func TestLoadRedirect_InvalidStatus(t *testing.T) {
	t.Setenv("REDIRECT_STATUS", "307")

	_, err := config.LoadRedirect()
	assert.ErrorContains(t, err, "REDIRECT_STATUS")
}

func TestLoadRedirect_NATSNeedsURL(t *testing.T) {
	t.Setenv("CLICK_TRANSPORT", "nats")

	_, err := config.LoadRedirect()
	assert.ErrorContains(t, err, "NATS_URL")
}

func TestLoadAnalytics_PeerTimeout(t *testing.T) {
	t.Setenv("PEER_TIMEOUT", "500ms")

	cfg, err := config.LoadAnalytics()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.PeerTimeout)
	assert.Equal(t, "8082", cfg.Port)
}

func TestLoad_InvalidCacheDriver(t *testing.T) {
	t.Setenv("CACHE_DRIVER", "memcached")

	_, err := config.LoadAnalytics()
	assert.ErrorContains(t, err, "CACHE_DRIVER")
}

func TestLoad_NATSTransportNeedsURL(t *testing.T) {
	t.Setenv("TRANSPORT", "nats")

	_, err := config.LoadCreation()
	assert.ErrorContains(t, err, "NATS_URL")

	t.Setenv("NATS_URL", "nats://localhost:4222")
	cfg, err := config.LoadCreation()
	require.NoError(t, err)
	assert.Equal(t, config.TransportNATS, cfg.Transport)
}

func TestLoad_UnknownTransport(t *testing.T) {
	t.Setenv("TRANSPORT", "grpc")

	_, err := config.LoadRedirect()
	assert.ErrorContains(t, err, "TRANSPORT")
}
