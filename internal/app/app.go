// Package app holds the wiring the three service mains share: cache and
// peer selection, metrics, and the serve/shutdown loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-shortlink/internal/config"
	"go-shortlink/internal/shared/cache"
	"go-shortlink/internal/shared/httpx"
	"go-shortlink/internal/shared/lookup"
	"go-shortlink/internal/shared/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ShutdownTimeout bounds graceful shutdown of every service.
const ShutdownTimeout = 10 * time.Second

// Cache is the resolution cache picked by CACHE_DRIVER. Client is set only
// for the redis driver.
type Cache struct {
	cache.Cache
	Client *redis.Client
}

// NewCache builds the configured cache. The redis driver pings the server
// before returning.
func NewCache(ctx context.Context, cfg config.Common) (*Cache, error) {
	switch cfg.CacheDriver {
	case "redis":
		rdb, err := cache.NewRedisClient(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return &Cache{Cache: cache.NewRedis(rdb), Client: rdb}, nil
	case "memory", "":
		return &Cache{Cache: cache.NewMemory()}, nil
	default:
		return nil, fmt.Errorf("unsupported cache driver %q", cfg.CacheDriver)
	}
}

// Check reports redis reachability; the in-memory cache is always ready.
func (c *Cache) Check() httpx.Check {
	return func(ctx context.Context) error {
		if c.Client == nil {
			return nil
		}
		return c.Client.Ping(ctx).Err()
	}
}

func (c *Cache) Close() error {
	if c.Client == nil {
		return nil
	}
	return c.Client.Close()
}

// NewOracle returns the Creation Service lookup for the configured
// transport. dapr is required when transport is dapr.
func NewOracle(transport, creationURL string, dapr lookup.Invoker) (lookup.Oracle, error) {
	if transport == config.TransportDapr {
		if dapr == nil {
			return nil, errors.New("dapr transport selected but no dapr client is available")
		}
		return lookup.NewDaprOracle(dapr, lookup.DefaultCreationAppID), nil
	}
	if creationURL == "" {
		return nil, nil
	}
	return lookup.NewHTTPOracle(creationURL, http.DefaultClient), nil
}

// NewMetrics returns a Prometheus sink and its /metrics handler, or a no-op
// sink and a nil handler when metrics are disabled.
func NewMetrics(enabled bool) (metrics.Sink, http.Handler) {
	if !enabled {
		return metrics.Nop{}, nil
	}
	p := metrics.NewPrometheus()
	return p, p.Handler()
}

// Serve runs srv until ctx is done, then shuts it down within
// ShutdownTimeout. It returns the listener error if the server fails first.
func Serve(ctx context.Context, srv *http.Server, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
