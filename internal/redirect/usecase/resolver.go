package usecase

import (
	"context"
	"errors"
	"time"

	"go-shortlink/internal/redirect/domain"
	"go-shortlink/internal/shared/cache"
	"go-shortlink/internal/shared/lookup"
	"go-shortlink/internal/shared/metrics"
	"go-shortlink/pkg/shortcode"

	"go.uber.org/zap"
)

// Resolver turns a short code into its original URL by walking the cache,
// the optional local store, then the Creation Service.
type Resolver struct {
	cache    cache.Cache
	store    LinkStore
	peer     *lookup.Bounded
	cacheTTL time.Duration
	logger   *zap.Logger
	metrics  metrics.Sink
}

type ResolverOption func(*Resolver)

func WithCacheTTL(ttl time.Duration) ResolverOption {
	return func(r *Resolver) { r.cacheTTL = ttl }
}

func WithMetrics(sink metrics.Sink) ResolverOption {
	return func(r *Resolver) { r.metrics = metrics.OrNop(sink) }
}

// NewResolver wires the tiers. store and peer may be nil; a store-less
// deployment relies on the cache and the peer alone.
func NewResolver(c cache.Cache, store LinkStore, peer *lookup.Bounded, logger *zap.Logger, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		cache:    c,
		store:    store,
		peer:     peer,
		cacheTTL: cache.DefaultTTL,
		logger:   logger,
		metrics:  metrics.Nop{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the original URL for code, or domain.ErrInvalidCode /
// domain.ErrLinkNotFound. Cache, store and peer failures degrade to misses.
func (r *Resolver) Resolve(ctx context.Context, code string) (string, error) {
	if !shortcode.Valid(code) {
		return "", domain.ErrInvalidCode
	}

	if url, ok := r.fromCache(ctx, code); ok {
		r.metrics.IncCacheHit()
		r.metrics.IncRedirects()
		return url, nil
	}
	r.metrics.IncCacheMiss()

	if url, ok := r.fromStore(ctx, code); ok {
		r.populate(ctx, code, url)
		r.metrics.IncRedirects()
		return url, nil
	}

	if link, ok := r.peer.Find(ctx, code); ok {
		r.populate(ctx, code, link.OriginalURL)
		r.metrics.IncRedirects()
		return link.OriginalURL, nil
	}

	return "", domain.ErrLinkNotFound
}

func (r *Resolver) fromCache(ctx context.Context, code string) (string, bool) {
	if r.cache == nil {
		return "", false
	}
	url, ok, err := r.cache.Get(ctx, code)
	if err != nil {
		r.logger.Warn("cache read failed",
			zap.String("short_code", code),
			zap.Error(err),
		)
		return "", false
	}
	return url, ok
}

func (r *Resolver) fromStore(ctx context.Context, code string) (string, bool) {
	if r.store == nil {
		return "", false
	}
	url, err := r.store.FindOriginalURL(ctx, code)
	if err != nil {
		if !errors.Is(err, domain.ErrLinkNotFound) {
			r.logger.Warn("local store read failed",
				zap.String("short_code", code),
				zap.Error(err),
			)
		}
		return "", false
	}
	return url, true
}

func (r *Resolver) populate(ctx context.Context, code, url string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, code, url, r.cacheTTL); err != nil {
		r.logger.Warn("cache write failed",
			zap.String("short_code", code),
			zap.Error(err),
		)
	}
}
