// Package lookup asks the Creation Service, the authority for every mapping,
// whether a code exists. Callers go through Bounded so a slow or broken peer
// only ever looks like a miss.
package lookup

import (
	"context"
	"errors"
	"time"

	"go-shortlink/internal/shared/metrics"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single peer lookup.
const DefaultTimeout = 2 * time.Second

// ErrNotFound is returned by an Oracle that positively knows the code is unassigned.
var ErrNotFound = errors.New("short code not found")

// Link is the authoritative mapping as the Creation Service reports it.
type Link struct {
	ShortCode   string    `json:"shortCode"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Oracle resolves a code against the Creation Service.
type Oracle interface {
	Lookup(ctx context.Context, code string) (*Link, error)
}

// Bounded wraps an Oracle with a single timeout and collapses every failure
// into a miss.
type Bounded struct {
	oracle  Oracle
	timeout time.Duration
	logger  *zap.Logger
	metrics metrics.Sink
}

// NewBounded returns nil when oracle is nil; a nil *Bounded always misses.
func NewBounded(oracle Oracle, timeout time.Duration, logger *zap.Logger, sink metrics.Sink) *Bounded {
	if oracle == nil {
		return nil
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Bounded{
		oracle:  oracle,
		timeout: timeout,
		logger:  logger,
		metrics: metrics.OrNop(sink),
	}
}

// Find returns the link and true on a hit. Not-found, errors and timeouts
// all return false.
func (b *Bounded) Find(ctx context.Context, code string) (*Link, bool) {
	if b == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	link, err := b.oracle.Lookup(ctx, code)
	switch {
	case err == nil && link != nil:
		b.metrics.IncPeerFallback(metrics.PeerHit)
		return link, true
	case err == nil, errors.Is(err, ErrNotFound):
		b.metrics.IncPeerFallback(metrics.PeerMiss)
	case errors.Is(err, context.DeadlineExceeded):
		b.metrics.IncPeerFallback(metrics.PeerTimeout)
		b.logger.Warn("peer lookup timed out",
			zap.String("short_code", code),
			zap.Duration("timeout", b.timeout),
		)
	default:
		b.metrics.IncPeerFallback(metrics.PeerError)
		b.logger.Warn("peer lookup failed",
			zap.String("short_code", code),
			zap.Error(err),
		)
	}
	return nil, false
}
