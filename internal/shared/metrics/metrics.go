// Package metrics is the observability sink handed to each service core.
// The host process owns the registry; the core only sees Sink.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Peer fallback results.
const (
	PeerHit     = "hit"
	PeerMiss    = "miss"
	PeerError   = "error"
	PeerTimeout = "timeout"
)

// Sink receives counter increments from the service cores.
type Sink interface {
	IncCreateRequests()
	IncRedirects()
	IncCacheHit()
	IncCacheMiss()
	IncPeerFallback(result string)
	IncTasksDropped(task string)
	IncClicksRecorded()
	IncAnalyticsRequests()
}

// Prometheus implements Sink with client_golang counters.
type Prometheus struct {
	registry         *prometheus.Registry
	createRequests   prometheus.Counter
	redirects        prometheus.Counter
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	peerFallbacks    *prometheus.CounterVec
	tasksDropped     *prometheus.CounterVec
	clicksRecorded   prometheus.Counter
	analyticsQueries prometheus.Counter
}

var _ Sink = (*Prometheus)(nil)

// NewPrometheus registers the shortlink counters, plus Go and process
// collectors, on a fresh registry.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		createRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shortlink_create_requests_total",
			Help: "Total short link creation requests.",
		}),
		redirects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shortlink_redirect_requests_total",
			Help: "Total successful redirects.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shortlink_cache_hits_total",
			Help: "Resolution cache hits.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shortlink_cache_misses_total",
			Help: "Resolution cache misses.",
		}),
		peerFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shortlink_peer_fallbacks_total",
			Help: "Lookups sent to the creation service, by result.",
		}, []string{"result"}),
		tasksDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shortlink_dispatch_dropped_total",
			Help: "Background tasks dropped because the queue was full, by task.",
		}, []string{"task"}),
		clicksRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shortlink_clicks_recorded_total",
			Help: "Click events persisted by the analytics service.",
		}),
		analyticsQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shortlink_analytics_requests_total",
			Help: "Stats queries answered by the analytics service.",
		}),
	}

	p.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.createRequests,
		p.redirects,
		p.cacheHits,
		p.cacheMisses,
		p.peerFallbacks,
		p.tasksDropped,
		p.clicksRecorded,
		p.analyticsQueries,
	)
	return p
}

// Handler exposes the registry for scraping.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func (p *Prometheus) IncCreateRequests()    { p.createRequests.Inc() }
func (p *Prometheus) IncRedirects()         { p.redirects.Inc() }
func (p *Prometheus) IncCacheHit()          { p.cacheHits.Inc() }
func (p *Prometheus) IncCacheMiss()         { p.cacheMisses.Inc() }
func (p *Prometheus) IncClicksRecorded()    { p.clicksRecorded.Inc() }
func (p *Prometheus) IncAnalyticsRequests() { p.analyticsQueries.Inc() }

func (p *Prometheus) IncPeerFallback(result string) {
	p.peerFallbacks.WithLabelValues(result).Inc()
}

func (p *Prometheus) IncTasksDropped(task string) {
	p.tasksDropped.WithLabelValues(task).Inc()
}

// Nop discards everything. Used when metrics are disabled and in tests.
type Nop struct{}

var _ Sink = Nop{}

func (Nop) IncCreateRequests()     {}
func (Nop) IncRedirects()          {}
func (Nop) IncCacheHit()           {}
func (Nop) IncCacheMiss()          {}
func (Nop) IncPeerFallback(string) {}
func (Nop) IncTasksDropped(string) {}
func (Nop) IncClicksRecorded()     {}
func (Nop) IncAnalyticsRequests()  {}

// OrNop returns sink, or Nop when sink is nil.
func OrNop(sink Sink) Sink {
	if sink == nil {
		return Nop{}
	}
	return sink
}
