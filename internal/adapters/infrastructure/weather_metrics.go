package infrastructure

import (
	"sync"
	"time"

	"geoweather.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusWeatherMetrics implements WeatherMetrics on Prometheus collectors
// and keeps in-process totals for the JSON stats endpoint.
type PrometheusWeatherMetrics struct {
	hits             *prometheus.CounterVec
	misses           *prometheus.CounterVec
	hitRatio         prometheus.Gauge
	upstreamCalls    *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	backfilledDays   prometheus.Counter
	snapshotFailures prometheus.Counter

	clock ports.Clock
	mu    sync.RWMutex
	stats ports.CacheStats
}

// NewPrometheusWeatherMetrics registers the collectors on registerer.
// Tests pass a fresh prometheus.NewRegistry() to avoid duplicate registration.
func NewPrometheusWeatherMetrics(registerer prometheus.Registerer, clock ports.Clock) *PrometheusWeatherMetrics {
	if clock == nil {
		clock = SystemClock{}
	}
	factory := promauto.With(registerer)

	return &PrometheusWeatherMetrics{
		hits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "weather_cache_hits_total",
			Help: "The total number of cache hits",
		}, []string{"kind"}),
		misses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "weather_cache_misses_total",
			Help: "The total number of cache misses",
		}, []string{"kind"}),
		hitRatio: factory.NewGauge(prometheus.GaugeOpts{
			Name: "weather_cache_hit_ratio",
			Help: "Cache hit ratio (hits/total lookups)",
		}),
		upstreamCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "weather_upstream_requests_total",
			Help: "Upstream provider calls by outcome",
		}, []string{"provider", "outcome"}),
		upstreamLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "weather_upstream_duration_seconds",
			Help:    "Upstream provider call duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		backfilledDays: factory.NewCounter(prometheus.CounterOpts{
			Name: "weather_history_backfilled_days_total",
			Help: "Days written to the historical ledger by backfill",
		}),
		snapshotFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "weather_snapshot_write_failures_total",
			Help: "Best-effort snapshot writes that failed",
		}),
		clock: clock,
	}
}

func (m *PrometheusWeatherMetrics) RecordCacheHit(kind string) {
	m.hits.WithLabelValues(kind).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.Hits++
	m.touch()
}

func (m *PrometheusWeatherMetrics) RecordCacheMiss(kind string) {
	m.misses.WithLabelValues(kind).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.Misses++
	m.touch()
}

func (m *PrometheusWeatherMetrics) RecordUpstreamCall(provider string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.upstreamCalls.WithLabelValues(provider, outcome).Inc()
	m.upstreamLatency.WithLabelValues(provider).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.UpstreamCalls++
	if !success {
		m.stats.UpstreamFailures++
	}
	m.stats.LastUpdated = m.clock.Now()
}

func (m *PrometheusWeatherMetrics) RecordBackfill(days int) {
	if days <= 0 {
		return
	}
	m.backfilledDays.Add(float64(days))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.BackfilledDays += int64(days)
	m.stats.LastUpdated = m.clock.Now()
}

func (m *PrometheusWeatherMetrics) RecordSnapshotWriteFailure() {
	m.snapshotFailures.Inc()
}

// GetStats returns a copy of the running totals
func (m *PrometheusWeatherMetrics) GetStats() ports.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats
}

// touch recomputes the derived fields. Must be called while holding the mutex.
func (m *PrometheusWeatherMetrics) touch() {
	m.stats.TotalOps = m.stats.Hits + m.stats.Misses
	if m.stats.TotalOps > 0 {
		m.stats.HitRatio = float64(m.stats.Hits) / float64(m.stats.TotalOps)
		m.hitRatio.Set(m.stats.HitRatio)
	}
	m.stats.LastUpdated = m.clock.Now()
}
