package infrastructure

import (
	"context"

	"geoweather.app/internal/ports"
)

// MetricsCollectorAdapter aggregates cache statistics and upstream details for the JSON metrics endpoint
type MetricsCollectorAdapter struct {
	weatherMetrics ports.WeatherMetrics
	gateway        ports.WeatherGateway
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	WeatherMetrics ports.WeatherMetrics
	Gateway        ports.WeatherGateway
}

// NewMetricsCollectorAdapter creates a new metrics collector adapter
func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		weatherMetrics: config.WeatherMetrics,
		gateway:        config.Gateway,
	}
}

// GetMetrics returns the aggregated metrics document
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := make(map[string]interface{})

	if m.gateway != nil {
		metrics["upstream"] = m.gateway.GetProviderInfo()
	}

	if m.weatherMetrics != nil {
		stats := m.weatherMetrics.GetStats()
		metrics["cache"] = map[string]interface{}{
			"hits":      stats.Hits,
			"misses":    stats.Misses,
			"total_ops": stats.TotalOps,
			"hit_ratio": stats.HitRatio,
			"updated":   stats.LastUpdated,
		}
		metrics["history"] = map[string]interface{}{
			"backfilled_days": stats.BackfilledDays,
		}
		metrics["upstream_calls"] = map[string]interface{}{
			"total":    stats.UpstreamCalls,
			"failures": stats.UpstreamFailures,
		}
	}

	return metrics, nil
}
