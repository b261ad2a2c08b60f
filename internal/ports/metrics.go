package ports

import "time"

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits             int64
	Misses           int64
	TotalOps         int64
	HitRatio         float64
	BackfilledDays   int64
	UpstreamCalls    int64
	UpstreamFailures int64
	LastUpdated      time.Time
}

// WeatherMetrics defines the contract for cache and upstream metrics
type WeatherMetrics interface {
	RecordCacheHit(kind string)
	RecordCacheMiss(kind string)
	RecordUpstreamCall(provider string, success bool, duration time.Duration)
	RecordBackfill(days int)
	RecordSnapshotWriteFailure()
	GetStats() CacheStats
}
