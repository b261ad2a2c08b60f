package ports

import (
	"context"
	"time"
)

// HistoricalRecord is one archived day for a registered location
type HistoricalRecord struct {
	LocationID string
	Date       time.Time
	Weather    DailyWeather
}

// HistoricalLedger stores per-day records keyed by (location id, date)
type HistoricalLedger interface {
	// FindRange returns records in [start, end] ordered by date descending
	FindRange(ctx context.Context, locationID string, start, end time.Time) ([]HistoricalRecord, error)
	// InsertMany skips days already present and returns the number of rows written
	InsertMany(ctx context.Context, records []HistoricalRecord) (int64, error)
	Count(ctx context.Context, locationID string) (int64, error)
}
