package ports

import (
	"context"
	"strings"
	"time"
)

// Snapshot is one cached short-range answer for a point
type Snapshot struct {
	ID         string          `json:"id"`
	Location   Location        `json:"location"`
	Current    *CurrentWeather `json:"current,omitempty"`
	Daily      []DailyWeather  `json:"daily,omitempty"`
	Hourly     []HourlyWeather `json:"hourly,omitempty"`
	CapturedAt time.Time       `json:"capturedAt"`
}

// SnapshotProjection selects the parts of a snapshot a caller needs
type SnapshotProjection struct {
	Current bool
	Daily   bool
	// HourlyDate selects the bucket of one YYYY-MM-DD day; empty selects none
	HourlyDate string
}

func ProjectCurrent() SnapshotProjection {
	return SnapshotProjection{Current: true}
}

func ProjectDaily() SnapshotProjection {
	return SnapshotProjection{Daily: true}
}

func ProjectHourlyDate(date string) SnapshotProjection {
	return SnapshotProjection{HourlyDate: date}
}

// Project returns a copy holding only the selected parts
func (s *Snapshot) Project(p SnapshotProjection) *Snapshot {
	out := &Snapshot{
		ID:         s.ID,
		Location:   s.Location,
		CapturedAt: s.CapturedAt,
	}
	if p.Current {
		out.Current = s.Current
	}
	if p.Daily {
		out.Daily = s.Daily
	}
	if bucket, ok := s.hourlyBucket(p.HourlyDate); ok {
		out.Hourly = []HourlyWeather{bucket}
	}
	return out
}

// Satisfies reports whether the projected snapshot carries every requested part
func (s *Snapshot) Satisfies(p SnapshotProjection) bool {
	if p.Current && s.Current == nil {
		return false
	}
	if p.Daily && len(s.Daily) == 0 {
		return false
	}
	if p.HourlyDate != "" {
		if _, ok := s.hourlyBucket(p.HourlyDate); !ok {
			return false
		}
	}
	return true
}

// hourlyBucket finds the bucket whose first reading falls on date.
// Buckets follow the snapshot's own forecast days, so position says nothing about the date.
func (s *Snapshot) hourlyBucket(date string) (HourlyWeather, bool) {
	if date == "" {
		return HourlyWeather{}, false
	}
	for _, bucket := range s.Hourly {
		if len(bucket.Time) > 0 && strings.HasPrefix(bucket.Time[0], date) {
			return bucket, true
		}
	}
	return HourlyWeather{}, false
}

// SnapshotStore is the proximity-indexed short-range cache.
// FindNear returns a NotFound app error when nothing fresh lies within the distance threshold.
type SnapshotStore interface {
	FindNear(ctx context.Context, latitude, longitude float64, projection SnapshotProjection) (*Snapshot, error)
	Insert(ctx context.Context, snapshot *Snapshot) error
	Prune(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}
