package ports

import (
	"context"
	"time"
)

// LocationRecord is a registered location with its stable identifier
type LocationRecord struct {
	ID        string
	Latitude  float64
	Longitude float64
	Location  Location
	CreatedAt time.Time
}

// LocationRegistry deduplicates locations by proximity
type LocationRegistry interface {
	// FindNear returns the nearest location within the distance threshold or a NotFound app error
	FindNear(ctx context.Context, latitude, longitude float64) (*LocationRecord, error)
	// FindOrCreate returns the id of the nearby location, registering data at the point if none exists
	FindOrCreate(ctx context.Context, latitude, longitude float64, data Location) (string, error)
}
