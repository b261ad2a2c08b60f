package external

import (
	"fmt"
	"time"

	"geoweather.app/internal/config"
	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
	"geoweather.app/pkg/validation"
)

// SnapshotStoreParams holds the settings shared by every snapshot store
type SnapshotStoreParams struct {
	TTL               time.Duration
	MaxDistanceMeters float64
	Clock             ports.Clock
}

func (p SnapshotStoreParams) validate() error {
	if p.TTL <= 0 {
		return errors.NewConfigurationError("snapshot TTL must be positive", nil)
	}
	if p.MaxDistanceMeters <= 0 {
		return errors.NewConfigurationError("snapshot distance threshold must be positive", nil)
	}
	if p.Clock == nil {
		return errors.NewConfigurationError("clock is required", nil)
	}
	return nil
}

type snapshotFreshness struct {
	ttl   time.Duration
	clock ports.Clock
}

func (f snapshotFreshness) isFresh(s *ports.Snapshot) bool {
	return f.clock.Now().Sub(s.CapturedAt) < f.ttl
}

func validateSnapshot(s *ports.Snapshot) error {
	if s == nil {
		return errors.NewValidationError("snapshot cannot be nil")
	}
	if !validation.IsValidLatitude(s.Location.Latitude) || !validation.IsValidLongitude(s.Location.Longitude) {
		return errors.NewValidationError("snapshot coordinates out of range")
	}
	return nil
}

// SnapshotStoreFactory builds the configured snapshot store
type SnapshotStoreFactory struct{}

func NewSnapshotStoreFactory() *SnapshotStoreFactory {
	return &SnapshotStoreFactory{}
}

func (f *SnapshotStoreFactory) CreateSnapshotStore(cfg *config.CacheConfig, clock ports.Clock) (ports.SnapshotStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	params := SnapshotStoreParams{
		TTL:               time.Duration(cfg.SnapshotTTLMinutes) * time.Minute,
		MaxDistanceMeters: cfg.MaxDistanceMeters,
		Clock:             clock,
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		store, err := NewMemorySnapshotStore(params)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.CacheTypeRedis:
		client, err := NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		store, err := NewRedisSnapshotStoreAdapter(client, params)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
