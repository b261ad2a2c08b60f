package external

import (
	"context"
	"sync"

	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
	"geoweather.app/pkg/geo"
	"github.com/google/uuid"
)

// MemorySnapshotStore keeps snapshots in process and answers proximity
// lookups with a linear haversine scan.
type MemorySnapshotStore struct {
	data        map[string]*ports.Snapshot
	mutex       sync.RWMutex
	ttl         snapshotFreshness
	maxDistance float64
}

// NewMemorySnapshotStore creates an in-memory snapshot store
func NewMemorySnapshotStore(params SnapshotStoreParams) (*MemorySnapshotStore, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	return &MemorySnapshotStore{
		data:        make(map[string]*ports.Snapshot),
		ttl:         snapshotFreshness{ttl: params.TTL, clock: params.Clock},
		maxDistance: params.MaxDistanceMeters,
	}, nil
}

// FindNear returns the closest fresh snapshot within the distance threshold
func (s *MemorySnapshotStore) FindNear(ctx context.Context, latitude, longitude float64, projection ports.SnapshotProjection) (*ports.Snapshot, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var (
		nearest  *ports.Snapshot
		bestDist float64
	)
	for _, snapshot := range s.data {
		if !s.ttl.isFresh(snapshot) {
			continue
		}
		dist := geo.Distance(latitude, longitude, snapshot.Location.Latitude, snapshot.Location.Longitude)
		if dist > s.maxDistance {
			continue
		}
		if nearest == nil || dist < bestDist {
			nearest, bestDist = snapshot, dist
		}
	}

	if nearest == nil {
		return nil, errors.NewNotFoundError("no snapshot near point")
	}
	return nearest.Project(projection), nil
}

// Insert stores a copy of the snapshot, assigning an ID when missing
func (s *MemorySnapshotStore) Insert(ctx context.Context, snapshot *ports.Snapshot) error {
	if err := validateSnapshot(snapshot); err != nil {
		return err
	}

	stored := *snapshot
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CapturedAt.IsZero() {
		stored.CapturedAt = s.ttl.clock.Now()
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data[stored.ID] = &stored
	return nil
}

// Prune drops expired snapshots and returns how many were removed
func (s *MemorySnapshotStore) Prune(ctx context.Context) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	removed := 0
	for id, snapshot := range s.data {
		if !s.ttl.isFresh(snapshot) {
			delete(s.data, id)
			removed++
		}
	}
	return removed, nil
}

// Ping always succeeds for the in-memory store
func (s *MemorySnapshotStore) Ping(ctx context.Context) error {
	return nil
}

// Len reports the number of stored snapshots, fresh or not
func (s *MemorySnapshotStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}
