package external

import (
	"context"
	"sync"
	"testing"
	"time"

	"geoweather.app/internal/config"
	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock() *fixedClock {
	return &fixedClock{now: time.Date(2024, 1, 18, 12, 0, 0, 0, time.UTC)}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testSnapshot(lat, lon float64, name string, capturedAt time.Time) *ports.Snapshot {
	return &ports.Snapshot{
		Location:   ports.Location{Name: name, Latitude: lat, Longitude: lon},
		Current:    &ports.CurrentWeather{Temperature: 20},
		Daily:      []ports.DailyWeather{{Time: "2024-01-18"}, {Time: "2024-01-19"}},
		Hourly:     []ports.HourlyWeather{{Time: []string{"2024-01-18T00:00"}}, {Time: []string{"2024-01-19T00:00"}}},
		CapturedAt: capturedAt,
	}
}

func defaultStoreParams(clock ports.Clock) SnapshotStoreParams {
	return SnapshotStoreParams{
		TTL:               3 * time.Hour,
		MaxDistanceMeters: 5000,
		Clock:             clock,
	}
}

func TestNewMemorySnapshotStore_InvalidParams(t *testing.T) {
	clock := newFixedClock()

	tests := []struct {
		name   string
		params SnapshotStoreParams
	}{
		{"ZeroTTL", SnapshotStoreParams{MaxDistanceMeters: 5000, Clock: clock}},
		{"ZeroDistance", SnapshotStoreParams{TTL: time.Hour, Clock: clock}},
		{"NilClock", SnapshotStoreParams{TTL: time.Hour, MaxDistanceMeters: 5000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewMemorySnapshotStore(tt.params)
			assert.Nil(t, store)
			assert.True(t, errors.IsConfigurationError(err))
		})
	}
}

func TestMemorySnapshotStore_FindNear(t *testing.T) {
	ctx := context.Background()
	clock := newFixedClock()
	store, err := NewMemorySnapshotStore(defaultStoreParams(clock))
	require.NoError(t, err)

	require.NoError(t, store.Insert(ctx, testSnapshot(50.45, 30.52, "Kyiv", clock.Now())))
	require.NoError(t, store.Insert(ctx, testSnapshot(50.47, 30.52, "Obolon", clock.Now())))

	t.Run("ExactPoint", func(t *testing.T) {
		snapshot, err := store.FindNear(ctx, 50.45, 30.52, ports.ProjectCurrent())
		require.NoError(t, err)
		assert.Equal(t, "Kyiv", snapshot.Location.Name)
		assert.NotNil(t, snapshot.Current)
		assert.Nil(t, snapshot.Daily)
		assert.Nil(t, snapshot.Hourly)
	})

	t.Run("PicksNearest", func(t *testing.T) {
		snapshot, err := store.FindNear(ctx, 50.468, 30.52, ports.ProjectDaily())
		require.NoError(t, err)
		assert.Equal(t, "Obolon", snapshot.Location.Name)
		assert.Len(t, snapshot.Daily, 2)
		assert.Nil(t, snapshot.Current)
	})

	t.Run("HourlyBucket", func(t *testing.T) {
		snapshot, err := store.FindNear(ctx, 50.45, 30.52, ports.ProjectHourlyDate("2024-01-19"))
		require.NoError(t, err)
		require.Len(t, snapshot.Hourly, 1)
		assert.Equal(t, "2024-01-19T00:00", snapshot.Hourly[0].Time[0])
	})

	t.Run("HourlyDateNotCovered", func(t *testing.T) {
		snapshot, err := store.FindNear(ctx, 50.45, 30.52, ports.ProjectHourlyDate("2024-01-20"))
		require.NoError(t, err)
		assert.Empty(t, snapshot.Hourly)
		assert.False(t, snapshot.Satisfies(ports.ProjectHourlyDate("2024-01-20")))
	})

	t.Run("TooFar", func(t *testing.T) {
		_, err := store.FindNear(ctx, 50.60, 30.52, ports.ProjectCurrent())
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestMemorySnapshotStore_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := newFixedClock()
	store, err := NewMemorySnapshotStore(defaultStoreParams(clock))
	require.NoError(t, err)

	require.NoError(t, store.Insert(ctx, testSnapshot(10, 10, "old", clock.Now())))
	clock.Advance(2 * time.Hour)
	require.NoError(t, store.Insert(ctx, testSnapshot(40, 40, "new", clock.Now())))
	clock.Advance(90 * time.Minute)

	_, err = store.FindNear(ctx, 10, 10, ports.ProjectCurrent())
	assert.True(t, errors.IsNotFoundError(err))

	snapshot, err := store.FindNear(ctx, 40, 40, ports.ProjectCurrent())
	require.NoError(t, err)
	assert.Equal(t, "new", snapshot.Location.Name)

	removed, err := store.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())
}

func TestMemorySnapshotStore_Insert(t *testing.T) {
	ctx := context.Background()
	clock := newFixedClock()
	store, err := NewMemorySnapshotStore(defaultStoreParams(clock))
	require.NoError(t, err)

	t.Run("AssignsIDAndCaptureTime", func(t *testing.T) {
		snapshot := testSnapshot(1, 1, "a", time.Time{})
		require.NoError(t, store.Insert(ctx, snapshot))
		assert.Empty(t, snapshot.ID)

		found, err := store.FindNear(ctx, 1, 1, ports.ProjectCurrent())
		require.NoError(t, err)
		assert.NotEmpty(t, found.ID)
		assert.Equal(t, clock.Now(), found.CapturedAt)
	})

	t.Run("NilSnapshot", func(t *testing.T) {
		assert.True(t, errors.IsValidationError(store.Insert(ctx, nil)))
	})

	t.Run("InvalidCoordinates", func(t *testing.T) {
		err := store.Insert(ctx, testSnapshot(91, 0, "pole", clock.Now()))
		assert.True(t, errors.IsValidationError(err))
	})

	assert.NoError(t, store.Ping(ctx))
}

func TestSnapshotStoreFactory_CreateSnapshotStore(t *testing.T) {
	factory := NewSnapshotStoreFactory()
	clock := newFixedClock()
	_, redisConfig := setupMockRedis(t)

	tests := []struct {
		name        string
		config      *config.CacheConfig
		expectError bool
		check       func(t *testing.T, store ports.SnapshotStore)
	}{
		{
			name:        "NilConfig",
			config:      nil,
			expectError: true,
		},
		{
			name: "Memory",
			config: &config.CacheConfig{
				Type:               config.CacheTypeMemory,
				SnapshotTTLMinutes: 180,
				MaxDistanceMeters:  5000,
			},
			check: func(t *testing.T, store ports.SnapshotStore) {
				assert.IsType(t, &MemorySnapshotStore{}, store)
			},
		},
		{
			name: "Redis",
			config: &config.CacheConfig{
				Type:               config.CacheTypeRedis,
				SnapshotTTLMinutes: 180,
				MaxDistanceMeters:  5000,
				Redis:              *redisConfig,
			},
			check: func(t *testing.T, store ports.SnapshotStore) {
				require.IsType(t, &RedisSnapshotStoreAdapter{}, store)
				assert.NoError(t, store.(*RedisSnapshotStoreAdapter).Close())
			},
		},
		{
			name: "UnknownType",
			config: &config.CacheConfig{
				Type:               config.CacheTypeUnknown,
				SnapshotTTLMinutes: 180,
				MaxDistanceMeters:  5000,
			},
			expectError: true,
		},
		{
			name: "ZeroTTL",
			config: &config.CacheConfig{
				Type:              config.CacheTypeMemory,
				MaxDistanceMeters: 5000,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := factory.CreateSnapshotStore(tt.config, clock)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, store)
				return
			}
			require.NoError(t, err)
			tt.check(t, store)
		})
	}
}
