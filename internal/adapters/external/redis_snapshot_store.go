package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"math"
	"time"

	"geoweather.app/internal/config"
	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	snapshotGeoKey     = "weather:snapshots:geo"
	snapshotKeyPrefix  = "weather:snapshot:"
	nearbyCandidateMax = 8
	// Redis GEO cannot index points closer to the poles than this
	geoMaxLatitude = 85.05112878
)

// RedisSnapshotStoreAdapter implements SnapshotStore on a Redis geo index.
// Each snapshot lives under its own key with a TTL; the geo set only holds
// member names, so members whose key has expired are cleaned up lazily.
type RedisSnapshotStoreAdapter struct {
	client      *redis.Client
	ttl         snapshotFreshness
	maxDistance float64
}

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStorageError("failed to connect to Redis", err)
	}

	return client, nil
}

// NewRedisSnapshotStoreAdapter creates a Redis-backed snapshot store
func NewRedisSnapshotStoreAdapter(client *redis.Client, params SnapshotStoreParams) (*RedisSnapshotStoreAdapter, error) {
	if client == nil {
		return nil, errors.NewConfigurationError("redis client cannot be nil", nil)
	}
	if err := params.validate(); err != nil {
		return nil, err
	}

	return &RedisSnapshotStoreAdapter{
		client:      client,
		ttl:         snapshotFreshness{ttl: params.TTL, clock: params.Clock},
		maxDistance: params.MaxDistanceMeters,
	}, nil
}

// FindNear returns the closest fresh snapshot within the distance threshold
func (r *RedisSnapshotStoreAdapter) FindNear(ctx context.Context, latitude, longitude float64, projection ports.SnapshotProjection) (*ports.Snapshot, error) {
	if math.Abs(latitude) > geoMaxLatitude {
		return nil, errors.NewNotFoundError("no snapshot near point")
	}

	candidates, err := r.client.GeoRadius(ctx, snapshotGeoKey, longitude, latitude, &redis.GeoRadiusQuery{
		Radius:   r.maxDistance,
		Unit:     "m",
		WithDist: true,
		Sort:     "ASC",
		Count:    nearbyCandidateMax,
	}).Result()
	if err != nil {
		return nil, errors.NewStorageError("redis geo lookup failed", err)
	}

	var stale []interface{}
	defer func() {
		if len(stale) > 0 {
			r.client.ZRem(ctx, snapshotGeoKey, stale...)
		}
	}()

	for _, candidate := range candidates {
		raw, err := r.client.Get(ctx, snapshotKeyPrefix+candidate.Name).Bytes()
		if stderrors.Is(err, redis.Nil) {
			stale = append(stale, candidate.Name)
			continue
		}
		if err != nil {
			return nil, errors.NewStorageError("redis get operation failed", err)
		}

		var snapshot ports.Snapshot
		if err := json.Unmarshal(raw, &snapshot); err != nil {
			return nil, errors.NewStorageError("failed to decode snapshot", err)
		}
		if !r.ttl.isFresh(&snapshot) {
			continue
		}
		return snapshot.Project(projection), nil
	}

	return nil, errors.NewNotFoundError("no snapshot near point")
}

// Insert writes the snapshot body and its geo member in one transaction
func (r *RedisSnapshotStoreAdapter) Insert(ctx context.Context, snapshot *ports.Snapshot) error {
	if err := validateSnapshot(snapshot); err != nil {
		return err
	}
	if math.Abs(snapshot.Location.Latitude) > geoMaxLatitude {
		return errors.NewValidationError("latitude is outside the redis geo index range")
	}

	stored := *snapshot
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CapturedAt.IsZero() {
		stored.CapturedAt = r.ttl.clock.Now()
	}

	raw, err := json.Marshal(&stored)
	if err != nil {
		return errors.NewStorageError("failed to encode snapshot", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, snapshotKeyPrefix+stored.ID, raw, r.ttl.ttl)
		pipe.GeoAdd(ctx, snapshotGeoKey, &redis.GeoLocation{
			Name:      stored.ID,
			Longitude: stored.Location.Longitude,
			Latitude:  stored.Location.Latitude,
		})
		return nil
	})
	if err != nil {
		return errors.NewStorageError("redis snapshot insert failed", err)
	}
	return nil
}

// Prune removes geo members whose snapshot key has expired
func (r *RedisSnapshotStoreAdapter) Prune(ctx context.Context) (int, error) {
	members, err := r.client.ZRange(ctx, snapshotGeoKey, 0, -1).Result()
	if err != nil {
		return 0, errors.NewStorageError("redis prune scan failed", err)
	}

	var stale []interface{}
	for _, member := range members {
		n, err := r.client.Exists(ctx, snapshotKeyPrefix+member).Result()
		if err != nil {
			return 0, errors.NewStorageError("redis exists operation failed", err)
		}
		if n == 0 {
			stale = append(stale, member)
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}

	removed, err := r.client.ZRem(ctx, snapshotGeoKey, stale...).Result()
	if err != nil {
		return 0, errors.NewStorageError("redis prune failed", err)
	}
	return int(removed), nil
}

// Ping checks if Redis connection is alive
func (r *RedisSnapshotStoreAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewStorageError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisSnapshotStoreAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewStorageError("failed to close Redis connection", err)
	}
	return nil
}
