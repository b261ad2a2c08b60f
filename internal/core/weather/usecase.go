package weather

import (
	"context"
	"fmt"
	"sync"
	"time"

	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
	"geoweather.app/pkg/validation"
)

const snapshotWriteTimeout = 10 * time.Second

// UseCase orchestrates the snapshot cache, the location registry and the
// historical ledger in front of the upstream gateway.
type UseCase struct {
	gateway  ports.WeatherGateway
	store    ports.SnapshotStore
	registry ports.LocationRegistry
	ledger   ports.HistoricalLedger
	catalog  ports.ConditionCatalog
	config   ports.ConfigProvider
	logger   ports.Logger
	metrics  ports.WeatherMetrics
	clock    ports.Clock

	pending sync.WaitGroup
}

type UseCaseDependencies struct {
	Gateway  ports.WeatherGateway
	Store    ports.SnapshotStore
	Registry ports.LocationRegistry
	Ledger   ports.HistoricalLedger
	Catalog  ports.ConditionCatalog
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.WeatherMetrics
	Clock    ports.Clock
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Gateway == nil {
		return nil, errors.NewValidationError("weather gateway is required")
	}
	if deps.Store == nil {
		return nil, errors.NewValidationError("snapshot store is required")
	}
	if deps.Registry == nil {
		return nil, errors.NewValidationError("location registry is required")
	}
	if deps.Ledger == nil {
		return nil, errors.NewValidationError("historical ledger is required")
	}
	if deps.Catalog == nil {
		return nil, errors.NewValidationError("condition catalog is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.Clock == nil {
		return nil, errors.NewValidationError("clock is required")
	}

	return &UseCase{
		gateway:  deps.Gateway,
		store:    deps.Store,
		registry: deps.Registry,
		ledger:   deps.Ledger,
		catalog:  deps.Catalog,
		config:   deps.Config,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		clock:    deps.Clock,
	}, nil
}

// Current returns the instantaneous weather for the point
func (uc *UseCase) Current(ctx context.Context, q Query) (*Weather, error) {
	if err := q.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather query: " + err.Error())
	}
	snap, err := uc.shortRange(ctx, q, "current", ports.ProjectCurrent())
	if err != nil {
		return nil, err
	}
	return fromSnapshot(snap), nil
}

// Daily returns the forecast days for the point
func (uc *UseCase) Daily(ctx context.Context, q Query) (*Weather, error) {
	if err := q.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather query: " + err.Error())
	}
	snap, err := uc.shortRange(ctx, q, "daily", ports.ProjectDaily())
	if err != nil {
		return nil, err
	}
	return fromSnapshot(snap), nil
}

// Hourly returns the 24 hourly readings of the requested day
func (uc *UseCase) Hourly(ctx context.Context, q Query) (*Weather, error) {
	if err := q.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather query: " + err.Error())
	}
	if q.Date == nil {
		return nil, errors.NewValidationError("date is required for hourly weather")
	}

	horizon := uc.config.GetWeatherConfig().HourlyHorizonDays
	offset := dayOffset(uc.clock.Now(), *q.Date)
	if offset < 0 || offset >= horizon {
		return nil, errors.NewOutOfRangeError(
			fmt.Sprintf("hourly weather is available for the next %d days only, got day offset %d", horizon, offset))
	}

	date := q.Day().Format(validation.ISODateLayout)
	snap, err := uc.shortRange(ctx, q, "hourly", ports.ProjectHourlyDate(date))
	if err != nil {
		return nil, err
	}
	// upstream forecast days are local to the point and can trail the UTC day
	if len(snap.Hourly) == 0 {
		return nil, errors.NewNotFoundError("no hourly forecast for " + date)
	}
	return fromSnapshot(snap), nil
}

func (uc *UseCase) shortRange(ctx context.Context, q Query, kind string, projection ports.SnapshotProjection) (*ports.Snapshot, error) {
	enableCache := uc.config.GetWeatherConfig().EnableCache

	if enableCache {
		cached, err := uc.store.FindNear(ctx, q.Latitude, q.Longitude, projection)
		switch {
		case err == nil && cached.Satisfies(projection):
			uc.metrics.RecordCacheHit(kind)
			uc.logger.Debug("Snapshot cache hit",
				ports.F("kind", kind),
				ports.F("snapshotId", cached.ID),
				ports.F("capturedAt", cached.CapturedAt))
			return cached, nil
		case err == nil, errors.IsNotFoundError(err):
			uc.metrics.RecordCacheMiss(kind)
		default:
			uc.logger.Error("Snapshot lookup failed", ports.F("kind", kind), ports.F("error", err))
			return nil, errors.NewStorageError("snapshot lookup failed", err)
		}
	}

	bundle, err := uc.gateway.FetchPoint(ctx, q.Latitude, q.Longitude)
	if err != nil {
		uc.logger.Error("Failed to fetch point weather",
			ports.F("latitude", q.Latitude),
			ports.F("longitude", q.Longitude),
			ports.F("error", err))
		return nil, err
	}

	snap := snapshotFromBundle(bundle, q, uc.clock.Now())
	projected := snap.Project(projection)
	if enableCache {
		uc.saveSnapshotAsync(ctx, snap)
	}
	return projected, nil
}

// saveSnapshotAsync writes the snapshot without holding up the response;
// failures are logged and counted only.
func (uc *UseCase) saveSnapshotAsync(ctx context.Context, snap *ports.Snapshot) {
	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()

		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), snapshotWriteTimeout)
		defer cancel()

		if err := uc.store.Insert(writeCtx, snap); err != nil {
			uc.metrics.RecordSnapshotWriteFailure()
			uc.logger.Warn("Failed to cache weather snapshot",
				ports.F("latitude", snap.Location.Latitude),
				ports.F("longitude", snap.Location.Longitude),
				ports.F("error", err))
		}
	}()
}

func snapshotFromBundle(bundle *ports.WeatherBundle, q Query, capturedAt time.Time) *ports.Snapshot {
	snap := &ports.Snapshot{
		Current:    bundle.Current,
		Daily:      bundle.Daily,
		Hourly:     bundle.Hourly,
		CapturedAt: capturedAt,
	}
	if bundle.Location != nil {
		snap.Location = *bundle.Location
	}
	// the snapshot is indexed at the queried point
	snap.Location.Latitude = q.Latitude
	snap.Location.Longitude = q.Longitude
	return snap
}

// History returns archived daily weather, backfilling the ledger on demand
func (uc *UseCase) History(ctx context.Context, q Query) (*Weather, error) {
	if err := q.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather query: " + err.Error())
	}
	if q.Date == nil {
		return nil, errors.NewValidationError("date is required for historical weather")
	}

	cfg := uc.config.GetWeatherConfig()
	requested, err := resolveHistoryRange(q.Day(), q.Days, cfg.HistoryMaxDays)
	if err != nil {
		return nil, err
	}

	today := truncateDay(uc.clock.Now())
	limit := addDays(today, -cfg.HistoryOffsetDays)
	if !requested.Start.Before(today) {
		return nil, errors.NewOutOfRangeError("historical range must start before today")
	}
	if requested.End.After(limit) {
		return nil, errors.NewOutOfRangeError(
			fmt.Sprintf("historical range must end at least %d days before today", cfg.HistoryOffsetDays))
	}

	if !cfg.EnableCache {
		return uc.historyFromGateway(ctx, q, requested)
	}
	return uc.historyWithBackfill(ctx, q, requested, limit)
}

func (uc *UseCase) historyFromGateway(ctx context.Context, q Query, requested DateRange) (*Weather, error) {
	bundle, err := uc.gateway.FetchRange(ctx, ports.RangeRequest{
		Latitude:        q.Latitude,
		Longitude:       q.Longitude,
		Start:           requested.Start,
		End:             requested.End,
		IncludeLocation: q.WithLocation,
	})
	if err != nil {
		return nil, err
	}

	result := &Weather{Daily: mergeRecords(requested, recordsFromDaily("", bundle.Daily))}
	if q.WithLocation {
		result.Location = bundle.Location
	}
	return result, nil
}

func (uc *UseCase) historyWithBackfill(ctx context.Context, q Query, requested DateRange, limit time.Time) (*Weather, error) {
	var (
		locationID string
		location   *ports.Location
		found      []ports.HistoricalRecord
	)

	record, err := uc.registry.FindNear(ctx, q.Latitude, q.Longitude)
	switch {
	case err == nil:
		locationID = record.ID
		location = &record.Location
	case errors.IsNotFoundError(err):
	default:
		uc.logger.Error("Location lookup failed", ports.F("error", err))
		return nil, errors.NewStorageError("location lookup failed", err)
	}

	if locationID != "" {
		found, err = uc.ledger.FindRange(ctx, locationID, requested.Start, requested.End)
		if err != nil {
			uc.logger.Error("Ledger read failed", ports.F("locationId", locationID), ports.F("error", err))
			return nil, errors.NewStorageError("historical ledger read failed", err)
		}
	}

	chunks := fetchChunks(planFill(requested, found, limit))
	if len(chunks) == 0 {
		uc.metrics.RecordCacheHit("history")
	} else {
		uc.metrics.RecordCacheMiss("history")
	}

	var fetched []ports.HistoricalRecord
	for _, chunk := range chunks {
		bundle, err := uc.gateway.FetchRange(ctx, ports.RangeRequest{
			Latitude:        q.Latitude,
			Longitude:       q.Longitude,
			Start:           chunk.Start,
			End:             chunk.End,
			IncludeLocation: locationID == "",
		})
		if err != nil {
			uc.logger.Error("Failed to fetch archived weather",
				ports.F("range", chunk.String()),
				ports.F("error", err))
			return nil, err
		}

		if locationID == "" {
			data := ports.Location{Latitude: q.Latitude, Longitude: q.Longitude}
			if bundle.Location != nil {
				data = *bundle.Location
			}
			locationID, err = uc.registry.FindOrCreate(ctx, q.Latitude, q.Longitude, data)
			if err != nil {
				uc.logger.Error("Failed to register location", ports.F("error", err))
				return nil, errors.NewStorageError("location registration failed", err)
			}
			location = &data
		}

		records := recordsFromDaily(locationID, bundle.Daily)
		inserted, err := uc.ledger.InsertMany(ctx, records)
		if err != nil {
			uc.logger.Error("Ledger write failed",
				ports.F("locationId", locationID),
				ports.F("range", chunk.String()),
				ports.F("error", err))
			return nil, errors.NewStorageError("historical ledger write failed", err)
		}
		uc.metrics.RecordBackfill(int(inserted))
		uc.logger.Info("Backfilled historical weather",
			ports.F("locationId", locationID),
			ports.F("range", chunk.String()),
			ports.F("inserted", inserted))

		fetched = append(fetched, records...)
	}

	result := &Weather{Daily: mergeRecords(requested, found, fetched)}
	if q.WithLocation {
		result.Location = location
	}
	return result, nil
}

// Conditions lists the weather code table
func (uc *UseCase) Conditions(ctx context.Context) []ports.Condition {
	return uc.catalog.All()
}

func (uc *UseCase) GetProviderInfo(ctx context.Context) map[string]interface{} {
	return uc.gateway.GetProviderInfo()
}

func (uc *UseCase) GetCacheMetrics(ctx context.Context) ports.CacheStats {
	return uc.metrics.GetStats()
}

// Close waits for in-flight snapshot writes
func (uc *UseCase) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
