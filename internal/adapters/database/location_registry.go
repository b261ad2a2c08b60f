package database

import (
	"context"
	stderrors "errors"
	"time"

	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
	"geoweather.app/pkg/geo"
	"geoweather.app/pkg/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationModel represents the database model for registered locations
type LocationModel struct {
	ID                   string  `gorm:"primaryKey;size:36"`
	Latitude             float64 `gorm:"index;not null"`
	Longitude            float64 `gorm:"index;not null"`
	Name                 string
	Region               string
	Country              string
	Elevation            float64
	Timezone             string
	TimezoneAbbreviation string
	UTCOffsetSeconds     int
	CreatedAt            time.Time
}

func (LocationModel) TableName() string {
	return "locations"
}

// LocationRegistryAdapter implements the LocationRegistry port using GORM.
// Candidates are prefiltered by a bounding box on the indexed columns and then
// ranked by haversine distance.
type LocationRegistryAdapter struct {
	db          *gorm.DB
	maxDistance float64
}

// NewLocationRegistryAdapter creates a new location registry adapter
func NewLocationRegistryAdapter(db *gorm.DB, maxDistanceMeters float64) (*LocationRegistryAdapter, error) {
	if db == nil {
		return nil, errors.NewConfigurationError("database cannot be nil", nil)
	}
	if maxDistanceMeters <= 0 {
		return nil, errors.NewConfigurationError("location distance threshold must be positive", nil)
	}
	return &LocationRegistryAdapter{db: db, maxDistance: maxDistanceMeters}, nil
}

// FindNear returns the nearest registered location within the distance threshold
func (r *LocationRegistryAdapter) FindNear(ctx context.Context, latitude, longitude float64) (*ports.LocationRecord, error) {
	if !validation.IsValidLatitude(latitude) || !validation.IsValidLongitude(longitude) {
		return nil, errors.NewValidationError("coordinates out of range")
	}

	box := geo.BoundingBoxAround(latitude, longitude, r.maxDistance)
	query := r.db.WithContext(ctx).Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat)
	if box.WrapsAntimeridian() {
		query = query.Where("(longitude >= ? OR longitude <= ?)", box.MinLon, box.MaxLon)
	} else {
		query = query.Where("longitude BETWEEN ? AND ?", box.MinLon, box.MaxLon)
	}

	var candidates []LocationModel
	if err := query.Find(&candidates).Error; err != nil {
		return nil, errors.NewStorageError("failed to query locations", err)
	}

	var (
		nearest  *LocationModel
		bestDist float64
	)
	for i := range candidates {
		dist := geo.Distance(latitude, longitude, candidates[i].Latitude, candidates[i].Longitude)
		if dist > r.maxDistance {
			continue
		}
		if nearest == nil || dist < bestDist {
			nearest, bestDist = &candidates[i], dist
		}
	}

	if nearest == nil {
		return nil, errors.NewNotFoundError("no location near point")
	}
	return modelToRecord(nearest), nil
}

// FindOrCreate returns the id of a nearby location or registers data at the query point
func (r *LocationRegistryAdapter) FindOrCreate(ctx context.Context, latitude, longitude float64, data ports.Location) (string, error) {
	existing, err := r.FindNear(ctx, latitude, longitude)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.IsNotFoundError(err) {
		return "", err
	}

	model := &LocationModel{
		ID:                   uuid.NewString(),
		Latitude:             latitude,
		Longitude:            longitude,
		Name:                 data.Name,
		Region:               data.Region,
		Country:              data.Country,
		Elevation:            data.Elevation,
		Timezone:             data.Timezone,
		TimezoneAbbreviation: data.TimezoneAbbreviation,
		UTCOffsetSeconds:     data.UTCOffsetSeconds,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return "", errors.NewAlreadyExistsError("location already registered")
		}
		return "", errors.NewStorageError("failed to register location", err)
	}

	return model.ID, nil
}

// Ping checks the database connection
func (r *LocationRegistryAdapter) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewStorageError("failed to get database handle", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewStorageError("database ping failed", err)
	}
	return nil
}

func modelToRecord(model *LocationModel) *ports.LocationRecord {
	return &ports.LocationRecord{
		ID:        model.ID,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Location: ports.Location{
			Name:                 model.Name,
			Region:               model.Region,
			Country:              model.Country,
			Latitude:             model.Latitude,
			Longitude:            model.Longitude,
			Elevation:            model.Elevation,
			Timezone:             model.Timezone,
			TimezoneAbbreviation: model.TimezoneAbbreviation,
			UTCOffsetSeconds:     model.UTCOffsetSeconds,
		},
		CreatedAt: model.CreatedAt,
	}
}
