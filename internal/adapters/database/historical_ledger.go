package database

import (
	"context"
	stderrors "errors"
	"time"

	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
	"geoweather.app/pkg/validation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 100

// HistoricalModel is one archived day; (location_id, day) is unique
type HistoricalModel struct {
	ID                     uint   `gorm:"primaryKey"`
	LocationID             string `gorm:"size:36;not null;uniqueIndex:idx_historical_location_day"`
	Day                    string `gorm:"size:10;not null;uniqueIndex:idx_historical_location_day"`
	TemperatureMax         float64
	TemperatureMin         float64
	ApparentTemperatureMax float64
	ApparentTemperatureMin float64
	Sunrise                string
	Sunset                 string
	PrecipitationSum       float64
	PrecipitationHours     float64
	WindSpeedMax           float64
	WindGustsMax           float64
	WindDirection          float64
	ConditionText          string
	ConditionIcon          int
	CreatedAt              time.Time
}

func (HistoricalModel) TableName() string {
	return "historical"
}

// HistoricalLedgerAdapter implements the HistoricalLedger port using GORM
type HistoricalLedgerAdapter struct {
	db *gorm.DB
}

// NewHistoricalLedgerAdapter creates a new historical ledger adapter
func NewHistoricalLedgerAdapter(db *gorm.DB) (*HistoricalLedgerAdapter, error) {
	if db == nil {
		return nil, errors.NewConfigurationError("database cannot be nil", nil)
	}
	return &HistoricalLedgerAdapter{db: db}, nil
}

// FindRange returns the stored days in [start, end], newest first
func (l *HistoricalLedgerAdapter) FindRange(ctx context.Context, locationID string, start, end time.Time) ([]ports.HistoricalRecord, error) {
	if locationID == "" {
		return nil, errors.NewValidationError("location id cannot be empty")
	}

	var models []HistoricalModel
	result := l.db.WithContext(ctx).
		Where("location_id = ? AND day BETWEEN ? AND ?", locationID, dayKey(start), dayKey(end)).
		Order("day desc").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewStorageError("failed to read historical records", result.Error)
	}

	records := make([]ports.HistoricalRecord, 0, len(models))
	for i := range models {
		record, err := modelToHistorical(&models[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// InsertMany writes the records, skipping days that already exist
func (l *HistoricalLedgerAdapter) InsertMany(ctx context.Context, records []ports.HistoricalRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	models := make([]HistoricalModel, 0, len(records))
	for _, record := range records {
		if record.LocationID == "" {
			return 0, errors.NewValidationError("location id cannot be empty")
		}
		if record.Date.IsZero() {
			return 0, errors.NewValidationError("record date cannot be empty")
		}
		models = append(models, historicalToModel(record))
	}

	result := l.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "location_id"}, {Name: "day"}},
			DoNothing: true,
		}).
		CreateInBatches(&models, insertBatchSize)
	if result.Error == nil {
		return result.RowsAffected, nil
	}
	if !stderrors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return 0, errors.NewStorageError("failed to insert historical records", result.Error)
	}

	return l.insertEach(ctx, models)
}

// insertEach is the per-row path for backends that reject the batch on a duplicate
func (l *HistoricalLedgerAdapter) insertEach(ctx context.Context, models []HistoricalModel) (int64, error) {
	var inserted int64
	for i := range models {
		models[i].ID = 0
		err := l.db.WithContext(ctx).Create(&models[i]).Error
		switch {
		case err == nil:
			inserted++
		case stderrors.Is(err, gorm.ErrDuplicatedKey):
			// already present
		default:
			return inserted, errors.NewStorageError("failed to insert historical record", err)
		}
	}
	return inserted, nil
}

// Count returns the number of stored days for a location
func (l *HistoricalLedgerAdapter) Count(ctx context.Context, locationID string) (int64, error) {
	var count int64
	result := l.db.WithContext(ctx).Model(&HistoricalModel{}).Where("location_id = ?", locationID).Count(&count)
	if result.Error != nil {
		return 0, errors.NewStorageError("failed to count historical records", result.Error)
	}
	return count, nil
}

func dayKey(t time.Time) string {
	return t.UTC().Format(validation.ISODateLayout)
}

func historicalToModel(record ports.HistoricalRecord) HistoricalModel {
	w := record.Weather
	return HistoricalModel{
		LocationID:             record.LocationID,
		Day:                    dayKey(record.Date),
		TemperatureMax:         w.TemperatureMax,
		TemperatureMin:         w.TemperatureMin,
		ApparentTemperatureMax: w.ApparentTemperatureMax,
		ApparentTemperatureMin: w.ApparentTemperatureMin,
		Sunrise:                w.Sunrise,
		Sunset:                 w.Sunset,
		PrecipitationSum:       w.PrecipitationSum,
		PrecipitationHours:     w.PrecipitationHours,
		WindSpeedMax:           w.WindSpeedMax,
		WindGustsMax:           w.WindGustsMax,
		WindDirection:          w.WindDirection,
		ConditionText:          w.ConditionText,
		ConditionIcon:          w.ConditionIcon,
	}
}

func modelToHistorical(model *HistoricalModel) (ports.HistoricalRecord, error) {
	date, err := validation.ParseISODate(model.Day)
	if err != nil {
		return ports.HistoricalRecord{}, errors.NewStorageError("corrupt historical day "+model.Day, err)
	}
	return ports.HistoricalRecord{
		LocationID: model.LocationID,
		Date:       date,
		Weather: ports.DailyWeather{
			Time:                   model.Day,
			TemperatureMax:         model.TemperatureMax,
			TemperatureMin:         model.TemperatureMin,
			ApparentTemperatureMax: model.ApparentTemperatureMax,
			ApparentTemperatureMin: model.ApparentTemperatureMin,
			Sunrise:                model.Sunrise,
			Sunset:                 model.Sunset,
			PrecipitationSum:       model.PrecipitationSum,
			PrecipitationHours:     model.PrecipitationHours,
			WindSpeedMax:           model.WindSpeedMax,
			WindGustsMax:           model.WindGustsMax,
			WindDirection:          model.WindDirection,
			ConditionText:          model.ConditionText,
			ConditionIcon:          model.ConditionIcon,
		},
	}, nil
}
