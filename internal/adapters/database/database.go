// Package database provides the gorm-backed location registry and historical ledger
package database

import (
	"fmt"

	"geoweather.app/internal/config"
	"geoweather.app/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured SQL backend.
// TranslateError is on so unique violations surface as gorm.ErrDuplicatedKey.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DatabaseDriverPostgres:
		dialector = postgres.Open(cfg.GetDSN())
	case config.DatabaseDriverSQLite:
		dialector = sqlite.Open(cfg.GetDSN())
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported database driver: %s", cfg.Driver), nil)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.NewStorageError("connect to database", err)
	}
	return db, nil
}

// RunMigrations creates or updates the registry and ledger tables
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&LocationModel{}, &HistoricalModel{}); err != nil {
		return errors.NewStorageError("run migrations", err)
	}
	return nil
}

// CloseDB safely closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
