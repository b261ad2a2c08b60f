package infrastructure

import (
	"time"

	"geoweather.app/internal/config"
	"geoweather.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherConfig returns the orchestration settings
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		EnableCache:       c.config.Cache.Enabled,
		SnapshotTTL:       time.Duration(c.config.Cache.SnapshotTTLMinutes) * time.Minute,
		MaxDistanceMeters: c.config.Cache.MaxDistanceMeters,
		HistoryMaxDays:    c.config.History.MaxDays,
		HistoryOffsetDays: c.config.History.OffsetDays,
		HourlyHorizonDays: c.config.History.HourlyHorizonDays,
	}
}

// GetUpstreamConfig returns provider endpoints and client behaviour
func (c *ConfigProviderAdapter) GetUpstreamConfig() ports.UpstreamConfig {
	u := c.config.Upstream
	return ports.UpstreamConfig{
		ForecastURL:        u.ForecastURL,
		ArchiveURL:         u.ArchiveURL,
		ConditionsURL:      u.ConditionsURL,
		ConditionsKey:      u.ConditionsKey,
		ConditionsHost:     u.ConditionsHost,
		Language:           u.Language,
		Timeout:            time.Duration(u.TimeoutSeconds) * time.Second,
		ForecastDays:       u.ForecastDays,
		EnableLogging:      u.EnableLogging,
		LogFilePath:        u.LogFilePath,
		BreakerMaxFailures: u.BreakerMaxFailures,
		BreakerTimeout:     time.Duration(u.BreakerTimeoutSeconds) * time.Second,
		ConditionsFile:     u.ConditionsFile,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetDatabaseConfig returns database configuration
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	return ports.DatabaseConfig{
		Driver:     string(c.config.Database.Driver),
		Host:       c.config.Database.Host,
		Port:       c.config.Database.Port,
		User:       c.config.Database.User,
		Password:   c.config.Database.Password,
		Name:       c.config.Database.Name,
		SSLMode:    c.config.Database.SSLMode,
		SQLitePath: c.config.Database.SQLitePath,
	}
}

// GetCacheConfig returns snapshot store configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
		},
		JanitorInterval: time.Duration(c.config.Cache.JanitorIntervalMinutes) * time.Minute,
	}
}
