package config

import (
	"fmt"
	"strings"

	"geoweather.app/pkg/errors"
	"geoweather.app/pkg/validation"
	"github.com/kelseyhightower/envconfig"
)

const (
	maxRedisDB           = 15
	maxSnapshotTTLMinute = 1440
	maxPortNumber        = 65535
	maxHistoryDays       = 366
	maxHourlyHorizonDays = 16
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Upstream UpstreamConfig `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	History  HistoryConfig  `split_words:"true"`
	LogLevel string         `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// DatabaseDriver selects the SQL backend for the registry and ledger
type DatabaseDriver string

const (
	DatabaseDriverPostgres DatabaseDriver = "postgres"
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"
)

type DatabaseConfig struct {
	Driver     DatabaseDriver `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string         `envconfig:"DB_HOST" default:"localhost"`
	Port       int            `envconfig:"DB_PORT" default:"5432"`
	User       string         `envconfig:"DB_USER" default:"postgres"`
	Password   string         `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string         `envconfig:"DB_NAME" default:"geoweather"`
	SSLMode    string         `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string         `envconfig:"DB_SQLITE_PATH" default:"geoweather.db"`
}

func (c DatabaseConfig) GetDSN() string {
	if c.Driver == DatabaseDriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type UpstreamConfig struct {
	ForecastURL           string `envconfig:"OPEN_METEO_FORECAST_URL" default:"https://api.open-meteo.com/v1/forecast"`
	ArchiveURL            string `envconfig:"OPEN_METEO_ARCHIVE_URL" default:"https://archive-api.open-meteo.com/v1/archive"`
	ConditionsURL         string `envconfig:"WEATHERAPI_URL" default:"https://weatherapi-com.p.rapidapi.com/forecast.json"`
	ConditionsKey         string `envconfig:"WEATHERAPI_KEY"`
	ConditionsHost        string `envconfig:"WEATHERAPI_HOST" default:"weatherapi-com.p.rapidapi.com"`
	Language              string `envconfig:"WEATHERAPI_LANG" default:"en"`
	TimeoutSeconds        int    `envconfig:"UPSTREAM_TIMEOUT_SECONDS" default:"10"`
	ForecastDays          int    `envconfig:"UPSTREAM_FORECAST_DAYS" default:"7"`
	EnableLogging         bool   `envconfig:"UPSTREAM_ENABLE_LOGGING" default:"true"`
	LogFilePath           string `envconfig:"UPSTREAM_LOG_FILE_PATH" default:"logs/upstream.log"`
	BreakerMaxFailures    uint32 `envconfig:"UPSTREAM_BREAKER_MAX_FAILURES" default:"5"`
	BreakerTimeoutSeconds int    `envconfig:"UPSTREAM_BREAKER_TIMEOUT_SECONDS" default:"60"`
	ConditionsFile        string `envconfig:"CONDITIONS_FILE"`
}

// CacheType represents the type of snapshot store to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type                   CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Enabled                bool        `envconfig:"CACHE_ENABLED" default:"true"`
	SnapshotTTLMinutes     int         `envconfig:"SNAPSHOT_TTL_MINUTES" default:"180"`
	MaxDistanceMeters      float64     `envconfig:"MAX_DISTANCE_METERS" default:"5000"`
	JanitorIntervalMinutes int         `envconfig:"JANITOR_INTERVAL_MINUTES" default:"30"`
	Redis                  RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type HistoryConfig struct {
	MaxDays           int `envconfig:"HISTORY_MAX_DAYS" default:"62"`
	OffsetDays        int `envconfig:"HISTORY_OFFSET_DAYS" default:"7"`
	HourlyHorizonDays int `envconfig:"HOURLY_HORIZON_DAYS" default:"7"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Upstream.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.History.Validate(c.Upstream.ForecastDays); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case DatabaseDriverSQLite:
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case DatabaseDriverPostgres:
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (u *UpstreamConfig) Validate() error {
	urls := map[string]string{
		"OPEN_METEO_FORECAST_URL": u.ForecastURL,
		"OPEN_METEO_ARCHIVE_URL":  u.ArchiveURL,
		"WEATHERAPI_URL":          u.ConditionsURL,
	}
	for name, value := range urls {
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			return errors.NewConfigurationError(fmt.Sprintf("%s must start with http:// or https://", name), nil)
		}
	}
	if !validation.IsNotEmpty(u.ConditionsKey) {
		return errors.NewConfigurationError("WEATHERAPI_KEY must be configured", nil)
	}
	if !validation.IsNotEmpty(u.ConditionsHost) {
		return errors.NewConfigurationError("WEATHERAPI_HOST cannot be empty", nil)
	}
	if u.TimeoutSeconds < 1 {
		return errors.NewConfigurationError("UPSTREAM_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if u.ForecastDays < 1 || u.ForecastDays > maxHourlyHorizonDays {
		return errors.NewConfigurationError("UPSTREAM_FORECAST_DAYS must be between 1 and 16", nil)
	}
	if u.BreakerMaxFailures < 1 {
		return errors.NewConfigurationError("UPSTREAM_BREAKER_MAX_FAILURES must be at least 1", nil)
	}
	if u.BreakerTimeoutSeconds < 1 {
		return errors.NewConfigurationError("UPSTREAM_BREAKER_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if c.SnapshotTTLMinutes < 1 || c.SnapshotTTLMinutes > maxSnapshotTTLMinute {
		return errors.NewConfigurationError("SNAPSHOT_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if c.MaxDistanceMeters <= 0 {
		return errors.NewConfigurationError("MAX_DISTANCE_METERS must be positive", nil)
	}
	if c.JanitorIntervalMinutes < 1 {
		return errors.NewConfigurationError("JANITOR_INTERVAL_MINUTES must be at least 1 minute", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

// Validate checks the lookback window; the hourly horizon cannot exceed what the forecast returns
func (h *HistoryConfig) Validate(forecastDays int) error {
	if h.MaxDays < 1 || h.MaxDays > maxHistoryDays {
		return errors.NewConfigurationError("HISTORY_MAX_DAYS must be between 1 and 366", nil)
	}
	if h.OffsetDays < 0 {
		return errors.NewConfigurationError("HISTORY_OFFSET_DAYS cannot be negative", nil)
	}
	if h.HourlyHorizonDays < 1 || h.HourlyHorizonDays > forecastDays {
		return errors.NewConfigurationError("HOURLY_HORIZON_DAYS must be between 1 and UPSTREAM_FORECAST_DAYS", nil)
	}
	return nil
}
