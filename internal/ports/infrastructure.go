package ports

import "time"

// WeatherConfig represents cache orchestration settings
type WeatherConfig struct {
	EnableCache       bool
	SnapshotTTL       time.Duration
	MaxDistanceMeters float64
	HistoryMaxDays    int
	HistoryOffsetDays int
	HourlyHorizonDays int
}

// UpstreamConfig represents provider endpoints and client behaviour
type UpstreamConfig struct {
	ForecastURL        string
	ArchiveURL         string
	ConditionsURL      string
	ConditionsKey      string
	ConditionsHost     string
	Language           string
	Timeout            time.Duration
	ForecastDays       int
	EnableLogging      bool
	LogFilePath        string
	BreakerMaxFailures uint32
	BreakerTimeout     time.Duration
	ConditionsFile     string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// CacheConfig represents snapshot store configuration
type CacheConfig struct {
	Type            string
	Redis           RedisConfig
	JanitorInterval time.Duration
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetUpstreamConfig() UpstreamConfig
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Clock supplies the current time; tests substitute a fixed one
type Clock interface {
	Now() time.Time
}
