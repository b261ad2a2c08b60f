package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"geoweather.app/internal/adapters/database"
	"geoweather.app/internal/adapters/external"
	"geoweather.app/internal/adapters/infrastructure"
	"geoweather.app/internal/config"
	"geoweather.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type DependencyContainer struct {
	config  DependencyConfig
	db      *gorm.DB
	ports   *ports.ApplicationPorts
	closers []io.Closer
}

type DependencyConfig struct {
	Database config.DatabaseConfig
	Upstream config.UpstreamConfig
	Cache    config.CacheConfig
	// Registerer receives the Prometheus collectors; nil uses the default registry
	Registerer prometheus.Registerer
	// Clock overrides the system clock
	Clock ports.Clock
}

func NewDependencyContainer(depConfig DependencyConfig, appConfig *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: depConfig,
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(appConfig); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "driver", c.config.Database.Driver)

	db, err := database.Open(c.config.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Running database migrations...")
	if err := database.RunMigrations(db); err != nil {
		_ = database.CloseDB(db)
		return fmt.Errorf("run migrations: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts(appConfig *config.Config) error {
	slog.Info("Initializing ports...")

	clock := c.config.Clock
	if clock == nil {
		clock = infrastructure.SystemClock{}
	}
	registerer := c.config.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())
	configProvider := infrastructure.NewConfigProviderAdapter(appConfig)
	weatherMetrics := infrastructure.NewPrometheusWeatherMetrics(registerer, clock)

	// Storage
	registry, err := database.NewLocationRegistryAdapter(c.db, c.config.Cache.MaxDistanceMeters)
	if err != nil {
		return fmt.Errorf("create location registry: %w", err)
	}
	ledger, err := database.NewHistoricalLedgerAdapter(c.db)
	if err != nil {
		return fmt.Errorf("create historical ledger: %w", err)
	}

	store, err := external.NewSnapshotStoreFactory().CreateSnapshotStore(&c.config.Cache, clock)
	if err != nil {
		slog.Error("Failed to create snapshot store", "error", err)
		return fmt.Errorf("create snapshot store: %w", err)
	}
	if closer, ok := store.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}
	slog.Info("Snapshot store initialized",
		"type", c.config.Cache.Type.String(),
		"redis_addr", c.config.Cache.Redis.Addr)

	// Upstream
	catalog, err := external.NewConditionCatalog(c.config.Upstream.ConditionsFile)
	if err != nil {
		return fmt.Errorf("load condition catalog: %w", err)
	}

	gateway, err := c.newGateway(catalog, weatherMetrics, clock)
	if err != nil {
		return fmt.Errorf("create weather gateway: %w", err)
	}

	c.ports = &ports.ApplicationPorts{
		WeatherGateway:   gateway,
		ConditionCatalog: catalog,

		SnapshotStore:    store,
		LocationRegistry: registry,
		HistoricalLedger: ledger,

		WeatherMetrics: weatherMetrics,

		ConfigProvider: configProvider,
		Logger:         logger,
		Clock:          clock,
		Database:       c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) newGateway(catalog ports.ConditionCatalog, metrics ports.WeatherMetrics, clock ports.Clock) (ports.WeatherGateway, error) {
	upstream := c.config.Upstream
	timeout := time.Duration(upstream.TimeoutSeconds) * time.Second
	breakerTimeout := time.Duration(upstream.BreakerTimeoutSeconds) * time.Second

	forecast := external.NewOpenMeteoProviderAdapter(external.OpenMeteoProviderParams{
		ForecastURL:  upstream.ForecastURL,
		ArchiveURL:   upstream.ArchiveURL,
		ForecastDays: upstream.ForecastDays,
		Timeout:      timeout,
		Breaker: external.BreakerSettings{
			MaxFailures: upstream.BreakerMaxFailures,
			OpenTimeout: breakerTimeout,
		},
	})

	conditions := external.NewWeatherAPIProviderAdapter(external.WeatherAPIProviderParams{
		BaseURL:  upstream.ConditionsURL,
		APIKey:   upstream.ConditionsKey,
		Host:     upstream.ConditionsHost,
		Language: upstream.Language,
		Timeout:  timeout,
		Breaker: external.BreakerSettings{
			MaxFailures: upstream.BreakerMaxFailures,
			OpenTimeout: breakerTimeout,
		},
	})

	gateway, err := external.NewWeatherGatewayAdapter(external.WeatherGatewayParams{
		Forecast:     forecast,
		Conditions:   conditions,
		Catalog:      catalog,
		Metrics:      metrics,
		ForecastDays: upstream.ForecastDays,
		Timeout:      timeout,
	})
	if err != nil {
		return nil, err
	}

	if !upstream.EnableLogging {
		return gateway, nil
	}

	// upstream traffic goes to its own JSON log file, falling back to slog
	var requestLogger ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())
	if upstream.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(infrastructure.FileLoggerParams{
			Path:  upstream.LogFilePath,
			Clock: clock,
		})
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			requestLogger = fileLogger
			c.closers = append(c.closers, fileLogger)
			slog.Info("File logging enabled", "path", upstream.LogFilePath)
		}
	}

	slog.Info("Upstream request logging enabled")
	return external.NewWeatherGatewayLoggingDecorator(gateway, requestLogger), nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Cleanup closes the snapshot store, the upstream log file and the database, in that order
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	if c.db != nil {
		if err := database.CloseDB(c.db); err != nil && firstErr == nil {
			firstErr = err
		}
		c.db = nil
	}
	return firstErr
}
