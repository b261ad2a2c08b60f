package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"geoweather.app/internal/adapters/api"
	"geoweather.app/internal/adapters/infrastructure"
	"geoweather.app/internal/config"
	"geoweather.app/internal/core/weather"
	"geoweather.app/internal/ports"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase *weather.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine
	janitor    *infrastructure.SnapshotJanitor

	// Infrastructure
	deps     *DependencyContainer
	ports    *ports.ApplicationPorts
	gatherer prometheus.Gatherer
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(DependencyConfig{
		Database: cfg.Database,
		Upstream: cfg.Upstream,
		Cache:    cfg.Cache,
	}, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, depContainer *DependencyContainer) (*Application, error) {
	app := &Application{
		config:   cfg,
		deps:     depContainer,
		ports:    depContainer.ApplicationPorts(),
		gatherer: prometheus.DefaultGatherer,
	}
	if gatherer, ok := depContainer.config.Registerer.(prometheus.Gatherer); ok {
		app.gatherer = gatherer
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Gateway:  a.ports.WeatherGateway,
		Store:    a.ports.SnapshotStore,
		Registry: a.ports.LocationRegistry,
		Ledger:   a.ports.HistoricalLedger,
		Catalog:  a.ports.ConditionCatalog,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.WeatherMetrics,
		Clock:    a.ports.Clock,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		WeatherMetrics: a.ports.WeatherMetrics,
		Gateway:        a.ports.WeatherGateway,
	})

	checkers := map[string]ports.HealthChecker{
		"snapshotStore": infrastructure.NewSnapshotStoreHealthChecker(a.ports.SnapshotStore, a.config.Cache.Type.String()),
		"upstream":      infrastructure.NewUpstreamHealthChecker(a.ports.WeatherGateway),
	}
	if db, ok := a.ports.Database.(*gorm.DB); ok {
		checkers["database"] = infrastructure.NewDatabaseHealthChecker(db)
	}

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers:       checkers,
		ConfigProvider: a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		WeatherUseCase:   a.weatherUseCase,
		MetricsCollector: metricsCollector,
		HealthChecker:    systemHealthChecker,
		Gatherer:         a.gatherer,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if a.config.Cache.Enabled {
		janitor, err := infrastructure.NewSnapshotJanitor(infrastructure.SnapshotJanitorParams{
			Store:    a.ports.SnapshotStore,
			Logger:   a.ports.Logger,
			Interval: time.Duration(a.config.Cache.JanitorIntervalMinutes) * time.Minute,
		})
		if err != nil {
			return fmt.Errorf("create snapshot janitor: %w", err)
		}
		a.janitor = janitor
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if a.janitor != nil {
		if err := a.janitor.Start(); err != nil {
			return fmt.Errorf("start snapshot janitor: %w", err)
		}
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if a.janitor != nil {
		a.janitor.Stop()
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	// in-flight snapshot writes must land before the store closes
	if err := a.weatherUseCase.Close(ctx); err != nil {
		slog.Warn("Pending snapshot writes did not finish", "error", err)
	}

	if a.deps != nil {
		if err := a.deps.Cleanup(); err != nil {
			slog.Warn("Error releasing resources", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}
