// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"geoweather.app/internal/core/weather"
	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	weatherUseCase   WeatherUseCase
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
}

// WeatherUseCase is the part of the weather core the HTTP adapter depends on
type WeatherUseCase interface {
	Current(ctx context.Context, q weather.Query) (*weather.Weather, error)
	Daily(ctx context.Context, q weather.Query) (*weather.Weather, error)
	Hourly(ctx context.Context, q weather.Query) (*weather.Weather, error)
	History(ctx context.Context, q weather.Query) (*weather.Weather, error)
	Conditions(ctx context.Context) []ports.Condition
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	WeatherUseCase   WeatherUseCase
	MetricsCollector MetricsCollector
	HealthChecker    ports.SystemHealthChecker
	// Gatherer backs GET /metrics; nil uses the default registry
	Gatherer prometheus.Gatherer
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		weatherUseCase:   opts.WeatherUseCase,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.HealthChecker,
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	server.setupRoutes(gatherer)
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes(gatherer prometheus.Gatherer) {
	api := s.router.Group("/api")
	{
		weatherGroup := api.Group("/weather")
		weatherGroup.GET("/current", s.getCurrent)
		weatherGroup.GET("/daily", s.getDaily)
		weatherGroup.GET("/hourly", s.getHourly)
		weatherGroup.GET("/history", s.getHistory)
		weatherGroup.GET("/conditions", s.getConditions)

		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
