package external

import (
	"context"
	"time"

	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// WeatherGatewayAdapter implements WeatherGateway by querying both providers in parallel
type WeatherGatewayAdapter struct {
	forecast     ports.ForecastProvider
	conditions   ports.ConditionsProvider
	catalog      ports.ConditionCatalog
	metrics      ports.WeatherMetrics
	forecastDays int
	timeout      time.Duration
}

// WeatherGatewayParams holds parameters for creating the gateway
type WeatherGatewayParams struct {
	Forecast     ports.ForecastProvider
	Conditions   ports.ConditionsProvider
	Catalog      ports.ConditionCatalog
	Metrics      ports.WeatherMetrics
	ForecastDays int
	Timeout      time.Duration
}

// NewWeatherGatewayAdapter creates a new gateway
func NewWeatherGatewayAdapter(params WeatherGatewayParams) (*WeatherGatewayAdapter, error) {
	if params.Forecast == nil {
		return nil, errors.NewConfigurationError("forecast provider is required", nil)
	}
	if params.Conditions == nil {
		return nil, errors.NewConfigurationError("conditions provider is required", nil)
	}
	if params.Catalog == nil {
		return nil, errors.NewConfigurationError("condition catalog is required", nil)
	}
	if params.Metrics == nil {
		return nil, errors.NewConfigurationError("metrics is required", nil)
	}
	if params.ForecastDays < 1 {
		return nil, errors.NewConfigurationError("forecast days must be positive", nil)
	}

	return &WeatherGatewayAdapter{
		forecast:     params.Forecast,
		conditions:   params.Conditions,
		catalog:      params.Catalog,
		metrics:      params.Metrics,
		forecastDays: params.ForecastDays,
		timeout:      params.Timeout,
	}, nil
}

// FetchPoint returns current, daily and hourly weather for a point.
// Either provider failing fails the whole call.
func (g *WeatherGatewayAdapter) FetchPoint(ctx context.Context, latitude, longitude float64) (*ports.WeatherBundle, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	var (
		forecast   *ports.ForecastData
		conditions *ports.ConditionsData
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		forecast, err = g.fetchForecast(groupCtx, latitude, longitude)
		return err
	})
	group.Go(func() error {
		var err error
		conditions, err = g.fetchConditions(groupCtx, latitude, longitude)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, asUpstreamError("point weather unavailable", err)
	}

	return MergeBundle(forecast, conditions, g.catalog, g.forecastDays), nil
}

// FetchRange returns archived daily weather; enrichment is requested only when IncludeLocation is set
func (g *WeatherGatewayAdapter) FetchRange(ctx context.Context, req ports.RangeRequest) (*ports.WeatherBundle, error) {
	if req.End.Before(req.Start) {
		return nil, errors.NewValidationError("range end precedes start")
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	var (
		archive    *ports.ForecastData
		conditions *ports.ConditionsData
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		archive, err = g.fetchArchive(groupCtx, req)
		return err
	})
	if req.IncludeLocation {
		group.Go(func() error {
			var err error
			conditions, err = g.fetchConditions(groupCtx, req.Latitude, req.Longitude)
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, asUpstreamError("archived weather unavailable", err)
	}

	days := int(req.End.Sub(req.Start).Hours()/24) + 1
	bundle := MergeBundle(archive, conditions, g.catalog, days)
	bundle.Current = nil
	bundle.Hourly = nil
	return bundle, nil
}

// GetProviderInfo describes the configured providers
func (g *WeatherGatewayAdapter) GetProviderInfo() map[string]interface{} {
	return map[string]interface{}{
		"forecastProvider":   g.forecast.GetProviderName(),
		"conditionsProvider": g.conditions.GetProviderName(),
		"forecastDays":       g.forecastDays,
		"timeout":            g.timeout.String(),
	}
}

func (g *WeatherGatewayAdapter) fetchForecast(ctx context.Context, latitude, longitude float64) (*ports.ForecastData, error) {
	start := time.Now()
	data, err := g.forecast.Forecast(ctx, latitude, longitude)
	g.metrics.RecordUpstreamCall(g.forecast.GetProviderName(), err == nil, time.Since(start))
	return data, err
}

func (g *WeatherGatewayAdapter) fetchArchive(ctx context.Context, req ports.RangeRequest) (*ports.ForecastData, error) {
	start := time.Now()
	data, err := g.forecast.Archive(ctx, req.Latitude, req.Longitude, req.Start, req.End)
	g.metrics.RecordUpstreamCall(g.forecast.GetProviderName(), err == nil, time.Since(start))
	return data, err
}

func (g *WeatherGatewayAdapter) fetchConditions(ctx context.Context, latitude, longitude float64) (*ports.ConditionsData, error) {
	start := time.Now()
	data, err := g.conditions.Conditions(ctx, latitude, longitude)
	g.metrics.RecordUpstreamCall(g.conditions.GetProviderName(), err == nil, time.Since(start))
	return data, err
}

func (g *WeatherGatewayAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func asUpstreamError(message string, err error) error {
	if errors.IsUpstreamUnavailableError(err) || errors.IsValidationError(err) {
		return err
	}
	return errors.NewUpstreamUnavailableError(message, err)
}
