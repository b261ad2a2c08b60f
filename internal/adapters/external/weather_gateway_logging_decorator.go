package external

import (
	"context"
	"time"

	"geoweather.app/internal/ports"
	"geoweather.app/pkg/validation"
)

// WeatherGatewayLoggingDecorator decorates the gateway with structured request logging
type WeatherGatewayLoggingDecorator struct {
	gateway ports.WeatherGateway
	logger  ports.Logger
}

// NewWeatherGatewayLoggingDecorator creates a new logging decorator for the gateway
func NewWeatherGatewayLoggingDecorator(gateway ports.WeatherGateway, logger ports.Logger) ports.WeatherGateway {
	return &WeatherGatewayLoggingDecorator{
		gateway: gateway,
		logger:  logger,
	}
}

// FetchPoint wraps the gateway call with structured logging
func (d *WeatherGatewayLoggingDecorator) FetchPoint(ctx context.Context, latitude, longitude float64) (*ports.WeatherBundle, error) {
	d.logger.Info("Upstream point request started",
		ports.F("latitude", latitude),
		ports.F("longitude", longitude),
		ports.F("event", "request"))

	startTime := time.Now()
	bundle, err := d.gateway.FetchPoint(ctx, latitude, longitude)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Upstream point request failed",
			ports.F("latitude", latitude),
			ports.F("longitude", longitude),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	fields := []ports.Field{
		ports.F("latitude", latitude),
		ports.F("longitude", longitude),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("daily_days", len(bundle.Daily)),
		ports.F("hourly_days", len(bundle.Hourly)),
	}
	if bundle.Location != nil {
		fields = append(fields, ports.F("location", bundle.Location.Name))
	}
	if bundle.Current != nil {
		fields = append(fields, ports.F("temperature", bundle.Current.Temperature))
	}
	d.logger.Info("Upstream point request completed", fields...)

	return bundle, nil
}

// FetchRange wraps the gateway call with structured logging
func (d *WeatherGatewayLoggingDecorator) FetchRange(ctx context.Context, req ports.RangeRequest) (*ports.WeatherBundle, error) {
	start := req.Start.Format(validation.ISODateLayout)
	end := req.End.Format(validation.ISODateLayout)

	d.logger.Info("Upstream range request started",
		ports.F("latitude", req.Latitude),
		ports.F("longitude", req.Longitude),
		ports.F("start", start),
		ports.F("end", end),
		ports.F("include_location", req.IncludeLocation),
		ports.F("event", "request"))

	startTime := time.Now()
	bundle, err := d.gateway.FetchRange(ctx, req)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Upstream range request failed",
			ports.F("start", start),
			ports.F("end", end),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Upstream range request completed",
		ports.F("start", start),
		ports.F("end", end),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("daily_days", len(bundle.Daily)))

	return bundle, nil
}

// GetProviderInfo delegates to the wrapped gateway
func (d *WeatherGatewayLoggingDecorator) GetProviderInfo() map[string]interface{} {
	info := d.gateway.GetProviderInfo()
	info["logging_enabled"] = true
	return info
}
