package ports

import (
	"context"
	"time"
)

// ForecastData is the decoded numeric-provider payload before merging.
// Null upstream values stay nil so the merge can tell "missing" from zero.
type ForecastData struct {
	Latitude             float64
	Longitude            float64
	Elevation            float64
	Timezone             string
	TimezoneAbbreviation string
	UTCOffsetSeconds     int
	Current              *ForecastCurrent
	Daily                ForecastDaily
	Hourly               ForecastHourly
}

type ForecastCurrent struct {
	Time          string
	Temperature   float64
	WindSpeed     float64
	WindDirection float64
	WeatherCode   int
}

type ForecastDaily struct {
	Time                   []string
	WeatherCode            []*int
	TemperatureMax         []*float64
	TemperatureMin         []*float64
	ApparentTemperatureMax []*float64
	ApparentTemperatureMin []*float64
	Sunrise                []string
	Sunset                 []string
	PrecipitationSum       []*float64
	PrecipitationHours     []*float64
	WindSpeedMax           []*float64
	WindGustsMax           []*float64
	WindDirection          []*float64
}

type ForecastHourly struct {
	Time                []string
	WeatherCode         []*int
	Temperature         []*float64
	ApparentTemperature []*float64
	Precipitation       []*float64
	RelativeHumidity    []*float64
	DewPoint            []*float64
	CloudCover          []*float64
	SurfacePressure     []*float64
	WindSpeed           []*float64
	WindDirection       []*float64
	WindGusts           []*float64
}

// ConditionsData is the decoded enrichment-provider payload before merging
type ConditionsData struct {
	Location            Location
	ApparentTemperature float64
	Precipitation       float64
	Humidity            float64
	UV                  float64
	IsDay               bool
}

// ForecastProvider serves forecasts and archived daily series
type ForecastProvider interface {
	Forecast(ctx context.Context, latitude, longitude float64) (*ForecastData, error)
	Archive(ctx context.Context, latitude, longitude float64, start, end time.Time) (*ForecastData, error)
	GetProviderName() string
}

// ConditionsProvider serves the current conditions and place names for a point
type ConditionsProvider interface {
	Conditions(ctx context.Context, latitude, longitude float64) (*ConditionsData, error)
	GetProviderName() string
}
