package ports

import (
	"context"
	"time"
)

// Location describes a named place and its upstream-reported geography
type Location struct {
	Name                 string  `json:"name"`
	Region               string  `json:"region"`
	Country              string  `json:"country"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	Elevation            float64 `json:"elevation"`
	Timezone             string  `json:"timezone"`
	TimezoneAbbreviation string  `json:"timezoneAbbreviation"`
	UTCOffsetSeconds     int     `json:"utcOffsetSeconds"`
}

// CurrentWeather is the merged instantaneous reading for a point
type CurrentWeather struct {
	Time                string  `json:"time"`
	Temperature         float64 `json:"temperature"`
	ApparentTemperature float64 `json:"apparentTemperature"`
	Precipitation       float64 `json:"precipitation"`
	Humidity            float64 `json:"humidity"`
	WindSpeed           float64 `json:"windSpeed"`
	WindDirection       float64 `json:"windDirection"`
	UV                  float64 `json:"uv"`
	IsDay               bool    `json:"isDay"`
	ConditionText       string  `json:"conditionText"`
	ConditionIcon       int     `json:"conditionIcon"`
}

// DailyWeather is the aggregate for one calendar day
type DailyWeather struct {
	Time                   string  `json:"time"`
	TemperatureMax         float64 `json:"temperatureMax"`
	TemperatureMin         float64 `json:"temperatureMin"`
	ApparentTemperatureMax float64 `json:"apparentTemperatureMax"`
	ApparentTemperatureMin float64 `json:"apparentTemperatureMin"`
	Sunrise                string  `json:"sunrise"`
	Sunset                 string  `json:"sunset"`
	PrecipitationSum       float64 `json:"precipitationSum"`
	PrecipitationHours     float64 `json:"precipitationHours"`
	WindSpeedMax           float64 `json:"windSpeedMax"`
	WindGustsMax           float64 `json:"windGustsMax"`
	WindDirection          float64 `json:"windDirection"`
	ConditionText          string  `json:"conditionText"`
	ConditionIcon          int     `json:"conditionIcon"`
}

// HourlyWeather holds one day of hourly readings as parallel columns
type HourlyWeather struct {
	Time                []string  `json:"time"`
	Temperature         []float64 `json:"temperature"`
	ApparentTemperature []float64 `json:"apparentTemperature"`
	Precipitation       []float64 `json:"precipitation"`
	RelativeHumidity    []float64 `json:"relativeHumidity"`
	DewPoint            []float64 `json:"dewPoint"`
	CloudCover          []float64 `json:"cloudCover"`
	SurfacePressure     []float64 `json:"surfacePressure"`
	WindSpeed           []float64 `json:"windSpeed"`
	WindDirection       []float64 `json:"windDirection"`
	WindGusts           []float64 `json:"windGusts"`
	ConditionText       []string  `json:"conditionText"`
	ConditionIcon       []int     `json:"conditionIcon"`
}

// WeatherBundle is the normalized result of one gateway call
type WeatherBundle struct {
	Location *Location
	Current  *CurrentWeather
	Daily    []DailyWeather
	Hourly   []HourlyWeather
}

// RangeRequest asks the gateway for archived daily data between two UTC dates, inclusive
type RangeRequest struct {
	Latitude        float64
	Longitude       float64
	Start           time.Time
	End             time.Time
	IncludeLocation bool
}

// WeatherGateway fans out to the upstream providers and normalizes their answers
type WeatherGateway interface {
	FetchPoint(ctx context.Context, latitude, longitude float64) (*WeatherBundle, error)
	FetchRange(ctx context.Context, req RangeRequest) (*WeatherBundle, error)
	GetProviderInfo() map[string]interface{}
}

// Condition is one entry of the weather code lookup table
type Condition struct {
	Code  int    `json:"code"`
	Day   string `json:"day"`
	Night string `json:"night"`
	Icon  int    `json:"icon"`
}

// ConditionCatalog resolves numeric weather codes; unknown codes map to the fallback entry
type ConditionCatalog interface {
	Lookup(code int) Condition
	All() []Condition
}
