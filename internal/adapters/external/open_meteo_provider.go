package external

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
	"geoweather.app/pkg/validation"
	"github.com/sony/gobreaker"
)

var dailyFields = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"apparent_temperature_max",
	"apparent_temperature_min",
	"sunrise",
	"sunset",
	"precipitation_sum",
	"precipitation_hours",
	"windspeed_10m_max",
	"windgusts_10m_max",
	"winddirection_10m_dominant",
	"weathercode",
}

var hourlyFields = []string{
	"temperature_2m",
	"apparent_temperature",
	"precipitation",
	"relativehumidity_2m",
	"dewpoint_2m",
	"cloudcover",
	"surface_pressure",
	"windspeed_10m",
	"winddirection_10m",
	"windgusts_10m",
	"weathercode",
}

// OpenMeteoProviderAdapter implements ForecastProvider for Open-Meteo
type OpenMeteoProviderAdapter struct {
	forecastURL   string
	archiveURL    string
	forecastQuery url.Values
	archiveQuery  url.Values
	client        HTTPClient
	breaker       *gobreaker.CircuitBreaker
}

// OpenMeteoProviderParams holds parameters for creating the Open-Meteo provider
type OpenMeteoProviderParams struct {
	ForecastURL  string
	ArchiveURL   string
	ForecastDays int
	Timeout      time.Duration
	Breaker      BreakerSettings
	Client       HTTPClient
}

type openMeteoResponse struct {
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	Elevation            float64 `json:"elevation"`
	Timezone             string  `json:"timezone"`
	TimezoneAbbreviation string  `json:"timezone_abbreviation"`
	UTCOffsetSeconds     int     `json:"utc_offset_seconds"`
	CurrentWeather       *struct {
		Time          string  `json:"time"`
		Temperature   float64 `json:"temperature"`
		WindSpeed     float64 `json:"windspeed"`
		WindDirection float64 `json:"winddirection"`
		WeatherCode   float64 `json:"weathercode"`
	} `json:"current_weather"`
	Daily struct {
		Time                   []string   `json:"time"`
		WeatherCode            []*float64 `json:"weathercode"`
		TemperatureMax         []*float64 `json:"temperature_2m_max"`
		TemperatureMin         []*float64 `json:"temperature_2m_min"`
		ApparentTemperatureMax []*float64 `json:"apparent_temperature_max"`
		ApparentTemperatureMin []*float64 `json:"apparent_temperature_min"`
		Sunrise                []string   `json:"sunrise"`
		Sunset                 []string   `json:"sunset"`
		PrecipitationSum       []*float64 `json:"precipitation_sum"`
		PrecipitationHours     []*float64 `json:"precipitation_hours"`
		WindSpeedMax           []*float64 `json:"windspeed_10m_max"`
		WindGustsMax           []*float64 `json:"windgusts_10m_max"`
		WindDirection          []*float64 `json:"winddirection_10m_dominant"`
	} `json:"daily"`
	Hourly struct {
		Time                []string   `json:"time"`
		WeatherCode         []*float64 `json:"weathercode"`
		Temperature         []*float64 `json:"temperature_2m"`
		ApparentTemperature []*float64 `json:"apparent_temperature"`
		Precipitation       []*float64 `json:"precipitation"`
		RelativeHumidity    []*float64 `json:"relativehumidity_2m"`
		DewPoint            []*float64 `json:"dewpoint_2m"`
		CloudCover          []*float64 `json:"cloudcover"`
		SurfacePressure     []*float64 `json:"surface_pressure"`
		WindSpeed           []*float64 `json:"windspeed_10m"`
		WindDirection       []*float64 `json:"winddirection_10m"`
		WindGusts           []*float64 `json:"windgusts_10m"`
	} `json:"hourly"`
}

// NewOpenMeteoProviderAdapter creates a new Open-Meteo provider adapter.
// Query templates are built once and cloned per request.
func NewOpenMeteoProviderAdapter(params OpenMeteoProviderParams) *OpenMeteoProviderAdapter {
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: params.Timeout}
	}
	if params.Breaker.Name == "" {
		params.Breaker.Name = "open-meteo"
	}

	forecastQuery := url.Values{}
	forecastQuery.Set("timezone", "auto")
	forecastQuery.Set("current_weather", "true")
	forecastQuery.Set("daily", strings.Join(dailyFields, ","))
	forecastQuery.Set("hourly", strings.Join(hourlyFields, ","))
	if params.ForecastDays > 0 {
		forecastQuery.Set("forecast_days", strconv.Itoa(params.ForecastDays))
	}

	archiveQuery := url.Values{}
	archiveQuery.Set("timezone", "auto")
	archiveQuery.Set("daily", strings.Join(dailyFields, ","))

	return &OpenMeteoProviderAdapter{
		forecastURL:   params.ForecastURL,
		archiveURL:    params.ArchiveURL,
		forecastQuery: forecastQuery,
		archiveQuery:  archiveQuery,
		client:        client,
		breaker:       newCircuitBreaker(params.Breaker),
	}
}

// Forecast retrieves current, daily and hourly forecasts for a point
func (p *OpenMeteoProviderAdapter) Forecast(ctx context.Context, latitude, longitude float64) (*ports.ForecastData, error) {
	query := cloneValues(p.forecastQuery)
	setCoordinates(query, latitude, longitude)

	var resp openMeteoResponse
	if err := p.get(ctx, p.forecastURL, query, &resp); err != nil {
		return nil, errors.NewUpstreamUnavailableError("open-meteo forecast request failed", err)
	}
	return resp.toForecastData(), nil
}

// Archive retrieves archived daily data for [start, end]
func (p *OpenMeteoProviderAdapter) Archive(ctx context.Context, latitude, longitude float64, start, end time.Time) (*ports.ForecastData, error) {
	if end.Before(start) {
		return nil, errors.NewValidationError("archive end date precedes start date")
	}

	query := cloneValues(p.archiveQuery)
	setCoordinates(query, latitude, longitude)
	query.Set("start_date", start.UTC().Format(validation.ISODateLayout))
	query.Set("end_date", end.UTC().Format(validation.ISODateLayout))

	var resp openMeteoResponse
	if err := p.get(ctx, p.archiveURL, query, &resp); err != nil {
		return nil, errors.NewUpstreamUnavailableError("open-meteo archive request failed", err)
	}
	return resp.toForecastData(), nil
}

// GetProviderName returns the name of this provider
func (p *OpenMeteoProviderAdapter) GetProviderName() string {
	return "open-meteo"
}

func (p *OpenMeteoProviderAdapter) get(ctx context.Context, baseURL string, query url.Values, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	return getJSON(ctx, p.client, p.breaker, req, target)
}

func (r *openMeteoResponse) toForecastData() *ports.ForecastData {
	data := &ports.ForecastData{
		Latitude:             r.Latitude,
		Longitude:            r.Longitude,
		Elevation:            r.Elevation,
		Timezone:             r.Timezone,
		TimezoneAbbreviation: r.TimezoneAbbreviation,
		UTCOffsetSeconds:     r.UTCOffsetSeconds,
		Daily: ports.ForecastDaily{
			Time:                   r.Daily.Time,
			WeatherCode:            codes(r.Daily.WeatherCode),
			TemperatureMax:         r.Daily.TemperatureMax,
			TemperatureMin:         r.Daily.TemperatureMin,
			ApparentTemperatureMax: r.Daily.ApparentTemperatureMax,
			ApparentTemperatureMin: r.Daily.ApparentTemperatureMin,
			Sunrise:                r.Daily.Sunrise,
			Sunset:                 r.Daily.Sunset,
			PrecipitationSum:       r.Daily.PrecipitationSum,
			PrecipitationHours:     r.Daily.PrecipitationHours,
			WindSpeedMax:           r.Daily.WindSpeedMax,
			WindGustsMax:           r.Daily.WindGustsMax,
			WindDirection:          r.Daily.WindDirection,
		},
		Hourly: ports.ForecastHourly{
			Time:                r.Hourly.Time,
			WeatherCode:         codes(r.Hourly.WeatherCode),
			Temperature:         r.Hourly.Temperature,
			ApparentTemperature: r.Hourly.ApparentTemperature,
			Precipitation:       r.Hourly.Precipitation,
			RelativeHumidity:    r.Hourly.RelativeHumidity,
			DewPoint:            r.Hourly.DewPoint,
			CloudCover:          r.Hourly.CloudCover,
			SurfacePressure:     r.Hourly.SurfacePressure,
			WindSpeed:           r.Hourly.WindSpeed,
			WindDirection:       r.Hourly.WindDirection,
			WindGusts:           r.Hourly.WindGusts,
		},
	}
	if r.CurrentWeather != nil {
		data.Current = &ports.ForecastCurrent{
			Time:          r.CurrentWeather.Time,
			Temperature:   r.CurrentWeather.Temperature,
			WindSpeed:     r.CurrentWeather.WindSpeed,
			WindDirection: r.CurrentWeather.WindDirection,
			WeatherCode:   int(r.CurrentWeather.WeatherCode),
		}
	}
	return data
}

func codes(raw []*float64) []*int {
	out := make([]*int, len(raw))
	for i, v := range raw {
		if v != nil {
			code := int(*v)
			out[i] = &code
		}
	}
	return out
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v)+4)
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

func setCoordinates(query url.Values, latitude, longitude float64) {
	query.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
}
