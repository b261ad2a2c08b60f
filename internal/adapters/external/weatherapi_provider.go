package external

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
	"github.com/sony/gobreaker"
)

// WeatherAPIProviderAdapter implements ConditionsProvider for WeatherAPI.com served through RapidAPI
type WeatherAPIProviderAdapter struct {
	baseURL string
	apiKey  string
	host    string
	query   url.Values
	client  HTTPClient
	breaker *gobreaker.CircuitBreaker
}

// WeatherAPIProviderParams holds parameters for creating the WeatherAPI provider
type WeatherAPIProviderParams struct {
	BaseURL  string
	APIKey   string
	Host     string
	Language string
	Timeout  time.Duration
	Breaker  BreakerSettings
	Client   HTTPClient
}

// WeatherAPIResponse represents the parts of the forecast.json response we merge
type WeatherAPIResponse struct {
	Location struct {
		Name    string  `json:"name"`
		Region  string  `json:"region"`
		Country string  `json:"country"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	} `json:"location"`
	Current struct {
		FeelsLikeC float64 `json:"feelslike_c"`
		PrecipMM   float64 `json:"precip_mm"`
		Humidity   float64 `json:"humidity"`
		UV         float64 `json:"uv"`
		IsDay      int     `json:"is_day"`
	} `json:"current"`
}

// NewWeatherAPIProviderAdapter creates a new WeatherAPI provider adapter
func NewWeatherAPIProviderAdapter(params WeatherAPIProviderParams) *WeatherAPIProviderAdapter {
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: params.Timeout}
	}
	if params.Breaker.Name == "" {
		params.Breaker.Name = "weatherapi"
	}

	query := url.Values{}
	query.Set("days", "0")
	if params.Language != "" {
		query.Set("lang", params.Language)
	}

	return &WeatherAPIProviderAdapter{
		baseURL: params.BaseURL,
		apiKey:  params.APIKey,
		host:    params.Host,
		query:   query,
		client:  client,
		breaker: newCircuitBreaker(params.Breaker),
	}
}

// Conditions retrieves the current conditions and nearest place name for a point
func (p *WeatherAPIProviderAdapter) Conditions(ctx context.Context, latitude, longitude float64) (*ports.ConditionsData, error) {
	query := cloneValues(p.query)
	query.Set("q", fmt.Sprintf("%s,%s",
		strconv.FormatFloat(latitude, 'f', -1, 64),
		strconv.FormatFloat(longitude, 'f', -1, 64)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.NewUpstreamUnavailableError("failed to build WeatherAPI request", err)
	}
	req.Header.Set("X-RapidAPI-Key", p.apiKey)
	req.Header.Set("X-RapidAPI-Host", p.host)

	var apiResp WeatherAPIResponse
	if err := getJSON(ctx, p.client, p.breaker, req, &apiResp); err != nil {
		return nil, errors.NewUpstreamUnavailableError("WeatherAPI request failed", err)
	}

	return &ports.ConditionsData{
		Location: ports.Location{
			Name:      apiResp.Location.Name,
			Region:    apiResp.Location.Region,
			Country:   apiResp.Location.Country,
			Latitude:  apiResp.Location.Lat,
			Longitude: apiResp.Location.Lon,
		},
		ApparentTemperature: apiResp.Current.FeelsLikeC,
		Precipitation:       apiResp.Current.PrecipMM,
		Humidity:            apiResp.Current.Humidity,
		UV:                  apiResp.Current.UV,
		IsDay:               apiResp.Current.IsDay > 0,
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *WeatherAPIProviderAdapter) GetProviderName() string {
	return "weatherapi"
}
