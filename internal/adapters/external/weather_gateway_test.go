package external

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"geoweather.app/internal/mocks"
	"geoweather.app/internal/ports"
	"geoweather.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gatewayFixture struct {
	forecast   *mocks.ForecastProvider
	conditions *mocks.ConditionsProvider
	metrics    *mocks.WeatherMetrics
	gateway    *WeatherGatewayAdapter
}

func setupGateway(t *testing.T) gatewayFixture {
	t.Helper()

	catalog, err := NewConditionCatalog("")
	require.NoError(t, err)

	f := gatewayFixture{
		forecast:   mocks.NewForecastProvider(t),
		conditions: mocks.NewConditionsProvider(t),
		metrics:    mocks.NewWeatherMetrics(t),
	}
	f.forecast.EXPECT().GetProviderName().Return("open-meteo").Maybe()
	f.conditions.EXPECT().GetProviderName().Return("weatherapi").Maybe()

	f.gateway, err = NewWeatherGatewayAdapter(WeatherGatewayParams{
		Forecast:     f.forecast,
		Conditions:   f.conditions,
		Catalog:      catalog,
		Metrics:      f.metrics,
		ForecastDays: 7,
		Timeout:      time.Second,
	})
	require.NoError(t, err)
	return f
}

func sampleForecast() *ports.ForecastData {
	return &ports.ForecastData{
		Timezone: "Europe/Kyiv",
		Current:  &ports.ForecastCurrent{Temperature: 4, WeatherCode: 3},
		Daily: ports.ForecastDaily{
			Time:        []string{"2024-01-18", "2024-01-19"},
			WeatherCode: []*int{intPtr(3), intPtr(61)},
		},
		Hourly: hourlySeries(48),
	}
}

func TestNewWeatherGatewayAdapter_MissingDependencies(t *testing.T) {
	catalog, err := NewConditionCatalog("")
	require.NoError(t, err)

	valid := WeatherGatewayParams{
		Forecast:     mocks.NewForecastProvider(t),
		Conditions:   mocks.NewConditionsProvider(t),
		Catalog:      catalog,
		Metrics:      mocks.NewWeatherMetrics(t),
		ForecastDays: 7,
	}

	tests := []struct {
		name   string
		mutate func(p *WeatherGatewayParams)
	}{
		{"NoForecast", func(p *WeatherGatewayParams) { p.Forecast = nil }},
		{"NoConditions", func(p *WeatherGatewayParams) { p.Conditions = nil }},
		{"NoCatalog", func(p *WeatherGatewayParams) { p.Catalog = nil }},
		{"NoMetrics", func(p *WeatherGatewayParams) { p.Metrics = nil }},
		{"NoDays", func(p *WeatherGatewayParams) { p.ForecastDays = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.mutate(&params)

			gateway, err := NewWeatherGatewayAdapter(params)

			assert.Nil(t, gateway)
			assert.True(t, errors.IsConfigurationError(err))
		})
	}
}

func TestWeatherGateway_FetchPoint_Success(t *testing.T) {
	f := setupGateway(t)

	f.forecast.EXPECT().Forecast(mock.Anything, 50.45, 30.52).Return(sampleForecast(), nil).Once()
	f.conditions.EXPECT().Conditions(mock.Anything, 50.45, 30.52).Return(&ports.ConditionsData{
		Location: ports.Location{Name: "Kyiv"},
		IsDay:    true,
		UV:       2,
	}, nil).Once()
	f.metrics.EXPECT().RecordUpstreamCall("open-meteo", true, mock.Anything).Once()
	f.metrics.EXPECT().RecordUpstreamCall("weatherapi", true, mock.Anything).Once()

	bundle, err := f.gateway.FetchPoint(context.Background(), 50.45, 30.52)

	require.NoError(t, err)
	require.NotNil(t, bundle.Location)
	assert.Equal(t, "Kyiv", bundle.Location.Name)
	assert.Equal(t, "Europe/Kyiv", bundle.Location.Timezone)
	assert.Equal(t, 2.0, bundle.Current.UV)
	assert.Equal(t, "Overcast", bundle.Current.ConditionText)
	assert.Len(t, bundle.Daily, 2)
	assert.Len(t, bundle.Hourly, 2)
}

func TestWeatherGateway_FetchPoint_ConditionsFailure(t *testing.T) {
	f := setupGateway(t)

	f.forecast.EXPECT().Forecast(mock.Anything, 1.0, 2.0).Return(sampleForecast(), nil).Maybe()
	f.conditions.EXPECT().Conditions(mock.Anything, 1.0, 2.0).Return(nil, stderrors.New("connection refused")).Once()
	f.metrics.EXPECT().RecordUpstreamCall("open-meteo", mock.Anything, mock.Anything).Maybe()
	f.metrics.EXPECT().RecordUpstreamCall("weatherapi", false, mock.Anything).Once()

	bundle, err := f.gateway.FetchPoint(context.Background(), 1, 2)

	assert.Nil(t, bundle)
	assert.True(t, errors.IsUpstreamUnavailableError(err))
}

func TestWeatherGateway_FetchPoint_ForecastFailureKeepsType(t *testing.T) {
	f := setupGateway(t)

	upstreamErr := errors.NewUpstreamUnavailableError("open-meteo forecast request failed", nil)
	f.forecast.EXPECT().Forecast(mock.Anything, 1.0, 2.0).Return(nil, upstreamErr).Once()
	f.conditions.EXPECT().Conditions(mock.Anything, 1.0, 2.0).Return(&ports.ConditionsData{}, nil).Maybe()
	f.metrics.EXPECT().RecordUpstreamCall("open-meteo", false, mock.Anything).Once()
	f.metrics.EXPECT().RecordUpstreamCall("weatherapi", mock.Anything, mock.Anything).Maybe()

	_, err := f.gateway.FetchPoint(context.Background(), 1, 2)

	assert.Same(t, upstreamErr, err)
}

func TestWeatherGateway_FetchRange_WithoutLocation(t *testing.T) {
	f := setupGateway(t)

	start := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 2, 0, 0, 0, 0, time.UTC)
	archive := &ports.ForecastData{
		Current: &ports.ForecastCurrent{Temperature: 1},
		Daily: ports.ForecastDaily{
			Time:        []string{"2023-12-01", "2023-12-02", "2023-12-03"},
			WeatherCode: []*int{intPtr(0), intPtr(1), intPtr(2)},
		},
		Hourly: hourlySeries(24),
	}
	f.forecast.EXPECT().Archive(mock.Anything, 1.0, 2.0, start, end).Return(archive, nil).Once()
	f.metrics.EXPECT().RecordUpstreamCall("open-meteo", true, mock.Anything).Once()

	bundle, err := f.gateway.FetchRange(context.Background(), ports.RangeRequest{
		Latitude: 1, Longitude: 2, Start: start, End: end,
	})

	require.NoError(t, err)
	assert.Nil(t, bundle.Location)
	assert.Nil(t, bundle.Current)
	assert.Nil(t, bundle.Hourly)
	assert.Len(t, bundle.Daily, 2)
}

func TestWeatherGateway_FetchRange_WithLocation(t *testing.T) {
	f := setupGateway(t)

	day := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	archive := &ports.ForecastData{
		Daily: ports.ForecastDaily{Time: []string{"2023-12-01"}, WeatherCode: []*int{intPtr(0)}},
	}
	f.forecast.EXPECT().Archive(mock.Anything, 1.0, 2.0, day, day).Return(archive, nil).Once()
	f.conditions.EXPECT().Conditions(mock.Anything, 1.0, 2.0).Return(&ports.ConditionsData{
		Location: ports.Location{Name: "Somewhere"},
	}, nil).Once()
	f.metrics.EXPECT().RecordUpstreamCall(mock.Anything, true, mock.Anything).Twice()

	bundle, err := f.gateway.FetchRange(context.Background(), ports.RangeRequest{
		Latitude: 1, Longitude: 2, Start: day, End: day, IncludeLocation: true,
	})

	require.NoError(t, err)
	require.NotNil(t, bundle.Location)
	assert.Equal(t, "Somewhere", bundle.Location.Name)
	assert.Len(t, bundle.Daily, 1)
}

func TestWeatherGateway_FetchRange_InvertedRange(t *testing.T) {
	f := setupGateway(t)

	_, err := f.gateway.FetchRange(context.Background(), ports.RangeRequest{
		Start: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestWeatherGateway_GetProviderInfo(t *testing.T) {
	f := setupGateway(t)

	info := f.gateway.GetProviderInfo()

	assert.Equal(t, "open-meteo", info["forecastProvider"])
	assert.Equal(t, "weatherapi", info["conditionsProvider"])
	assert.Equal(t, 7, info["forecastDays"])
	assert.Equal(t, "1s", info["timeout"])
}
