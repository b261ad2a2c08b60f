package external

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"geoweather.app/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) { l.addEntry("DEBUG", msg, fields) }
func (l *testLogger) Info(msg string, fields ...ports.Field)  { l.addEntry("INFO", msg, fields) }
func (l *testLogger) Warn(msg string, fields ...ports.Field)  { l.addEntry("WARN", msg, fields) }
func (l *testLogger) Error(msg string, fields ...ports.Field) { l.addEntry("ERROR", msg, fields) }

func (l *testLogger) addEntry(level, msg string, fields []ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fieldMap := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		fieldMap[f.Key] = f.Value
	}
	l.entries = append(l.entries, logEntry{level: level, message: msg, fields: fieldMap})
}

type stubGateway struct {
	bundle *ports.WeatherBundle
	err    error
}

func (g *stubGateway) FetchPoint(ctx context.Context, latitude, longitude float64) (*ports.WeatherBundle, error) {
	return g.bundle, g.err
}

func (g *stubGateway) FetchRange(ctx context.Context, req ports.RangeRequest) (*ports.WeatherBundle, error) {
	return g.bundle, g.err
}

func (g *stubGateway) GetProviderInfo() map[string]interface{} {
	return map[string]interface{}{"forecastProvider": "stub"}
}

func TestWeatherGatewayLoggingDecorator_FetchPoint(t *testing.T) {
	logger := &testLogger{}
	gateway := &stubGateway{bundle: &ports.WeatherBundle{
		Location: &ports.Location{Name: "Kyiv"},
		Current:  &ports.CurrentWeather{Temperature: 21.5},
		Daily:    make([]ports.DailyWeather, 7),
	}}

	decorator := NewWeatherGatewayLoggingDecorator(gateway, logger)
	bundle, err := decorator.FetchPoint(context.Background(), 50.45, 30.52)

	require.NoError(t, err)
	assert.Equal(t, "Kyiv", bundle.Location.Name)
	require.Len(t, logger.entries, 2)

	assert.Equal(t, "INFO", logger.entries[0].level)
	assert.Equal(t, "Upstream point request started", logger.entries[0].message)
	assert.Equal(t, "request", logger.entries[0].fields["event"])
	assert.Equal(t, 50.45, logger.entries[0].fields["latitude"])

	assert.Equal(t, "INFO", logger.entries[1].level)
	assert.Equal(t, "response", logger.entries[1].fields["event"])
	assert.Equal(t, "Kyiv", logger.entries[1].fields["location"])
	assert.Equal(t, 21.5, logger.entries[1].fields["temperature"])
	assert.Equal(t, 7, logger.entries[1].fields["daily_days"])
	assert.Contains(t, logger.entries[1].fields, "duration_ms")
}

func TestWeatherGatewayLoggingDecorator_FetchPointError(t *testing.T) {
	logger := &testLogger{}
	gateway := &stubGateway{err: errors.New("upstream down")}

	decorator := NewWeatherGatewayLoggingDecorator(gateway, logger)
	bundle, err := decorator.FetchPoint(context.Background(), 1, 2)

	require.Error(t, err)
	assert.Nil(t, bundle)
	require.Len(t, logger.entries, 2)
	assert.Equal(t, "ERROR", logger.entries[1].level)
	assert.Equal(t, "error", logger.entries[1].fields["event"])
	assert.Equal(t, "upstream down", logger.entries[1].fields["error"])
}

func TestWeatherGatewayLoggingDecorator_FetchRange(t *testing.T) {
	logger := &testLogger{}
	gateway := &stubGateway{bundle: &ports.WeatherBundle{Daily: make([]ports.DailyWeather, 3)}}

	decorator := NewWeatherGatewayLoggingDecorator(gateway, logger)
	_, err := decorator.FetchRange(context.Background(), ports.RangeRequest{
		Latitude:        10,
		Longitude:       20,
		Start:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:             time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		IncludeLocation: true,
	})

	require.NoError(t, err)
	require.Len(t, logger.entries, 2)
	assert.Equal(t, "2024-01-01", logger.entries[0].fields["start"])
	assert.Equal(t, "2024-01-03", logger.entries[0].fields["end"])
	assert.Equal(t, true, logger.entries[0].fields["include_location"])
	assert.Equal(t, 3, logger.entries[1].fields["daily_days"])
}

func TestWeatherGatewayLoggingDecorator_GetProviderInfo(t *testing.T) {
	decorator := NewWeatherGatewayLoggingDecorator(&stubGateway{}, &testLogger{})

	info := decorator.GetProviderInfo()

	assert.Equal(t, "stub", info["forecastProvider"])
	assert.Equal(t, true, info["logging_enabled"])
}
