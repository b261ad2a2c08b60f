package external

import (
	"fmt"
	"testing"

	"geoweather.app/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func hourlySeries(hours int) ports.ForecastHourly {
	series := ports.ForecastHourly{}
	for i := 0; i < hours; i++ {
		series.Time = append(series.Time, fmt.Sprintf("h%02d", i))
		series.Temperature = append(series.Temperature, floatPtr(float64(i)))
		series.WeatherCode = append(series.WeatherCode, intPtr(3))
	}
	return series
}

func TestMergeBundle_Daily(t *testing.T) {
	catalog, err := NewConditionCatalog("")
	require.NoError(t, err)

	forecast := &ports.ForecastData{
		Daily: ports.ForecastDaily{
			Time:           []string{"2024-01-01", "2024-01-02", "2024-01-03"},
			WeatherCode:    []*int{intPtr(0), intPtr(61), nil},
			TemperatureMax: []*float64{floatPtr(5), nil, floatPtr(7)},
			Sunrise:        []string{"07:50"},
		},
	}

	bundle := MergeBundle(forecast, nil, catalog, 7)

	require.Len(t, bundle.Daily, 2)
	assert.Equal(t, "2024-01-01", bundle.Daily[0].Time)
	assert.Equal(t, 5.0, bundle.Daily[0].TemperatureMax)
	assert.Equal(t, "Sunny", bundle.Daily[0].ConditionText)
	assert.Equal(t, "07:50", bundle.Daily[0].Sunrise)
	assert.Equal(t, 0.0, bundle.Daily[1].TemperatureMax)
	assert.Equal(t, "Slight rain", bundle.Daily[1].ConditionText)
	assert.Equal(t, 296, bundle.Daily[1].ConditionIcon)
	assert.Empty(t, bundle.Daily[1].Sunrise)
	assert.Nil(t, bundle.Location)
	assert.Nil(t, bundle.Current)
}

func TestMergeBundle_DailyRespectsDays(t *testing.T) {
	catalog, err := NewConditionCatalog("")
	require.NoError(t, err)

	forecast := &ports.ForecastData{
		Daily: ports.ForecastDaily{
			Time:        []string{"2024-01-01", "2024-01-02", "2024-01-03"},
			WeatherCode: []*int{intPtr(0), intPtr(1), intPtr(2)},
		},
	}

	bundle := MergeBundle(forecast, nil, catalog, 2)

	assert.Len(t, bundle.Daily, 2)
}

func TestMergeBundle_HourlyBuckets(t *testing.T) {
	catalog, err := NewConditionCatalog("")
	require.NoError(t, err)

	hourly := hourlySeries(30)
	hourly.WeatherCode[25] = nil
	hourly.Temperature[26] = nil

	bundle := MergeBundle(&ports.ForecastData{Hourly: hourly}, nil, catalog, 3)

	require.Len(t, bundle.Hourly, 2)
	assert.Len(t, bundle.Hourly[0].Time, 24)
	assert.Equal(t, "h00", bundle.Hourly[0].Time[0])
	assert.Equal(t, "h23", bundle.Hourly[0].Time[23])
	assert.Len(t, bundle.Hourly[1].Time, 6)
	assert.Equal(t, 24.0, bundle.Hourly[1].Temperature[0])
	assert.Equal(t, 0.0, bundle.Hourly[1].Temperature[2])
	assert.Equal(t, "Overcast", bundle.Hourly[1].ConditionText[0])
	assert.Equal(t, "Unknown", bundle.Hourly[1].ConditionText[1])
	assert.Len(t, bundle.Hourly[1].ConditionIcon, 6)
	assert.Len(t, bundle.Hourly[1].WindSpeed, 6)
}

func TestMergeBundle_HourlyRespectsDays(t *testing.T) {
	catalog, err := NewConditionCatalog("")
	require.NoError(t, err)

	bundle := MergeBundle(&ports.ForecastData{Hourly: hourlySeries(72)}, nil, catalog, 2)

	assert.Len(t, bundle.Hourly, 2)
}

func TestMergeBundle_CurrentWithConditions(t *testing.T) {
	catalog, err := NewConditionCatalog("")
	require.NoError(t, err)

	forecast := &ports.ForecastData{
		Elevation:        179,
		Timezone:         "Europe/Kyiv",
		UTCOffsetSeconds: 7200,
		Current:          &ports.ForecastCurrent{Time: "2024-01-18T22:00", Temperature: -3, WeatherCode: 0},
	}
	conditions := &ports.ConditionsData{
		Location:            ports.Location{Name: "Kyiv", Country: "Ukraine", Latitude: 50.43, Longitude: 30.52},
		ApparentTemperature: -8,
		Humidity:            90,
		IsDay:               false,
	}

	bundle := MergeBundle(forecast, conditions, catalog, 1)

	require.NotNil(t, bundle.Location)
	assert.Equal(t, "Kyiv", bundle.Location.Name)
	assert.Equal(t, "Europe/Kyiv", bundle.Location.Timezone)
	assert.Equal(t, 179.0, bundle.Location.Elevation)
	assert.Equal(t, 7200, bundle.Location.UTCOffsetSeconds)

	require.NotNil(t, bundle.Current)
	assert.Equal(t, -3.0, bundle.Current.Temperature)
	assert.Equal(t, -8.0, bundle.Current.ApparentTemperature)
	assert.Equal(t, 90.0, bundle.Current.Humidity)
	assert.False(t, bundle.Current.IsDay)
	assert.Equal(t, "Clear", bundle.Current.ConditionText)
	assert.Equal(t, 113, bundle.Current.ConditionIcon)
}

func TestMergeBundle_CurrentWithoutConditions(t *testing.T) {
	catalog, err := NewConditionCatalog("")
	require.NoError(t, err)

	forecast := &ports.ForecastData{
		Current: &ports.ForecastCurrent{Temperature: 12, WeatherCode: 0},
	}

	bundle := MergeBundle(forecast, nil, catalog, 1)

	require.NotNil(t, bundle.Current)
	assert.True(t, bundle.Current.IsDay)
	assert.Equal(t, "Sunny", bundle.Current.ConditionText)
	assert.Equal(t, 0.0, bundle.Current.ApparentTemperature)
}
