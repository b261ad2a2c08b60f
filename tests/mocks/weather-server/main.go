// Command weather-server is a deterministic stand-in for the Open-Meteo
// forecast/archive endpoints and the WeatherAPI forecast.json endpoint.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// failLatitude makes every endpoint answer 500, for exercising upstream failures
const failLatitude = 66.6

type daily struct {
	Time                   []string  `json:"time"`
	WeatherCode            []int     `json:"weathercode"`
	TemperatureMax         []float64 `json:"temperature_2m_max"`
	TemperatureMin         []float64 `json:"temperature_2m_min"`
	ApparentTemperatureMax []float64 `json:"apparent_temperature_max"`
	ApparentTemperatureMin []float64 `json:"apparent_temperature_min"`
	Sunrise                []string  `json:"sunrise"`
	Sunset                 []string  `json:"sunset"`
	PrecipitationSum       []float64 `json:"precipitation_sum"`
	PrecipitationHours     []float64 `json:"precipitation_hours"`
	WindSpeedMax           []float64 `json:"windspeed_10m_max"`
	WindGustsMax           []float64 `json:"windgusts_10m_max"`
	WindDirection          []float64 `json:"winddirection_10m_dominant"`
}

type hourly struct {
	Time                []string  `json:"time"`
	WeatherCode         []int     `json:"weathercode"`
	Temperature         []float64 `json:"temperature_2m"`
	ApparentTemperature []float64 `json:"apparent_temperature"`
	Precipitation       []float64 `json:"precipitation"`
	RelativeHumidity    []float64 `json:"relativehumidity_2m"`
	DewPoint            []float64 `json:"dewpoint_2m"`
	CloudCover          []float64 `json:"cloudcover"`
	SurfacePressure     []float64 `json:"surface_pressure"`
	WindSpeed           []float64 `json:"windspeed_10m"`
	WindDirection       []float64 `json:"winddirection_10m"`
	WindGusts           []float64 `json:"windgusts_10m"`
}

type currentWeather struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   int     `json:"weathercode"`
}

type openMeteoResponse struct {
	Latitude             float64         `json:"latitude"`
	Longitude            float64         `json:"longitude"`
	Elevation            float64         `json:"elevation"`
	Timezone             string          `json:"timezone"`
	TimezoneAbbreviation string          `json:"timezone_abbreviation"`
	UTCOffsetSeconds     int             `json:"utc_offset_seconds"`
	CurrentWeather       *currentWeather `json:"current_weather,omitempty"`
	Daily                daily           `json:"daily"`
	Hourly               *hourly         `json:"hourly,omitempty"`
}

var weatherCodes = []int{0, 1, 2, 3, 45, 51, 61, 71, 80, 95}

// seed mixes the coordinates and the day into a stable pseudo-random value in [0, 1)
func seed(lat, lon float64, day time.Time) float64 {
	x := math.Sin(lat*12.9898+lon*78.233+float64(day.Unix()/86400)*0.137) * 43758.5453
	return x - math.Floor(x)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func baseTemperature(lat float64, day time.Time) float64 {
	season := math.Cos(float64(day.YearDay()-196) / 365 * 2 * math.Pi)
	if lat < 0 {
		season = -season
	}
	return 25 - math.Abs(lat)*0.4 + season*8
}

func buildDaily(lat, lon float64, start time.Time, days int) daily {
	var d daily
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		s := seed(lat, lon, day)
		base := baseTemperature(lat, day)
		high := round1(base + 4 + s*3)
		low := round1(base - 4 - s*3)
		date := day.Format(dateLayout)

		d.Time = append(d.Time, date)
		d.WeatherCode = append(d.WeatherCode, weatherCodes[int(s*float64(len(weatherCodes)))])
		d.TemperatureMax = append(d.TemperatureMax, high)
		d.TemperatureMin = append(d.TemperatureMin, low)
		d.ApparentTemperatureMax = append(d.ApparentTemperatureMax, round1(high-1))
		d.ApparentTemperatureMin = append(d.ApparentTemperatureMin, round1(low-2))
		d.Sunrise = append(d.Sunrise, date+"T06:"+fmt.Sprintf("%02d", int(s*59)))
		d.Sunset = append(d.Sunset, date+"T18:"+fmt.Sprintf("%02d", int((1-s)*59)))
		d.PrecipitationSum = append(d.PrecipitationSum, round1(s*12))
		d.PrecipitationHours = append(d.PrecipitationHours, math.Floor(s*10))
		d.WindSpeedMax = append(d.WindSpeedMax, round1(5+s*30))
		d.WindGustsMax = append(d.WindGustsMax, round1(10+s*45))
		d.WindDirection = append(d.WindDirection, math.Floor(s*360))
	}
	return d
}

func buildHourly(lat, lon float64, start time.Time, days int) *hourly {
	h := &hourly{}
	for i := 0; i < days*24; i++ {
		at := start.Add(time.Duration(i) * time.Hour)
		s := seed(lat, lon, at)
		temp := round1(baseTemperature(lat, at) + math.Sin(float64(at.Hour()-9)/24*2*math.Pi)*5)

		h.Time = append(h.Time, at.Format("2006-01-02T15:04"))
		h.WeatherCode = append(h.WeatherCode, weatherCodes[int(s*float64(len(weatherCodes)))])
		h.Temperature = append(h.Temperature, temp)
		h.ApparentTemperature = append(h.ApparentTemperature, round1(temp-1.5))
		h.Precipitation = append(h.Precipitation, round1(s*2))
		h.RelativeHumidity = append(h.RelativeHumidity, math.Floor(40+s*55))
		h.DewPoint = append(h.DewPoint, round1(temp-8))
		h.CloudCover = append(h.CloudCover, math.Floor(s*100))
		h.SurfacePressure = append(h.SurfacePressure, round1(995+s*30))
		h.WindSpeed = append(h.WindSpeed, round1(2+s*20))
		h.WindDirection = append(h.WindDirection, math.Floor(s*360))
		h.WindGusts = append(h.WindGusts, round1(5+s*30))
	}
	return h
}

func coordinates(c *gin.Context, latKey, lonKey string) (float64, float64, bool) {
	lat, errLat := strconv.ParseFloat(c.Query(latKey), 64)
	lon, errLon := strconv.ParseFloat(c.Query(lonKey), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "reason": "invalid coordinates"})
		return 0, 0, false
	}
	if lat == failLatitude {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "reason": "simulated failure"})
		return 0, 0, false
	}
	return lat, lon, true
}

func envelope(lat, lon float64) openMeteoResponse {
	return openMeteoResponse{
		Latitude:             lat,
		Longitude:            lon,
		Elevation:            math.Floor(seed(lat, lon, time.Unix(0, 0)) * 800),
		Timezone:             "GMT",
		TimezoneAbbreviation: "GMT",
	}
}

func forecast(c *gin.Context) {
	lat, lon, ok := coordinates(c, "latitude", "longitude")
	if !ok {
		return
	}
	days, err := strconv.Atoi(c.DefaultQuery("forecast_days", "7"))
	if err != nil || days < 1 || days > 16 {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "reason": "invalid forecast_days"})
		return
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	hours := buildHourly(lat, lon, today, days)
	hour := now.Hour()

	resp := envelope(lat, lon)
	resp.CurrentWeather = &currentWeather{
		Time:          hours.Time[hour],
		Temperature:   hours.Temperature[hour],
		WindSpeed:     hours.WindSpeed[hour],
		WindDirection: hours.WindDirection[hour],
		WeatherCode:   hours.WeatherCode[hour],
	}
	resp.Daily = buildDaily(lat, lon, today, days)
	resp.Hourly = hours
	c.JSON(http.StatusOK, resp)
}

func archive(c *gin.Context) {
	lat, lon, ok := coordinates(c, "latitude", "longitude")
	if !ok {
		return
	}
	start, errStart := time.Parse(dateLayout, c.Query("start_date"))
	end, errEnd := time.Parse(dateLayout, c.Query("end_date"))
	if errStart != nil || errEnd != nil || end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "reason": "invalid date range"})
		return
	}

	resp := envelope(lat, lon)
	resp.Daily = buildDaily(lat, lon, start, int(end.Sub(start).Hours()/24)+1)
	c.JSON(http.StatusOK, resp)
}

func conditions(c *gin.Context) {
	if c.GetHeader("X-RapidAPI-Key") == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "API key required"})
		return
	}

	parts := strings.Split(c.Query("q"), ",")
	if len(parts) != 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "q must be lat,lon"}})
		return
	}
	lat, errLat := strconv.ParseFloat(parts[0], 64)
	lon, errLon := strconv.ParseFloat(parts[1], 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "invalid coordinates"}})
		return
	}
	if lat == failLatitude {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "simulated failure"}})
		return
	}

	now := time.Now().UTC()
	s := seed(lat, lon, now.Truncate(time.Hour))
	c.JSON(http.StatusOK, gin.H{
		"location": gin.H{
			"name":    fmt.Sprintf("Place %.1f,%.1f", lat, lon),
			"region":  "Mock Region",
			"country": "Mockland",
			"lat":     math.Round(lat*100) / 100,
			"lon":     math.Round(lon*100) / 100,
		},
		"current": gin.H{
			"feelslike_c": round1(baseTemperature(lat, now) - 1),
			"precip_mm":   round1(s * 2),
			"humidity":    math.Floor(40 + s*55),
			"uv":          math.Floor(s * 9),
			"is_day":      boolToInt(now.Hour() >= 6 && now.Hour() < 18),
		},
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/v1/forecast", forecast)
	r.GET("/v1/archive", archive)
	r.GET("/forecast.json", conditions)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	slog.Info("Mock weather server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
