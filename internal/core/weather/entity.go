package weather

import (
	"fmt"
	"time"

	"geoweather.app/internal/ports"
	"geoweather.app/pkg/validation"
)

// Query is a weather request for a point, optionally anchored on a date
type Query struct {
	Latitude     float64
	Longitude    float64
	Date         *time.Time
	Days         int
	WithLocation bool
}

// Weather is the response document shared by every query kind
type Weather struct {
	Location *ports.Location       `json:"location,omitempty"`
	Current  *ports.CurrentWeather `json:"current,omitempty"`
	Daily    []ports.DailyWeather  `json:"daily,omitempty"`
	Hourly   []ports.HourlyWeather `json:"hourly,omitempty"`
}

// IsValid validates the coordinates of the query
func (q Query) IsValid() error {
	if !validation.IsValidLatitude(q.Latitude) {
		return fmt.Errorf("latitude %.4f out of bounds", q.Latitude)
	}
	if !validation.IsValidLongitude(q.Longitude) {
		return fmt.Errorf("longitude %.4f out of bounds", q.Longitude)
	}
	return nil
}

// Day returns the query date truncated to its UTC calendar day
func (q Query) Day() time.Time {
	return truncateDay(*q.Date)
}

func fromSnapshot(s *ports.Snapshot) *Weather {
	location := s.Location
	return &Weather{
		Location: &location,
		Current:  s.Current,
		Daily:    s.Daily,
		Hourly:   s.Hourly,
	}
}
