package validation

import (
	"strings"
	"time"
)

// ISODateLayout is the calendar date layout accepted on the wire.
const ISODateLayout = "2006-01-02"

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidLatitude reports whether lat is within [-90, 90]
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude reports whether lon is within [-180, 180]
func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

// IsISODate reports whether s is a YYYY-MM-DD calendar date
func IsISODate(s string) bool {
	_, err := ParseISODate(s)
	return err == nil
}

// ParseISODate parses a YYYY-MM-DD date as UTC midnight
func ParseISODate(s string) (time.Time, error) {
	return time.ParseInLocation(ISODateLayout, strings.TrimSpace(s), time.UTC)
}
