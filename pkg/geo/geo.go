// Package geo holds great-circle helpers shared by the proximity-indexed stores.
package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used by Redis GEO commands
const EarthRadiusMeters = 6372797.560856

// Distance returns the haversine distance in meters between two points
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * EarthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(a)))
}

// BoundingBox is a lat/lon rectangle. MinLon > MaxLon when it wraps the antimeridian.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// WrapsAntimeridian reports whether the box crosses longitude ±180
func (b BoundingBox) WrapsAntimeridian() bool {
	return b.MinLon > b.MaxLon
}

// BoundingBoxAround returns a box containing every point within radius meters of (lat, lon)
func BoundingBoxAround(lat, lon, radius float64) BoundingBox {
	dLat := degrees(radius / EarthRadiusMeters)
	box := BoundingBox{
		MinLat: math.Max(-90, lat-dLat),
		MaxLat: math.Min(90, lat+dLat),
		MinLon: -180,
		MaxLon: 180,
	}

	// near the poles every longitude is in range
	if box.MinLat == -90 || box.MaxLat == 90 {
		return box
	}

	dLon := degrees(radius / (EarthRadiusMeters * math.Cos(radians(lat))))
	if dLon >= 180 {
		return box
	}
	box.MinLon = normalizeLongitude(lon - dLon)
	box.MaxLon = normalizeLongitude(lon + dLon)
	return box
}

func normalizeLongitude(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
