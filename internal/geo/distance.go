package geo

import (
	"fmt"
	"math"

	"aidconnect/internal/domain"
)

const (
	// EarthRadiusMeters is Earth's mean radius for the Haversine calculation.
	EarthRadiusMeters = 6371000.0
	// MetersPerKm is the conversion factor from meters to kilometers.
	MetersPerKm = 1000.0
)

// HaversineMeters calculates the great-circle distance between two points
// on Earth in meters using the Haversine formula.
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180
	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}

// Between returns the distance in meters between two locations.
func Between(a, b domain.Location) float64 {
	return HaversineMeters(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// IsWithinRadius checks if two locations are within radius meters.
func IsWithinRadius(a, b domain.Location, radiusMeters float64) bool {
	return Between(a, b) <= radiusMeters
}

// Format renders a distance for cards: meters under 1 km, otherwise km
// with one decimal.
func Format(meters float64) string {
	if meters < MetersPerKm {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1f km", meters/MetersPerKm)
}
