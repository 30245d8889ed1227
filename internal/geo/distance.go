// Package geo computes surface distances between delivery points.
package geo

import (
	"fmt"
	"math"

	"tour-optimizer-api/internal/models"

	"github.com/tidwall/geodesic"
)

// Formula selects how the distance between two coordinates is measured.
type Formula string

const (
	// Geodesic solves the inverse problem on the WGS-84 ellipsoid.
	Geodesic Formula = "geodesic"
	// Haversine uses a great circle on a sphere of radius earthRadius.
	Haversine Formula = "haversine"
)

// mean Earth radius in meters
const earthRadius = 6371000

// ParseFormula maps a configuration value to a Formula.
func ParseFormula(s string) (Formula, error) {
	switch f := Formula(s); f {
	case Geodesic, Haversine:
		return f, nil
	default:
		return "", fmt.Errorf("geo: unknown distance formula %q", s)
	}
}

// Distance returns the surface distance in meters between a and b.
// Coordinates are not validated.
func Distance(f Formula, a, b models.Coordinate) float64 {
	if a == b {
		return 0
	}
	if f == Haversine {
		return HaversineDistance(a, b)
	}
	return GeodesicDistance(a, b)
}

// GeodesicDistance is the shortest path along the WGS-84 ellipsoid, in meters.
func GeodesicDistance(a, b models.Coordinate) float64 {
	var s12 float64
	geodesic.WGS84.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, &s12, nil, nil)
	return math.Abs(s12)
}

// HaversineDistance is the great-circle distance on a spherical Earth, in meters.
func HaversineDistance(a, b models.Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	deltaLat := toRadians(b.Lat - a.Lat)
	deltaLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Nearest returns the index of the candidate closest to origin and its distance.
// Ties keep the lower index. It returns -1 for an empty candidate list.
func Nearest(f Formula, origin models.Coordinate, candidates []models.Coordinate) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for i, c := range candidates {
		d := Distance(f, origin, c)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best == -1 {
		return -1, 0
	}
	return best, bestDist
}
