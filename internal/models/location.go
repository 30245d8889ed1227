package models

// Location is a single delivery point: its position in the dataset, the free-text address label
// and its geographic coordinates. Locations are never mutated after loading.
type Location struct {
	ID        int     `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coordinate returns the latitude/longitude pair of the location.
func (l Location) Coordinate() Coordinate {
	return Coordinate{Lat: l.Latitude, Lon: l.Longitude}
}

// Coordinate is a WGS-84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NearbyLocation is a location together with its distance from a query point.
type NearbyLocation struct {
	Location
	DistanceMeters float64 `json:"distance_meters"`
}
