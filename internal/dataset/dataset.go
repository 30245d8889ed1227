// Package dataset holds the delivery points the tour is planned over.
//
// The default dataset is compiled into the binary. The same CSV layout
// (address,latitude,longitude with a header row) is accepted by the importer,
// so a database-backed deployment can be seeded from an identical file.
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tour-optimizer-api/internal/geo"
	"tour-optimizer-api/internal/models"
)

// DepotID is the location ID of the depot: always the first dataset entry.
const DepotID = 0

//go:embed data/delivery_points.csv
var embeddedCSV []byte

// Dataset is an ordered, immutable table of locations. Location IDs equal their position.
type Dataset struct {
	locations []models.Location
}

// Load parses the embedded dataset.
func Load() (*Dataset, error) {
	locations, err := ParseCSV(bytes.NewReader(embeddedCSV))
	if err != nil {
		return nil, fmt.Errorf("dataset: load embedded points: %w", err)
	}
	return New(locations)
}

// New validates locations and wraps them in a Dataset. IDs are reassigned by position.
func New(locations []models.Location) (*Dataset, error) {
	if len(locations) == 0 {
		return nil, errors.New("dataset: at least the depot is required")
	}

	out := make([]models.Location, len(locations))
	for i, loc := range locations {
		if err := ValidateCoordinate(loc.Latitude, loc.Longitude); err != nil {
			return nil, fmt.Errorf("dataset: location %d (%q): %w", i, loc.Address, err)
		}
		loc.ID = i
		out[i] = loc
	}

	return &Dataset{locations: out}, nil
}

// ValidateCoordinate reports whether lat/lon are inside the WGS-84 ranges.
func ValidateCoordinate(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("invalid latitude: %f", lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("invalid longitude: %f", lon)
	}
	return nil
}

// Len returns the number of locations, depot included.
func (d *Dataset) Len() int { return len(d.locations) }

// Depot returns the depot location.
func (d *Dataset) Depot() models.Location { return d.locations[DepotID] }

// Locations returns a copy of all locations in dataset order.
func (d *Dataset) Locations() []models.Location {
	out := make([]models.Location, len(d.locations))
	copy(out, d.locations)
	return out
}

// Coordinates returns the coordinates in dataset order, parallel to Addresses.
func (d *Dataset) Coordinates() []models.Coordinate {
	out := make([]models.Coordinate, len(d.locations))
	for i, loc := range d.locations {
		out[i] = loc.Coordinate()
	}
	return out
}

// Addresses returns the address labels in dataset order, parallel to Coordinates.
func (d *Dataset) Addresses() []string {
	out := make([]string, len(d.locations))
	for i, loc := range d.locations {
		out[i] = loc.Address
	}
	return out
}

// ListLocations lets the dataset stand in for a database-backed location repository.
func (d *Dataset) ListLocations(ctx context.Context) ([]models.Location, error) {
	return d.Locations(), nil
}

// FindNearestLocation returns the point closest to lat/lon on the WGS-84
// ellipsoid, or nil when the dataset is empty.
func (d *Dataset) FindNearestLocation(ctx context.Context, lat, lon float64) (*models.NearbyLocation, error) {
	idx, dist := geo.Nearest(geo.Geodesic, models.Coordinate{Lat: lat, Lon: lon}, d.Coordinates())
	if idx < 0 {
		return nil, nil
	}
	return &models.NearbyLocation{Location: d.locations[idx], DistanceMeters: dist}, nil
}

// ParseCSV reads address,latitude,longitude records after a header row.
func ParseCSV(r io.Reader) ([]models.Location, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var locations []models.Location
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, record[1])
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, record[2])
		}

		locations = append(locations, models.Location{
			ID:        len(locations),
			Address:   strings.TrimSpace(record[0]),
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return locations, nil
}
