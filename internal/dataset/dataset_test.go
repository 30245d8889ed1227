package dataset

import (
	"context"
	"strings"
	"testing"

	"tour-optimizer-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 28, ds.Len())
	assert.Equal(t, "87/10A Raja S.C.Mallick Rd", ds.Depot().Address)
	assert.InDelta(t, 22.47493172, ds.Depot().Latitude, 1e-9)
	assert.InDelta(t, 88.37574768, ds.Depot().Longitude, 1e-9)

	coords := ds.Coordinates()
	addrs := ds.Addresses()
	require.Len(t, coords, ds.Len())
	require.Len(t, addrs, ds.Len())

	// quoted field with embedded commas
	assert.Equal(t, "2/1N,k, GHOSHAL ROAD KOL", addrs[11])

	for i, loc := range ds.Locations() {
		assert.Equal(t, i, loc.ID)
		assert.Equal(t, coords[i], loc.Coordinate())
	}
}

func TestDataset_ListLocationsReturnsCopy(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	locs, err := ds.ListLocations(context.Background())
	require.NoError(t, err)
	locs[0].Address = "changed"

	assert.NotEqual(t, "changed", ds.Depot().Address)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		locations   []models.Location
		expectError bool
	}{
		{
			name:        "empty dataset",
			locations:   nil,
			expectError: true,
		},
		{
			name:      "depot only",
			locations: []models.Location{{Address: "depot", Latitude: 22.5, Longitude: 88.3}},
		},
		{
			name: "latitude out of range",
			locations: []models.Location{
				{Address: "depot", Latitude: 22.5, Longitude: 88.3},
				{Address: "bad", Latitude: 91, Longitude: 88.3},
			},
			expectError: true,
		},
		{
			name: "longitude out of range",
			locations: []models.Location{
				{Address: "depot", Latitude: 22.5, Longitude: -180.5},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := New(tt.locations)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.locations), ds.Len())
		})
	}
}

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    []models.Location
		expectError bool
	}{
		{
			name:  "valid records",
			input: "address,latitude,longitude\nA,1.5,2.5\n\"B, C\",-3,4\n",
			expected: []models.Location{
				{ID: 0, Address: "A", Latitude: 1.5, Longitude: 2.5},
				{ID: 1, Address: "B, C", Latitude: -3, Longitude: 4},
			},
		},
		{
			name:        "invalid latitude",
			input:       "address,latitude,longitude\nA,north,2.5\n",
			expectError: true,
		},
		{
			name:        "wrong column count",
			input:       "address,latitude,longitude\nA,1.5\n",
			expectError: true,
		},
		{
			name:        "missing header",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseCSV(strings.NewReader(tt.input))
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDataset_FindNearestLocation(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name       string
		lat        float64
		lon        float64
		expectedID int
	}{
		{name: "exact depot", lat: 22.47493172, lon: 88.37574768, expectedID: DepotID},
		{name: "next to a delivery point", lat: ds.Locations()[5].Latitude + 0.00001, lon: ds.Locations()[5].Longitude, expectedID: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ds.FindNearestLocation(context.Background(), tt.lat, tt.lon)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.expectedID, result.ID)
			assert.Less(t, result.DistanceMeters, 5.0)
		})
	}
}
