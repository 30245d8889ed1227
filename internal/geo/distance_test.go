package geo

import (
	"testing"

	"tour-optimizer-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	depot   = models.Coordinate{Lat: 22.47493172, Lon: 88.37574768}
	kasba   = models.Coordinate{Lat: 22.5170472, Lon: 88.3769777}
	ghosh   = models.Coordinate{Lat: 22.5166444, Lon: 88.3771268}
	equator = models.Coordinate{Lat: 0, Lon: 0}
	oneDeg  = models.Coordinate{Lat: 0, Lon: 1}
)

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]models.Coordinate{
		{depot, kasba},
		{kasba, ghosh},
		{equator, oneDeg},
		{{Lat: 51.5, Lon: -0.12}, {Lat: 40.71, Lon: -74.0}},
	}

	for _, f := range []Formula{Geodesic, Haversine} {
		for _, p := range pairs {
			assert.Equal(t, Distance(f, p[0], p[1]), Distance(f, p[1], p[0]), "formula=%s", f)
		}
	}
}

func TestDistance_SelfIsZero(t *testing.T) {
	for _, f := range []Formula{Geodesic, Haversine} {
		for _, c := range []models.Coordinate{depot, kasba, equator} {
			assert.Zero(t, Distance(f, c, c), "formula=%s", f)
		}
	}
}

func TestDistance_KnownValues(t *testing.T) {
	// One degree of longitude on the WGS-84 equator.
	assert.InDelta(t, 111319.49, GeodesicDistance(equator, oneDeg), 0.01)
	assert.InDelta(t, 111194.93, HaversineDistance(equator, oneDeg), 0.01)

	// Depot to the Kasba cluster is roughly 4.7 km; both formulas agree within one percent.
	g := Distance(Geodesic, depot, kasba)
	h := Distance(Haversine, depot, kasba)
	assert.InDelta(t, 4700, g, 150)
	assert.InEpsilon(t, g, h, 0.01)
}

func TestParseFormula(t *testing.T) {
	f, err := ParseFormula("geodesic")
	require.NoError(t, err)
	assert.Equal(t, Geodesic, f)

	f, err = ParseFormula("haversine")
	require.NoError(t, err)
	assert.Equal(t, Haversine, f)

	_, err = ParseFormula("euclidean")
	assert.Error(t, err)
}

func TestNearest(t *testing.T) {
	idx, d := Nearest(Geodesic, models.Coordinate{Lat: 22.5166, Lon: 88.3771}, []models.Coordinate{depot, kasba, ghosh})
	assert.Equal(t, 2, idx)
	assert.Less(t, d, 10.0)

	idx, d = Nearest(Geodesic, depot, nil)
	assert.Equal(t, -1, idx)
	assert.Zero(t, d)
}
