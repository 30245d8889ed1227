package geo

import (
	"testing"

	"tour-optimizer-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildMatrix(t *testing.T) {
	coords := []models.Coordinate{depot, kasba, ghosh, equator}

	for _, f := range []Formula{Geodesic, Haversine} {
		m := BuildMatrix(f, coords)

		assert.Equal(t, len(coords), m.Size())
		for i := range m {
			assert.Len(t, m[i], len(coords))
			assert.Zero(t, m[i][i])
			for j := range m[i] {
				assert.Equal(t, m[i][j], m[j][i])
				assert.GreaterOrEqual(t, m[i][j], 0.0)
				if i != j {
					assert.Equal(t, Distance(f, coords[i], coords[j]), m[i][j])
				}
			}
		}
	}
}

func TestBuildMatrix_Empty(t *testing.T) {
	assert.Equal(t, 0, BuildMatrix(Geodesic, nil).Size())
}
