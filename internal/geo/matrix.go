package geo

import "tour-optimizer-api/internal/models"

// Matrix is a square table of distances in meters; Matrix[i][j] is the distance from point i to point j.
type Matrix [][]float64

// BuildMatrix computes the pairwise distances between coords.
//
// Only the upper triangle is evaluated and mirrored, so the result is exactly
// symmetric, and the diagonal is exactly zero.
func BuildMatrix(f Formula, coords []models.Coordinate) Matrix {
	n := len(coords)
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Distance(f, coords[i], coords[j])
			m[i][j] = d
			m[j][i] = d
		}
	}

	return m
}

// Size returns the matrix dimension.
func (m Matrix) Size() int { return len(m) }
