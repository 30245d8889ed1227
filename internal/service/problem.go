package service

import (
	"fmt"

	"tour-optimizer-api/internal/dataset"
	"tour-optimizer-api/internal/geo"
	"tour-optimizer-api/internal/models"
)

// Problem is the optimization input derived from the delivery points.
type Problem struct {
	Matrix geo.Matrix
	// NodeLocations maps a matrix node to the position of its location in Locations.
	NodeLocations []int
	// Depot is the matrix node the tour starts and ends at.
	Depot     int
	Locations []models.Location
}

// Size returns the number of optimization nodes.
func (p *Problem) Size() int { return len(p.NodeLocations) }

// BuildProblem selects the optimization nodes for mode and builds their distance matrix.
//
// In DepotInclude mode every location is a node and the depot is node 0. In
// DepotExclude mode the depot is left out and the first delivery point becomes node 0.
func BuildProblem(locations []models.Location, mode models.DepotMode, formula geo.Formula) (*Problem, error) {
	if len(locations) == 0 {
		return nil, fmt.Errorf("service: no locations to route")
	}

	first := 0
	switch mode {
	case models.DepotInclude:
	case models.DepotExclude:
		first = dataset.DepotID + 1
	default:
		return nil, fmt.Errorf("service: unknown depot mode %q", mode)
	}

	nodeLocations := make([]int, 0, len(locations)-first)
	coords := make([]models.Coordinate, 0, len(locations)-first)
	for pos := first; pos < len(locations); pos++ {
		nodeLocations = append(nodeLocations, pos)
		coords = append(coords, locations[pos].Coordinate())
	}

	return &Problem{
		Matrix:        geo.BuildMatrix(formula, coords),
		NodeLocations: nodeLocations,
		Depot:         0,
		Locations:     locations,
	}, nil
}
