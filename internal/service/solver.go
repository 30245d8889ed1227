package service

import (
	"context"
	"fmt"
	"math"

	"tour-optimizer-api/internal/geo"
	"tour-optimizer-api/internal/routing"
)

const numVehicles = 1

// solvedRoute is a closed walk over matrix nodes and its total cost in meters.
type solvedRoute struct {
	Nodes []int
	Total int64
}

// arcCost converts a matrix distance into the solver's integral cost.
func arcCost(meters float64) int64 {
	return int64(math.Round(meters))
}

// solveTour runs the routing solver over matrix with the tour anchored at depot.
func solveTour(ctx context.Context, matrix geo.Matrix, depot int, params routing.SearchParameters) (*solvedRoute, error) {
	manager, err := routing.NewIndexManager(matrix.Size(), numVehicles, depot)
	if err != nil {
		return nil, err
	}
	model := routing.NewModel(manager)

	transit := model.RegisterTransitCallback(func(fromIndex, toIndex int64) int64 {
		return arcCost(matrix[manager.IndexToNode(fromIndex)][manager.IndexToNode(toIndex)])
	})
	if err := model.SetArcCostEvaluatorOfAllVehicles(transit); err != nil {
		return nil, err
	}

	solution, err := model.SolveWithParameters(ctx, params)
	if err != nil {
		return nil, err
	}

	return walkSolution(model, manager, solution)
}

// successors is the part of a solution the route walk reads.
type successors interface {
	Next(index int64) int64
}

// walkSolution follows the successor chain from the vehicle start to its end,
// summing arc costs with the model's own evaluator.
func walkSolution(model *routing.Model, manager *routing.IndexManager, solution successors) (*solvedRoute, error) {
	route := &solvedRoute{}

	index := model.Start(0)
	for !model.IsEnd(index) {
		route.Nodes = append(route.Nodes, manager.IndexToNode(index))

		previous := index
		index = solution.Next(index)
		if index < 0 || len(route.Nodes) > manager.NumIndices() {
			return nil, fmt.Errorf("service: broken successor chain after index %d", previous)
		}
		route.Total += model.GetArcCostForVehicle(previous, index, 0)
	}
	route.Nodes = append(route.Nodes, manager.IndexToNode(index))

	return route, nil
}
