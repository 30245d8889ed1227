package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour-optimizer-api/internal/geo"
	"tour-optimizer-api/internal/metrics"
	"tour-optimizer-api/internal/models"
	"tour-optimizer-api/internal/routing"

	"github.com/rs/zerolog/log"
)

// ErrOptimizationFailed is returned when the solver produces no tour.
var ErrOptimizationFailed = errors.New("optimization failed")

// TourConfig is the immutable configuration of a TourService.
type TourConfig struct {
	DepotMode             models.DepotMode
	Formula               geo.Formula
	TimeLimit             time.Duration
	FirstSolutionStrategy routing.FirstSolutionStrategy
}

// TourService plans the shortest single-vehicle tour over the delivery points.
type TourService struct {
	repo LocationRepository
	cfg  TourConfig
}

// NewTourService creates a new tour service
func NewTourService(repo LocationRepository, cfg TourConfig) *TourService {
	return &TourService{repo: repo, cfg: cfg}
}

// Plan loads the delivery points, builds the distance matrix and runs one bounded search.
// It blocks for at most the configured time limit.
func (s *TourService) Plan(ctx context.Context) (*models.TourResult, error) {
	started := time.Now()

	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list locations: %w", err)
	}

	problem, err := BuildProblem(locations, s.cfg.DepotMode, s.cfg.Formula)
	if err != nil {
		return nil, err
	}

	var route *solvedRoute
	if problem.Size() <= 1 {
		route = trivialRoute(problem)
	} else {
		route, err = solveTour(ctx, problem.Matrix, problem.Depot, routing.SearchParameters{
			FirstSolutionStrategy: s.cfg.FirstSolutionStrategy,
			LocalSearch:           true,
			TimeLimit:             s.cfg.TimeLimit,
		})
	}
	elapsed := time.Since(started)

	if err != nil {
		metrics.RecordSolve(string(models.TourStatusFailed), elapsed, 0)
		log.Warn().
			Err(err).
			Int("nodes", problem.Size()).
			Dur("time_limit", s.cfg.TimeLimit).
			Msg("tour optimization failed")
		return nil, fmt.Errorf("service: %w: %w", ErrOptimizationFailed, err)
	}

	result := present(problem, route, s.cfg.DepotMode, elapsed)

	metrics.RecordSolve(string(result.Status), elapsed, result.TotalDistanceMeters)
	log.Info().
		Int("stops", len(result.OpenSequence())).
		Int64("distance_m", result.TotalDistanceMeters).
		Dur("duration", elapsed).
		Str("depot_mode", string(s.cfg.DepotMode)).
		Msg("tour solved")

	return result, nil
}

// trivialRoute covers problems with at most one node, which need no search.
func trivialRoute(p *Problem) *solvedRoute {
	if p.Size() == 0 {
		return &solvedRoute{Nodes: []int{}}
	}
	return &solvedRoute{Nodes: []int{p.Depot, p.Depot}}
}

// present translates solver nodes back to locations.
func present(p *Problem, route *solvedRoute, mode models.DepotMode, elapsed time.Duration) *models.TourResult {
	sequence := make([]int, len(route.Nodes))
	stops := make([]models.Location, len(route.Nodes))
	for i, node := range route.Nodes {
		loc := p.Locations[p.NodeLocations[node]]
		sequence[i] = loc.ID
		stops[i] = loc
	}

	return &models.TourResult{
		Status:              models.TourStatusSolved,
		DepotMode:           mode,
		Sequence:            sequence,
		Stops:               stops,
		TotalDistanceMeters: route.Total,
		SolveDuration:       elapsed,
	}
}
