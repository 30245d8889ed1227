package routing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// FirstSolutionStrategy selects how the initial route is built.
type FirstSolutionStrategy int

const (
	// PathCheapestArc extends the route from the start with the cheapest arc to an unvisited index.
	PathCheapestArc FirstSolutionStrategy = iota
	// IndexOrder visits indices in increasing order.
	IndexOrder
)

func (s FirstSolutionStrategy) String() string {
	switch s {
	case PathCheapestArc:
		return "path_cheapest_arc"
	case IndexOrder:
		return "index_order"
	default:
		return "unknown"
	}
}

// ParseFirstSolutionStrategy maps a configuration value to a strategy.
func ParseFirstSolutionStrategy(s string) (FirstSolutionStrategy, error) {
	switch s {
	case "path_cheapest_arc":
		return PathCheapestArc, nil
	case "index_order":
		return IndexOrder, nil
	default:
		return 0, fmt.Errorf("routing: unknown first solution strategy %q", s)
	}
}

// SearchParameters control a single search.
type SearchParameters struct {
	FirstSolutionStrategy FirstSolutionStrategy
	// LocalSearch enables 2-opt and or-opt improvement of the first solution.
	LocalSearch bool
	// TimeLimit bounds the whole search. It must be positive.
	TimeLimit time.Duration
}

// DefaultSearchParameters returns path cheapest arc with local search and a 10s limit.
func DefaultSearchParameters() SearchParameters {
	return SearchParameters{
		FirstSolutionStrategy: PathCheapestArc,
		LocalSearch:           true,
		TimeLimit:             10 * time.Second,
	}
}

// SolveWithParameters searches for a minimum-cost route visiting every index once.
//
// The search stops at a local optimum, when the time limit expires or when ctx
// is done. Once a first solution exists, expiry returns the best route found so
// far; before that it fails with ErrNoSolution.
func (m *Model) SolveWithParameters(ctx context.Context, params SearchParameters) (*Assignment, error) {
	if m.arcCost < 0 {
		m.status = StatusInvalid
		return nil, fmt.Errorf("routing: %w: no arc cost evaluator set", ErrInvalidModel)
	}
	if params.TimeLimit <= 0 {
		m.status = StatusFailTimeout
		return nil, fmt.Errorf("routing: %w: time limit %s leaves no search time", ErrNoSolution, params.TimeLimit)
	}

	ctx, cancel := context.WithTimeout(ctx, params.TimeLimit)
	defer cancel()

	s, err := newSearch(ctx, m)
	if err != nil {
		return nil, m.fail(err)
	}

	route, err := s.firstSolution(ctx, params.FirstSolutionStrategy)
	if err != nil {
		return nil, m.fail(err)
	}

	if params.LocalSearch {
		s.improve(ctx, route)
	}

	m.status = StatusSuccess
	return newAssignment(m.manager.NumIndices(), route, s.routeCost(route)), nil
}

func (m *Model) fail(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		m.status = StatusFailTimeout
	default:
		m.status = StatusFail
	}
	return fmt.Errorf("routing: %w: %s: %w", ErrNoSolution, m.status, err)
}

// search holds the arc cost table of one solve.
type search struct {
	start int64
	end   int64
	n     int
	cost  [][]int64
}

func newSearch(ctx context.Context, m *Model) (*search, error) {
	n := m.manager.NumIndices()
	cb := m.callbacks[m.arcCost]

	cost := make([][]int64, n)
	for from := 0; from < n; from++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cost[from] = make([]int64, n)
		for to := 0; to < n; to++ {
			cost[from][to] = cb(int64(from), int64(to))
		}
	}

	return &search{
		start: m.manager.start,
		end:   m.manager.end,
		n:     n,
		cost:  cost,
	}, nil
}

func (s *search) firstSolution(ctx context.Context, strategy FirstSolutionStrategy) ([]int64, error) {
	route := make([]int64, 0, s.n)
	route = append(route, s.start)

	switch strategy {
	case IndexOrder:
		for idx := int64(0); idx < int64(s.n); idx++ {
			if idx != s.start && idx != s.end {
				route = append(route, idx)
			}
		}

	case PathCheapestArc:
		visited := make([]bool, s.n)
		visited[s.start] = true
		visited[s.end] = true

		current := s.start
		for len(route) < s.n-1 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			best := int64(-1)
			bestCost := int64(math.MaxInt64)
			// Strict comparison keeps the lowest index on ties.
			for idx := int64(0); idx < int64(s.n); idx++ {
				if !visited[idx] && s.cost[current][idx] < bestCost {
					best = idx
					bestCost = s.cost[current][idx]
				}
			}
			if best == -1 {
				return nil, errors.New("no unvisited index left to extend the route")
			}

			visited[best] = true
			route = append(route, best)
			current = best
		}

	default:
		return nil, fmt.Errorf("unsupported first solution strategy %d", strategy)
	}

	return append(route, s.end), nil
}

func (s *search) routeCost(route []int64) int64 {
	var total int64
	for i := 1; i < len(route); i++ {
		total += s.cost[route[i-1]][route[i]]
	}
	return total
}
