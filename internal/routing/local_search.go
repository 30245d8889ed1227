package routing

import "context"

const maxOrOptSegment = 3

// improve applies first-improvement 2-opt and or-opt moves to route in place
// until none improves the cost or ctx is done. route keeps its start and end.
func (s *search) improve(ctx context.Context, route []int64) {
	for ctx.Err() == nil {
		improved := s.twoOpt(ctx, route)
		if s.orOpt(ctx, route) {
			improved = true
		}
		if !improved {
			return
		}
	}
}

// twoOpt reverses route[i..j] when that lowers the cost. Internal arcs of the
// segment are re-evaluated so asymmetric costs stay exact.
func (s *search) twoOpt(ctx context.Context, route []int64) bool {
	last := len(route) - 2
	for i := 1; i < last; i++ {
		if ctx.Err() != nil {
			return false
		}

		prev := route[i-1]
		var forward, backward int64
		for j := i + 1; j <= last; j++ {
			forward += s.cost[route[j-1]][route[j]]
			backward += s.cost[route[j]][route[j-1]]
			next := route[j+1]

			before := s.cost[prev][route[i]] + forward + s.cost[route[j]][next]
			after := s.cost[prev][route[j]] + backward + s.cost[route[i]][next]
			if after < before {
				reverse(route[i : j+1])
				return true
			}
		}
	}
	return false
}

// orOpt moves a segment of up to maxOrOptSegment consecutive indices to the
// cheapest improving position elsewhere on the route, keeping its orientation.
func (s *search) orOpt(ctx context.Context, route []int64) bool {
	for segLen := 1; segLen <= maxOrOptSegment; segLen++ {
		for i := 1; i+segLen <= len(route)-1; i++ {
			if ctx.Err() != nil {
				return false
			}

			first := route[i]
			lastIdx := route[i+segLen-1]
			prev := route[i-1]
			next := route[i+segLen]
			gain := s.cost[prev][first] + s.cost[lastIdx][next] - s.cost[prev][next]

			rest := make([]int64, 0, len(route)-segLen)
			rest = append(rest, route[:i]...)
			rest = append(rest, route[i+segLen:]...)

			for k := 0; k+1 < len(rest); k++ {
				a, b := rest[k], rest[k+1]
				if a == prev && b == next {
					continue
				}
				added := s.cost[a][first] + s.cost[lastIdx][b] - s.cost[a][b]
				if added < gain {
					segment := make([]int64, segLen)
					copy(segment, route[i:i+segLen])

					moved := make([]int64, 0, len(route))
					moved = append(moved, rest[:k+1]...)
					moved = append(moved, segment...)
					moved = append(moved, rest[k+1:]...)
					copy(route, moved)
					return true
				}
			}
		}
	}
	return false
}

func reverse(xs []int64) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
