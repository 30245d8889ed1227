package routing

import "errors"

var (
	// ErrInvalidModel is returned when the model cannot be searched as configured.
	ErrInvalidModel = errors.New("invalid routing model")
	// ErrNoSolution is returned when the search ends without a feasible route.
	ErrNoSolution = errors.New("no solution found")
)

// Status reports the outcome of the last search on a Model.
type Status int

const (
	StatusNotSolved Status = iota
	StatusSuccess
	StatusFail
	StatusFailTimeout
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusNotSolved:
		return "not_solved"
	case StatusSuccess:
		return "success"
	case StatusFail:
		return "fail"
	case StatusFailTimeout:
		return "fail_timeout"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// TransitCallback returns the cost of travelling directly from one index to another.
type TransitCallback func(fromIndex, toIndex int64) int64

// Model is a single-vehicle routing problem over an IndexManager's index space.
type Model struct {
	manager   *IndexManager
	callbacks []TransitCallback
	arcCost   int
	status    Status
}

// NewModel creates an empty model. An arc cost evaluator must be set before solving.
func NewModel(manager *IndexManager) *Model {
	return &Model{
		manager: manager,
		arcCost: -1,
		status:  StatusNotSolved,
	}
}

// RegisterTransitCallback stores cb and returns its evaluator index.
func (m *Model) RegisterTransitCallback(cb TransitCallback) int {
	m.callbacks = append(m.callbacks, cb)
	return len(m.callbacks) - 1
}

// SetArcCostEvaluatorOfAllVehicles makes a registered callback the cost of every arc.
func (m *Model) SetArcCostEvaluatorOfAllVehicles(evaluator int) error {
	if evaluator < 0 || evaluator >= len(m.callbacks) {
		return ErrInvalidModel
	}
	m.arcCost = evaluator
	return nil
}

// Start returns the start index of vehicle.
func (m *Model) Start(vehicle int) int64 { return m.manager.start }

// End returns the end index of vehicle.
func (m *Model) End(vehicle int) int64 { return m.manager.end }

// IsStart reports whether index is a vehicle start.
func (m *Model) IsStart(index int64) bool { return index == m.manager.start }

// IsEnd reports whether index is a vehicle end.
func (m *Model) IsEnd(index int64) bool { return index == m.manager.end }

// GetArcCostForVehicle evaluates the arc cost between two indices. It is zero when no evaluator is set.
func (m *Model) GetArcCostForVehicle(fromIndex, toIndex int64, vehicle int) int64 {
	if m.arcCost < 0 {
		return 0
	}
	return m.callbacks[m.arcCost](fromIndex, toIndex)
}

// Status returns the outcome of the last search.
func (m *Model) Status() Status { return m.status }

// Manager returns the index manager the model was built on.
func (m *Model) Manager() *IndexManager { return m.manager }
