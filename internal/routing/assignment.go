package routing

// Assignment is a solution: the successor of every index on the vehicle route.
type Assignment struct {
	next      []int64
	objective int64
}

func newAssignment(numIndices int, route []int64, objective int64) *Assignment {
	next := make([]int64, numIndices)
	for i := range next {
		next[i] = -1
	}
	for i := 0; i+1 < len(route); i++ {
		next[route[i]] = route[i+1]
	}
	return &Assignment{next: next, objective: objective}
}

// Next returns the index visited after index, or -1 for the end index and unknown indices.
func (a *Assignment) Next(index int64) int64 {
	if index < 0 || index >= int64(len(a.next)) {
		return -1
	}
	return a.next[index]
}

// ObjectiveValue returns the total arc cost of the solution.
func (a *Assignment) ObjectiveValue() int64 { return a.objective }
