package routing

import "fmt"

// IndexManager translates between node ids and solver indices.
//
// Non-depot nodes receive indices 0..n-2 in node order. The vehicle start gets
// index n-1 and the vehicle end gets index n; both resolve to the depot node.
type IndexManager struct {
	numNodes    int
	depot       int
	start       int64
	end         int64
	indexToNode []int
	nodeToIndex []int64
}

// NewIndexManager builds the lookup tables for numNodes nodes served by one vehicle from depot.
func NewIndexManager(numNodes, numVehicles, depot int) (*IndexManager, error) {
	if numNodes < 1 {
		return nil, fmt.Errorf("routing: %w: need at least one node, got %d", ErrInvalidModel, numNodes)
	}
	if numVehicles != 1 {
		return nil, fmt.Errorf("routing: %w: exactly one vehicle is supported, got %d", ErrInvalidModel, numVehicles)
	}
	if depot < 0 || depot >= numNodes {
		return nil, fmt.Errorf("routing: %w: depot %d out of range [0,%d)", ErrInvalidModel, depot, numNodes)
	}

	indexToNode := make([]int, 0, numNodes+1)
	nodeToIndex := make([]int64, numNodes)
	for node := 0; node < numNodes; node++ {
		if node == depot {
			continue
		}
		nodeToIndex[node] = int64(len(indexToNode))
		indexToNode = append(indexToNode, node)
	}

	start := int64(len(indexToNode))
	indexToNode = append(indexToNode, depot)
	nodeToIndex[depot] = start

	end := int64(len(indexToNode))
	indexToNode = append(indexToNode, depot)

	return &IndexManager{
		numNodes:    numNodes,
		depot:       depot,
		start:       start,
		end:         end,
		indexToNode: indexToNode,
		nodeToIndex: nodeToIndex,
	}, nil
}

// IndexToNode returns the node behind index, or -1 if index is unknown.
func (m *IndexManager) IndexToNode(index int64) int {
	if index < 0 || index >= int64(len(m.indexToNode)) {
		return -1
	}
	return m.indexToNode[index]
}

// NodeToIndex returns the index of node, or -1 if node is unknown. The depot maps to the start index.
func (m *IndexManager) NodeToIndex(node int) int64 {
	if node < 0 || node >= m.numNodes {
		return -1
	}
	return m.nodeToIndex[node]
}

// NumNodes returns the number of application nodes.
func (m *IndexManager) NumNodes() int { return m.numNodes }

// NumIndices returns the size of the index space, end index included.
func (m *IndexManager) NumIndices() int { return len(m.indexToNode) }

// Depot returns the depot node.
func (m *IndexManager) Depot() int { return m.depot }
