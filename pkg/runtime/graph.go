package runtime

import (
	barleyerrors "github.com/panthios/barley/pkg/errors"
)

// levels computes topological levels over nodes using Kahn's algorithm.
// Level i contains the nodes whose prerequisites all sit in levels < i.
// Edges pointing at nodes outside the graph are ignored, matching the
// scheduler's wait behavior. A cycle yields InternalError(CYCLE).
//
// Node order within a level follows graph insertion order, so the result
// is deterministic for a given builder sequence.
func levels(nodes []*Node) ([][]*Node, error) {
	inGraph := make(map[Id]*Node, len(nodes))
	for _, n := range nodes {
		inGraph[n.id] = n
	}

	indegree := make(map[Id]int, len(nodes))
	dependents := make(map[Id][]*Node, len(nodes))
	for _, n := range nodes {
		if _, ok := indegree[n.id]; !ok {
			indegree[n.id] = 0
		}
		for _, dep := range n.deps {
			if _, ok := inGraph[dep.id]; !ok {
				continue
			}
			indegree[n.id]++
			dependents[dep.id] = append(dependents[dep.id], n)
		}
	}

	var queue []*Node
	for _, n := range nodes {
		if indegree[n.id] == 0 {
			queue = append(queue, n)
		}
	}

	processed := 0
	var result [][]*Node

	for len(queue) > 0 {
		current := queue
		result = append(result, current)

		var next []*Node
		for _, n := range current {
			processed++
			for _, dependent := range dependents[n.id] {
				indegree[dependent.id]--
				if indegree[dependent.id] == 0 {
					next = append(next, dependent)
				}
			}
		}
		queue = next
	}

	if processed != len(nodes) {
		return nil, barleyerrors.NewInternalError(barleyerrors.CodeCycle)
	}

	return result, nil
}
