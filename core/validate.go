package core

import "fmt"

// Validate checks every invariant spec.md §3 names for a Graph:
//   - no self-loops, no parallel edges (guaranteed at construction, but
//     re-checked here for graphs assembled by other means, e.g. after a
//     hand-rolled Clone or test fixture),
//   - sum(degree) == 2*m,
//   - for every edge e, e.Start < e.Target,
//   - for every edge e, e.Index matches its slot in g.edges.
//
// Validate never mutates the graph. It is the "invariant violation" class
// of error from spec.md §7: callers should treat a non-nil return as a bug,
// not a recoverable condition.
func (g *Graph) Validate() error {
	seen := make(map[[2]int]struct{}, len(g.edges))
	degreeSum := 0
	for i, e := range g.edges {
		if e.Index != i {
			return fmt.Errorf("edge at slot %d has index %d: %w", i, e.Index, ErrEdgeIndexMismatch)
		}
		if e.Start == e.Target {
			return fmt.Errorf("edge %d: %w", i, ErrSelfLoop)
		}
		if e.Start >= e.Target {
			return fmt.Errorf("edge %d has start=%d target=%d: %w", i, e.Start, e.Target, ErrEndpointOrder)
		}
		key := [2]int{e.Start, e.Target}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("edge %d duplicates (%d,%d): %w", i, e.Start, e.Target, ErrMultiEdge)
		}
		seen[key] = struct{}{}
	}
	for _, v := range g.vertices {
		degreeSum += len(v.edges)
	}
	if degreeSum != 2*len(g.edges) {
		return fmt.Errorf("degree sum %d != 2*%d: %w", degreeSum, len(g.edges), ErrDegreeSumMismatch)
	}
	return nil
}

// IsConnected reports whether g has a single connected component, a
// precondition several vorder heuristics document (MaxNbr, the
// connectivity-selector family — spec.md §7 "Contract violation").
func (g *Graph) IsConnected() bool {
	n := g.N()
	if n == 0 {
		return true
	}
	visited := make([]bool, n)
	stack := []int{0}
	visited[0] = true
	count := 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range g.Neighbors(u) {
			if !visited[v] {
				visited[v] = true
				count++
				stack = append(stack, v)
			}
		}
	}
	return count == n
}
