package vorder

import "github.com/bookembed/pagecross/embedding"

// MaxNbr repeatedly assigns the next window position to the unprocessed
// window member of highest degree, then its unprocessed neighbors in
// increasing degree order, until the window is exhausted (spec.md §4.D).
// Degree here is the static induced-window degree, recomputed fresh each
// time a candidate set is scanned.
//
// MaxNbr requires the window's induced subgraph to be connected (spec.md
// §7); it returns ErrDisconnectedGraph otherwise, and ErrEmptyGraph if the
// window has no vertices.
func MaxNbr(e *embedding.Embedding, w Window) error {
	return maxNbr(e, w, false)
}

// MaxNbrRemoving is MaxNbr's "effective degree" variant: processing a
// vertex decrements its unprocessed neighbors' effective degree by one
// (lazily, without a full graph rescan), and ranking uses that running
// count instead of the static induced degree (spec.md §4.D parenthetical).
// The running count always equals the vertex's number of unprocessed window
// neighbors, so recomputing that number from scratch each iteration would
// rank vertices identically; no test asserts this equivalence.
// Same connectivity precondition as MaxNbr.
func MaxNbrRemoving(e *embedding.Embedding, w Window) error {
	return maxNbr(e, w, true)
}

func maxNbr(e *embedding.Embedding, w Window, removing bool) error {
	n := e.N()
	if err := w.validate(n); err != nil {
		return err
	}
	g := e.Graph()
	members := windowMembers(e, w)
	positions := w.Positions(n)
	if len(positions) == 0 {
		return ErrEmptyGraph
	}
	if !isWindowConnected(g, members) {
		return ErrDisconnectedGraph
	}

	processed := make(map[int]bool, len(members))
	effDegree := make(map[int]int, len(members))
	for v := range members {
		effDegree[v] = subsetDegree(g, v, members)
	}
	degreeOf := func(v int) int {
		if removing {
			return effDegree[v]
		}
		return subsetDegree(g, v, members)
	}

	var order []int
	unprocessedMax := func() int {
		best := -1
		bestDeg := -1
		for v := range members {
			if processed[v] {
				continue
			}
			d := degreeOf(v)
			if d > bestDeg {
				best, bestDeg = v, d
			}
		}
		return best
	}
	markProcessed := func(v int) {
		processed[v] = true
		order = append(order, v)
		if removing {
			for _, nb := range g.Neighbors(v) {
				if members[nb] && !processed[nb] {
					effDegree[nb]--
				}
			}
		}
	}

	for len(order) < len(positions) {
		v := unprocessedMax()
		if v < 0 {
			break
		}
		markProcessed(v)

		var neighbors []int
		for _, nb := range g.Neighbors(v) {
			if members[nb] && !processed[nb] {
				neighbors = append(neighbors, nb)
			}
		}
		for i := 1; i < len(neighbors); i++ {
			for j := i; j > 0 && degreeOf(neighbors[j-1]) > degreeOf(neighbors[j]); j-- {
				neighbors[j-1], neighbors[j] = neighbors[j], neighbors[j-1]
			}
		}
		for _, nb := range neighbors {
			if !processed[nb] {
				markProcessed(nb)
			}
		}
	}

	applyOrder(e, positions, order)
	return nil
}
