package embedding

import "fmt"

// MoveEdgeToPage assigns edgeIdx to page and invalidates the crossing
// cache. page must be in [0,K) or PagePending.
func (e *Embedding) MoveEdgeToPage(edgeIdx, page int) error {
	if page != PagePending && (page < 0 || page >= e.K()) {
		return fmt.Errorf("page %d: %w", page, ErrPageOutOfRange)
	}
	e.distribution[edgeIdx] = page
	e.invalidate()
	return nil
}

// SwapVertices exchanges the spine positions of the two vertices identified
// by vertex index vi, vj, updating both spine and vertexOnSpine and
// invalidating the cache. SwapVertices(v,v) is a no-op on all arrays
// (spec.md §8 invariant 7).
func (e *Embedding) SwapVertices(vi, vj int) {
	if vi == vj {
		return
	}
	pi, pj := e.vertexOnSpine[vi], e.vertexOnSpine[vj]
	e.spine[pi], e.spine[pj] = e.spine[pj], e.spine[pi]
	e.vertexOnSpine[vi], e.vertexOnSpine[vj] = pj, pi
	e.invalidate()
}

// SwapPositions exchanges the vertices sitting at spine positions p and q.
// It is implemented as a swap of the corresponding vertices (spec.md §4.B).
func (e *Embedding) SwapPositions(p, q int) {
	if p == q {
		return
	}
	e.SwapVertices(e.spine[p], e.spine[q])
}

// MoveVertexTo relocates the vertex currently at oldPos to newPos via
// sequential adjacent-position swaps, shifting every vertex in between by
// one slot (spec.md §4.F "O(n·Δ²)" inner primitive relies on this; DESIGN
// NOTES §9 keeps this O(|newPos-oldPos|) sequential-swap semantics
// deliberately, instead of an equivalent-outcome single rotation, to
// preserve reproducibility of any RNG-order-dependent downstream behavior).
// MoveVertexTo(p,p) is a no-op (spec.md §8 invariant 7).
func (e *Embedding) MoveVertexTo(oldPos, newPos int) {
	if oldPos == newPos {
		return
	}
	step := 1
	if newPos < oldPos {
		step = -1
	}
	for p := oldPos; p != newPos; p += step {
		e.SwapPositions(p, p+step)
	}
}

// SetSpine bulk-replaces the spine array, recomputing vertexOnSpine and
// invalidating the cache. spine must be a permutation of [0,N()); callers
// (vorder heuristics writing a full ordering) are responsible for that
// invariant.
func (e *Embedding) SetSpine(spine []int) {
	copy(e.spine, spine)
	for pos, v := range e.spine {
		e.vertexOnSpine[v] = pos
	}
	e.invalidate()
}

// SetVertexOnSpine bulk-replaces the inverse-spine array, recomputing spine
// and invalidating the cache.
func (e *Embedding) SetVertexOnSpine(vertexOnSpine []int) {
	copy(e.vertexOnSpine, vertexOnSpine)
	for v, pos := range e.vertexOnSpine {
		e.spine[pos] = v
	}
	e.invalidate()
}

// SetDistribution bulk-replaces the distribution array and invalidates the
// cache.
func (e *Embedding) SetDistribution(distribution []int) {
	copy(e.distribution, distribution)
	e.invalidate()
}

// CanCross is the book-embedding crossing predicate of spec.md §4.B: given
// two edges' (smaller,larger) spine-position pairs (u,v) and (x,y) with
// u<v, x<y, it returns true iff their intervals interleave:
// (u<x<v<y) or (x<u<y<v). It is independent of page assignment.
func CanCross(u, v, x, y int) bool {
	return (u < x && x < v && v < y) || (x < u && u < y && y < v)
}

// edgePositions returns the (smaller,larger) spine-position pair for the
// edge at index edgeIdx.
func (e *Embedding) edgePositions(edgeIdx int) (small, large int) {
	ed := e.problem.Graph.Edge(edgeIdx)
	ps, pt := e.vertexOnSpine[ed.Start], e.vertexOnSpine[ed.Target]
	if ps < pt {
		return ps, pt
	}
	return pt, ps
}

// EdgePositions exposes edgePositions; counters and optimizers in other
// packages need the (smaller,larger) spine-position pair for every edge.
func (e *Embedding) EdgePositions(edgeIdx int) (small, large int) {
	return e.edgePositions(edgeIdx)
}

// CanEdgesCross reports whether edges e1 and e2 can cross given the
// embedding's current spine, independent of their page assignment.
func (e *Embedding) CanEdgesCross(e1, e2 int) bool {
	s1, l1 := e.edgePositions(e1)
	s2, l2 := e.edgePositions(e2)
	return CanCross(s1, l1, s2, l2)
}

// EdgesCross reports whether edges e1 and e2 actually cross in this
// embedding: same page, and CanEdgesCross.
func (e *Embedding) EdgesCross(e1, e2 int) bool {
	if e.distribution[e1] != e.distribution[e2] {
		return false
	}
	return e.CanEdgesCross(e1, e2)
}
