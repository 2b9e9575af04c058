package embedding

// embeddedRank returns the position of edgeIdx within vertex v's current
// incident-edge order (core.Vertex.Edges()), i.e. its "as embedded" rank
// around v. That order is the graph's insertion order unless a caller
// reorders the slice Edges returns; no heuristic in this module does.
func (e *Embedding) embeddedRank(v, edgeIdx int) int {
	for rank, id := range e.problem.Graph.Vertex(v).Edges() {
		if id == edgeIdx {
			return rank
		}
	}
	return -1
}

// CompareEdges orders two edges by (smaller-endpoint-position,
// larger-endpoint-position), ascending (spec.md §4.B). Returns a negative
// number if e1 sorts before e2, positive if after, zero if e1==e2. The final
// "as embedded" rank comparison is reached only when both positions are
// equal, which never happens for two distinct edges of a simple graph.
//
// No counter in package crossing calls it: Sweep sorts with the two
// comparators below, and DivideAndConquer sorts its own position pairs.
func (e *Embedding) CompareEdges(e1, e2 int) int {
	if e1 == e2 {
		return 0
	}
	s1, l1 := e.edgePositions(e1)
	s2, l2 := e.edgePositions(e2)
	if s1 != s2 {
		return s1 - s2
	}
	if l1 != l2 {
		return l1 - l2
	}
	shared := e.spine[s1]
	return e.embeddedRank(shared, e1) - e.embeddedRank(shared, e2)
}

// CompareEdgesOutgoingAsEmbedded orders edges sharing a start vertex by
// *descending* larger-endpoint-position, instead of CompareEdges's
// ascending order on that same key.
//
// Open Question (spec.md §9, decided in SPEC_FULL.md §9.2): the sweep
// counter (package crossing, C2) pushes newly "opened" edges onto a page's
// stack in this order. Two edges sharing a start vertex never cross each
// other (the crossing predicate requires strict inequalities), so the
// open-edges stack must pop them in exactly the order they close, or it
// will spuriously count a later-closing sibling as crossing an
// earlier-closing one. Descending order on the larger endpoint guarantees
// that: the sibling that closes soonest (smallest larger-position) ends up
// on top, so it is the first one popped, with no other still-open sibling
// above it. This is the reverse of CompareEdges's tie-break direction,
// which sorts the same key ascending.
func (e *Embedding) CompareEdgesOutgoingAsEmbedded(e1, e2 int) int {
	if e1 == e2 {
		return 0
	}
	s1, l1 := e.edgePositions(e1)
	s2, l2 := e.edgePositions(e2)
	if s1 != s2 {
		return s1 - s2
	}
	return l2 - l1
}

// CompareEdgesIncomingAsEmbedded orders edges sharing a *larger*-endpoint
// (closing) vertex by descending smaller-endpoint-position: the edge
// opened most recently (nested innermost, hence topmost on the open-edges
// stack) sorts first. The sweep counter closes same-vertex edges in this
// order for the same reason CompareEdgesOutgoingAsEmbedded reverses the
// opening tie-break: siblings sharing an endpoint never cross, so they
// must be popped in the order they were actually stacked.
func (e *Embedding) CompareEdgesIncomingAsEmbedded(e1, e2 int) int {
	if e1 == e2 {
		return 0
	}
	s1, l1 := e.edgePositions(e1)
	s2, l2 := e.edgePositions(e2)
	if l1 != l2 {
		return l1 - l2
	}
	return s2 - s1
}
