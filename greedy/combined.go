package greedy

import "github.com/bookembed/pagecross/embedding"

// Combined is the strongest local-search operator of spec.md §4.F: for each
// vertex (in order), it first re-pages every incident edge via
// BestPageForEdge, then tries relocating the vertex to every other spine
// position (keeping incident edges re-paged at each candidate position via
// BestPageForEdge), keeping whichever position yielded the fewest
// crossings. Repeats full rounds until one yields no improvement, or until
// should reports the caller's budget is exhausted (checked once per outer
// round).
//
// This trades BestPositionForVertex's O(Delta^2) SwapGain shortcut for a
// full recount at each candidate position (since re-paging changes which
// pairs can cross), so it is more thorough but more expensive per vertex.
func Combined(e *embedding.Embedding, should func() bool, vertexOrder []int) {
	n := e.N()
	if vertexOrder == nil {
		vertexOrder = sequentialOrder(n)
	}

	for {
		if should != nil && !should() {
			return
		}
		improved := false

		for _, v := range vertexOrder {
			if combinedStepForVertex(e, v) {
				improved = true
			}
		}

		if !improved {
			return
		}
	}
}

// combinedStepForVertex repages v's incident edges, then searches every
// spine position for the one minimizing total crossings (repaging at each
// candidate), applying the best one found. Reports whether anything moved.
func combinedStepForVertex(e *embedding.Embedding, v int) bool {
	n := e.N()
	repageIncident(e, v)

	start := e.PositionOf(v)
	bestPos := start
	bestCrossings := e.Crossings()

	for pos := 0; pos < n; pos++ {
		if pos == start {
			continue
		}
		cur := e.PositionOf(v)
		e.MoveVertexTo(cur, pos)
		repageIncident(e, v)
		c := e.Crossings()
		if c < bestCrossings {
			bestCrossings = c
			bestPos = pos
		}
	}

	cur := e.PositionOf(v)
	e.MoveVertexTo(cur, bestPos)
	repageIncident(e, v)
	return bestPos != start
}

// repageIncident runs BestPageForEdge over every edge incident to v.
func repageIncident(e *embedding.Embedding, v int) {
	for _, edgeIdx := range e.Graph().Vertex(v).Edges() {
		BestPageForEdge(e, edgeIdx)
	}
}
