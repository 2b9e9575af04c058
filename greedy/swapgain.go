package greedy

import "github.com/bookembed/pagecross/embedding"

// SwapGain returns the change in total crossing count that would result
// from exchanging the vertices at spine positions p and (p+1)%n (the pair
// wraps to n-1,0 when p==n-1, spec.md §4.F). A positive result means
// crossings would decrease by that amount; it is computed without touching
// the crossing cache.
//
// For every pair of edges (one incident to the left vertex L at p, one
// incident to the right vertex R at p+1) on the same page, with distinct
// "other endpoints" (edges incident to both L and R -- i.e. the L-R edge
// itself, if present -- contribute nothing and are excluded), the pair's
// crossing status before and after the hypothetical swap is evaluated with
// the same CanCross predicate every counter uses; the result is
// (crossingsBefore - crossingsAfter) summed over all such pairs.
func SwapGain(e *embedding.Embedding, p int) int64 {
	n := e.N()
	q := (p + 1) % n
	left := e.SpineAt(p)
	right := e.SpineAt(q)

	g := e.Graph()
	sharedEdge := -1
	for _, eid := range g.Vertex(left).Edges() {
		if g.Edge(eid).Other(left) == right {
			sharedEdge = eid
			break
		}
	}

	var xBefore, xAfter int64
	for _, eL := range g.Vertex(left).Edges() {
		if eL == sharedEdge {
			continue
		}
		otherL := g.Edge(eL).Other(left)
		posOL := e.PositionOf(otherL)
		pageL := e.PageOf(eL)

		for _, eR := range g.Vertex(right).Edges() {
			if eR == sharedEdge {
				continue
			}
			if e.PageOf(eR) != pageL {
				continue
			}
			otherR := g.Edge(eR).Other(right)
			posOR := e.PositionOf(otherR)

			if canCrossUnordered(p, posOL, q, posOR) {
				xBefore++
			}
			if canCrossUnordered(q, posOL, p, posOR) {
				xAfter++
			}
		}
	}
	return xBefore - xAfter
}

// canCrossUnordered sorts each of the two (a,b) pairs before delegating to
// embedding.CanCross, which requires its arguments pre-sorted.
func canCrossUnordered(a, b, c, d int) bool {
	if a > b {
		a, b = b, a
	}
	if c > d {
		c, d = d, c
	}
	return embedding.CanCross(a, b, c, d)
}
