package crossing

import "github.com/bookembed/pagecross/embedding"

// Sweep is crossing counter C2: a single left-to-right walk over spine
// positions, maintaining one open-edges stack per page. O(m + crossings).
//
// At each spine position, closing edges (this vertex is their larger
// endpoint) are processed first, in
// Embedding.CompareEdgesIncomingAsEmbedded order: every edge still open
// above the closing edge on its page's stack crosses it. Those edges are
// popped, counted, then restored to the stack in their original relative
// order (the spec prose elides this restoration step, but it is required
// for correctness: an edge popped while counting a crossing has not itself
// closed, and must remain available to cross edges opened later). Then
// opening edges (this vertex is their smaller endpoint) are pushed, in
// Embedding.CompareEdgesOutgoingAsEmbedded order (spec.md §4.B, §9 Open
// Question 2) -- both orderings exist precisely so that edges sharing an
// endpoint, which can never cross each other, are pushed/popped in the
// order they actually open/close, never spuriously counted against one
// another by the stack's blind "everything above crosses" rule.
type Sweep struct{}

var _ embedding.Counter = Sweep{}

// Count implements embedding.Counter.
func (Sweep) Count(e *embedding.Embedding) int64 {
	return sweepCount(e, -1)
}

// CountPage implements embedding.Counter.
func (Sweep) CountPage(e *embedding.Embedding, page int) int64 {
	return sweepCount(e, page)
}

// sweepCount runs the sweep restricted to onlyPage, or every page when
// onlyPage < 0.
func sweepCount(e *embedding.Embedding, onlyPage int) int64 {
	k := e.K()
	stacks := make([][]int, k)
	var total int64

	n := e.N()
	for pos := 0; pos < n; pos++ {
		v := e.SpineAt(pos)
		incident := e.Graph().Vertex(v).Edges()

		// Closing pass: this vertex is the larger endpoint of the edge.
		var closing []int
		for _, edgeIdx := range incident {
			_, large := e.EdgePositions(edgeIdx)
			if large != pos {
				continue
			}
			if onlyPage >= 0 && e.PageOf(edgeIdx) != onlyPage {
				continue
			}
			closing = append(closing, edgeIdx)
		}
		insertionSortBy(closing, e.CompareEdgesIncomingAsEmbedded)
		for _, edgeIdx := range closing {
			page := e.PageOf(edgeIdx)
			total += closeOnStack(&stacks[page], edgeIdx)
		}

		// Opening pass: this vertex is the smaller endpoint of the edge.
		var opening []int
		for _, edgeIdx := range incident {
			small, _ := e.EdgePositions(edgeIdx)
			if small != pos {
				continue
			}
			if onlyPage >= 0 && e.PageOf(edgeIdx) != onlyPage {
				continue
			}
			opening = append(opening, edgeIdx)
		}
		insertionSortBy(opening, e.CompareEdgesOutgoingAsEmbedded)
		for _, edgeIdx := range opening {
			page := e.PageOf(edgeIdx)
			stacks[page] = append(stacks[page], edgeIdx)
		}
	}
	return total
}

// closeOnStack pops edgeIdx off stack, counting and restoring every edge
// found above it (see Sweep's doc comment).
func closeOnStack(stack *[]int, edgeIdx int) int64 {
	s := *stack
	var above []int
	var count int64
	for len(s) > 0 {
		top := s[len(s)-1]
		s = s[:len(s)-1]
		if top == edgeIdx {
			break
		}
		count++
		above = append(above, top)
	}
	for i := len(above) - 1; i >= 0; i-- {
		s = append(s, above[i])
	}
	*stack = s
	return count
}

// insertionSortBy sorts a small slice of edge indices by cmp. Insertion
// sort is used deliberately: these slices are bounded by a single vertex's
// degree, which is small relative to m in the graphs this module targets.
func insertionSortBy(edges []int, cmp func(a, b int) int) {
	for i := 1; i < len(edges); i++ {
		for j := i; j > 0 && cmp(edges[j-1], edges[j]) > 0; j-- {
			edges[j-1], edges[j] = edges[j], edges[j-1]
		}
	}
}
