package greedy

import "github.com/bookembed/pagecross/embedding"

// BestPageForEdge moves edgeIdx to whichever page minimizes the total
// crossing count, leaving it in place if its current page already is (or
// ties for) the minimum. It reports whether the edge moved.
//
// Evaluated by brute-force trial over all k pages rather than a closed-form
// delta (unlike SwapGain): moving one edge can change crossings against
// every other edge sharing either page, so there is no bounded-degree
// shortcut analogous to the swap-gain formula (spec.md §4.F).
func BestPageForEdge(e *embedding.Embedding, edgeIdx int) bool {
	k := e.K()
	original := e.PageOf(edgeIdx)

	bestPage := original
	bestCrossings := e.Crossings()

	for page := 0; page < k; page++ {
		if page == original {
			continue
		}
		_ = e.MoveEdgeToPage(edgeIdx, page)
		c := e.Crossings()
		if c < bestCrossings {
			bestCrossings = c
			bestPage = page
		}
	}

	_ = e.MoveEdgeToPage(edgeIdx, bestPage)
	return bestPage != original
}
