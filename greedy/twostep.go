package greedy

import "github.com/bookembed/pagecross/embedding"

// TwoStep alternates full rounds of BestPositionForVertex (over every
// vertex) and BestPageForEdge (over every edge) until a round improves
// nothing, or until should, if non-nil, reports that the caller's budget is
// exhausted (checked once per outer round, spec.md §5). should is typically
// supplied by package harness.
//
// vertexOrder and edgeOrder, if non-nil, give each round's vertex and edge
// traversal order (e.g. an rng.Source permutation); nil means sequential
// index order.
func TwoStep(e *embedding.Embedding, should func() bool, vertexOrder, edgeOrder []int) {
	n := e.N()
	m := e.M()
	if vertexOrder == nil {
		vertexOrder = sequentialOrder(n)
	}
	if edgeOrder == nil {
		edgeOrder = sequentialOrder(m)
	}

	for {
		if should != nil && !should() {
			return
		}
		improved := false

		for _, v := range vertexOrder {
			if BestPositionForVertex(e, v) {
				improved = true
			}
		}
		for _, eid := range edgeOrder {
			if BestPageForEdge(e, eid) {
				improved = true
			}
		}

		if !improved {
			return
		}
	}
}

func sequentialOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
