package crossing

import "github.com/bookembed/pagecross/embedding"

// Pairwise is crossing counter C1: for all i<j with the same page
// assignment, add one iff the pair can cross. O(m^2); the reference
// implementation used to validate Sweep and DivideAndConquer.
type Pairwise struct{}

var _ embedding.Counter = Pairwise{}

// Count implements embedding.Counter.
func (Pairwise) Count(e *embedding.Embedding) int64 {
	var total int64
	m := e.M()
	for i := 0; i < m; i++ {
		pi := e.PageOf(i)
		for j := i + 1; j < m; j++ {
			if e.PageOf(j) != pi {
				continue
			}
			if e.CanEdgesCross(i, j) {
				total++
			}
		}
	}
	return total
}

// CountPage implements embedding.Counter.
func (Pairwise) CountPage(e *embedding.Embedding, page int) int64 {
	var total int64
	m := e.M()
	for i := 0; i < m; i++ {
		if e.PageOf(i) != page {
			continue
		}
		for j := i + 1; j < m; j++ {
			if e.PageOf(j) != page {
				continue
			}
			if e.CanEdgesCross(i, j) {
				total++
			}
		}
	}
	return total
}
