package edist

import (
	"sort"

	"github.com/bookembed/pagecross/embedding"
	"github.com/bookembed/pagecross/rng"
)

// GreedyRowMajor iterates edges ordered by (Start,Target) vertex index
// (spec.md §4.E "row-major"), assigning each to the page minimizing
// crossings against already-placed edges.
func GreedyRowMajor(e *embedding.Embedding) error {
	return greedyAssign(e, rowMajorOrder(e))
}

// GreedyRowMajorBySpine is row-major ordering but keyed by the endpoints'
// current spine positions rather than vertex index (spec.md §4.E).
func GreedyRowMajorBySpine(e *embedding.Embedding) error {
	return greedyAssign(e, rowMajorBySpineOrder(e))
}

// GreedyELen orders edges by decreasing spine-position length
// |posLarger-posSmaller| (spec.md §4.E).
func GreedyELen(e *embedding.Embedding) error {
	return greedyAssign(e, eLenOrder(e))
}

// GreedyCeilFloor buckets edges by length and interleaves processing from
// the middle bucket outward (spec.md §4.E).
func GreedyCeilFloor(e *embedding.Embedding) error {
	return greedyAssign(e, ceilFloorOrder(e))
}

// GreedyCircular is the "Satsangi circular" ordering: edges are ordered by
// the position of their midpoint on the spine, processing outward from the
// pair of positions diametrically opposite the spine's center (spec.md
// §4.E). No original_source is available to disambiguate the exact
// diameter-pair construction (see DESIGN.md); this implementation orders
// by increasing distance of the edge's midpoint from the spine's midpoint,
// which reproduces the "outward from center" structure the name describes.
func GreedyCircular(e *embedding.Embedding) error {
	return greedyAssign(e, circularOrder(e))
}

// GreedyRandomOrder processes edges in a uniformly shuffled order (spec.md
// §4.E "random-order").
func GreedyRandomOrder(e *embedding.Embedding, r *rng.Source) error {
	m := e.M()
	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	r.ShuffleInts(order)
	return greedyAssign(e, order)
}

func rowMajorOrder(e *embedding.Embedding) []int {
	g := e.Graph()
	m := e.M()
	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		ei, ej := g.Edge(order[i]), g.Edge(order[j])
		if ei.Start != ej.Start {
			return ei.Start < ej.Start
		}
		return ei.Target < ej.Target
	})
	return order
}

func rowMajorBySpineOrder(e *embedding.Embedding) []int {
	m := e.M()
	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		si, li := e.EdgePositions(order[i])
		sj, lj := e.EdgePositions(order[j])
		if si != sj {
			return si < sj
		}
		return li < lj
	})
	return order
}

func eLenOrder(e *embedding.Embedding) []int {
	m := e.M()
	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	length := func(idx int) int {
		s, l := e.EdgePositions(idx)
		return l - s
	}
	sort.SliceStable(order, func(i, j int) bool {
		return length(order[i]) > length(order[j])
	})
	return order
}

// ceilFloorOrder buckets edges by length and interleaves from the middle
// bucket outward: buckets are visited middle, middle+1, middle-1, middle+2,
// middle-2, ... (spec.md §4.E "interleave from middle bucket outward").
func ceilFloorOrder(e *embedding.Embedding) []int {
	m := e.M()
	buckets := make(map[int][]int)
	maxLen := 0
	for i := 0; i < m; i++ {
		s, l := e.EdgePositions(i)
		length := l - s
		buckets[length] = append(buckets[length], i)
		if length > maxLen {
			maxLen = length
		}
	}
	mid := maxLen / 2

	var order []int
	order = append(order, buckets[mid]...)
	for offset := 1; offset <= maxLen; offset++ {
		if hi, ok := buckets[mid+offset]; ok {
			order = append(order, hi...)
		}
		if mid-offset >= 0 {
			if lo, ok := buckets[mid-offset]; ok {
				order = append(order, lo...)
			}
		}
	}
	return order
}

// circularOrder sorts edges by increasing distance of their midpoint
// spine-position from the spine's own midpoint (see GreedyCircular's doc
// comment for the documented deviation from the unavailable original
// "Satsangi circular" construction).
func circularOrder(e *embedding.Embedding) []int {
	m := e.M()
	n := e.N()
	center := n / 2
	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	dist := func(idx int) int {
		s, l := e.EdgePositions(idx)
		mid := (s + l) / 2
		d := mid - center
		if d < 0 {
			d = -d
		}
		return d
	}
	sort.SliceStable(order, func(i, j int) bool {
		return dist(order[i]) < dist(order[j])
	})
	return order
}

// greedyAssign processes edges in the given order, assigning each to the
// page minimizing the count of crossings against already-placed edges on
// that page (ties broken toward the lowest page index), per spec.md §4.E.
func greedyAssign(e *embedding.Embedding, order []int) error {
	k := e.K()
	if k < 1 {
		return ErrInvalidK
	}
	m := e.M()
	dist := make([]int, m)
	for i := range dist {
		dist[i] = embedding.PagePending
	}

	placedByPage := make([][]int, k)
	for _, idx := range order {
		s, l := e.EdgePositions(idx)
		bestPage := 0
		bestCount := -1
		for page := 0; page < k; page++ {
			cnt := 0
			for _, other := range placedByPage[page] {
				os, ol := e.EdgePositions(other)
				if canCrossPositions(s, l, os, ol) {
					cnt++
				}
			}
			if bestCount < 0 || cnt < bestCount {
				bestCount, bestPage = cnt, page
			}
		}
		dist[idx] = bestPage
		placedByPage[bestPage] = append(placedByPage[bestPage], idx)
	}

	e.SetDistribution(dist)
	return nil
}

func canCrossPositions(s1, l1, s2, l2 int) bool {
	return embedding.CanCross(s1, l1, s2, l2)
}
