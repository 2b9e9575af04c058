package crossing

import (
	"sort"

	"github.com/bookembed/pagecross/embedding"
)

// DivideAndConquer is crossing counter C3: per page, sort edges by
// (smallerPos,largerPos), compute an upper bound on crossing+nested pairs
// via prefix sums of edge starts, then subtract the number of nested pairs,
// counted by a merge-sort inversion count over a bipartite (two-layer)
// reduction of the same edge list (spec.md §4.C). O(m*(log m + X)) total
// across pages. It is used only where a caller passes it to embedding.New or
// SetCounter; package harness does not select it.
type DivideAndConquer struct{}

var _ embedding.Counter = DivideAndConquer{}

// Count implements embedding.Counter.
func (DivideAndConquer) Count(e *embedding.Embedding) int64 {
	var total int64
	for page := 0; page < e.K(); page++ {
		total += dqCountPage(e, page)
	}
	return total
}

// CountPage implements embedding.Counter.
func (DivideAndConquer) CountPage(e *embedding.Embedding, page int) int64 {
	return dqCountPage(e, page)
}

type pageEdge struct {
	idx, s, t int
}

// dqCountPage implements spec.md §4.C's four-step procedure for a single
// page.
func dqCountPage(e *embedding.Embedding, page int) int64 {
	var items []pageEdge
	for i := 0; i < e.M(); i++ {
		if e.PageOf(i) != page {
			continue
		}
		s, t := e.EdgePositions(i)
		items = append(items, pageEdge{idx: i, s: s, t: t})
	}
	if len(items) < 2 {
		return 0
	}

	// Step 1: sort by (smallerPos, largerPos). Distinct edges can never tie
	// on this key (that would require a duplicate (start,target) pair,
	// which core.NewGraph forbids), so a plain two-key sort suffices.
	sort.Slice(items, func(i, j int) bool {
		if items[i].s != items[j].s {
			return items[i].s < items[j].s
		}
		return items[i].t < items[j].t
	})

	// Step 2: startsBefore[p] = number of edges with smaller endpoint <= p,
	// prefix-summed over spine positions.
	n := e.N()
	startCount := make([]int64, n)
	for _, it := range items {
		startCount[it.s]++
	}
	prefix := make([]int64, n)
	var running int64
	for p := 0; p < n; p++ {
		running += startCount[p]
		prefix[p] = running
	}

	// Step 3: upper bound = sum over edges of startsBefore[t-1] - startsBefore[s],
	// the count of edges whose start lies strictly between s and t. Every
	// unordered crossing-or-nested pair is counted exactly once across this
	// sum: a pair with s_e < s_f is counted for e iff s_e < s_f < t_e, and
	// never for f.
	var upperBound int64
	for _, it := range items {
		var before int64
		if it.t-1 >= 0 {
			before = prefix[it.t-1]
		}
		upperBound += before - prefix[it.s]
	}

	// Step 4: subtract nested pairs via a merge-sort inversion count over
	// the same edge list, keyed by (largerPos asc, smallerPos desc) — the
	// bipartite two-layer reduction of spec.md §4.C. items is already in
	// (s,t)-ascending order from step 1; an inversion under the new key
	// corresponds to a pair (e,f), s_e<s_f, that is nested (l_f<l_e) rather
	// than crossing.
	keys := make([]int64, len(items))
	scale := int64(n + 2)
	for i, it := range items {
		keys[i] = int64(it.t)*scale - int64(it.s)
	}
	nested := countInversions(keys)

	return upperBound - nested
}

// countInversions returns the number of pairs i<j in a with a[i] > a[j],
// computed by a standard merge-sort: every time a right-run element is
// placed before the left run is exhausted, all remaining left-run elements
// form an inversion with it.
func countInversions(a []int64) int64 {
	buf := make([]int64, len(a))
	var count int64
	var sort func(lo, hi int)
	sort = func(lo, hi int) {
		if hi-lo < 2 {
			return
		}
		mid := (lo + hi) / 2
		sort(lo, mid)
		sort(mid, hi)
		i, j, k := lo, mid, lo
		for i < mid && j < hi {
			if a[i] <= a[j] {
				buf[k] = a[i]
				i++
			} else {
				buf[k] = a[j]
				j++
				count += int64(mid - i)
			}
			k++
		}
		for i < mid {
			buf[k] = a[i]
			i++
			k++
		}
		for j < hi {
			buf[k] = a[j]
			j++
			k++
		}
		copy(a[lo:hi], buf[lo:hi])
	}
	sort(0, len(a))
	return count
}
