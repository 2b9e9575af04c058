package edist

import "github.com/bookembed/pagecross/embedding"

// Slope assigns pages by bucketing each edge's "folded angle" into k
// roughly equal contiguous ranges, avoiding trigonometry per spec.md §4.E:
// conceptually, vertices sit on a circle at positions 0..n-1 and each
// edge's slope mod pi is computed; this is equivalent to folding
// smallerPos+largerPos into [1,n] and partitioning that range into k
// contiguous buckets of near-equal size.
func Slope(e *embedding.Embedding) error {
	k := e.K()
	if k < 1 {
		return ErrInvalidK
	}
	n := e.N()
	angleToPage := buildAngleToPageMap(n, k)

	m := e.M()
	dist := make([]int, m)
	for i := 0; i < m; i++ {
		small, large := e.EdgePositions(i)
		angle := fold(small+large, n)
		dist[i] = angleToPage[angle-1]
	}
	e.SetDistribution(dist)
	return nil
}

// fold maps a raw angle sum into [1,n].
func fold(sum, n int) int {
	a := sum % n
	if a == 0 {
		a = n
	}
	return a
}

// buildAngleToPageMap partitions [1,n] into k roughly-equal contiguous
// ranges, returning a length-n slice indexed by (angle-1).
func buildAngleToPageMap(n, k int) []int {
	out := make([]int, n)
	base := n / k
	extra := n % k
	pos := 0
	for page := 0; page < k; page++ {
		size := base
		if page < extra {
			size++
		}
		for i := 0; i < size && pos < n; i++ {
			out[pos] = page
			pos++
		}
	}
	for pos < n {
		out[pos] = k - 1
		pos++
	}
	return out
}
