package edist

import (
	"github.com/bookembed/pagecross/embedding"
	"github.com/bookembed/pagecross/rng"
)

// conflictPair is an unordered pair of edges that can cross given the
// embedding's current spine (spec.md §4.E "conflict set").
type conflictPair struct {
	a, b int
}

// Conflict builds the conflict set of edge pairs that can cross, shuffles
// it, then processes pairs in that order: if neither edge of a pair is yet
// placed, both are assigned two distinct random pages; if exactly one is
// placed, the other is assigned any page different from its partner's.
// Edges never touched by this process (isolated in the conflict graph)
// default to page 0 (spec.md §4.E).
func Conflict(e *embedding.Embedding, r *rng.Source) error {
	k := e.K()
	if k < 1 {
		return ErrInvalidK
	}
	m := e.M()
	dist := make([]int, m)
	for i := range dist {
		dist[i] = embedding.PagePending
	}

	var pairs []conflictPair
	for i := 0; i < m; i++ {
		si, li := e.EdgePositions(i)
		for j := i + 1; j < m; j++ {
			sj, lj := e.EdgePositions(j)
			if embedding.CanCross(si, li, sj, lj) {
				pairs = append(pairs, conflictPair{i, j})
			}
		}
	}
	shufflePairs(pairs, r)

	placed := make([]bool, m)
	for _, p := range pairs {
		aPlaced, bPlaced := placed[p.a], placed[p.b]
		switch {
		case !aPlaced && !bPlaced:
			pa := r.Intn(k)
			pb := pa
			if k > 1 {
				for pb == pa {
					pb = r.Intn(k)
				}
			}
			dist[p.a], dist[p.b] = pa, pb
			placed[p.a], placed[p.b] = true, true
		case aPlaced && !bPlaced:
			dist[p.b] = differentPage(dist[p.a], k, r)
			placed[p.b] = true
		case bPlaced && !aPlaced:
			dist[p.a] = differentPage(dist[p.b], k, r)
			placed[p.a] = true
		}
	}

	for i := range dist {
		if dist[i] == embedding.PagePending {
			dist[i] = 0
		}
	}
	e.SetDistribution(dist)
	return nil
}

func differentPage(avoid, k int, r *rng.Source) int {
	if k == 1 {
		return avoid
	}
	p := r.Intn(k)
	for p == avoid {
		p = r.Intn(k)
	}
	return p
}

func shufflePairs(pairs []conflictPair, r *rng.Source) {
	for i := len(pairs) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		pairs[i], pairs[j] = pairs[j], pairs[i]
	}
}
