package edist

import (
	"github.com/bookembed/pagecross/embedding"
	"github.com/bookembed/pagecross/rng"
)

// Random assigns every edge a uniformly random page in [0,K) (spec.md
// §4.E). k=1 trivially assigns every edge to page 0.
func Random(e *embedding.Embedding, r *rng.Source) error {
	k := e.K()
	if k < 1 {
		return ErrInvalidK
	}
	m := e.M()
	dist := make([]int, m)
	for i := range dist {
		if k == 1 {
			dist[i] = 0
			continue
		}
		dist[i] = r.Intn(k)
	}
	e.SetDistribution(dist)
	return nil
}
