package crossing

import (
	"math/rand"
	"testing"

	"github.com/bookembed/pagecross/core"
	"github.com/bookembed/pagecross/embedding"
	"github.com/stretchr/testify/require"
)

var allCounters = []embedding.Counter{Pairwise{}, Sweep{}, DivideAndConquer{}}

func buildEmbedding(t *testing.T, n int, pairs [][2]int, k int, spine, distribution []int, c embedding.Counter) *embedding.Embedding {
	t.Helper()
	g, err := core.NewGraph(n, pairs)
	require.NoError(t, err)
	p, err := core.NewProblem(g, k)
	require.NoError(t, err)
	e := embedding.New(p, c)
	if spine != nil {
		e.SetSpine(spine)
	}
	if distribution != nil {
		e.SetDistribution(distribution)
	}
	return e
}

func TestS1_K4TwoPagesZeroCrossings(t *testing.T) {
	pairs := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for _, c := range allCounters {
		e := buildEmbedding(t, 4, pairs, 2, []int{0, 1, 2, 3}, []int{0, 1, 1, 0, 1, 0}, c)
		require.Equal(t, int64(0), e.Crossings(), "%T", c)
	}
}

func TestS3_Path6OnePageZeroCrossings(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}}
	for _, c := range allCounters {
		e := buildEmbedding(t, 6, pairs, 1, []int{0, 1, 2, 3, 4, 5}, nil, c)
		require.Equal(t, int64(0), e.Crossings(), "%T", c)
	}
}

func TestS4_C6AdversarialSpineThreeCrossings(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 5}}
	for _, c := range allCounters {
		e := buildEmbedding(t, 6, pairs, 1, []int{0, 3, 1, 4, 2, 5}, nil, c)
		require.Equal(t, int64(3), e.Crossings(), "%T", c)
	}
}

func TestS2_K5TwoPagesOneCrossingAchievable(t *testing.T) {
	pairs := [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	}
	// A known 1-crossing assignment of K5 on 2 pages with identity spine.
	dist := []int{0, 0, 0, 1, 0, 1, 1, 1, 0, 1}
	for _, c := range allCounters {
		e := buildEmbedding(t, 5, pairs, 2, []int{0, 1, 2, 3, 4}, dist, c)
		require.LessOrEqual(t, e.Crossings(), int64(1), "%T", c)
	}
}

// TestCountersAgree_SmallFixedGraph verifies pairwise-vs-sweep-vs-dq
// agreement on one fixed spine and distribution of a small graph (the
// swap-gain scenario S5 is exercised in package greedy).
func TestCountersAgree_SmallFixedGraph(t *testing.T) {
	pairs := [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {1, 2}}
	spine := []int{2, 0, 3, 1}
	dist := []int{0, 1, 0, 1, 0}
	var results []int64
	for _, c := range allCounters {
		e := buildEmbedding(t, 4, pairs, 2, spine, dist, c)
		results = append(results, e.Crossings())
	}
	for i := 1; i < len(results); i++ {
		require.Equal(t, results[0], results[i])
	}
}

// TestS6_RandomGraphsCountersAgree fans out over random Erdos-Renyi graphs,
// random spines, and random distributions, asserting all three counters
// agree (spec.md scenario S6).
func TestS6_RandomGraphsCountersAgree(t *testing.T) {
	r := rand.New(rand.NewSource(12345))
	for trial := 0; trial < 100; trial++ {
		ns := []int{8, 16, 32}
		n := ns[r.Intn(len(ns))]
		ks := []int{2, 3, 4}
		k := ks[r.Intn(len(ks))]

		var pairs [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if r.Float64() < 0.3 {
					pairs = append(pairs, [2]int{i, j})
				}
			}
		}
		if len(pairs) == 0 {
			continue
		}

		spine := r.Perm(n)
		dist := make([]int, len(pairs))
		for i := range dist {
			dist[i] = r.Intn(k)
		}

		var results []int64
		for _, c := range allCounters {
			e := buildEmbedding(t, n, pairs, k, spine, dist, c)
			results = append(results, e.Crossings())
		}
		for i := 1; i < len(results); i++ {
			require.Equalf(t, results[0], results[i], "trial %d (n=%d,k=%d): %T disagrees", trial, n, k, allCounters[i])
		}
	}
}

func TestCountPage_MatchesCountWhenSinglePage(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 5}}
	for _, c := range allCounters {
		e := buildEmbedding(t, 6, pairs, 1, []int{0, 3, 1, 4, 2, 5}, nil, c)
		require.Equal(t, e.Crossings(), e.CrossingsOnPage(0))
	}
}
