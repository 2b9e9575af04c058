package anneal

import (
	"math"
	"testing"

	"github.com/bookembed/pagecross/core"
	"github.com/bookembed/pagecross/crossing"
	"github.com/bookembed/pagecross/embedding"
	"github.com/bookembed/pagecross/rng"
	"github.com/stretchr/testify/require"
)

func buildEmbedding(t *testing.T, n int, pairs [][2]int, k int, spine []int) *embedding.Embedding {
	t.Helper()
	g, err := core.NewGraph(n, pairs)
	require.NoError(t, err)
	p, err := core.NewProblem(g, k)
	require.NoError(t, err)
	e := embedding.New(p, crossing.Pairwise{})
	if spine != nil {
		e.SetSpine(spine)
	}
	return e
}

func TestTemperature_StartsNearT0EndsNearTmin(t *testing.T) {
	t0 := 500.0
	first := Temperature(1, t0)
	last := Temperature(Iterations, t0)
	require.InDelta(t, t0, first, t0*0.1)
	require.InDelta(t, Tmin, last, 1e-6)
}

func TestTemperature_MonotoneNonIncreasing(t *testing.T) {
	prev := math.Inf(1)
	for tIter := 1; tIter <= Iterations; tIter++ {
		v := Temperature(tIter, 300)
		require.LessOrEqual(t, v, prev+1e-9)
		prev = v
	}
}

func TestRun_NeverWorsensBestSeen(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 5}, {0, 3}, {1, 4}, {2, 5}}
	e := buildEmbedding(t, 6, pairs, 2, []int{5, 2, 0, 4, 1, 3})
	start := e.Crossings()

	bestSeen := start
	r := rng.New(123)
	Run(e, r, WithInitialTemperature(50), WithOnBest(func(snap *embedding.Embedding) {
		c := snap.Crossings()
		require.LessOrEqual(t, c, bestSeen)
		bestSeen = c
	}))
	require.LessOrEqual(t, bestSeen, start)
}

func TestRun_RespectsBudget(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	e := buildEmbedding(t, 4, pairs, 1, nil)
	calls := 0
	r := rng.New(1)
	Run(e, r, WithBudget(func() bool {
		calls++
		return calls < 3
	}))
	require.Equal(t, 3, calls)
}

func TestIsqrt(t *testing.T) {
	require.Equal(t, 3, isqrt(9))
	require.Equal(t, 3, isqrt(15))
	require.Equal(t, 4, isqrt(16))
	require.Equal(t, 0, isqrt(0))
}
