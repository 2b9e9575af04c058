package edist

import (
	"testing"

	"github.com/bookembed/pagecross/core"
	"github.com/bookembed/pagecross/crossing"
	"github.com/bookembed/pagecross/embedding"
	"github.com/bookembed/pagecross/rng"
	"github.com/stretchr/testify/require"
)

func buildEmbedding(t *testing.T, n int, pairs [][2]int, k int) *embedding.Embedding {
	t.Helper()
	g, err := core.NewGraph(n, pairs)
	require.NoError(t, err)
	p, err := core.NewProblem(g, k)
	require.NoError(t, err)
	return embedding.New(p, crossing.Pairwise{})
}

func requireValidDistribution(t *testing.T, e *embedding.Embedding) {
	t.Helper()
	for i := 0; i < e.M(); i++ {
		page := e.PageOf(i)
		require.GreaterOrEqual(t, page, 0)
		require.Less(t, page, e.K())
	}
}

var k4Pairs = [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

func TestRandom_ProducesValidDistribution(t *testing.T) {
	e := buildEmbedding(t, 4, k4Pairs, 2)
	require.NoError(t, Random(e, rng.New(1)))
	requireValidDistribution(t, e)
}

func TestSlope_ProducesValidDistribution(t *testing.T) {
	e := buildEmbedding(t, 4, k4Pairs, 3)
	require.NoError(t, Slope(e))
	requireValidDistribution(t, e)
}

func TestGreedyOrderings_ProduceValidDistributions(t *testing.T) {
	cases := []struct {
		name string
		run  func(e *embedding.Embedding) error
	}{
		{"RowMajor", GreedyRowMajor},
		{"RowMajorBySpine", GreedyRowMajorBySpine},
		{"ELen", GreedyELen},
		{"CeilFloor", GreedyCeilFloor},
		{"Circular", GreedyCircular},
		{"RandomOrder", func(e *embedding.Embedding) error { return GreedyRandomOrder(e, rng.New(9)) }},
	}
	for _, c := range cases {
		e := buildEmbedding(t, 4, k4Pairs, 2)
		require.NoError(t, c.run(e), c.name)
		requireValidDistribution(t, e)
	}
}

func TestConflict_ProducesValidDistribution(t *testing.T) {
	e := buildEmbedding(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 5}}, 2)
	e.SetSpine([]int{0, 3, 1, 4, 2, 5})
	require.NoError(t, Conflict(e, rng.New(2)))
	requireValidDistribution(t, e)
}

func TestEarDecomposition_ProducesValidDistribution(t *testing.T) {
	e := buildEmbedding(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 5}, {0, 3}, {1, 4}}, 2)
	require.NoError(t, EarDecomposition(e, rng.New(3)))
	requireValidDistribution(t, e)
}

func TestGreedyAssign_NeverWorsensThanAllOnePage(t *testing.T) {
	e := buildEmbedding(t, 4, k4Pairs, 2)
	allOnePage := e.Crossings() // a new embedding has every edge on page 0
	require.NoError(t, GreedyELen(e))
	requireValidDistribution(t, e)
	require.LessOrEqual(t, e.Crossings(), allOnePage)
}

func TestSlope_K1AssignsAllToPageZero(t *testing.T) {
	e := buildEmbedding(t, 4, k4Pairs, 1)
	require.NoError(t, Slope(e))
	for i := 0; i < e.M(); i++ {
		require.Equal(t, 0, e.PageOf(i))
	}
}
