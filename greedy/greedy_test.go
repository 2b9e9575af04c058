package greedy

import (
	"testing"

	"github.com/bookembed/pagecross/core"
	"github.com/bookembed/pagecross/crossing"
	"github.com/bookembed/pagecross/embedding"
	"github.com/stretchr/testify/require"
)

func buildEmbedding(t *testing.T, n int, pairs [][2]int, k int, spine, distribution []int) *embedding.Embedding {
	t.Helper()
	g, err := core.NewGraph(n, pairs)
	require.NoError(t, err)
	p, err := core.NewProblem(g, k)
	require.NoError(t, err)
	e := embedding.New(p, crossing.Pairwise{})
	if spine != nil {
		e.SetSpine(spine)
	}
	if distribution != nil {
		e.SetDistribution(distribution)
	}
	return e
}

// TestS5_SwapGainMatchesRecount verifies spec.md §8 invariant 5: swapping
// the two vertices named by a SwapGain call changes Crossings() by exactly
// -gain.
func TestS5_SwapGainMatchesRecount(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 5}, {0, 3}, {1, 4}}
	e := buildEmbedding(t, 6, pairs, 2, []int{0, 3, 1, 4, 2, 5}, nil)

	for p := 0; p < e.N(); p++ {
		before := e.Crossings()
		gain := SwapGain(e, p)
		q := (p + 1) % e.N()
		e.SwapPositions(p, q)
		after := e.Crossings()
		require.Equal(t, before-gain, after, "position %d", p)
		// restore for the next iteration's baseline.
		e.SwapPositions(p, q)
	}
}

func TestSwapGain_SelfPairIsZero(t *testing.T) {
	pairs := [][2]int{{0, 1}}
	e := buildEmbedding(t, 2, pairs, 1, nil, nil)
	require.Equal(t, int64(0), SwapGain(e, 0))
}

// TestS2_K5TwoPagesGreedyReachesOneCrossing exercises the known-achievable
// optimum of spec.md's S2 scenario from an adversarial starting embedding,
// using Combined to drive it down.
func TestS2_K5TwoPagesGreedyReachesOneCrossing(t *testing.T) {
	pairs := [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	}
	e := buildEmbedding(t, 5, pairs, 2, []int{2, 4, 0, 3, 1}, nil)
	Combined(e, nil, nil)
	require.LessOrEqual(t, e.Crossings(), int64(1))
}

func TestTwoStep_MonotoneNonIncreasing(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 5}, {0, 3}, {1, 4}, {2, 5}}
	e := buildEmbedding(t, 6, pairs, 2, []int{5, 2, 0, 4, 1, 3}, nil)
	start := e.Crossings()
	TwoStep(e, nil, nil, nil)
	require.LessOrEqual(t, e.Crossings(), start)
}

func TestCombined_MonotoneNonIncreasing(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 5}, {0, 3}, {1, 4}, {2, 5}}
	e := buildEmbedding(t, 6, pairs, 2, []int{5, 2, 0, 4, 1, 3}, nil)
	start := e.Crossings()
	Combined(e, nil, nil)
	require.LessOrEqual(t, e.Crossings(), start)
}

func TestBestPageForEdge_NeverIncreasesCrossings(t *testing.T) {
	pairs := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	e := buildEmbedding(t, 4, pairs, 2, []int{0, 1, 2, 3}, []int{0, 0, 0, 0, 0, 0})
	start := e.Crossings()
	BestPageForEdge(e, 0)
	require.LessOrEqual(t, e.Crossings(), start)
}

func TestBestPositionForVertex_NeverIncreasesCrossings(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 5}}
	e := buildEmbedding(t, 6, pairs, 1, []int{0, 3, 1, 4, 2, 5}, nil)
	start := e.Crossings()
	BestPositionForVertex(e, 0)
	require.LessOrEqual(t, e.Crossings(), start)
}

// TestIdempotence_ExtraRoundsHoldSteady covers spec.md §8 invariant 7:
// once a round yields no gain, re-running the optimizer must not change
// the embedding further.
func TestIdempotence_ExtraRoundsHoldSteady(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 5}, {0, 3}, {1, 4}, {2, 5}}
	e := buildEmbedding(t, 6, pairs, 2, []int{5, 2, 0, 4, 1, 3}, nil)
	TwoStep(e, nil, nil, nil)
	settled := e.Crossings()
	TwoStep(e, nil, nil, nil)
	require.Equal(t, settled, e.Crossings())
}
