package harness

import (
	"testing"
	"time"

	"github.com/bookembed/pagecross/core"
	"github.com/bookembed/pagecross/crossing"
	"github.com/bookembed/pagecross/embedding"
	"github.com/stretchr/testify/require"
)

func buildEmbedding(t *testing.T, n int, pairs [][2]int, k int, spine []int) (*core.Problem, *embedding.Embedding) {
	t.Helper()
	g, err := core.NewGraph(n, pairs)
	require.NoError(t, err)
	p, err := core.NewProblem(g, k)
	require.NoError(t, err)
	e := embedding.New(p, crossing.Pairwise{})
	if spine != nil {
		e.SetSpine(spine)
	}
	return p, e
}

var c6Pairs = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 5}}

func TestSetLocalBest_OnlyCopiesOnStrictImprovement(t *testing.T) {
	p, e := buildEmbedding(t, 6, c6Pairs, 1, []int{0, 3, 1, 4, 2, 5})
	h := New(p, e)
	initial := h.BestCrossings()

	e.SetSpine([]int{0, 1, 2, 3, 4, 5}) // strictly fewer crossings (0)
	require.True(t, h.SetLocalBest(e))
	require.Less(t, h.BestCrossings(), initial)

	improved := h.BestCrossings()
	e.SetSpine([]int{0, 3, 1, 4, 2, 5}) // worse again
	require.False(t, h.SetLocalBest(e))
	require.Equal(t, improved, h.BestCrossings())
}

func TestBestSolution_IsIndependentCopy(t *testing.T) {
	p, e := buildEmbedding(t, 6, c6Pairs, 1, []int{0, 1, 2, 3, 4, 5})
	h := New(p, e)
	snap := h.BestSolution()
	snap.SwapPositions(0, 1)
	require.NotEqual(t, snap.Spine()[0], h.BestSolution().Spine()[0])
}

func TestShouldContinue_ReportsBudgetExceeded(t *testing.T) {
	p, e := buildEmbedding(t, 6, c6Pairs, 1, nil)
	h := New(p, e, WithBudget(time.Millisecond))
	start := time.Now()
	h.Start(start)
	require.True(t, h.ShouldContinue(start))
	require.False(t, h.ShouldContinue(start.Add(10*time.Millisecond)))
	require.Equal(t, ReasonBudgetExceeded, h.Reason())
}

func TestShouldContinue_ReportsOptimumReached(t *testing.T) {
	p, err := core.NewProblem(func() *core.Graph {
		g, err := core.NewGraph(6, c6Pairs)
		require.NoError(t, err)
		return g
	}(), 1)
	require.NoError(t, err)
	p.KnownOptimum = 3

	e := embedding.New(p, crossing.Pairwise{})
	e.SetSpine([]int{0, 3, 1, 4, 2, 5}) // 3 crossings, matches KnownOptimum
	h := New(p, e)
	h.Start(time.Now())
	require.False(t, h.ShouldContinue(time.Now()))
	require.Equal(t, ReasonOptimumReached, h.Reason())
}

func TestCheckOptimumInvariant_FlagsImpossibleUndercount(t *testing.T) {
	p, e := buildEmbedding(t, 6, c6Pairs, 1, []int{0, 1, 2, 3, 4, 5})
	p.KnownOptimum = 5
	h := New(p, e)
	require.ErrorIs(t, h.CheckOptimumInvariant(), embedding.ErrInvariantBroken)
}

func TestNoteRoundGainZero(t *testing.T) {
	p, e := buildEmbedding(t, 6, c6Pairs, 1, nil)
	h := New(p, e)
	h.NoteRoundGainZero()
	require.Equal(t, ReasonRoundGainZero, h.Reason())
}
