package vorder

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

func requirePermutation(t *testing.T, e *embedding.Embedding) {
	t.Helper()
	seen := make(map[int]bool, e.N())
	for _, v := range e.Spine() {
		require.False(t, seen[v], "vertex %d appears twice in spine", v)
		seen[v] = true
	}
	require.Len(t, seen, e.N())
}

var c6Pairs = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 5}}

func TestRandomDFS_ProducesFullPermutation(t *testing.T) {
	e := buildEmbedding(t, 6, c6Pairs, 1)
	r := rng.New(7)
	require.NoError(t, RandomDFS(e, FullWindow(6), r))
	requirePermutation(t, e)
}

func TestSmallestDegreeDFS_ProducesFullPermutation(t *testing.T) {
	e := buildEmbedding(t, 6, c6Pairs, 1)
	r := rng.New(7)
	require.NoError(t, SmallestDegreeDFS(e, FullWindow(6), r))
	requirePermutation(t, e)
}

func TestRandomBFS_ProducesFullPermutation(t *testing.T) {
	e := buildEmbedding(t, 6, c6Pairs, 1)
	r := rng.New(3)
	require.NoError(t, RandomBFS(e, FullWindow(6), r))
	requirePermutation(t, e)
}

func TestBFSTree_ProducesFullPermutation(t *testing.T) {
	e := buildEmbedding(t, 6, c6Pairs, 1)
	require.NoError(t, BFSTree(e, FullWindow(6), nil))
	requirePermutation(t, e)
}

func TestMaxNbr_ProducesFullPermutation(t *testing.T) {
	e := buildEmbedding(t, 6, c6Pairs, 1)
	require.NoError(t, MaxNbr(e, FullWindow(6)))
	requirePermutation(t, e)
}

func TestMaxNbrRemoving_ProducesFullPermutation(t *testing.T) {
	e := buildEmbedding(t, 6, c6Pairs, 1)
	require.NoError(t, MaxNbrRemoving(e, FullWindow(6)))
	requirePermutation(t, e)
}

func TestHamiltonPath_ProducesFullPermutation(t *testing.T) {
	e := buildEmbedding(t, 6, c6Pairs, 1)
	r := rng.New(42)
	require.NoError(t, HamiltonPath(e, FullWindow(6), r))
	requirePermutation(t, e)
}

func TestConnectivity_AllSelectorPlacerCombosProduceFullPermutation(t *testing.T) {
	selectors := []Selector{SelectNext, SelectRandom, SelectInCon, SelectOutCon, SelectConnectivity}
	placers := []Placer{PlaceFixed, PlaceRandom, PlaceCrossings, PlaceELen}
	for _, sel := range selectors {
		for _, pl := range placers {
			e := buildEmbedding(t, 6, c6Pairs, 1)
			r := rng.New(11)
			require.NoError(t, Connectivity(e, FullWindow(6), sel, pl, r))
			requirePermutation(t, e)
		}
	}
}

func TestGreedyConnectivity_ProducesFullPermutation(t *testing.T) {
	e := buildEmbedding(t, 6, c6Pairs, 1)
	require.NoError(t, GreedyConnectivity(e, FullWindow(6)))
	requirePermutation(t, e)
}

func TestWindow_PartialLeavesOutsideUntouched(t *testing.T) {
	e := buildEmbedding(t, 6, c6Pairs, 1)
	e.SetSpine([]int{5, 4, 3, 2, 1, 0})
	w := Window{Begin: 1, End: 4}
	require.NoError(t, RandomDFS(e, w, rng.New(1)))
	require.Equal(t, 5, e.SpineAt(0))
	require.Equal(t, 0, e.SpineAt(5))
	requirePermutation(t, e)
}

func TestWindow_WrapAroundLeavesMiddleUntouched(t *testing.T) {
	e := buildEmbedding(t, 6, c6Pairs, 1)
	e.SetSpine([]int{5, 4, 3, 2, 1, 0})
	w := Window{Begin: 4, End: 2}
	require.NoError(t, RandomDFS(e, w, rng.New(1)))
	require.Equal(t, 3, e.SpineAt(2))
	require.Equal(t, 2, e.SpineAt(3))
	requirePermutation(t, e)
}

func TestDisconnectedGraph_RandomDFSCoversEveryComponent(t *testing.T) {
	pairs := [][2]int{{0, 1}, {2, 3}}
	e := buildEmbedding(t, 4, pairs, 1)
	require.NoError(t, RandomDFS(e, FullWindow(4), rng.New(5)))
	requirePermutation(t, e)
}

func TestDisconnectedGraph_MaxNbrFamilyFailsFast(t *testing.T) {
	pairs := [][2]int{{0, 1}, {2, 3}}
	e := buildEmbedding(t, 4, pairs, 1)

	require.ErrorIs(t, MaxNbr(e, FullWindow(4)), ErrDisconnectedGraph)
	require.ErrorIs(t, MaxNbrRemoving(e, FullWindow(4)), ErrDisconnectedGraph)
	require.ErrorIs(t, Connectivity(e, FullWindow(4), SelectNext, PlaceFixed, rng.New(1)), ErrDisconnectedGraph)
	require.ErrorIs(t, GreedyConnectivity(e, FullWindow(4)), ErrDisconnectedGraph)
}

func TestEmptyWindow_EveryHeuristicFailsFast(t *testing.T) {
	e := buildEmbedding(t, 6, c6Pairs, 1)
	w := Window{Begin: 6, End: 0} // Begin==End means "full" (see Window.Len); this is the genuine empty window

	require.ErrorIs(t, RandomDFS(e, w, rng.New(1)), ErrEmptyGraph)
	require.ErrorIs(t, SmallestDegreeDFS(e, w, nil), ErrEmptyGraph)
	require.ErrorIs(t, RandomBFS(e, w, rng.New(1)), ErrEmptyGraph)
	require.ErrorIs(t, BFSTree(e, w, nil), ErrEmptyGraph)
	require.ErrorIs(t, HamiltonPath(e, w, rng.New(1)), ErrEmptyGraph)
	require.ErrorIs(t, MaxNbr(e, w), ErrEmptyGraph)
	require.ErrorIs(t, Connectivity(e, w, SelectNext, PlaceFixed, nil), ErrEmptyGraph)
	require.ErrorIs(t, GreedyConnectivity(e, w), ErrEmptyGraph)
}
