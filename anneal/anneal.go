package anneal

import (
	"math"

	"github.com/bookembed/pagecross/embedding"
	"github.com/bookembed/pagecross/greedy"
	"github.com/bookembed/pagecross/rng"
)

// Option configures a Run call, following the teacher's functional-options
// convention (`tsp.Options`, `dfs.Option`).
type Option func(*config)

type config struct {
	t0     float64
	onBest func(*embedding.Embedding)
	should func() bool
}

// WithInitialTemperature sets T0, the schedule's caller-supplied starting
// temperature (spec.md §4.G).
func WithInitialTemperature(t0 float64) Option {
	return func(c *config) { c.t0 = t0 }
}

// WithOnBest registers a callback invoked after every accepted move that
// strictly improves on the best embedding seen so far, matching the
// harness's setLocalBest contract (spec.md §4.G "update the harness's local
// best if strictly improved").
func WithOnBest(f func(*embedding.Embedding)) Option {
	return func(c *config) { c.onBest = f }
}

// WithBudget registers a predicate checked once per outer iteration; Run
// stops early (before Iterations) the first time it returns false.
func WithBudget(should func() bool) Option {
	return func(c *config) { c.should = should }
}

// Run executes the fixed Iterations-step simulated-annealing schedule of
// spec.md §4.G against e, using r for every random choice. Each iteration
// performs, in order: edge re-page, neighbor swap, vertex teleport with
// page repair, and greedy vertex refine.
func Run(e *embedding.Embedding, r *rng.Source, opts ...Option) {
	cfg := &config{t0: 100}
	for _, opt := range opts {
		opt(cfg)
	}
	run(e, r, cfg)
}

func run(e *embedding.Embedding, r *rng.Source, cfg *config) {
	best := e.Crossings()
	reportBest := func() {
		cur := e.Crossings()
		if cur < best {
			best = cur
			if cfg.onBest != nil {
				cfg.onBest(e)
			}
		}
	}

	for t := 1; t <= Iterations; t++ {
		if cfg.should != nil && !cfg.should() {
			return
		}
		temp := Temperature(t, cfg.t0)

		edgeRepagePhase(e, r, temp, reportBest)
		neighborSwapPhase(e, r, temp, reportBest)
		vertexTeleportPhase(e, r, temp, reportBest)
		greedyRefinePhase(e, r, temp, reportBest)
	}
}

// accept applies the Metropolis criterion: always accept a non-worsening
// move (delta<=0), otherwise accept with probability exp(-delta/temp).
func accept(delta int64, temp float64, r *rng.Source) bool {
	if delta <= 0 {
		return true
	}
	if temp <= 0 {
		return false
	}
	p := math.Exp(-float64(delta) / temp)
	return r.Float64() < p
}

// edgeRepagePhase implements spec.md §4.G sub-phase 1: m trials of
// relocating a random edge to a uniformly random different page.
func edgeRepagePhase(e *embedding.Embedding, r *rng.Source, temp float64, reportBest func()) {
	m := e.M()
	k := e.K()
	if m == 0 || k < 2 {
		return
	}
	for i := 0; i < m; i++ {
		edgeIdx := r.Intn(m)
		oldPage := e.PageOf(edgeIdx)
		newPage := oldPage
		for newPage == oldPage {
			newPage = r.Intn(k)
		}

		before := e.Crossings()
		_ = e.MoveEdgeToPage(edgeIdx, newPage)
		after := e.Crossings()
		delta := after - before

		if accept(delta, temp, r) {
			reportBest()
		} else {
			_ = e.MoveEdgeToPage(edgeIdx, oldPage)
		}
	}
}

// neighborSwapPhase implements spec.md §4.G sub-phase 2: n*floor(sqrt(n))
// trials of a random vertex's swap-gain against its cyclic right neighbor.
func neighborSwapPhase(e *embedding.Embedding, r *rng.Source, temp float64, reportBest func()) {
	n := e.N()
	if n < 2 {
		return
	}
	trials := n * isqrt(n)
	for i := 0; i < trials; i++ {
		v := r.Intn(n)
		p := e.PositionOf(v)
		gain := greedy.SwapGain(e, p)
		delta := -gain

		q := (p + 1) % n
		e.SwapPositions(p, q)
		if accept(delta, temp, r) {
			reportBest()
		} else {
			e.SwapPositions(p, q)
		}
	}
}

// vertexTeleportPhase implements spec.md §4.G sub-phase 3: n trials of
// relocating a random vertex to a random different position, re-paging its
// incident edges, and reverting both the position and the distribution on
// rejection.
func vertexTeleportPhase(e *embedding.Embedding, r *rng.Source, temp float64, reportBest func()) {
	n := e.N()
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		v := r.Intn(n)
		oldPos := e.PositionOf(v)
		newPos := oldPos
		for newPos == oldPos {
			newPos = r.Intn(n)
		}

		distSnapshot := append([]int(nil), e.Distribution()...)
		before := e.Crossings()

		e.MoveVertexTo(oldPos, newPos)
		for _, edgeIdx := range e.Graph().Vertex(v).Edges() {
			greedy.BestPageForEdge(e, edgeIdx)
		}
		after := e.Crossings()
		delta := after - before

		if accept(delta, temp, r) {
			reportBest()
		} else {
			e.MoveVertexTo(e.PositionOf(v), oldPos)
			e.SetDistribution(distSnapshot)
		}
	}
}

// greedyRefinePhase implements spec.md §4.G sub-phase 4: floor(n/4)+1
// trials of best-position-for-vertex followed by re-paging the chosen
// vertex's incident edges.
func greedyRefinePhase(e *embedding.Embedding, r *rng.Source, temp float64, reportBest func()) {
	n := e.N()
	if n == 0 {
		return
	}
	trials := n/4 + 1
	for i := 0; i < trials; i++ {
		v := r.Intn(n)
		oldPos := e.PositionOf(v)
		distSnapshot := append([]int(nil), e.Distribution()...)
		before := e.Crossings()

		greedy.BestPositionForVertex(e, v)
		for _, edgeIdx := range e.Graph().Vertex(v).Edges() {
			greedy.BestPageForEdge(e, edgeIdx)
		}
		after := e.Crossings()
		delta := after - before

		if accept(delta, temp, r) {
			reportBest()
		} else {
			e.MoveVertexTo(e.PositionOf(v), oldPos)
			e.SetDistribution(distSnapshot)
		}
	}
}

// isqrt returns the integer (floor) square root of n.
func isqrt(n int) int {
	if n < 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for (r+1)*(r+1) <= n {
		r++
	}
	for r*r > n {
		r--
	}
	return r
}
