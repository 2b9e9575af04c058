package harness

import (
	"fmt"
	"time"

	"github.com/bookembed/pagecross/core"
	"github.com/bookembed/pagecross/embedding"
)

// Reason identifies why an optimizer run stopped (spec.md §4.F
// "Termination", §7 "Resource exhaustion and optimal reached are not
// errors").
type Reason int

const (
	// ReasonRunning means the harness has not yet stopped.
	ReasonRunning Reason = iota
	// ReasonRoundGainZero means an optimizer round produced no improvement.
	ReasonRoundGainZero
	// ReasonBudgetExceeded means the wall-clock budget elapsed.
	ReasonBudgetExceeded
	// ReasonOptimumReached means the embedding's crossing count reached the
	// problem's known optimum.
	ReasonOptimumReached
)

func (r Reason) String() string {
	switch r {
	case ReasonRoundGainZero:
		return "round gain zero"
	case ReasonBudgetExceeded:
		return "budget exceeded"
	case ReasonOptimumReached:
		return "optimum reached"
	default:
		return "running"
	}
}

// DefaultBudget is the 15-minute wall-clock default (spec.md §4.F).
const DefaultBudget = 15 * time.Minute

// Harness holds the best-so-far embedding snapshot plus time/iteration
// counters for a single optimizer run (spec.md §4.H). It is not safe for
// concurrent use by multiple optimizer goroutines against the same
// instance; callers running parallel optimizers on disjoint embeddings use
// one Harness per worker (spec.md §5).
type Harness struct {
	problem *core.Problem
	budget  time.Duration
	start   time.Time

	best          *embedding.Embedding
	bestCrossings int64
	iterations    int
	reason        Reason
}

// Option configures a Harness at construction.
type Option func(*Harness)

// WithBudget overrides the default 15-minute wall-clock budget.
func WithBudget(d time.Duration) Option {
	return func(h *Harness) { h.budget = d }
}

// New builds a Harness seeded with initial as the first best-so-far
// snapshot (deep-copied immediately, per spec.md §3 "Ownership").
func New(problem *core.Problem, initial *embedding.Embedding, opts ...Option) *Harness {
	h := &Harness{
		problem: problem,
		budget:  DefaultBudget,
		start:   time.Time{},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.best = initial.Clone()
	h.bestCrossings = initial.Crossings()
	return h
}

// Start resets the harness's wall-clock and iteration counters to begin
// timing a run. Callers invoke this once, immediately before their
// optimizer loop starts.
func (h *Harness) Start(now time.Time) {
	h.start = now
	h.iterations = 0
	h.reason = ReasonRunning
}

// SetLocalBest copies e into the best-so-far snapshot only if e's crossing
// count is strictly lower than the current snapshot's, reporting whether it
// did (spec.md §4.H "setLocalBest copies the embedding only when strictly
// better than the current snapshot").
func (h *Harness) SetLocalBest(e *embedding.Embedding) bool {
	c := e.Crossings()
	if c >= h.bestCrossings {
		return false
	}
	h.best = e.Clone()
	h.bestCrossings = c
	return true
}

// BestSolution returns a fresh deep copy of the best embedding seen so far,
// so external observers never see a half-updated snapshot and cannot
// mutate the harness's internal record through the returned value (spec.md
// §4.H "handed out by value").
func (h *Harness) BestSolution() *embedding.Embedding {
	return h.best.Clone()
}

// BestCrossings returns the crossing count of the current best-so-far
// snapshot, without a deep copy.
func (h *Harness) BestCrossings() int64 {
	return h.bestCrossings
}

// Iterations returns the number of outer rounds counted so far.
func (h *Harness) Iterations() int {
	return h.iterations
}

// Tick increments the iteration counter by one; callers invoke this once
// per outer optimizer round.
func (h *Harness) Tick() {
	h.iterations++
}

// Elapsed returns the wall-clock time since Start, given the caller's
// current time.
func (h *Harness) Elapsed(now time.Time) time.Duration {
	if h.start.IsZero() {
		return 0
	}
	return now.Sub(h.start)
}

// BudgetExceeded reports whether the configured wall-clock budget has
// elapsed, given the caller's current time.
func (h *Harness) BudgetExceeded(now time.Time) bool {
	return h.Elapsed(now) >= h.budget
}

// ShouldContinue is the once-per-outer-round predicate optimizers call
// (spec.md §5 "checked once per outer round, never inside the inner
// sweep"). It increments the iteration counter, then reports false (and
// records the stopping Reason) the first time the wall-clock budget is
// exceeded or the known optimum is reached.
func (h *Harness) ShouldContinue(now time.Time) bool {
	h.Tick()
	if h.problem.KnownOptimum != core.UnknownOptimum && h.bestCrossings == h.problem.KnownOptimum {
		h.reason = ReasonOptimumReached
		return false
	}
	if h.BudgetExceeded(now) {
		h.reason = ReasonBudgetExceeded
		return false
	}
	return true
}

// NoteRoundGainZero records that a round produced no improvement, the
// third termination condition an optimizer loop reports itself (spec.md
// §4.F); ShouldContinue cannot detect this on its own since it has no
// visibility into what a round changed.
func (h *Harness) NoteRoundGainZero() {
	h.reason = ReasonRoundGainZero
}

// Reason returns why the harness last stopped (ReasonRunning if it has not
// stopped).
func (h *Harness) Reason() Reason {
	return h.reason
}

// CheckOptimumInvariant reports an error if the best-so-far crossing count
// has dropped below the problem's known optimum -- an impossible result
// that can only mean a counter or optimizer bug (spec.md §4.F "treat
// current<target as an invariant violation").
func (h *Harness) CheckOptimumInvariant() error {
	if h.problem.KnownOptimum == core.UnknownOptimum {
		return nil
	}
	if h.bestCrossings < h.problem.KnownOptimum {
		return fmt.Errorf("crossings %d below known optimum %d: %w", h.bestCrossings, h.problem.KnownOptimum, embedding.ErrInvariantBroken)
	}
	return nil
}
