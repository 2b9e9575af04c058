package embedding

import (
	"fmt"

	"github.com/bookembed/pagecross/core"
)

// PagePending marks a distribution slot as not-yet-assigned, used only
// during construction by heuristics that place edges incrementally
// (spec.md §3).
const PagePending = -1

// crossingsInvalid is the cache sentinel meaning "recompute on next read".
// A nullable/invalid marker is cleaner than a boolean-plus-value pair
// (DESIGN NOTES §9); any valid crossing count is >= 0, so -1 is a safe,
// branch-predictable sentinel.
const crossingsInvalid int64 = -1

// Counter computes the total or per-page crossing count of an Embedding.
// Implementations live in package crossing; Embedding only depends on this
// interface (DESIGN NOTES §9, "Pluggable counter").
type Counter interface {
	// Count returns the total number of crossings across all pages.
	Count(e *Embedding) int64
	// CountPage returns the number of crossings restricted to a single page.
	CountPage(e *Embedding, page int) int64
}

// Embedding is the mutable state of a k-page book embedding over a fixed
// Problem. It exclusively owns its three arrays and its crossing cache; it
// holds a shared, read-only reference to the Problem (spec.md §3
// "Ownership").
type Embedding struct {
	problem *core.Problem

	spine         []int // position -> vertex index
	vertexOnSpine []int // vertex index -> position
	distribution  []int // edge index -> page index, or PagePending

	crossings int64
	counter   Counter
}

// New builds an Embedding over problem with the identity spine
// (spine[i]==i) and every edge on page 0 (spec.md §6: "identity spine and
// zero distribution"). counter must be non-nil; see package crossing for
// implementations.
func New(problem *core.Problem, counter Counter) *Embedding {
	n := problem.Graph.N()
	m := problem.Graph.M()
	e := &Embedding{
		problem:       problem,
		spine:         make([]int, n),
		vertexOnSpine: make([]int, n),
		distribution:  make([]int, m),
		crossings:     crossingsInvalid,
		counter:       counter,
	}
	for i := 0; i < n; i++ {
		e.spine[i] = i
		e.vertexOnSpine[i] = i
	}
	return e
}

// Problem returns the (read-only, shared) Problem this embedding was built
// from.
func (e *Embedding) Problem() *core.Problem { return e.problem }

// Graph is shorthand for e.Problem().Graph.
func (e *Embedding) Graph() *core.Graph { return e.problem.Graph }

// K is shorthand for e.Problem().K.
func (e *Embedding) K() int { return e.problem.K }

// N returns the number of vertices (spine length).
func (e *Embedding) N() int { return len(e.spine) }

// M returns the number of edges (distribution length).
func (e *Embedding) M() int { return len(e.distribution) }

// SetCounter swaps the active crossing calculator. It does not invalidate
// the cache: counters must agree bit-for-bit (spec.md §8 invariant 3), so a
// cached value from one counter remains valid under another.
func (e *Embedding) SetCounter(c Counter) { e.counter = c }

// Counter returns the active crossing calculator.
func (e *Embedding) Counter() Counter { return e.counter }

// SpineAt returns the vertex at spine position pos.
func (e *Embedding) SpineAt(pos int) int { return e.spine[pos] }

// PositionOf returns the spine position of vertex v.
func (e *Embedding) PositionOf(v int) int { return e.vertexOnSpine[v] }

// PageOf returns the page assigned to edge idx (or PagePending).
func (e *Embedding) PageOf(edgeIdx int) int { return e.distribution[edgeIdx] }

// Spine returns the underlying spine array. The returned slice aliases
// Embedding's storage; callers must not mutate it directly (use the
// mutators in mutators.go, which keep vertexOnSpine and the cache
// consistent).
func (e *Embedding) Spine() []int { return e.spine }

// VertexOnSpine returns the underlying inverse-spine array. See Spine's
// aliasing note.
func (e *Embedding) VertexOnSpine() []int { return e.vertexOnSpine }

// Distribution returns the underlying distribution array. See Spine's
// aliasing note.
func (e *Embedding) Distribution() []int { return e.distribution }

// invalidate marks the crossing cache stale. Called by every mutator.
func (e *Embedding) invalidate() { e.crossings = crossingsInvalid }

// Crossings returns the total crossing count, using the cached value if
// still valid or recomputing (and caching) it via the active Counter
// otherwise.
func (e *Embedding) Crossings() int64 {
	if e.crossings == crossingsInvalid {
		e.crossings = e.counter.Count(e)
	}
	return e.crossings
}

// CrossingsOnPage returns the crossing count restricted to a single page.
// It is always computed fresh (the cache only tracks the embedding-wide
// total, used heavily by greedy/annealing page re-evaluation).
func (e *Embedding) CrossingsOnPage(page int) int64 {
	return e.counter.CountPage(e, page)
}

// CheckInvariants re-validates spine/vertexOnSpine mutual-inverse-ness, that
// the active Counter returns a non-negative count, and the cache-consistency
// invariant (spec.md §8, invariants 1 and 6). It always runs a fresh count,
// so it is intended for test and debug-assertion use, not the hot path.
func (e *Embedding) CheckInvariants() error {
	n := e.N()
	if len(e.vertexOnSpine) != n {
		return fmt.Errorf("vertexOnSpine length %d != spine length %d: %w", len(e.vertexOnSpine), n, ErrInvariantBroken)
	}
	for pos, v := range e.spine {
		if e.vertexOnSpine[v] != pos {
			return fmt.Errorf("spine[%d]=%d but vertexOnSpine[%d]=%d: %w", pos, v, v, e.vertexOnSpine[v], ErrInvariantBroken)
		}
	}
	fresh := e.counter.Count(e)
	if fresh < 0 {
		return fmt.Errorf("counter returned negative crossings %d: %w", fresh, ErrInvariantBroken)
	}
	if e.crossings != crossingsInvalid {
		if fresh != e.crossings {
			return fmt.Errorf("cached crossings %d != fresh %d: %w", e.crossings, fresh, ErrInvariantBroken)
		}
	}
	return nil
}

// Clone returns a deep copy of e: fresh spine/vertexOnSpine/distribution
// arrays and the same cache state, immune to subsequent mutation of the
// original (spec.md §3, "Ownership" — used by the optimizer harness to
// store a best-so-far snapshot).
func (e *Embedding) Clone() *Embedding {
	cp := &Embedding{
		problem:       e.problem,
		spine:         append([]int(nil), e.spine...),
		vertexOnSpine: append([]int(nil), e.vertexOnSpine...),
		distribution:  append([]int(nil), e.distribution...),
		crossings:     e.crossings,
		counter:       e.counter,
	}
	return cp
}
