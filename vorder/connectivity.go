package vorder

import (
	"github.com/bookembed/pagecross/core"
	"github.com/bookembed/pagecross/embedding"
	"github.com/bookembed/pagecross/rng"
)

// Selector chooses which unplaced vertex the Connectivity heuristic places
// next (spec.md §4.D).
type Selector int

const (
	// SelectNext picks the lowest-index unplaced window member.
	SelectNext Selector = iota
	// SelectRandom picks a uniformly random unplaced window member.
	SelectRandom
	// SelectInCon picks the unplaced member with the most placed neighbors.
	SelectInCon
	// SelectOutCon picks the unplaced member with the most unplaced neighbors.
	SelectOutCon
	// SelectConnectivity maximizes placed-neighbor count, tie-breaking by
	// maximizing unplaced-neighbor count.
	SelectConnectivity
)

// Placer chooses which end of the growing window sequence a newly selected
// vertex is inserted at (spec.md §4.D).
type Placer int

const (
	// PlaceFixed always appends to the tail end.
	PlaceFixed Placer = iota
	// PlaceRandom picks head or tail uniformly at random.
	PlaceRandom
	// PlaceCrossings picks whichever end minimizes new crossings between
	// the new vertex's edges to already-placed vertices and the set of
	// already-placed edges.
	PlaceCrossings
	// PlaceELen picks whichever end minimizes the sum of lengths (in
	// already-assigned positions) of edges the new vertex closes.
	PlaceELen
)

// connState tracks the per-vertex placed/unplaced neighbor counts and the
// placed-bitset that both Connectivity and GreedyConnectivity maintain
// (spec.md §4.D "State tracks per-vertex placed-/unplaced-neighbor counts
// and a bitset of placed vertices").
type connState struct {
	members  map[int]bool
	placed   map[int]bool
	placedN  map[int]int // placed-neighbor count per vertex
	unplaceN map[int]int // unplaced-neighbor count per vertex
}

func newConnState(g *core.Graph, members map[int]bool) *connState {
	s := &connState{
		members:  members,
		placed:   make(map[int]bool, len(members)),
		placedN:  make(map[int]int, len(members)),
		unplaceN: make(map[int]int, len(members)),
	}
	for v := range members {
		s.unplaceN[v] = subsetDegree(g, v, members)
	}
	return s
}

func (s *connState) markPlaced(g *core.Graph, v int) {
	s.placed[v] = true
	for _, nb := range g.Neighbors(v) {
		if !s.members[nb] {
			continue
		}
		s.placedN[nb]++
		s.unplaceN[nb]--
	}
}

// selectNext returns the next unplaced vertex according to sel.
func (s *connState) selectNext(memberList []int, sel Selector, r *rng.Source) int {
	var unplaced []int
	for _, v := range memberList {
		if !s.placed[v] {
			unplaced = append(unplaced, v)
		}
	}
	if len(unplaced) == 0 {
		return -1
	}
	switch sel {
	case SelectRandom:
		if r == nil {
			return unplaced[0]
		}
		return unplaced[r.Intn(len(unplaced))]
	case SelectInCon:
		best := unplaced[0]
		for _, v := range unplaced[1:] {
			if s.placedN[v] > s.placedN[best] {
				best = v
			}
		}
		return best
	case SelectOutCon:
		best := unplaced[0]
		for _, v := range unplaced[1:] {
			if s.unplaceN[v] > s.unplaceN[best] {
				best = v
			}
		}
		return best
	case SelectConnectivity:
		best := unplaced[0]
		for _, v := range unplaced[1:] {
			if s.placedN[v] > s.placedN[best] ||
				(s.placedN[v] == s.placedN[best] && s.unplaceN[v] > s.unplaceN[best]) {
				best = v
			}
		}
		return best
	default: // SelectNext
		best := unplaced[0]
		for _, v := range unplaced[1:] {
			if v < best {
				best = v
			}
		}
		return best
	}
}

// Connectivity grows the window's spine order one vertex at a time, picking
// the next vertex with sel and inserting it at one of the two open ends of
// the window (tracked by a head/tail pointer pair) chosen by placer
// (spec.md §4.D).
//
// Connectivity requires the window's induced subgraph to be connected
// (spec.md §7, "connectivity-based heuristics"); it returns
// ErrDisconnectedGraph otherwise, and ErrEmptyGraph if the window has no
// vertices.
func Connectivity(e *embedding.Embedding, w Window, sel Selector, placer Placer, r *rng.Source) error {
	n := e.N()
	if err := w.validate(n); err != nil {
		return err
	}
	g := e.Graph()
	members := windowMembers(e, w)
	positions := w.Positions(n)
	if len(positions) == 0 {
		return ErrEmptyGraph
	}
	if !isWindowConnected(g, members) {
		return ErrDisconnectedGraph
	}
	memberList := make([]int, 0, len(members))
	for v := range members {
		memberList = append(memberList, v)
	}

	state := newConnState(g, members)
	spine := append([]int(nil), e.Spine()...)
	placedPos := make(map[int]int, len(members)) // vertex -> final position, as decided so far
	var placedEdges [][2]int                      // (posA,posB) of edges between two already-placed vertices

	head, tail := 0, len(positions)-1
	for i := 0; i < len(positions); i++ {
		v := state.selectNext(memberList, sel, r)
		if v < 0 {
			break
		}

		var pos int
		switch placer {
		case PlaceFixed:
			pos = positions[tail]
			tail--
		case PlaceRandom:
			if r != nil && r.Intn(2) == 0 && head <= tail {
				pos = positions[head]
				head++
			} else {
				pos = positions[tail]
				tail--
			}
		case PlaceCrossings:
			pos = pickEndByCrossings(g, v, members, placedPos, placedEdges, positions, head, tail)
			if pos == positions[head] {
				head++
			} else {
				tail--
			}
		case PlaceELen:
			pos = pickEndByLength(g, v, members, placedPos, positions, head, tail)
			if pos == positions[head] {
				head++
			} else {
				tail--
			}
		default:
			pos = positions[tail]
			tail--
		}

		spine[pos] = v
		placedPos[v] = pos
		for _, nb := range g.Neighbors(v) {
			if members[nb] {
				if np, ok := placedPos[nb]; ok {
					placedEdges = append(placedEdges, [2]int{pos, np})
				}
			}
		}
		state.markPlaced(g, v)
	}

	e.SetSpine(spine)
	return nil
}

// pickEndByCrossings evaluates placing v at positions[head] versus
// positions[tail] and returns whichever minimizes crossings between v's
// edges to already-placed neighbors and the already-placed-edge set.
func pickEndByCrossings(g *core.Graph, v int, members map[int]bool, placedPos map[int]int, placedEdges [][2]int, positions []int, head, tail int) int {
	if head > tail {
		return positions[tail]
	}
	if head == tail {
		return positions[head]
	}
	headPos, tailPos := positions[head], positions[tail]

	newEdges := func(vPos int) [][2]int {
		var out [][2]int
		for _, nb := range g.Neighbors(v) {
			if !members[nb] {
				continue
			}
			if np, ok := placedPos[nb]; ok {
				out = append(out, [2]int{vPos, np})
			}
		}
		return out
	}
	countCrossings := func(candidates [][2]int) int {
		cnt := 0
		for _, a := range candidates {
			for _, b := range placedEdges {
				if canCrossOrdered(a[0], a[1], b[0], b[1]) {
					cnt++
				}
			}
		}
		return cnt
	}

	headCross := countCrossings(newEdges(headPos))
	tailCross := countCrossings(newEdges(tailPos))
	if headCross < tailCross {
		return headPos
	}
	return tailPos
}

// pickEndByLength evaluates placing v at positions[head] versus
// positions[tail] and returns whichever minimizes the sum of |posA-posB|
// over edges v closes with already-placed neighbors.
func pickEndByLength(g *core.Graph, v int, members map[int]bool, placedPos map[int]int, positions []int, head, tail int) int {
	if head > tail {
		return positions[tail]
	}
	if head == tail {
		return positions[head]
	}
	headPos, tailPos := positions[head], positions[tail]

	sumLen := func(vPos int) int {
		total := 0
		for _, nb := range g.Neighbors(v) {
			if !members[nb] {
				continue
			}
			if np, ok := placedPos[nb]; ok {
				d := vPos - np
				if d < 0 {
					d = -d
				}
				total += d
			}
		}
		return total
	}

	if sumLen(headPos) <= sumLen(tailPos) {
		return headPos
	}
	return tailPos
}

func canCrossOrdered(u, v, x, y int) bool {
	if u > v {
		u, v = v, u
	}
	if x > y {
		x, y = y, x
	}
	return embedding.CanCross(u, v, x, y)
}

// GreedyConnectivity uses the CONNECTIVITY selector, but inserts each new
// vertex at whichever position within the window minimizes crossings
// between its edges-to-placed-neighbors and the set of already fully
// placed edges (both endpoints placed), rather than only choosing between
// the window's two open ends (spec.md §4.D).
//
// Same connectivity precondition as Connectivity (spec.md §7):
// ErrDisconnectedGraph on a disconnected window, ErrEmptyGraph on an empty
// one.
func GreedyConnectivity(e *embedding.Embedding, w Window) error {
	n := e.N()
	if err := w.validate(n); err != nil {
		return err
	}
	g := e.Graph()
	members := windowMembers(e, w)
	positions := w.Positions(n)
	if len(positions) == 0 {
		return ErrEmptyGraph
	}
	if !isWindowConnected(g, members) {
		return ErrDisconnectedGraph
	}
	memberList := make([]int, 0, len(members))
	for v := range members {
		memberList = append(memberList, v)
	}

	state := newConnState(g, members)
	spine := append([]int(nil), e.Spine()...)
	occupied := make(map[int]bool, len(positions)) // spine position -> occupied
	placedPos := make(map[int]int, len(members))
	var placedEdges [][2]int

	for i := 0; i < len(positions); i++ {
		v := state.selectNext(memberList, SelectConnectivity, nil)
		if v < 0 {
			break
		}

		var incidentToPlaced []int // position of each already-placed neighbor
		for _, nb := range g.Neighbors(v) {
			if !members[nb] {
				continue
			}
			if np, ok := placedPos[nb]; ok {
				incidentToPlaced = append(incidentToPlaced, np)
			}
		}

		bestPos := -1
		bestCrossings := -1
		for _, pos := range positions {
			if occupied[pos] {
				continue
			}
			cnt := 0
			for _, np := range incidentToPlaced {
				for _, edge := range placedEdges {
					if canCrossOrdered(pos, np, edge[0], edge[1]) {
						cnt++
					}
				}
			}
			if bestPos < 0 || cnt < bestCrossings {
				bestPos, bestCrossings = pos, cnt
			}
		}
		if bestPos < 0 {
			break
		}

		spine[bestPos] = v
		occupied[bestPos] = true
		placedPos[v] = bestPos
		for _, nb := range g.Neighbors(v) {
			if members[nb] {
				if np, ok := placedPos[nb]; ok && nb != v {
					placedEdges = append(placedEdges, [2]int{bestPos, np})
				}
			}
		}
		state.markPlaced(g, v)
	}

	e.SetSpine(spine)
	return nil
}
