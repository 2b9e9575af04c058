package vorder

import (
	"github.com/bookembed/pagecross/core"
	"github.com/bookembed/pagecross/embedding"
	"github.com/bookembed/pagecross/rng"
)

// subsetDegree returns the number of neighbors of v that also belong to
// members (the window's vertex set), i.e. v's degree in the induced
// subgraph, matching spec.md §4.D "smallest degree in the window".
func subsetDegree(g *core.Graph, v int, members map[int]bool) int {
	d := 0
	for _, n := range g.Neighbors(v) {
		if members[n] {
			d++
		}
	}
	return d
}

// windowMembers returns the set of vertices currently occupying w's spine
// positions.
func windowMembers(e *embedding.Embedding, w Window) map[int]bool {
	n := e.N()
	set := make(map[int]bool, w.Len(n))
	for _, pos := range w.Positions(n) {
		set[e.SpineAt(pos)] = true
	}
	return set
}

// isWindowConnected reports whether members forms a single connected
// component under g's induced subgraph (spec.md §7: MaxNbr and the
// Connectivity family "document this" as a precondition).
func isWindowConnected(g *core.Graph, members map[int]bool) bool {
	if len(members) == 0 {
		return true
	}
	var root int
	for v := range members {
		root = v
		break
	}
	visited := map[int]bool{root: true}
	stack := []int{root}
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range g.Neighbors(v) {
			if members[nb] && !visited[nb] {
				visited[nb] = true
				count++
				stack = append(stack, nb)
			}
		}
	}
	return count == len(members)
}

// RandomDFS writes a stack-based DFS visit order into w's window: the root
// is chosen uniformly at random from the window's vertex set, and at each
// pop unvisited neighbors within the window are pushed in randomized order
// (spec.md §4.D). When a root's component is exhausted and window members
// remain, the next root is again drawn uniformly at random from the
// unvisited members; it is not found by advancing cyclically from the
// previous root.
func RandomDFS(e *embedding.Embedding, w Window, r *rng.Source) error {
	return dfsWindow(e, w, r, false)
}

// SmallestDegreeDFS is RandomDFS's deterministic-neighbor-order sibling:
// the root is the window member of smallest induced degree, and at each
// pop neighbors are pushed sorted by decreasing degree (so the
// smallest-degree neighbor is explored first, being popped last-in wins
// the top of the stack -- spec.md §4.D).
func SmallestDegreeDFS(e *embedding.Embedding, w Window, r *rng.Source) error {
	return dfsWindow(e, w, r, true)
}

func dfsWindow(e *embedding.Embedding, w Window, r *rng.Source, smallestDegreeFirst bool) error {
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

	visited := make(map[int]bool, len(members))
	order := make([]int, 0, len(positions))

	memberList := make([]int, 0, len(members))
	for v := range members {
		memberList = append(memberList, v)
	}

	for len(order) < len(positions) {
		root := pickRoot(memberList, visited, g, members, r, smallestDegreeFirst)
		if root < 0 {
			break
		}
		stack := []int{root}
		visited[root] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			order = append(order, v)

			neighbors := make([]int, 0, g.Degree(v))
			for _, nb := range g.Neighbors(v) {
				if members[nb] && !visited[nb] {
					neighbors = append(neighbors, nb)
				}
			}
			if smallestDegreeFirst {
				sortByDegreeDescending(neighbors, g, members)
			} else if r != nil {
				r.ShuffleInts(neighbors)
			}
			for _, nb := range neighbors {
				visited[nb] = true
				stack = append(stack, nb)
			}
		}
	}

	applyOrder(e, positions, order)
	return nil
}

// pickRoot chooses the next unvisited root: smallest induced degree among
// remaining unvisited members (SDDFS), or uniformly random among them
// (RDFS). Disconnected windows are covered by calling it again each time a
// component is exhausted; it does not step cyclically from the previous
// root.
func pickRoot(memberList []int, visited map[int]bool, g *core.Graph, members map[int]bool, r *rng.Source, smallestDegreeFirst bool) int {
	var candidates []int
	for _, v := range memberList {
		if !visited[v] {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	if smallestDegreeFirst {
		best := candidates[0]
		bestDeg := subsetDegree(g, best, members)
		for _, v := range candidates[1:] {
			d := subsetDegree(g, v, members)
			if d < bestDeg {
				best, bestDeg = v, d
			}
		}
		return best
	}
	if r == nil {
		return candidates[0]
	}
	return candidates[r.Intn(len(candidates))]
}

func sortByDegreeDescending(vertices []int, g *core.Graph, members map[int]bool) {
	for i := 1; i < len(vertices); i++ {
		for j := i; j > 0; j-- {
			di := subsetDegree(g, vertices[j], members)
			dj := subsetDegree(g, vertices[j-1], members)
			if di <= dj {
				break
			}
			vertices[j-1], vertices[j] = vertices[j], vertices[j-1]
		}
	}
}

// applyOrder writes order (visit order of window members) into positions
// (window positions, already in window-traversal order), leaving every
// position outside the window untouched.
func applyOrder(e *embedding.Embedding, positions []int, order []int) {
	spine := append([]int(nil), e.Spine()...)
	for i, pos := range positions {
		spine[pos] = order[i]
	}
	e.SetSpine(spine)
}
