package vorder

import (
	"github.com/bookembed/pagecross/embedding"
	"github.com/bookembed/pagecross/rng"
)

// HamiltonPath attempts to cover the window with a single random walk that
// never reuses an edge, using "short-circuit" reversal when the walk hits
// an already-visited vertex (the Angluin-Valiant random-walk Hamilton-path
// heuristic, spec.md §4.D). Up to two restarts are permitted; if no attempt
// covers every window member, the walk's vertex set is completed by running
// RandomDFS over the uncovered suffix.
func HamiltonPath(e *embedding.Embedding, w Window, r *rng.Source) error {
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
	memberList := make([]int, 0, len(members))
	for v := range members {
		memberList = append(memberList, v)
	}

	const maxRestarts = 3 // initial attempt plus two permitted restarts
	var best []int
	for attempt := 0; attempt < maxRestarts; attempt++ {
		path := randomWalkNoRepeatEdge(g, members, memberList, r)
		if len(path) > len(best) {
			best = path
		}
		if len(best) == len(memberList) {
			break
		}
	}

	if len(best) < len(memberList) {
		covered := make(map[int]bool, len(best))
		for _, v := range best {
			covered[v] = true
		}
		rest := windowMembersMinus(memberList, covered)
		suffixOrder := dfsOverSubset(g, members, rest, r)
		best = append(best, suffixOrder...)
	}

	applyOrder(e, positions, best)
	return nil
}

// randomWalkNoRepeatEdge performs one Angluin-Valiant attempt: a walk that
// never traverses the same edge twice, reversing its own path so far (a
// "short circuit") whenever it would otherwise step onto an already-visited
// vertex, continuing from the new end of the reversed path.
func randomWalkNoRepeatEdge(g interface {
	Neighbors(int) []int
}, members map[int]bool, memberList []int, r *rng.Source) []int {
	if len(memberList) == 0 {
		return nil
	}
	start := memberList[0]
	if r != nil {
		start = memberList[r.Intn(len(memberList))]
	}

	path := []int{start}
	visited := map[int]bool{start: true}
	usedEdge := make(map[[2]int]bool)

	edgeKey := func(a, b int) [2]int {
		if a > b {
			a, b = b, a
		}
		return [2]int{a, b}
	}

	for {
		cur := path[len(path)-1]
		var candidates []int
		for _, nb := range g.Neighbors(cur) {
			if !members[nb] {
				continue
			}
			if usedEdge[edgeKey(cur, nb)] {
				continue
			}
			candidates = append(candidates, nb)
		}
		if len(candidates) == 0 {
			break
		}
		next := candidates[0]
		if r != nil {
			next = candidates[r.Intn(len(candidates))]
		}
		usedEdge[edgeKey(cur, next)] = true

		if visited[next] {
			// Short-circuit: reverse the part of the path after next, so
			// the just-used edge (cur,next) joins next to cur and the walk
			// continues from next's former successor, discarding nothing
			// (it is a relabeling, not a truncation).
			idx := indexOf(path, next)
			reverse(path[idx+1:])
			continue
		}
		path = append(path, next)
		visited[next] = true
		if len(visited) == len(memberList) {
			break
		}
	}
	return path
}

func indexOf(path []int, v int) int {
	for i, x := range path {
		if x == v {
			return i
		}
	}
	return -1
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func windowMembersMinus(memberList []int, covered map[int]bool) []int {
	var out []int
	for _, v := range memberList {
		if !covered[v] {
			out = append(out, v)
		}
	}
	return out
}

// dfsOverSubset runs a RandomDFS-style traversal restricted to rest (used
// to complete an incomplete Hamilton-path attempt).
func dfsOverSubset(g interface {
	Neighbors(int) []int
}, members map[int]bool, rest []int, r *rng.Source) []int {
	restSet := make(map[int]bool, len(rest))
	for _, v := range rest {
		restSet[v] = true
	}
	visited := make(map[int]bool, len(rest))
	var order []int

	for _, root := range rest {
		if visited[root] {
			continue
		}
		stack := []int{root}
		visited[root] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			order = append(order, v)
			var neighbors []int
			for _, nb := range g.Neighbors(v) {
				if restSet[nb] && !visited[nb] {
					neighbors = append(neighbors, nb)
				}
			}
			if r != nil {
				r.ShuffleInts(neighbors)
			}
			for _, nb := range neighbors {
				visited[nb] = true
				stack = append(stack, nb)
			}
		}
	}
	return order
}
