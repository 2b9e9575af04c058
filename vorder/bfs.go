package vorder

import (
	"github.com/bookembed/pagecross/core"
	"github.com/bookembed/pagecross/embedding"
	"github.com/bookembed/pagecross/rng"
)

// RandomBFS writes a classic BFS visit order into w's window, randomizing
// each vertex's neighbor enqueue order, cycling to a fresh root if the
// window's induced subgraph is disconnected (spec.md §4.D).
func RandomBFS(e *embedding.Embedding, w Window, r *rng.Source) error {
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

	visited := make(map[int]bool, len(members))
	order := make([]int, 0, len(positions))

	for len(order) < len(positions) {
		root := pickRoot(memberList, visited, g, members, r, false)
		if root < 0 {
			break
		}
		queue := []int{root}
		visited[root] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			order = append(order, v)

			neighbors := make([]int, 0, g.Degree(v))
			for _, nb := range g.Neighbors(v) {
				if members[nb] && !visited[nb] {
					neighbors = append(neighbors, nb)
				}
			}
			if r != nil {
				r.ShuffleInts(neighbors)
			}
			for _, nb := range neighbors {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	applyOrder(e, positions, order)
	return nil
}

// BFSTree builds a BFS spanning tree of the window's induced subgraph
// rooted at the smallest-induced-degree vertex (matching SmallestDegreeDFS's
// root choice), then recursively orders it with SmallestDegreeDFS run over
// the tree's own adjacency -- spec.md §4.D: "the resulting order is the
// crossing-free circular drawing of the tree".
func BFSTree(e *embedding.Embedding, w Window, r *rng.Source) error {
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

	treeAdj := make(map[int][]int, len(members))
	visited := make(map[int]bool, len(members))

	memberList := make([]int, 0, len(members))
	for v := range members {
		memberList = append(memberList, v)
	}

	order := make([]int, 0, len(positions))
	for len(order) < len(positions) {
		root := pickRoot(memberList, visited, g, members, nil, true)
		if root < 0 {
			break
		}
		queue := []int{root}
		visited[root] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			order = append(order, v)
			for _, nb := range g.Neighbors(v) {
				if members[nb] && !visited[nb] {
					visited[nb] = true
					treeAdj[v] = append(treeAdj[v], nb)
					treeAdj[nb] = append(treeAdj[nb], v)
					queue = append(queue, nb)
				}
			}
		}
	}

	treeOrder := smallestDegreeDFSOverAdjacency(memberList, treeAdj, g)
	applyOrder(e, positions, treeOrder)
	return nil
}

// smallestDegreeDFSOverAdjacency runs SmallestDegreeDFS's algorithm
// directly over an explicit adjacency map (the BFS tree edges), rather than
// the graph's own Neighbors, since BFSTree orders the tree, not G.
func smallestDegreeDFSOverAdjacency(members []int, adj map[int][]int, g *core.Graph) []int {
	visited := make(map[int]bool, len(members))
	order := make([]int, 0, len(members))
	degree := func(v int) int { return len(adj[v]) }

	for len(order) < len(members) {
		root := -1
		bestDeg := 0
		for _, v := range members {
			if visited[v] {
				continue
			}
			if root == -1 || degree(v) < bestDeg {
				root, bestDeg = v, degree(v)
			}
		}
		if root == -1 {
			break
		}
		stack := []int{root}
		visited[root] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			order = append(order, v)

			neighbors := make([]int, 0, len(adj[v]))
			for _, nb := range adj[v] {
				if !visited[nb] {
					neighbors = append(neighbors, nb)
				}
			}
			for i := 1; i < len(neighbors); i++ {
				for j := i; j > 0 && degree(neighbors[j]) > degree(neighbors[j-1]); j-- {
					neighbors[j-1], neighbors[j] = neighbors[j], neighbors[j-1]
				}
			}
			for _, nb := range neighbors {
				visited[nb] = true
				stack = append(stack, nb)
			}
		}
	}
	return order
}
