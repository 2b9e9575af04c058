package edist

import (
	"github.com/bookembed/pagecross/embedding"
	"github.com/bookembed/pagecross/rng"
)

// EarDecomposition builds the conflict graph (nodes are edges of the
// embedded graph, adjacency is the can-cross relation), takes a DFS tree of
// it, and treats each back edge as closing an "ear": the cycle formed by
// the back edge plus the tree path between its two conflict-graph
// endpoints. Ears are processed in discovery order; each ear's interior
// nodes (the tree-path nodes strictly between the two endpoints) are
// assigned the page minimizing the count of already-placed conflict
// -neighbors sharing that page; the two end nodes then each pick a random
// page distinct from their adjacent interior node's page (or, when the ear
// has no interior node, distinct from each other). Conflict-graph nodes
// never reached by any back edge's ear (isolated in the conflict graph, or
// pure tree edges with no closing back edge) get a uniform random page
// (spec.md §4.E).
func EarDecomposition(e *embedding.Embedding, r *rng.Source) error {
	k := e.K()
	if k < 1 {
		return ErrInvalidK
	}
	m := e.M()
	adj := buildConflictAdjacency(e)

	dist := make([]int, m)
	for i := range dist {
		dist[i] = embedding.PagePending
	}
	placed := make([]bool, m)

	parent := make([]int, m)
	depth := make([]int, m)
	visited := make([]bool, m)
	for i := range parent {
		parent[i] = -1
	}

	var earEndpoints [][2]int // (u, ancestor v) back edges in discovery order

	for root := 0; root < m; root++ {
		if visited[root] {
			continue
		}
		stack := []int{root}
		visited[root] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nb := range adj[v] {
				if !visited[nb] {
					visited[nb] = true
					parent[nb] = v
					depth[nb] = depth[v] + 1
					stack = append(stack, nb)
				} else if nb != parent[v] && depth[nb] < depth[v] && isAncestor(parent, nb, v) {
					earEndpoints = append(earEndpoints, [2]int{v, nb})
				}
			}
		}
	}

	for _, ear := range earEndpoints {
		u, v := ear[0], ear[1]
		path := treePath(parent, u, v)
		if len(path) < 2 {
			continue
		}
		interior := path[1 : len(path)-1]

		for _, node := range interior {
			if placed[node] {
				continue
			}
			dist[node] = pageMinimizingPlacedNeighbors(node, adj, dist, placed, k)
			placed[node] = true
		}

		assignEndpoint := func(end int, adjacentInterior int, hasInterior bool) {
			if placed[end] {
				return
			}
			if hasInterior && placed[adjacentInterior] {
				dist[end] = differentPage(dist[adjacentInterior], k, r)
			} else {
				dist[end] = r.Intn(k)
			}
			placed[end] = true
		}
		if len(interior) > 0 {
			assignEndpoint(u, interior[0], true)
			assignEndpoint(v, interior[len(interior)-1], true)
		} else {
			assignEndpoint(u, v, false)
			assignEndpoint(v, u, placed[u])
		}
	}

	for i := 0; i < m; i++ {
		if dist[i] == embedding.PagePending {
			dist[i] = r.Intn(k)
		}
	}
	e.SetDistribution(dist)
	return nil
}

func buildConflictAdjacency(e *embedding.Embedding) [][]int {
	m := e.M()
	adj := make([][]int, m)
	for i := 0; i < m; i++ {
		si, li := e.EdgePositions(i)
		for j := i + 1; j < m; j++ {
			sj, lj := e.EdgePositions(j)
			if embedding.CanCross(si, li, sj, lj) {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}
	return adj
}

// isAncestor reports whether ancestor lies on v's parent chain.
func isAncestor(parent []int, ancestor, v int) bool {
	for cur := v; cur != -1; cur = parent[cur] {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// treePath returns the path from u up to v via parent pointers, assuming v
// is an ancestor of u (path[0]==u, path[len-1]==v).
func treePath(parent []int, u, v int) []int {
	var path []int
	for cur := u; ; cur = parent[cur] {
		path = append(path, cur)
		if cur == v || parent[cur] == -1 {
			break
		}
	}
	return path
}

func pageMinimizingPlacedNeighbors(node int, adj [][]int, dist []int, placed []bool, k int) int {
	counts := make([]int, k)
	for _, nb := range adj[node] {
		if placed[nb] {
			counts[dist[nb]]++
		}
	}
	best := 0
	for page := 1; page < k; page++ {
		if counts[page] < counts[best] {
			best = page
		}
	}
	return best
}
