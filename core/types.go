package core

// Vertex identifies a graph node by its position in Graph.vertices. Equality
// and hashing, wherever used by this module's heuristics, is by Index alone.
type Vertex struct {
	// Index is this vertex's position in Graph.vertices; it never changes
	// after construction.
	Index int

	// edges lists the indices (into Graph.edges) of edges incident to this
	// vertex, in insertion order. Reordering this slice in place would not
	// violate any invariant; no heuristic in this module does so (the vorder
	// heuristics shuffle their own copies of neighbor lists).
	edges []int
}

// Edges returns the vertex's incident edge indices. The returned slice
// aliases the vertex's internal storage, so a caller that reorders it
// changes this vertex's incident-edge order.
func (v *Vertex) Edges() []int { return v.edges }

// Degree returns the number of edges incident to v.
func (v *Vertex) Degree() int { return len(v.edges) }

// Edge is an undirected pair of vertex indices, canonicalized at
// construction so that Start < Target. Equality and hashing is by
// (Start,Target) alone.
type Edge struct {
	// Index is this edge's position in Graph.edges; it never changes.
	Index int

	// Start and Target are vertex indices with Start < Target (core §3).
	Start  int
	Target int
}

// Other returns the endpoint of e that is not v. Behavior is undefined if v
// is not an endpoint of e; callers in this module only ever call it from a
// context that already knows v is incident to e.
func (e Edge) Other(v int) int {
	if e.Start == v {
		return e.Target
	}
	return e.Start
}

// Graph is a simple undirected graph: no self-loops, no parallel edges.
// Vertices and edges are addressed purely by index; Graph owns both arrays.
type Graph struct {
	vertices []Vertex
	edges    []Edge
}

// NewGraph builds a Graph over n vertices (indices [0,n)) from a list of
// (start,target) pairs. Edges are canonicalized (start<target) and assigned
// edgeIndex == their position in the input slice after canonicalization
// order is preserved (i.e. edgeIndex i corresponds to pairs[i]).
//
// Returns ErrVertexIndexRange, ErrSelfLoop, or ErrMultiEdge on invalid
// input; the graph is otherwise built eagerly and is ready to use.
func NewGraph(n int, pairs [][2]int) (*Graph, error) {
	g := &Graph{
		vertices: make([]Vertex, n),
		edges:    make([]Edge, 0, len(pairs)),
	}
	for i := range g.vertices {
		g.vertices[i].Index = i
	}

	seen := make(map[[2]int]struct{}, len(pairs))
	for _, p := range pairs {
		u, v := p[0], p[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, ErrVertexIndexRange
		}
		if u == v {
			return nil, ErrSelfLoop
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return nil, ErrMultiEdge
		}
		seen[key] = struct{}{}

		idx := len(g.edges)
		g.edges = append(g.edges, Edge{Index: idx, Start: u, Target: v})
		g.vertices[u].edges = append(g.vertices[u].edges, idx)
		g.vertices[v].edges = append(g.vertices[v].edges, idx)
	}
	return g, nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return len(g.vertices) }

// M returns the number of edges.
func (g *Graph) M() int { return len(g.edges) }

// Vertex returns the vertex at index i. No bounds checking is performed;
// callers in this module only index within [0,N()).
func (g *Graph) Vertex(i int) *Vertex { return &g.vertices[i] }

// Edge returns the edge at index i.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// Edges returns the full edge array, indexed by edge index.
func (g *Graph) Edges() []Edge { return g.edges }

// Degree returns the degree of vertex i.
func (g *Graph) Degree(i int) int { return len(g.vertices[i].edges) }

// Neighbors returns, in the vertex's current incident-edge order, the index
// of each neighboring vertex (spec.md §4.A: "the vertex at the opposite end
// of each incident edge in the edge list's current order").
func (g *Graph) Neighbors(i int) []int {
	inc := g.vertices[i].edges
	out := make([]int, len(inc))
	for j, eid := range inc {
		out[j] = g.edges[eid].Other(i)
	}
	return out
}

// Clone returns a deep copy: fresh Vertex and Edge storage with the same
// indices and incident-edge order (core §4.A "deep copy").
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		vertices: make([]Vertex, len(g.vertices)),
		edges:    make([]Edge, len(g.edges)),
	}
	copy(cp.edges, g.edges)
	for i := range g.vertices {
		cp.vertices[i].Index = g.vertices[i].Index
		cp.vertices[i].edges = append([]int(nil), g.vertices[i].edges...)
	}
	return cp
}

// Problem pairs a Graph with a page budget k and an optional known-optimum
// crossing count.
type Problem struct {
	Graph *Graph
	K     int

	// KnownOptimum is the known-optimal crossing count, or UnknownOptimum
	// if none is known. Optimizers compare against this to detect the
	// "optimal reached" normal-termination case (spec.md §7).
	KnownOptimum int64
}

// UnknownOptimum is the sentinel value of Problem.KnownOptimum meaning "no
// known optimum".
const UnknownOptimum int64 = -1

// NewProblem builds a Problem. Returns ErrInvalidK if k < 1.
func NewProblem(g *Graph, k int) (*Problem, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	return &Problem{Graph: g, K: k, KnownOptimum: UnknownOptimum}, nil
}
