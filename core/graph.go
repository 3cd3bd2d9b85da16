// Package core: Graph method implementations.
//
// Node and edge insertion follow merge semantics: re-adding an existing node
// (or, for simple kinds, an existing endpoint pair) updates its attribute map
// key by key, so the latest insertion wins per attribute. Multi kinds keep
// every parallel edge as a distinct Edge. Insertion order is preserved for
// both nodes and edges; all read APIs iterate in that order.

package core

// AddNode inserts the node id with the given attributes, or merges attrs
// into the existing node's attribute map (last write wins per key).
// attrs may be nil for an attribute-less node; the map is copied, never
// aliased. Returns ErrNilNodeID if id is nil.
// Complexity: O(len(attrs)) amortized.
func (g *Graph) AddNode(id any, attrs map[string]any) error {
	if id == nil {
		return ErrNilNodeID
	}
	existing, ok := g.nodes[id]
	if !ok {
		existing = make(map[string]any, len(attrs))
		g.nodes[id] = existing
		g.nodeOrder = append(g.nodeOrder, id)
	}
	for k, v := range attrs {
		existing[k] = v
	}

	return nil
}

// AddEdge inserts an edge from u to v carrying attrs, creating missing
// endpoint nodes on the fly. For multi kinds every call appends a distinct
// parallel edge; for simple kinds a repeated endpoint pair merges attrs into
// the existing edge (last write wins per key), preserving the orientation of
// the first insertion for undirected kinds.
// Returns ErrNilNodeID if either endpoint is nil.
// Complexity: O(len(attrs)) amortized.
func (g *Graph) AddEdge(u, v any, attrs map[string]any) error {
	if err := g.AddNode(u, nil); err != nil {
		return err
	}
	if err := g.AddNode(v, nil); err != nil {
		return err
	}

	key, found := g.lookupPair(u, v)
	if found && !g.kind.IsMulti() {
		// Simple kinds: merge into the single existing edge for this pair.
		e := g.edges[g.pairs[key][0]]
		for k, val := range attrs {
			e.Attrs[k] = val
		}

		return nil
	}

	copied := make(map[string]any, len(attrs))
	for k, val := range attrs {
		copied[k] = val
	}
	g.edges = append(g.edges, &Edge{From: key.u, To: key.v, Attrs: copied})
	g.pairs[key] = append(g.pairs[key], len(g.edges)-1)

	return nil
}

// lookupPair resolves the index key for the endpoint pair (u,v).
// For undirected kinds the reversed orientation matches too, so parallel
// edges of an unordered pair always share one key. found reports whether
// at least one edge already exists under the returned key.
func (g *Graph) lookupPair(u, v any) (pairKey, bool) {
	key := pairKey{u: u, v: v}
	if len(g.pairs[key]) > 0 {
		return key, true
	}
	if !g.kind.IsDirected() && u != v {
		rev := pairKey{u: v, v: u}
		if len(g.pairs[rev]) > 0 {
			return rev, true
		}
	}

	return key, false
}

// Kind returns the topology kind fixed at construction.
func (g *Graph) Kind() Kind { return g.kind }

// HasNode reports whether the node id exists.
// Complexity: O(1).
func (g *Graph) HasNode(id any) bool {
	_, ok := g.nodes[id]

	return ok
}

// NodeAttrs returns the attribute map of node id and whether it exists.
// The map is the live internal map; callers must not mutate it.
// Complexity: O(1).
func (g *Graph) NodeAttrs(id any) (map[string]any, bool) {
	attrs, ok := g.nodes[id]

	return attrs, ok
}

// HasEdge reports whether at least one edge connects u and v
// (either orientation for undirected kinds).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v any) bool {
	_, found := g.lookupPair(u, v)

	return found
}

// EdgesBetween returns all edges connecting u and v in insertion order
// (either orientation for undirected kinds). The result is nil when no such
// edge exists; at most one edge is returned for simple kinds.
// Complexity: O(p) for p parallel edges.
func (g *Graph) EdgesBetween(u, v any) []Edge {
	key, found := g.lookupPair(u, v)
	if !found {
		return nil
	}
	out := make([]Edge, 0, len(g.pairs[key]))
	for _, i := range g.pairs[key] {
		out = append(out, *g.edges[i])
	}

	return out
}

// Nodes returns all nodes in insertion order. Attribute maps are shared
// with the graph, not copied.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, Node{ID: id, Attrs: g.nodes[id]})
	}

	return out
}

// Edges returns all edges in insertion order. Attribute maps are shared
// with the graph, not copied.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}

	return out
}

// NumNodes returns the total number of nodes. O(1).
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the total number of edges, counting each parallel edge
// separately. O(1).
func (g *Graph) NumEdges() int { return len(g.edges) }

// ParallelEdgeCount returns the number of edges in excess of one per
// endpoint pair (unordered pair for undirected kinds). Always 0 for simple
// kinds, where repeated pairs merge instead of accumulating.
// Complexity: O(P) for P distinct endpoint pairs.
func (g *Graph) ParallelEdgeCount() int {
	var n int
	for _, idxs := range g.pairs {
		if len(idxs) > 1 {
			n += len(idxs) - 1
		}
	}

	return n
}
