// Package network: derived summary statistics.

package network

// Properties summarizes a tabular graph as seen through its materialized
// in-memory form. Computed on demand, never stored.
type Properties struct {
	// NumNodes is the node count of the materialized graph.
	NumNodes int
	// NumEdges is the edge count of the materialized graph. For simple
	// kinds this reflects the post-merge view: duplicate endpoint pairs in
	// the edge table collapse into a single edge.
	NumEdges int
	// ParallelEdges counts edges in excess of one per endpoint pair.
	// Only multi kinds track multiplicity; simple kinds always report 0.
	ParallelEdges int
}

// Properties materializes the graph and reads the counts off the in-memory
// object. The graph object, not the tables, is authoritative here: simple
// kinds merge duplicate endpoint pairs during materialization, so the edge
// count can be lower than the edge table's row count.
// Complexity: O(V + E).
func (g *Graph) Properties() (Properties, error) {
	cg, err := g.ToCoreGraph()
	if err != nil {
		return Properties{}, err
	}
	p := Properties{
		NumNodes: cg.NumNodes(),
		NumEdges: cg.NumEdges(),
	}
	if g.kind.IsMulti() {
		p.ParallelEdges = cg.ParallelEdgeCount()
	}

	return p, nil
}
