// Package network provides the tabular graph value: a graph persisted as two
// columnar tables ("edges", "nodes") plus the topology kind and the names of
// the three structural columns.
//
// A Graph is built once through one of three factory paths - raw tables
// (FromTables), a named-table collection (FromTableSet), or an in-memory
// graph object (FromCoreGraph) - and is immutable afterwards. Construction
// is atomic: either every schema invariant holds and both tables are
// attached, or an error is returned and no partial value escapes. When no
// node table is supplied, the node set is inferred from the distinct edge
// endpoints (see infer.go).
//
// On top of the stored tables the package offers on-demand materialization
// into a core.Graph (materialize.go), an embedded SQL query surface binding
// the two tables as relations (query.go), and derived summary statistics
// (properties.go).
package network

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tabnet/core"
	"github.com/katalvlaran/tabnet/table"
)

// Graph is the canonical tabular representation of a network graph.
// Immutable once constructed; all read accessors return stored or derived
// values only.
type Graph struct {
	kind      core.Kind
	sourceCol string
	targetCol string
	nodeIDCol string
	tables    map[string]*table.Table // keyed EdgesTableName / NodesTableName
}

// FromTables builds a Graph of the given kind from an edge table and an
// optional node table (nil to infer nodes from the edge endpoints).
//
// The edges table must contain the configured source and target columns; a
// supplied nodes table must contain the node-id column. Violations fail with
// ErrMissingColumn naming the column and listing the available ones. A
// user-supplied node table is trusted as-is: callers restricting the node
// set deliberately are responsible for endpoint coverage.
// Returns ErrUnsupportedGraphType for a kind outside the four variants.
func FromTables(kind core.Kind, edges, nodes *table.Table, opts ...Option) (*Graph, error) {
	o := gatherOptions(opts...)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGraphType, kind)
	}
	if edges == nil {
		return nil, ErrNilTable
	}

	if err := requireColumn(edges, EdgesTableName, o.sourceCol); err != nil {
		return nil, err
	}
	if err := requireColumn(edges, EdgesTableName, o.targetCol); err != nil {
		return nil, err
	}

	if nodes == nil {
		inferred, err := inferNodes(edges, o)
		if err != nil {
			return nil, err
		}
		nodes = inferred
	} else if err := requireColumn(nodes, NodesTableName, o.nodeIDCol); err != nil {
		return nil, err
	}

	return &Graph{
		kind:      kind,
		sourceCol: o.sourceCol,
		targetCol: o.targetCol,
		nodeIDCol: o.nodeIDCol,
		tables: map[string]*table.Table{
			EdgesTableName: edges,
			NodesTableName: nodes,
		},
	}, nil
}

// FromTableSet builds a Graph from a named-table collection. The collection
// must contain an "edges" entry (ErrMissingEdgesTable otherwise); a "nodes"
// entry is optional and inferred when absent. Other entries are ignored.
func FromTableSet(kind core.Kind, tables map[string]*table.Table, opts ...Option) (*Graph, error) {
	edges, ok := tables[EdgesTableName]
	if !ok {
		return nil, ErrMissingEdgesTable
	}

	return FromTables(kind, edges, tables[NodesTableName], opts...)
}

// requireColumn verifies that tbl contains the named column, failing with a
// wrapped ErrMissingColumn that lists the columns actually present.
func requireColumn(tbl *table.Table, tableName, column string) error {
	if tbl.HasColumn(column) {
		return nil
	}

	return fmt.Errorf("%w: %q table does not contain a %q column (available columns: %s)",
		ErrMissingColumn, tableName, column, strings.Join(tbl.ColumnNames(), ", "))
}

// Kind returns the topology kind fixed at construction.
func (g *Graph) Kind() core.Kind { return g.kind }

// SourceColumn returns the name of the edge source-endpoint column.
func (g *Graph) SourceColumn() string { return g.sourceCol }

// TargetColumn returns the name of the edge target-endpoint column.
func (g *Graph) TargetColumn() string { return g.targetCol }

// NodeIDColumn returns the name of the node identifier column.
func (g *Graph) NodeIDColumn() string { return g.nodeIDCol }

// Edges returns the stored edge table.
func (g *Graph) Edges() *table.Table { return g.tables[EdgesTableName] }

// Nodes returns the stored node table. Always present after construction,
// inferred from the edge endpoints when not supplied.
func (g *Graph) Nodes() *table.Table { return g.tables[NodesTableName] }

// NumNodes returns the number of rows in the node table.
func (g *Graph) NumNodes() int { return g.Nodes().NumRows() }

// NumEdges returns the number of rows in the edge table.
func (g *Graph) NumEdges() int { return g.Edges().NumRows() }

// TableSet returns the stored tables under their fixed logical names.
// The returned map is a copy; the tables themselves are shared.
func (g *Graph) TableSet() map[string]*table.Table {
	out := make(map[string]*table.Table, len(g.tables))
	for name, t := range g.tables {
		out[name] = t
	}

	return out
}
