package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabnet/core"
	"github.com/katalvlaran/tabnet/network"
	"github.com/katalvlaran/tabnet/table"
)

// edgesABC builds the reference edge table [(A,B),(B,C),(A,C)] under the
// default column names.
func edgesABC(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.FromRows([]string{"source", "target"}, [][]any{
		{"A", "B"},
		{"B", "C"},
		{"A", "C"},
	})
	require.NoError(t, err)

	return tbl
}

// TestFromTables_InferredNodes verifies the reference scenario: no node
// table supplied, nodes inferred as [A,B,C] in sorted order.
func TestFromTables_InferredNodes(t *testing.T) {
	g, err := network.FromTables(core.Undirected, edgesABC(t), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, []string{"id"}, g.Nodes().ColumnNames())

	ids, err := g.Nodes().Column("id")
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "B", "C"}, ids.Values, "inferred nodes must be distinct and sorted")
}

// TestFromTables_MissingColumns verifies schema validation: the error names
// the missing column and lists the available ones.
func TestFromTables_MissingColumns(t *testing.T) {
	edges, err := table.FromRows([]string{"from", "to"}, [][]any{{"A", "B"}})
	require.NoError(t, err)

	_, err = network.FromTables(core.Directed, edges, nil)
	require.ErrorIs(t, err, network.ErrMissingColumn)
	assert.Contains(t, err.Error(), `"source"`, "error must name the missing column")
	assert.Contains(t, err.Error(), "from, to", "error must list the available columns")

	// The configured names are honored: with matching options the same
	// table validates.
	g, err := network.FromTables(core.Directed, edges, nil,
		network.WithSourceColumn("from"), network.WithTargetColumn("to"))
	require.NoError(t, err)
	assert.Equal(t, "from", g.SourceColumn())
	assert.Equal(t, "to", g.TargetColumn())
}

// TestFromTables_SuppliedNodesValidated verifies that a supplied node table
// must carry the node-id column, while its row set is taken as-is.
func TestFromTables_SuppliedNodesValidated(t *testing.T) {
	nodes, err := table.FromRows([]string{"name"}, [][]any{{"A"}})
	require.NoError(t, err)

	_, err = network.FromTables(core.Undirected, edgesABC(t), nodes)
	require.ErrorIs(t, err, network.ErrMissingColumn)
	assert.Contains(t, err.Error(), `"nodes"`, "error must name the offending table")

	// A deliberately restricted node set is the caller's responsibility:
	// construction succeeds even though B and C appear only in edges.
	restricted, err := table.FromRows([]string{"id"}, [][]any{{"A"}})
	require.NoError(t, err)
	g, err := network.FromTables(core.Undirected, edgesABC(t), restricted)
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumNodes())
}

// TestFromTables_NilEdges verifies the nil-edges guard.
func TestFromTables_NilEdges(t *testing.T) {
	_, err := network.FromTables(core.Directed, nil, nil)
	assert.ErrorIs(t, err, network.ErrNilTable)
}

// TestFromTables_InvalidKind verifies atomic rejection of kinds outside the
// four variants.
func TestFromTables_InvalidKind(t *testing.T) {
	_, err := network.FromTables(core.Kind(42), edgesABC(t), nil)
	assert.ErrorIs(t, err, network.ErrUnsupportedGraphType)
}

// TestFromTableSet verifies the named-collection factory path.
func TestFromTableSet(t *testing.T) {
	edges := edgesABC(t)

	_, err := network.FromTableSet(core.Directed, map[string]*table.Table{"misc": edges})
	assert.ErrorIs(t, err, network.ErrMissingEdgesTable)

	g, err := network.FromTableSet(core.Directed, map[string]*table.Table{
		network.EdgesTableName: edges,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumNodes(), "nodes entry absent, so nodes are inferred")

	set := g.TableSet()
	assert.Len(t, set, 2)
	assert.True(t, edges.Equal(set[network.EdgesTableName]))
}
