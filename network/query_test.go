package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabnet/core"
	"github.com/katalvlaran/tabnet/network"
	"github.com/katalvlaran/tabnet/table"
)

// queryScalar runs a single-cell query and returns the one cell.
func queryScalar(t *testing.T, g *network.Graph, sqlText string) any {
	t.Helper()
	out, err := g.Query(sqlText)
	require.NoError(t, err)
	require.Equal(t, 1, out.NumRows(), "scalar query must yield one row")
	row, err := out.Row(0)
	require.NoError(t, err)
	require.Len(t, row, 1, "scalar query must yield one column")
	for _, v := range row {
		return v
	}

	return nil
}

// TestQuery_CountsMatchAccessors verifies the contract tying the query
// surface to the stored tables: COUNT(*) over each relation equals the
// corresponding accessor.
func TestQuery_CountsMatchAccessors(t *testing.T) {
	g, err := network.FromTables(core.Undirected, edgesABC(t), nil)
	require.NoError(t, err)

	edges := queryScalar(t, g, `SELECT COUNT(*) FROM edges`)
	assert.Equal(t, int64(g.NumEdges()), edges)

	nodes := queryScalar(t, g, `SELECT COUNT(*) FROM nodes`)
	assert.Equal(t, int64(g.NumNodes()), nodes)
}

// TestQuery_JoinAcrossRelations verifies both relations are bound in the
// same engine instance and joinable.
func TestQuery_JoinAcrossRelations(t *testing.T) {
	edges, err := table.FromRows([]string{"source", "target"}, [][]any{
		{"A", "B"},
		{"A", "C"},
	})
	require.NoError(t, err)
	nodes, err := table.FromRows([]string{"id", "color"}, [][]any{
		{"A", "red"},
		{"B", "green"},
		{"C", "blue"},
	})
	require.NoError(t, err)

	g, err := network.FromTables(core.Directed, edges, nodes)
	require.NoError(t, err)

	out, err := g.Query(`
		SELECT n.color AS color
		FROM edges e JOIN nodes n ON n.id = e.target
		ORDER BY n.color`)
	require.NoError(t, err)

	col, err := out.Column("color")
	require.NoError(t, err)
	assert.Equal(t, []any{"blue", "green"}, col.Values)
}

// TestQuery_ErrorsWrapped verifies engine rejections surface as ErrQuery
// with the engine's message preserved.
func TestQuery_ErrorsWrapped(t *testing.T) {
	g, err := network.FromTables(core.Undirected, edgesABC(t), nil)
	require.NoError(t, err)

	_, err = g.Query(`SELEKT broken`)
	assert.ErrorIs(t, err, network.ErrQuery, "malformed SQL must wrap ErrQuery")

	_, err = g.Query(`SELECT no_such_column FROM edges`)
	assert.ErrorIs(t, err, network.ErrQuery, "unknown column references must wrap ErrQuery")
}

// TestQuery_SnapshotIsolation verifies the bound relations are immutable
// snapshots: a mutating statement does not affect the stored tables or
// later queries.
func TestQuery_SnapshotIsolation(t *testing.T) {
	g, err := network.FromTables(core.Undirected, edgesABC(t), nil)
	require.NoError(t, err)

	_, _ = g.Query(`DELETE FROM edges`)

	assert.Equal(t, 3, g.NumEdges(), "stored table must be untouched")
	count := queryScalar(t, g, `SELECT COUNT(*) FROM edges`)
	assert.Equal(t, int64(3), count, "each call binds a fresh snapshot")
}
