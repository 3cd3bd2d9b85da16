package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabnet/core"
	"github.com/katalvlaran/tabnet/network"
	"github.com/katalvlaran/tabnet/table"
)

// dupEdges builds an edge table with a duplicated (A,B) pair.
func dupEdges(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.FromRows([]string{"source", "target"}, [][]any{
		{"A", "B"},
		{"B", "C"},
		{"A", "B"},
	})
	require.NoError(t, err)

	return tbl
}

// TestProperties_SimpleKind verifies that counts come from the materialized
// graph, the authoritative post-merge view: duplicate pairs collapse and
// parallel edges report 0.
func TestProperties_SimpleKind(t *testing.T) {
	g, err := network.FromTables(core.Directed, dupEdges(t), nil)
	require.NoError(t, err)

	p, err := g.Properties()
	require.NoError(t, err)
	assert.Equal(t, network.Properties{NumNodes: 3, NumEdges: 2, ParallelEdges: 0}, p,
		"simple kinds collapse the duplicate pair and never report parallels")
	assert.Equal(t, 3, g.NumEdges(), "the edge table itself keeps all rows")
}

// TestProperties_MultiKind verifies multiplicity tracking: every row stays
// an edge and the duplicate pair is counted as one parallel edge.
func TestProperties_MultiKind(t *testing.T) {
	g, err := network.FromTables(core.DirectedMulti, dupEdges(t), nil)
	require.NoError(t, err)

	p, err := g.Properties()
	require.NoError(t, err)
	assert.Equal(t, network.Properties{NumNodes: 3, NumEdges: 3, ParallelEdges: 1}, p)
}

// TestProperties_UndirectedMultiPairsUnordered verifies that reversed
// orientations of the same unordered pair count as parallel edges.
func TestProperties_UndirectedMultiPairsUnordered(t *testing.T) {
	edges, err := table.FromRows([]string{"source", "target"}, [][]any{
		{"A", "B"},
		{"B", "A"},
	})
	require.NoError(t, err)

	g, err := network.FromTables(core.UndirectedMulti, edges, nil)
	require.NoError(t, err)

	p, err := g.Properties()
	require.NoError(t, err)
	assert.Equal(t, network.Properties{NumNodes: 2, NumEdges: 2, ParallelEdges: 1}, p)
}

// TestProperties_EmptyGraph verifies the degenerate zero-edge case.
func TestProperties_EmptyGraph(t *testing.T) {
	edges, err := table.FromRows([]string{"source", "target"}, nil)
	require.NoError(t, err)

	g, err := network.FromTables(core.UndirectedMulti, edges, nil)
	require.NoError(t, err)

	p, err := g.Properties()
	require.NoError(t, err)
	assert.Equal(t, network.Properties{}, p)
}
