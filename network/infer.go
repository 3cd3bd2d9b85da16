// Package network: node inference.
//
// When no node table is supplied, the node set is derived from the edge
// table as the distinct union of source and target endpoint values, sorted
// ascending by the engine's value ordering (numeric before lexicographic).
// The derivation runs as SQL against a scoped in-memory engine instance, so
// the ordering - and with it every downstream identifier - is fully
// deterministic for a given edge table.

package network

import (
	"database/sql"
	"fmt"

	"github.com/katalvlaran/tabnet/table"
	"github.com/katalvlaran/tabnet/tablesql"
)

// inferNodes derives a single-column node table from the distinct endpoint
// values of edges. A zero-row edge table yields a zero-row node table that
// still carries the node-id column.
// Complexity: O(E log E) in the engine's sort.
func inferNodes(edges *table.Table, o options) (*table.Table, error) {
	src := tablesql.QuoteIdent(o.sourceCol)
	tgt := tablesql.QuoteIdent(o.targetCol)
	id := tablesql.QuoteIdent(o.nodeIDCol)

	query := fmt.Sprintf(`
SELECT DISTINCT combined.%[1]s
FROM (
    SELECT %[2]s AS %[1]s FROM %[4]s
    UNION
    SELECT %[3]s AS %[1]s FROM %[4]s
) AS combined
ORDER BY combined.%[1]s`,
		id, src, tgt, tablesql.QuoteIdent(EdgesTableName))

	var nodes *table.Table
	err := tablesql.WithMemoryDB(func(db *sql.DB) error {
		if err := tablesql.Register(db, EdgesTableName, edges); err != nil {
			return err
		}
		result, err := tablesql.Query(db, query)
		if err != nil {
			return err
		}
		nodes = result

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("network: infer nodes: %w", err)
	}

	return nodes, nil
}
