// Package network: embedded SQL query surface over the stored tables.

package network

import (
	"database/sql"
	"fmt"

	"github.com/katalvlaran/tabnet/table"
	"github.com/katalvlaran/tabnet/tablesql"
)

// Query executes sqlText against the stored tables, bound as the two
// relations "edges" and "nodes", and returns the result as a new table.
//
// Each call opens its own in-memory engine instance, fills it with
// snapshots of the two tables, and releases it on return, so the bound
// relations are immutable snapshots: mutating statements cannot affect the
// Graph and their effects must not be relied upon. Engine rejections
// (malformed SQL, unknown column references) wrap ErrQuery.
// Complexity: O(tables + result) plus the engine's query cost.
func (g *Graph) Query(sqlText string) (*table.Table, error) {
	var out *table.Table
	err := tablesql.WithMemoryDB(func(db *sql.DB) error {
		if err := tablesql.Register(db, EdgesTableName, g.Edges()); err != nil {
			return err
		}
		if err := tablesql.Register(db, NodesTableName, g.Nodes()); err != nil {
			return err
		}
		result, err := tablesql.Query(db, sqlText)
		if err != nil {
			return err
		}
		out = result

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	return out, nil
}
