// Package tablesql bridges table.Table values and the embedded SQL engine
// (SQLite via the pure-Go modernc.org/sqlite driver).
//
// The bridge treats tables as immutable snapshots: Register copies a table's
// rows into a relation, Query reads a result set back out into a fresh
// table. Every engine instance is scoped to a single call via WithMemoryDB,
// so no connection state outlives or is shared between operations.
//
// Relations are created without column type affinity, so cell values keep
// their native storage class: integers compare numerically, strings
// lexicographically, exactly as the inference and query layers require.
package tablesql

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tabnet/table"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

const (
	driverName = "sqlite"
	memoryDSN  = ":memory:"
)

// ErrNoColumns indicates an attempt to register a table without columns,
// which cannot be expressed as a SQL relation.
var ErrNoColumns = errors.New("tablesql: table has no columns")

// WithMemoryDB opens a fresh in-memory engine instance, invokes fn with it,
// and closes the instance on every exit path, including fn failure.
// The connection pool is pinned to a single connection so that all
// statements observe the same in-memory database.
func WithMemoryDB(fn func(db *sql.DB) error) error {
	db, err := sql.Open(driverName, memoryDSN)
	if err != nil {
		return fmt.Errorf("tablesql: open engine: %w", err)
	}
	defer db.Close()
	// Each pooled connection would otherwise get its own :memory: database.
	db.SetMaxOpenConns(1)

	return fn(db)
}

// Register creates relation name in db and fills it with a snapshot of t's
// rows, in table order. Returns ErrNoColumns for a column-less table.
// Complexity: O(C·R).
func Register(db *sql.DB, name string, t *table.Table) error {
	names := t.ColumnNames()
	if len(names) == 0 {
		return fmt.Errorf("%w: %q", ErrNoColumns, name)
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = QuoteIdent(n)
	}
	ddl := fmt.Sprintf("CREATE TABLE %s (%s)", QuoteIdent(name), strings.Join(quoted, ", "))
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("tablesql: create relation %q: %w", name, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", QuoteIdent(name), placeholders)
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("tablesql: begin fill of %q: %w", name, err)
	}
	stmt, err := tx.Prepare(insert)
	if err != nil {
		tx.Rollback()

		return fmt.Errorf("tablesql: prepare fill of %q: %w", name, err)
	}
	for i := 0; i < t.NumRows(); i++ {
		row, err := t.Row(i)
		if err != nil {
			stmt.Close()
			tx.Rollback()

			return err
		}
		args := make([]any, len(names))
		for j, n := range names {
			args[j] = row[n]
		}
		if _, err = stmt.Exec(args...); err != nil {
			stmt.Close()
			tx.Rollback()

			return fmt.Errorf("tablesql: fill relation %q row %d: %w", name, i, err)
		}
	}
	stmt.Close()
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("tablesql: commit fill of %q: %w", name, err)
	}

	return nil
}

// Query executes sqlText against db and returns the full result set as a
// new table, preserving result column order and row order. Text cells are
// normalized from []byte to string.
// Complexity: O(C·R) over the result set.
func Query(db *sql.DB, sqlText string) (*table.Table, error) {
	rows, err := db.Query(sqlText)
	if err != nil {
		return nil, fmt.Errorf("tablesql: query: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("tablesql: result columns: %w", err)
	}

	var data [][]any
	for rows.Next() {
		cells := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err = rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("tablesql: scan result row: %w", err)
		}
		for i, v := range cells {
			if b, ok := v.([]byte); ok {
				cells[i] = string(b)
			}
		}
		data = append(data, cells)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("tablesql: read result: %w", err)
	}

	return table.FromRows(names, data)
}

// QuoteIdent quotes a SQL identifier, escaping embedded quote characters,
// so arbitrary user-chosen column names are safe in generated statements.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
