// Package table provides a small immutable columnar table value: an ordered
// set of named columns of equal length, with untyped scalar cells.
//
// It is the storage representation for tabular graph data. The table itself
// enforces only structural invariants (unique non-empty column names, equal
// column lengths); cell typing and query semantics live in the consuming
// packages.
package table

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for table construction and access.
var (
	// ErrColumnLengthMismatch indicates columns of differing lengths.
	ErrColumnLengthMismatch = errors.New("table: columns must have equal length")
	// ErrDuplicateColumn indicates two columns sharing the same name.
	ErrDuplicateColumn = errors.New("table: duplicate column name")
	// ErrEmptyColumnName indicates a column with an empty name.
	ErrEmptyColumnName = errors.New("table: column name is empty")
	// ErrNoSuchColumn indicates a lookup of a column that does not exist.
	ErrNoSuchColumn = errors.New("table: no such column")
	// ErrRowOutOfRange indicates a row index outside [0, NumRows).
	ErrRowOutOfRange = errors.New("table: row index out of range")
	// ErrRowWidthMismatch indicates a row whose width differs from the column count.
	ErrRowWidthMismatch = errors.New("table: row width does not match column count")
)

// Column is a single named column of cell values.
type Column struct {
	Name   string
	Values []any
}

// Table is an immutable, ordered collection of equally sized columns.
// Construct via New or FromRows; derived tables are produced by
// RenameColumn and WithoutColumn. The zero value is an empty table.
type Table struct {
	cols  []Column
	index map[string]int // column name → position in cols
	rows  int
}

// New builds a Table from the given columns.
// Column values are copied, so the caller may reuse its slices.
// Returns ErrEmptyColumnName, ErrDuplicateColumn or ErrColumnLengthMismatch
// on invalid input.
// Complexity: O(C·R) for C columns of R rows.
func New(cols ...Column) (*Table, error) {
	t := &Table{
		cols:  make([]Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if c.Name == "" {
			return nil, ErrEmptyColumnName
		}
		if _, dup := t.index[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		if i == 0 {
			t.rows = len(c.Values)
		} else if len(c.Values) != t.rows {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d",
				ErrColumnLengthMismatch, c.Name, len(c.Values), t.rows)
		}
		vals := make([]any, len(c.Values))
		copy(vals, c.Values)
		t.index[c.Name] = len(t.cols)
		t.cols = append(t.cols, Column{Name: c.Name, Values: vals})
	}

	return t, nil
}

// FromRows builds a Table from row-oriented data: one slice of cell values
// per row, positionally matching names. rows may be nil for an empty table
// that still carries the column schema.
// Returns ErrRowWidthMismatch if any row width differs from len(names).
// Complexity: O(C·R).
func FromRows(names []string, rows [][]any) (*Table, error) {
	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = Column{Name: name, Values: make([]any, 0, len(rows))}
	}
	for r, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d",
				ErrRowWidthMismatch, r, len(row), len(names))
		}
		for i, v := range row {
			cols[i].Values = append(cols[i].Values, v)
		}
	}

	return New(cols...)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// ColumnNames returns the column names in table order.
// The returned slice is a copy.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}

	return names
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]

	return ok
}

// Column returns a copy of the named column.
// Returns ErrNoSuchColumn if the column does not exist.
func (t *Table) Column(name string) (Column, error) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
	}
	vals := make([]any, len(t.cols[i].Values))
	copy(vals, t.cols[i].Values)

	return Column{Name: name, Values: vals}, nil
}

// Row returns row i as a column-name → cell-value mapping.
// Returns ErrRowOutOfRange for indices outside [0, NumRows).
// Complexity: O(C).
func (t *Table) Row(i int) (map[string]any, error) {
	if i < 0 || i >= t.rows {
		return nil, fmt.Errorf("%w: %d (rows: %d)", ErrRowOutOfRange, i, t.rows)
	}
	row := make(map[string]any, len(t.cols))
	for _, c := range t.cols {
		row[c.Name] = c.Values[i]
	}

	return row, nil
}

// RenameColumn returns a new Table with column old renamed to new.
// Returns ErrNoSuchColumn if old is absent, ErrDuplicateColumn if new
// already names another column.
func (t *Table) RenameColumn(old, new string) (*Table, error) {
	if _, ok := t.index[old]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchColumn, old)
	}
	if _, clash := t.index[new]; clash && old != new {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, new)
	}
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		if c.Name == old {
			c.Name = new
		}
		cols[i] = c
	}

	return New(cols...)
}

// WithoutColumn returns a new Table with the named column removed.
// Returns ErrNoSuchColumn if the column does not exist.
func (t *Table) WithoutColumn(name string) (*Table, error) {
	if _, ok := t.index[name]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchColumn, name)
	}
	cols := make([]Column, 0, len(t.cols)-1)
	for _, c := range t.cols {
		if c.Name != name {
			cols = append(cols, c)
		}
	}

	return New(cols...)
}

// Equal reports whether t and other hold identical columns: same names in
// the same order and deeply equal cell values.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.cols) != len(other.cols) || t.rows != other.rows {
		return false
	}
	for i, c := range t.cols {
		oc := other.cols[i]
		if c.Name != oc.Name || !reflect.DeepEqual(c.Values, oc.Values) {
			return false
		}
	}

	return true
}
