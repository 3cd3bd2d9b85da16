// Package network: sentinel errors, fixed table names, and column-name
// defaults for the tabular graph value.

package network

import "errors"

// Fixed logical names under which the two tables are stored and under which
// they are bound as relations for the query surface.
const (
	// EdgesTableName is the logical name of the edge-list table.
	EdgesTableName = "edges"
	// NodesTableName is the logical name of the node table.
	NodesTableName = "nodes"
)

// Default column names, overridable via options.
const (
	// DefaultSourceColumn names the edge source-endpoint column.
	DefaultSourceColumn = "source"
	// DefaultTargetColumn names the edge target-endpoint column.
	DefaultTargetColumn = "target"
	// DefaultNodeIDColumn names the node identifier column.
	DefaultNodeIDColumn = "id"
)

// placeholderAttrKey is the reserved attribute key older writers attached to
// attribute-less nodes. The in-memory graph represents empty attribute maps
// natively, so the key is only stripped on the reverse path and never
// exposed to callers.
const placeholderAttrKey = "_x_placeholder_x_"

// Sentinel errors for network graph construction and querying.
var (
	// ErrMissingColumn indicates a required column is absent from its table.
	// The wrapped message names the column and lists the available columns.
	ErrMissingColumn = errors.New("network: required column missing")

	// ErrMissingEdgesTable indicates a table set without an "edges" entry.
	ErrMissingEdgesTable = errors.New("network: no edges table found")

	// ErrUnsupportedGraphType indicates a graph object whose kind is not one
	// of the four recognized topology variants.
	ErrUnsupportedGraphType = errors.New("network: unsupported graph type")

	// ErrQuery indicates the embedded query engine rejected a query or its
	// relation bindings; the engine's own message follows.
	ErrQuery = errors.New("network: query failed")

	// ErrNilTable indicates a nil edges table was supplied.
	ErrNilTable = errors.New("network: edges table is nil")

	// ErrNilGraph indicates a nil graph object was supplied.
	ErrNilGraph = errors.New("network: graph is nil")
)
