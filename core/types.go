// Package core defines the in-memory graph object that tabular graph data
// materializes into: nodes and edges carrying per-row attribute maps, in one
// of four topology kinds (directed/undirected, simple/multi).
//
// The graph is a derived, caller-owned view: it is rebuilt from the tabular
// representation on every materialization and is never shared or cached, so
// all operations are plain single-threaded mutations without locking.
//
// This file declares Kind, Node, Edge, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrUnknownKind - Kind value outside the four recognized variants.
//	ErrNilNodeID   - node identifier is nil.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownKind indicates a Kind value outside the four recognized variants.
	ErrUnknownKind = errors.New("core: unknown graph kind")

	// ErrNilNodeID indicates a nil node identifier was supplied.
	ErrNilNodeID = errors.New("core: node identifier is nil")
)

// Kind enumerates the four recognized graph topology variants.
// It is a closed set: every consumer matches exhaustively and rejects
// anything outside the four constants with ErrUnknownKind.
type Kind int

const (
	// Directed is a simple directed graph: at most one edge per ordered pair.
	Directed Kind = iota
	// Undirected is a simple undirected graph: at most one edge per unordered pair.
	Undirected
	// DirectedMulti permits parallel edges per ordered pair.
	DirectedMulti
	// UndirectedMulti permits parallel edges per unordered pair.
	UndirectedMulti
)

// kindNames holds the canonical serialized names, indexed by Kind.
var kindNames = [...]string{
	Directed:        "directed",
	Undirected:      "undirected",
	DirectedMulti:   "directed_multi",
	UndirectedMulti: "undirected_multi",
}

// String returns the canonical lower-snake name of k,
// or "unknown(<n>)" for values outside the four variants.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("unknown(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps a canonical name back to its Kind.
// Returns ErrUnknownKind for anything else.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if s == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Valid reports whether k is one of the four recognized variants.
func (k Kind) Valid() bool {
	switch k {
	case Directed, Undirected, DirectedMulti, UndirectedMulti:
		return true
	default:
		return false
	}
}

// IsDirected reports whether edges of kind k are one-way.
func (k Kind) IsDirected() bool {
	return k == Directed || k == DirectedMulti
}

// IsMulti reports whether kind k permits parallel edges.
func (k Kind) IsMulti() bool {
	return k == DirectedMulti || k == UndirectedMulti
}

// Node is a graph node: a comparable identifier plus the attributes carried
// by its originating node row (the id column excluded). Attrs may be empty
// but is never nil; it is shared, not copied, by accessors.
type Node struct {
	ID    any
	Attrs map[string]any
}

// Edge connects From to To and carries the attributes of its originating
// edge row (the endpoint columns excluded). For undirected kinds, From/To
// record the orientation of the first insertion.
type Edge struct {
	From  any
	To    any
	Attrs map[string]any
}

// pairKey identifies an endpoint pair in the edge index.
// Undirected kinds resolve the reversed orientation at lookup time,
// so each unordered pair is stored under a single key.
type pairKey struct {
	u, v any
}

// Graph is the in-memory graph object. Iteration over nodes and edges is
// deterministic: both preserve insertion order exactly, which the tabular
// materializer relies on for reproducible round trips.
type Graph struct {
	kind Kind

	nodes     map[any]map[string]any // node ID → attributes
	nodeOrder []any                  // insertion order of node IDs

	edges []*Edge           // insertion order of edges
	pairs map[pairKey][]int // endpoint pair → indices into edges
}

// NewGraph creates an empty Graph of the given kind. The kind is fixed for
// the lifetime of the graph; validity is checked by consumers (exhaustive
// Kind switches), not here, so classification failures surface exactly once.
// Complexity: O(1).
func NewGraph(kind Kind) *Graph {
	return &Graph{
		kind:  kind,
		nodes: make(map[any]map[string]any),
		pairs: make(map[pairKey][]int),
	}
}
