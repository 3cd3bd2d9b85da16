// Package network: materialization between the tabular representation and
// the in-memory core.Graph object.
//
// Forward (ToCoreGraph): nodes first, then edges in exact table order; all
// non-structural columns become attributes. Simple kinds inherit the core
// merge behavior - a later edge row sharing an endpoint pair overwrites the
// attributes of the earlier one. This is order-dependent and intentionally
// preserved; see the package tests for the pinned behavior.
//
// Reverse (FromCoreGraph): edges and nodes are extracted under temporary
// unique column names so user-chosen structural names can never collide with
// attribute columns mid-extraction; colliding attribute columns are dropped
// (last write wins) with a log record, then the temporary names are renamed
// into place. Assembly is delegated to FromTables, so the result passes the
// same schema validation as raw-table construction.

package network

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/tabnet/core"
	"github.com/katalvlaran/tabnet/table"
)

// ToCoreGraph materializes the tabular graph into a fresh in-memory graph
// object. The caller owns the result exclusively; nothing is cached, each
// call rebuilds from the stored tables.
// Complexity: O(V + E) over table rows.
func (g *Graph) ToCoreGraph() (*core.Graph, error) {
	switch g.kind {
	case core.Directed, core.Undirected, core.DirectedMulti, core.UndirectedMulti:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGraphType, g.kind)
	}
	out := core.NewGraph(g.kind)

	nodes := g.Nodes()
	for i := 0; i < nodes.NumRows(); i++ {
		row, err := nodes.Row(i)
		if err != nil {
			return nil, err
		}
		id := row[g.nodeIDCol]
		delete(row, g.nodeIDCol)
		if err = out.AddNode(id, row); err != nil {
			return nil, err
		}
	}

	edges := g.Edges()
	for i := 0; i < edges.NumRows(); i++ {
		row, err := edges.Row(i)
		if err != nil {
			return nil, err
		}
		u, v := row[g.sourceCol], row[g.targetCol]
		delete(row, g.sourceCol)
		delete(row, g.targetCol)
		if err = out.AddEdge(u, v, row); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// FromCoreGraph builds a tabular Graph from an in-memory graph object,
// classifying its kind into one of the four recognized variants
// (ErrUnsupportedGraphType otherwise) and extracting the edge list and node
// attribute rows into columnar tables.
//
// An attribute column whose name coincides with a configured structural
// column is dropped in favor of the structural data (last write wins); each
// drop is logged. The reserved placeholder attribute written by older
// producers for attribute-less nodes is stripped and never surfaces.
func FromCoreGraph(cg *core.Graph, opts ...Option) (*Graph, error) {
	if cg == nil {
		return nil, ErrNilGraph
	}
	var kind core.Kind
	switch cg.Kind() {
	case core.Directed, core.Undirected, core.DirectedMulti, core.UndirectedMulti:
		kind = cg.Kind()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGraphType, cg.Kind())
	}
	o := gatherOptions(opts...)

	edges, err := extractEdges(cg, o)
	if err != nil {
		return nil, err
	}
	nodes, err := extractNodes(cg, o)
	if err != nil {
		return nil, err
	}

	return FromTables(kind, edges, nodes, opts...)
}

// extractEdges flattens the edge list into a columnar table. Endpoints are
// extracted under temporary unique names, colliding attribute columns are
// dropped, then the temporary names are renamed to the configured ones.
func extractEdges(cg *core.Graph, o options) (*table.Table, error) {
	tmpSource := uuid.NewString()
	tmpTarget := uuid.NewString()

	edgeList := cg.Edges()
	attrCols := collectAttrKeys(len(edgeList), func(i int) map[string]any { return edgeList[i].Attrs })

	names := append([]string{tmpSource, tmpTarget}, attrCols...)
	rows := make([][]any, 0, len(edgeList))
	for _, e := range edgeList {
		row := make([]any, 0, len(names))
		row = append(row, e.From, e.To)
		for _, col := range attrCols {
			row = append(row, e.Attrs[col])
		}
		rows = append(rows, row)
	}
	t, err := table.FromRows(names, rows)
	if err != nil {
		return nil, err
	}

	renames := []struct{ tmp, want string }{
		{tmpSource, o.sourceCol},
		{tmpTarget, o.targetCol},
	}
	for _, r := range renames {
		tmp, want := r.tmp, r.want
		if t.HasColumn(want) {
			o.logger.Warn("dropping edge attribute column",
				"column", want, "reason", "collides with a structural column name")
			if t, err = t.WithoutColumn(want); err != nil {
				return nil, err
			}
		}
		if t, err = t.RenameColumn(tmp, want); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// extractNodes flattens node attribute rows into a columnar table,
// reconstituting the node identifier as a normal column. When an attribute
// column already carries the configured id name, it wins and the extracted
// identifiers are dropped, mirroring the edge-side last-write-wins rule.
func extractNodes(cg *core.Graph, o options) (*table.Table, error) {
	tmpID := uuid.NewString()

	nodeList := cg.Nodes()
	attrCols := collectAttrKeys(len(nodeList), func(i int) map[string]any { return nodeList[i].Attrs })

	names := append([]string{tmpID}, attrCols...)
	rows := make([][]any, 0, len(nodeList))
	for _, n := range nodeList {
		row := make([]any, 0, len(names))
		row = append(row, n.ID)
		for _, col := range attrCols {
			row = append(row, n.Attrs[col])
		}
		rows = append(rows, row)
	}
	t, err := table.FromRows(names, rows)
	if err != nil {
		return nil, err
	}

	if t.HasColumn(o.nodeIDCol) {
		o.logger.Warn("dropping extracted node identifiers",
			"column", o.nodeIDCol, "reason", "an attribute column carries the node-id name")

		return t.WithoutColumn(tmpID)
	}

	return t.RenameColumn(tmpID, o.nodeIDCol)
}

// collectAttrKeys gathers attribute column names across n attribute maps in
// a deterministic order: first appearance wins the position, keys within one
// map are visited sorted. The reserved placeholder key is never collected.
func collectAttrKeys(n int, attrs func(int) map[string]any) []string {
	var cols []string
	seen := make(map[string]struct{})
	for i := 0; i < n; i++ {
		m := attrs(i)
		keys := make([]string, 0, len(m))
		for k := range m {
			if k == placeholderAttrKey {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				cols = append(cols, k)
			}
		}
	}

	return cols
}
