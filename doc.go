// Package tabnet converts network graphs between a tabular representation
// (separate columnar edge and node tables) and an in-memory graph object,
// and lets you query the tables with plain SQL.
//
// 🚀 What is tabnet?
//
//	A small library that brings together:
//		• table/    — immutable columnar tables with named columns
//		• core/     — the in-memory graph object: four topology kinds,
//		              per-node and per-edge attribute maps
//		• network/  — the tabular graph value: factories, schema validation,
//		              node inference, materialization, SQL queries, statistics
//		• tablesql/ — the bridge binding tables as relations in an embedded
//		              SQL engine (pure-Go SQLite)
//
// ✨ Why choose tabnet?
//
//   - Deterministic – inferred node sets and extracted tables are stable
//     and reproducible for identical inputs
//   - Round-trip safe – attributes survive tabular ⇄ graph conversion in
//     both directions, including the simple-graph merge semantics
//   - Pure Go – no cgo anywhere, the embedded engine included
//
// Quick ASCII example:
//
//	edges table            inferred nodes        materialized graph
//	source │ target        id                        A───B
//	───────┼───────   →    ──              →         │   │
//	   A   │   B           A                         C───D
//	   A   │   C           B
//	   B   │   D           C
//	   C   │   D           D
//
//	go get github.com/katalvlaran/tabnet
package tabnet
