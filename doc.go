// Package optimod is an in-memory toolkit for algebraic optimization
// models — a minimal symbolic-model layer (blocks, variables, constraints,
// connectors), the connector-expansion transformation that compiles
// port-style models down to plain equality constraints, and the sparse
// linear-solver layer used on the KKT systems of the resulting programs.
//
// 🚀 What is optimod?
//
//	A deterministic, reproducibility-obsessed library that brings together:
//		• Model primitives: blocks, scalar/indexed variables, index sets, constraints
//		• Connectors: port-like components exposing field→variable mappings
//		• Expansion: equivalence-class discovery, validation, variable synthesis,
//		  and constraint rewriting — byte-identical output across runs
//		• Expressions: deterministic trees with connector identification and
//		  identity-keyed substitution
//		• Linear algebra: one symbolic → numeric → back-solve contract,
//		  multiple interchangeable backends (dense reference, sparse LDLᵀ)
//
// ✨ Why choose optimod?
//
//   - Deterministic by construction – every enumeration is sorted by an
//     explicit key (group ID, field name, qualified name), never by map or
//     pointer order
//   - Rock-solid guarantees – sentinel errors, typed mismatch diagnostics,
//     explicit solver state machines
//   - Pure Go numerics – no cgo; the dense reference backend rides on gonum
//
// Under the hood, everything is organized under five subpackages:
//
//	model/  — Block, Var, IndexSet, Constraint, Connector, Connection
//	expr/   — deterministic expression trees + substitution
//	expand/ — the connector-expansion transformation
//	linalg/ — sparse symmetric matrices + solver backends
//	logger/ — zerolog-backed global logger
//
// Quick ASCII example:
//
//	unit1.out ───connection─── unit2.in
//
//	expands into one equality constraint per shared field (per index for
//	indexed fields), with missing variables synthesized automatically.
//
// Dive into the package docs for the full contracts, determinism notes, and
// error taxonomies.
//
//	go get github.com/katalvlaran/optimod
package optimod
