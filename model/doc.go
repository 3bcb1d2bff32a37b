// Package model defines the minimal algebraic-model container layer that the
// optimod transformations operate on: Block (a named, ordered component
// container), Var (scalar or indexed decision variables with optional domain
// and bounds), IndexSet (ordered index-label sets with set algebra),
// Constraint / ConstraintList, Connector (a port exposing a field→variable
// mapping) and Connection (a statement equating two or more connectors).
//
// # Determinism
//
// Every enumeration surface in this package is deterministic:
//
//   - Block.ComponentDataObjects walks blocks pre-order in component
//     registration order, never in map-iteration order.
//   - Connector.Fields returns field names in declaration order.
//   - IndexSet.Members returns labels in insertion order.
//
// Downstream transformations (package expand) rely on these guarantees to
// produce byte-identical generated models across runs. Do not replace any of
// the ordered backing slices with bare map iteration.
//
// # Ownership
//
// Components are attached to exactly one Block via AddComponent and keep a
// non-owning back reference to it for naming (fully-qualified names join the
// block path with '.'). Components are never removed; constraints and
// connections are deactivated instead, mirroring the activate/deactivate
// lifecycle of algebraic modeling systems.
//
// See package expand for the connector-expansion transformation and package
// linalg for the sparse linear-solver layer.
package model
