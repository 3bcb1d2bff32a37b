// Package expr provides the small deterministic expression-tree layer used
// by constraint bodies: constants, variable references, connector references,
// and arithmetic composites (Sum, Diff, Prod).
//
// Two operations matter to the connector-expansion transformation:
//
//   - IdentifyConnectors scans an expression body pre-order and returns every
//     distinct connector referenced, in first-seen order. The expansion
//     builder uses this to discover connector co-occurrence inside
//     constraints.
//   - Substitute clones an expression, replacing connector-reference leaves
//     according to an identity-keyed mapping. The rewriter uses this to turn
//     an original constraint body into one per-field, per-index copy over the
//     expanded variables. The input expression is never mutated.
//
// Rendering (String) is fully deterministic: operand order is preserved as
// built and all formatting is position-independent, so rendered constraint
// bodies can be compared byte-for-byte across runs.
package expr
