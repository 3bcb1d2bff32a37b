// Package expand implements the connector-expansion transformation: it
// discovers equivalence classes of connectors referenced across a model's
// constraints and connections, validates structural compatibility within
// each class, synthesizes missing variables, and rewrites the referencing
// constraints/connections into per-field equality constraints over the
// expanded variable set.
//
// The transformation runs in four passes:
//
//  1. Collect — traverse active constraints and connections in deterministic
//     component order, extract connector references (expression-body scan
//     for constraints, explicit port list for connections), and merge
//     co-occurring connectors into disjoint classes with a weighted
//     union-find over dense integer IDs. Each class receives a monotone
//     group ID at creation; group IDs are the only sort key ever used to
//     order classes.
//  2. Validate & expand — per class, compute the canonical field reference
//     (field → representative variable, shape code, owning connector),
//     enforce shape and index-set agreement, and synthesize missing
//     variables on empty or partial connectors (sorted by fully-qualified
//     name) with domain/bounds inherited from the representative.
//  3. Rewrite — replace each original constraint with a fresh constraint
//     list holding one clone per field (and per index for indexed fields)
//     with connector references substituted by the per-connector field
//     variables; replace each connection with an "_expanded" block of
//     per-field equality constraints; deactivate the originals. Extensive
//     fields share one synthesized variable per connection block instead of
//     pairwise equalities.
//  4. Implement — add aggregator constraints for aggregator fields and
//     invoke the registered extensive rules once per unit.
//
// # Determinism
//
// Generated component names and constraint bodies are byte-identical across
// runs on structurally identical models: classes iterate by group ID, fields
// by sorted name, synthesis targets by fully-qualified connector name —
// never by map or pointer order.
//
// # Errors
//
// Structural inconsistencies surface as MismatchError values wrapping
// ErrConnectorMismatch and abort the transformation. A class with no usable
// fields at all only logs a warning and expands to nothing. A declared
// extensive type with no registered rule fails with ErrNoAggregator.
// There is no rollback: on failure the model may hold variables synthesized
// before the failing check and must not be reused without inspection.
package expand
