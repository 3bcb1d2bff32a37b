package expand

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/optimod/model"
)

// Shape codes of a canonical field. Non-negative codes are element counts of
// indexed fields; the two negative codes bypass element-count comparison.
const (
	shapeScalar     = -1 // plain scalar variable
	shapeAggregator = -2 // aggregator (list) field: exempt from shape checks
)

// fieldRef is one canonical field of an equivalence class: the first
// variable observed for the field, its shape code, and the connector that
// contributed it (named in mismatch diagnostics).
type fieldRef struct {
	v     *model.Var
	shape int
	conn  *model.Connector
}

// classRef maps field name → canonical reference for one equivalence class.
// An empty classRef means "nothing to expand" (warned, not fatal).
type classRef map[string]fieldRef

// shapeOf classifies field k of connector c holding variable v.
func shapeOf(c *model.Connector, k string, v *model.Var) int {
	switch {
	case c.IsAggregator(k):
		return shapeAggregator
	case !v.IsIndexed():
		return shapeScalar
	default:
		return v.Len()
	}
}

// sortedFields returns ref's field names in sorted order — the only field
// iteration order used anywhere in validation, synthesis and rewriting.
func (ref classRef) sortedFields() []string {
	out := make([]string, 0, len(ref))
	for k := range ref {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// validateAndExpand computes the canonical field reference of cl, checks
// every member against it, and synthesizes missing variables on empty or
// partial connectors.
//
// Steps:
//  1. Field union: first writer wins per field, scanning members in
//     discovery order and each member's fields in declaration order.
//  2. Empty class: no connector contributed any assigned field — log a
//     warning and return an empty reference (legitimately unused class).
//  3. Validation: every member must declare every canonical field; assigned
//     fields must agree with the canonical shape-code sign, element count,
//     and exact index-set membership. Violations return *MismatchError.
//  4. Synthesis: empty/partial connectors — sorted by fully-qualified name —
//     gain a fresh variable per missing field, named "<conn>.auto.<field>",
//     shaped after the canonical variable with domain/bounds copied
//     best-effort (element-wise for indexed fields).
//
// The model is mutated by step 4 only; there is no rollback if a later class
// fails validation.
func validateAndExpand(cl *class, log zerolog.Logger) (classRef, error) {
	ref := make(classRef)

	// 1. Union of all assigned fields across the class.
	for _, c := range cl.conns {
		for _, k := range c.Fields() {
			if _, seen := ref[k]; seen {
				continue
			}
			v, _ := c.VarFor(k)
			if v == nil {
				continue // declared but unassigned: not a canonical candidate
			}
			ref[k] = fieldRef{v: v, shape: shapeOf(c, k, v), conn: c}
		}
	}

	// 2. Zero usable fields: warn and expand nothing.
	if len(ref) == 0 {
		names := make([]string, 0, len(cl.conns))
		for _, c := range cl.conns {
			names = append(names, c.Name())
		}
		sort.Strings(names)
		log.Warn().
			Int("group", cl.id).
			Msgf("cannot identify a reference connector: no connectors in the matched set have assigned variables (%s)",
				strings.Join(names, ", "))

		return ref, nil
	}

	fields := ref.sortedFields()

	// 3. Validate members; collect empty/partial ones for synthesis.
	var emptyOrPartial []*model.Connector
	for _, c := range cl.conns {
		if c.NumFields() == 0 {
			// Fully empty connector: define every field automatically.
			emptyOrPartial = append(emptyOrPartial, c)
			continue
		}
		partial := false
		for _, k := range fields {
			fr := ref[k]
			v, declared := c.VarFor(k)
			if !declared {
				return nil, &MismatchError{
					Field: k, Reference: fr.conn, Offender: c,
					Detail: "is missing",
				}
			}
			if v == nil {
				if !partial {
					emptyOrPartial = append(emptyOrPartial, c)
					partial = true
				}
				continue
			}
			shape := shapeOf(c, k, v)
			if (shape >= 0) != (fr.shape >= 0) {
				return nil, &MismatchError{
					Field: k, Reference: fr.conn, Offender: c,
					Detail: "mixes indexed and non-indexed targets",
				}
			}
			if shape >= 0 && shape != fr.shape {
				return nil, &MismatchError{
					Field: k, Reference: fr.conn, Offender: c,
					Detail: fmt.Sprintf("has an index mismatch (%d elements vs %d)", fr.shape, shape),
				}
			}
			if fr.shape >= 0 && fr.v.IndexSet().SymmetricDifference(v.IndexSet()).Len() > 0 {
				return nil, &MismatchError{
					Field: k, Reference: fr.conn, Offender: c,
					Detail: "has mismatched index sets",
				}
			}
		}
	}

	// 4. Synthesize missing variables. Sorting by fully-qualified name keeps
	// the order variables are added to the model stable across runs.
	if len(emptyOrPartial) > 1 {
		sort.Slice(emptyOrPartial, func(i, j int) bool {
			return emptyOrPartial[i].Name() < emptyOrPartial[j].Name()
		})
	}
	for _, c := range emptyOrPartial {
		block := c.ParentBlock()
		for _, k := range fields {
			if v, declared := c.VarFor(k); declared && v != nil {
				continue
			}
			fr := ref[k]
			var opts []model.VarOption
			if fr.shape >= 0 {
				opts = append(opts, model.WithIndex(fr.v.IndexSet()))
			}
			if fr.v.HasDomain() {
				opts = append(opts, model.WithDomain(fr.v.Domain()))
			}
			if fr.v.HasBounds() {
				b := fr.v.Bounds()
				opts = append(opts, model.WithBounds(b.Lower, b.Upper))
			}
			nv := model.NewVar(opts...)
			vname := c.Name() + ".auto." + k
			if err := block.AddComponent(vname, nv); err != nil {
				return nil, fmt.Errorf("expand: synthesizing %q: %w", vname, err)
			}
			if fr.shape >= 0 {
				if err := copyElements(fr.v, nv); err != nil {
					return nil, fmt.Errorf("expand: synthesizing %q: %w", vname, err)
				}
			}
			c.SetVar(k, nv)
		}
	}

	return ref, nil
}

// copyElements copies per-element domain and bounds from src to dst, which
// share one index set by construction.
func copyElements(src, dst *model.Var) error {
	for _, label := range src.IndexSet().Members() {
		se, err := src.Elem(label)
		if err != nil {
			return err
		}
		de, err := dst.Elem(label)
		if err != nil {
			return err
		}
		if se.HasDomain() {
			de.SetDomain(se.Domain())
		}
		if se.HasLB() {
			de.SetLB(se.LB())
		}
		if se.HasUB() {
			de.SetUB(se.UB())
		}
	}

	return nil
}
