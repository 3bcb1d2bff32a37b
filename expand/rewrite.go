package expand

import (
	"fmt"

	"github.com/katalvlaran/optimod/expr"
	"github.com/katalvlaran/optimod/model"
)

// evarLog is the per-pass accumulator for shared extensive variables:
// connector → extensive type → field → variables, in creation order. It is
// built fresh for every transformation run and passed explicitly through the
// rewrite call chain, so no shared-variable bookkeeping leaks into model
// state between runs.
type evarLog struct {
	evars map[*model.Connector]map[string]map[string][]*model.Var
}

func newEvarLog() *evarLog {
	return &evarLog{evars: make(map[*model.Connector]map[string]map[string][]*model.Var)}
}

func (l *evarLog) append(c *model.Connector, etype, field string, evar *model.Var) {
	byType, ok := l.evars[c]
	if !ok {
		byType = make(map[string]map[string][]*model.Var)
		l.evars[c] = byType
	}
	byField, ok := byType[etype]
	if !ok {
		byField = make(map[string][]*model.Var)
		byType[etype] = byField
	}
	byField[field] = append(byField[field], evar)
}

func (l *evarLog) evarsFor(c *model.Connector, etype, field string) []*model.Var {
	return l.evars[c][etype][field]
}

// fieldAccess builds the expression a connector contributes for one field:
// the element reference for indexed fields, a freshly added list member for
// aggregator fields, or the plain variable otherwise. idx is "" except for
// indexed fields.
func fieldAccess(c *model.Connector, k string, indexed bool, idx string) (expr.Expr, error) {
	v, _ := c.VarFor(k)
	switch {
	case indexed:
		return expr.NewVarElemRef(v, idx), nil
	case c.IsAggregator(k):
		member, err := v.Add()
		if err != nil {
			return nil, fmt.Errorf("expand: aggregator field %q on %q: %w", k, c.Name(), err)
		}

		return expr.NewVarRef(member), nil
	default:
		return expr.NewVarRef(v), nil
	}
}

// expandConstraints rewrites every collected constraint into a fresh
// "<name>.expanded" constraint list on the constraint's parent block: one
// member per canonical field (per index for indexed fields) with connector
// references substituted by the per-connector field access. The original
// constraint is deactivated afterwards.
func expandConstraints(coll *collection) error {
	for _, rec := range coll.constraints {
		con := rec.comp.(*model.Constraint)
		cList := model.NewConstraintList()
		cname := con.LocalName() + ".expanded"
		if err := con.ParentBlock().AddComponent(cname, cList); err != nil {
			return fmt.Errorf("expand: rewriting constraint %q: %w", con.Name(), err)
		}

		ref := coll.refs[coll.classOf[rec.found[0]]]
		body := con.Body.(expr.Expr) // checked during collect
		for _, k := range ref.sortedFields() {
			fr := ref[k]
			indexed := fr.shape >= 0
			indices := []string{""}
			if indexed {
				indices = fr.v.IndexSet().Members()
			}
			for _, idx := range indices {
				sub := make(map[*model.Connector]expr.Expr, len(rec.found))
				for _, c := range rec.found {
					access, err := fieldAccess(c, k, indexed, idx)
					if err != nil {
						return err
					}
					sub[c] = access
				}
				cList.Add(con.Lower, expr.Substitute(body, sub), con.Upper)
			}
		}
		con.Deactivate()
	}

	return nil
}

// buildConnections expands every collected connection into a fresh
// "<name>_expanded" block of per-field equality constraints on the
// connection's parent block, then deactivates the connection.
func buildConnections(coll *collection, acc *evarLog) error {
	for _, rec := range coll.connections {
		ctn := rec.comp.(*model.Connection)
		parent := ctn.ParentBlock()
		blk := model.NewBlock("")
		bname := parent.UniqueComponentName(ctn.LocalName() + "_expanded")
		if err := parent.AddComponent(bname, blk); err != nil {
			return fmt.Errorf("expand: rewriting connection %q: %w", ctn.Name(), err)
		}
		ctn.SetExpandedBlock(blk)

		ref := coll.refs[coll.classOf[rec.found[0]]]
		if err := addConnectionEqualities(blk, rec.found, ref, acc); err != nil {
			return fmt.Errorf("expand: rewriting connection %q: %w", ctn.Name(), err)
		}
		ctn.Deactivate()
	}

	return nil
}

// addConnectionEqualities emits the per-field constraints for one connector
// set onto blk.
//
// A singleton set (a connection equating a connector to itself) is treated
// as the same connector twice, so the trivial self-equality is still
// emitted: every connection yields at least one constraint per usable field.
//
// Extensive fields create exactly one shared variable per (set, field) —
// named after the field on blk — recorded in acc; a field extensive on every
// occurrence after the first skips the pairwise equality entirely, since all
// occurrences share the synthesized variable.
func addConnectionEqualities(blk *model.Block, set []*model.Connector, ref classRef, acc *evarLog) error {
	if len(set) == 1 {
		set = []*model.Connector{set[0], set[0]}
	}

	for _, k := range ref.sortedFields() {
		fr := ref[k]

		// Extensive handling: first occurrence creates the shared variable,
		// later occurrences only join its bookkeeping list.
		var (
			evar       *model.Var
			once, skip bool
		)
		for _, c := range set {
			etype, ok := c.IsExtensive(k)
			if !ok {
				continue
			}
			if once {
				skip = true
				acc.append(c, etype, k, evar)
				continue
			}
			once = true
			var opts []model.VarOption
			if v, _ := c.VarFor(k); v != nil && v.IsIndexed() {
				opts = append(opts, model.WithIndex(v.IndexSet()))
			}
			evar = model.NewVar(opts...)
			if err := blk.AddComponent(k, evar); err != nil {
				return err
			}
			acc.append(c, etype, k, evar)
		}
		if skip {
			continue // fully shared: no equality constraint needed
		}

		indexed := fr.shape >= 0
		indices := []string{""}
		if indexed {
			indices = fr.v.IndexSet().Members()
		}

		cname := k + "_equality"
		var list *model.ConstraintList
		if indexed {
			list = model.NewConstraintList()
			if err := blk.AddComponent(cname, list); err != nil {
				return err
			}
		}
		for _, idx := range indices {
			sides := make([]expr.Expr, 0, len(set))
			for _, c := range set {
				var (
					access expr.Expr
					err    error
				)
				if _, extensive := c.IsExtensive(k); extensive {
					access = expr.NewVarRef(evar)
				} else if access, err = fieldAccess(c, k, indexed, idx); err != nil {
					return err
				}
				sides = append(sides, access)
			}
			// Connections equate the first two sides; larger sets chain
			// through shared extensive variables instead.
			body := expr.Sub(sides[0], sides[1])
			if list != nil {
				list.Add(zero(), body, zero())
				continue
			}
			if err := blk.AddComponent(cname, model.Equality(body, 0)); err != nil {
				return err
			}
		}
	}

	return nil
}

func zero() *float64 {
	z := 0.0
	return &z
}

// implementAggregators adds, for every collected connector with aggregator
// fields, one implementing constraint per field, named
// "<connector>.<field>.aggregate" on the connector's parent block.
func implementAggregators(coll *collection) error {
	for _, conn := range coll.connectors {
		block := conn.ParentBlock()
		for _, k := range conn.Fields() {
			rule, ok := conn.Aggregator(k)
			if !ok {
				continue
			}
			v, _ := conn.VarFor(k)
			con := rule(block, v)
			cname := conn.Name() + "." + k + ".aggregate"
			if err := block.AddComponent(cname, con); err != nil {
				return fmt.Errorf("expand: aggregating %q: %w", cname, err)
			}
		}
	}

	return nil
}

// implementExtensives invokes, for every collected connector and each of its
// declared extensive types, the rule registered on that connector, passing
// the unit block and the expanded connection blocks the type's first field
// participates in.
func implementExtensives(coll *collection, acc *evarLog) error {
	for _, conn := range coll.connectors {
		unit := conn.ParentBlock()
		for _, etype := range conn.ExtensiveTypes() {
			rule, ok := conn.ExtensiveAggregator(etype)
			if !ok {
				return fmt.Errorf("%w: type %q on connector %q", ErrNoAggregator, etype, conn.Name())
			}
			var ctns []*model.Block
			if fields := conn.ExtensiveFields(etype); len(fields) > 0 {
				for _, ev := range acc.evarsFor(conn, etype, fields[0]) {
					ctns = append(ctns, ev.ParentBlock())
				}
			}
			if err := rule(unit, ctns, conn, etype); err != nil {
				return fmt.Errorf("expand: extensive type %q on %q: %w", etype, conn.Name(), err)
			}
		}
	}

	return nil
}
