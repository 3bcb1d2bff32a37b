package expr

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/optimod/model"
)

// Expr is an immutable expression node. All nodes render deterministically
// via String and satisfy model.Expression.
type Expr interface {
	model.Expression

	// clone returns a deep copy with connector-reference leaves replaced
	// per sub; non-leaf structure is always copied.
	clone(sub map[*model.Connector]Expr) Expr

	// walk invokes fn on the node and recurses pre-order into children.
	walk(fn func(Expr))
}

// Const is a numeric literal.
type Const struct {
	Value float64
}

// NewConst creates a numeric literal node.
func NewConst(v float64) Const { return Const{Value: v} }

// String renders the literal with %g formatting.
func (c Const) String() string { return strconv.FormatFloat(c.Value, 'g', -1, 64) }

func (c Const) clone(map[*model.Connector]Expr) Expr { return c }

func (c Const) walk(fn func(Expr)) { fn(c) }

// VarRef references a model variable, optionally at one index element.
type VarRef struct {
	Var *model.Var

	// Index is the element label for indexed variables ("" for scalar use).
	Index string
}

// NewVarRef creates a reference to a scalar variable (or a whole list member).
func NewVarRef(v *model.Var) VarRef { return VarRef{Var: v} }

// NewVarElemRef creates a reference to one element of an indexed variable.
func NewVarElemRef(v *model.Var, index string) VarRef { return VarRef{Var: v, Index: index} }

// String renders the variable's fully-qualified name, with "[index]" when
// the reference targets one element.
func (r VarRef) String() string {
	if r.Index == "" {
		return r.Var.Name()
	}

	return r.Var.Name() + "[" + r.Index + "]"
}

func (r VarRef) clone(map[*model.Connector]Expr) Expr { return r }

func (r VarRef) walk(fn func(Expr)) { fn(r) }

// ConnRef references a connector by identity. It is a placeholder leaf: the
// rewriter substitutes it with the per-field variable access once the
// connector's equivalence class has been validated and expanded.
type ConnRef struct {
	Conn *model.Connector
}

// NewConnRef creates a connector-reference leaf.
func NewConnRef(c *model.Connector) ConnRef { return ConnRef{Conn: c} }

// String renders the connector's fully-qualified name.
func (r ConnRef) String() string { return r.Conn.Name() }

func (r ConnRef) clone(sub map[*model.Connector]Expr) Expr {
	if repl, ok := sub[r.Conn]; ok {
		return repl
	}

	return r
}

func (r ConnRef) walk(fn func(Expr)) { fn(r) }

// Sum is an n-ary addition over Terms in build order.
type Sum struct {
	Terms []Expr
}

// Add creates a Sum over terms (order preserved).
func Add(terms ...Expr) Sum { return Sum{Terms: terms} }

// String renders "(t1 + t2 + …)".
func (s Sum) String() string {
	parts := make([]string, len(s.Terms))
	for i, t := range s.Terms {
		parts[i] = t.String()
	}

	return "(" + strings.Join(parts, " + ") + ")"
}

func (s Sum) clone(sub map[*model.Connector]Expr) Expr {
	terms := make([]Expr, len(s.Terms))
	for i, t := range s.Terms {
		terms[i] = t.clone(sub)
	}

	return Sum{Terms: terms}
}

func (s Sum) walk(fn func(Expr)) {
	fn(s)
	for _, t := range s.Terms {
		t.walk(fn)
	}
}

// Diff is the binary difference L - R.
type Diff struct {
	L, R Expr
}

// Sub creates a Diff node.
func Sub(l, r Expr) Diff { return Diff{L: l, R: r} }

// String renders "(L - R)".
func (d Diff) String() string { return "(" + d.L.String() + " - " + d.R.String() + ")" }

func (d Diff) clone(sub map[*model.Connector]Expr) Expr {
	return Diff{L: d.L.clone(sub), R: d.R.clone(sub)}
}

func (d Diff) walk(fn func(Expr)) {
	fn(d)
	d.L.walk(fn)
	d.R.walk(fn)
}

// Prod is the binary product L * R.
type Prod struct {
	L, R Expr
}

// Mul creates a Prod node.
func Mul(l, r Expr) Prod { return Prod{L: l, R: r} }

// String renders "(L * R)".
func (p Prod) String() string { return "(" + p.L.String() + " * " + p.R.String() + ")" }

func (p Prod) clone(sub map[*model.Connector]Expr) Expr {
	return Prod{L: p.L.clone(sub), R: p.R.clone(sub)}
}

func (p Prod) walk(fn func(Expr)) {
	fn(p)
	p.L.walk(fn)
	p.R.walk(fn)
}

// IdentifyConnectors returns every distinct connector referenced in e, in
// pre-order first-seen order. The order is a function of expression shape
// only, so repeated runs over structurally identical bodies agree.
// Complexity: O(nodes).
func IdentifyConnectors(e Expr) []*model.Connector {
	var (
		out  []*model.Connector
		seen = make(map[*model.Connector]struct{})
	)
	e.walk(func(n Expr) {
		if ref, ok := n.(ConnRef); ok {
			if _, dup := seen[ref.Conn]; !dup {
				seen[ref.Conn] = struct{}{}
				out = append(out, ref.Conn)
			}
		}
	})

	return out
}

// Substitute returns a copy of e with each connector-reference leaf replaced
// by sub[connector] when present. Leaves without a mapping are kept; e is
// never mutated.
// Complexity: O(nodes).
func Substitute(e Expr, sub map[*model.Connector]Expr) Expr {
	return e.clone(sub)
}
