package model

import "strconv"

// Constraint is a relational statement lower ≤ body ≤ upper with optional
// sides (nil means unbounded on that side). Equalities set Lower == Upper.
// Constraints start active; expansion deactivates originals after rewriting.
type Constraint struct {
	attachment

	Lower *float64
	Body  Expression
	Upper *float64

	active bool
}

// NewConstraint creates an active constraint. Either bound may be nil.
func NewConstraint(lower *float64, body Expression, upper *float64) *Constraint {
	return &Constraint{Lower: lower, Body: body, Upper: upper, active: true}
}

// Equality creates an active equality constraint body == rhs, stored in the
// normalized form rhs ≤ body ≤ rhs.
func Equality(body Expression, rhs float64) *Constraint {
	r := rhs
	return &Constraint{Lower: &r, Body: body, Upper: &r, active: true}
}

// Kind returns KindConstraint.
func (c *Constraint) Kind() Kind { return KindConstraint }

// IsActive reports whether the constraint participates in traversal.
func (c *Constraint) IsActive() bool { return c.active }

// Deactivate removes the constraint from active traversal. The component
// itself stays attached to its block.
func (c *Constraint) Deactivate() { c.active = false }

// Activate re-enables the constraint.
func (c *Constraint) Activate() { c.active = true }

// ConstraintList is an ordered, append-only constraint container. Members
// are named "<list>[<ordinal>]" and are yielded by ComponentDataObjects in
// add order, which keeps generated-constraint enumeration deterministic.
type ConstraintList struct {
	attachment

	cons []*Constraint
}

// NewConstraintList creates an empty constraint list.
func NewConstraintList() *ConstraintList {
	return &ConstraintList{}
}

// Kind returns KindConstraintList.
func (l *ConstraintList) Kind() Kind { return KindConstraintList }

// Add appends a new active constraint lower ≤ body ≤ upper and returns it.
func (l *ConstraintList) Add(lower *float64, body Expression, upper *float64) *Constraint {
	con := NewConstraint(lower, body, upper)
	con.parent = l.parent
	con.local = l.LocalName() + "[" + strconv.Itoa(len(l.cons)+1) + "]"
	l.cons = append(l.cons, con)

	return con
}

// Len returns the number of member constraints.
func (l *ConstraintList) Len() int { return len(l.cons) }

// Constraints returns the members in add order.
func (l *ConstraintList) Constraints() []*Constraint {
	out := make([]*Constraint, len(l.cons))
	copy(out, l.cons)

	return out
}
