package model

import (
	"fmt"
	"strconv"
)

// Domain names the admissible value set of a variable.
type Domain string

// Built-in variable domains.
const (
	Reals            Domain = "Reals"
	NonNegativeReals Domain = "NonNegativeReals"
	Integers         Domain = "Integers"
	Binary           Domain = "Binary"
)

// Bounds is a closed interval constraint on a variable's value.
type Bounds struct {
	Lower, Upper float64
}

// Var is a decision variable: scalar, indexed over an IndexSet, or a list
// variable (an append-only container used as an aggregator target).
//
// Domain and bounds are optional capabilities exposed through typed queries
// (HasDomain/HasBounds) rather than reflection, so callers copying variable
// attributes can test presence explicitly. Indexed variables additionally
// carry per-element domain/bound overrides (see Elem).
type Var struct {
	attachment

	index *IndexSet // nil for scalar and list variables

	hasDomain bool
	domain    Domain
	hasBounds bool
	bounds    Bounds

	elems map[string]*VarElem // indexed: per-element attributes, lazy

	isList  bool
	members []*Var // list members, in Add order
}

// VarElem carries the per-index attributes of one element of an indexed Var.
type VarElem struct {
	hasDomain bool
	domain    Domain
	hasLB     bool
	lb        float64
	hasUB     bool
	ub        float64
}

// VarOption configures a Var at construction.
type VarOption func(*Var)

// WithIndex makes the variable indexed over set.
func WithIndex(set *IndexSet) VarOption {
	return func(v *Var) { v.index = set }
}

// WithDomain sets the variable's domain.
func WithDomain(d Domain) VarOption {
	return func(v *Var) { v.hasDomain = true; v.domain = d }
}

// WithBounds sets the variable's bounds.
func WithBounds(lower, upper float64) VarOption {
	return func(v *Var) { v.hasBounds = true; v.bounds = Bounds{Lower: lower, Upper: upper} }
}

// NewVar creates a variable. With no options the variable is scalar with no
// domain and no bounds.
func NewVar(opts ...VarOption) *Var {
	v := &Var{}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// NewVarList creates an append-only list variable. List variables are used
// as aggregator targets: each Add call yields a fresh scalar member.
func NewVarList() *Var {
	return &Var{isList: true}
}

// Kind returns KindVar.
func (v *Var) Kind() Kind { return KindVar }

// IsIndexed reports whether the variable is indexed over an IndexSet.
func (v *Var) IsIndexed() bool { return v.index != nil }

// IsList reports whether the variable is an append-only list variable.
func (v *Var) IsList() bool { return v.isList }

// Len returns the element count: index-set size for indexed variables,
// member count for list variables, and 1 for scalars.
func (v *Var) Len() int {
	switch {
	case v.index != nil:
		return v.index.Len()
	case v.isList:
		return len(v.members)
	default:
		return 1
	}
}

// IndexSet returns the index set (nil for scalar and list variables).
func (v *Var) IndexSet() *IndexSet { return v.index }

// HasDomain reports whether a domain was assigned.
func (v *Var) HasDomain() bool { return v.hasDomain }

// Domain returns the assigned domain; meaningful only when HasDomain.
func (v *Var) Domain() Domain { return v.domain }

// SetDomain assigns the variable's domain.
func (v *Var) SetDomain(d Domain) { v.hasDomain = true; v.domain = d }

// HasBounds reports whether bounds were assigned.
func (v *Var) HasBounds() bool { return v.hasBounds }

// Bounds returns the assigned bounds; meaningful only when HasBounds.
func (v *Var) Bounds() Bounds { return v.bounds }

// SetBounds assigns the variable's bounds.
func (v *Var) SetBounds(b Bounds) { v.hasBounds = true; v.bounds = b }

// Elem returns the per-element attribute record for label, creating it on
// first access with the parent variable's domain/bounds as starting values.
//
// Error Conditions:
//   - ErrNotIndexed : v is scalar or a list variable.
//   - ErrBadIndex   : label is not a member of the index set.
func (v *Var) Elem(label string) (*VarElem, error) {
	if v.index == nil {
		return nil, ErrNotIndexed
	}
	if !v.index.Contains(label) {
		return nil, fmt.Errorf("%w: %q on variable %q", ErrBadIndex, label, v.Name())
	}
	if v.elems == nil {
		v.elems = make(map[string]*VarElem, v.index.Len())
	}
	e, ok := v.elems[label]
	if !ok {
		e = &VarElem{
			hasDomain: v.hasDomain, domain: v.domain,
			hasLB: v.hasBounds, lb: v.bounds.Lower,
			hasUB: v.hasBounds, ub: v.bounds.Upper,
		}
		v.elems[label] = e
	}

	return e, nil
}

// Add appends and returns a fresh scalar member of a list variable.
//
// Error Conditions:
//   - ErrNotList : v was not created with NewVarList.
func (v *Var) Add() (*Var, error) {
	if !v.isList {
		return nil, ErrNotList
	}
	member := &Var{}
	// Members are named after the list and their ordinal, for rendering.
	member.local = v.LocalName() + "[" + strconv.Itoa(len(v.members)+1) + "]"
	member.parent = v.parent
	v.members = append(v.members, member)

	return member, nil
}

// Members returns the list members in Add order (nil for non-list variables).
func (v *Var) Members() []*Var { return v.members }

// HasDomain reports whether the element carries a domain.
func (e *VarElem) HasDomain() bool { return e.hasDomain }

// Domain returns the element's domain; meaningful only when HasDomain.
func (e *VarElem) Domain() Domain { return e.domain }

// SetDomain assigns the element's domain.
func (e *VarElem) SetDomain(d Domain) { e.hasDomain = true; e.domain = d }

// HasLB reports whether the element carries a lower bound.
func (e *VarElem) HasLB() bool { return e.hasLB }

// LB returns the element's lower bound; meaningful only when HasLB.
func (e *VarElem) LB() float64 { return e.lb }

// SetLB assigns the element's lower bound.
func (e *VarElem) SetLB(lb float64) { e.hasLB = true; e.lb = lb }

// HasUB reports whether the element carries an upper bound.
func (e *VarElem) HasUB() bool { return e.hasUB }

// UB returns the element's upper bound; meaningful only when HasUB.
func (e *VarElem) UB() float64 { return e.ub }

// SetUB assigns the element's upper bound.
func (e *VarElem) SetUB(ub float64) { e.hasUB = true; e.ub = ub }
