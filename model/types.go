// File: types.go
// Role: Component interface, kinds, and the shared attachment base.
//
// Determinism:
//   - Fully-qualified names are derived from the block path at call time,
//     never from memory identity.
package model

// Kind discriminates component categories for ComponentDataObjects filtering.
type Kind int

const (
	// KindBlock selects nested Block components.
	KindBlock Kind = iota
	// KindVar selects Var components (including list variables).
	KindVar
	// KindConstraint selects Constraint components and ConstraintList members.
	KindConstraint
	// KindConstraintList selects ConstraintList containers themselves.
	KindConstraintList
	// KindConnector selects Connector components.
	KindConnector
	// KindConnection selects Connection components.
	KindConnection
)

// Expression is the minimal surface the model layer needs from expression
// trees. The concrete tree lives in package expr; keeping only String here
// avoids a dependency cycle between the two packages.
type Expression interface {
	// String renders the expression deterministically.
	String() string
}

// Component is anything attachable to a Block.
type Component interface {
	// LocalName returns the name the component was registered under,
	// or "" before attachment.
	LocalName() string

	// Name returns the fully-qualified dotted name (block path + local name).
	Name() string

	// Kind returns the component's category.
	Kind() Kind

	// attach records the owning block and local name; called by AddComponent.
	attach(parent *Block, name string)
}

// attachment is the shared base embedded by every concrete component.
// parent is a non-owning back reference used only for naming and for adding
// synthesized siblings during expansion.
type attachment struct {
	parent *Block
	local  string
}

func (a *attachment) attach(parent *Block, name string) {
	a.parent = parent
	a.local = name
}

// LocalName returns the registration name ("" before attachment).
func (a *attachment) LocalName() string { return a.local }

// ParentBlock returns the owning block, or nil before attachment.
func (a *attachment) ParentBlock() *Block { return a.parent }

// Name returns the fully-qualified dotted name: the block path down from —
// but excluding — the root block, joined with '.'. An unattached component
// (and the root block itself) reports its local name.
func (a *attachment) Name() string {
	if a.parent == nil {
		return a.local
	}
	if prefix := a.parent.qualifier(); prefix != "" {
		return prefix + "." + a.local
	}

	return a.local
}
