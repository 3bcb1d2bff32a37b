package model

import (
	"fmt"
	"strconv"
)

// Block is a named, ordered component container. Components are stored in
// registration order; that order is the sole traversal order used by
// ComponentDataObjects, which makes every downstream enumeration
// reproducible across runs.
type Block struct {
	attachment

	entries []Component          // registration order
	byName  map[string]Component // lookup
}

// NewBlock creates a root block with the given name. Nested blocks are
// created the same way and then attached with AddComponent.
func NewBlock(name string) *Block {
	b := &Block{byName: make(map[string]Component)}
	b.local = name

	return b
}

// Kind returns KindBlock.
func (b *Block) Kind() Kind { return KindBlock }

// qualifier returns the dotted path contributed by b to its children's
// fully-qualified names. The root block contributes nothing: qualified names
// are relative to the model root, so they are stable however the root model
// itself is named.
func (b *Block) qualifier() string {
	if b.parent == nil {
		return ""
	}
	if prefix := b.parent.qualifier(); prefix != "" {
		return prefix + "." + b.local
	}

	return b.local
}

// AddComponent attaches c to b under name.
//
// Error Conditions:
//   - ErrEmptyName          : name is "".
//   - ErrNilComponent       : c is nil.
//   - ErrDuplicateComponent : name already registered on b.
//
// Complexity: O(1).
func (b *Block) AddComponent(name string, c Component) error {
	if name == "" {
		return ErrEmptyName
	}
	if c == nil {
		return ErrNilComponent
	}
	if _, dup := b.byName[name]; dup {
		return fmt.Errorf("%w: %q on block %q", ErrDuplicateComponent, name, b.Name())
	}
	c.attach(b, name)
	b.byName[name] = c
	b.entries = append(b.entries, c)

	return nil
}

// Component returns the component registered under name, or nil.
func (b *Block) Component(name string) Component { return b.byName[name] }

// UniqueComponentName returns base if free on b, otherwise base_2, base_3, …
// —the first suffixed variant not yet registered. The probe sequence is fixed,
// so synthesized names are stable for a given registration history.
func (b *Block) UniqueComponentName(base string) string {
	if _, taken := b.byName[base]; !taken {
		return base
	}
	for i := 2; ; i++ {
		candidate := base + "_" + strconv.Itoa(i)
		if _, taken := b.byName[candidate]; !taken {
			return candidate
		}
	}
}

// ComponentDataObjects returns every component of one of the requested kinds,
// walking b and nested blocks pre-order in registration order.
//
// ConstraintList containers are transparent for KindConstraint: their member
// constraints are yielded in add order (the container itself is yielded only
// for KindConstraintList). When activeOnly is set, deactivated constraints
// and connections are skipped.
//
// Complexity: O(total components).
func (b *Block) ComponentDataObjects(activeOnly bool, kinds ...Kind) []Component {
	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var out []Component
	b.collect(want, activeOnly, &out)

	return out
}

func (b *Block) collect(want map[Kind]bool, activeOnly bool, out *[]Component) {
	for _, c := range b.entries {
		switch v := c.(type) {
		case *Block:
			if want[KindBlock] {
				*out = append(*out, v)
			}
			v.collect(want, activeOnly, out)
		case *ConstraintList:
			if want[KindConstraintList] {
				*out = append(*out, v)
			}
			if want[KindConstraint] {
				for _, con := range v.cons {
					if activeOnly && !con.IsActive() {
						continue
					}
					*out = append(*out, con)
				}
			}
		case *Constraint:
			if want[KindConstraint] && !(activeOnly && !v.IsActive()) {
				*out = append(*out, v)
			}
		case *Connection:
			if want[KindConnection] && !(activeOnly && !v.IsActive()) {
				*out = append(*out, v)
			}
		case *Var:
			if want[KindVar] {
				*out = append(*out, v)
			}
		case *Connector:
			if want[KindConnector] {
				*out = append(*out, v)
			}
		}
	}
}
