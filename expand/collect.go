package expand

import (
	"sort"

	"github.com/katalvlaran/optimod/expr"
	"github.com/katalvlaran/optimod/model"
)

// record pairs one original component (constraint or connection) with the
// connectors found in it, deduplicated in encounter order.
type record struct {
	comp  model.Component
	found []*model.Connector
}

// class is one finalized equivalence class of connectors.
type class struct {
	id    int                // group ID (deterministic sort key)
	conns []*model.Connector // members in discovery order
}

// collection is the result of the builder pass.
type collection struct {
	constraints []record           // constraints referencing connectors, traversal order
	connections []record           // connections, traversal order
	connectors  []*model.Connector // global discovery order
	arena       *connectorArena
	classes     []*class           // sorted by group ID
	classOf     map[*model.Connector]*class
	refs        map[*class]classRef // canonical field references, filled by validate
}

// collect scans every active component of the requested kinds in the model's
// deterministic traversal order and partitions the referenced connectors
// into equivalence classes: two connectors land in one class exactly when a
// chain of components relates them (transitive closure of co-occurrence).
//
// Merge work is bounded by weighted union (smaller class folds into larger),
// and the final class order is by group ID, so the outcome is independent of
// memory layout and of the order in which merges happened to occur.
// Complexity: O(components + references · α(connectors)).
func collect(m *model.Block, kinds ...model.Kind) *collection {
	coll := &collection{
		arena:   newConnectorArena(),
		classOf: make(map[*model.Connector]*class),
		refs:    make(map[*class]classRef),
	}

	for _, comp := range m.ComponentDataObjects(true, kinds...) {
		var refs []*model.Connector
		switch v := comp.(type) {
		case *model.Constraint:
			body, ok := v.Body.(expr.Expr)
			if !ok {
				continue // constant or foreign body: nothing to scan
			}
			refs = expr.IdentifyConnectors(body)
		case *model.Connection:
			refs = v.Connectors()
		default:
			continue
		}

		// ref is the component's reference class root (-1 until chosen).
		ref := -1
		var found []*model.Connector
		seen := make(map[*model.Connector]struct{}, len(refs))
		for _, c := range refs {
			if _, dup := seen[c]; !dup {
				seen[c] = struct{}{}
				found = append(found, c)
			}
			if id, ok := coll.arena.known(c); ok {
				if ref == -1 {
					// First connector of this component was seen before:
					// adopt its class as the reference.
					ref = coll.arena.find(id)
				} else {
					// Another known class: merge it into the reference.
					ref = coll.arena.union(ref, id)
				}
				continue
			}
			// Brand-new connector: record discovery order, then either start
			// a class (no reference yet) or join the reference class.
			id := coll.arena.intern(c)
			coll.connectors = append(coll.connectors, c)
			if ref == -1 {
				coll.arena.startClass(id)
				ref = id
			} else {
				ref = coll.arena.union(ref, id)
			}
		}

		if ref == -1 {
			continue // component references no connectors
		}
		rec := record{comp: comp, found: found}
		if _, isCon := comp.(*model.Constraint); isCon {
			coll.constraints = append(coll.constraints, rec)
		} else {
			coll.connections = append(coll.connections, rec)
		}
	}

	coll.finalize()

	return coll
}

// finalize materializes the classes: members grouped per root in discovery
// order, classes sorted by group ID.
func (coll *collection) finalize() {
	byRoot := make(map[int]*class)
	for id, c := range coll.arena.conns {
		root := coll.arena.find(id)
		cl, ok := byRoot[root]
		if !ok {
			cl = &class{id: coll.arena.group[root]}
			byRoot[root] = cl
			coll.classes = append(coll.classes, cl)
		}
		cl.conns = append(cl.conns, c)
		coll.classOf[c] = cl
	}
	sort.Slice(coll.classes, func(i, j int) bool {
		return coll.classes[i].id < coll.classes[j].id
	})
}
