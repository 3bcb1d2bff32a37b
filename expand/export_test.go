package expand

import "github.com/katalvlaran/optimod/model"

// ClassMembers exposes the builder's final equivalence classes to white-box
// tests: one member slice per class, classes ordered by group ID, members in
// discovery order. The model is not mutated.
func ClassMembers(m *model.Block, kinds ...model.Kind) [][]*model.Connector {
	coll := collect(m, kinds...)
	out := make([][]*model.Connector, 0, len(coll.classes))
	for _, cl := range coll.classes {
		members := make([]*model.Connector, len(cl.conns))
		copy(members, cl.conns)
		out = append(out, members)
	}

	return out
}
