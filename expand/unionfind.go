package expand

import "github.com/katalvlaran/optimod/model"

// connectorArena is a weighted union-find over dense integer connector IDs.
//
// Connectors are interned on first sight (id == discovery index). A class is
// born when a component's first connector has no reference class yet; class
// birth — and only class birth — consumes a fresh monotone group ID. Merges
// fold the smaller class into the larger, and the surviving root keeps its
// own group ID ("larger set survives" rule). Group IDs — not pointers, not
// map order — are the deterministic sort key for final class iteration.
type connectorArena struct {
	ids    map[*model.Connector]int // connector → dense ID
	conns  []*model.Connector       // discovery order; index == ID
	parent []int                    // union-find parent (self at roots)
	size   []int                    // class cardinality (valid at roots)
	group  []int                    // group ID (valid at roots; -1 until startClass)

	nextGroup int // monotone group-ID counter
}

func newConnectorArena() *connectorArena {
	return &connectorArena{ids: make(map[*model.Connector]int)}
}

// known reports whether c was interned already, returning its ID.
func (a *connectorArena) known(c *model.Connector) (int, bool) {
	id, ok := a.ids[c]
	return id, ok
}

// intern registers a new connector as a groupless singleton and returns its
// dense ID. The caller either promotes it with startClass (first connector
// of a component with no reference class) or unions it into an existing
// class, which absorbs it before its group is ever read.
func (a *connectorArena) intern(c *model.Connector) int {
	id := len(a.conns)
	a.ids[c] = id
	a.conns = append(a.conns, c)
	a.parent = append(a.parent, id)
	a.size = append(a.size, 1)
	a.group = append(a.group, -1)

	return id
}

// startClass assigns the next monotone group ID to the singleton rooted at id.
func (a *connectorArena) startClass(id int) {
	a.group[id] = a.nextGroup
	a.nextGroup++
}

// find returns the class root of id, compressing paths as it walks.
func (a *connectorArena) find(id int) int {
	root := id
	for a.parent[root] != root {
		root = a.parent[root]
	}
	// Path compression: point every node on the walk directly at the root.
	for a.parent[id] != root {
		a.parent[id], id = root, a.parent[id]
	}

	return root
}

// union merges the classes of x and y and returns the surviving root.
// The larger class survives (weighted union); on equal cardinality the class
// of x survives, so callers pass the current reference class first.
func (a *connectorArena) union(x, y int) int {
	rx, ry := a.find(x), a.find(y)
	if rx == ry {
		return rx
	}
	if a.size[rx] < a.size[ry] {
		rx, ry = ry, rx
	}
	a.parent[ry] = rx
	a.size[rx] += a.size[ry]

	return rx
}

// groupOf returns the group ID of id's class (-1 only for absorbed
// singletons that never see startClass, which cannot be roots).
func (a *connectorArena) groupOf(id int) int { return a.group[a.find(id)] }
