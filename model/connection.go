package model

// Connection is a model statement asserting equivalence between the exposed
// fields of two or more connectors (or of one connector with itself — the
// degenerate case still yields a trivial equality after expansion).
type Connection struct {
	attachment

	connectors []*Connector
	active     bool

	// expanded is the block the rewriter attached the generated equality
	// constraints to; nil until expansion.
	expanded *Block
}

// NewConnection creates an active connection joining the given connectors,
// in the given order.
func NewConnection(connectors ...*Connector) *Connection {
	return &Connection{connectors: connectors, active: true}
}

// Kind returns KindConnection.
func (c *Connection) Kind() Kind { return KindConnection }

// Connectors returns the joined connectors in declaration order.
func (c *Connection) Connectors() []*Connector {
	out := make([]*Connector, len(c.connectors))
	copy(out, c.connectors)

	return out
}

// IsActive reports whether the connection participates in traversal.
func (c *Connection) IsActive() bool { return c.active }

// Deactivate removes the connection from active traversal; the rewriter
// calls this after generating the replacement constraints.
func (c *Connection) Deactivate() { c.active = false }

// SetExpandedBlock records the block holding the generated constraints.
func (c *Connection) SetExpandedBlock(b *Block) { c.expanded = b }

// ExpandedBlock returns the block holding the generated constraints, or nil
// if the connection has not been expanded.
func (c *Connection) ExpandedBlock() *Block { return c.expanded }
