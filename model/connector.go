package model

import "sort"

// AggregatorRule builds the implementing constraint for an aggregator field:
// given the connector's parent block and the field's list variable, it
// returns the constraint tying the accumulated members to the model.
type AggregatorRule func(b *Block, v *Var) *Constraint

// ExtensiveRule implements one extensive field type on a unit: it receives
// the unit block, the expanded connection blocks contributing to it, the
// connector, and the extensive type name.
type ExtensiveRule func(unit *Block, connections []*Block, conn *Connector, etype string) error

// Connector is a named port exposing a mapping from field name to variable.
//
// A field may be declared but unassigned (nil variable, to be synthesized
// during expansion), backed by a plain scalar/indexed variable, or backed by
// a list variable together with an AggregatorRule. Extensive fields carry
// per-type bookkeeping lists that the connection rewriter appends shared
// variables to.
//
// Field iteration (Fields) follows declaration order; extensive-type
// iteration (ExtensiveTypes, ExtensiveFields) is sorted. Both are stable
// across runs.
type Connector struct {
	attachment

	fields []string        // declaration order
	vars   map[string]*Var // nil value = declared, unassigned

	aggregators map[string]AggregatorRule

	// extensives: etype → field → shared variables appended during rewriting.
	extensives           map[string]map[string][]*Var
	extensiveAggregators map[string]ExtensiveRule
}

// NewConnector creates an empty connector.
func NewConnector() *Connector {
	return &Connector{
		vars:                 make(map[string]*Var),
		aggregators:          make(map[string]AggregatorRule),
		extensives:           make(map[string]map[string][]*Var),
		extensiveAggregators: make(map[string]ExtensiveRule),
	}
}

// Kind returns KindConnector.
func (c *Connector) Kind() Kind { return KindConnector }

// AddField declares field with no assigned variable (to be synthesized).
// Re-declaring an existing field is a no-op.
func (c *Connector) AddField(field string) {
	if _, ok := c.vars[field]; ok {
		return
	}
	c.vars[field] = nil
	c.fields = append(c.fields, field)
}

// SetVar declares field (if needed) and assigns v to it.
func (c *Connector) SetVar(field string, v *Var) {
	if _, ok := c.vars[field]; !ok {
		c.fields = append(c.fields, field)
	}
	c.vars[field] = v
}

// AddAggregator declares field as an aggregator: list becomes the field's
// variable and rule its implementing constraint builder.
func (c *Connector) AddAggregator(field string, list *Var, rule AggregatorRule) {
	c.SetVar(field, list)
	c.aggregators[field] = rule
}

// HasField reports whether field is declared (assigned or not).
func (c *Connector) HasField(field string) bool {
	_, ok := c.vars[field]
	return ok
}

// VarFor returns the variable assigned to field; assigned reports whether
// the field is declared at all (a declared-but-nil field returns (nil, true)).
func (c *Connector) VarFor(field string) (v *Var, assigned bool) {
	v, assigned = c.vars[field]
	return v, assigned
}

// Fields returns declared field names in declaration order.
func (c *Connector) Fields() []string {
	out := make([]string, len(c.fields))
	copy(out, c.fields)

	return out
}

// NumFields returns the number of declared fields.
func (c *Connector) NumFields() int { return len(c.fields) }

// IsAggregator reports whether field is an aggregator field.
func (c *Connector) IsAggregator(field string) bool {
	_, ok := c.aggregators[field]
	return ok
}

// Aggregator returns the rule registered for field, if any.
func (c *Connector) Aggregator(field string) (AggregatorRule, bool) {
	rule, ok := c.aggregators[field]
	return rule, ok
}

// DeclareExtensive marks field as extensive under etype; the field's shared
// variables accumulate in the connector's bookkeeping list during rewriting.
func (c *Connector) DeclareExtensive(etype, field string) {
	byField, ok := c.extensives[etype]
	if !ok {
		byField = make(map[string][]*Var)
		c.extensives[etype] = byField
	}
	if _, ok = byField[field]; !ok {
		byField[field] = nil
	}
}

// IsExtensive reports whether field is extensive on c, returning its type.
// Types are probed in sorted order, so a field declared under several types
// (unusual, but representable) resolves deterministically.
func (c *Connector) IsExtensive(field string) (etype string, ok bool) {
	for _, et := range c.ExtensiveTypes() {
		if _, found := c.extensives[et][field]; found {
			return et, true
		}
	}

	return "", false
}

// ExtensiveTypes returns declared extensive type names in sorted order.
func (c *Connector) ExtensiveTypes() []string {
	out := make([]string, 0, len(c.extensives))
	for et := range c.extensives {
		out = append(out, et)
	}
	sort.Strings(out)

	return out
}

// ExtensiveFields returns the fields declared under etype in sorted order.
func (c *Connector) ExtensiveFields(etype string) []string {
	byField := c.extensives[etype]
	out := make([]string, 0, len(byField))
	for f := range byField {
		out = append(out, f)
	}
	sort.Strings(out)

	return out
}

// AppendEvar appends a shared extensive variable to the (etype, field)
// bookkeeping list. The rewriter calls this once per connection block the
// field participates in.
func (c *Connector) AppendEvar(etype, field string, evar *Var) {
	c.DeclareExtensive(etype, field)
	c.extensives[etype][field] = append(c.extensives[etype][field], evar)
}

// Evars returns the shared variables accumulated for (etype, field), in
// append order.
func (c *Connector) Evars(etype, field string) []*Var {
	return c.extensives[etype][field]
}

// RegisterExtensiveAggregator registers the implementing rule for etype.
func (c *Connector) RegisterExtensiveAggregator(etype string, rule ExtensiveRule) {
	c.extensiveAggregators[etype] = rule
}

// ExtensiveAggregator returns the rule registered for etype, if any.
func (c *Connector) ExtensiveAggregator(etype string) (ExtensiveRule, bool) {
	rule, ok := c.extensiveAggregators[etype]
	return rule, ok
}
