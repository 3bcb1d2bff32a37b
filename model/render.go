package model

import (
	"fmt"
	"strings"
)

// Dump renders the block tree as a deterministic multi-line listing: one
// line per component in registration order, pre-order across nested blocks.
// Two structurally identical models built in the same order produce
// byte-identical dumps, which is what the expansion determinism tests (and
// reproducible-run checks in general) compare.
func (b *Block) Dump() string {
	var sb strings.Builder
	b.dump(&sb)

	return sb.String()
}

func (b *Block) dump(sb *strings.Builder) {
	fmt.Fprintf(sb, "block %s\n", b.Name())
	for _, c := range b.entries {
		switch v := c.(type) {
		case *Block:
			v.dump(sb)
		case *Var:
			dumpVar(sb, v)
		case *Constraint:
			dumpConstraint(sb, v)
		case *ConstraintList:
			fmt.Fprintf(sb, "constraintlist %s (%d)\n", v.Name(), v.Len())
			for _, con := range v.cons {
				dumpConstraint(sb, con)
			}
		case *Connector:
			fmt.Fprintf(sb, "connector %s fields=%s\n", v.Name(), strings.Join(v.Fields(), ","))
		case *Connection:
			names := make([]string, 0, len(v.connectors))
			for _, conn := range v.connectors {
				names = append(names, conn.Name())
			}
			fmt.Fprintf(sb, "connection %s active=%t joins=%s\n",
				v.Name(), v.active, strings.Join(names, ","))
		}
	}
}

func dumpVar(sb *strings.Builder, v *Var) {
	shape := "scalar"
	switch {
	case v.IsList():
		shape = fmt.Sprintf("list(%d)", len(v.members))
	case v.IsIndexed():
		shape = fmt.Sprintf("indexed[%s]", strings.Join(v.index.Members(), ","))
	}
	attrs := ""
	if v.hasDomain {
		attrs += " domain=" + string(v.domain)
	}
	if v.hasBounds {
		attrs += fmt.Sprintf(" bounds=[%g,%g]", v.bounds.Lower, v.bounds.Upper)
	}
	fmt.Fprintf(sb, "var %s %s%s\n", v.Name(), shape, attrs)
}

func dumpConstraint(sb *strings.Builder, c *Constraint) {
	lo, hi := "-inf", "+inf"
	if c.Lower != nil {
		lo = fmt.Sprintf("%g", *c.Lower)
	}
	if c.Upper != nil {
		hi = fmt.Sprintf("%g", *c.Upper)
	}
	body := "<nil>"
	if c.Body != nil {
		body = c.Body.String()
	}
	fmt.Fprintf(sb, "constraint %s active=%t : %s <= %s <= %s\n",
		c.Name(), c.active, lo, body, hi)
}
