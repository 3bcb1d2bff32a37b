package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optimod/expr"
	"github.com/katalvlaran/optimod/model"
)

// TestIdentifyConnectors_OrderAndDedup verifies pre-order first-seen
// enumeration with duplicates collapsed.
func TestIdentifyConnectors_OrderAndDedup(t *testing.T) {
	m := model.NewBlock("m")
	c1, c2 := model.NewConnector(), model.NewConnector()
	require.NoError(t, m.AddComponent("c1", c1))
	require.NoError(t, m.AddComponent("c2", c2))

	// (c2 - c1) + c2 : c2 appears twice, c1 once.
	e := expr.Add(expr.Sub(expr.NewConnRef(c2), expr.NewConnRef(c1)), expr.NewConnRef(c2))

	found := expr.IdentifyConnectors(e)
	require.Len(t, found, 2)
	assert.Same(t, c2, found[0], "pre-order: c2 is encountered first")
	assert.Same(t, c1, found[1])
}

// TestSubstitute_ReplacesByIdentityWithoutMutation verifies identity-keyed
// replacement and that the source expression is left untouched.
func TestSubstitute_ReplacesByIdentityWithoutMutation(t *testing.T) {
	m := model.NewBlock("m")
	c1, c2 := model.NewConnector(), model.NewConnector()
	require.NoError(t, m.AddComponent("c1", c1))
	require.NoError(t, m.AddComponent("c2", c2))

	v := model.NewVar()
	require.NoError(t, m.AddComponent("x", v))

	src := expr.Sub(expr.NewConnRef(c1), expr.NewConnRef(c2))
	before := src.String()

	out := expr.Substitute(src, map[*model.Connector]expr.Expr{c1: expr.NewVarRef(v)})

	assert.Equal(t, "(x - c2)", out.String(), "mapped leaf replaced, unmapped leaf kept")
	assert.Equal(t, before, src.String(), "source expression must not change")
}

// TestString_Deterministic verifies that rendering depends only on tree
// shape: constants, element references, and nesting all format stably.
func TestString_Deterministic(t *testing.T) {
	m := model.NewBlock("m")
	set := model.NewIndexSet("t1", "t2")
	v := model.NewVar(model.WithIndex(set))
	require.NoError(t, m.AddComponent("q", v))

	e := expr.Mul(expr.NewConst(2), expr.Add(expr.NewVarElemRef(v, "t1"), expr.NewConst(0.5)))

	assert.Equal(t, "(2 * (q[t1] + 0.5))", e.String())
	assert.Equal(t, e.String(), e.String())
}
