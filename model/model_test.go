package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optimod/model"
)

// TestIndexSet_OrderAndAlgebra verifies insertion-order enumeration,
// deduplication, and the set-algebra operations the expansion validator
// relies on (Equal via SymmetricDifference emptiness).
func TestIndexSet_OrderAndAlgebra(t *testing.T) {
	s := model.NewIndexSet("t2", "t1", "t1", "t3")
	assert.Equal(t, 3, s.Len(), "duplicates must be dropped")
	assert.Equal(t, []string{"t2", "t1", "t3"}, s.Members(), "insertion order must be preserved")
	assert.True(t, s.Contains("t1"))
	assert.False(t, s.Contains("t9"))

	same := model.NewIndexSet("t3", "t2", "t1")
	other := model.NewIndexSet("t1", "t2", "t4")

	assert.True(t, s.Equal(same), "order must not affect equality")
	assert.False(t, s.Equal(other))
	assert.Equal(t, 0, s.SymmetricDifference(same).Len())
	assert.Equal(t, []string{"t3", "t4"}, s.SymmetricDifference(other).Members())
	assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, s.Union(other).Members(),
		"union result must be sorted")
}

// TestBlock_AddComponentErrors verifies the sentinel errors of AddComponent.
func TestBlock_AddComponentErrors(t *testing.T) {
	b := model.NewBlock("m")

	assert.ErrorIs(t, b.AddComponent("", model.NewVar()), model.ErrEmptyName)
	assert.ErrorIs(t, b.AddComponent("x", nil), model.ErrNilComponent)

	require.NoError(t, b.AddComponent("x", model.NewVar()))
	assert.ErrorIs(t, b.AddComponent("x", model.NewVar()), model.ErrDuplicateComponent)
}

// TestBlock_UniqueComponentName verifies the fixed probe sequence
// base, base_2, base_3, …
func TestBlock_UniqueComponentName(t *testing.T) {
	b := model.NewBlock("m")
	assert.Equal(t, "eq", b.UniqueComponentName("eq"))

	require.NoError(t, b.AddComponent("eq", model.NewVar()))
	assert.Equal(t, "eq_2", b.UniqueComponentName("eq"))

	require.NoError(t, b.AddComponent("eq_2", model.NewVar()))
	assert.Equal(t, "eq_3", b.UniqueComponentName("eq"))
}

// TestBlock_QualifiedNames verifies that fully-qualified names exclude the
// root block and join nested blocks with '.'.
func TestBlock_QualifiedNames(t *testing.T) {
	m := model.NewBlock("m")
	unit := model.NewBlock("")
	require.NoError(t, m.AddComponent("unit1", unit))

	v := model.NewVar()
	require.NoError(t, unit.AddComponent("x", v))

	assert.Equal(t, "unit1", unit.Name())
	assert.Equal(t, "unit1.x", v.Name())
}

// TestBlock_ComponentDataObjects verifies registration-order traversal,
// kind filtering, active-only filtering, and constraint-list transparency.
func TestBlock_ComponentDataObjects(t *testing.T) {
	m := model.NewBlock("m")
	unit := model.NewBlock("")

	c1 := model.Equality(nil, 0)
	c2 := model.Equality(nil, 0)
	list := model.NewConstraintList()

	require.NoError(t, m.AddComponent("c1", c1))
	require.NoError(t, m.AddComponent("unit1", unit))
	require.NoError(t, unit.AddComponent("c2", c2))
	require.NoError(t, m.AddComponent("extra", list))
	list.Add(nil, nil, nil)
	list.Add(nil, nil, nil)

	cons := m.ComponentDataObjects(true, model.KindConstraint)
	require.Len(t, cons, 4)
	assert.Equal(t, "c1", cons[0].Name())
	assert.Equal(t, "unit1.c2", cons[1].Name())
	assert.Equal(t, "extra[1]", cons[2].Name())
	assert.Equal(t, "extra[2]", cons[3].Name())

	// Deactivated constraints disappear from active-only traversal.
	c2.Deactivate()
	cons = m.ComponentDataObjects(true, model.KindConstraint)
	require.Len(t, cons, 3)
	assert.Equal(t, "c1", cons[0].Name())

	// But remain visible when activeOnly is off.
	cons = m.ComponentDataObjects(false, model.KindConstraint)
	assert.Len(t, cons, 4)
}

// TestVar_IndexedElements verifies element access, the per-element
// inheritance of domain/bounds, and the error conditions.
func TestVar_IndexedElements(t *testing.T) {
	set := model.NewIndexSet("a", "b")
	v := model.NewVar(
		model.WithIndex(set),
		model.WithDomain(model.NonNegativeReals),
		model.WithBounds(0, 10),
	)

	e, err := v.Elem("a")
	require.NoError(t, err)
	assert.True(t, e.HasDomain())
	assert.Equal(t, model.NonNegativeReals, e.Domain())
	assert.Equal(t, 0.0, e.LB())
	assert.Equal(t, 10.0, e.UB())

	// Per-element overrides stick without touching siblings.
	e.SetUB(5)
	b, err := v.Elem("b")
	require.NoError(t, err)
	assert.Equal(t, 10.0, b.UB())

	_, err = v.Elem("zz")
	assert.ErrorIs(t, err, model.ErrBadIndex)

	scalar := model.NewVar()
	_, err = scalar.Elem("a")
	assert.ErrorIs(t, err, model.ErrNotIndexed)
}

// TestVarList_Add verifies list-member creation and the ErrNotList guard.
func TestVarList_Add(t *testing.T) {
	m := model.NewBlock("m")
	list := model.NewVarList()
	require.NoError(t, m.AddComponent("agg", list))

	first, err := list.Add()
	require.NoError(t, err)
	second, err := list.Add()
	require.NoError(t, err)

	assert.Equal(t, "agg[1]", first.Name())
	assert.Equal(t, "agg[2]", second.Name())
	assert.Equal(t, 2, list.Len())

	_, err = model.NewVar().Add()
	assert.True(t, errors.Is(err, model.ErrNotList))
}

// TestConnector_FieldsAndAggregators verifies declaration-order field
// enumeration and aggregator bookkeeping.
func TestConnector_FieldsAndAggregators(t *testing.T) {
	c := model.NewConnector()
	c.AddField("pressure")
	c.SetVar("flow", model.NewVar())
	c.AddAggregator("total", model.NewVarList(), func(b *model.Block, v *model.Var) *model.Constraint {
		return model.Equality(nil, 0)
	})

	assert.Equal(t, []string{"pressure", "flow", "total"}, c.Fields())
	assert.True(t, c.IsAggregator("total"))
	assert.False(t, c.IsAggregator("flow"))

	v, declared := c.VarFor("pressure")
	assert.True(t, declared)
	assert.Nil(t, v, "declared-but-unassigned fields read as nil")
}
