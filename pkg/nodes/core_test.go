package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeIdentity(t *testing.T) {
	t.Run("fresh nodes carry temporary uids", func(t *testing.T) {
		m := NewMaterial("polystyrene")
		assert.True(t, IsTempUID(m.UID()))
		assert.Empty(t, m.SavedID())
		assert.Equal(t, []string{TagMaterial}, m.Tags())
	})

	t.Run("uids are distinct per instance", func(t *testing.T) {
		a := NewMaterial("a")
		b := NewMaterial("b")
		assert.NotEqual(t, a.UID(), b.UID())
	})

	t.Run("saved id bypasses validation", func(t *testing.T) {
		m := NewMaterial("polystyrene")
		m.SetSavedID("df72ac91-2037-4d32-8d61-1cd0a0e4778c")
		assert.Equal(t, "df72ac91-2037-4d32-8d61-1cd0a0e4778c", m.SavedID())
	})

	t.Run("string form names type and uid", func(t *testing.T) {
		m := NewMaterial("polystyrene")
		assert.Contains(t, m.String(), TagMaterial)
		assert.Contains(t, m.String(), m.UID())
	})
}

func TestUpdate(t *testing.T) {
	svc := testValidator(t)

	t.Run("valid mutation sticks", func(t *testing.T) {
		m := NewMaterial("polystyrene")
		err := Update(m, svc, func(a *MaterialAttrs) {
			a.BigSMILES = "{[][$]CC(c1ccccc1)[$][]}"
		})
		require.NoError(t, err)
		assert.Equal(t, "{[][$]CC(c1ccccc1)[$][]}", m.Attrs().BigSMILES)
	})

	t.Run("invalid mutation rolls back to identical state", func(t *testing.T) {
		p := NewParameter("update_frequency", 1000.0, "1/ns")
		before, err := p.JSON()
		require.NoError(t, err)

		err = Update(p, svc, func(a *ParameterAttrs) {
			a.Value = "every nanosecond"
		})
		require.Error(t, err)
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, Node(p), schemaErr.Node)

		after, err := p.JSON()
		require.NoError(t, err)
		assert.Equal(t, string(before), string(after))
	})

	t.Run("nil validator installs without checks", func(t *testing.T) {
		p := NewParameter("update_frequency", 1000.0, "1/ns")
		err := Update(p, nil, func(a *ParameterAttrs) {
			a.Value = "every nanosecond"
		})
		require.NoError(t, err)
		assert.Equal(t, "every nanosecond", p.Attrs().Value)
	})

	t.Run("record type mismatch is reported", func(t *testing.T) {
		m := NewMaterial("polystyrene")
		err := Update(m, nil, func(a *ProjectAttrs) {
			a.Name = "not a material record"
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record type mismatch")
		assert.Equal(t, "polystyrene", m.Attrs().Name)
	})

	t.Run("mutation introducing a cycle rolls back", func(t *testing.T) {
		d := NewData("trace", "raw")
		c := NewComputation("analysis", "analysis")
		require.NoError(t, Update(c, nil, func(a *ComputationAttrs) {
			a.OutputData = append(a.OutputData, d)
		}))

		err := Update(d, svc, func(a *DataAttrs) {
			a.Computation = append(a.Computation, c)
		})
		require.Error(t, err)
		var cycleErr *CycleError
		require.ErrorAs(t, err, &cycleErr)
		assert.Empty(t, d.Attrs().Computation)
	})
}

func TestRemoveChild(t *testing.T) {
	svc := testValidator(t)

	t.Run("removes a slice element once", func(t *testing.T) {
		fx := simpleProjectGraph(t)
		removed, err := fx.project.RemoveChild(fx.collection, nil)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Empty(t, fx.project.Attrs().Collection)

		removed, err = fx.project.RemoveChild(fx.collection, nil)
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("removes only the first occurrence", func(t *testing.T) {
		m := NewMaterial("styrene")
		inv := NewInventory("stock", m, m)
		removed, err := inv.RemoveChild(m, nil)
		require.NoError(t, err)
		assert.True(t, removed)
		require.Len(t, inv.Attrs().Material, 1)
		assert.Same(t, m, inv.Attrs().Material[0])
	})

	t.Run("containment is by identity", func(t *testing.T) {
		m := NewMaterial("styrene")
		lookalike := NewMaterial("styrene")
		inv := NewInventory("stock", m)
		removed, err := inv.RemoveChild(lookalike, nil)
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Len(t, inv.Attrs().Material, 1)
	})

	t.Run("clears a scalar reference field", func(t *testing.T) {
		ref := NewReference("journal_article", "Living polymers")
		cit := NewCitation("reference", ref)
		removed, err := cit.RemoveChild(ref, svc)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Nil(t, cit.Attrs().Reference)
	})

	t.Run("invalid removal rolls back", func(t *testing.T) {
		m := NewMaterial("styrene")
		ing := NewIngredient(m, NewQuantity("mass", 1.0, "kg"))
		removed, err := ing.RemoveChild(m, svc)
		require.Error(t, err)
		assert.False(t, removed)
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Same(t, m, ing.Attrs().Material)
	})

	t.Run("nil child is a no-op", func(t *testing.T) {
		fx := simpleProjectGraph(t)
		removed, err := fx.project.RemoveChild(nil, nil)
		require.NoError(t, err)
		assert.False(t, removed)
	})
}
