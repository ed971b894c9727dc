package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// barostatAlgorithm builds the algorithm from a typical molecular dynamics
// setup: a Monte Carlo barostat with two tuning parameters.
func barostatAlgorithm(t *testing.T) (*Algorithm, *Parameter, *Parameter) {
	t.Helper()
	freq := NewParameter("update_frequency", 1000.0, "1/ns")
	damping := NewParameter("damping_time", 10000.0, "ps")
	alg := NewAlgorithm("mc_barostat", "barostat")
	require.NoError(t, Update(alg, nil, func(a *AlgorithmAttrs) {
		a.Parameter = []*Parameter{freq, damping}
	}))
	return alg, freq, damping
}

func TestFindChildren(t *testing.T) {
	t.Run("matches by type tag", func(t *testing.T) {
		alg, freq, damping := barostatAlgorithm(t)
		found := FindChildren(alg, map[string]any{"node": []any{TagParameter}}, -1)
		require.Len(t, found, 2)
		assert.Equal(t, Node(freq), found[0])
		assert.Equal(t, Node(damping), found[1])
	})

	t.Run("matches the root itself", func(t *testing.T) {
		alg, _, _ := barostatAlgorithm(t)
		found := FindChildren(alg, map[string]any{"key": "mc_barostat"}, -1)
		require.Len(t, found, 1)
		assert.Equal(t, Node(alg), found[0])
	})

	t.Run("empty criteria match every node", func(t *testing.T) {
		alg, _, _ := barostatAlgorithm(t)
		found := FindChildren(alg, map[string]any{}, -1)
		assert.Len(t, found, 3)
	})

	t.Run("criteria are conjunctive", func(t *testing.T) {
		alg, freq, _ := barostatAlgorithm(t)
		found := FindChildren(alg, map[string]any{
			"node": []any{TagParameter},
			"key":  "update_frequency",
		}, -1)
		require.Len(t, found, 1)
		assert.Equal(t, Node(freq), found[0])

		found = FindChildren(alg, map[string]any{
			"node":        []any{TagParameter},
			"key":         "update_frequency",
			"nonexistent": "x",
		}, -1)
		assert.Empty(t, found)
	})

	t.Run("numeric values match across representations", func(t *testing.T) {
		alg, freq, _ := barostatAlgorithm(t)
		found := FindChildren(alg, map[string]any{"value": 1000}, -1)
		require.Len(t, found, 1)
		assert.Equal(t, Node(freq), found[0])
	})

	t.Run("nested criteria match node-valued attributes", func(t *testing.T) {
		alg, _, _ := barostatAlgorithm(t)
		found := FindChildren(alg, map[string]any{
			"parameter": map[string]any{"key": "damping_time"},
		}, -1)
		require.Len(t, found, 1)
		assert.Equal(t, Node(alg), found[0])
	})

	t.Run("list of nested criteria requires a match per entry", func(t *testing.T) {
		alg, _, _ := barostatAlgorithm(t)
		found := FindChildren(alg, map[string]any{
			"parameter": []any{
				map[string]any{"key": "damping_time"},
				map[string]any{"key": "update_frequency"},
			},
		}, -1)
		require.Len(t, found, 1)
		assert.Equal(t, Node(alg), found[0])

		found = FindChildren(alg, map[string]any{
			"parameter": []any{
				map[string]any{"key": "damping_time"},
				map[string]any{"key": "update_frequency"},
				map[string]any{"key": "absent"},
			},
		}, -1)
		assert.Empty(t, found)
	})

	t.Run("node identity matches list membership", func(t *testing.T) {
		alg, freq, _ := barostatAlgorithm(t)
		found := FindChildren(alg, map[string]any{"parameter": freq}, -1)
		require.Len(t, found, 1)
		assert.Equal(t, Node(alg), found[0])
	})

	t.Run("depth zero inspects only the root", func(t *testing.T) {
		alg, _, _ := barostatAlgorithm(t)
		assert.Empty(t, FindChildren(alg, map[string]any{"key": "damping_time"}, 0))
		assert.Len(t, FindChildren(alg, map[string]any{"key": "mc_barostat"}, 0), 1)
	})

	t.Run("depth bounds the descent", func(t *testing.T) {
		fx := simpleProjectGraph(t)
		assert.Empty(t, FindChildren(fx.project, tagCriteria(TagExperiment), 1))
		assert.Len(t, FindChildren(fx.project, tagCriteria(TagExperiment), 2), 1)
	})

	t.Run("shared instances are reported once", func(t *testing.T) {
		m := NewMaterial("styrene")
		inv := NewInventory("stock", m, m)
		found := FindChildren(inv, tagCriteria(TagMaterial), -1)
		assert.Len(t, found, 1)
	})

	t.Run("cyclic graphs terminate", func(t *testing.T) {
		d := NewData("trace", "raw")
		c := NewComputation("analysis", "analysis")
		require.NoError(t, Update(c, nil, func(a *ComputationAttrs) {
			a.OutputData = append(a.OutputData, d)
		}))
		require.NoError(t, Update(d, nil, func(a *DataAttrs) {
			a.Computation = append(a.Computation, c)
		}))

		found := FindChildren(d, tagCriteria(TagComputation), -1)
		require.Len(t, found, 1)
		assert.Equal(t, Node(c), found[0])
	})

	t.Run("whole project search by name", func(t *testing.T) {
		fx := simpleProjectGraph(t)
		found := FindChildren(fx.project, map[string]any{
			"node": []any{TagExperiment},
			"name": "anionic polymerization",
		}, -1)
		require.Len(t, found, 1)
		assert.Equal(t, Node(fx.experiment), found[0])
	})
}
