package nodes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matforge/matgraph/pkg/schema"
)

// testValidator returns the embedded platform schema service.
func testValidator(t *testing.T) *schema.Service {
	t.Helper()
	svc, err := schema.Default()
	require.NoError(t, err)
	return svc
}

// simpleAlgorithm returns an algorithm node without parameters.
func simpleAlgorithm() *Algorithm {
	return NewAlgorithm("mc_barostat", "barostat")
}

// simpleProcessWithIngredient returns a process consuming material through a
// fresh ingredient.
func simpleProcessWithIngredient(t *testing.T, material *Material) *Process {
	t.Helper()
	quantity := NewQuantity("mass", 1.23, "kg")
	ingredient := NewIngredient(material, quantity)
	process := NewProcess("polymerization", "multistep")
	require.NoError(t, Update(process, nil, func(a *ProcessAttrs) {
		a.Ingredient = append(a.Ingredient, ingredient)
	}))
	return process
}

// projectFixture is a minimally valid project graph: one collection holding
// one experiment, one process consuming one material, and that material
// registered in the project's material list.
type projectFixture struct {
	project    *Project
	collection *Collection
	experiment *Experiment
	process    *Process
	material   *Material
}

func simpleProjectGraph(t *testing.T) projectFixture {
	t.Helper()

	material := NewMaterial("polystyrene")
	process := simpleProcessWithIngredient(t, material)

	experiment := NewExperiment("anionic polymerization")
	require.NoError(t, Update(experiment, nil, func(a *ExperimentAttrs) {
		a.Process = append(a.Process, process)
	}))

	collection := NewCollection("initial screening")
	require.NoError(t, Update(collection, nil, func(a *CollectionAttrs) {
		a.Experiment = append(a.Experiment, experiment)
	}))

	project := NewProject("styrene study")
	require.NoError(t, Update(project, nil, func(a *ProjectAttrs) {
		a.Collection = append(a.Collection, collection)
		a.Material = append(a.Material, material)
	}))

	return projectFixture{
		project:    project,
		collection: collection,
		experiment: experiment,
		process:    process,
		material:   material,
	}
}
