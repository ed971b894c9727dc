package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	svc, err := Default()
	require.NoError(t, err)

	t.Run("accepts a well-formed node document", func(t *testing.T) {
		doc := `{
			"node": ["Material"],
			"uid": "_:c2c4a1c0",
			"name": "polystyrene",
			"keyword": ["polymer"],
			"property": [{
				"node": ["Property"],
				"uid": "_:9f1e17aa",
				"key": "density",
				"value": 0.91,
				"unit": "g/mL"
			}]
		}`
		assert.NoError(t, svc.ValidateNodeJSON([]byte(doc)))
	})

	t.Run("accepts reference objects in node positions", func(t *testing.T) {
		doc := `{
			"node": ["Project"],
			"uid": "_:a",
			"material": [{"uid": "_:b"}]
		}`
		assert.NoError(t, svc.ValidateNodeJSON([]byte(doc)))
	})

	t.Run("rejects a document without type tags", func(t *testing.T) {
		err := svc.ValidateNodeJSON([]byte(`{"uid": "_:a", "name": "x"}`))
		require.Error(t, err)
		var schemaErr *Error
		assert.ErrorAs(t, err, &schemaErr)
	})

	t.Run("rejects duplicate type tags", func(t *testing.T) {
		err := svc.ValidateNodeJSON([]byte(`{"node": ["Material", "Material"], "uid": "_:a"}`))
		assert.Error(t, err)
	})

	t.Run("rejects a non-numeric parameter value", func(t *testing.T) {
		doc := `{"node": ["Parameter"], "uid": "_:a", "key": "update_frequency", "value": "often"}`
		err := svc.ValidateNodeJSON([]byte(doc))
		require.Error(t, err)

		doc = `{"node": ["Parameter"], "uid": "_:a", "key": "update_frequency", "value": 1000}`
		assert.NoError(t, svc.ValidateNodeJSON([]byte(doc)))
	})

	t.Run("rejects a quantity without a key", func(t *testing.T) {
		err := svc.ValidateNodeJSON([]byte(`{"node": ["Quantity"], "uid": "_:a", "value": 1.2}`))
		assert.Error(t, err)
	})

	t.Run("rejects an ingredient without a material", func(t *testing.T) {
		err := svc.ValidateNodeJSON([]byte(`{"node": ["Ingredient"], "uid": "_:a"}`))
		assert.Error(t, err)
	})

	t.Run("rejects a reference object with extra fields", func(t *testing.T) {
		doc := `{"node": ["Project"], "uid": "_:a", "material": [{"uid": "_:b", "name": "leak"}]}`
		err := svc.ValidateNodeJSON([]byte(doc))
		assert.Error(t, err)
	})

	t.Run("rejects invalid JSON input", func(t *testing.T) {
		err := svc.ValidateNodeJSON([]byte(`{"node": [`))
		require.Error(t, err)
		var schemaErr *Error
		require.ErrorAs(t, err, &schemaErr)
		assert.Contains(t, schemaErr.Detail, "not valid JSON")
	})
}

func TestNew(t *testing.T) {
	t.Run("rejects a malformed schema document", func(t *testing.T) {
		_, err := New([]byte(`{"type": ["not a`))
		assert.Error(t, err)
	})

	t.Run("compiles a minimal custom schema", func(t *testing.T) {
		svc, err := New([]byte(`{"type": "object", "required": ["node"]}`))
		require.NoError(t, err)
		assert.NoError(t, svc.ValidateNodeJSON([]byte(`{"node": ["Material"]}`)))
		assert.Error(t, svc.ValidateNodeJSON([]byte(`{"name": "x"}`)))
	})
}

func TestFromFile(t *testing.T) {
	t.Run("loads a JSON schema file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schema.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"type": "object", "required": ["node"]}`), 0o644))

		svc, err := FromFile(path)
		require.NoError(t, err)
		assert.NoError(t, svc.ValidateNodeJSON([]byte(`{"node": ["Material"]}`)))
	})

	t.Run("loads a YAML schema file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schema.yaml")
		yamlSchema := "type: object\nrequired:\n  - node\n"
		require.NoError(t, os.WriteFile(path, []byte(yamlSchema), 0o644))

		svc, err := FromFile(path)
		require.NoError(t, err)
		assert.NoError(t, svc.ValidateNodeJSON([]byte(`{"node": ["Material"]}`)))
		assert.Error(t, svc.ValidateNodeJSON([]byte(`{"name": "x"}`)))
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := FromFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}

func TestValidatorFunc(t *testing.T) {
	sentinel := errors.New("rejected")
	var got []byte
	v := ValidatorFunc(func(doc []byte) error {
		got = doc
		return sentinel
	})
	err := v.ValidateNodeJSON([]byte(`{"node": ["Material"]}`))
	assert.ErrorIs(t, err, sentinel)
	assert.JSONEq(t, `{"node": ["Material"]}`, string(got))
}
