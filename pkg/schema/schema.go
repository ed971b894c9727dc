// Package schema implements the schema-validation collaborator of the node
// graph: given a node's JSON document it answers valid or invalid with
// detail. The default service validates against an embedded JSON Schema for
// the platform's node shape; deployments can load their own schema from a
// JSON or YAML file.
//
// The validator is always injected explicitly (constructor or per-call
// parameter), so independent graphs can validate against different schemas
// in the same process.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed node_schema.json
var defaultSchema []byte

// Validator answers whether a node's JSON document conforms to the platform
// schema. A nil return means valid; otherwise the error carries the detail.
type Validator interface {
	ValidateNodeJSON(doc []byte) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(doc []byte) error

func (f ValidatorFunc) ValidateNodeJSON(doc []byte) error { return f(doc) }

// Error reports a document the schema service rejected.
type Error struct {
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("schema validation failed: %s", e.Detail)
}

func (e *Error) Unwrap() error { return e.Cause }

// Service validates node documents against a compiled JSON Schema.
type Service struct {
	compiled *jsonschema.Schema
}

const schemaID = "node_schema.json"

// New compiles schemaJSON into a validation service.
func New(schemaJSON []byte) (*Service, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaID, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	compiled, err := compiler.Compile(schemaID)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &Service{compiled: compiled}, nil
}

// Default returns a service using the embedded platform node schema.
func Default() (*Service, error) {
	return New(defaultSchema)
}

// FromFile loads a schema definition from a JSON or YAML file.
func FromFile(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML schema file %s: %w", path, err)
		}
		data, err = json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("cannot convert YAML schema %s to JSON: %w", path, err)
		}
	}
	return New(data)
}

// ValidateNodeJSON checks one node document against the compiled schema.
func (s *Service) ValidateNodeJSON(doc []byte) error {
	var instance any
	if err := json.Unmarshal(doc, &instance); err != nil {
		return &Error{Detail: "document is not valid JSON", Cause: err}
	}
	if err := s.compiled.Validate(instance); err != nil {
		return &Error{Detail: err.Error(), Cause: err}
	}
	return nil
}
