package nodes

import (
	"errors"
	"fmt"
)

// Errors shared across node operations.
var (
	// ErrNotInGraph is returned when a repair target (the active experiment)
	// is not part of the project graph being repaired. This is a caller
	// mistake, not a data problem.
	ErrNotInGraph = errors.New("active experiment is not part of the project graph")

	// ErrNoRepairTarget is returned when an orphan can only be adopted by an
	// experiment but no active experiment was supplied.
	ErrNoRepairTarget = errors.New("orphaned node requires an active experiment to adopt it")
)

// SchemaError reports that the schema-validation collaborator rejected a
// node's JSON document. The triggering mutation has already been rolled back
// when this error reaches the caller.
type SchemaError struct {
	Node   Node
	Detail error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("node %s rejected by schema: %v", e.Node, e.Detail)
}

func (e *SchemaError) Unwrap() error { return e.Detail }

// CycleError reports that a node is reachable from itself. Cycles are legal
// while a graph is under construction but never validate.
type CycleError struct {
	Node Node
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("node %s is part of a reference cycle", e.Node)
}

// SerializationError reports that a node graph could not be encoded to JSON,
// usually because an attribute record holds a value JSON cannot represent.
type SerializationError struct {
	Node  Node
	Cause error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("cannot serialize node %s: %v", e.Node, e.Cause)
}

func (e *SerializationError) Unwrap() error { return e.Cause }

// DeserializationError is the common wrapper for document decoding failures.
// Use errors.As with the subtypes below to branch on the cause.
type DeserializationError struct {
	Cause error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("cannot deserialize node document: %v", e.Cause)
}

func (e *DeserializationError) Unwrap() error { return e.Cause }

// TagError reports a malformed type discriminant: the "node" entry is
// missing, empty, holds non-string values, or holds duplicate tags.
type TagError struct {
	Reason string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("invalid node type tags: %s", e.Reason)
}

// UnknownTypeError reports a type tag with no registered node type.
type UnknownTypeError struct {
	Tag string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown node type %q", e.Tag)
}

// UnresolvedUIDError reports a reference-only object whose identifier was
// never defined earlier in the document.
type UnresolvedUIDError struct {
	UID string
}

func (e *UnresolvedUIDError) Error() string {
	return fmt.Sprintf("reference to uid %q precedes or lacks its definition", e.UID)
}

// orphanError carries the node that is referenced without being owned. The
// exported per-kind types below exist so callers can branch with errors.As
// and repair programmatically.
type orphanError struct {
	Orphan Node
}

// OrphanedMaterialError: a material is used (ingredient, component, product,
// ...) but absent from the project's material list and every inventory.
type OrphanedMaterialError struct{ orphanError }

func (e *OrphanedMaterialError) Error() string {
	return fmt.Sprintf("material %s is not listed in the project materials or any inventory", e.Orphan)
}

// OrphanedProcessError: a process is referenced but absent from every
// experiment's process list.
type OrphanedProcessError struct{ orphanError }

func (e *OrphanedProcessError) Error() string {
	return fmt.Sprintf("process %s is not listed in any experiment", e.Orphan)
}

// OrphanedDataError: a data node is referenced but absent from every
// experiment's data list.
type OrphanedDataError struct{ orphanError }

func (e *OrphanedDataError) Error() string {
	return fmt.Sprintf("data %s is not listed in any experiment", e.Orphan)
}

// OrphanedComputationError: a computation is referenced but absent from every
// experiment's computation list.
type OrphanedComputationError struct{ orphanError }

func (e *OrphanedComputationError) Error() string {
	return fmt.Sprintf("computation %s is not listed in any experiment", e.Orphan)
}

// OrphanedComputationProcessError: a computation process is referenced but
// absent from every experiment's computation_process list.
type OrphanedComputationProcessError struct{ orphanError }

func (e *OrphanedComputationProcessError) Error() string {
	return fmt.Sprintf("computation process %s is not listed in any experiment", e.Orphan)
}
