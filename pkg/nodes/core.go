// Package nodes implements the in-memory document graph of the matforge
// client: typed nodes connected into a directed graph, JSON encoding in
// condensed and expanded form, identity-based deduplication via uids, cycle
// detection, and semantic validation of project graphs.
//
// Nodes are built freely (a graph may transiently hold cycles or violate the
// schema while under construction) and validated explicitly. Every mutation
// of an existing node goes through the replace-and-validate protocol: a
// candidate attribute record is installed, the node is revalidated against an
// injected schema.Validator, and on failure the previous record is restored
// before the error reaches the caller.
//
// Example:
//
//	svc, _ := schema.Default()
//	mat := nodes.NewMaterial("polystyrene")
//	proj := nodes.NewProject("styrene study")
//	nodes.Update(proj, nil, func(a *nodes.ProjectAttrs) {
//		a.Material = append(a.Material, mat)
//	})
//	if err := proj.Validate(svc); err != nil {
//		// typed orphan / cycle / schema errors
//	}
package nodes

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/matforge/matgraph/pkg/schema"
)

// Node is implemented by every graph node type. The interface is sealed:
// only types in this package embedding baseNode satisfy it.
type Node interface {
	fmt.Stringer

	// Tags returns the type discriminant list serialized as "node".
	Tags() []string
	// UID returns the node's identifier, temporary until persisted.
	UID() string
	// SavedID returns the stable platform identifier, empty if unsaved.
	SavedID() string
	// Validate checks the node's JSON against the schema collaborator and
	// the subgraph rooted here for cycles. Aggregate roots extend it with
	// ownership checks.
	Validate(v schema.Validator) error
	// FindChildren returns every distinct node in the subgraph (receiver
	// included) matching all criteria. See the package function of the same
	// name for the criteria grammar.
	FindChildren(criteria map[string]any, depth int) []Node
	// RemoveChild drops the first occurrence of child from the receiver's
	// fields and revalidates; see RemoveChild on baseNode.
	RemoveChild(child Node, v schema.Validator) (bool, error)
	// JSON returns the condensed JSON document of the subgraph.
	JSON() ([]byte, error)

	record() reflect.Value
	common() *nodeAttrs
}

// commonRecord is satisfied by every attribute record through the embedded
// nodeAttrs value.
type commonRecord interface {
	commonAttrs() *nodeAttrs
}

// baseNode provides the shared machinery of all node types. Concrete types
// embed it and call init from their constructor with a pointer to their
// attribute record.
type baseNode struct {
	self Node
	rec  reflect.Value
}

func (b *baseNode) init(self Node, rec commonRecord, tags ...string) {
	b.self = self
	b.rec = reflect.ValueOf(rec)
	c := rec.commonAttrs()
	c.Node = tags
	c.UID = NewUID()
}

func (b *baseNode) record() reflect.Value { return b.rec }

func (b *baseNode) common() *nodeAttrs {
	return b.rec.Interface().(commonRecord).commonAttrs()
}

// Tags returns the node's type discriminant list.
func (b *baseNode) Tags() []string { return b.common().Node }

// UID returns the node's current identifier.
func (b *baseNode) UID() string { return b.common().UID }

// SavedID returns the stable identifier assigned on persistence, or "".
func (b *baseNode) SavedID() string { return b.common().UUID }

// SetSavedID records the stable identifier assigned by the platform. It is
// an internally-managed field and bypasses validation.
func (b *baseNode) SetSavedID(id string) { b.common().UUID = id }

func (b *baseNode) String() string {
	c := b.common()
	return fmt.Sprintf("%s(uid=%s)", strings.Join(c.Node, ","), c.UID)
}

// Validate is the default validation: schema check plus cycle detection.
func (b *baseNode) Validate(v schema.Validator) error {
	return validateNode(b.self, v)
}

// FindChildren searches the subgraph rooted at this node; see the package
// function of the same name for the criteria grammar.
func (b *baseNode) FindChildren(criteria map[string]any, depth int) []Node {
	return FindChildren(b.self, criteria, depth)
}

// JSON returns the condensed JSON document rooted at this node.
func (b *baseNode) JSON() ([]byte, error) {
	return Encode(b.self, Condensed)
}

// ExpandedJSON returns the fully inlined JSON document rooted at this node.
func (b *baseNode) ExpandedJSON() ([]byte, error) {
	return Encode(b.self, Expanded)
}

// Update is the sole mutation primitive. It applies mutate directly to n's
// attribute record, keeping a copy of the prior record; with a non-nil
// validator the node is revalidated and, on failure, the prior record is
// restored and the cause returned. A nil validator installs the change
// without validation (construction mode).
//
// Records treat slice fields as immutable values: replace a slice, do not
// splice its elements in place, or rollback cannot restore the prior state.
func Update[R any](n Node, v schema.Validator, mutate func(*R)) error {
	rec, ok := n.record().Interface().(*R)
	if !ok {
		return fmt.Errorf("record type mismatch: node %s does not use %T", n, rec)
	}
	prev := *rec
	mutate(rec)
	if v == nil {
		return nil
	}
	if err := n.Validate(v); err != nil {
		*rec = prev
		return err
	}
	return nil
}

// fieldRef is one serializable field of an attribute record, in declaration
// order with embedded records flattened first.
type fieldRef struct {
	name      string
	omitEmpty bool
	index     []int
}

var (
	fieldCacheMu sync.RWMutex
	fieldCache   = map[reflect.Type][]fieldRef{}
)

// recordFields returns the serializable fields of a record struct type in
// declaration order, flattening anonymous embedded structs.
func recordFields(t reflect.Type) []fieldRef {
	fieldCacheMu.RLock()
	cached, ok := fieldCache[t]
	fieldCacheMu.RUnlock()
	if ok {
		return cached
	}

	var fields []fieldRef
	var walk func(t reflect.Type, prefix []int)
	walk = func(t reflect.Type, prefix []int) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			index := append(append([]int(nil), prefix...), i)
			if f.Anonymous && f.Type.Kind() == reflect.Struct {
				walk(f.Type, index)
				continue
			}
			if !f.IsExported() {
				continue
			}
			name := f.Name
			omitEmpty := false
			if tag, ok := f.Tag.Lookup("json"); ok {
				parts := strings.Split(tag, ",")
				if parts[0] == "-" {
					continue
				}
				if parts[0] != "" {
					name = parts[0]
				}
				for _, opt := range parts[1:] {
					if opt == "omitempty" {
						omitEmpty = true
					}
				}
			}
			fields = append(fields, fieldRef{name: name, omitEmpty: omitEmpty, index: index})
		}
	}
	walk(t, nil)

	fieldCacheMu.Lock()
	fieldCache[t] = fields
	fieldCacheMu.Unlock()
	return fields
}

// fieldValue resolves a fieldRef against a record pointer.
func fieldValue(rec reflect.Value, f fieldRef) reflect.Value {
	return rec.Elem().FieldByIndex(f.index)
}

var nodeInterface = reflect.TypeOf((*Node)(nil)).Elem()

// asNode returns the value as a Node when it statically holds a node
// reference and the reference is non-nil. Descent into field values happens
// only through this capability check, never by probing arbitrary values.
func asNode(v reflect.Value) (Node, bool) {
	if !v.IsValid() || !v.Type().Implements(nodeInterface) {
		return nil, false
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, false
	}
	return v.Interface().(Node), true
}

// isNodeSlice reports whether t is an ordered collection of node references.
func isNodeSlice(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Implements(nodeInterface)
}

// childNodes returns the node references held by one field value, in order.
// Scalar node fields yield at most one element.
func childNodes(v reflect.Value) []Node {
	if n, ok := asNode(v); ok {
		return []Node{n}
	}
	if !v.IsValid() || !isNodeSlice(v.Type()) {
		return nil
	}
	out := make([]Node, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if n, ok := asNode(v.Index(i)); ok {
			out = append(out, n)
		}
	}
	return out
}
