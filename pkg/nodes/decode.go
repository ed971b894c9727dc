package nodes

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/matforge/matgraph/pkg/schema"
)

// DecodeMode selects how reference-only objects are handled.
type DecodeMode int

const (
	// DecodeCondensed resolves reference objects against nodes already
	// constructed from their full definition earlier in the traversal.
	DecodeCondensed DecodeMode = iota
	// DecodeExpanded expects a fully inlined document; any reference-only
	// object is an unresolved-reference error.
	DecodeExpanded
)

// DecodeOptions tune document reconstruction.
type DecodeOptions struct {
	Mode DecodeMode
	// Validator, when non-nil, validates every reconstructed node after its
	// decoded fields are merged into the attribute record.
	Validator schema.Validator
}

// Decode reconstructs a node graph from a JSON document, resolving
// identifier references into shared node instances. It accepts both
// condensed and expanded documents.
func Decode(data []byte) (Node, error) {
	return DecodeWith(data, DecodeOptions{})
}

// DecodeWith is Decode with explicit options.
func DecodeWith(data []byte, opts DecodeOptions) (Node, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DeserializationError{Cause: err}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &DeserializationError{Cause: fmt.Errorf("document root is not an object")}
	}
	dec := &decoder{opts: opts, built: map[string]Node{}}
	return dec.build(obj)
}

type decoder struct {
	opts  DecodeOptions
	built map[string]Node // uid -> constructed instance
}

// build reconstructs one node from its object literal, depth-first. A full
// literal registers its instance by uid before descending so later
// occurrences share it; a reference-only literal must resolve to an already
// constructed instance.
func (dec *decoder) build(raw map[string]any) (Node, error) {
	if uid, ok := refOnly(raw); ok {
		if dec.opts.Mode == DecodeExpanded {
			return nil, &DeserializationError{Cause: &UnresolvedUIDError{UID: uid}}
		}
		n, ok := dec.built[uid]
		if !ok {
			return nil, &DeserializationError{Cause: &UnresolvedUIDError{UID: uid}}
		}
		return n, nil
	}

	tags, err := nodeTags(raw)
	if err != nil {
		return nil, &DeserializationError{Cause: err}
	}
	factory, err := factoryFor(tags)
	if err != nil {
		return nil, &DeserializationError{Cause: err}
	}
	n := factory()
	if uid, ok := raw["uid"].(string); ok && uid != "" {
		dec.built[uid] = n
	}

	rec := n.record()
	for _, f := range recordFields(rec.Elem().Type()) {
		rawVal, ok := raw[f.name]
		if !ok || rawVal == nil {
			continue
		}
		fv := fieldValue(rec, f)
		switch {
		case fv.Type().Implements(nodeInterface):
			childObj, ok := rawVal.(map[string]any)
			if !ok {
				return nil, &DeserializationError{Cause: fmt.Errorf("field %q: expected a node object", f.name)}
			}
			child, err := dec.build(childObj)
			if err != nil {
				return nil, err
			}
			if !reflect.TypeOf(child).AssignableTo(fv.Type()) {
				return nil, &DeserializationError{Cause: fmt.Errorf("field %q cannot hold a %v node", f.name, child.Tags())}
			}
			fv.Set(reflect.ValueOf(child))
		case isNodeSlice(fv.Type()):
			rawList, ok := rawVal.([]any)
			if !ok {
				return nil, &DeserializationError{Cause: fmt.Errorf("field %q: expected a node list", f.name)}
			}
			list := reflect.MakeSlice(fv.Type(), 0, len(rawList))
			for i, element := range rawList {
				childObj, ok := element.(map[string]any)
				if !ok {
					return nil, &DeserializationError{Cause: fmt.Errorf("field %q[%d]: expected a node object", f.name, i)}
				}
				child, err := dec.build(childObj)
				if err != nil {
					return nil, err
				}
				if !reflect.TypeOf(child).AssignableTo(fv.Type().Elem()) {
					return nil, &DeserializationError{Cause: fmt.Errorf("field %q[%d] cannot hold a %v node", f.name, i, child.Tags())}
				}
				list = reflect.Append(list, reflect.ValueOf(child))
			}
			fv.Set(list)
		default:
			// Scalars round-trip through encoding/json so document values
			// convert into the record's field types.
			buf, err := json.Marshal(rawVal)
			if err != nil {
				return nil, &DeserializationError{Cause: fmt.Errorf("field %q: %w", f.name, err)}
			}
			if err := json.Unmarshal(buf, fv.Addr().Interface()); err != nil {
				return nil, &DeserializationError{Cause: fmt.Errorf("field %q: %w", f.name, err)}
			}
		}
	}

	if dec.opts.Validator != nil {
		if err := n.Validate(dec.opts.Validator); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// refOnly reports whether raw is a reference object: an identifier and
// nothing else.
func refOnly(raw map[string]any) (string, bool) {
	if len(raw) != 1 {
		return "", false
	}
	uid, ok := raw["uid"].(string)
	return uid, ok
}

// nodeTags validates and extracts the type discriminant list.
func nodeTags(raw map[string]any) ([]string, error) {
	entry, ok := raw["node"]
	if !ok {
		return nil, &TagError{Reason: `missing "node" discriminant`}
	}
	list, ok := entry.([]any)
	if !ok {
		return nil, &TagError{Reason: `"node" is not a list`}
	}
	if len(list) == 0 {
		return nil, &TagError{Reason: `"node" is empty`}
	}
	tags := make([]string, 0, len(list))
	seen := map[string]bool{}
	for _, element := range list {
		tag, ok := element.(string)
		if !ok {
			return nil, &TagError{Reason: fmt.Sprintf("non-string tag %v", element)}
		}
		if seen[tag] {
			return nil, &TagError{Reason: fmt.Sprintf("duplicate tag %q", tag)}
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags, nil
}

// factoryFor picks the constructor for a tag list. Exactly one tag must name
// a registered node type; extra unregistered tags are roles and pass through
// into the record.
func factoryFor(tags []string) (func() Node, error) {
	var found []string
	for _, tag := range tags {
		if KnownTag(tag) {
			found = append(found, tag)
		}
	}
	switch len(found) {
	case 0:
		return nil, &UnknownTypeError{Tag: tags[0]}
	case 1:
		return factories[found[0]], nil
	default:
		return nil, &TagError{Reason: fmt.Sprintf("ambiguous tags %v", found)}
	}
}
