package nodes

import "encoding/json"

// EncodeMode selects how repeated node instances serialize.
type EncodeMode int

const (
	// Condensed inlines the first occurrence of each node along the
	// traversal and replaces every later occurrence of the same instance
	// with a reference object carrying only its uid.
	Condensed EncodeMode = iota
	// Expanded inlines every occurrence fully. The document is larger and
	// self-contained but loses instance sharing on its face.
	Expanded
)

// Encode serializes the graph rooted at n as a JSON document. Object keys
// come out sorted, so two structurally equal graphs produce byte-identical
// documents.
func Encode(n Node, mode EncodeMode) ([]byte, error) {
	doc, err := newEncoder(mode).encode(n)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, &SerializationError{Node: n, Cause: err}
	}
	return data, nil
}

// EncodeIndent is Encode with indented output, for files and CLI display.
func EncodeIndent(n Node, mode EncodeMode, indent string) ([]byte, error) {
	doc, err := newEncoder(mode).encode(n)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, &SerializationError{Node: n, Cause: err}
	}
	return data, nil
}

type encoder struct {
	mode EncodeMode
	seen map[Node]bool // condensed: instances already inlined
	path map[Node]bool // expanded: instances on the current branch
}

func newEncoder(mode EncodeMode) *encoder {
	return &encoder{mode: mode, seen: map[Node]bool{}, path: map[Node]bool{}}
}

func (enc *encoder) encode(n Node) (map[string]any, error) {
	if enc.mode == Condensed {
		if enc.seen[n] {
			return map[string]any{"uid": n.UID()}, nil
		}
		enc.seen[n] = true
	} else {
		// A cycle has no finite expansion.
		if enc.path[n] {
			return nil, &SerializationError{Node: n, Cause: &CycleError{Node: n}}
		}
		enc.path[n] = true
		defer delete(enc.path, n)
	}

	rec := n.record()
	out := make(map[string]any)
	for _, f := range recordFields(rec.Elem().Type()) {
		fv := fieldValue(rec, f)
		switch {
		case fv.Type().Implements(nodeInterface):
			child, ok := asNode(fv)
			if !ok {
				continue // nil reference
			}
			childDoc, err := enc.encode(child)
			if err != nil {
				return nil, err
			}
			out[f.name] = childDoc
		case isNodeSlice(fv.Type()):
			if fv.Len() == 0 {
				continue
			}
			docs := make([]any, 0, fv.Len())
			for i := 0; i < fv.Len(); i++ {
				child, ok := asNode(fv.Index(i))
				if !ok {
					continue
				}
				childDoc, err := enc.encode(child)
				if err != nil {
					return nil, err
				}
				docs = append(docs, childDoc)
			}
			out[f.name] = docs
		default:
			if f.omitEmpty && fv.IsZero() {
				continue
			}
			out[f.name] = fv.Interface()
		}
	}
	return out, nil
}
