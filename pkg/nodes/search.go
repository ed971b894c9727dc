package nodes

import "reflect"

// FindChildren returns every distinct node in the subgraph rooted at n,
// receiver included, whose attributes satisfy all criteria.
//
// Criteria grammar: each key names a JSON attribute that must be present on a
// matching node. A criteria value may be a scalar, a list, or a nested
// criteria map:
//
//   - scalar against scalar attribute: equal values match.
//   - scalar against list attribute: matches when the value appears anywhere
//     in the list (extra elements do not exclude a node).
//   - list criteria value: every listed value must match (AND), each one
//     against any element of the attribute (OR across elements).
//   - map criteria value: matched against node-valued attribute elements by
//     evaluating the nested criteria on the node itself (depth 0, no further
//     descent).
//
// depth bounds the descent: negative means unbounded, 0 matches only n
// itself, N descends N additional levels. Each node instance is visited at
// most once, so cyclic graphs terminate.
//
// Results preserve discovery order: n first when it matches, then recursive
// matches in field-declaration order and list order.
func FindChildren(n Node, criteria map[string]any, depth int) []Node {
	return findChildren(n, criteria, depth, map[Node]bool{})
}

func findChildren(n Node, criteria map[string]any, depth int, visited map[Node]bool) []Node {
	if visited[n] {
		return nil
	}
	visited[n] = true

	var found []Node
	matched := true
	for key, want := range criteria {
		if !attrMatches(n, key, want) {
			matched = false
			break
		}
	}
	if matched {
		found = append(found, n)
	}

	if depth != 0 {
		rec := n.record()
		for _, f := range recordFields(rec.Elem().Type()) {
			for _, child := range childNodes(fieldValue(rec, f)) {
				found = append(found, findChildren(child, criteria, depth-1, visited)...)
			}
		}
	}
	return found
}

// attrMatches reports whether the attribute named key on n satisfies want.
// Attribute and wanted values are both normalized to lists; all wanted values
// must be found (AND), each anywhere in the attribute list (OR).
func attrMatches(n Node, key string, want any) bool {
	attrList := attrElements(n, key)

	wantList, ok := want.([]any)
	if !ok {
		wantList = []any{want}
	}

	for _, w := range wantList {
		matched := false
		for _, a := range attrList {
			if leafEqual(a, w) {
				matched = true
				break
			}
		}
		if !matched {
			// A nested criteria map matches node-valued elements by
			// evaluating against the node itself only (depth 0).
			if nested, isMap := w.(map[string]any); isMap {
				for _, a := range attrList {
					if child, isNode := a.(Node); isNode {
						if len(FindChildren(child, nested, 0)) > 0 {
							matched = true
							break
						}
					}
				}
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// attrElements returns the attribute named key as a list of elements, with
// scalar attributes wrapped in a one-element list and a missing attribute
// represented as a single nil.
func attrElements(n Node, key string) []any {
	rec := n.record()
	for _, f := range recordFields(rec.Elem().Type()) {
		if f.name != key {
			continue
		}
		fv := fieldValue(rec, f)
		if fv.Kind() == reflect.Slice {
			out := make([]any, 0, fv.Len())
			for i := 0; i < fv.Len(); i++ {
				if child, ok := asNode(fv.Index(i)); ok {
					out = append(out, child)
					continue
				}
				out = append(out, fv.Index(i).Interface())
			}
			return out
		}
		if child, ok := asNode(fv); ok {
			return []any{child}
		}
		return []any{fv.Interface()}
	}
	return []any{nil}
}

// leafEqual compares one attribute element against one wanted value. Nodes
// compare by identity, numbers across Go numeric types, everything else
// structurally.
func leafEqual(a, w any) bool {
	if an, ok := a.(Node); ok {
		wn, ok := w.(Node)
		return ok && an == wn
	}
	if af, ok := toFloat(a); ok {
		wf, ok := toFloat(w)
		return ok && af == wf
	}
	return reflect.DeepEqual(a, w)
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}
