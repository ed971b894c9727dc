package nodes

import (
	"reflect"

	"github.com/matforge/matgraph/pkg/schema"
)

// RemoveChild drops the first occurrence of child from the receiver's
// fields, walking them in declaration order. A scalar reference field is
// reset to its zero value; a slice field loses that one element. Containment
// is referential: a structurally identical but distinct node is not removed.
//
// The mutation goes through the usual replace-and-validate protocol: with a
// non-nil validator, a state that fails validation is rolled back and the
// cause returned. The bool reports whether a child was found and the removal
// kept.
func (b *baseNode) RemoveChild(child Node, v schema.Validator) (bool, error) {
	if child == nil {
		return false, nil
	}
	rec := b.rec
	prev := rec.Elem().Interface()

	changed := false
	for _, f := range recordFields(rec.Elem().Type()) {
		fv := fieldValue(rec, f)
		if n, ok := asNode(fv); ok {
			if n == child {
				fv.Set(reflect.Zero(fv.Type()))
				changed = true
			}
		} else if fv.IsValid() && isNodeSlice(fv.Type()) {
			for i := 0; i < fv.Len(); i++ {
				n, ok := asNode(fv.Index(i))
				if !ok || n != child {
					continue
				}
				trimmed := reflect.MakeSlice(fv.Type(), 0, fv.Len()-1)
				trimmed = reflect.AppendSlice(trimmed, fv.Slice(0, i))
				trimmed = reflect.AppendSlice(trimmed, fv.Slice(i+1, fv.Len()))
				fv.Set(trimmed)
				changed = true
				break
			}
		}
		if changed {
			break
		}
	}
	if !changed {
		return false, nil
	}

	if v != nil {
		if err := b.self.Validate(v); err != nil {
			rec.Elem().Set(reflect.ValueOf(prev))
			return false, err
		}
	}
	return true, nil
}
