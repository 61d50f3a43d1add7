// Package rows defines the data model for the filter engine: the Row
// variants a collection may contain, ordered collections with stable row
// identifiers, and the reference attribute set rows are compared against.
package rows

import (
	"reflect"
	"strings"
)

// Kind discriminates the three row shapes the engine understands.
type Kind string

const (
	KindMapping Kind = "mapping" // key-value mapping
	KindObject  Kind = "object"  // struct with named fields
	KindScalar  Kind = "scalar"  // bare value, compared as-is against every attribute
)

// Row is one entry of a collection being filtered. Each variant decides
// whether a named attribute can be resolved; the caller decides what an
// unresolved attribute means.
type Row interface {
	// Kind reports the variant of the row.
	Kind() Kind
	// Attribute resolves the named attribute. The second return value is
	// false when the row has no such attribute.
	Attribute(name string) (any, bool)
	// Value returns the underlying raw value the row was built from.
	Value() any
}

// Mapping is a key-value row. Attribute resolution is plain key lookup.
type Mapping map[string]any

func (m Mapping) Kind() Kind { return KindMapping }

func (m Mapping) Attribute(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

func (m Mapping) Value() any { return map[string]any(m) }

// Copy returns a shallow copy of the mapping.
func (m Mapping) Copy() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Object is a row backed by a struct. Attributes resolve to exported
// fields, matched by json tag first, then exact field name, then
// case-insensitive field name, in the same order encoding/json uses.
type Object struct {
	raw   any
	value reflect.Value
}

// NewObject wraps a struct or non-nil pointer to a struct. The second
// return value is false when v is not object-like.
func NewObject(v any) (Object, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Object{}, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Object{}, false
	}
	return Object{raw: v, value: rv}, true
}

func (o Object) Kind() Kind { return KindObject }

func (o Object) Attribute(name string) (any, bool) {
	t := o.value.Type()
	caseInsensitive := -1
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == name {
				return o.value.Field(i).Interface(), true
			}
			if tagName != "" {
				// A named tag hides the field name, as encoding/json does.
				continue
			}
		}
		if f.Name == name {
			return o.value.Field(i).Interface(), true
		}
		if caseInsensitive < 0 && strings.EqualFold(f.Name, name) {
			caseInsensitive = i
		}
	}
	if caseInsensitive >= 0 {
		return o.value.Field(caseInsensitive).Interface(), true
	}
	return nil, false
}

func (o Object) Value() any { return o.raw }

// Scalar is a bare value. Every attribute resolves to the value itself, so
// a scalar row is re-tested against each attribute of the reference set.
type Scalar struct {
	Raw any
}

func (s Scalar) Kind() Kind { return KindScalar }

func (s Scalar) Attribute(string) (any, bool) { return s.Raw, true }

func (s Scalar) Value() any { return s.Raw }

// Wrap selects the Row variant for an arbitrary value: mappings stay
// mappings, structs (or pointers to structs) become Objects, everything
// else is a Scalar. A value that already implements Row is returned as-is.
func Wrap(v any) Row {
	switch val := v.(type) {
	case Row:
		return val
	case map[string]any:
		return Mapping(val)
	}
	if obj, ok := NewObject(v); ok {
		return obj
	}
	return Scalar{Raw: v}
}
