package filter

import (
	"fmt"
	"reflect"
	"strings"
)

// defaultMatch applies the built-in comparison rules, in order, when no
// comparator claims the attribute. It reports whether the attribute keeps
// the row.
//
//  1. An empty reference value never filters.
//  2. A textual row value against a sequence reference must equal one
//     element exactly (case-sensitive).
//  3. A textual row value against a scalar reference must contain the
//     reference's textual form, case-insensitively.
//  4. A non-textual row value against a sequence reference must be loosely
//     equal to one element.
//  5. A non-textual row value against a scalar reference must be loosely
//     equal to it.
func defaultMatch(reference, value any) bool {
	if IsEmpty(reference) {
		return true
	}
	if text, ok := textual(value); ok {
		if seq, ok := sequence(reference); ok {
			for _, elem := range seq {
				if s, ok := textual(elem); ok && s == text {
					return true
				}
			}
			return false
		}
		return strings.Contains(strings.ToLower(text), strings.ToLower(stringify(reference)))
	}
	if seq, ok := sequence(reference); ok {
		for _, elem := range seq {
			if looseEqual(value, elem) {
				return true
			}
		}
		return false
	}
	return looseEqual(value, reference)
}

// IsEmpty reports whether a reference value disables filtering for its
// attribute: nil, empty strings, empty sequences and mappings, and zero
// scalars (0, false) all count as empty.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil() || IsEmpty(rv.Elem().Interface())
	default:
		return rv.IsZero()
	}
}

// textual reports the string form of values the engine treats as text.
func textual(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	default:
		return "", false
	}
}

// sequence flattens slice and array references into []any. Strings and
// byte slices are scalars, not sequences.
func sequence(v any) ([]any, bool) {
	switch v.(type) {
	case nil, string, []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// looseEqual is the type-coercing equality used for non-textual row values:
// numeric values (including numeric strings) compare as float64, otherwise
// the printed forms are compared.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, ok := ToFloat64(a); ok {
		if fb, ok := ToFloat64(b); ok {
			return fa == fb
		}
	}
	return stringify(a) == stringify(b)
}

func stringify(v any) string {
	if s, ok := textual(v); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
