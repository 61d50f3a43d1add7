// Package filter implements the row filter engine: an attribute-by-attribute
// matching pass over a row collection, with per-attribute custom comparators
// taking precedence over the built-in comparison rules, and optional
// normalization of surviving rows into uniform mappings.
package filter

import (
	"github.com/asaidimu/go-sift/core/rows"
)

// Verdict is the three-way outcome of a custom comparator for one attribute.
type Verdict int

const (
	// VerdictDefer hands the decision to the built-in comparison rules.
	VerdictDefer Verdict = iota
	// VerdictKeep means the attribute does not disqualify the row.
	VerdictKeep
	// VerdictDisqualify removes the row; its remaining attributes are skipped.
	VerdictDisqualify
)

func (v Verdict) String() string {
	switch v {
	case VerdictKeep:
		return "keep"
	case VerdictDisqualify:
		return "disqualify"
	default:
		return "defer"
	}
}

// Comparator decides whether one attribute disqualifies a row. It receives
// the attribute name, the reference value for that attribute, and the
// original row (not the resolved attribute value). When a comparator is
// registered for an attribute, the built-in rules are consulted only if it
// returns VerdictDefer. A returned error aborts the whole filter call.
type Comparator func(attribute string, reference any, row rows.Row) (Verdict, error)

// SentinelComparator adapts a legacy comparison function to a Comparator.
// The legacy convention disqualifies a row only when the function returns
// exactly boolean false; every other return value keeps the row.
func SentinelComparator(fn func(attribute string, reference any, row rows.Row) any) Comparator {
	return func(attribute string, reference any, row rows.Row) (Verdict, error) {
		if out, ok := fn(attribute, reference, row).(bool); ok && !out {
			return VerdictDisqualify, nil
		}
		return VerdictKeep, nil
	}
}
