// Package celfilter builds filter comparators from CEL expressions, so that
// per-attribute matching rules can be supplied as configuration rather than
// compiled code.
//
// An expression is evaluated once per row with three variables in scope:
//
//	attribute  the attribute name being decided (string)
//	reference  the reference value for that attribute
//	row        the row's underlying value; object rows are converted to
//	           mappings through their json representation
//
// A boolean result keeps or disqualifies the row; any other result defers
// to the engine's built-in comparison rules.
package celfilter

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/asaidimu/go-sift/core/filter"
	"github.com/asaidimu/go-sift/core/rows"
	"github.com/asaidimu/go-sift/utils"
)

// NewComparator compiles expr into a filter.Comparator. Compilation errors
// are returned here; evaluation errors surface from the filter call that
// uses the comparator.
func NewComparator(expr string) (filter.Comparator, error) {
	env, err := cel.NewEnv(
		cel.Variable("attribute", cel.StringType),
		cel.Variable("reference", cel.DynType),
		cel.Variable("row", cel.DynType),
		cel.CrossTypeNumericComparisons(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("failed to compile expression %q: %w", expr, issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to build program for expression %q: %w", expr, err)
	}

	return func(attribute string, reference any, row rows.Row) (filter.Verdict, error) {
		value, err := rowValue(row)
		if err != nil {
			return filter.VerdictDefer, err
		}
		out, _, err := prg.Eval(map[string]any{
			"attribute": attribute,
			"reference": reference,
			"row":       value,
		})
		if err != nil {
			return filter.VerdictDefer, fmt.Errorf("expression %q: %w", expr, err)
		}
		if kept, ok := out.Value().(bool); ok {
			if kept {
				return filter.VerdictKeep, nil
			}
			return filter.VerdictDisqualify, nil
		}
		return filter.VerdictDefer, nil
	}, nil
}

// rowValue prepares a row's underlying value for the CEL activation. Object
// rows are converted to mappings, since the evaluator only understands
// maps, lists and scalars.
func rowValue(row rows.Row) (any, error) {
	if row.Kind() != rows.KindObject {
		return row.Value(), nil
	}
	value, err := utils.StructToMap(row.Value())
	if err != nil {
		return nil, fmt.Errorf("cannot convert object row for evaluation: %w", err)
	}
	return value, nil
}

// MustComparator is NewComparator that panics on compilation failure. It is
// intended for expressions fixed at program start.
func MustComparator(expr string) filter.Comparator {
	cmp, err := NewComparator(expr)
	if err != nil {
		panic(err)
	}
	return cmp
}
