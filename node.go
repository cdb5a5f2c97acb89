package latexexpr

import "fmt"

// Node is the common interface of the three tree forms: Variable
// (leaf), Operation (combinator) and Expression (named wrapper).
// Rendering never mutates a node; evaluation and rendering both walk
// the tree depth-first.
//
// String renders the report form. It is best effort: when a
// numeric-domain failure (sqrt of a negative, log of a non-positive)
// prevents a result, String falls back to the substituted chain.
// Callers that must fail atomically use StrResult, which returns the
// error instead.
type Node interface {
	fmt.Stringer

	// StrSymbolic renders the tree with variable names only.
	StrSymbolic() string
	// StrSubstituted renders the tree with values in place of names.
	StrSubstituted() string
	// StrResult renders the computed numeric result. Symbolic trees
	// render their best available form instead of failing.
	StrResult() (string, error)
	// StrResultWithUnit is StrResult followed by the node's unit text.
	// Operations carry no unit and render the bare result.
	StrResultWithUnit() (string, error)
	// Result computes the numeric value of the tree. It fails with
	// *SymbolicValueError when the tree is symbolic.
	Result() (float64, error)
	// IsSymbolic reports whether any leaf in the tree lacks a value.
	IsSymbolic() bool
}

// promote normalizes an operand into a Node: nodes pass through, plain
// numbers become anonymous literal leaves named by their own print
// form. Anything else is an *InvalidOperandError.
func promote(arg any) (Node, error) {
	switch v := arg.(type) {
	case Node:
		return v, nil
	case int:
		return Literal(float64(v)), nil
	case int64:
		return Literal(float64(v)), nil
	case float64:
		return Literal(v), nil
	case float32:
		return Literal(float64(v)), nil
	default:
		return nil, &InvalidOperandError{Value: arg}
	}
}
