// Package latexexpr typesets algebraic expressions as LaTeX math in
// symbolic form with automatic substitution and result computation,
// producing engineering-report lines of the shape
//
//	name = symbolicExpr = substitutedExpr = result unit
//
// for example
//
//	r = 3.0 m
//	F = 4.0 kN
//	M = r \cdot F = 3.0 \cdot 4.0 = 12 kNm
//
// The building block is Variable, a named quantity with an optional
// numeric value and a physical unit. Variables combine through builder
// functions (Add, Mul, Sqrt, ...) or the equivalent node methods into
// Operation trees, and a tree wrapped in an Expression gains a name and
// the full four-part report rendering. Every node renders in three
// independent modes (symbolic, substituted, numeric result) and
// evaluates to a float64.
//
// A Variable without a value is symbolic; any tree containing one is
// symbolic and renders names until the value is assigned. Values may be
// reassigned after construction, and because nodes are shared by
// reference every owning tree observes the new value on its next
// render.
//
// The sympy subpackage provides algebraic transformations (simplify,
// expand, factor, collect, cancel, apart) over these trees.
package latexexpr
