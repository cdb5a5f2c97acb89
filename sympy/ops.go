package sympy

import (
	latexexpr "github.com/youandvern/latexexpr-efficalc"
)

// options configures a transformation run.
type options struct {
	substitute bool
}

// Option configures how a transformation reads the input tree.
type Option func(*options)

// WithSubstitutedValues treats valued leaves as plain numbers instead
// of symbols, so the transformation folds them into the result.
func WithSubstitutedValues() Option {
	return func(o *options) { o.substitute = true }
}

func applyOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// transform runs an engine-level rewrite over a latexexpr tree and
// rebuilds a latexexpr tree from the result. Expressions keep their
// name, unit and display attributes; only the child tree is replaced.
// Named leaves survive by reference, so their values stay live.
func transform(n latexexpr.Node, opts []Option, rewrite func(Expr) Expr) (latexexpr.Node, error) {
	if e, ok := n.(*latexexpr.Expression); ok {
		inner, err := transform(e.Op, opts, rewrite)
		if err != nil {
			return nil, err
		}
		out := *e
		out.Op = inner
		return &out, nil
	}
	o := applyOptions(opts)
	c := newConverter(o.substitute)
	expr, err := c.fromNode(n)
	if err != nil {
		return nil, err
	}
	return c.toNode(rewrite(expr))
}

// Simplify folds constants, flattens sums and products and collects
// like terms.
//
//	sum := latexexpr.Add(x, x, latexexpr.Mul(2, x))
//	s, _ := sympy.Simplify(sum) // renders {4} \cdot {x}
func Simplify(n latexexpr.Node, opts ...Option) (latexexpr.Node, error) {
	return transform(n, opts, func(e Expr) Expr { return e.Simplify() })
}

// Expand distributes products over sums and expands small integer
// powers of sums.
func Expand(n latexexpr.Node, opts ...Option) (latexexpr.Node, error) {
	return transform(n, opts, expandAll)
}

// Collect groups the tree by powers of the named symbol, highest
// degree first.
func Collect(n latexexpr.Node, name string, opts ...Option) (latexexpr.Node, error) {
	return transform(n, opts, func(e Expr) Expr { return collectPowers(e.Simplify(), name) })
}

// Cancel reduces a single-variable rational tree by the polynomial
// greatest common divisor of numerator and denominator.
//
//	q := latexexpr.Div(num, den)
//	c, _ := sympy.Cancel(q)
func Cancel(n latexexpr.Node, opts ...Option) (latexexpr.Node, error) {
	return transform(n, opts, cancelExpr)
}

// Apart splits an improper single-variable rational tree into its
// polynomial part plus a proper remainder fraction.
func Apart(n latexexpr.Node, opts ...Option) (latexexpr.Node, error) {
	return transform(n, opts, apartExpr)
}

// Factor splits a single-variable polynomial tree into linear factors
// over the rationals, leaving any rationally irreducible residual
// intact.
func Factor(n latexexpr.Node, name string, opts ...Option) (latexexpr.Node, error) {
	return transform(n, opts, func(e Expr) Expr { return factorExpr(e, name) })
}
