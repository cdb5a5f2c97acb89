package sympy

import (
	"fmt"
	"math/big"
	"strconv"

	latexexpr "github.com/youandvern/latexexpr-efficalc"
)

// converter maps latexexpr trees onto engine expressions and back. It
// walks only the core's exported introspection surface (operator tag,
// argument list, leaf fields) and remembers the original leaves so the
// rebuilt tree shares them, keeping value mutations visible after a
// transformation.
type converter struct {
	substitute bool
	leaves     map[string]latexexpr.Node
}

func newConverter(substitute bool) *converter {
	return &converter{substitute: substitute, leaves: map[string]latexexpr.Node{}}
}

func (c *converter) fromNode(n latexexpr.Node) (Expr, error) {
	switch v := n.(type) {
	case *latexexpr.Variable:
		// Promoted literals are constants; named variables stay
		// symbols so the rebuilt tree keeps sharing them, even when
		// the name happens to spell the value.
		if v.IsLiteral() {
			if val, ok := v.Value(); ok {
				return Float(val), nil
			}
		}
		if c.substitute {
			if val, ok := v.Value(); ok {
				return Float(val), nil
			}
		}
		if text, ok := v.Text(); ok {
			return nil, fmt.Errorf("sympy: variable %s holds non-numeric value %q", v.Name, text)
		}
		c.leaves[v.Name] = v
		return S(v.Name), nil
	case *latexexpr.Expression:
		// Nested expressions enter as opaque symbols under their
		// report name and come back out as the same node.
		if c.substitute {
			if r, err := v.Result(); err == nil {
				return Float(r), nil
			}
		}
		c.leaves[v.Name] = v
		return S(v.Name), nil
	case *latexexpr.Operation:
		return c.fromOperation(v)
	}
	return nil, fmt.Errorf("sympy: unsupported node type %T", n)
}

func (c *converter) fromOperation(o *latexexpr.Operation) (Expr, error) {
	args := make([]Expr, len(o.Args))
	for i, a := range o.Args {
		e, err := c.fromNode(a)
		if err != nil {
			return nil, err
		}
		args[i] = e
	}
	switch o.Type {
	case latexexpr.OpNone, latexexpr.OpPos,
		latexexpr.OpRBrackets, latexexpr.OpSBrackets,
		latexexpr.OpCBrackets, latexexpr.OpABrackets:
		return args[0], nil
	case latexexpr.OpAdd:
		return AddOf(args...), nil
	case latexexpr.OpSub:
		return AddOf(args[0], MulOf(N(-1), args[1])), nil
	case latexexpr.OpMul:
		return MulOf(args...), nil
	case latexexpr.OpDiv:
		return MulOf(args[0], PowOf(args[1], N(-1))), nil
	case latexexpr.OpNeg:
		return MulOf(N(-1), args[0]), nil
	case latexexpr.OpPow:
		return PowOf(args[0], args[1]), nil
	case latexexpr.OpSqr:
		return PowOf(args[0], N(2)), nil
	case latexexpr.OpSqrt:
		return PowOf(args[0], F(1, 2)), nil
	case latexexpr.OpRoot:
		return PowOf(args[1], PowOf(args[0], N(-1))), nil
	case latexexpr.OpSin, latexexpr.OpCos, latexexpr.OpTan,
		latexexpr.OpSinh, latexexpr.OpCosh, latexexpr.OpTanh,
		latexexpr.OpExp, latexexpr.OpLn, latexexpr.OpAbs:
		return FuncOf(string(o.Type), args[0]), nil
	case latexexpr.OpLog:
		return MulOf(FuncOf("ln", args[1]), PowOf(FuncOf("ln", args[0]), N(-1))), nil
	case latexexpr.OpLog10:
		return MulOf(FuncOf("ln", args[0]), PowOf(FuncOf("ln", Float(10)), N(-1))), nil
	}
	// max, min and floor division have no algebraic form.
	return nil, fmt.Errorf("sympy: operation %q has no algebraic form", string(o.Type))
}

// maxLeafDenominator bounds the rationals rendered as fractions; exact
// binary forms of floats exceed it and render as decimal literals.
const maxLeafDenominator = 10000

func (c *converter) toNode(e Expr) (latexexpr.Node, error) {
	switch v := e.(type) {
	case *Num:
		return c.numToNode(v), nil
	case *Sym:
		if n, ok := c.leaves[v.Name]; ok {
			return n, nil
		}
		return latexexpr.NewSymbolic(v.Name, ""), nil
	case *Add:
		return c.addToNode(v)
	case *Mul:
		return c.mulToNode(v)
	case *Pow:
		return c.powToNode(v)
	case *Func:
		return c.funcToNode(v)
	}
	return nil, fmt.Errorf("sympy: unsupported expression type %T", e)
}

func (c *converter) numToNode(n *Num) latexexpr.Node {
	r := n.Rat()
	if r.IsInt() {
		return latexexpr.Literal(n.Float64())
	}
	if r.Denom().IsInt64() && r.Denom().Int64() <= maxLeafDenominator {
		top := latexexpr.Literal(float64FromBigIntString(r.Num().String()))
		bottom := latexexpr.Literal(float64FromBigIntString(r.Denom().String()))
		return latexexpr.Div(top, bottom)
	}
	return latexexpr.Literal(n.Float64())
}

func float64FromBigIntString(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// addToNode renders a sum as an Add/Sub chain, folding negative
// coefficients into subtractions.
func (c *converter) addToNode(a *Add) (latexexpr.Node, error) {
	var out latexexpr.Node
	for _, t := range a.Terms {
		coeff, rest := splitCoeff(t)
		neg := out != nil && coeff.Sign() < 0
		if neg {
			t = joinCoeff(numNeg(coeff), rest)
		}
		n, err := c.toNode(t)
		if err != nil {
			return nil, err
		}
		switch {
		case out == nil:
			out = n
		case neg:
			out = latexexpr.Sub(out, n)
		default:
			out = latexexpr.Add(out, n)
		}
	}
	return out, nil
}

// mulToNode renders a product, gathering negative powers into the
// denominator of a fraction.
func (c *converter) mulToNode(m *Mul) (latexexpr.Node, error) {
	var num, den []latexexpr.Node
	negate := false
	for _, f := range m.Factors {
		if n, ok := f.(*Num); ok {
			r := n.Rat()
			if r.Sign() < 0 {
				negate = !negate
				r.Neg(r)
			}
			if r.Cmp(ratOne) == 0 {
				continue
			}
			num = append(num, latexexpr.Literal(float64FromBigIntString(r.Num().String())))
			if !r.IsInt() {
				den = append(den, latexexpr.Literal(float64FromBigIntString(r.Denom().String())))
			}
			continue
		}
		if p, ok := f.(*Pow); ok {
			if en, ok2 := p.Exp.(*Num); ok2 && en.Sign() < 0 {
				inv, err := c.toNode(PowOf(p.Base, numNeg(en)))
				if err != nil {
					return nil, err
				}
				den = append(den, inv)
				continue
			}
		}
		n, err := c.toNode(f)
		if err != nil {
			return nil, err
		}
		num = append(num, n)
	}

	top := productNode(num)
	out := top
	if len(den) > 0 {
		out = latexexpr.Div(top, productNode(den))
	}
	if negate {
		out = latexexpr.Neg(out)
	}
	return out, nil
}

func productNode(factors []latexexpr.Node) latexexpr.Node {
	switch len(factors) {
	case 0:
		return latexexpr.Literal(1)
	case 1:
		return factors[0]
	}
	args := make([]any, len(factors))
	for i, f := range factors {
		args[i] = f
	}
	return latexexpr.Mul(args...)
}

func (c *converter) powToNode(p *Pow) (latexexpr.Node, error) {
	base, err := c.toNode(p.Base)
	if err != nil {
		return nil, err
	}
	if en, ok := p.Exp.(*Num); ok {
		r := en.Rat()
		switch {
		case r.Cmp(big.NewRat(1, 2)) == 0:
			return latexexpr.Sqrt(base), nil
		case r.Cmp(big.NewRat(2, 1)) == 0:
			return latexexpr.Sqr(base), nil
		case r.Sign() < 0:
			inv, ierr := c.toNode(PowOf(p.Base, numNeg(en)))
			if ierr != nil {
				return nil, ierr
			}
			return latexexpr.Div(latexexpr.Literal(1), inv), nil
		}
	}
	exp, err := c.toNode(p.Exp)
	if err != nil {
		return nil, err
	}
	return latexexpr.Pow(base, exp), nil
}

func (c *converter) funcToNode(f *Func) (latexexpr.Node, error) {
	arg, err := c.toNode(f.Arg)
	if err != nil {
		return nil, err
	}
	switch f.Name {
	case "sin":
		return latexexpr.Sin(arg), nil
	case "cos":
		return latexexpr.Cos(arg), nil
	case "tan":
		return latexexpr.Tan(arg), nil
	case "sinh":
		return latexexpr.Sinh(arg), nil
	case "cosh":
		return latexexpr.Cosh(arg), nil
	case "tanh":
		return latexexpr.Tanh(arg), nil
	case "exp":
		return latexexpr.Exp(arg), nil
	case "ln":
		return latexexpr.Ln(arg), nil
	case "abs":
		return latexexpr.Abs(arg), nil
	}
	return nil, fmt.Errorf("sympy: unknown function %q", f.Name)
}
