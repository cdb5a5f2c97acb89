package latexexpr

import (
	"fmt"
	"math"
	"strings"
)

// OpType identifies an operation. The set is closed and partitioned by
// arity; constructing an Operation with an unknown type or the wrong
// argument count fails.
type OpType string

const (
	OpNone OpType = ""   // identity wrapper
	OpAdd  OpType = "+"  // n-ary sum
	OpSub  OpType = "-"  // binary difference
	OpMul  OpType = "*"  // n-ary product
	OpDiv  OpType = "/"  // binary fraction
	OpDiv2 OpType = "//" // binary floored fraction

	OpNeg OpType = "neg"
	OpPos OpType = "pos"
	OpAbs OpType = "abs"
	OpMax OpType = "max"
	OpMin OpType = "min"

	OpPow  OpType = "pow"
	OpSqr  OpType = "sqr"
	OpRoot OpType = "root" // root(a, b) = b^(1/a)
	OpSqrt OpType = "sqrt"

	OpSin  OpType = "sin"
	OpCos  OpType = "cos"
	OpTan  OpType = "tan"
	OpSinh OpType = "sinh"
	OpCosh OpType = "cosh"
	OpTanh OpType = "tanh"

	OpExp   OpType = "exp"
	OpLog   OpType = "log" // log(a, b) = ln(b)/ln(a)
	OpLn    OpType = "ln"
	OpLog10 OpType = "log10"

	OpRBrackets OpType = "()"
	OpSBrackets OpType = "[]"
	OpCBrackets OpType = "{}"
	OpABrackets OpType = "<>"
)

var unaryOps = map[OpType]bool{
	OpNone: true, OpNeg: true, OpPos: true, OpAbs: true,
	OpSqr: true, OpSqrt: true,
	OpSin: true, OpCos: true, OpTan: true,
	OpSinh: true, OpCosh: true, OpTanh: true,
	OpExp: true, OpLn: true, OpLog10: true,
	OpRBrackets: true, OpSBrackets: true, OpCBrackets: true, OpABrackets: true,
}

var binaryOps = map[OpType]bool{
	OpSub: true, OpDiv: true, OpDiv2: true,
	OpPow: true, OpRoot: true, OpLog: true,
}

var naryOps = map[OpType]bool{
	OpAdd: true, OpMul: true, OpMax: true, OpMin: true,
}

func isSupported(t OpType) bool {
	return unaryOps[t] || binaryOps[t] || naryOps[t]
}

// Operation combines one, two or more child nodes under an operator.
// Children may be any node kind and may be shared with other trees; the
// child list itself is fixed after construction. Type and Args are
// exported for tree introspection (the sympy adapter rebuilds trees
// from them) and must not be mutated.
type Operation struct {
	Type     OpType
	Args     []Node
	Format   string
	Exponent int
}

// NewOperation builds an Operation, validating the operator tag and its
// arity (unary=1, binary=2, n-ary>=2) and promoting numeric literal
// arguments to anonymous leaves. It returns *InvalidOperationError or
// *InvalidOperandError on misuse. The builder functions wrap it and
// panic instead, matching the fatal-at-construction contract.
func NewOperation(typ OpType, args ...any) (*Operation, error) {
	nodes := make([]Node, 0, len(args))
	for _, a := range args {
		n, err := promote(a)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	switch {
	case unaryOps[typ]:
		if len(nodes) != 1 {
			return nil, &InvalidOperationError{Type: typ, NArgs: len(nodes)}
		}
	case binaryOps[typ]:
		if len(nodes) != 2 {
			return nil, &InvalidOperationError{Type: typ, NArgs: len(nodes)}
		}
	case naryOps[typ]:
		if len(nodes) < 2 {
			return nil, &InvalidOperationError{Type: typ, NArgs: len(nodes)}
		}
	default:
		return nil, &InvalidOperationError{Type: typ, NArgs: len(nodes)}
	}
	return &Operation{Type: typ, Args: nodes, Format: defaultFormat}, nil
}

func mustOperation(typ OpType, args ...any) *Operation {
	o, err := NewOperation(typ, args...)
	if err != nil {
		panic(err)
	}
	return o
}

// renderMode selects which rendering a child contributes to the
// operator template. One renderer serves both modes so the template
// table exists exactly once.
type renderMode int

const (
	modeSymbolic renderMode = iota
	modeSubstituted
)

func renderChild(n Node, mode renderMode) string {
	if mode == modeSymbolic {
		return n.StrSymbolic()
	}
	return n.StrSubstituted()
}

func (o *Operation) render(mode renderMode) string {
	a := o.Args
	if naryOps[o.Type] {
		parts := make([]string, len(a))
		for i, arg := range a {
			s := renderChild(arg, mode)
			if o.Type == OpMul {
				// Sums bind looser than products.
				if inner, ok := arg.(*Operation); ok && (inner.Type == OpAdd || inner.Type == OpSub) {
					s = `\left(` + s + `\right)`
				}
			}
			parts[i] = s
		}
		switch o.Type {
		case OpAdd:
			return strings.Join(parts, " + ")
		case OpMul:
			return strings.Join(parts, ` \cdot `)
		case OpMax:
			return fmt.Sprintf(`\max{\left( %s \right)}`, strings.Join(parts, ", "))
		case OpMin:
			return fmt.Sprintf(`\min{\left( %s \right)}`, strings.Join(parts, ", "))
		}
	}
	if binaryOps[o.Type] {
		v0 := renderChild(a[0], mode)
		v1 := renderChild(a[1], mode)
		switch o.Type {
		case OpSub:
			return fmt.Sprintf(`%s - %s`, v0, v1)
		case OpDiv:
			return fmt.Sprintf(`\frac{ %s }{ %s }`, v0, v1)
		case OpDiv2:
			return fmt.Sprintf(`\left \lfloor \frac{ %s }{ %s } \right \rfloor`, v0, v1)
		case OpPow:
			return fmt.Sprintf(`{\left( %s \right)}^{ %s }`, v0, v1)
		case OpRoot:
			return fmt.Sprintf(`\sqrt[ %s ]{ %s }`, v0, v1)
		case OpLog:
			return fmt.Sprintf(`\log_{ %s }{ %s }`, v0, v1)
		}
	}
	v := renderChild(a[0], mode)
	switch o.Type {
	case OpNone:
		return v
	case OpNeg:
		return fmt.Sprintf(`\left( - %s \right)`, v)
	case OpPos:
		return fmt.Sprintf(`\left( + %s \right)`, v)
	case OpAbs:
		return fmt.Sprintf(`\left| %s \right|`, v)
	case OpSqr:
		return v + "^2"
	case OpSqrt:
		return fmt.Sprintf(`\sqrt{ %s }`, v)
	case OpSin, OpCos, OpTan, OpSinh, OpCosh, OpTanh:
		return fmt.Sprintf(`\%s{\left( %s \right)}`, string(o.Type), v)
	case OpExp:
		return fmt.Sprintf(`\mathrm{e}^{ %s }`, v)
	case OpLn:
		return fmt.Sprintf(`\ln{ %s }`, v)
	case OpLog10:
		return fmt.Sprintf(`\log_{10}{ %s }`, v)
	case OpRBrackets:
		return fmt.Sprintf(`\left( %s \right)`, v)
	case OpSBrackets:
		return fmt.Sprintf(`\left[ %s \right]`, v)
	case OpCBrackets:
		return fmt.Sprintf(`\left\{ %s \right\}`, v)
	case OpABrackets:
		return fmt.Sprintf(`\left\langle %s \right\rangle`, v)
	}
	// Unreachable for operations built through NewOperation.
	panic(&InvalidOperationError{Type: o.Type, NArgs: len(a)})
}

// StrSymbolic renders the operator template over the children's
// symbolic forms.
func (o *Operation) StrSymbolic() string { return o.render(modeSymbolic) }

// StrSubstituted renders the operator template over the children's
// substituted forms.
func (o *Operation) StrSubstituted() string { return o.render(modeSubstituted) }

// StrResult renders the computed result using this node's own format
// and exponent. Symbolic trees render their symbolic form.
func (o *Operation) StrResult() (string, error) { return o.StrResultAs("", 0) }

// StrResultAs is StrResult with one-off format/exponent overrides.
func (o *Operation) StrResultAs(format string, exponent int) (string, error) {
	if o.IsSymbolic() {
		return o.StrSymbolic(), nil
	}
	r, err := o.Result()
	if err != nil {
		return "", err
	}
	f := pickFormat(format, o.Format)
	e := pickExponent(exponent, o.Exponent)
	return formatNumeral(r, f, e, resultNumeral), nil
}

// StrResultWithUnit renders the bare result: operations carry no unit.
func (o *Operation) StrResultWithUnit() (string, error) { return o.StrResult() }

// Result reduces the children's results with the operator's arithmetic.
// Division by zero follows IEEE float semantics; sqrt and logarithm
// domain violations return plain errors.
func (o *Operation) Result() (float64, error) {
	if naryOps[o.Type] {
		vals := make([]float64, len(o.Args))
		for i, arg := range o.Args {
			v, err := arg.Result()
			if err != nil {
				return 0, err
			}
			vals[i] = v
		}
		switch o.Type {
		case OpAdd:
			sum := 0.0
			for _, v := range vals {
				sum += v
			}
			return sum, nil
		case OpMul:
			prod := 1.0
			for _, v := range vals {
				prod *= v
			}
			return prod, nil
		case OpMax:
			m := vals[0]
			for _, v := range vals[1:] {
				m = math.Max(m, v)
			}
			return m, nil
		case OpMin:
			m := vals[0]
			for _, v := range vals[1:] {
				m = math.Min(m, v)
			}
			return m, nil
		}
	}
	if binaryOps[o.Type] {
		v0, err := o.Args[0].Result()
		if err != nil {
			return 0, err
		}
		v1, err := o.Args[1].Result()
		if err != nil {
			return 0, err
		}
		switch o.Type {
		case OpSub:
			return v0 - v1, nil
		case OpDiv:
			return v0 / v1, nil
		case OpDiv2:
			return math.Floor(v0 / v1), nil
		case OpPow:
			return math.Pow(v0, v1), nil
		case OpRoot:
			return math.Pow(v1, 1.0/v0), nil
		case OpLog:
			if v0 <= 0 || v1 <= 0 {
				return 0, fmt.Errorf("latexexpr: log of non-positive value (base %g, arg %g)", v0, v1)
			}
			return math.Log(v1) / math.Log(v0), nil
		}
	}
	v, err := o.Args[0].Result()
	if err != nil {
		return 0, err
	}
	switch o.Type {
	case OpNone, OpPos, OpRBrackets, OpSBrackets, OpCBrackets, OpABrackets:
		return v, nil
	case OpNeg:
		return -v, nil
	case OpAbs:
		return math.Abs(v), nil
	case OpSqr:
		return v * v, nil
	case OpSqrt:
		if v < 0 {
			return 0, fmt.Errorf("latexexpr: square root of negative value %g", v)
		}
		return math.Sqrt(v), nil
	case OpSin:
		return math.Sin(v), nil
	case OpCos:
		return math.Cos(v), nil
	case OpTan:
		return math.Tan(v), nil
	case OpSinh:
		return math.Sinh(v), nil
	case OpCosh:
		return math.Cosh(v), nil
	case OpTanh:
		return math.Tanh(v), nil
	case OpExp:
		return math.Exp(v), nil
	case OpLn:
		if v <= 0 {
			return 0, fmt.Errorf("latexexpr: logarithm of non-positive value %g", v)
		}
		return math.Log(v), nil
	case OpLog10:
		if v <= 0 {
			return 0, fmt.Errorf("latexexpr: logarithm of non-positive value %g", v)
		}
		return math.Log10(v), nil
	}
	panic(&InvalidOperationError{Type: o.Type, NArgs: len(o.Args)})
}

// IsSymbolic reports whether any child tree is symbolic.
func (o *Operation) IsSymbolic() bool {
	for _, arg := range o.Args {
		if arg.IsSymbolic() {
			return true
		}
	}
	return false
}

// ToVariable snapshots the current numeric result into a new,
// independent leaf. Later child mutations do not affect it.
func (o *Operation) ToVariable(name string, opts ...Option) (*Variable, error) {
	r, err := o.Result()
	if err != nil {
		return nil, err
	}
	return New(name, r, "", opts...), nil
}

// String renders "symbolicExpr = substitutedExpr", or just the symbolic
// form for symbolic trees.
func (o *Operation) String() string {
	if o.IsSymbolic() {
		return o.StrSymbolic()
	}
	return o.StrSymbolic() + " = " + o.StrSubstituted()
}

func (o *Operation) Add(other any) *Operation      { return Add(o, other) }
func (o *Operation) Sub(other any) *Operation      { return Sub(o, other) }
func (o *Operation) Mul(other any) *Operation      { return Mul(o, other) }
func (o *Operation) Div(other any) *Operation      { return Div(o, other) }
func (o *Operation) FloorDiv(other any) *Operation { return FloorDiv(o, other) }
func (o *Operation) Pow(other any) *Operation      { return Pow(o, other) }
func (o *Operation) Neg() *Operation               { return Neg(o) }
func (o *Operation) Pos() *Operation               { return Pos(o) }
func (o *Operation) Abs() *Operation               { return Abs(o) }
