package latexexpr

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is a named, unit-bearing wrapper around one child tree.
// It renders the full report chain
//
//	name = symbolicExpr = substitutedExpr = result unit
//
// A bare Variable child is wrapped in an identity Operation so the
// chain always has a substitution step. Op may be replaced after
// construction, e.g. with the outcome of an algebraic transformation.
//
// The default format spec is derived once, from the result at wrap
// time, and is not re-derived when a child's value later changes. This
// keeps report formatting stable across re-renders; see DESIGN.md.
type Expression struct {
	Name       string
	Op         Node
	Unit       string
	Format     string
	UnitFormat string
	Exponent   int
}

// NewExpression wraps op under the given name and unit.
//
//	e := latexexpr.NewExpression("E_2", latexexpr.Div(latexexpr.Add(v1, v2), v3), "mm")
func NewExpression(name string, op Node, unit string, opts ...Option) *Expression {
	if v, ok := op.(*Variable); ok {
		op = mustOperation(OpNone, v)
	}
	s := applyOptions(opts)
	e := &Expression{Name: name, Op: op, Unit: unit, Format: defaultFormat, UnitFormat: s.unitFormat, Exponent: s.exponent}
	e.deriveFormat()
	if s.format != "" {
		e.Format = s.format
	}
	return e
}

// deriveFormat inspects the rendered result and picks the magnitude
// default when it parses as a plain number. Parenthesized (negative)
// and symbolic renderings keep the current spec, as the original did.
func (e *Expression) deriveFormat() {
	s, err := e.StrResult()
	if err != nil {
		return
	}
	f, perr := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if perr != nil {
		return
	}
	e.Format = deriveFormat(f)
}

// StrSymbolic renders the brace-wrapped expression name.
func (e *Expression) StrSymbolic() string { return "{" + e.Name + "}" }

// StrSubstituted renders the expression's result, the value other
// trees substitute for it. When the result cannot be computed it
// degrades to the child's substituted form.
func (e *Expression) StrSubstituted() string {
	s, err := e.StrResult()
	if err != nil {
		return e.Op.StrSubstituted()
	}
	return s
}

// StrResult renders the formatted result. Symbolic expressions render
// the child's substituted form, the best available partial
// substitution.
func (e *Expression) StrResult() (string, error) { return e.StrResultAs("", 0) }

// StrResultAs is StrResult with one-off format/exponent overrides.
func (e *Expression) StrResultAs(format string, exponent int) (string, error) {
	if e.IsSymbolic() {
		return e.Op.StrSubstituted(), nil
	}
	r, err := e.Result()
	if err != nil {
		return "", err
	}
	f := pickFormat(format, e.Format)
	ex := pickExponent(exponent, e.Exponent)
	return formatNumeral(r, f, ex, resultNumeral), nil
}

// StrResultWithUnit renders the formatted result followed by the unit.
func (e *Expression) StrResultWithUnit() (string, error) {
	r, err := e.StrResult()
	if err != nil {
		return "", err
	}
	return r + ` \ ` + fmt.Sprintf(e.UnitFormat, e.Unit), nil
}

// Result returns the child tree's numeric result.
func (e *Expression) Result() (float64, error) { return e.Op.Result() }

// IsSymbolic reports whether the child tree is symbolic.
func (e *Expression) IsSymbolic() bool { return e.Op.IsSymbolic() }

// ToVariable freezes the expression into a new leaf carrying its name
// (or newName), current value, unit and display attributes. A symbolic
// expression yields a symbolic leaf. The leaf is independent: later
// changes to the expression tree do not affect it.
func (e *Expression) ToVariable(newName string) (*Variable, error) {
	name := e.Name
	if newName != "" {
		name = newName
	}
	v := NewSymbolic(name, e.Unit, WithFormat(e.Format), WithUnitFormat(e.UnitFormat), WithExponent(e.Exponent))
	if !e.IsSymbolic() {
		r, err := e.Result()
		if err != nil {
			return nil, err
		}
		v.SetValue(r)
		v.Format = e.Format
	}
	return v, nil
}

// String renders the report chain. Symbolic expressions render
// "name = symbolicExpr"; otherwise the full four-part chain.
func (e *Expression) String() string {
	if e.IsSymbolic() {
		return e.Name + " = " + e.Op.String()
	}
	ru, err := e.StrResultWithUnit()
	if err != nil {
		return e.Name + " = " + e.Op.String()
	}
	return e.Name + " = " + e.Op.String() + " = " + ru
}

func (e *Expression) Add(other any) *Operation      { return Add(e, other) }
func (e *Expression) Sub(other any) *Operation      { return Sub(e, other) }
func (e *Expression) Mul(other any) *Operation      { return Mul(e, other) }
func (e *Expression) Div(other any) *Operation      { return Div(e, other) }
func (e *Expression) FloorDiv(other any) *Operation { return FloorDiv(e, other) }
func (e *Expression) Pow(other any) *Operation      { return Pow(e, other) }
func (e *Expression) Neg() *Operation               { return Neg(e) }
func (e *Expression) Pos() *Operation               { return Pos(e) }
func (e *Expression) Abs() *Operation               { return Abs(e) }
