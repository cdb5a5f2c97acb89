package latexexpr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// settings carries the display attributes shared by variables and
// expressions. The zero format means "derive from the value".
type settings struct {
	format     string
	unitFormat string
	exponent   int
}

// Option configures the display attributes of a Variable or an
// Expression at construction time.
type Option func(*settings)

// WithFormat sets an explicit format spec (a fmt verb for a float64,
// e.g. "%.3f"), overriding the magnitude-derived default.
func WithFormat(format string) Option {
	return func(s *settings) { s.format = format }
}

// WithUnitFormat sets the unit wrapper (default `\mathrm{%s}`). Use
// "%s" for no wrapping.
func WithUnitFormat(format string) Option {
	return func(s *settings) { s.unitFormat = format }
}

// WithExponent enables scientific representation with the given
// power of ten. Zero disables it.
func WithExponent(exponent int) Option {
	return func(s *settings) { s.exponent = exponent }
}

func applyOptions(opts []Option) settings {
	s := settings{unitFormat: defaultUnitFormat}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// Variable is a mathematical or physical quantity with a symbolic name
// (LaTeX-safe), an optional numeric value and an opaque unit label. A
// Variable without a value is symbolic, and so is every tree that
// contains one. Variables are shared by reference: assigning a new
// value is observed by every owning tree on its next render.
//
// The zero Variable is not useful; build them with New, NewSymbolic or
// promotion of numeric literals inside builder calls.
type Variable struct {
	Name       string
	Unit       string
	Format     string
	UnitFormat string
	Exponent   int

	value    float64
	hasValue bool
	text     string
	literal  bool
}

// New returns a Variable with the given name, value and unit.
//
//	v := latexexpr.New("a_{22}", 3.45, "mm")
//	v.String() // a_{22} =  3.45 \ \mathrm{mm}
func New(name string, value float64, unit string, opts ...Option) *Variable {
	s := applyOptions(opts)
	v := &Variable{Name: name, Unit: unit, UnitFormat: s.unitFormat, Exponent: s.exponent}
	v.SetValue(value)
	if s.format != "" {
		v.Format = s.format
	}
	return v
}

// Literal returns the anonymous constant leaf a plain number promotes
// to inside builder calls: unitless, named by its own print form and
// marked so transformations treat it as a constant rather than a
// quantity. A Variable built with New is never a literal, whatever its
// name.
func Literal(value float64) *Variable {
	name := fmt.Sprintf("%.4g", value)
	if value == math.Trunc(value) && math.Abs(value) < 1e15 {
		name = strconv.FormatInt(int64(value), 10)
	}
	v := New(name, value, "")
	v.literal = true
	return v
}

// IsLiteral reports whether the Variable is an anonymous promoted
// constant.
func (v *Variable) IsLiteral() bool { return v.literal }

// NewSymbolic returns a value-less Variable. It renders as its bare
// name until SetValue assigns a value.
func NewSymbolic(name, unit string, opts ...Option) *Variable {
	s := applyOptions(opts)
	f := s.format
	if f == "" {
		f = defaultFormat
	}
	return &Variable{Name: name, Unit: unit, Format: f, UnitFormat: s.unitFormat, Exponent: s.exponent}
}

// Value returns the numeric value and whether one is set.
func (v *Variable) Value() (float64, bool) { return v.value, v.hasValue }

// SetValue assigns a numeric value and re-derives the default format
// spec from its magnitude.
func (v *Variable) SetValue(value float64) {
	v.value = value
	v.hasValue = true
	v.text = ""
	v.Format = deriveFormat(value)
}

// ClearValue removes the value, making the Variable symbolic again.
func (v *Variable) ClearValue() {
	v.hasValue = false
	v.text = ""
}

// SetText assigns a verbatim textual value. Strings that parse as
// numbers are coerced to numeric values; anything else renders as-is,
// never formatted, and cannot be evaluated.
func (v *Variable) SetText(text string) {
	text = strings.TrimSpace(text)
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		v.SetValue(f)
		return
	}
	v.hasValue = false
	v.text = text
}

// Text returns the verbatim textual value, if any.
func (v *Variable) Text() (string, bool) { return v.text, v.text != "" }

// IsSymbolic reports whether the Variable has no value.
func (v *Variable) IsSymbolic() bool { return !v.hasValue && v.text == "" }

// StrSymbolic renders the brace-wrapped name.
func (v *Variable) StrSymbolic() string { return "{" + v.Name + "}" }

// StrSubstituted renders the substituted form. A leaf has no separate
// substitution step: it renders its value with unit.
func (v *Variable) StrSubstituted() string {
	s, _ := v.StrResultWithUnit()
	return s
}

// StrResult renders the formatted value, or the symbolic name when no
// value is set. The error is always nil for leaves and exists to
// satisfy Node.
func (v *Variable) StrResult() (string, error) { return v.StrResultAs("", 0) }

// StrResultAs is StrResult with a one-off format spec and exponent
// overriding the stored ones. Empty format and zero exponent keep the
// node's own.
func (v *Variable) StrResultAs(format string, exponent int) (string, error) {
	if v.text != "" {
		return " " + v.text, nil
	}
	if v.IsSymbolic() {
		return v.StrSymbolic(), nil
	}
	f := pickFormat(format, v.Format)
	e := pickExponent(exponent, v.Exponent)
	return formatNumeral(v.value, f, e, leafNumeral), nil
}

// StrResultWithUnit renders the formatted value followed by the unit.
func (v *Variable) StrResultWithUnit() (string, error) {
	r, err := v.StrResult()
	if err != nil {
		return "", err
	}
	return r + ` \ ` + fmt.Sprintf(v.UnitFormat, v.Unit), nil
}

// Result returns the numeric value. Symbolic variables fail with
// *SymbolicValueError; verbatim text values fail with a plain error.
func (v *Variable) Result() (float64, error) {
	if v.text != "" {
		return 0, fmt.Errorf("latexexpr: variable %s holds non-numeric value %q", v.Name, v.text)
	}
	if v.IsSymbolic() {
		return 0, &SymbolicValueError{Name: v.Name}
	}
	return v.value, nil
}

// String renders "name = value unit", or the bare name when symbolic.
func (v *Variable) String() string {
	if v.IsSymbolic() {
		return v.Name
	}
	r, err := v.StrResultWithUnit()
	if err != nil {
		return v.Name
	}
	return v.Name + " = " + r
}

// Arithmetic methods build Operation nodes combining the receiver with
// the operand; plain numbers are promoted to literal leaves. They are
// the method form of the package-level builders.

func (v *Variable) Add(other any) *Operation      { return Add(v, other) }
func (v *Variable) Sub(other any) *Operation      { return Sub(v, other) }
func (v *Variable) Mul(other any) *Operation      { return Mul(v, other) }
func (v *Variable) Div(other any) *Operation      { return Div(v, other) }
func (v *Variable) FloorDiv(other any) *Operation { return FloorDiv(v, other) }
func (v *Variable) Pow(other any) *Operation      { return Pow(v, other) }
func (v *Variable) Neg() *Operation               { return Neg(v) }
func (v *Variable) Pos() *Operation               { return Pos(v) }
func (v *Variable) Abs() *Operation               { return Abs(v) }
