// Package sympy provides algebraic transformations (simplify, expand,
// factor, collect, cancel, apart) for latexexpr trees.
//
// The transformations run on a small deterministic engine with exact
// rational arithmetic (math/big.Rat). Simplification is rule-based, not
// canonical: it flattens sums and products, folds constants, collects
// like terms and reduces single-variable rational polynomials, which
// covers the needs of calculation reports. Trees the engine does not
// understand pass through unchanged rather than failing.
package sympy

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strings"
)

// Expr is the engine's internal expression form. The adapter in
// convert.go maps latexexpr trees onto it and back; latexexpr itself
// never sees these types.
type Expr interface {
	// Simplify returns an equivalent, reduced expression.
	Simplify() Expr
	// Equal reports structural equality.
	Equal(other Expr) bool
	// String returns a stable textual form, used for canonical
	// ordering and equality of composite terms.
	String() string
}

// ---------------------------------------------------------------
// Num: exact rational constant
// ---------------------------------------------------------------

// Num is an exact rational constant.
type Num struct{ val *big.Rat }

// N returns an integer constant.
func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

// F returns the fraction p/q. It panics when q is zero.
func F(p, q int64) *Num {
	if q == 0 {
		panic("sympy: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// Float returns the exact rational equivalent of a float64.
func Float(f float64) *Num {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		panic(fmt.Sprintf("sympy: cannot represent %g", f))
	}
	return &Num{val: r}
}

func (n *Num) Simplify() Expr { return n }

func (n *Num) Equal(other Expr) bool {
	o, ok := other.(*Num)
	return ok && n.val.Cmp(o.val) == 0
}

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

// Float64 returns the nearest float64.
func (n *Num) Float64() float64 { f, _ := n.val.Float64(); return f }

// Rat returns a copy of the underlying rational.
func (n *Num) Rat() *big.Rat { return new(big.Rat).Set(n.val) }

func (n *Num) IsZero() bool    { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool     { return n.val.Cmp(ratOne) == 0 }
func (n *Num) IsNegOne() bool  { return n.val.Cmp(ratNegOne) == 0 }
func (n *Num) IsInteger() bool { return n.val.IsInt() }
func (n *Num) Sign() int       { return n.val.Sign() }

var (
	ratOne    = big.NewRat(1, 1)
	ratNegOne = big.NewRat(-1, 1)
)

func numFromRat(r *big.Rat) *Num { return &Num{val: new(big.Rat).Set(r)} }

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }
func numInv(a *Num) *Num {
	if a.IsZero() {
		panic("sympy: division by zero")
	}
	return &Num{val: new(big.Rat).Inv(a.val)}
}

// ---------------------------------------------------------------
// Sym: free symbol
// ---------------------------------------------------------------

// Sym is a free symbol, identified by name.
type Sym struct{ Name string }

// S returns the symbol with the given name.
func S(name string) *Sym { return &Sym{Name: name} }

func (s *Sym) Simplify() Expr { return s }

func (s *Sym) Equal(other Expr) bool {
	o, ok := other.(*Sym)
	return ok && s.Name == o.Name
}

func (s *Sym) String() string { return s.Name }

// ---------------------------------------------------------------
// Add: sum of terms
// ---------------------------------------------------------------

// Add is a flattened sum.
type Add struct{ Terms []Expr }

// AddOf returns the simplified sum of terms.
func AddOf(terms ...Expr) Expr { return (&Add{Terms: terms}).Simplify() }

// splitCoeff splits an expression into a rational coefficient and the
// remaining factor, so like terms can be collected (2x and 3x share
// the rest "x").
func splitCoeff(e Expr) (*Num, Expr) {
	switch v := e.(type) {
	case *Num:
		return v, nil
	case *Mul:
		if len(v.Factors) >= 2 {
			if c, ok := v.Factors[0].(*Num); ok {
				rest := v.Factors[1:]
				if len(rest) == 1 {
					return c, rest[0]
				}
				return c, &Mul{Factors: rest}
			}
		}
	}
	return N(1), e
}

func joinCoeff(c *Num, rest Expr) Expr {
	switch {
	case rest == nil:
		return c
	case c.IsZero():
		return N(0)
	case c.IsOne():
		return rest
	}
	if m, ok := rest.(*Mul); ok {
		return &Mul{Factors: append([]Expr{c}, m.Factors...)}
	}
	return &Mul{Factors: []Expr{c, rest}}
}

func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.Terms))
	for _, t := range a.Terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.Terms...)
		} else {
			flat = append(flat, s)
		}
	}

	constant := N(0)
	coeffs := map[string]*Num{}
	rests := map[string]Expr{}
	order := []string{}
	for _, t := range flat {
		c, rest := splitCoeff(t)
		if rest == nil {
			constant = numAdd(constant, c)
			continue
		}
		key := rest.String()
		if _, seen := coeffs[key]; !seen {
			coeffs[key] = N(0)
			rests[key] = rest
			order = append(order, key)
		}
		coeffs[key] = numAdd(coeffs[key], c)
	}

	sort.Strings(order)
	result := make([]Expr, 0, len(order)+1)
	for _, key := range order {
		c := coeffs[key]
		if c.IsZero() {
			continue
		}
		result = append(result, joinCoeff(c, rests[key]))
	}
	if !constant.IsZero() {
		result = append(result, constant)
	}

	switch len(result) {
	case 0:
		return N(0)
	case 1:
		return result[0]
	}
	return &Add{Terms: result}
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.Terms) != len(o.Terms) {
		return false
	}
	for i := range a.Terms {
		if !a.Terms[i].Equal(o.Terms[i]) {
			return false
		}
	}
	return true
}

func (a *Add) String() string {
	parts := make([]string, len(a.Terms))
	for i, t := range a.Terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

// ---------------------------------------------------------------
// Mul: product of factors
// ---------------------------------------------------------------

// Mul is a flattened product. A numeric coefficient, when present, is
// kept as the first factor.
type Mul struct{ Factors []Expr }

// MulOf returns the simplified product of factors.
func MulOf(factors ...Expr) Expr { return (&Mul{Factors: factors}).Simplify() }

func (m *Mul) Simplify() Expr {
	flat := make([]Expr, 0, len(m.Factors))
	for _, f := range m.Factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.Factors...)
		} else {
			flat = append(flat, s)
		}
	}

	coeff := N(1)
	// exponent sum per base, keyed by the base's string form
	exps := map[string]Expr{}
	bases := map[string]Expr{}
	order := []string{}
	for _, f := range flat {
		if n, ok := f.(*Num); ok {
			coeff = numMul(coeff, n)
			continue
		}
		base, exp := Expr(f), Expr(N(1))
		if p, ok := f.(*Pow); ok {
			base, exp = p.Base, p.Exp
		}
		key := base.String()
		if _, seen := exps[key]; !seen {
			exps[key] = N(0)
			bases[key] = base
			order = append(order, key)
		}
		exps[key] = AddOf(exps[key], exp)
	}
	if coeff.IsZero() {
		return N(0)
	}

	sort.Strings(order)
	rest := make([]Expr, 0, len(order))
	for _, key := range order {
		f := PowOf(bases[key], exps[key])
		if n, ok := f.(*Num); ok {
			coeff = numMul(coeff, n)
			continue
		}
		rest = append(rest, f)
	}

	switch {
	case len(rest) == 0:
		return coeff
	case coeff.IsOne() && len(rest) == 1:
		return rest[0]
	case coeff.IsOne():
		return &Mul{Factors: rest}
	}
	return &Mul{Factors: append([]Expr{coeff}, rest...)}
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.Factors) != len(o.Factors) {
		return false
	}
	for i := range m.Factors {
		if !m.Factors[i].Equal(o.Factors[i]) {
			return false
		}
	}
	return true
}

func (m *Mul) String() string {
	parts := make([]string, len(m.Factors))
	for i, f := range m.Factors {
		if _, ok := f.(*Add); ok {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

// ---------------------------------------------------------------
// Pow: base^exponent
// ---------------------------------------------------------------

// Pow is an exponentiation.
type Pow struct{ Base, Exp Expr }

// PowOf returns the simplified power base^exp.
func PowOf(base, exp Expr) Expr { return (&Pow{Base: base, Exp: exp}).Simplify() }

func (p *Pow) Simplify() Expr {
	base := p.Base.Simplify()
	exp := p.Exp.Simplify()

	if en, ok := exp.(*Num); ok {
		switch {
		case en.IsZero():
			return N(1)
		case en.IsOne():
			return base
		}
		if bn, ok2 := base.(*Num); ok2 {
			if bn.IsZero() {
				if en.Sign() > 0 {
					return N(0)
				}
				// 0^0 and 0^negative stay unevaluated.
				return &Pow{Base: base, Exp: exp}
			}
			if bn.IsOne() {
				return N(1)
			}
			if en.IsInteger() {
				if e := en.val.Num().Int64(); e >= -64 && e <= 64 {
					return numFromRat(ratPowInt(bn.val, e))
				}
			}
		}
	}
	if inner, ok := base.(*Pow); ok {
		return PowOf(inner.Base, MulOf(inner.Exp, exp))
	}
	return &Pow{Base: base, Exp: exp}
}

func ratPowInt(r *big.Rat, e int64) *big.Rat {
	neg := e < 0
	if neg {
		e = -e
	}
	out := new(big.Rat).SetInt64(1)
	for i := int64(0); i < e; i++ {
		out.Mul(out, r)
	}
	if neg {
		out.Inv(out)
	}
	return out
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.Base.Equal(o.Base) && p.Exp.Equal(o.Exp)
}

func (p *Pow) String() string {
	b := p.Base.String()
	switch p.Base.(type) {
	case *Add, *Mul:
		b = "(" + b + ")"
	}
	e := p.Exp.String()
	switch p.Exp.(type) {
	case *Add, *Mul, *Pow:
		e = "(" + e + ")"
	}
	return b + "^" + e
}

// ---------------------------------------------------------------
// Func: named function application
// ---------------------------------------------------------------

// Func is a named unary function application.
type Func struct {
	Name string
	Arg  Expr
}

// FuncOf returns the simplified application of a known function.
func FuncOf(name string, arg Expr) Expr { return (&Func{Name: name, Arg: arg}).Simplify() }

var numericFuncs = map[string]func(float64) float64{
	"sin": math.Sin, "cos": math.Cos, "tan": math.Tan,
	"sinh": math.Sinh, "cosh": math.Cosh, "tanh": math.Tanh,
	"exp": math.Exp, "abs": math.Abs,
}

func (f *Func) Simplify() Expr {
	arg := f.Arg.Simplify()
	if n, ok := arg.(*Num); ok {
		if fn, known := numericFuncs[f.Name]; known {
			return Float(fn(n.Float64()))
		}
		if f.Name == "ln" && n.Sign() > 0 {
			if n.IsOne() {
				return N(0)
			}
			return Float(math.Log(n.Float64()))
		}
	}
	switch f.Name {
	case "ln":
		if inner, ok := arg.(*Func); ok && inner.Name == "exp" {
			return inner.Arg
		}
	case "exp":
		if inner, ok := arg.(*Func); ok && inner.Name == "ln" {
			return inner.Arg
		}
	case "abs":
		if c, rest := splitCoeff(arg); c.Sign() < 0 {
			return FuncOf("abs", joinCoeff(numNeg(c), rest))
		}
	}
	return &Func{Name: f.Name, Arg: arg}
}

func (f *Func) Equal(other Expr) bool {
	o, ok := other.(*Func)
	return ok && f.Name == o.Name && f.Arg.Equal(o.Arg)
}

func (f *Func) String() string { return f.Name + "(" + f.Arg.String() + ")" }

// ---------------------------------------------------------------
// Structural helpers
// ---------------------------------------------------------------

// FreeSymbols returns the set of symbol names occurring in e.
func FreeSymbols(e Expr) map[string]struct{} {
	out := map[string]struct{}{}
	collectSymbols(e, out)
	return out
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.Name] = struct{}{}
	case *Add:
		for _, t := range v.Terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.Factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.Base, out)
		collectSymbols(v.Exp, out)
	case *Func:
		collectSymbols(v.Arg, out)
	}
}

// expandAll distributes products over sums and expands small integer
// powers of sums.
func expandAll(e Expr) Expr { return expandExpr(e).Simplify() }

func expandExpr(e Expr) Expr {
	switch v := e.(type) {
	case *Mul:
		var out Expr
		for _, f := range v.Factors {
			ef := expandExpr(f)
			if out == nil {
				out = ef
				continue
			}
			out = mulExpand(out, ef)
		}
		if out == nil {
			return N(1)
		}
		return out
	case *Add:
		terms := make([]Expr, len(v.Terms))
		for i, t := range v.Terms {
			terms[i] = expandExpr(t)
		}
		return AddOf(terms...)
	case *Pow:
		if n, ok := v.Exp.(*Num); ok && n.IsInteger() {
			if e := n.val.Num().Int64(); e >= 2 && e <= 16 {
				base := expandExpr(v.Base)
				if _, sum := base.(*Add); !sum {
					return PowOf(base, v.Exp)
				}
				out := base
				for i := int64(1); i < e; i++ {
					out = mulExpand(out, base)
				}
				return out
			}
		}
		return PowOf(expandExpr(v.Base), expandExpr(v.Exp))
	}
	return e
}

// addTerms views an already-expanded expression as a list of summands.
func addTerms(e Expr) []Expr {
	if a, ok := e.(*Add); ok {
		return a.Terms
	}
	return []Expr{e}
}

// mulExpand multiplies two already-expanded expressions, distributing
// over sums term by term. Only sum-free terms meet in MulOf, so like
// bases may fold into powers without re-entering the expansion: the
// simplifying constructors rebuild Pow forms from repeated factors,
// and routing the whole product back through them would never make
// progress.
func mulExpand(a, b Expr) Expr {
	at, bt := addTerms(a), addTerms(b)
	terms := make([]Expr, 0, len(at)*len(bt))
	for _, ta := range at {
		for _, tb := range bt {
			terms = append(terms, MulOf(ta, tb))
		}
	}
	return AddOf(terms...)
}

// Degree returns the polynomial degree of e in the named symbol, or -1
// when e is not polynomial in it.
func Degree(e Expr, name string) int {
	switch v := e.(type) {
	case *Num:
		return 0
	case *Sym:
		if v.Name == name {
			return 1
		}
		return 0
	case *Add:
		deg := 0
		for _, t := range v.Terms {
			d := Degree(t, name)
			if d < 0 {
				return -1
			}
			if d > deg {
				deg = d
			}
		}
		return deg
	case *Mul:
		deg := 0
		for _, f := range v.Factors {
			d := Degree(f, name)
			if d < 0 {
				return -1
			}
			deg += d
		}
		return deg
	case *Pow:
		if s, ok := v.Base.(*Sym); ok && s.Name == name {
			if n, ok2 := v.Exp.(*Num); ok2 && n.IsInteger() && n.Sign() >= 0 {
				return int(n.val.Num().Int64())
			}
			return -1
		}
		if _, uses := FreeSymbols(v)[name]; uses {
			return -1
		}
		return 0
	case *Func:
		if _, uses := FreeSymbols(v)[name]; uses {
			return -1
		}
		return 0
	}
	return -1
}

// PolyCoeffs maps degree in the named symbol to the (possibly
// symbolic) coefficient expression.
func PolyCoeffs(e Expr, name string) map[int]Expr {
	out := map[int]Expr{}
	extractCoeffs(e.Simplify(), name, out)
	return out
}

func extractCoeffs(e Expr, name string, out map[int]Expr) {
	switch v := e.(type) {
	case *Add:
		for _, t := range v.Terms {
			extractCoeffs(t, name, out)
		}
		return
	case *Sym:
		if v.Name == name {
			addCoeff(out, 1, N(1))
			return
		}
	case *Pow:
		if s, ok := v.Base.(*Sym); ok && s.Name == name {
			if n, ok2 := v.Exp.(*Num); ok2 && n.IsInteger() && n.Sign() >= 0 {
				addCoeff(out, int(n.val.Num().Int64()), N(1))
				return
			}
		}
	case *Mul:
		deg := 0
		coeff := make([]Expr, 0, len(v.Factors))
		for _, f := range v.Factors {
			if d := Degree(f, name); d > 0 {
				deg += d
			} else {
				coeff = append(coeff, f)
			}
		}
		switch len(coeff) {
		case 0:
			addCoeff(out, deg, N(1))
		case 1:
			addCoeff(out, deg, coeff[0])
		default:
			addCoeff(out, deg, MulOf(coeff...))
		}
		return
	}
	addCoeff(out, 0, e)
}

func addCoeff(out map[int]Expr, deg int, val Expr) {
	if prev, ok := out[deg]; ok {
		out[deg] = AddOf(prev, val)
	} else {
		out[deg] = val.Simplify()
	}
}

// collectPowers groups e by powers of the named symbol, highest degree
// first.
func collectPowers(e Expr, name string) Expr {
	coeffs := PolyCoeffs(e, name)
	if len(coeffs) == 0 {
		return N(0)
	}
	degrees := make([]int, 0, len(coeffs))
	for d := range coeffs {
		degrees = append(degrees, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(degrees)))
	terms := make([]Expr, 0, len(degrees))
	for _, d := range degrees {
		c := coeffs[d]
		if n, ok := c.(*Num); ok && n.IsZero() {
			continue
		}
		switch d {
		case 0:
			terms = append(terms, c)
		case 1:
			terms = append(terms, &Mul{Factors: []Expr{c, S(name)}})
		default:
			terms = append(terms, &Mul{Factors: []Expr{c, &Pow{Base: S(name), Exp: N(int64(d))}}})
		}
	}
	if len(terms) == 0 {
		return N(0)
	}
	if len(terms) == 1 {
		return terms[0].Simplify()
	}
	return &Add{Terms: terms}
}
