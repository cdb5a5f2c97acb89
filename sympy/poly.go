package sympy

import (
	"math/big"
)

// poly is a dense single-variable polynomial; the index is the degree.
// Trailing zero coefficients are kept trimmed.
type poly []*big.Rat

func (p poly) trim() poly {
	n := len(p)
	for n > 0 && p[n-1].Sign() == 0 {
		n--
	}
	return p[:n]
}

func (p poly) degree() int { return len(p.trim()) - 1 }

func (p poly) clone() poly {
	out := make(poly, len(p))
	for i, c := range p {
		out[i] = new(big.Rat).Set(c)
	}
	return out
}

func (p poly) leading() *big.Rat {
	t := p.trim()
	if len(t) == 0 {
		return new(big.Rat)
	}
	return new(big.Rat).Set(t[len(t)-1])
}

// scale returns p multiplied by k.
func (p poly) scale(k *big.Rat) poly {
	out := make(poly, len(p))
	for i, c := range p {
		out[i] = new(big.Rat).Mul(c, k)
	}
	return out.trim()
}

// monic returns p divided by its leading coefficient.
func (p poly) monic() poly {
	lead := p.leading()
	if lead.Sign() == 0 {
		return p.trim()
	}
	return p.scale(new(big.Rat).Inv(lead))
}

// eval computes p at x with Horner's rule.
func (p poly) eval(x *big.Rat) *big.Rat {
	out := new(big.Rat)
	for i := len(p) - 1; i >= 0; i-- {
		out.Mul(out, x)
		out.Add(out, p[i])
	}
	return out
}

// polyDiv returns quotient and remainder of a/b. It panics when b is
// zero.
func polyDiv(a, b poly) (quo, rem poly) {
	b = b.trim()
	if len(b) == 0 {
		panic("sympy: polynomial division by zero")
	}
	rem = a.clone().trim()
	db := len(b) - 1
	lead := new(big.Rat).Inv(b[db])
	if len(rem)-1 < db {
		return poly{}, rem
	}
	quo = make(poly, len(rem)-db)
	for len(rem)-1 >= db && len(rem) > 0 {
		shift := len(rem) - 1 - db
		c := new(big.Rat).Mul(rem[len(rem)-1], lead)
		quo[shift] = c
		for i := 0; i <= db; i++ {
			t := new(big.Rat).Mul(b[i], c)
			rem[i+shift] = new(big.Rat).Sub(rem[i+shift], t)
		}
		rem = rem.trim()
	}
	for i, c := range quo {
		if c == nil {
			quo[i] = new(big.Rat)
		}
	}
	return quo.trim(), rem
}

// polyGCD returns the monic greatest common divisor of a and b.
func polyGCD(a, b poly) poly {
	a, b = a.trim(), b.trim()
	for len(b) > 0 {
		_, r := polyDiv(a, b)
		a, b = b, r
	}
	if len(a) == 0 {
		return a
	}
	return a.monic()
}

// polyFromExpr extracts dense rational coefficients of e in the named
// symbol. It fails when e is not polynomial in it or a coefficient is
// symbolic.
func polyFromExpr(e Expr, name string) (poly, bool) {
	deg := Degree(e, name)
	if deg < 0 {
		return nil, false
	}
	coeffs := PolyCoeffs(e, name)
	out := make(poly, deg+1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	for d, c := range coeffs {
		n, ok := c.(*Num)
		if !ok {
			return nil, false
		}
		if d > deg {
			return nil, false
		}
		out[d].Add(out[d], n.val)
	}
	return out.trim(), true
}

// polyToExpr renders coefficients back as a collected expression,
// highest degree first.
func polyToExpr(p poly, name string) Expr {
	p = p.trim()
	if len(p) == 0 {
		return N(0)
	}
	terms := make([]Expr, 0, len(p))
	for d := len(p) - 1; d >= 0; d-- {
		c := p[d]
		if c.Sign() == 0 {
			continue
		}
		coeff := numFromRat(c)
		switch d {
		case 0:
			terms = append(terms, coeff)
		case 1:
			terms = append(terms, joinCoeff(coeff, S(name)))
		default:
			terms = append(terms, joinCoeff(coeff, &Pow{Base: S(name), Exp: N(int64(d))}))
		}
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return &Add{Terms: terms}
}

// splitQuotient separates e into numerator and denominator parts,
// reading negative powers as denominator factors.
func splitQuotient(e Expr) (num, den Expr) {
	switch v := e.(type) {
	case *Mul:
		var top, bottom []Expr
		for _, f := range v.Factors {
			if p, ok := f.(*Pow); ok {
				if n, ok2 := p.Exp.(*Num); ok2 && n.Sign() < 0 {
					bottom = append(bottom, PowOf(p.Base, numNeg(n)))
					continue
				}
			}
			top = append(top, f)
		}
		if len(bottom) == 0 {
			return e, N(1)
		}
		return MulOf(top...), MulOf(bottom...)
	case *Pow:
		if n, ok := v.Exp.(*Num); ok && n.Sign() < 0 {
			return N(1), PowOf(v.Base, numNeg(n))
		}
	}
	return e, N(1)
}

// soleSymbol returns the only free symbol of e, if there is exactly
// one.
func soleSymbol(e Expr) (string, bool) {
	syms := FreeSymbols(e)
	if len(syms) != 1 {
		return "", false
	}
	for name := range syms {
		return name, true
	}
	return "", false
}

// cancelExpr reduces a single-variable rational expression by the
// polynomial GCD of numerator and denominator. Expressions it cannot
// read as such pass through simplified.
func cancelExpr(e Expr) Expr {
	e = e.Simplify()
	num, den := splitQuotient(e)
	if n, ok := den.(*Num); ok && n.IsOne() {
		return e
	}
	name, ok := soleSymbol(e)
	if !ok {
		return e
	}
	np, okN := polyFromExpr(expandAll(num), name)
	dp, okD := polyFromExpr(expandAll(den), name)
	if !okN || !okD || len(dp) == 0 {
		return e
	}
	g := polyGCD(np, dp)
	if g.degree() >= 1 {
		np, _ = polyDiv(np, g)
		dp, _ = polyDiv(dp, g)
	}
	if dp.degree() == 0 {
		return polyToExpr(np.scale(new(big.Rat).Inv(dp.leading())), name)
	}
	return MulOf(polyToExpr(np, name), PowOf(polyToExpr(dp, name), N(-1)))
}

// apartExpr splits an improper single-variable rational expression into
// its polynomial part plus a proper remainder fraction.
func apartExpr(e Expr) Expr {
	e = cancelExpr(e)
	num, den := splitQuotient(e)
	if n, ok := den.(*Num); ok && n.IsOne() {
		return e
	}
	name, ok := soleSymbol(e)
	if !ok {
		return e
	}
	np, okN := polyFromExpr(expandAll(num), name)
	dp, okD := polyFromExpr(expandAll(den), name)
	if !okN || !okD || len(dp) == 0 || np.degree() < dp.degree() {
		return e
	}
	quo, rem := polyDiv(np, dp)
	if len(rem.trim()) == 0 {
		return polyToExpr(quo, name)
	}
	frac := MulOf(polyToExpr(rem, name), PowOf(polyToExpr(dp, name), N(-1)))
	return AddOf(polyToExpr(quo, name), frac)
}

// factorExpr splits a single-variable polynomial into linear factors
// over the rationals, leaving an irreducible-over-Q residual when the
// rational roots run out.
func factorExpr(e Expr, name string) Expr {
	p, ok := polyFromExpr(expandAll(e.Simplify()), name)
	if !ok || p.degree() < 2 {
		return e.Simplify()
	}
	lead := p.leading()
	work := p.monic()
	var factors []Expr
	for work.degree() >= 1 {
		root, found := rationalRoot(work)
		if !found {
			break
		}
		factors = append(factors, AddOf(S(name), numFromRat(new(big.Rat).Neg(root))))
		work, _ = polyDiv(work, poly{new(big.Rat).Neg(root), big.NewRat(1, 1)})
	}
	if len(factors) == 0 {
		return polyToExpr(p, name)
	}
	if work.degree() >= 1 {
		factors = append(factors, polyToExpr(work, name))
	}
	if lead.Cmp(ratOne) != 0 {
		factors = append([]Expr{numFromRat(lead)}, factors...)
	}
	if len(factors) == 1 {
		return factors[0]
	}
	// Merge repeated roots into powers without distributing.
	return (&Mul{Factors: factors}).Simplify()
}

// rationalRootBound caps the divisor search for root candidates.
const rationalRootBound = 10000

// rationalRoot finds one rational root of a monic polynomial, by the
// rational root theorem over the integer form of the polynomial.
func rationalRoot(p poly) (*big.Rat, bool) {
	p = p.trim()
	if len(p) < 2 {
		return nil, false
	}
	if p[0].Sign() == 0 {
		return new(big.Rat), true
	}

	// Clear denominators to get integer coefficients.
	lcm := big.NewInt(1)
	for _, c := range p {
		g := new(big.Int).GCD(nil, nil, lcm, c.Denom())
		lcm.Div(new(big.Int).Mul(lcm, c.Denom()), g)
	}
	scaled := p.scale(new(big.Rat).SetInt(lcm))
	a0 := new(big.Int).Abs(scaled[0].Num())
	an := new(big.Int).Abs(scaled[len(scaled)-1].Num())
	if !a0.IsInt64() || !an.IsInt64() {
		return nil, false
	}

	for _, q := range divisorsUpTo(an.Int64(), rationalRootBound) {
		for _, num := range divisorsUpTo(a0.Int64(), rationalRootBound) {
			for _, sign := range []int64{1, -1} {
				cand := big.NewRat(sign*num, q)
				if p.eval(cand).Sign() == 0 {
					return cand, true
				}
			}
		}
	}
	return nil, false
}

func divisorsUpTo(n, bound int64) []int64 {
	if n < 0 {
		n = -n
	}
	var out []int64
	for d := int64(1); d <= n && d <= bound; d++ {
		if n%d == 0 {
			out = append(out, d)
		}
	}
	return out
}
