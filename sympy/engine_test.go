package sympy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youandvern/latexexpr-efficalc/sympy"
)

func TestNumArithmetic(t *testing.T) {
	assert.Equal(t, "5", sympy.N(5).String())
	assert.Equal(t, "1/3", sympy.F(1, 3).String())
	assert.Equal(t, "-2/3", sympy.F(2, -3).String())

	sum := sympy.AddOf(sympy.F(1, 3), sympy.F(1, 6))
	assert.True(t, sum.Equal(sympy.F(1, 2)))

	prod := sympy.MulOf(sympy.F(2, 3), sympy.F(3, 4))
	assert.True(t, prod.Equal(sympy.F(1, 2)))

	assert.Panics(t, func() { sympy.F(1, 0) })
}

func TestAddCollectsLikeTerms(t *testing.T) {
	x := sympy.S("x")
	e := sympy.AddOf(x, x, sympy.MulOf(sympy.N(2), x))
	assert.Equal(t, "4*x", e.String())

	// Opposite terms vanish entirely.
	zero := sympy.AddOf(x, sympy.MulOf(sympy.N(-1), x))
	assert.True(t, zero.Equal(sympy.N(0)))

	// Constants fold into a single trailing term.
	mixed := sympy.AddOf(sympy.N(1), x, sympy.N(2))
	assert.Equal(t, "x + 3", mixed.String())
}

func TestMulCombinesPowers(t *testing.T) {
	x := sympy.S("x")
	sq := sympy.MulOf(x, x)
	assert.Equal(t, "x^2", sq.String())

	cancel := sympy.MulOf(x, sympy.PowOf(x, sympy.N(-1)))
	assert.True(t, cancel.Equal(sympy.N(1)))

	zero := sympy.MulOf(sympy.N(0), x)
	assert.True(t, zero.Equal(sympy.N(0)))
}

func TestPowFolding(t *testing.T) {
	x := sympy.S("x")
	assert.True(t, sympy.PowOf(sympy.N(2), sympy.N(10)).Equal(sympy.N(1024)))
	assert.True(t, sympy.PowOf(sympy.N(2), sympy.N(-2)).Equal(sympy.F(1, 4)))
	assert.True(t, sympy.PowOf(x, sympy.N(0)).Equal(sympy.N(1)))
	assert.True(t, sympy.PowOf(x, sympy.N(1)).Equal(x))

	nested := sympy.PowOf(sympy.PowOf(x, sympy.N(2)), sympy.N(3))
	assert.Equal(t, "x^6", nested.String())
}

func TestFuncRules(t *testing.T) {
	x := sympy.S("x")
	assert.True(t, sympy.FuncOf("ln", sympy.FuncOf("exp", x)).Equal(x))
	assert.True(t, sympy.FuncOf("exp", sympy.FuncOf("ln", x)).Equal(x))
	assert.True(t, sympy.FuncOf("ln", sympy.N(1)).Equal(sympy.N(0)))
	assert.True(t, sympy.FuncOf("exp", sympy.N(0)).Equal(sympy.N(1)))

	// |−3x| = |3x|
	abs := sympy.FuncOf("abs", sympy.MulOf(sympy.N(-3), x))
	assert.Equal(t, "abs(3*x)", abs.String())
}

func TestDegreeAndPolyCoeffs(t *testing.T) {
	x := sympy.S("x")
	// 5x^3 + 2x^2 - x + 7
	poly := sympy.AddOf(
		sympy.MulOf(sympy.N(5), sympy.PowOf(x, sympy.N(3))),
		sympy.MulOf(sympy.N(2), sympy.PowOf(x, sympy.N(2))),
		sympy.MulOf(sympy.N(-1), x),
		sympy.N(7),
	)
	assert.Equal(t, 3, sympy.Degree(poly, "x"))
	assert.Equal(t, 0, sympy.Degree(sympy.N(4), "x"))
	assert.Equal(t, -1, sympy.Degree(sympy.FuncOf("sin", x), "x"))

	coeffs := sympy.PolyCoeffs(poly, "x")
	require.Contains(t, coeffs, 3)
	assert.True(t, coeffs[3].Equal(sympy.N(5)))
	assert.True(t, coeffs[2].Equal(sympy.N(2)))
	assert.True(t, coeffs[1].Equal(sympy.N(-1)))
	assert.True(t, coeffs[0].Equal(sympy.N(7)))

	// Symbolic coefficients survive.
	ax := sympy.MulOf(sympy.S("a"), x)
	sym := sympy.PolyCoeffs(ax, "x")
	assert.Equal(t, "a", sym[1].String())
}

func TestFreeSymbols(t *testing.T) {
	e := sympy.AddOf(
		sympy.MulOf(sympy.S("x"), sympy.S("y")),
		sympy.FuncOf("sin", sympy.S("z")),
	)
	syms := sympy.FreeSymbols(e)
	assert.Len(t, syms, 3)
	assert.Contains(t, syms, "x")
	assert.Contains(t, syms, "y")
	assert.Contains(t, syms, "z")
}
