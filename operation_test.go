package latexexpr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	latexexpr "github.com/youandvern/latexexpr-efficalc"
)

func TestOperationSymbolicTemplates(t *testing.T) {
	a := latexexpr.NewSymbolic("a", "")
	b := latexexpr.NewSymbolic("b", "")
	c := latexexpr.NewSymbolic("c", "")

	tests := []struct {
		name string
		op   *latexexpr.Operation
		want string
	}{
		{"add", latexexpr.Add(a, b), `{a} + {b}`},
		{"add nary", latexexpr.Add(a, b, c), `{a} + {b} + {c}`},
		{"sub", latexexpr.Sub(a, b), `{a} - {b}`},
		{"mul", latexexpr.Mul(a, b), `{a} \cdot {b}`},
		{"mul wraps sum", latexexpr.Mul(latexexpr.Add(a, b), c), `\left({a} + {b}\right) \cdot {c}`},
		{"mul wraps difference", latexexpr.Mul(latexexpr.Sub(a, b), c), `\left({a} - {b}\right) \cdot {c}`},
		{"div", latexexpr.Div(a, b), `\frac{ {a} }{ {b} }`},
		{"floordiv", latexexpr.FloorDiv(a, b), `\left \lfloor \frac{ {a} }{ {b} } \right \rfloor`},
		{"pow", latexexpr.Pow(a, b), `{\left( {a} \right)}^{ {b} }`},
		{"sqr", latexexpr.Sqr(a), `{a}^2`},
		{"root", latexexpr.Root(a, b), `\sqrt[ {a} ]{ {b} }`},
		{"sqrt", latexexpr.Sqrt(a), `\sqrt{ {a} }`},
		{"neg", latexexpr.Neg(a), `\left( - {a} \right)`},
		{"pos", latexexpr.Pos(a), `\left( + {a} \right)`},
		{"abs", latexexpr.Abs(a), `\left| {a} \right|`},
		{"max", latexexpr.Max(a, b, c), `\max{\left( {a}, {b}, {c} \right)}`},
		{"min", latexexpr.Min(a, b), `\min{\left( {a}, {b} \right)}`},
		{"sin", latexexpr.Sin(a), `\sin{\left( {a} \right)}`},
		{"cos", latexexpr.Cos(a), `\cos{\left( {a} \right)}`},
		{"tanh", latexexpr.Tanh(a), `\tanh{\left( {a} \right)}`},
		{"exp", latexexpr.Exp(a), `\mathrm{e}^{ {a} }`},
		{"log", latexexpr.Log(a, b), `\log_{ {a} }{ {b} }`},
		{"ln", latexexpr.Ln(a), `\ln{ {a} }`},
		{"log10", latexexpr.Log10(a), `\log_{10}{ {a} }`},
		{"round brackets", latexexpr.Brackets(a), `\left( {a} \right)`},
		{"square brackets", latexexpr.SBrackets(a), `\left[ {a} \right]`},
		{"curly brackets", latexexpr.CBrackets(a), `\left\{ {a} \right\}`},
		{"angle brackets", latexexpr.ABrackets(a), `\left\langle {a} \right\rangle`},
		{"identity", latexexpr.Identity(a), `{a}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.StrSymbolic())
			// Rendering is pure: a second call gives the same string.
			assert.Equal(t, tt.want, tt.op.StrSymbolic())
		})
	}
}

func TestOperationResults(t *testing.T) {
	a := latexexpr.New("a", 6, "")
	b := latexexpr.New("b", 4, "")

	tests := []struct {
		name string
		op   *latexexpr.Operation
		want float64
	}{
		{"add", latexexpr.Add(a, b), 10},
		{"add nary", latexexpr.Add(a, b, 2), 12},
		{"sub", latexexpr.Sub(a, b), 2},
		{"mul", latexexpr.Mul(a, b), 24},
		{"div", latexexpr.Div(a, b), 1.5},
		{"floordiv", latexexpr.FloorDiv(7, 2), 3},
		{"floordiv negative", latexexpr.FloorDiv(-7, 2), -4},
		{"pow", latexexpr.Pow(a, 2), 36},
		{"sqr", latexexpr.Sqr(b), 16},
		{"root", latexexpr.Root(3, 8), 2},
		{"sqrt", latexexpr.Sqrt(25), 5},
		{"neg", latexexpr.Neg(a), -6},
		{"pos", latexexpr.Pos(a), 6},
		{"abs", latexexpr.Abs(latexexpr.Neg(a)), 6},
		{"max", latexexpr.Max(a, b, 11), 11},
		{"min", latexexpr.Min(a, b, 11), 4},
		{"log", latexexpr.Log(2, 64), 6},
		{"log10", latexexpr.Log10(1000), 3},
		{"ln", latexexpr.Ln(math.E), 1},
		{"exp", latexexpr.Exp(0), 1},
		{"sin", latexexpr.Sin(0), 0},
		{"brackets pass through", latexexpr.Brackets(a), 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op.Result()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestOperationDomainErrors(t *testing.T) {
	_, err := latexexpr.Sqrt(-4).Result()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "square root of negative")

	_, err = latexexpr.Ln(0).Result()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-positive")

	_, err = latexexpr.Log(-2, 8).Result()
	require.Error(t, err)

	_, err = latexexpr.Log10(-1).Result()
	require.Error(t, err)
}

func TestDivisionByZeroFollowsFloats(t *testing.T) {
	got, err := latexexpr.Div(1, 0).Result()
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	got, err = latexexpr.Div(0, 0).Result()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestNewOperationValidation(t *testing.T) {
	a := latexexpr.New("a", 1, "")

	_, err := latexexpr.NewOperation(latexexpr.OpSub, a)
	var opErr *latexexpr.InvalidOperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, latexexpr.OpSub, opErr.Type)
	assert.Equal(t, 1, opErr.NArgs)

	_, err = latexexpr.NewOperation(latexexpr.OpNeg, a, a)
	require.ErrorAs(t, err, &opErr)

	_, err = latexexpr.NewOperation(latexexpr.OpAdd, a)
	require.ErrorAs(t, err, &opErr)

	_, err = latexexpr.NewOperation(latexexpr.OpType("bogus"), a)
	require.ErrorAs(t, err, &opErr)

	_, err = latexexpr.NewOperation(latexexpr.OpAdd, a, "not a number")
	var operandErr *latexexpr.InvalidOperandError
	require.ErrorAs(t, err, &operandErr)
}

func TestBuildersPanicOnMisuse(t *testing.T) {
	a := latexexpr.New("a", 1, "")
	assert.Panics(t, func() { latexexpr.Add(a) })
	assert.Panics(t, func() { latexexpr.Max(a) })
	assert.Panics(t, func() { latexexpr.Sub(a, struct{}{}) })
}

func TestLiteralPromotion(t *testing.T) {
	a := latexexpr.New("a", 5, "")

	sum := latexexpr.Add(a, 2)
	got, err := sum.Result()
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)
	assert.Equal(t, `{a} + {2}`, sum.StrSymbolic())

	// Floats get the compact literal name.
	prod := latexexpr.Mul(a, 2.5)
	assert.Equal(t, `{a} \cdot {2.5}`, prod.StrSymbolic())

	// Numeric first argument keeps its position.
	quot := latexexpr.Div(2, latexexpr.Add(a, a))
	assert.Equal(t, `\frac{ {2} }{ {a} + {a} }`, quot.StrSymbolic())
	got, err = quot.Result()
	require.NoError(t, err)
	assert.Equal(t, 0.2, got)
}

func TestRightDivisionByExpression(t *testing.T) {
	a := latexexpr.New("a", 10, "")
	b := latexexpr.New("b", 2, "")
	c := latexexpr.NewExpression("c", latexexpr.Div(latexexpr.Sub(a, b), 4), "")

	q := latexexpr.Div(2, c)
	got, err := q.Result()
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
	assert.Equal(t, `\frac{ {2} }{ {c} }`, q.StrSymbolic())
}

func TestOperationSymbolicPropagation(t *testing.T) {
	sym := latexexpr.NewSymbolic("y", "")
	val := latexexpr.New("z", 2, "")

	op := latexexpr.Add(sym, val)
	assert.True(t, op.IsSymbolic())
	assert.Equal(t, op.StrSymbolic(), op.String())

	r, err := op.StrResult()
	require.NoError(t, err)
	assert.Equal(t, op.StrSymbolic(), r)

	sym.SetValue(3)
	assert.False(t, op.IsSymbolic())
	got, err := op.Result()
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
	assert.Equal(t, `{y} + {z} =  3 \ \mathrm{} +  2 \ \mathrm{}`, op.String())
}

func TestOperationToVariableSnapshot(t *testing.T) {
	x := latexexpr.New("x", 3, "")
	op := latexexpr.Sqr(x)

	frozen, err := op.ToVariable("x_{sq}")
	require.NoError(t, err)
	got, err := frozen.Result()
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)

	x.SetValue(10)
	got, err = frozen.Result()
	require.NoError(t, err)
	assert.Equal(t, 9.0, got, "snapshot must not follow later mutations")

	live, err := op.Result()
	require.NoError(t, err)
	assert.Equal(t, 100.0, live)
}

func TestOperationStrResultAs(t *testing.T) {
	op := latexexpr.Sub(1, 6)
	s, err := op.StrResultAs("%.2f", 0)
	require.NoError(t, err)
	assert.Equal(t, `\left(-5.00\right)`, s)

	s, err = op.StrResultAs("%.1f", 3)
	require.NoError(t, err)
	assert.Equal(t, `\left( -0.0 \cdot 10^{3} \right)`, s)
}
