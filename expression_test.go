package latexexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	latexexpr "github.com/youandvern/latexexpr-efficalc"
)

func TestExpressionReportChain(t *testing.T) {
	h := latexexpr.New("H", 3.25, "m")
	w := latexexpr.New("W", 5.63, "m")

	e := latexexpr.NewExpression("E", latexexpr.Add(h, w), "m")
	assert.Equal(t,
		`E = {H} + {W} =  3.25 \ \mathrm{m} +  5.63 \ \mathrm{m} =  8.88 \ \mathrm{m}`,
		e.String())

	assert.Equal(t, "{E}", e.StrSymbolic())
	got, err := e.Result()
	require.NoError(t, err)
	assert.InDelta(t, 8.88, got, 1e-9)

	s, err := e.StrResult()
	require.NoError(t, err)
	assert.Equal(t, " 8.88", s)
	assert.Equal(t, " 8.88", e.StrSubstituted())
}

func TestExpressionWrapsVariableChild(t *testing.T) {
	v := latexexpr.New("a_{22}", 3.45, "mm")
	e := latexexpr.NewExpression("E_1", v, "mm")
	// The leaf gets an identity substitution step so the chain is
	// always name = symbolic = substituted = result unit.
	assert.Equal(t,
		`E_1 = {a_{22}} =  3.45 \ \mathrm{mm} =  3.45 \ \mathrm{mm}`,
		e.String())
}

func TestExpressionSymbolic(t *testing.T) {
	p := latexexpr.NewSymbolic("P", "kN")
	l := latexexpr.New("L", 6, "m")
	e := latexexpr.NewExpression("M_{max}", latexexpr.Div(latexexpr.Mul(p, l), 4), "kNm")

	assert.True(t, e.IsSymbolic())
	assert.Equal(t, `M_{max} = \frac{ {P} \cdot {L} }{ {4} }`, e.String())

	// Partial substitution: valued leaves show numbers, symbolic ones
	// their names (with the unit tag, like any substituted leaf).
	s, err := e.StrResult()
	require.NoError(t, err)
	assert.Equal(t, `\frac{ {P} \ \mathrm{kN} \cdot  6 \ \mathrm{m} }{  4 \ \mathrm{} }`, s)

	_, err = e.Result()
	var symErr *latexexpr.SymbolicValueError
	require.ErrorAs(t, err, &symErr)

	p.SetValue(120)
	assert.False(t, e.IsSymbolic())
	got, err := e.Result()
	require.NoError(t, err)
	assert.Equal(t, 180.0, got)
	assert.Equal(t,
		`M_{max} = \frac{ {P} \cdot {L} }{ {4} } = \frac{  120 \ \mathrm{kN} \cdot  6 \ \mathrm{m} }{  4 \ \mathrm{} } =  180 \ \mathrm{kNm}`,
		e.String())
}

func TestExpressionSharedLeafMutation(t *testing.T) {
	x := latexexpr.New("x", 2, "")
	left := latexexpr.NewExpression("L_1", latexexpr.Sqr(x), "")
	right := latexexpr.NewExpression("L_2", latexexpr.Add(x, 1), "")

	l1, err := left.Result()
	require.NoError(t, err)
	r1, err := right.Result()
	require.NoError(t, err)
	assert.Equal(t, 4.0, l1)
	assert.Equal(t, 3.0, r1)

	x.SetValue(5)
	l2, err := left.Result()
	require.NoError(t, err)
	r2, err := right.Result()
	require.NoError(t, err)
	assert.Equal(t, 25.0, l2)
	assert.Equal(t, 6.0, r2)
}

func TestExpressionFormatFixedAtWrapTime(t *testing.T) {
	x := latexexpr.New("x", 3, "")
	e := latexexpr.NewExpression("E", latexexpr.Identity(x), "")
	assert.Equal(t, "%.4g", e.Format)

	// The format stays as derived at construction even after the
	// child's value changes; the negative branch makes it observable.
	x.SetValue(-5)
	s, err := e.StrResult()
	require.NoError(t, err)
	assert.Equal(t, `\left(-5\right)`, s)

	withFmt := latexexpr.NewExpression("F", latexexpr.Identity(x), "", latexexpr.WithFormat("%.2f"))
	s, err = withFmt.StrResult()
	require.NoError(t, err)
	assert.Equal(t, `\left(-5.00\right)`, s)
}

func TestExpressionOpReplaceable(t *testing.T) {
	x := latexexpr.New("x", 2, "")
	e := latexexpr.NewExpression("E", latexexpr.Add(x, x), "")
	got, err := e.Result()
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	e.Op = latexexpr.Mul(2, x)
	got, err = e.Result()
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)
	assert.Equal(t, `{2} \cdot {x}`, e.Op.StrSymbolic())
}

func TestExpressionToVariable(t *testing.T) {
	h := latexexpr.New("H", 3, "m")
	w := latexexpr.New("W", 4, "m")
	e := latexexpr.NewExpression("A", latexexpr.Mul(h, w), "m^2")

	frozen, err := e.ToVariable("")
	require.NoError(t, err)
	assert.Equal(t, "A", frozen.Name)
	assert.Equal(t, "m^2", frozen.Unit)
	got, err := frozen.Result()
	require.NoError(t, err)
	assert.Equal(t, 12.0, got)

	h.SetValue(100)
	got, err = frozen.Result()
	require.NoError(t, err)
	assert.Equal(t, 12.0, got, "frozen leaf must not follow the tree")

	renamed, err := e.ToVariable("A_0")
	require.NoError(t, err)
	assert.Equal(t, "A_0", renamed.Name)

	sym := latexexpr.NewExpression("S", latexexpr.Identity(latexexpr.NewSymbolic("u", "")), "")
	leaf, err := sym.ToVariable("")
	require.NoError(t, err)
	assert.True(t, leaf.IsSymbolic())
}

func TestExpressionDomainErrorFallback(t *testing.T) {
	a := latexexpr.New("a", -4, "")
	e := latexexpr.NewExpression("S", latexexpr.Sqrt(a), "")

	_, err := e.Result()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "square root of negative")

	// String degrades to the substituted chain instead of failing.
	assert.Equal(t, `S = \sqrt{ {a} } = \sqrt{ \left( -4 \right) \ \mathrm{} }`, e.String())
}

func TestExpressionNestedAsChild(t *testing.T) {
	x := latexexpr.New("x", 3, "")
	inner := latexexpr.NewExpression("I", latexexpr.Sqr(x), "")
	outer := latexexpr.NewExpression("O", latexexpr.Add(inner, 1), "")

	got, err := outer.Result()
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
	// The nested expression substitutes as its bare result.
	assert.Equal(t, `O = {I} + {1} =  9 +  1 \ \mathrm{} =  10 \ \mathrm{}`, outer.String())
}
