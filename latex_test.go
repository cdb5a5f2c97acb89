package latexexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	latexexpr "github.com/youandvern/latexexpr-efficalc"
)

func TestToLatexVariableCommands(t *testing.T) {
	s, err := latexexpr.ToLatexVariable("MYV", "3.45", latexexpr.CmdDef)
	require.NoError(t, err)
	assert.Equal(t, `\def\MYV{3.45}`, s)

	s, err = latexexpr.ToLatexVariable("MYV", "3.45", latexexpr.CmdNewcommand)
	require.NoError(t, err)
	assert.Equal(t, `\newcommand{\MYV}{3.45}`, s)

	s, err = latexexpr.ToLatexVariable("MYV", "3.45", latexexpr.CmdRenewcommand)
	require.NoError(t, err)
	assert.Equal(t, `\renewcommand{\MYV}{3.45}`, s)

	_, err = latexexpr.ToLatexVariable("MYV", "3.45", latexexpr.Command("undef"))
	require.Error(t, err)
}

func TestVariableToLatexVariable(t *testing.T) {
	v := latexexpr.New("a_{22}", 3.45, "mm")

	s, err := v.ToLatexVariableFloat("AXX", latexexpr.CmdDef)
	require.NoError(t, err)
	assert.Equal(t, `\def\AXX{3.45}`, s)

	s, err = v.ToLatexVariableStr("AXX", latexexpr.CmdDef)
	require.NoError(t, err)
	assert.Equal(t, `\def\AXX{ 3.45}`, s)

	s, err = v.ToLatexVariableValUnit("AXX", latexexpr.CmdDef)
	require.NoError(t, err)
	assert.Equal(t, `\def\AXX{ 3.45 \ \mathrm{mm}}`, s)

	s, err = v.ToLatexVariableAll("AXX", latexexpr.CmdDef)
	require.NoError(t, err)
	assert.Equal(t, `\def\AXX{a_{22} =  3.45 \ \mathrm{mm}}`, s)

	_, err = v.ToLatexVariable("AXX", latexexpr.What("bogus"), latexexpr.CmdDef)
	require.Error(t, err)
}

func TestVariableToLatexVariableSymbolic(t *testing.T) {
	v := latexexpr.NewSymbolic("P", "kN")
	_, err := v.ToLatexVariableFloat("PX", latexexpr.CmdDef)
	var symErr *latexexpr.SymbolicValueError
	require.ErrorAs(t, err, &symErr)
}

func TestExpressionToLatexVariable(t *testing.T) {
	h := latexexpr.New("H", 3.25, "m")
	w := latexexpr.New("W", 5.63, "m")
	e := latexexpr.NewExpression("E", latexexpr.Add(h, w), "m")

	s, err := e.ToLatexVariableFloat("EE", latexexpr.CmdDef)
	require.NoError(t, err)
	assert.Equal(t, `\def\EE{8.879999999999999}`, s)

	// The symbolic form of an expression is its own name.
	s, err = e.ToLatexVariable("EE", latexexpr.WhatSymbolic, latexexpr.CmdDef)
	require.NoError(t, err)
	assert.Equal(t, `\def\EE{{E}}`, s)

	s, err = e.ToLatexVariable("EE", latexexpr.WhatSubstituted, latexexpr.CmdDef)
	require.NoError(t, err)
	assert.Equal(t, `\def\EE{ 8.88}`, s)

	s, err = e.ToLatexVariable("EE", latexexpr.WhatAll, latexexpr.CmdNewcommand)
	require.NoError(t, err)
	assert.Equal(t,
		`\newcommand{\EE}{E = {H} + {W} =  3.25 \ \mathrm{m} +  5.63 \ \mathrm{m} =  8.88 \ \mathrm{m}}`,
		s)
}
