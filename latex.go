package latexexpr

import (
	"fmt"
	"strconv"
)

// Command selects the LaTeX declaration a variable export produces.
type Command string

const (
	CmdDef          Command = "def"
	CmdNewcommand   Command = "newcommand"
	CmdRenewcommand Command = "renewcommand"
)

// What selects which rendering a node export places in the macro body.
type What string

const (
	WhatFloat       What = "float"   // raw numeric value
	WhatStr         What = "str"     // formatted result
	WhatValUnit     What = "valunit" // formatted result with unit
	WhatSymbolic    What = "symb"    // symbolic form (expressions only)
	WhatSubstituted What = "subst"   // substituted form
	WhatAll         What = "all"     // full report line
)

// ToLatexVariable emits a single-line LaTeX macro declaration binding
// name to body, using one of \def, \newcommand or \renewcommand.
//
//	ToLatexVariable("MYV", "3.45", CmdDef) // \def\MYV{3.45}
func ToLatexVariable(name, body string, command Command) (string, error) {
	switch command {
	case CmdDef:
		return fmt.Sprintf(`\def\%s{%s}`, name, body), nil
	case CmdNewcommand, CmdRenewcommand:
		return fmt.Sprintf(`\%s{\%s}{%s}`, command, name, body), nil
	}
	return "", fmt.Errorf("latexexpr: unknown latex command %q", string(command))
}

// ToLatexVariable exports the variable as a LaTeX macro declaration.
// Supported selectors: WhatFloat, WhatStr, WhatValUnit, WhatSubstituted
// and WhatAll (the latter two both emit the full report line, as the
// original did for leaves).
func (v *Variable) ToLatexVariable(name string, what What, command Command) (string, error) {
	var body string
	switch what {
	case WhatFloat:
		val, ok := v.Value()
		if !ok {
			return "", &SymbolicValueError{Name: v.Name}
		}
		body = strconv.FormatFloat(val, 'g', -1, 64)
	case WhatStr:
		body, _ = v.StrResult()
	case WhatValUnit:
		body, _ = v.StrResultWithUnit()
	case WhatSubstituted, WhatAll:
		body = v.String()
	default:
		return "", fmt.Errorf("latexexpr: unknown export selector %q", string(what))
	}
	return ToLatexVariable(name, body, command)
}

// ToLatexVariableFloat is ToLatexVariable with WhatFloat.
func (v *Variable) ToLatexVariableFloat(name string, command Command) (string, error) {
	return v.ToLatexVariable(name, WhatFloat, command)
}

// ToLatexVariableStr is ToLatexVariable with WhatStr.
func (v *Variable) ToLatexVariableStr(name string, command Command) (string, error) {
	return v.ToLatexVariable(name, WhatStr, command)
}

// ToLatexVariableValUnit is ToLatexVariable with WhatValUnit.
func (v *Variable) ToLatexVariableValUnit(name string, command Command) (string, error) {
	return v.ToLatexVariable(name, WhatValUnit, command)
}

// ToLatexVariableAll is ToLatexVariable with WhatAll.
func (v *Variable) ToLatexVariableAll(name string, command Command) (string, error) {
	return v.ToLatexVariable(name, WhatAll, command)
}

// ToLatexVariable exports the expression as a LaTeX macro declaration.
// All six selectors are supported.
func (e *Expression) ToLatexVariable(name string, what What, command Command) (string, error) {
	var body string
	switch what {
	case WhatFloat:
		r, err := e.Result()
		if err != nil {
			return "", err
		}
		body = strconv.FormatFloat(r, 'g', -1, 64)
	case WhatStr:
		s, err := e.StrResult()
		if err != nil {
			return "", err
		}
		body = s
	case WhatValUnit:
		s, err := e.StrResultWithUnit()
		if err != nil {
			return "", err
		}
		body = s
	case WhatSymbolic:
		body = e.StrSymbolic()
	case WhatSubstituted:
		body = e.StrSubstituted()
	case WhatAll:
		body = e.String()
	default:
		return "", fmt.Errorf("latexexpr: unknown export selector %q", string(what))
	}
	return ToLatexVariable(name, body, command)
}

// ToLatexVariableFloat is ToLatexVariable with WhatFloat.
func (e *Expression) ToLatexVariableFloat(name string, command Command) (string, error) {
	return e.ToLatexVariable(name, WhatFloat, command)
}

// ToLatexVariableStr is ToLatexVariable with WhatStr.
func (e *Expression) ToLatexVariableStr(name string, command Command) (string, error) {
	return e.ToLatexVariable(name, WhatStr, command)
}

// ToLatexVariableValUnit is ToLatexVariable with WhatValUnit.
func (e *Expression) ToLatexVariableValUnit(name string, command Command) (string, error) {
	return e.ToLatexVariable(name, WhatValUnit, command)
}

// ToLatexVariableAll is ToLatexVariable with WhatAll.
func (e *Expression) ToLatexVariableAll(name string, command Command) (string, error) {
	return e.ToLatexVariable(name, WhatAll, command)
}
