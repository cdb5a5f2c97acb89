package latexexpr

import "fmt"

// InvalidOperationError reports an Operation constructed with an
// unrecognized type, or with an argument count that does not match the
// type's arity.
type InvalidOperationError struct {
	Type  OpType
	NArgs int
}

func (e *InvalidOperationError) Error() string {
	if !isSupported(e.Type) {
		return fmt.Sprintf("latexexpr: operation %q is not a supported operation", string(e.Type))
	}
	return fmt.Sprintf("latexexpr: operation %q does not accept %d argument(s)", string(e.Type), e.NArgs)
}

// InvalidOperandError reports an Operation argument that is neither a
// Node nor a plain number.
type InvalidOperandError struct {
	Value any
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("latexexpr: wrong argument type %T in Operation constructor", e.Value)
}

// SymbolicValueError reports a numeric evaluation of a node whose tree
// still contains symbolic (value-less) variables. Check IsSymbolic
// before evaluating, or match this error with errors.As.
type SymbolicValueError struct {
	Name string
}

func (e *SymbolicValueError) Error() string {
	if e.Name == "" {
		return "latexexpr: unknown result of symbolic expression"
	}
	return fmt.Sprintf("latexexpr: unknown result of symbolic variable %s", e.Name)
}
