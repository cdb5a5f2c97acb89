package latexexpr

import "math"

// Predefined constant leaves. Each call returns a fresh instance:
// variables are mutable by reference, and handing out shared singletons
// would let one tree's mutation leak into every other user of the
// constant.

// Zero returns a literal 0 leaf.
func Zero() *Variable { return Literal(0) }

// One returns a literal 1 leaf.
func One() *Variable { return Literal(1) }

// Two returns a literal 2 leaf.
func Two() *Variable { return Literal(2) }

// Euler returns a leaf for Euler's number, named \mathrm{e}.
func Euler() *Variable { return New(`\mathrm{e}`, math.E, "") }

// Pi returns a leaf for pi, named \pi.
func Pi() *Variable { return New(`\pi`, math.Pi, "") }
