package latexexpr

// Builder functions, one per operator. Arguments may be any node kind
// or plain numeric literals, which are promoted to anonymous leaves.
// Builders validate tag and arity through NewOperation and panic with
// *InvalidOperationError / *InvalidOperandError on misuse: malformed
// trees are programmer errors and fail fast at composition time.

// Add returns the sum a0 + a1 + ... (two or more operands).
func Add(args ...any) *Operation { return mustOperation(OpAdd, args...) }

// Plus is an alias for Add.
func Plus(args ...any) *Operation { return Add(args...) }

// Sub returns the difference a - b.
func Sub(a, b any) *Operation { return mustOperation(OpSub, a, b) }

// Minus is an alias for Sub.
func Minus(a, b any) *Operation { return Sub(a, b) }

// Mul returns the product a0 \cdot a1 \cdot ... (two or more operands).
func Mul(args ...any) *Operation { return mustOperation(OpMul, args...) }

// Times is an alias for Mul.
func Times(args ...any) *Operation { return Mul(args...) }

// Div returns the fraction a/b, rendered \frac{a}{b}.
func Div(a, b any) *Operation { return mustOperation(OpDiv, a, b) }

// FloorDiv returns the floored fraction a//b.
func FloorDiv(a, b any) *Operation { return mustOperation(OpDiv2, a, b) }

// Neg returns (-a).
func Neg(a any) *Operation { return mustOperation(OpNeg, a) }

// Pos returns (+a), a sign-preserving wrap.
func Pos(a any) *Operation { return mustOperation(OpPos, a) }

// Abs returns |a|.
func Abs(a any) *Operation { return mustOperation(OpAbs, a) }

// Max returns max(a0, a1, ...) (two or more operands).
func Max(args ...any) *Operation { return mustOperation(OpMax, args...) }

// Min returns min(a0, a1, ...) (two or more operands).
func Min(args ...any) *Operation { return mustOperation(OpMin, args...) }

// Pow returns a raised to b.
func Pow(a, b any) *Operation { return mustOperation(OpPow, a, b) }

// Sqr returns a squared.
func Sqr(a any) *Operation { return mustOperation(OpSqr, a) }

// Root returns the index-th root of a, i.e. a^(1/index).
func Root(index, a any) *Operation { return mustOperation(OpRoot, index, a) }

// Sqrt returns the square root of a.
func Sqrt(a any) *Operation { return mustOperation(OpSqrt, a) }

// Sin returns sin(a); the argument is in radians.
func Sin(a any) *Operation { return mustOperation(OpSin, a) }

// Cos returns cos(a); the argument is in radians.
func Cos(a any) *Operation { return mustOperation(OpCos, a) }

// Tan returns tan(a); the argument is in radians.
func Tan(a any) *Operation { return mustOperation(OpTan, a) }

// Sinh returns the hyperbolic sine of a.
func Sinh(a any) *Operation { return mustOperation(OpSinh, a) }

// Cosh returns the hyperbolic cosine of a.
func Cosh(a any) *Operation { return mustOperation(OpCosh, a) }

// Tanh returns the hyperbolic tangent of a.
func Tanh(a any) *Operation { return mustOperation(OpTanh, a) }

// Exp returns e raised to a.
func Exp(a any) *Operation { return mustOperation(OpExp, a) }

// Log returns the base-a logarithm of b, i.e. ln(b)/ln(a).
func Log(a, b any) *Operation { return mustOperation(OpLog, a, b) }

// Ln returns the natural logarithm of a.
func Ln(a any) *Operation { return mustOperation(OpLn, a) }

// Log10 returns the decadic logarithm of a.
func Log10(a any) *Operation { return mustOperation(OpLog10, a) }

// Brackets wraps a in round brackets. The wrap is purely visual; the
// numeric result passes through.
func Brackets(a any) *Operation { return mustOperation(OpRBrackets, a) }

// RBrackets is an alias for Brackets.
func RBrackets(a any) *Operation { return Brackets(a) }

// SBrackets wraps a in square brackets.
func SBrackets(a any) *Operation { return mustOperation(OpSBrackets, a) }

// CBrackets wraps a in curly brackets.
func CBrackets(a any) *Operation { return mustOperation(OpCBrackets, a) }

// ABrackets wraps a in angle brackets.
func ABrackets(a any) *Operation { return mustOperation(OpABrackets, a) }

// Identity wraps a without any visual or numeric effect.
func Identity(a any) *Operation { return mustOperation(OpNone, a) }
