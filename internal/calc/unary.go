package calc

import "math"

// UnaryFunc names a one-argument function applied to the whole buffer.
type UnaryFunc string

const (
	Sqrt       UnaryFunc = "sqrt"
	Square     UnaryFunc = "square"
	Reciprocal UnaryFunc = "reciprocal"
	Negate     UnaryFunc = "negate"
)

// UnaryFuncs lists the supported functions in keypad order.
var UnaryFuncs = []UnaryFunc{Sqrt, Square, Reciprocal, Negate}

// ParseUnary maps a name to its UnaryFunc.
func ParseUnary(name string) (UnaryFunc, bool) {
	fn := UnaryFunc(name)
	return fn, fn.Valid()
}

// Valid reports whether fn is one of UnaryFuncs.
func (fn UnaryFunc) Valid() bool {
	switch fn {
	case Sqrt, Square, Reciprocal, Negate:
		return true
	}
	return false
}

// Apply computes fn(x). The reciprocal of zero is NaN rather than an
// infinity; square roots of negative numbers are NaN.
func (fn UnaryFunc) Apply(x float64) float64 {
	switch fn {
	case Sqrt:
		return math.Sqrt(x)
	case Square:
		return x * x
	case Reciprocal:
		if x == 0 {
			return math.NaN()
		}
		return 1 / x
	case Negate:
		return -x
	}
	return math.NaN()
}
