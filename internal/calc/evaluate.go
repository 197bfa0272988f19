package calc

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidExpression means the text failed the character whitelist.
	ErrInvalidExpression = errors.New("invalid expression")

	// ErrEvaluation means the text passed the whitelist but could not be
	// computed to a finite number.
	ErrEvaluation = errors.New("evaluation failed")

	// ErrSyntax is an ErrEvaluation raised by the parser.
	ErrSyntax = fmt.Errorf("%w: syntax error", ErrEvaluation)

	// ErrDivisionByZero is an ErrEvaluation raised when a divisor is zero.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrEvaluation)
)

// DefaultPrecision is the number of significant digits kept for
// non-integer results.
const DefaultPrecision = 12

// Evaluator computes buffers and formats results with a fixed precision.
// The zero value uses DefaultPrecision.
type Evaluator struct {
	Precision int
}

// NewEvaluator returns an Evaluator that rounds to precision significant
// digits. Values outside 1..17 fall back to DefaultPrecision.
func NewEvaluator(precision int) Evaluator {
	if precision < 1 || precision > 17 {
		precision = DefaultPrecision
	}
	return Evaluator{Precision: precision}
}

func (e Evaluator) precision() int {
	if e.Precision < 1 || e.Precision > 17 {
		return DefaultPrecision
	}
	return e.Precision
}

// Format renders v for display.
func (e Evaluator) Format(v float64) string {
	return formatPrecision(v, e.precision())
}

// Evaluate computes the buffer and returns the formatted result. An empty or
// blank buffer is returned unchanged. On failure the returned buffer is
// ErrorBuffer and err wraps ErrInvalidExpression or ErrEvaluation.
func (e Evaluator) Evaluate(b Buffer) (Buffer, error) {
	expr := strings.TrimSpace(string(b))
	if expr == "" {
		return b, nil
	}
	v, err := Eval(expr)
	if err != nil {
		return ErrorBuffer, err
	}
	return Buffer(e.Format(v)), nil
}

// Number computes the buffer as a value for unary functions and memory
// operations. The empty buffer, displayed as "0", counts as 0.
func (e Evaluator) Number(b Buffer) (float64, error) {
	expr := strings.TrimSpace(string(b))
	if expr == "" {
		return 0, nil
	}
	return Eval(expr)
}

// ApplyUnary computes the buffer, applies fn and returns the formatted result.
// NaN and infinite results are displayed as such; only a buffer that does not
// compute, or an unknown fn, yields ErrorBuffer.
func (e Evaluator) ApplyUnary(b Buffer, fn UnaryFunc) (Buffer, error) {
	if !fn.Valid() {
		return ErrorBuffer, fmt.Errorf("%w: unknown function %q", ErrEvaluation, string(fn))
	}
	x, err := e.Number(b)
	if err != nil {
		return ErrorBuffer, err
	}
	return Buffer(e.Format(fn.Apply(x))), nil
}

// Eval preprocesses, validates, parses and computes expr.
func Eval(expr string) (float64, error) {
	prepared := Preprocess(expr)
	if !Validate(prepared) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExpression, expr)
	}
	return Compute(prepared)
}

// Compute parses and computes ASCII arithmetic without the whitelist step.
// Results that are NaN or infinite are reported as ErrEvaluation.
func Compute(expr string) (float64, error) {
	n, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	v, err := n.Eval()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: result is not a finite number", ErrEvaluation)
	}
	return v, nil
}

// Evaluate computes b with the default precision.
func Evaluate(b Buffer) (Buffer, error) {
	return Evaluator{}.Evaluate(b)
}

// ApplyUnary applies fn to b with the default precision.
func ApplyUnary(b Buffer, fn UnaryFunc) (Buffer, error) {
	return Evaluator{}.ApplyUnary(b, fn)
}
