// Package calculator owns the expression buffer and maps keypad events onto
// evaluator, memory and history operations.
//
// A Calculator is not safe for concurrent use. It is meant to be owned by one
// event loop (the TUI update loop or a single CLI command).
package calculator

import (
	"strings"

	"abacus/internal/calc"
	"abacus/internal/logging"
	"abacus/internal/memory"
	"abacus/internal/store"
)

// HistoryRecorder stores successful evaluations.
type HistoryRecorder interface {
	AppendHistory(expression, result string) (store.HistoryEntry, error)
}

// Calculator holds the single buffer and pushes its display text to a
// callback after every operation.
type Calculator struct {
	buf       calc.Buffer
	eval      calc.Evaluator
	memory    *memory.Register
	history   HistoryRecorder
	onDisplay func(string)
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithEvaluator sets the evaluator (and so the display precision).
func WithEvaluator(e calc.Evaluator) Option {
	return func(c *Calculator) { c.eval = e }
}

// WithMemory attaches a memory register. Without one, memory events are no-ops.
func WithMemory(r *memory.Register) Option {
	return func(c *Calculator) { c.memory = r }
}

// WithHistory records every successful evaluation in h.
func WithHistory(h HistoryRecorder) Option {
	return func(c *Calculator) { c.history = h }
}

// WithDisplay registers the display callback.
func WithDisplay(fn func(string)) Option {
	return func(c *Calculator) { c.onDisplay = fn }
}

// WithBuffer sets the starting buffer.
func WithBuffer(b calc.Buffer) Option {
	return func(c *Calculator) { c.buf = b }
}

// New returns a Calculator with an empty buffer.
func New(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Buffer returns the current buffer.
func (c *Calculator) Buffer() calc.Buffer {
	return c.buf
}

// Display returns the text currently shown.
func (c *Calculator) Display() string {
	return c.buf.Display()
}

// SetEvaluator swaps the evaluator, e.g. after a config reload.
func (c *Calculator) SetEvaluator(e calc.Evaluator) {
	c.eval = e
}

// OnDisplay replaces the display callback.
func (c *Calculator) OnDisplay(fn func(string)) {
	c.onDisplay = fn
}

func (c *Calculator) set(b calc.Buffer) {
	c.buf = b
	if c.onDisplay != nil {
		c.onDisplay(c.buf.Display())
	}
}

// Press dispatches one event: a tag from Tags, a unary function name, or a
// literal token to append.
func (c *Calculator) Press(event string) {
	logging.CalcDebug("press %q (buffer %q)", event, c.buf)

	switch event {
	case TagClear:
		c.Clear()
	case TagDelete:
		c.Delete()
	case TagEquals:
		c.Evaluate()
	case TagMemClear:
		c.MemoryClear()
	case TagMemRecall:
		c.MemoryRecall()
	case TagMemAdd:
		c.MemoryAdd()
	case TagMemSub:
		c.MemorySub()
	default:
		if fn, ok := calc.ParseUnary(event); ok {
			c.ApplyUnary(fn)
			return
		}
		c.Append(event)
	}
}

// Append adds a token to the buffer.
func (c *Calculator) Append(token string) {
	c.set(c.buf.Append(token))
}

// Delete removes the last character.
func (c *Calculator) Delete() {
	c.set(c.buf.Delete())
}

// Clear empties the buffer.
func (c *Calculator) Clear() {
	c.set(c.buf.Clear())
}

// Evaluate replaces the buffer with its value, or "Error".
func (c *Calculator) Evaluate() {
	expr := strings.TrimSpace(string(c.buf))
	next, err := c.eval.Evaluate(c.buf)
	if err != nil {
		logging.Calc("evaluate %q failed: %v", expr, err)
		c.set(next)
		return
	}
	c.set(next)
	if expr == "" || c.history == nil {
		return
	}
	if _, err := c.history.AppendHistory(expr, string(next)); err != nil {
		logging.Get(logging.CategoryCalc).Warn("history not recorded: %v", err)
	}
}

// ApplyUnary replaces the buffer with fn applied to its value.
func (c *Calculator) ApplyUnary(fn calc.UnaryFunc) {
	next, err := c.eval.ApplyUnary(c.buf, fn)
	if err != nil {
		logging.Calc("%s(%q) failed: %v", fn, c.buf, err)
	}
	c.set(next)
}

// MemoryAdd adds the buffer's value to the register.
func (c *Calculator) MemoryAdd() {
	c.memoryUpdate((*memory.Register).Add)
}

// MemorySub subtracts the buffer's value from the register.
func (c *Calculator) MemorySub() {
	c.memoryUpdate((*memory.Register).Sub)
}

func (c *Calculator) memoryUpdate(apply func(*memory.Register, float64)) {
	if c.memory == nil {
		c.set(c.buf)
		return
	}
	v, err := c.eval.Number(c.buf)
	if err != nil {
		logging.Calc("memory update with %q failed: %v", c.buf, err)
		c.set(calc.ErrorBuffer)
		return
	}
	apply(c.memory, v)
	c.set(c.buf)
}

// MemoryRecall loads the register into the buffer. An unreadable register
// leaves the buffer unchanged.
func (c *Calculator) MemoryRecall() {
	if c.memory == nil {
		c.set(c.buf)
		return
	}
	v, ok := c.memory.Recall()
	if !ok {
		c.set(c.buf)
		return
	}
	c.set(calc.Buffer(c.eval.Format(v)))
}

// MemoryClear resets the register.
func (c *Calculator) MemoryClear() {
	if c.memory != nil {
		c.memory.Clear()
	}
	c.set(c.buf)
}
