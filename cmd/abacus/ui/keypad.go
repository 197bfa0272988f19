package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"abacus/internal/calc"
	"abacus/internal/calculator"
)

// ButtonKind selects the key style.
type ButtonKind int

const (
	KindDigit ButtonKind = iota
	KindOperator
	KindCommand
)

// Button is one keypad key: the label shown and the event it sends.
type Button struct {
	Label string
	Event string
	Kind  ButtonKind
}

func digit(s string) Button    { return Button{Label: s, Event: s, Kind: KindDigit} }
func operator(s string) Button { return Button{Label: s, Event: s, Kind: KindOperator} }
func command(label, event string) Button {
	return Button{Label: label, Event: event, Kind: KindCommand}
}

// DefaultLayout is the keypad grid. Every row has the same width.
func DefaultLayout() [][]Button {
	return [][]Button{
		{
			command("MC", calculator.TagMemClear),
			command("MR", calculator.TagMemRecall),
			command("M+", calculator.TagMemAdd),
			command("M-", calculator.TagMemSub),
			command("C", calculator.TagClear),
		},
		{
			command("√", string(calc.Sqrt)),
			command("x²", string(calc.Square)),
			command("1/x", string(calc.Reciprocal)),
			command("±", string(calc.Negate)),
			command("⌫", calculator.TagDelete),
		},
		{digit("7"), digit("8"), digit("9"), operator("÷"), operator("(")},
		{digit("4"), digit("5"), digit("6"), operator("×"), operator(")")},
		{digit("1"), digit("2"), digit("3"), operator("−"), operator("^")},
		{digit("0"), digit("."), operator("%"), operator("+"), command("=", calculator.TagEquals)},
	}
}

// Keypad is the button grid with a focus cursor.
type Keypad struct {
	rows     [][]Button
	row, col int
}

// NewKeypad returns a keypad over rows with focus on the "5" key when present.
func NewKeypad(rows [][]Button) Keypad {
	k := Keypad{rows: rows}
	if r, c, ok := k.Find("5"); ok {
		k.row, k.col = r, c
	}
	return k
}

// Focused returns the button under the cursor.
func (k Keypad) Focused() Button {
	return k.rows[k.row][k.col]
}

// Move shifts the focus by dr rows and dc columns, clamped to the grid.
func (k *Keypad) Move(dr, dc int) {
	k.row = clamp(k.row+dr, 0, len(k.rows)-1)
	k.col = clamp(k.col+dc, 0, len(k.rows[k.row])-1)
}

// Find locates the button sending event.
func (k Keypad) Find(event string) (row, col int, ok bool) {
	for r, buttons := range k.rows {
		for c, b := range buttons {
			if b.Event == event {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// View renders the grid. The button sending flash, if any, is highlighted.
func (k Keypad) View(s Styles, flash string) string {
	lines := make([]string, 0, len(k.rows))
	for r, buttons := range k.rows {
		cells := make([]string, 0, len(buttons))
		for c, b := range buttons {
			style := s.Key
			switch b.Kind {
			case KindOperator:
				style = s.KeyOperator
			case KindCommand:
				style = s.KeyCommand
			}
			if r == k.row && c == k.col {
				style = s.KeyFocused
			}
			if flash != "" && b.Event == flash {
				style = s.KeyFlash
			}
			cells = append(cells, style.Render(b.Label))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
