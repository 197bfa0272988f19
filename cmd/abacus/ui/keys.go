package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"abacus/internal/calc"
	"abacus/internal/calculator"
)

// KeyMap binds keyboard keys to keypad actions. Digits, operators and
// parentheses are typed directly and are not listed here.
type KeyMap struct {
	Equals     key.Binding
	Delete     key.Binding
	Clear      key.Binding
	Sqrt       key.Binding
	Square     key.Binding
	Reciprocal key.Binding
	Negate     key.Binding
	MemAdd     key.Binding
	MemSub     key.Binding
	MemRecall  key.Binding
	MemClear   key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Activate   key.Binding
	Theme      key.Binding
	History    key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Equals:     key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter/=", "equals")),
		Delete:     key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Sqrt:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "√x")),
		Square:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "x²")),
		Reciprocal: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "1/x")),
		Negate:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "±")),
		MemAdd:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "M+")),
		MemSub:     key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "M-")),
		MemRecall:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "MR")),
		MemClear:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "MC")),
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Activate:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "press focused")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		History:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "history up")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "history down")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Theme, k.History, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Equals, k.Delete, k.Clear},
		{k.Sqrt, k.Square, k.Reciprocal, k.Negate},
		{k.MemAdd, k.MemSub, k.MemRecall, k.MemClear},
		{k.Up, k.Down, k.Left, k.Right, k.Activate},
		{k.Theme, k.History, k.ScrollUp, k.ScrollDown, k.Help, k.Quit},
	}
}

type binding struct {
	key   key.Binding
	event string
}

// commands maps command bindings onto calculator events.
func (k KeyMap) commands() []binding {
	return []binding{
		{k.Equals, calculator.TagEquals},
		{k.Delete, calculator.TagDelete},
		{k.Clear, calculator.TagClear},
		{k.Sqrt, string(calc.Sqrt)},
		{k.Square, string(calc.Square)},
		{k.Reciprocal, string(calc.Reciprocal)},
		{k.Negate, string(calc.Negate)},
		{k.MemAdd, calculator.TagMemAdd},
		{k.MemSub, calculator.TagMemSub},
		{k.MemRecall, calculator.TagMemRecall},
		{k.MemClear, calculator.TagMemClear},
	}
}
