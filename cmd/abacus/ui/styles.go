// Package ui provides the keypad TUI for abacus: light/dark styles, the key
// map, the button grid and the bubbletea model.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"abacus/internal/theme"
)

// Color palette
var (
	// Light Mode Colors
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#101F38")
	LightPrimary    = lipgloss.Color("#101F38")
	LightAccent     = lipgloss.Color("#8BC34A")
	LightSecondary  = lipgloss.Color("#e1e4e8")
	LightMuted      = lipgloss.Color("#8a94a3")
	LightBorder     = lipgloss.Color("#dce0e5")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#141d2b")
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#8BC34A")
	DarkAccent     = lipgloss.Color("#2196F3")
	DarkSecondary  = lipgloss.Color("#1e2a3d")
	DarkMuted      = lipgloss.Color("#6b7a90")
	DarkBorder     = lipgloss.Color("#2a3850")
	DarkCard       = lipgloss.Color("#1a2536")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#FFC107")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeFor maps a stored preference onto a palette.
func ThemeFor(p theme.Preference) Theme {
	if p.IsDark() {
		return DarkTheme()
	}
	return LightTheme()
}

// GlamourStyle is the glamour standard style matching the palette.
func (t Theme) GlamourStyle() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style
	Panel  lipgloss.Style

	// Display line
	Display      lipgloss.Style
	DisplayError lipgloss.Style
	Indicator    lipgloss.Style

	// Keypad
	Key         lipgloss.Style
	KeyOperator lipgloss.Style
	KeyCommand  lipgloss.Style
	KeyFocused  lipgloss.Style
	KeyFlash    lipgloss.Style

	// History pane
	HistoryTitle  lipgloss.Style
	HistoryExpr   lipgloss.Style
	HistoryResult lipgloss.Style

	Muted lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	key := lipgloss.NewStyle().
		Width(6).
		Align(lipgloss.Center).
		Foreground(theme.Foreground).
		Background(theme.Secondary).
		Margin(0, 1, 0, 0)

	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(theme.Background).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginTop(1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Display: lipgloss.NewStyle().
			Width(34).
			Align(lipgloss.Right).
			Foreground(theme.Foreground).
			Background(theme.Card).
			Padding(0, 1).
			Bold(true),

		DisplayError: lipgloss.NewStyle().
			Width(34).
			Align(lipgloss.Right).
			Foreground(Destructive).
			Background(theme.Card).
			Padding(0, 1).
			Bold(true),

		Indicator: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Key: key,

		KeyOperator: key.
			Foreground(theme.Primary).
			Bold(true),

		KeyCommand: key.
			Foreground(theme.Muted),

		KeyFocused: key.
			Background(theme.Border).
			Underline(true),

		KeyFlash: key.
			Foreground(theme.Background).
			Background(theme.Accent).
			Bold(true),

		HistoryTitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		HistoryExpr: lipgloss.NewStyle().
			Foreground(theme.Muted),

		HistoryResult: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}
