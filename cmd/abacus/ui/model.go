package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"abacus/internal/calc"
	"abacus/internal/calculator"
	"abacus/internal/config"
	"abacus/internal/logging"
	"abacus/internal/memory"
	"abacus/internal/store"
	"abacus/internal/theme"
)

const helpMarkdown = `# abacus

Type digits, operators (` + "`+ - * / ^ %`" + `) and parentheses directly.

| Key | Action |
|---|---|
| enter, = | evaluate |
| backspace | delete last character |
| esc | clear |
| s / w / i / n | √x, x², 1/x, ± |
| a / z | add to / subtract from memory |
| r / x | recall / clear memory |
| arrows, space | move keypad focus, press focused key |
| t | toggle light/dark theme |
| h | show evaluation history |
| ? | close this page |
| q, ctrl+c | quit |

` + "`50%`" + ` is 0.5 and ` + "`2^10`" + ` is 1024. Anything that does not
evaluate shows **Error**; press esc to start over.
`

// HistorySource lists recent evaluations.
type HistorySource interface {
	RecentHistory(limit int) ([]store.HistoryEntry, error)
}

// Deps wires the model to the calculator and its stores.
type Deps struct {
	Calculator *calculator.Calculator
	Memory     *memory.Register
	Themes     *theme.Manager
	History    HistorySource
	Config     *config.Config
	// Updates delivers reloaded configs; nil disables live reload.
	Updates <-chan *config.Config
}

// ConfigMsg carries a reloaded config into the update loop.
type ConfigMsg struct {
	Config *config.Config
}

type flashDoneMsg struct {
	seq int
}

// Model is the keypad TUI.
type Model struct {
	calc    *calculator.Calculator
	memory  *memory.Register
	themes  *theme.Manager
	history HistorySource
	updates <-chan *config.Config

	keys   KeyMap
	help   help.Model
	keypad Keypad
	styles Styles
	pref   theme.Preference

	display   string
	memoryVal float64

	flash    string
	flashSeq int
	flashDur time.Duration

	historyView  viewport.Model
	historyLimit int
	showHistory  bool

	helpView viewport.Model
	showHelp bool

	width  int
	height int
}

// NewModel builds the model. The calculator's display callback is redirected
// to the model.
func NewModel(d Deps) *Model {
	cfg := d.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		calc:         d.Calculator,
		memory:       d.Memory,
		themes:       d.Themes,
		history:      d.History,
		updates:      d.Updates,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		keypad:       NewKeypad(DefaultLayout()),
		flashDur:     cfg.GetFlashDuration(),
		historyView:  viewport.New(36, 8),
		historyLimit: cfg.Display.HistoryLimit,
		showHistory:  cfg.UI.ShowHistory,
		helpView:     viewport.New(72, 20),
		width:        80,
	}

	m.pref = theme.Light
	if m.themes != nil {
		m.pref = m.themes.Current()
	}
	m.applyTheme()

	m.calc.OnDisplay(func(s string) { m.display = s })
	m.display = m.calc.Display()
	m.refreshMemory()
	if m.showHistory {
		m.refreshHistory()
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForConfig()
}

func (m *Model) waitForConfig() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	ch := m.updates
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigMsg{Config: cfg}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.helpView.Width = max(msg.Width-4, 20)
		m.helpView.Height = max(msg.Height-4, 5)
		m.renderHelp()

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}

	case ConfigMsg:
		m.applyConfig(msg.Config)
		return m, m.waitForConfig()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		logging.UI("quit")
		return m, tea.Quit
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Clear):
			m.showHelp = false
			return m, nil
		}
		var cmd tea.Cmd
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.renderHelp()
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		if m.themes != nil {
			m.pref = m.themes.Toggle()
		} else {
			m.pref = m.pref.Toggle()
		}
		m.applyTheme()
		return m, nil
	case key.Matches(msg, m.keys.History):
		m.showHistory = !m.showHistory
		if m.showHistory {
			m.refreshHistory()
		}
		return m, nil
	case key.Matches(msg, m.keys.ScrollUp):
		m.historyView.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.historyView.HalfViewDown()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.keypad.Move(-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.keypad.Move(1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.keypad.Move(0, -1)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.keypad.Move(0, 1)
		return m, nil
	case key.Matches(msg, m.keys.Activate):
		return m, m.press(m.keypad.Focused().Event)
	}

	for _, b := range m.keys.commands() {
		if key.Matches(msg, b.key) {
			return m, m.press(b.event)
		}
	}

	if msg.Type == tea.KeyRunes {
		if token := string(msg.Runes); calc.IsInputToken(token) {
			return m, m.press(token)
		}
	}
	return m, nil
}

// press sends event to the calculator and starts the key flash.
func (m *Model) press(event string) tea.Cmd {
	logging.UIDebug("key event %q", event)
	m.calc.Press(event)

	switch event {
	case calculator.TagMemAdd, calculator.TagMemSub, calculator.TagMemClear:
		m.refreshMemory()
	case calculator.TagEquals:
		if m.showHistory {
			m.refreshHistory()
		}
	}

	if m.flashDur <= 0 {
		return nil
	}
	m.flash = event
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(m.flashDur, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	})
}

func (m *Model) applyTheme() {
	m.styles = NewStyles(ThemeFor(m.pref))
	m.help.Styles.ShortKey = m.styles.HistoryTitle
	m.help.Styles.ShortDesc = m.styles.Muted
	m.help.Styles.FullKey = m.styles.HistoryTitle
	m.help.Styles.FullDesc = m.styles.Muted
	m.renderHelp()
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	logging.UI("applying reloaded config")
	m.calc.SetEvaluator(cfg.Evaluator())
	m.flashDur = cfg.GetFlashDuration()
	m.historyLimit = cfg.Display.HistoryLimit
	if m.themes != nil {
		p, _ := cfg.ThemeDefault()
		m.themes.SetDefault(p)
		if next := m.themes.Current(); next != m.pref {
			m.pref = next
			m.applyTheme()
		}
	}
	if m.showHistory {
		m.refreshHistory()
	}
}

func (m *Model) refreshMemory() {
	if m.memory == nil {
		return
	}
	m.memoryVal = m.memory.Value()
}

func (m *Model) refreshHistory() {
	if m.history == nil {
		m.historyView.SetContent(m.styles.Muted.Render("history unavailable"))
		return
	}
	entries, err := m.history.RecentHistory(m.historyLimit)
	if err != nil {
		logging.Get(logging.CategoryUI).Warn("history load failed: %v", err)
		m.historyView.SetContent(m.styles.Muted.Render("history unavailable"))
		return
	}
	if len(entries) == 0 {
		m.historyView.SetContent(m.styles.Muted.Render("no evaluations yet"))
		return
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.styles.HistoryExpr.Render(e.Expression + " ="))
		b.WriteByte('\n')
		b.WriteString(m.styles.HistoryResult.Render("  " + e.Result))
	}
	m.historyView.SetContent(b.String())
	m.historyView.GotoTop()
}

func (m *Model) renderHelp() {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(m.styles.Theme.GlamourStyle()),
		glamour.WithWordWrap(max(m.helpView.Width-2, 20)),
	)
	if err != nil {
		m.helpView.SetContent(helpMarkdown)
		return
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		m.helpView.SetContent(helpMarkdown)
		return
	}
	m.helpView.SetContent(out)
}

// Display returns the current display text.
func (m *Model) Display() string {
	return m.display
}

// Theme returns the active preference.
func (m *Model) Theme() theme.Preference {
	return m.pref
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showHelp {
		return m.styles.App.Render(m.helpView.View())
	}

	header := m.styles.Header.Render("abacus") + " " + m.styles.Muted.Render(m.pref.String())
	if m.memoryVal != 0 {
		header += " " + m.styles.Indicator.Render("M")
	}

	displayStyle := m.styles.Display
	if m.calc.Buffer().IsError() {
		displayStyle = m.styles.DisplayError
	}
	display := displayStyle.Render(truncateLeft(m.display, 32))

	body := lipgloss.JoinVertical(lipgloss.Left,
		display,
		"",
		m.keypad.View(m.styles, m.flash),
	)
	body = m.styles.Panel.Render(body)

	if m.showHistory {
		pane := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.HistoryTitle.Render("History"),
			m.historyView.View(),
		)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.styles.Panel.Render(pane))
	}

	footer := m.styles.Footer.Render(m.help.View(m.keys))
	if m.memoryVal != 0 {
		footer = m.styles.Footer.Render(fmt.Sprintf("M = %s", calc.FormatNumber(m.memoryVal))) + "\n" + footer
	}

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, footer))
}

// truncateLeft keeps the rightmost n runes, marking the cut with an ellipsis.
func truncateLeft(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return "…" + string(r[len(r)-n+1:])
}
