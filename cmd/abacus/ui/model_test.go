package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abacus/internal/calculator"
	"abacus/internal/config"
	"abacus/internal/memory"
	"abacus/internal/store"
	"abacus/internal/theme"
)

func newTestModel(t *testing.T) (*Model, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	reg := memory.NewRegister(st)
	cfg := config.DefaultConfig()
	c := calculator.New(
		calculator.WithEvaluator(cfg.Evaluator()),
		calculator.WithMemory(reg),
		calculator.WithHistory(st),
	)
	themes := theme.NewManager(st, theme.WithDetector(func() theme.Preference { return theme.Light }))
	m := NewModel(Deps{
		Calculator: c,
		Memory:     reg,
		Themes:     themes,
		History:    st,
		Config:     cfg,
	})
	return m, st
}

func typeRunes(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func keyType(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func TestModel_TypeAndEvaluate(t *testing.T) {
	m, st := newTestModel(t)
	assert.Equal(t, "0", m.Display())

	typeRunes(m, "2+2")
	assert.Equal(t, "2+2", m.Display())

	keyType(m, tea.KeyEnter)
	assert.Equal(t, "4", m.Display())

	entries, err := st.RecentHistory(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2+2", entries[0].Expression)
}

func TestModel_EqualsRuneAndPercent(t *testing.T) {
	m, _ := newTestModel(t)
	typeRunes(m, "50%=")
	assert.Equal(t, "0.5", m.Display())
}

func TestModel_DeleteAndClear(t *testing.T) {
	m, _ := newTestModel(t)
	typeRunes(m, "123")
	keyType(m, tea.KeyBackspace)
	assert.Equal(t, "12", m.Display())
	keyType(m, tea.KeyEsc)
	assert.Equal(t, "0", m.Display())
}

func TestModel_InvalidShowsError(t *testing.T) {
	m, _ := newTestModel(t)
	typeRunes(m, "2+")
	keyType(m, tea.KeyEnter)
	assert.Equal(t, "Error", m.Display())
	assert.Contains(t, m.View(), "Error")
}

func TestModel_UnaryKeys(t *testing.T) {
	m, _ := newTestModel(t)
	typeRunes(m, "9s")
	assert.Equal(t, "3", m.Display())
	typeRunes(m, "w")
	assert.Equal(t, "9", m.Display())
	typeRunes(m, "n")
	assert.Equal(t, "-9", m.Display())

	keyType(m, tea.KeyEsc)
	typeRunes(m, "0i")
	assert.Equal(t, "NaN", m.Display())
}

func TestModel_MemoryKeys(t *testing.T) {
	m, _ := newTestModel(t)
	typeRunes(m, "3=a")
	assert.Equal(t, 3.0, m.memoryVal)
	assert.Contains(t, m.View(), "M = 3")

	keyType(m, tea.KeyEsc)
	typeRunes(m, "r")
	assert.Equal(t, "3", m.Display())

	typeRunes(m, "x")
	assert.Equal(t, 0.0, m.memoryVal)
}

func TestModel_IgnoresForeignRunes(t *testing.T) {
	m, _ := newTestModel(t)
	typeRunes(m, "1b2")
	assert.Equal(t, "12", m.Display())
}

func TestModel_KeypadFocusAndActivate(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, "5", m.keypad.Focused().Event)

	keyType(m, tea.KeyUp)
	assert.Equal(t, "8", m.keypad.Focused().Event)
	keyType(m, tea.KeyRight)
	assert.Equal(t, "9", m.keypad.Focused().Event)

	cmd := keyType(m, tea.KeySpace)
	assert.Equal(t, "9", m.Display())
	assert.NotNil(t, cmd, "activation starts the key flash")
	assert.Equal(t, "9", m.flash)
}

func TestModel_FlashClearsOnMatchingTick(t *testing.T) {
	m, _ := newTestModel(t)
	typeRunes(m, "1")
	first := m.flashSeq
	typeRunes(m, "2")

	m.Update(flashDoneMsg{seq: first})
	assert.Equal(t, "2", m.flash, "stale tick keeps the newer flash")

	m.Update(flashDoneMsg{seq: m.flashSeq})
	assert.Empty(t, m.flash)
}

func TestModel_ThemeToggle(t *testing.T) {
	m, st := newTestModel(t)
	assert.Equal(t, theme.Light, m.Theme())

	typeRunes(m, "t")
	assert.Equal(t, theme.Dark, m.Theme())
	assert.True(t, m.styles.Theme.IsDark)

	entry, err := st.Get(theme.Key)
	require.NoError(t, err)
	assert.Equal(t, "dark", entry.Value)
}

func TestModel_HistoryPane(t *testing.T) {
	m, _ := newTestModel(t)
	typeRunes(m, "6×7=")
	typeRunes(m, "h")
	assert.True(t, m.showHistory)

	view := m.View()
	assert.Contains(t, view, "History")
	assert.Contains(t, view, "6×7 =")
	assert.Contains(t, view, "42")

	typeRunes(m, "h")
	assert.NotContains(t, m.View(), "History")
}

func TestModel_HelpPage(t *testing.T) {
	m, _ := newTestModel(t)
	typeRunes(m, "?")
	assert.True(t, m.showHelp)

	typeRunes(m, "5")
	assert.Equal(t, "0", m.Display(), "keys do not reach the calculator while help is open")

	keyType(m, tea.KeyEsc)
	assert.False(t, m.showHelp)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := keyType(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ConfigReload(t *testing.T) {
	m, _ := newTestModel(t)
	updates := make(chan *config.Config, 1)
	m.updates = updates

	cfg := config.DefaultConfig()
	cfg.Display.Precision = 3
	cfg.Theme.Default = "dark"
	cfg.UI.FlashDuration = "0s"
	updates <- cfg

	msg := m.Init()()
	_, next := m.Update(msg)
	assert.NotNil(t, next, "model keeps listening for reloads")

	assert.Equal(t, theme.Dark, m.Theme())
	assert.Equal(t, time.Duration(0), m.flashDur)

	typeRunes(m, "2/3=")
	assert.Equal(t, "0.667", m.Display())
	assert.Empty(t, m.flash)
}

func TestModel_WindowResize(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.help.Width)
	assert.Equal(t, 116, m.helpView.Width)
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, "123", truncateLeft("123", 5))
	got := truncateLeft(strings.Repeat("9", 10)+"1", 4)
	assert.Equal(t, "…991", got)
}
