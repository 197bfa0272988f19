// Package theme resolves and persists the light/dark display preference.
package theme

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"abacus/internal/logging"
	"abacus/internal/store"
)

// Preference is the display theme.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// Key is the store key holding the preference.
const Key = "theme"

// Parse maps "light" or "dark" (any case, surrounding space ignored).
func Parse(s string) (Preference, bool) {
	switch Preference(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// IsDark reports whether p is Dark.
func (p Preference) IsDark() bool {
	return p == Dark
}

// Toggle returns the other preference.
func (p Preference) Toggle() Preference {
	if p == Dark {
		return Light
	}
	return Dark
}

func (p Preference) String() string {
	return string(p)
}

// Detect reports the system preference: ABACUS_DARK_MODE wins, then the
// COLORFGBG background index, then the terminal's reported background.
func Detect() Preference {
	if v := os.Getenv("ABACUS_DARK_MODE"); v != "" {
		if dark, err := strconv.ParseBool(v); err == nil {
			if dark {
				return Dark
			}
			return Light
		}
	}

	// Format is usually "foreground;background"; 0-6 and 8 are dark backgrounds.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if bgIdx, err := strconv.Atoi(parts[len(parts)-1]); err == nil && len(parts) >= 2 {
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return Dark
			}
			return Light
		}
	}

	if lipgloss.HasDarkBackground() {
		return Dark
	}
	return Light
}

// KV is the storage the manager needs.
type KV interface {
	Get(key string) (store.Entry, error)
	Put(key, value string) error
	Delete(key string) error
}

// Manager reads and writes the preference. Storage failures never surface:
// reads fall back to the configured default or the system preference and
// writes are dropped.
type Manager struct {
	kv       KV
	fallback Preference
	detect   func() Preference
}

// Option configures a Manager.
type Option func(*Manager)

// WithDefault sets the preference used when nothing is stored. An empty
// value means "follow the system".
func WithDefault(p Preference) Option {
	return func(m *Manager) { m.fallback = p }
}

// WithDetector replaces system detection.
func WithDetector(fn func() Preference) Option {
	return func(m *Manager) { m.detect = fn }
}

// NewManager returns a Manager over kv.
func NewManager(kv KV, opts ...Option) *Manager {
	m := &Manager{kv: kv, detect: Detect}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Stored returns the persisted preference, if any.
func (m *Manager) Stored() (Preference, bool) {
	entry, err := m.kv.Get(Key)
	if err != nil {
		logging.ThemeWarn("read failed, falling back: %v", err)
		return "", false
	}
	if !entry.Found {
		return "", false
	}
	p, ok := Parse(entry.Value)
	if !ok {
		logging.ThemeWarn("ignoring corrupt theme value %q", entry.Value)
		return "", false
	}
	return p, true
}

// Current resolves the preference: stored, then default, then system.
func (m *Manager) Current() Preference {
	if p, ok := m.Stored(); ok {
		return p
	}
	if m.fallback != "" {
		return m.fallback
	}
	return m.detect()
}

// Set persists p.
func (m *Manager) Set(p Preference) {
	if err := m.kv.Put(Key, string(p)); err != nil {
		logging.ThemeWarn("write failed, ignoring: %v", err)
		return
	}
	logging.Theme("theme set to %s", p)
}

// Toggle flips the current preference, persists it and returns it.
func (m *Manager) Toggle() Preference {
	next := m.Current().Toggle()
	m.Set(next)
	return next
}

// Reset forgets the stored preference so Current follows the default again.
func (m *Manager) Reset() {
	if err := m.kv.Delete(Key); err != nil {
		logging.ThemeWarn("delete failed, ignoring: %v", err)
		return
	}
	logging.Theme("theme reset to system")
}

// SetDefault changes the fallback used when nothing is stored.
func (m *Manager) SetDefault(p Preference) {
	m.fallback = p
}
