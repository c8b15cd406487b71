// Package theme manages the persisted light/dark preference and resolves the
// matching visual token set. It is fully independent of the submission
// pipeline.
package theme

import (
	"fmt"

	theme "github.com/goliatone/go-theme"
)

// Preference is the persisted theme choice.
type Preference string

const (
	PreferenceLight Preference = "light"
	PreferenceDark  Preference = "dark"
)

// StorageKey is the single stable key the preference lives under.
const StorageKey = "predictform.theme"

// Toggle icons by applied preference.
const (
	iconLight = "☀"
	iconDark  = "☾"
)

// builtinSelector resolves the two built-in manifests. It implements
// theme.ThemeSelector so callers can swap in an external theme catalog.
type builtinSelector struct {
	manifests map[string]*theme.Manifest
}

func newBuiltinSelector() *builtinSelector {
	return &builtinSelector{
		manifests: map[string]*theme.Manifest{
			string(PreferenceLight): {
				Name:    string(PreferenceLight),
				Version: "1.0.0",
				Tokens: map[string]string{
					"fg":      "#1a1b26",
					"bg":      "#f5f5f4",
					"accent":  "#2a6fdb",
					"muted":   "#6b7280",
					"info":    "#2a6fdb",
					"warning": "#b45309",
					"danger":  "#b91c1c",
					"success": "#15803d",
				},
			},
			string(PreferenceDark): {
				Name:    string(PreferenceDark),
				Version: "1.0.0",
				Tokens: map[string]string{
					"fg":      "#c0caf5",
					"bg":      "#1a1b26",
					"accent":  "#7aa2f7",
					"muted":   "#565f89",
					"info":    "#7aa2f7",
					"warning": "#e0af68",
					"danger":  "#f7768e",
					"success": "#9ece6a",
				},
			},
		},
	}
}

// Select implements theme.ThemeSelector.
func (s *builtinSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("theme: unknown theme %q", name)
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// Option customises a Manager.
type Option func(*Manager)

// WithSelector swaps the built-in light/dark manifests for an external
// catalog.
func WithSelector(selector theme.ThemeSelector) Option {
	return func(m *Manager) {
		if selector != nil {
			m.selector = selector
		}
	}
}

// Manager reads and writes the persisted preference and applies the selected
// theme's token set. Load is expected once at startup; Toggle on every user
// toggle. Both are idempotent with respect to the applied visual state.
type Manager struct {
	store     Store
	selector  theme.ThemeSelector
	current   Preference
	selection *theme.Selection
	icon      string
}

// NewManager constructs a Manager over the given store.
func NewManager(store Store, options ...Option) *Manager {
	m := &Manager{
		store:    store,
		selector: newBuiltinSelector(),
		current:  PreferenceLight,
		icon:     iconLight,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m
}

// Load reads the persisted preference (default light when unset or
// unrecognized) and applies it.
func (m *Manager) Load() (Preference, error) {
	value, ok, err := m.store.Get(StorageKey)
	if err != nil {
		return "", fmt.Errorf("theme: load preference: %w", err)
	}

	pref := PreferenceLight
	if ok && Preference(value) == PreferenceDark {
		pref = PreferenceDark
	}
	if err := m.apply(pref); err != nil {
		return "", err
	}
	return m.current, nil
}

// Toggle flips the applied preference, persists the new value, and refreshes
// the icon.
func (m *Manager) Toggle() (Preference, error) {
	next := PreferenceDark
	if m.current == PreferenceDark {
		next = PreferenceLight
	}
	if err := m.apply(next); err != nil {
		return "", err
	}
	if err := m.store.Set(StorageKey, string(next)); err != nil {
		return "", fmt.Errorf("theme: persist preference: %w", err)
	}
	return m.current, nil
}

// Current reports the applied preference.
func (m *Manager) Current() Preference {
	return m.current
}

// Icon reports the toggle control's glyph for the applied preference.
func (m *Manager) Icon() string {
	return m.icon
}

// Selection exposes the resolved go-theme selection, nil before Load.
func (m *Manager) Selection() *theme.Selection {
	return m.selection
}

// Token resolves a visual token from the applied theme, empty when absent.
func (m *Manager) Token(name string) string {
	if m.selection == nil || m.selection.Manifest == nil {
		return ""
	}
	return m.selection.Manifest.Tokens[name]
}

func (m *Manager) apply(pref Preference) error {
	selection, err := m.selector.Select(string(pref), "")
	if err != nil {
		return fmt.Errorf("theme: select %s: %w", pref, err)
	}
	m.selection = selection
	m.current = pref
	if pref == PreferenceDark {
		m.icon = iconDark
	} else {
		m.icon = iconLight
	}
	return nil
}
