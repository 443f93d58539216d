// Package view owns the page's theme state and hands the resolved theme to
// the sections that render it.
package view

import (
	"github.com/charmbracelet/lipgloss"

	"folio/internal/theme"
)

// State is the only mutable data on a page: which theme is active.
// The zero value is light; page roots start from NewState.
type State struct {
	isDarkMode bool
}

// NewState returns the state of a freshly mounted page (dark).
func NewState() State {
	return State{isDarkMode: true}
}

// StateFor returns a state showing mode m.
func StateFor(m theme.Mode) State {
	return State{isDarkMode: m.IsDark()}
}

// IsDarkMode reports whether the dark theme is active.
func (s State) IsDarkMode() bool { return s.isDarkMode }

// Mode names the active theme.
func (s State) Mode() theme.Mode { return theme.ModeOf(s.isDarkMode) }

// Toggle switches to the other theme.
func (s *State) Toggle() { s.isDarkMode = !s.isDarkMode }

// Theme resolves the active theme.
func (s State) Theme() theme.Theme { return theme.Resolve(s.isDarkMode) }

// ToggleGlyph is what the toggle control shows. It names the action the
// control performs, so it always points at the inactive theme.
func (s State) ToggleGlyph() Glyph {
	if s.isDarkMode {
		return GlyphSwitchToLight
	}
	return GlyphSwitchToDark
}

// Scope resolves the theme for one render pass.
func (s State) Scope(r *lipgloss.Renderer, width int) Scope {
	return Scope{
		mode:     s.Mode(),
		theme:    s.Theme(),
		glyph:    s.ToggleGlyph(),
		renderer: r,
		width:    width,
	}
}

// Glyph is the toggle control's affordance.
type Glyph struct {
	Symbol string
	Label  string
	Target theme.Mode
}

var (
	GlyphSwitchToLight = Glyph{Symbol: "○━", Label: "tema claro", Target: theme.ModeLight}
	GlyphSwitchToDark  = Glyph{Symbol: "━●", Label: "tema escuro", Target: theme.ModeDark}
)
