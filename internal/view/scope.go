package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/theme"
)

// Scope is the read-only handle every section renders from. It is built once
// per render pass by the page root and carries nothing that can change the
// state it came from.
type Scope struct {
	mode     theme.Mode
	theme    theme.Theme
	glyph    Glyph
	renderer *lipgloss.Renderer
	width    int
}

func (sc Scope) Mode() theme.Mode   { return sc.mode }
func (sc Scope) Theme() theme.Theme { return sc.theme }
func (sc Scope) Glyph() Glyph       { return sc.glyph }
func (sc Scope) Width() int         { return sc.width }

// Renderer is the host's lipgloss renderer, or the default one.
func (sc Scope) Renderer() *lipgloss.Renderer {
	if sc.renderer == nil {
		return lipgloss.DefaultRenderer()
	}
	return sc.renderer
}

// Style is the descriptor for component c under the scope's theme.
func (sc Scope) Style(c theme.Component) theme.Style {
	return theme.StyleFor(sc.theme, c)
}

// Lipgloss converts the descriptor for c into a terminal style. Translucent
// colors are flattened over the page background.
func (sc Scope) Lipgloss(c theme.Component) lipgloss.Style {
	d := sc.Style(c)
	backdrop := sc.theme.Background.Base()

	st := sc.Renderer().NewStyle().
		Foreground(lipgloss.Color(d.Foreground.Hex(backdrop))).
		Bold(d.Bold).
		Underline(d.Underline)
	if !d.Background.IsZero() {
		st = st.Background(lipgloss.Color(d.Background.Base().Hex(backdrop)))
	}
	if d.Border != "" {
		st = st.Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(d.Border.Hex(backdrop)))
	}
	return st
}

// BackgroundAt is the page background sampled at t in [0,1], as #rrggbb.
func (sc Scope) BackgroundAt(t float64) lipgloss.Color {
	return lipgloss.Color(sc.theme.Background.At(t).Hex(""))
}

// PageSGR is the escape sequence that sets the page foreground and the page
// background sampled at t. It is empty when the renderer has no colors.
func (sc Scope) PageSGR(t float64) string {
	profile := sc.Renderer().ColorProfile()
	fg := sc.Style(theme.ComponentPage).Foreground.Hex(sc.theme.Background.Base())

	var params []string
	if c := profile.Color(fg); c != nil {
		if seq := c.Sequence(false); seq != "" {
			params = append(params, seq)
		}
	}
	if c := profile.Color(string(sc.BackgroundAt(t))); c != nil {
		if seq := c.Sequence(true); seq != "" {
			params = append(params, seq)
		}
	}
	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}
