package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Mode names a theme.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ErrUnknownMode is returned when a mode name is neither light nor dark.
var ErrUnknownMode = errors.New("unknown theme mode")

// Theme is the full set of semantic tokens consumed by presentation.
// Every field is set on both themes; there is no fallback between them.
type Theme struct {
	Background     Paint
	CardBackground Color
	Text           Color
	Primary        Color
}

// Token is a single named theme value.
type Token struct {
	Name  string
	Value string
}

var (
	light = Theme{
		Background:     Solid("#f5f5f5"),
		CardBackground: "#ffffffcc",
		Text:           "#0d1117",
		Primary:        "#1f6feb",
	}
	dark = Theme{
		Background:     LinearGradient(145, "#0d1117", "#161b22"),
		CardBackground: "rgba(33, 38, 45, 0.85)",
		Text:           "#fff",
		Primary:        "#58a6ff",
	}
)

var modes = [...]Mode{ModeLight, ModeDark}

// Light returns the light theme.
func Light() Theme { return light }

// Dark returns the dark theme.
func Dark() Theme { return dark }

// Resolve maps the dark-mode flag to its theme: true is Dark, false is Light.
func Resolve(isDarkMode bool) Theme {
	if isDarkMode {
		return dark
	}
	return light
}

// ModeOf returns the mode name for a dark-mode flag.
func ModeOf(isDarkMode bool) Mode {
	if isDarkMode {
		return ModeDark
	}
	return ModeLight
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// IsDark reports whether m is the dark mode.
func (m Mode) IsDark() bool { return m == ModeDark }

// ParseMode parses "light" or "dark", ignoring case and surrounding space.
func ParseMode(raw string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
}

// Tokens lists the theme values in a fixed order.
func Tokens(t Theme) []Token {
	return []Token{
		{Name: "background", Value: t.Background.CSS()},
		{Name: "cardBackground", Value: string(t.CardBackground)},
		{Name: "text", Value: string(t.Text)},
		{Name: "primary", Value: string(t.Primary)},
	}
}
