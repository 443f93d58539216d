package theme

import (
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// TermProfile describes terminal rendering capabilities derived from TERM.
type TermProfile struct {
	Colors    int
	TrueColor bool
	IsTTY     bool
}

// ProfileOptions overrides what TERM detection decides.
type ProfileOptions struct {
	ForceColor bool
	ForceMono  bool
}

var (
	termProfileCache sync.Map
	knownProfiles    = map[string]TermProfile{
		"dumb":           {Colors: 0, TrueColor: false, IsTTY: false},
		"ansi":           {Colors: 8, TrueColor: false, IsTTY: true},
		"linux":          {Colors: 16, TrueColor: false, IsTTY: true},
		"xterm":          {Colors: 16, TrueColor: false, IsTTY: true},
		"xterm-256color": {Colors: 256, TrueColor: false, IsTTY: true},
		"screen":         {Colors: 8, TrueColor: false, IsTTY: true},
		"tmux":           {Colors: 256, TrueColor: false, IsTTY: true},
		"vt100":          {Colors: 8, TrueColor: false, IsTTY: true},
		"xterm-kitty":    {Colors: 1 << 24, TrueColor: true, IsTTY: true},
		"wezterm":        {Colors: 1 << 24, TrueColor: true, IsTTY: true},
	}
)

// DetectTermProfile maps TERM to a terminal capability profile.
func DetectTermProfile(term string) TermProfile {
	norm := strings.ToLower(strings.TrimSpace(term))
	if cached, ok := termProfileCache.Load(norm); ok {
		return cached.(TermProfile)
	}

	profile := detectTermProfileUncached(norm)
	termProfileCache.Store(norm, profile)
	return profile
}

// ColorProfile picks the termenv profile a renderer should emit for TERM.
// Forcing mono wins over forcing color. A forced-color dumb terminal gets
// 256 colors rather than true color.
func ColorProfile(term string, opts ProfileOptions) termenv.Profile {
	if opts.ForceMono {
		return termenv.Ascii
	}

	profile := DetectTermProfile(term)
	if opts.ForceColor && (!profile.IsTTY || profile.Colors < 256) {
		profile.IsTTY = true
		profile.Colors = 256
	}

	switch {
	case !profile.IsTTY || profile.Colors == 0:
		return termenv.Ascii
	case profile.TrueColor:
		return termenv.TrueColor
	case profile.Colors >= 256:
		return termenv.ANSI256
	default:
		return termenv.ANSI
	}
}

func detectTermProfileUncached(norm string) TermProfile {
	if norm == "" {
		return TermProfile{Colors: 0, TrueColor: false, IsTTY: false}
	}

	if p, ok := knownProfiles[norm]; ok {
		return p
	}

	profile := TermProfile{Colors: 16, TrueColor: false, IsTTY: true}
	if strings.Contains(norm, "truecolor") || strings.Contains(norm, "24bit") || strings.Contains(norm, "kitty") || strings.Contains(norm, "wezterm") {
		profile.TrueColor = true
		profile.Colors = 1 << 24
	}
	if strings.Contains(norm, "256") {
		profile.Colors = 256
	}
	if strings.Contains(norm, "dumb") {
		profile = TermProfile{Colors: 0, TrueColor: false, IsTTY: false}
	}
	if strings.Contains(norm, "screen") {
		profile.Colors = 8
	}

	return profile
}
