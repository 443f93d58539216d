package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a CSS color literal: #rgb, #rrggbb, #rrggbbaa, rgb(...) or rgba(...).
type Color string

// Paint is a background fill, either a solid color or a two-stop linear gradient.
type Paint struct {
	From  Color
	To    Color
	Angle int
}

// Solid returns a single-color paint.
func Solid(c Color) Paint { return Paint{From: c} }

// LinearGradient returns a two-stop gradient at angle degrees.
func LinearGradient(angle int, from, to Color) Paint {
	return Paint{From: from, To: to, Angle: angle}
}

// IsZero reports whether the paint is unset (transparent).
func (p Paint) IsZero() bool { return p.From == "" }

// IsGradient reports whether the paint has two stops.
func (p Paint) IsGradient() bool { return p.To != "" }

// CSS renders the paint as a CSS background value.
func (p Paint) CSS() string {
	if !p.IsGradient() {
		return string(p.From)
	}
	return fmt.Sprintf("linear-gradient(%ddeg, %s, %s)", p.Angle, p.From, p.To)
}

// Base is the first stop; terminals use it where a gradient cannot be drawn.
func (p Paint) Base() Color { return p.From }

// At samples the paint at position t in [0,1], blending in Lab space.
func (p Paint) At(t float64) Color {
	if !p.IsGradient() {
		return p.From
	}
	from, _, err := parseColor(p.From)
	if err != nil {
		return p.From
	}
	to, _, err := parseColor(p.To)
	if err != nil {
		return p.From
	}
	t = min(max(t, 0), 1)
	return Color(from.BlendLab(to, t).Clamped().Hex())
}

// Hex flattens c into #rrggbb, compositing any transparency over the backdrop.
// Unparseable input is returned unchanged.
func (c Color) Hex(over Color) string {
	fg, alpha, err := parseColor(c)
	if err != nil {
		return string(c)
	}
	if alpha < 1 && over != "" {
		bg, _, err := parseColor(over)
		if err == nil {
			fg = bg.BlendRgb(fg, alpha)
		}
	}
	return fg.Clamped().Hex()
}

// Valid reports whether c parses as a color.
func (c Color) Valid() bool {
	_, _, err := parseColor(c)
	return err == nil
}

func parseColor(c Color) (colorful.Color, float64, error) {
	raw := strings.ToLower(strings.TrimSpace(string(c)))
	switch {
	case strings.HasPrefix(raw, "#"):
		return parseHex(raw)
	case strings.HasPrefix(raw, "rgba(") || strings.HasPrefix(raw, "rgb("):
		return parseFunctional(raw)
	default:
		return colorful.Color{}, 0, fmt.Errorf("unsupported color %q", c)
	}
}

func parseHex(raw string) (colorful.Color, float64, error) {
	digits := raw[1:]
	switch len(digits) {
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6, 8:
	default:
		return colorful.Color{}, 0, fmt.Errorf("invalid hex color %q", raw)
	}

	alpha := 1.0
	if len(digits) == 8 {
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("invalid hex alpha %q: %w", raw, err)
		}
		alpha = float64(a) / 255
		digits = digits[:6]
	}

	col, err := colorful.Hex("#" + digits)
	if err != nil {
		return colorful.Color{}, 0, err
	}
	return col, alpha, nil
}

func parseFunctional(raw string) (colorful.Color, float64, error) {
	open := strings.IndexByte(raw, '(')
	if !strings.HasSuffix(raw, ")") {
		return colorful.Color{}, 0, fmt.Errorf("invalid color function %q", raw)
	}
	parts := strings.Split(raw[open+1:len(raw)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return colorful.Color{}, 0, fmt.Errorf("invalid color function %q", raw)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("invalid channel in %q: %w", raw, err)
		}
		channels[i] = uint8(v)
	}

	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return colorful.Color{}, 0, fmt.Errorf("invalid alpha in %q", raw)
		}
		alpha = a
	}

	return colorful.Color{
		R: float64(channels[0]) / 255,
		G: float64(channels[1]) / 255,
		B: float64(channels[2]) / 255,
	}, alpha, nil
}
