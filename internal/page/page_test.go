package page

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/content"
	"folio/internal/theme"
	"folio/internal/view"
)

func newTestPage(t *testing.T) Page {
	t.Helper()
	p, err := content.Default()
	require.NoError(t, err)
	return New(p, 2026)
}

func colorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func scopeFor(m theme.Mode, width int) view.Scope {
	return view.StateFor(m).Scope(colorRenderer(), width)
}

func TestBodyContentIsIdenticalAcrossThemes(t *testing.T) {
	pg := newTestPage(t)

	dark := pg.Body(scopeFor(theme.ModeDark, 120))
	light := pg.Body(scopeFor(theme.ModeLight, 120))

	assert.NotEqual(t, dark.Body, light.Body, "styling should differ")
	assert.Equal(t, ansi.Strip(dark.Body), ansi.Strip(light.Body))
	assert.Equal(t, dark.Anchors, light.Anchors)
	assert.Equal(t, dark.Lines, light.Lines)
}

func TestBodyRendersAllStaticData(t *testing.T) {
	pg := newTestPage(t)
	p := pg.Portfolio()

	for _, m := range []theme.Mode{theme.ModeDark, theme.ModeLight} {
		text := ansi.Strip(pg.Body(scopeFor(m, 120)).Body)

		for _, s := range p.Skills {
			assert.Contains(t, text, s.Label)
		}
		for _, proj := range p.Projects {
			assert.Contains(t, text, proj.Name)
			assert.Contains(t, text, proj.URL)
			if !proj.Split {
				assert.Contains(t, text, "▣ "+proj.Images[0].Alt)
			}
		}
		assert.Equal(t, len(p.Assets()), strings.Count(text, "▣"))
		for _, c := range p.Contacts {
			assert.Contains(t, text, c.Label)
		}
		assert.Contains(t, text, p.Owner.Email)
		assert.Contains(t, text, p.CTA.Label)
		assert.Contains(t, text, "© 2026 Diego Leffa")
	}
}

func TestAnchorsPointAtSectionStarts(t *testing.T) {
	pg := newTestPage(t)
	p := pg.Portfolio()
	doc := pg.Body(scopeFor(theme.ModeDark, 120))
	lines := strings.Split(ansi.Strip(doc.Body), "\n")

	require.Len(t, doc.Anchors, len(content.Anchors()))
	assert.Equal(t, 0, doc.Offset(content.AnchorAbout))
	assert.Contains(t, lines[doc.Offset(content.AnchorAbout)+1], p.Owner.Name)
	assert.Contains(t, lines[doc.Offset(content.AnchorSkills)], p.Sections.Skills)
	assert.Contains(t, lines[doc.Offset(content.AnchorProjects)], p.Sections.Projects)
	assert.Contains(t, lines[doc.Offset(content.AnchorContact)], p.Sections.Contact)

	prev := -1
	for _, a := range content.Anchors() {
		assert.Greater(t, doc.Offset(a), prev, "anchor %s out of order", a)
		prev = doc.Offset(a)
	}
	assert.Equal(t, len(lines), doc.Lines)
}

func TestEveryLineFillsTheWidth(t *testing.T) {
	pg := newTestPage(t)

	for _, width := range []int{40, 80, 120} {
		sc := scopeFor(theme.ModeDark, width)
		for _, block := range []string{pg.Header(sc), pg.Body(sc).Body} {
			for i, line := range strings.Split(block, "\n") {
				assert.Equalf(t, width, ansi.StringWidth(line), "width %d line %d", width, i)
			}
		}
	}
}

func TestInnerResetsKeepThePageBackground(t *testing.T) {
	pg := newTestPage(t)

	for _, m := range []theme.Mode{theme.ModeLight, theme.ModeDark} {
		sc := scopeFor(m, 100)
		for _, block := range []string{pg.Header(sc), pg.Body(sc).Body} {
			for i, line := range strings.Split(block, "\n") {
				require.Truef(t, strings.HasPrefix(line, "\x1b["), "%s line %d is unstyled", m, i)
				for _, rest := range strings.Split(line, "\x1b[0m")[1:] {
					if rest == "" {
						continue
					}
					end := strings.IndexByte(rest, 'm')
					require.Truef(t, strings.HasPrefix(rest, "\x1b[") && end > 0, "%s line %d: text after reset without colors", m, i)
					assert.Containsf(t, rest[:end], "48;2;", "%s line %d: reset not followed by page background", m, i)
				}
			}
		}
	}
}

func TestNarrowWidthIsClamped(t *testing.T) {
	pg := newTestPage(t)
	sc := scopeFor(theme.ModeDark, 10)
	for _, line := range strings.Split(pg.Header(sc), "\n") {
		assert.Equal(t, minWidth, ansi.StringWidth(line))
	}

	zero := scopeFor(theme.ModeLight, 0)
	for _, line := range strings.Split(pg.Header(zero), "\n") {
		assert.Equal(t, defaultWidth, ansi.StringWidth(line))
	}
}

func TestHeaderShowsOppositeGlyph(t *testing.T) {
	pg := newTestPage(t)

	dark := ansi.Strip(pg.Header(scopeFor(theme.ModeDark, 120)))
	assert.Contains(t, dark, view.GlyphSwitchToLight.Symbol)
	assert.NotContains(t, dark, view.GlyphSwitchToDark.Symbol)

	light := ansi.Strip(pg.Header(scopeFor(theme.ModeLight, 120)))
	assert.Contains(t, light, view.GlyphSwitchToDark.Symbol)
	assert.NotContains(t, light, view.GlyphSwitchToLight.Symbol)

	for _, link := range pg.Portfolio().Nav {
		assert.Contains(t, dark, link.Label)
	}
}

func TestRenderJoinsHeaderAndBody(t *testing.T) {
	pg := newTestPage(t)
	sc := scopeFor(theme.ModeDark, 100)

	out := pg.Render(sc)
	assert.True(t, strings.HasPrefix(out, pg.Header(sc)))
	assert.True(t, strings.HasSuffix(out, pg.Body(sc).Body))
}
