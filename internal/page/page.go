// Package page composes the portfolio sections for terminal hosts.
//
// Every section is a pure function of the portfolio data and the render
// scope; the page root decides when to re-render.
package page

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"folio/internal/content"
	"folio/internal/theme"
	"folio/internal/view"
)

const (
	defaultWidth = 80
	minWidth     = 40
	maxTextWidth = 80
)

// Page is the static input of every render.
type Page struct {
	portfolio content.Portfolio
	year      int
}

// New returns a page for p with the footer stamped with year.
func New(p content.Portfolio, year int) Page {
	return Page{portfolio: p, year: year}
}

// Portfolio returns the page's static data.
func (pg Page) Portfolio() content.Portfolio { return pg.portfolio }

// Year is the year stamped into the footer.
func (pg Page) Year() int { return pg.year }

// Document is a rendered page body.
type Document struct {
	Body    string
	Lines   int
	Anchors map[content.Anchor]int
}

// Offset is the first line of anchor a, or 0 when the page has no such anchor.
func (d Document) Offset(a content.Anchor) int {
	return d.Anchors[a]
}

type section struct {
	anchor content.Anchor
	render func(content.Portfolio, view.Scope, int) string
}

var sections = []section{
	{anchor: content.AnchorAbout, render: hero},
	{anchor: content.AnchorSkills, render: skills},
	{anchor: content.AnchorProjects, render: projects},
	{anchor: content.AnchorContact, render: contact},
}

// Header renders the sticky header row: logo, nav and toggle control.
func (pg Page) Header(sc view.Scope) string {
	width := renderWidth(sc)
	return paint(sc, header(pg.portfolio, sc, width), width)
}

// Body renders every section below the header and records anchor offsets.
func (pg Page) Body(sc view.Scope) Document {
	width := renderWidth(sc)
	doc := Document{Anchors: make(map[content.Anchor]int, len(content.Anchors()))}

	var blocks []string
	line := 0
	for _, s := range sections {
		block := s.render(pg.portfolio, sc, width)
		doc.Anchors[s.anchor] = line
		blocks = append(blocks, block)
		line += lipgloss.Height(block) + 1
	}
	blocks = append(blocks, footer(pg.portfolio, sc, width, pg.year))

	raw := strings.Join(blocks, "\n\n")
	doc.Body = paint(sc, raw, width)
	doc.Lines = lipgloss.Height(doc.Body)
	return doc
}

// Render is the header followed by the body, for one-shot output.
func (pg Page) Render(sc view.Scope) string {
	return pg.Header(sc) + "\n" + pg.Body(sc).Body
}

func renderWidth(sc view.Scope) int {
	w := sc.Width()
	if w <= 0 {
		return defaultWidth
	}
	return max(w, minWidth)
}

// paint fills every line to width with the page background, sampling the
// gradient from top to bottom. Inner spans end in a full reset, so the page
// colors are restored after each one. Lines never wrap, so anchor offsets
// computed before painting stay valid.
func paint(sc view.Scope, block string, width int) string {
	lines := strings.Split(block, "\n")
	page := sc.Lipgloss(theme.ComponentPage)
	last := max(len(lines)-1, 1)
	for i, l := range lines {
		if w := ansi.StringWidth(l); w > width {
			l = ansi.Truncate(l, width, "")
		} else {
			l += strings.Repeat(" ", width-w)
		}
		t := float64(i) / float64(last)
		lines[i] = page.
			Background(sc.BackgroundAt(t)).
			Render(restoreAfterReset(l, sc.PageSGR(t)))
	}
	return strings.Join(lines, "\n")
}

func restoreAfterReset(line, sgr string) string {
	if sgr == "" {
		return line
	}
	return strings.NewReplacer(
		"\x1b[0m", "\x1b[0m"+sgr,
		"\x1b[m", "\x1b[m"+sgr,
	).Replace(line)
}
