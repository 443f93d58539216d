package page

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/theme"
	"folio/internal/view"
)

const (
	cardWidth = 40
	gap       = 2
)

var skillIcons = map[string]string{
	"react":    "⚛",
	"node":     "⬢",
	"database": "◫",
}

func header(p content.Portfolio, sc view.Scope, width int) string {
	logo := sc.Lipgloss(theme.ComponentLogo).Render(p.Owner.Logo)

	nav := sc.Lipgloss(theme.ComponentNavLink)
	links := make([]string, 0, len(p.Nav))
	for i, link := range p.Nav {
		links = append(links, nav.Render(fmt.Sprintf("%d %s", i+1, link.Label)))
	}

	g := sc.Glyph()
	toggle := sc.Lipgloss(theme.ComponentToggle).Render(fmt.Sprintf("%s %s [t]", g.Symbol, g.Label))

	right := strings.Join(append(links, toggle), "  ")
	spacer := width - lipgloss.Width(logo) - lipgloss.Width(right) - 2
	if spacer < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, " "+logo, " "+right)
	}
	return " " + logo + strings.Repeat(" ", spacer) + right + " "
}

func hero(p content.Portfolio, sc view.Scope, width int) string {
	textWidth := min(width-4, maxTextWidth)

	name := sc.Lipgloss(theme.ComponentHeroName).Render(p.Owner.Name)
	title := sc.Lipgloss(theme.ComponentHeroTitle).Render(p.Owner.Title)
	bio := sc.Lipgloss(theme.ComponentBio).
		Width(textWidth).
		Align(lipgloss.Center).
		Render(p.Owner.Bio)
	cta := sc.Lipgloss(theme.ComponentCTA).
		Padding(0, 2).
		Render(p.CTA.Label + " ⏎")

	block := lipgloss.JoinVertical(lipgloss.Center, "", name, title, "", bio, "", cta)
	return center(block, width)
}

func skills(p content.Portfolio, sc view.Scope, width int) string {
	chip := sc.Lipgloss(theme.ComponentSkill).Padding(0, 2)

	var rows []string
	var row []string
	rowWidth := 0
	for _, s := range p.Skills {
		label := s.Label
		if icon, ok := skillIcons[s.Icon]; ok {
			label = icon + " " + label
		}
		rendered := chip.Render(label)
		w := lipgloss.Width(rendered)
		if len(row) > 0 && rowWidth+gap+w > width-2 {
			rows = append(rows, joinRow(row, gap))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			rowWidth += gap
		}
		row = append(row, rendered)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, joinRow(row, gap))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, rows...)
	return center(lipgloss.JoinVertical(lipgloss.Center, sectionTitle(sc, p.Sections.Skills), "", body), width)
}

func projects(p content.Portfolio, sc view.Scope, width int) string {
	cards := make([]string, 0, len(p.Projects))
	for _, proj := range p.Projects {
		cards = append(cards, projectCard(proj, sc))
	}

	perRow := max((width-2+gap)/(cardWidth+2+gap), 1)
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, joinRow(cards[i:end], gap))
	}

	grid := lipgloss.JoinVertical(lipgloss.Center, rows...)
	return center(lipgloss.JoinVertical(lipgloss.Center, sectionTitle(sc, p.Sections.Projects), "", grid), width)
}

func projectCard(proj content.Project, sc view.Scope) string {
	inner := cardWidth - 2
	card := sc.Lipgloss(theme.ComponentProjectCard)
	text := sc.Renderer().NewStyle().Width(inner).Align(lipgloss.Center)

	var images string
	if proj.Split {
		half := (inner - 1) / 2
		pair := make([]string, 0, len(proj.Images))
		for _, img := range proj.Images {
			pair = append(pair, imagePlaceholder(sc, img, half))
		}
		images = joinRow(pair, 1)
	} else if len(proj.Images) > 0 {
		images = imagePlaceholder(sc, proj.Images[0], inner)
	}

	name := sc.Lipgloss(theme.ComponentHeroName).Render(proj.Name)
	link := sc.Lipgloss(theme.ComponentProjectLink).Render(proj.LinkLabel + " ↗")
	url := sc.Lipgloss(theme.ComponentFooter).Render(proj.URL)

	body := lipgloss.JoinVertical(lipgloss.Center,
		images,
		"",
		text.Render(name),
		text.Render(proj.Description),
		"",
		text.Render(link),
		text.Render(url),
	)
	return card.Width(inner).Render(body)
}

// imagePlaceholder stands in for an asset the terminal cannot draw.
func imagePlaceholder(sc view.Scope, img content.Image, width int) string {
	box := sc.Renderer().NewStyle().
		Width(width-2).
		Height(3).
		Align(lipgloss.Center, lipgloss.Center).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(sc.Style(theme.ComponentProjectCard).Border.Hex("")))
	return box.Render("▣ " + img.Alt)
}

func contact(p content.Portfolio, sc view.Scope, width int) string {
	email := sc.Lipgloss(theme.ComponentContactText).Render(p.Owner.Email)

	link := sc.Lipgloss(theme.ComponentContactLink)
	muted := sc.Lipgloss(theme.ComponentFooter)
	links := make([]string, 0, len(p.Contacts))
	for _, c := range p.Contacts {
		links = append(links, link.Render(c.Label)+" "+muted.Render(c.URL))
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		append([]string{sectionTitle(sc, p.Sections.Contact), "", email, ""}, links...)...,
	)
	return center(block, width)
}

func footer(p content.Portfolio, sc view.Scope, width, year int) string {
	line := sc.Lipgloss(theme.ComponentFooter).Render(p.FooterText(year))
	return center(lipgloss.JoinVertical(lipgloss.Center, line, ""), width)
}

func sectionTitle(sc view.Scope, title string) string {
	return sc.Lipgloss(theme.ComponentSectionTitle).Render(title)
}

func joinRow(items []string, spacing int) string {
	spaced := make([]string, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			spaced = append(spaced, strings.Repeat(" ", spacing))
		}
		spaced = append(spaced, item)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

func center(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
