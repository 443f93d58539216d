package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/content"
	"folio/internal/page"
	"folio/internal/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configure a page root.
type Options struct {
	Width    int
	Height   int
	Renderer *lipgloss.Renderer
}

// Model is the page root. It owns the view state; nothing else mutates it.
type Model struct {
	page     page.Page
	state    view.State
	renderer *lipgloss.Renderer

	width  int
	height int

	viewport viewport.Model
	doc      page.Document
	header   string
	keys     keyMap
	help     help.Model
}

// New mounts a page root in the dark theme.
func New(pg page.Page, opts Options) Model {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	m := Model{
		page:     pg,
		state:    view.NewState(),
		renderer: opts.Renderer,
		width:    width,
		height:   height,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.viewport = viewport.New(width, 1)
	m.render()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.render()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.state.Toggle()
			m.render()
			return m, nil
		case key.Matches(msg, m.keys.Follow):
			m.jump(m.page.Portfolio().CTA.Anchor)
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.render()
			return m, nil
		}
		if a, ok := m.keys.anchorFor(msg); ok {
			m.jump(a)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.header, m.viewport.View(), m.helpView())
}

// IsDarkMode reports the page root's view state.
func (m Model) IsDarkMode() bool { return m.state.IsDarkMode() }

// State returns a copy of the view state.
func (m Model) State() view.State { return m.state }

// Offset is the first body line currently visible.
func (m Model) Offset() int { return m.viewport.YOffset }

// Document is the body produced by the last render pass.
func (m Model) Document() page.Document { return m.doc }

// render re-evaluates the whole tree from the current state. The header
// and body read from one scope so they can never disagree on the theme.
func (m *Model) render() {
	sc := m.state.Scope(m.renderer, m.width)

	m.help.Width = m.width
	m.header = m.page.Header(sc)
	m.doc = m.page.Body(sc)

	helpHeight := lipgloss.Height(m.helpView())
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-lipgloss.Height(m.header)-helpHeight, 1)

	offset := m.viewport.YOffset
	m.viewport.SetContent(m.doc.Body)
	m.viewport.SetYOffset(offset)
}

func (m *Model) jump(a content.Anchor) {
	m.viewport.SetYOffset(m.doc.Offset(a))
}

func (m Model) helpView() string {
	return " " + m.help.View(m.keys)
}
