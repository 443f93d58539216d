package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/content"
)

type keyMap struct {
	Toggle  key.Binding
	Follow  key.Binding
	Top     key.Binding
	Up      key.Binding
	Down    key.Binding
	Help    key.Binding
	Quit    key.Binding
	Anchors []anchorBinding
}

type anchorBinding struct {
	anchor  content.Anchor
	binding key.Binding
}

func defaultKeyMap() keyMap {
	km := keyMap{
		Toggle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tema")),
		Follow: key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "projetos")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "topo")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "subir")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "descer")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ajuda")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "sair")),
	}

	keys := []string{"1", "2", "3", "4"}
	for i, a := range content.Anchors() {
		km.Anchors = append(km.Anchors, anchorBinding{
			anchor:  a,
			binding: key.NewBinding(key.WithKeys(keys[i]), key.WithHelp(keys[i], "#"+string(a))),
		})
	}
	return km
}

func (km keyMap) anchorFor(msg tea.KeyMsg) (content.Anchor, bool) {
	for _, ab := range km.Anchors {
		if key.Matches(msg, ab.binding) {
			return ab.anchor, true
		}
	}
	return "", false
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Toggle, km.Follow, km.Help, km.Quit}
}

func (km keyMap) FullHelp() [][]key.Binding {
	anchors := make([]key.Binding, 0, len(km.Anchors))
	for _, ab := range km.Anchors {
		anchors = append(anchors, ab.binding)
	}
	return [][]key.Binding{
		{km.Toggle, km.Follow, km.Top},
		{km.Up, km.Down},
		anchors,
		{km.Help, km.Quit},
	}
}
