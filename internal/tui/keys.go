package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Range   key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Close   key.Binding
	Digits  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("s-tab", "prev page"),
		),
		Range: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "year range"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/l", "move"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		// Display-only entry for the footer while typing a year.
		Digits: key.NewBinding(
			key.WithKeys(),
			key.WithHelp("0-9", "type year"),
		),
	}
}

func (k keyMap) browseBindings() []key.Binding {
	return []key.Binding{k.NextTab, k.Range, k.Quit}
}

func (k keyMap) rangeBindings() []key.Binding {
	return []key.Binding{k.Left, k.Select, k.Close}
}

func (k keyMap) editBindings() []key.Binding {
	return []key.Binding{k.Digits, k.Select, k.Close}
}

func isBackspaceKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "backspace", "ctrl+h":
		return true
	}
	return false
}
