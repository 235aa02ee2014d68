// Package modelstab provides the ranked model breakdown tab for the wrapped
// TUI.
package modelstab

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avilla-dev/cursor-wrapped/internal/ui/app"
)

// keyMap defines the key bindings specific to the models tab.
type keyMap struct {
	Up   key.Binding
	Down key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous model"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next model"),
		),
	}
}

// Model represents the models tab state.
type Model struct {
	state    *app.State
	width    int
	height   int
	keys     keyMap
	selected int
}

// New creates a new models tab.
func New(state *app.State) *Model {
	return &Model{
		state: state,
		keys:  defaultKeyMap(),
	}
}

// Init initializes the models tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the models tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	count := 0
	if s := m.state.Summary(); s != nil {
		count = len(s.Models)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.selected < count-1 {
			m.selected++
		}
	}
	return m, nil
}

// SetSize sets the available size for the models tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the help overlay.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Up, m.keys.Down}
}
