package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// menuButtonWidth is the fixed width for menu buttons.
const menuButtonWidth = 22

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical navigation menu drawn as arcade buttons.
type Menu struct {
	Items    []MenuItem
	Selected int
	keys     KeyMap
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	return Menu{
		Items: items,
		keys:  DefaultKeyMap(),
	}
}

// Update handles keyboard navigation. Up and down wrap around.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.keys.Up):
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
	case key.Matches(kmsg, m.keys.Down):
		m.Selected = (m.Selected + 1) % len(m.Items)
	case key.Matches(kmsg, m.keys.Select):
		if item := m.Items[m.Selected]; item.Action != nil {
			return m, item.Action()
		}
	}

	return m, nil
}

// View renders the menu centered in width.
func (m Menu) View(width int) string {
	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		buttons = append(buttons, ArcadeButton(item.Label, i == m.Selected, menuButtonWidth))
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, buttons...))
}
