package components

import "charm.land/bubbles/v2/key"

// KeyMap holds the bindings shared by list-style components.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Pick   []key.Binding
}

// DefaultKeyMap returns arrow/vim navigation, Enter to select and number
// keys 1-4 to pick directly.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", "select"),
		),
		Pick: []key.Binding{
			key.NewBinding(key.WithKeys("1", "a")),
			key.NewBinding(key.WithKeys("2", "b")),
			key.NewBinding(key.WithKeys("3", "c")),
			key.NewBinding(key.WithKeys("4", "d")),
		},
	}
}
