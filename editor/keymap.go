package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings the editor handles itself. Anything not
// bound here that carries runes is inserted as text.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding

	Home key.Binding
	End  key.Binding

	PageUp   key.Binding
	PageDown key.Binding

	Backspace key.Binding
	Delete    key.Binding
	Enter     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left")),
		Right: key.NewBinding(key.WithKeys("right")),
		Up:    key.NewBinding(key.WithKeys("up")),
		Down:  key.NewBinding(key.WithKeys("down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e")),

		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),

		Backspace: key.NewBinding(key.WithKeys("backspace")),
		Delete:    key.NewBinding(key.WithKeys("delete")),
		Enter:     key.NewBinding(key.WithKeys("enter")),
	}
}

func (k KeyMap) isZero() bool {
	return len(k.Left.Keys()) == 0 && len(k.Right.Keys()) == 0 &&
		len(k.Up.Keys()) == 0 && len(k.Down.Keys()) == 0
}
