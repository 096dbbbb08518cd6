package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals: most terminals cannot report
// ctrl+backspace or ctrl+delete, so the word deletions carry ctrl/alt
// fallbacks.
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	Backspace, WordBackspace key.Binding
	Delete, WordDelete       key.Binding
	Enter                    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Backspace:     key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete left")),
		WordBackspace: key.NewBinding(key.WithKeys("ctrl+backspace", "ctrl+h", "alt+backspace", "ctrl+w"), key.WithHelp("ctrl+backspace", "delete word left")),
		Delete:        key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		WordDelete:    key.NewBinding(key.WithKeys("ctrl+delete", "alt+delete", "alt+d"), key.WithHelp("ctrl+del", "delete word right")),
		Enter:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
	}
}

// isZero reports whether no binding has been configured.
func (km KeyMap) isZero() bool {
	for _, b := range []key.Binding{
		km.Left, km.Right, km.Up, km.Down,
		km.Backspace, km.WordBackspace, km.Delete, km.WordDelete, km.Enter,
	} {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
