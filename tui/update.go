package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/OnlyF0uR/blackscript/editor"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Paste && len(msg.Runes) > 0 {
		m.ed.TypeText(string(msg.Runes))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.ed.Key(editor.KeyLeft)
	case key.Matches(msg, km.Right):
		m.ed.Key(editor.KeyRight)
	case key.Matches(msg, km.Up):
		m.ed.Key(editor.KeyUp)
	case key.Matches(msg, km.Down):
		m.ed.Key(editor.KeyDown)

	case key.Matches(msg, km.WordBackspace):
		m.ed.Key(editor.KeyCtrlBackspace)
	case key.Matches(msg, km.Backspace):
		m.ed.Key(editor.KeyBackspace)
	case key.Matches(msg, km.WordDelete):
		m.ed.Key(editor.KeyCtrlDelete)
	case key.Matches(msg, km.Delete):
		m.ed.Key(editor.KeyDelete)
	case key.Matches(msg, km.Enter):
		m.ed.Key(editor.KeyEnter)

	default:
		switch msg.Type {
		case tea.KeyTab:
			m.ed.TypeText("\t")
		case tea.KeySpace:
			m.ed.TypeText(" ")
		case tea.KeyRunes:
			if len(msg.Runes) > 0 && !msg.Alt {
				m.ed.TypeText(string(msg.Runes))
			}
		}
	}
	return m, nil
}
