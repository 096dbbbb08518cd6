package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// BlinkMsg toggles the cursor of the Model it was scheduled for.
type BlinkMsg struct {
	id int64
}

// Blink returns a command that delivers the next BlinkMsg after the blink
// interval, or nil when blinking is disabled.
func (m Model) Blink() tea.Cmd {
	if m.cfg.BlinkInterval < 0 {
		return nil
	}
	id := m.id
	return tea.Tick(m.cfg.BlinkInterval, func(time.Time) tea.Msg {
		return BlinkMsg{id: id}
	})
}

func (m Model) updateBlink(msg BlinkMsg) (Model, tea.Cmd) {
	if msg.id != m.id {
		return m, nil
	}
	if m.focused {
		m.ed.ToggleCursorVisibility()
	}
	return m, m.Blink()
}
