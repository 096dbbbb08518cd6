package tui

import tea "github.com/charmbracelet/bubbletea"

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonLeft:
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, nil
		}
		mt := m.ed.Metrics()
		m.ed.Click(float32(msg.X)*mt.CharWidth, float32(msg.Y)*mt.LineHeight)

	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if m.cfg.ScrollPolicy == ScrollFollowCursorOnly {
			return m, nil
		}
		dy := float32(m.cfg.WheelRows) * m.ed.Metrics().LineHeight
		if msg.Button == tea.MouseButtonWheelUp {
			dy = -dy
		}
		m.ed.Scroll(dy)
	}
	return m, nil
}

// mouseInBounds reports whether (x, y) lies on the text area. The status
// row is excluded.
func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
