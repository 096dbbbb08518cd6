package tui

import (
	"fmt"
	"strings"

	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/OnlyF0uR/blackscript/internal/cellwidth"
)

// StatusCounts returns the left half of the status bar.
func (m Model) StatusCounts() string {
	return fmt.Sprintf("Words: %d, Characters: %d", m.ed.WordCount(), m.ed.CharCount())
}

// StatusPosition returns the right half of the status bar. Lines and
// columns are 1-based.
func (m Model) StatusPosition() string {
	hpos, vpos := m.ed.CursorPosition()
	return fmt.Sprintf("Line: %d/%d, Column: %d", vpos+1, m.ed.LineCount(), hpos+1)
}

func (m Model) viewWithStatus() string {
	st := m.cfg.Style.Status
	bar := st.Render(strings.Repeat(" ", m.width))

	base := bar
	if m.viewport.Height > 0 {
		base = m.viewport.View() + "\n" + bar
	}

	left := m.StatusCounts()
	right := m.StatusPosition()
	if cellwidth.String(left)+1+cellwidth.String(right) > m.width {
		// Too narrow for both halves; the cursor position wins.
		return overlay.Composite(st.Render(right), base, overlay.Left, overlay.Bottom, 0, 0)
	}
	view := overlay.Composite(st.Render(left), base, overlay.Left, overlay.Bottom, 0, 0)
	return overlay.Composite(st.Render(right), view, overlay.Right, overlay.Bottom, 0, 0)
}
