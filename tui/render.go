package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OnlyF0uR/blackscript/buffer"
	"github.com/OnlyF0uR/blackscript/editor"
	"github.com/OnlyF0uR/blackscript/internal/cellwidth"
)

// renderContent draws every visual row of the document, one terminal line
// per row.
func (m *Model) renderContent() string {
	lines := m.ed.VisibleLines(-1)
	maxChars := m.ed.MaxCharsPerRow()

	cursor := m.ed.Cursor()
	vis := m.ed.CursorVisual()
	showCursor := m.focused && m.ed.CursorVisible()

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		for i, seg := range editor.Segments(line, maxChars) {
			cursorCol := -1
			if showCursor && row == cursor.Row && i == vis.Row {
				cursorCol = seg.Start + vis.Col
			}
			out = append(out, m.renderRow(line, seg, cursorCol, maxChars))
		}
	}
	return strings.Join(out, "\n")
}

// renderRow draws seg of line. cursorCol is a line column, or -1 when the
// cursor is not drawn on this row.
func (m *Model) renderRow(line buffer.Line, seg editor.Segment, cursorCol, maxChars int) string {
	st := m.cfg.Style

	// A cursor after a full row would fall outside the viewport; draw it on
	// the last cell instead.
	if cursorCol == seg.End && seg.Len() >= maxChars && seg.Len() > 0 {
		cursorCol = seg.End - 1
	}

	var sb strings.Builder
	for _, run := range line.Runs(seg.Start, seg.End) {
		runStyle := m.styleFor(run.Style)
		if cursorCol < run.Start || cursorCol >= run.End {
			sb.WriteString(renderRunes(runStyle, line, run.Start, run.End))
			continue
		}
		sb.WriteString(renderRunes(runStyle, line, run.Start, cursorCol))
		sb.WriteString(st.Cursor.Inherit(runStyle).Render(string(cellwidth.Display(line.RuneAt(cursorCol)))))
		sb.WriteString(renderRunes(runStyle, line, cursorCol+1, run.End))
	}
	if cursorCol == seg.End {
		// Cursor at EOL is rendered as a 1-cell placeholder space.
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m *Model) styleFor(s buffer.Style) lipgloss.Style {
	if fs, ok := m.cfg.FontStyles[s.Font]; ok {
		return fs.Inherit(m.cfg.Style.Text)
	}
	return m.cfg.Style.Text
}

func renderRunes(st lipgloss.Style, line buffer.Line, start, end int) string {
	if start >= end {
		return ""
	}
	rs := make([]rune, 0, end-start)
	for i := start; i < end; i++ {
		rs = append(rs, cellwidth.Display(line.RuneAt(i)))
	}
	return st.Render(string(rs))
}
