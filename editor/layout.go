package editor

// Document-level wrap geometry. Nothing here is cached: every call walks
// the current buffer with the current row width, so a resize or an edit
// can never leave stale geometry behind.

// visualLineCount returns the number of visual rows of logical row.
func (e *Editor) visualLineCount(row int) int {
	return VisualLineCount(e.buf.View(row), e.maxChars)
}

// visualOffset returns the global visual row at which logical row starts.
func (e *Editor) visualOffset(row int) int {
	off := 0
	for i := 0; i < row && i < e.buf.LineCount(); i++ {
		off += e.visualLineCount(i)
	}
	return off
}

// VisualRowCount returns the number of visual rows of the whole document.
func (e *Editor) VisualRowCount() int {
	return e.visualOffset(e.buf.LineCount())
}

// rowAt resolves a global visual row to its logical row and segment.
// Rows past the end resolve to the last visual row of the document.
func (e *Editor) rowAt(visualRow int) (row int, segIdx int, seg Segment) {
	if visualRow < 0 {
		visualRow = 0
	}
	last := e.buf.LineCount() - 1
	for row = 0; row <= last; row++ {
		segs := Segments(e.buf.View(row), e.maxChars)
		if visualRow < len(segs) || row == last {
			segIdx = minInt(visualRow, len(segs)-1)
			return row, segIdx, segs[segIdx]
		}
		visualRow -= len(segs)
	}
	return 0, 0, Segment{}
}

// cursorVisual returns the cursor's row and column within its logical line.
func (e *Editor) cursorVisual() VisualPos {
	return LogicalToVisual(e.buf.View(e.cursor.Row), e.cursor.Col, e.maxChars)
}

// cursorGlobalRow returns the cursor's visual row across the document.
func (e *Editor) cursorGlobalRow() int {
	return e.visualOffset(e.cursor.Row) + e.cursorVisual().Row
}
