package editor

import "strings"

// TypeText inserts text at the cursor with the default style and moves the
// cursor past it. Line breaks in text ("\n", "\r\n" or "\r") split the line
// like Enter.
func (e *Editor) TypeText(text string) {
	if text == "" {
		return
	}
	e.apply(func() {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
		for i, part := range strings.Split(text, "\n") {
			if i > 0 {
				e.enter()
			}
			e.insert(part)
		}
	})
}

func (e *Editor) insert(s string) {
	if s == "" {
		return
	}
	e.buf.EnsureLine(e.cursor.Row)
	e.cursor.Col += e.buf.InsertText(e.cursor.Row, e.cursor.Col, s, e.style)
}

func (e *Editor) enter() {
	e.buf.EnsureLine(e.cursor.Row)
	e.buf.SplitLine(e.cursor.Row, e.cursor.Col)
	e.log.Debug("split line", "row", e.cursor.Row, "col", e.cursor.Col)
	e.cursor.Row++
	e.cursor.Col = 0
}

func (e *Editor) backspace() {
	switch {
	case e.cursor.Col > 0:
		e.buf.RemoveChar(e.cursor.Row, e.cursor.Col-1)
		e.cursor.Col--
	case e.cursor.Row > 0:
		e.joinWithPrevious()
	}
}

// joinWithPrevious moves the cursor line onto the end of the line above.
func (e *Editor) joinWithPrevious() {
	prev := e.cursor.Row - 1
	col := e.buf.LineLen(prev)
	if !e.buf.JoinWithNext(prev) {
		return
	}
	e.log.Debug("join lines", "row", prev)
	e.cursor.Row = prev
	e.cursor.Col = col
}

// ctrlBackspace deletes back to the start of the word before the cursor,
// whitespace between the word and the cursor included.
func (e *Editor) ctrlBackspace() {
	if e.cursor.Col == 0 {
		e.backspace()
		return
	}
	start := e.buf.PrevWordBoundary(e.cursor.Row, e.cursor.Col)
	if start < e.cursor.Col {
		e.buf.DrainRange(e.cursor.Row, start, e.cursor.Col)
		e.cursor.Col = start
	}
}

func (e *Editor) deleteForward() {
	row := e.cursor.Row
	switch {
	case e.cursor.Col < e.buf.LineLen(row):
		e.buf.RemoveChar(row, e.cursor.Col)
	case row < e.buf.LineCount()-1:
		if e.buf.JoinWithNext(row) {
			e.log.Debug("join lines", "row", row)
		}
	}
}

// ctrlDelete deletes the whitespace after the cursor and the word that
// follows it. The cursor does not move.
func (e *Editor) ctrlDelete() {
	end := e.buf.NextWordBoundary(e.cursor.Row, e.cursor.Col)
	if end > e.cursor.Col {
		e.buf.DrainRange(e.cursor.Row, e.cursor.Col, end)
	}
}

func (e *Editor) moveLeft() {
	switch {
	case e.cursor.Col > 0:
		e.cursor.Col--
	case e.cursor.Row > 0:
		e.cursor.Row--
		e.cursor.Col = e.buf.LineLen(e.cursor.Row)
	}
}

func (e *Editor) moveRight() {
	switch {
	case e.cursor.Col < e.buf.LineLen(e.cursor.Row):
		e.cursor.Col++
	case e.cursor.Row < e.buf.LineCount()-1:
		e.cursor.Row++
		e.cursor.Col = 0
	}
}

// moveUp moves to the visual row above, keeping the visual column where
// the target row is long enough.
func (e *Editor) moveUp() {
	vis := e.cursorVisual()
	row := e.cursor.Row

	switch {
	case vis.Row > 0:
		// Same logical line, previous visual row.
	case row > 0:
		row--
		vis.Row = e.visualLineCount(row)
	default:
		return
	}

	line := e.buf.View(row)
	seg := SegmentAt(line, vis.Row-1, e.maxChars)
	e.cursor.Row = row
	e.cursor.Col = columnInSegment(seg, vis.Col, line.Len())
}

// moveDown moves to the visual row below, keeping the visual column where
// the target row is long enough.
func (e *Editor) moveDown() {
	vis := e.cursorVisual()
	row := e.cursor.Row

	target := vis.Row + 1
	if target >= e.visualLineCount(row) {
		if row >= e.buf.LineCount()-1 {
			return
		}
		row++
		target = 0
	}

	line := e.buf.View(row)
	seg := SegmentAt(line, target, e.maxChars)
	e.cursor.Row = row
	e.cursor.Col = columnInSegment(seg, vis.Col, line.Len())
}

// columnInSegment places visual column col inside seg. Columns past the row
// clamp to its last rune, or to the line end on the final row, so the
// result always lies on seg's visual row.
func columnInSegment(seg Segment, col, lineLen int) int {
	limit := seg.End - 1
	if seg.End >= lineLen {
		limit = lineLen
	}
	if limit < seg.Start {
		limit = seg.Start
	}
	return clampInt(seg.Start+col, seg.Start, limit)
}
