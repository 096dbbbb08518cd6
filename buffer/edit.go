package buffer

// InsertChar inserts r with style st at (row, col).
//
// Missing rows are created and col is clamped into the line.
func (b *Buffer) InsertChar(row, col int, r rune, st Style) {
	row = b.writableRow(row)
	b.lines[row].insert(col, r, st)
	b.version++
}

// InsertText inserts every rune of text at consecutive offsets starting at
// (row, col) and returns the number of runes inserted. Newlines are stored
// as ordinary runes; callers that want line breaks use SplitLine.
func (b *Buffer) InsertText(row, col int, text string, st Style) int {
	if text == "" {
		return 0
	}
	row = b.writableRow(row)
	line := b.lines[row]
	col = clampInt(col, 0, len(line.content))

	rs := []rune(text)
	line.reconcile()
	tail := append([]rune(nil), line.content[col:]...)
	tailStyles := append([]Style(nil), line.styles[col:]...)

	line.content = append(line.content[:col], rs...)
	line.content = append(line.content, tail...)
	line.styles = line.styles[:col]
	for range rs {
		line.styles = append(line.styles, st)
	}
	line.styles = append(line.styles, tailStyles...)

	b.version++
	return len(rs)
}

// RemoveChar removes the rune at (row, col). ok is false when there is
// nothing to remove.
func (b *Buffer) RemoveChar(row, col int) (r rune, ok bool) {
	if row < 0 || row >= len(b.lines) {
		return 0, false
	}
	r, ok = b.lines[row].remove(col)
	if ok {
		b.version++
	}
	return r, ok
}

// DrainRange removes [start, end) from row and returns the removed runes.
// Bounds are clamped; an empty range is a no-op.
func (b *Buffer) DrainRange(row, start, end int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	out := b.lines[row].drain(start, end)
	if len(out) > 0 {
		b.version++
	}
	return out
}

// SplitLine truncates row at col and moves the remainder, styles included,
// to a new line inserted right after it.
func (b *Buffer) SplitLine(row, col int) {
	row = b.writableRow(row)
	rest := b.lines[row].split(col)

	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = rest
	b.version++
}

// JoinWithNext appends row+1 to row and removes row+1. It reports false on
// the last line.
func (b *Buffer) JoinWithNext(row int) bool {
	if row < 0 || row >= len(b.lines)-1 {
		return false
	}
	b.lines[row].appendLine(b.lines[row+1])
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	b.version++
	return true
}

// writableRow clamps negative rows to 0 and pads the document so row exists.
func (b *Buffer) writableRow(row int) int {
	if row < 0 {
		row = 0
	}
	b.EnsureLine(row)
	return row
}
