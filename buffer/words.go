package buffer

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - newline is a hard boundary (so this operates on a single logical line)

// PrevWordBoundary returns the column reached by walking left from col over
// a whitespace run and then over the word before it.
func (b *Buffer) PrevWordBoundary(row, col int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	line := b.lines[row]
	i := clampInt(col, 0, len(line.content))
	for i > 0 && line.IsSpaceAt(i-1) {
		i--
	}
	for i > 0 && !line.IsSpaceAt(i-1) {
		i--
	}
	return i
}

// NextWordBoundary returns the column reached by walking right from col
// over a whitespace run and then over the following word.
func (b *Buffer) NextWordBoundary(row, col int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	line := b.lines[row]
	i := clampInt(col, 0, len(line.content))
	for i < len(line.content) && line.IsSpaceAt(i) {
		i++
	}
	for i < len(line.content) && !line.IsSpaceAt(i) {
		i++
	}
	return i
}
