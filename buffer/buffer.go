package buffer

import "strings"

type Options struct {
	// Style is applied to the initial text.
	Style Style
}

// Buffer is the document: an ordered, never-empty sequence of lines.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	lines   []*Line
	version uint64

	opt Options
}

func New(text string, opt Options) *Buffer {
	b := &Buffer{opt: opt}
	for _, s := range splitLines(text) {
		l := NewLine(s, opt.Style)
		b.lines = append(b.lines, &l)
	}
	return b
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line.content))
	}
	return sb.String()
}

// Version increments on every effective content change.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) LineCount() int { return len(b.lines) }

// LineLen returns the rune length of row, or 0 when row is out of range.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row].content)
}

// Line returns a copy of row. Out-of-range rows yield an empty line.
func (b *Buffer) Line(row int) Line {
	if row < 0 || row >= len(b.lines) {
		return Line{}
	}
	return b.lines[row].Clone()
}

// Lines returns copies of the first limit lines (all lines when limit < 0).
func (b *Buffer) Lines(limit int) []Line {
	if limit < 0 || limit > len(b.lines) {
		limit = len(b.lines)
	}
	out := make([]Line, 0, limit)
	for _, l := range b.lines[:limit] {
		out = append(out, l.Clone())
	}
	return out
}

// View returns a read-only view of row without copying it. The view is
// valid until the next mutation of the buffer.
func (b *Buffer) View(row int) LineView {
	if row < 0 || row >= len(b.lines) {
		return LineView{}
	}
	return LineView{l: b.lines[row]}
}

// ClampPos clamps p into the document.
func (b *Buffer) ClampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.LineLen)
}

// EnsureLine pads the document with empty lines up to and including row.
func (b *Buffer) EnsureLine(row int) {
	if len(b.lines) == 0 {
		b.lines = append(b.lines, &Line{})
		b.version++
	}
	if row < len(b.lines) {
		return
	}
	for len(b.lines) <= row {
		b.lines = append(b.lines, &Line{})
	}
	b.version++
}

// LineView exposes a document line for reading only.
type LineView struct {
	l *Line
}

func (v LineView) Len() int {
	if v.l == nil {
		return 0
	}
	return len(v.l.content)
}

func (v LineView) RuneAt(i int) rune { return v.l.content[i] }

func (v LineView) StyleAt(i int) Style {
	if v.l == nil {
		return FallbackStyle
	}
	return v.l.StyleAt(i)
}

func (v LineView) IsSpaceAt(i int) bool {
	if v.l == nil {
		return false
	}
	return v.l.IsSpaceAt(i)
}

func (v LineView) Slice(start, end int) string {
	if v.l == nil {
		return ""
	}
	return v.l.Slice(start, end)
}

func (v LineView) Runs(start, end int) []Run {
	if v.l == nil {
		return nil
	}
	return v.l.Runs(start, end)
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	parts := strings.Split(text, "\n")
	if len(parts) == 0 {
		parts = []string{""}
	}
	return parts
}
