package buffer

import "unicode"

// Line is one logical line: runes plus an index-aligned Style per rune.
//
// The zero value is an empty line. Lines handed out by Buffer are copies;
// mutating them never affects the document.
type Line struct {
	content []rune
	styles  []Style
}

// NewLine returns a line holding text, every rune styled with st.
func NewLine(text string, st Style) Line {
	rs := []rune(text)
	styles := make([]Style, len(rs))
	for i := range styles {
		styles[i] = st
	}
	return Line{content: rs, styles: styles}
}

func (l Line) Len() int { return len(l.content) }

// RuneAt returns the rune at i. It panics when i is out of range, like a
// slice index.
func (l Line) RuneAt(i int) rune { return l.content[i] }

// StyleAt returns the style of the rune at i, or FallbackStyle when i is out
// of range.
func (l Line) StyleAt(i int) Style {
	if i < 0 || i >= len(l.styles) {
		return FallbackStyle
	}
	return l.styles[i]
}

func (l Line) String() string { return string(l.content) }

// Runes returns a copy of the line content.
func (l Line) Runes() []rune { return append([]rune(nil), l.content...) }

// Styles returns a copy of the per-rune styles.
func (l Line) Styles() []Style { return append([]Style(nil), l.styles...) }

// Slice returns the text in [start, end), clamped to the line.
func (l Line) Slice(start, end int) string {
	start = clampInt(start, 0, len(l.content))
	end = clampInt(end, start, len(l.content))
	return string(l.content[start:end])
}

// Runs returns the style runs covering [start, end), clamped to the line.
func (l Line) Runs(start, end int) []Run {
	start = clampInt(start, 0, len(l.content))
	end = clampInt(end, start, len(l.content))
	if start == end {
		return nil
	}

	var out []Run
	cur := Run{Start: start, End: start + 1, Style: l.StyleAt(start)}
	for i := start + 1; i < end; i++ {
		st := l.StyleAt(i)
		if st == cur.Style {
			cur.End = i + 1
			continue
		}
		out = append(out, cur)
		cur = Run{Start: i, End: i + 1, Style: st}
	}
	return append(out, cur)
}

// Clone returns a deep copy of l.
func (l Line) Clone() Line {
	return Line{content: l.Runes(), styles: l.Styles()}
}

// IsSpaceAt reports whether the rune at i is Unicode whitespace.
func (l Line) IsSpaceAt(i int) bool {
	return i >= 0 && i < len(l.content) && unicode.IsSpace(l.content[i])
}

func (l *Line) insert(pos int, r rune, st Style) {
	l.reconcile()
	pos = clampInt(pos, 0, len(l.content))

	l.content = append(l.content, 0)
	copy(l.content[pos+1:], l.content[pos:])
	l.content[pos] = r

	l.styles = append(l.styles, Style{})
	copy(l.styles[pos+1:], l.styles[pos:])
	l.styles[pos] = st
}

func (l *Line) remove(pos int) (rune, bool) {
	if pos < 0 || pos >= len(l.content) {
		return 0, false
	}
	r := l.content[pos]
	l.content = append(l.content[:pos], l.content[pos+1:]...)
	if pos < len(l.styles) {
		l.styles = append(l.styles[:pos], l.styles[pos+1:]...)
	}
	l.reconcile()
	return r, true
}

func (l *Line) drain(start, end int) []rune {
	start = clampInt(start, 0, len(l.content))
	end = clampInt(end, start, len(l.content))
	if start == end {
		return nil
	}

	out := append([]rune(nil), l.content[start:end]...)
	l.content = append(l.content[:start], l.content[end:]...)
	if start < len(l.styles) {
		se := minInt(end, len(l.styles))
		l.styles = append(l.styles[:start], l.styles[se:]...)
	}
	l.reconcile()
	return out
}

// split truncates l at pos and returns the remainder as a new line.
func (l *Line) split(pos int) *Line {
	pos = clampInt(pos, 0, len(l.content))
	l.reconcile()
	rest := &Line{
		content: append([]rune(nil), l.content[pos:]...),
		styles:  append([]Style(nil), l.styles[pos:]...),
	}
	l.content = l.content[:pos]
	l.styles = l.styles[:pos]
	return rest
}

func (l *Line) appendLine(other *Line) {
	l.reconcile()
	other.reconcile()
	l.content = append(l.content, other.content...)
	l.styles = append(l.styles, other.styles...)
}

// reconcile restores len(styles) == len(content), padding with
// FallbackStyle or truncating.
func (l *Line) reconcile() {
	n := len(l.content)
	switch {
	case len(l.styles) < n:
		for len(l.styles) < n {
			l.styles = append(l.styles, FallbackStyle)
		}
	case len(l.styles) > n:
		l.styles = l.styles[:n]
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
