package editor

import "unicode"

// Content is the read-only text the wrap engine measures. buffer.Line and
// buffer.LineView implement it.
type Content interface {
	Len() int
	RuneAt(i int) rune
}

// RuneSlice adapts a []rune to Content.
type RuneSlice []rune

func (s RuneSlice) Len() int          { return len(s) }
func (s RuneSlice) RuneAt(i int) rune { return s[i] }

// Segment is one visual row of a logical line: runes [Start, End).
type Segment struct {
	Start int
	End   int
}

func (s Segment) Len() int { return s.End - s.Start }

// VisualPos is a position in wrapped space: Row is the visual row within
// (or across, depending on the caller) logical lines, Col the rune offset
// inside that row.
type VisualPos struct {
	Row int
	Col int
}

// FindWrapPosition returns the end of the visual row that starts at start.
//
// The row holds at most maxChars runes. When the rest of the line does not
// fit, the row breaks after the last whitespace inside the window, or hard
// breaks at the window end when the window holds no whitespace. The result
// is greater than start whenever start < c.Len().
func FindWrapPosition(c Content, start, maxChars int) int {
	n := c.Len()
	if maxChars < 1 {
		maxChars = 1
	}
	if start < 0 {
		start = 0
	}
	if start >= n {
		return n
	}

	if maxChars >= n-start {
		return n
	}
	end := start + maxChars
	for i := end - 1; i >= start; i-- {
		if unicode.IsSpace(c.RuneAt(i)) {
			return i + 1
		}
	}
	return end
}

// Segments returns the greedy wrap of c. An empty line yields a single empty
// segment, so every logical line occupies at least one visual row.
func Segments(c Content, maxChars int) []Segment {
	n := c.Len()
	if n == 0 {
		return []Segment{{}}
	}

	segs := make([]Segment, 0, 1+n/maxInt(maxChars, 1))
	for pos := 0; pos < n; {
		end := FindWrapPosition(c, pos, maxChars)
		segs = append(segs, Segment{Start: pos, End: end})
		pos = end
	}
	return segs
}

// VisualLineCount returns the number of visual rows c wraps into.
func VisualLineCount(c Content, maxChars int) int {
	n := c.Len()
	if n == 0 {
		return 1
	}
	rows := 0
	for pos := 0; pos < n; rows++ {
		pos = FindWrapPosition(c, pos, maxChars)
	}
	return rows
}

// LogicalToVisual maps col to the row of c that contains it and the offset
// within that row. A column on a wrap boundary belongs to the row it
// starts; the end of the line belongs to the last row.
func LogicalToVisual(c Content, col, maxChars int) VisualPos {
	n := c.Len()
	col = clampInt(col, 0, n)

	row, pos := 0, 0
	for pos < n {
		end := FindWrapPosition(c, pos, maxChars)
		if col < end || end >= n {
			break
		}
		pos = end
		row++
	}
	return VisualPos{Row: row, Col: col - pos}
}

// SegmentAt returns visual row `row` of c, clamped to the last row.
func SegmentAt(c Content, row, maxChars int) Segment {
	n := c.Len()
	pos := 0
	for i := 0; pos < n; i++ {
		end := FindWrapPosition(c, pos, maxChars)
		if i >= row || end >= n {
			return Segment{Start: pos, End: end}
		}
		pos = end
	}
	return Segment{}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
