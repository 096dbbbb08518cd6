package editor

import (
	"math"

	"github.com/OnlyF0uR/blackscript/buffer"
)

// PointToPos maps viewport-relative pixel coordinates to a document
// position.
//
// Mapping rules:
// - y selects a visual row after adding the scroll offset; rows below the
//   document resolve to its last row
// - x left of the text margin maps to the row start
// - x past the row end maps to the last column that stays on that row
func (e *Editor) PointToPos(x, y float32) buffer.Pos {
	lh := e.cfg.LineHeight
	docY := y + e.vp.scrollY
	if docY < 0 || isNaN(docY) {
		docY = 0
	}
	visualRow := int(math.Floor(float64(docY / lh)))

	row, _, seg := e.rowAt(visualRow)

	col := 0
	if dx := x - e.Metrics().LeftMargin(); dx > 0 {
		col = int(math.Floor(float64(dx / e.cfg.CharWidth)))
	}
	hpos := columnInSegment(seg, col, e.buf.LineLen(row))
	return e.buf.ClampPos(buffer.Pos{Row: row, Col: hpos})
}

// PosToPoint maps a document position to the viewport-relative pixel
// coordinates of its top-left corner.
//
// ok is false when the position's row lies outside the viewport.
func (e *Editor) PosToPoint(p buffer.Pos) (x, y float32, ok bool) {
	p = e.buf.ClampPos(p)
	vis := LogicalToVisual(e.buf.View(p.Row), p.Col, e.maxChars)
	row := e.visualOffset(p.Row) + vis.Row

	x = e.Metrics().LeftMargin() + float32(vis.Col)*e.cfg.CharWidth
	y = float32(row)*e.cfg.LineHeight - e.vp.scrollY
	ok = y+e.cfg.LineHeight > 0 && y < e.vp.height
	return x, y, ok
}

// Click moves the cursor to the position under (x, y) and makes the cursor
// visible.
func (e *Editor) Click(x, y float32) {
	e.apply(func() {
		e.cursor = e.PointToPos(x, y)
		e.cursorVisible = true
	})
}
