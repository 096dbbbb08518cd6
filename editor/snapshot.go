package editor

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/OnlyF0uR/blackscript/buffer"
)

// SnapshotToken identifies the render-relevant state of an Editor. Equal
// tokens mean a host may reuse its previous frame.
type SnapshotToken uint64

// RowMap describes one visual row intersecting the viewport.
type RowMap struct {
	// ScreenRow counts visual rows from the top edge of the viewport; the
	// first row may start above the edge when ScrollY is not row-aligned.
	ScreenRow int
	// Y is the viewport-relative top of the row in pixels.
	Y float32

	DocRow       int
	SegmentIndex int
	Start        int
	End          int

	// HasCursor is set on the row the cursor is drawn on.
	HasCursor bool
	// CursorCol is the cursor column within the row when HasCursor is set.
	CursorCol int
}

// RenderSnapshot is everything a renderer needs to draw one frame.
type RenderSnapshot struct {
	Token         SnapshotToken
	Version       uint64
	Viewport      ViewportState
	Cursor        buffer.Pos
	CursorVisible bool
	Rows          []RowMap
}

// Snapshot returns the visual rows currently intersecting the viewport.
func (e *Editor) Snapshot() RenderSnapshot {
	vs := e.ViewportState()
	snap := RenderSnapshot{
		Token:         e.snapshotToken(),
		Version:       e.buf.Version(),
		Viewport:      vs,
		Cursor:        e.cursor,
		CursorVisible: e.cursorVisible,
	}

	lh := e.cfg.LineHeight
	cursorVis := e.cursorVisual()
	visualRow := 0
	screenRow := 0
	for row := 0; row < e.buf.LineCount(); row++ {
		segs := Segments(e.buf.View(row), e.maxChars)
		for i, seg := range segs {
			y := float32(visualRow)*lh - e.vp.scrollY
			visualRow++
			if y+lh <= 0 {
				continue
			}
			if y >= e.vp.height {
				return snap
			}

			rm := RowMap{
				ScreenRow:    screenRow,
				Y:            y,
				DocRow:       row,
				SegmentIndex: i,
				Start:        seg.Start,
				End:          seg.End,
			}
			if row == e.cursor.Row && i == cursorVis.Row {
				rm.HasCursor = true
				rm.CursorCol = cursorVis.Col
			}
			snap.Rows = append(snap.Rows, rm)
			screenRow++
		}
	}
	return snap
}

// SnapshotToken returns the token of the current render state without
// building the row map.
func (e *Editor) SnapshotToken() SnapshotToken { return e.snapshotToken() }

func (e *Editor) snapshotToken() SnapshotToken {
	h := fnv.New64a()
	writeU64 := func(v uint64) {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v)
		_, _ = h.Write(b[:])
	}
	writeI := func(v int) { writeU64(uint64(v)) }
	writeF := func(v float32) { writeU64(uint64(math.Float32bits(v))) }
	writeB := func(v bool) {
		if v {
			writeU64(1)
			return
		}
		writeU64(0)
	}

	writeU64(e.buf.Version())
	writeI(e.cursor.Row)
	writeI(e.cursor.Col)
	writeB(e.cursorVisible)
	writeF(e.vp.width)
	writeF(e.vp.height)
	writeF(e.vp.scrollY)
	writeI(e.maxChars)
	writeF(e.style.Size)
	_, _ = h.Write([]byte(e.style.Font))
	return SnapshotToken(h.Sum64())
}
