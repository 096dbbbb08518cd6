package editor

import (
	"log/slog"

	"github.com/OnlyF0uR/blackscript/buffer"
)

// Editor owns a document, its cursor, and the viewport it is shown in.
//
// The zero value is not usable; create editors with New.
type Editor struct {
	cfg Config
	log *slog.Logger

	buf    *buffer.Buffer
	cursor buffer.Pos
	style  buffer.Style

	cursorVisible bool

	vp       viewport
	maxChars int

	counts metricsCache
}

func New(cfg Config) *Editor {
	cfg = normalizeConfig(cfg)
	e := &Editor{
		cfg:           cfg,
		log:           cfg.Logger,
		buf:           buffer.New(cfg.Text, buffer.Options{Style: cfg.Style}),
		style:         cfg.Style,
		cursorVisible: true,
		maxChars:      defaultMaxChars,
	}
	e.counts.invalidate()
	if cfg.Width > 0 || cfg.Height > 0 {
		e.resize(cfg.Width, cfg.Height)
	}
	return e
}

// Text returns the document text with lines joined by '\n'.
func (e *Editor) Text() string { return e.buf.Text() }

// Version increments on every content change.
func (e *Editor) Version() uint64 { return e.buf.Version() }

func (e *Editor) LineCount() int { return e.buf.LineCount() }

// Line returns a copy of logical row.
func (e *Editor) Line(row int) buffer.Line { return e.buf.Line(row) }

// VisibleLines returns copies of the first limit logical lines, content and
// per-rune style included. A negative limit returns every line.
func (e *Editor) VisibleLines(limit int) []buffer.Line { return e.buf.Lines(limit) }

// Cursor returns the logical cursor position.
func (e *Editor) Cursor() buffer.Pos { return e.cursor }

// CursorPosition returns the cursor as (hpos, vpos): column first.
func (e *Editor) CursorPosition() (hpos, vpos int) { return e.cursor.Col, e.cursor.Row }

// CursorVisual returns the cursor's visual row within its logical line and
// its column within that row.
func (e *Editor) CursorVisual() VisualPos { return e.cursorVisual() }

// CursorVisible reports the cosmetic cursor visibility flag.
func (e *Editor) CursorVisible() bool { return e.cursorVisible }

// ToggleCursorVisibility flips cursor visibility. It never touches the
// document or the cached counts.
func (e *Editor) ToggleCursorVisibility() { e.cursorVisible = !e.cursorVisible }

func (e *Editor) SetCursorVisible(v bool) { e.cursorVisible = v }

// DefaultStyle returns the style applied to typed text.
func (e *Editor) DefaultStyle() buffer.Style { return e.style }

// SetDefaultStyle sets the style applied to text typed from now on.
// Existing text keeps its style.
func (e *Editor) SetDefaultStyle(font buffer.FontID, size float32) {
	if size <= 0 {
		size = e.style.Size
	}
	e.style = buffer.Style{Font: font, Size: size}
}

// Metrics returns the resolved pixel metrics.
func (e *Editor) Metrics() Metrics {
	return Metrics{
		CharWidth:  e.cfg.CharWidth,
		LineHeight: e.cfg.LineHeight,
		Padding:    e.cfg.Padding,
	}
}

// MaxCharsPerRow returns the number of runes that fit on one visual row.
func (e *Editor) MaxCharsPerRow() int { return e.maxChars }

// SetCursor moves the cursor to p, clamped into the document.
func (e *Editor) SetCursor(p buffer.Pos) {
	e.apply(func() { e.cursor = e.buf.ClampPos(p) })
}

// apply runs op as one intent: it re-validates the cursor, keeps it in
// view, and reports what changed.
func (e *Editor) apply(op func()) {
	prevVersion := e.buf.Version()
	prevCursor := e.cursor
	prevScroll := e.vp.scrollY

	op()

	e.cursor = e.buf.ClampPos(e.cursor)
	e.ensureCursorVisible()

	if e.cfg.OnChange == nil {
		return
	}
	kind := ChangeCursor
	switch {
	case e.buf.Version() != prevVersion:
		kind = ChangeContent
	case e.cursor == prevCursor:
		return
	}
	e.cfg.OnChange(ChangeEvent{
		Kind:      kind,
		Version:   e.buf.Version(),
		Cursor:    e.cursor,
		Visual:    e.cursorVisual(),
		ScrollDir: scrollDir(prevScroll, e.vp.scrollY),
	})
}

func scrollDir(before, after float32) int {
	switch {
	case after > before:
		return 1
	case after < before:
		return -1
	default:
		return 0
	}
}
