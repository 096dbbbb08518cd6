package editor

import "math"

// viewport is the pixel window the document is shown through.
type viewport struct {
	width, height float32
	scrollY       float32
}

// ViewportState is a stable host-facing snapshot of the scroll state.
type ViewportState struct {
	Width, Height float32
	// ScrollY is the document y coordinate shown at the top edge.
	ScrollY float32
	// TopVisualRow is the visual row intersecting the top edge.
	TopVisualRow int
	// MaxCharsPerRow is the wrap width in runes.
	MaxCharsPerRow int
}

// ViewportState returns the current viewport state.
func (e *Editor) ViewportState() ViewportState {
	return ViewportState{
		Width:          e.vp.width,
		Height:         e.vp.height,
		ScrollY:        e.vp.scrollY,
		TopVisualRow:   int(e.vp.scrollY / e.cfg.LineHeight),
		MaxCharsPerRow: e.maxChars,
	}
}

// ScrollOffset returns the vertical scroll offset in pixels.
func (e *Editor) ScrollOffset() float32 { return e.vp.scrollY }

// Resize sets the viewport size and re-wraps the document for the new
// width. The cursor is kept in view.
func (e *Editor) Resize(width, height float32) {
	e.apply(func() { e.resize(width, height) })
}

func (e *Editor) resize(width, height float32) {
	if width < 0 || isNaN(width) {
		width = 0
	}
	if height < 0 || isNaN(height) {
		height = 0
	}
	e.vp.width = width
	e.vp.height = height

	prev := e.maxChars
	e.maxChars = maxCharsFor(width, e.cfg.Padding, e.cfg.CharWidth)
	if prev != e.maxChars {
		e.log.Debug("rewrap", "width", width, "height", height, "maxChars", e.maxChars)
	}
}

// maxCharsFor returns max(1, floor((width − padding) / charWidth)), capped
// at math.MaxInt32.
func maxCharsFor(width, padding, charWidth float32) int {
	if charWidth <= 0 {
		return 1
	}
	avail := width - padding
	if avail < 0 {
		avail = 0
	}
	n := math.Floor(float64(avail / charWidth))
	if n > math.MaxInt32 {
		// Covers +Inf: a viewport this wide never wraps.
		return math.MaxInt32
	}
	return maxInt(int(n), 1)
}

// Scroll moves the view by dy pixels; positive dy scrolls towards the end
// of the document. The cursor does not move.
func (e *Editor) Scroll(dy float32) {
	if isNaN(dy) {
		return
	}
	e.vp.scrollY = e.clampScroll(e.vp.scrollY + dy)
}

// ensureCursorVisible scrolls the minimum distance that shows the cursor's
// whole visual row, then clamps the offset to the document.
func (e *Editor) ensureCursorVisible() {
	lh := e.cfg.LineHeight
	cursorY := float32(e.cursorGlobalRow()) * lh

	switch {
	case cursorY < e.vp.scrollY:
		e.vp.scrollY = cursorY
	case cursorY+lh > e.vp.scrollY+e.vp.height:
		e.vp.scrollY = cursorY + lh - e.vp.height
	}
	e.vp.scrollY = e.clampScroll(e.vp.scrollY)
}

// maxScroll returns max(0, totalVisualHeight − viewportHeight).
func (e *Editor) maxScroll() float32 {
	total := float32(e.VisualRowCount()) * e.cfg.LineHeight
	if total <= e.vp.height {
		return 0
	}
	return total - e.vp.height
}

func (e *Editor) clampScroll(y float32) float32 {
	if y < 0 {
		return 0
	}
	if m := e.maxScroll(); y > m {
		return m
	}
	return y
}

func isNaN(f float32) bool { return f != f }
