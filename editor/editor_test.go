package editor

import (
	"testing"

	"github.com/OnlyF0uR/blackscript/buffer"
)

// newCellEditor returns an editor measured in terminal cells: one unit per
// rune and per row, no padding.
func newCellEditor(text string, width, height float32) *Editor {
	return New(Config{
		Text:       text,
		CharWidth:  1,
		LineHeight: 1,
		Padding:    -1,
		Width:      width,
		Height:     height,
	})
}

func TestNew_EmptyDocument(t *testing.T) {
	e := New(Config{})

	if got, want := e.LineCount(), 1; got != want {
		t.Fatalf("line count: got %d, want %d", got, want)
	}
	if got, want := e.WordCount(), 0; got != want {
		t.Fatalf("words: got %d, want %d", got, want)
	}
	if got, want := e.CharCount(), 0; got != want {
		t.Fatalf("chars: got %d, want %d", got, want)
	}
	if got, want := e.Cursor(), (buffer.Pos{}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	if !e.CursorVisible() {
		t.Fatalf("cursor visible: got false, want true")
	}
	if got, want := e.MaxCharsPerRow(), 120; got != want {
		t.Fatalf("max chars before first resize: got %d, want %d", got, want)
	}
}

func TestNew_DefaultStyleAndMetrics(t *testing.T) {
	e := New(Config{})

	if got, want := e.DefaultStyle(), (buffer.Style{Font: "Courier New", Size: 16}); got != want {
		t.Fatalf("default style: got %+v, want %+v", got, want)
	}
	if got, want := e.Metrics(), MetricsForFontSize(16); got != want {
		t.Fatalf("metrics: got %+v, want %+v", got, want)
	}
	if got, want := e.Metrics().LeftMargin(), float32(10); got != want {
		t.Fatalf("left margin: got %v, want %v", got, want)
	}
}

func TestNew_NegativePaddingMeansNone(t *testing.T) {
	e := newCellEditor("", 10, 10)
	if got, want := e.Metrics().Padding, float32(0); got != want {
		t.Fatalf("padding: got %v, want %v", got, want)
	}
	if got, want := e.MaxCharsPerRow(), 10; got != want {
		t.Fatalf("max chars: got %d, want %d", got, want)
	}
}

func TestTypeText_HelloWorld(t *testing.T) {
	e := New(Config{})
	e.TypeText("hello world")

	if got, want := e.CharCount(), 11; got != want {
		t.Fatalf("chars: got %d, want %d", got, want)
	}
	if got, want := e.WordCount(), 2; got != want {
		t.Fatalf("words: got %d, want %d", got, want)
	}
	hpos, vpos := e.CursorPosition()
	if hpos != 11 || vpos != 0 {
		t.Fatalf("cursor position: got (%d, %d), want (11, 0)", hpos, vpos)
	}
}

func TestTypeText_EnterSplitsAtEnd(t *testing.T) {
	e := New(Config{})
	e.TypeText("hello world")
	e.Key(KeyEnter)

	if got, want := e.LineCount(), 2; got != want {
		t.Fatalf("line count: got %d, want %d", got, want)
	}
	if got, want := e.Cursor(), (buffer.Pos{Row: 1, Col: 0}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	if got, want := e.Line(0).String(), "hello world"; got != want {
		t.Fatalf("line 0: got %q, want %q", got, want)
	}
	if got, want := e.Line(1).Len(), 0; got != want {
		t.Fatalf("line 1 len: got %d, want %d", got, want)
	}
}

func TestTypeText_NewlinesSplitLines(t *testing.T) {
	e := New(Config{})
	e.TypeText("ab\r\ncd\ref\ngh")

	if got, want := e.Text(), "ab\ncd\nef\ngh"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := e.Cursor(), (buffer.Pos{Row: 3, Col: 2}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestTypeText_EmptyIsNoOp(t *testing.T) {
	e := New(Config{Text: "x"})
	v := e.Version()
	e.TypeText("")
	if got := e.Version(); got != v {
		t.Fatalf("version: got %d, want %d", got, v)
	}
}

func TestTypeText_UsesDefaultStyle(t *testing.T) {
	e := New(Config{Text: "ab"})
	e.SetCursor(buffer.Pos{Row: 0, Col: 1})
	e.SetDefaultStyle("Mono Bold", 20)
	e.TypeText("X")

	line := e.Line(0)
	if got, want := line.String(), "aXb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := line.StyleAt(1), (buffer.Style{Font: "Mono Bold", Size: 20}); got != want {
		t.Fatalf("typed rune style: got %+v, want %+v", got, want)
	}
	if got, want := line.StyleAt(0), (buffer.Style{Font: "Courier New", Size: 16}); got != want {
		t.Fatalf("existing rune style: got %+v, want %+v", got, want)
	}
}

func TestSetDefaultStyle_NonPositiveSizeKeepsSize(t *testing.T) {
	e := New(Config{})
	e.SetDefaultStyle("Serif", 0)
	if got, want := e.DefaultStyle(), (buffer.Style{Font: "Serif", Size: 16}); got != want {
		t.Fatalf("style: got %+v, want %+v", got, want)
	}
}

func TestVisibleLines_CopiesLines(t *testing.T) {
	e := New(Config{Text: "a\nb\nc"})

	lines := e.VisibleLines(2)
	if got, want := len(lines), 2; got != want {
		t.Fatalf("limited lines: got %d, want %d", got, want)
	}
	if got, want := len(e.VisibleLines(-1)), 3; got != want {
		t.Fatalf("all lines: got %d, want %d", got, want)
	}
	if got, want := lines[1].String(), "b"; got != want {
		t.Fatalf("line 1: got %q, want %q", got, want)
	}
}

func TestSetCursor_Clamps(t *testing.T) {
	e := New(Config{Text: "abc\nde"})
	e.SetCursor(buffer.Pos{Row: 9, Col: 9})
	if got, want := e.Cursor(), (buffer.Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	e.SetCursor(buffer.Pos{Row: -1, Col: -1})
	if got, want := e.Cursor(), (buffer.Pos{}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestToggleCursorVisibility_DoesNotTouchDocument(t *testing.T) {
	e := New(Config{Text: "abc"})
	v := e.Version()

	e.ToggleCursorVisibility()
	if e.CursorVisible() {
		t.Fatalf("cursor visible after toggle: got true, want false")
	}
	e.ToggleCursorVisibility()
	if !e.CursorVisible() {
		t.Fatalf("cursor visible after second toggle: got false, want true")
	}
	if got := e.Version(); got != v {
		t.Fatalf("version: got %d, want %d", got, v)
	}
}
