package editor

import (
	"testing"

	"github.com/OnlyF0uR/blackscript/buffer"
)

func TestKey_EditingIntents(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursor     buffer.Pos
		key        Key
		wantText   string
		wantCursor buffer.Pos
	}{
		{
			name:       "backspace mid line",
			text:       "abc",
			cursor:     buffer.Pos{Row: 0, Col: 2},
			key:        KeyBackspace,
			wantText:   "ac",
			wantCursor: buffer.Pos{Row: 0, Col: 1},
		},
		{
			name:       "backspace joins with previous line",
			text:       "ab\ncd",
			cursor:     buffer.Pos{Row: 1, Col: 0},
			key:        KeyBackspace,
			wantText:   "abcd",
			wantCursor: buffer.Pos{Row: 0, Col: 2},
		},
		{
			name:       "backspace at document start",
			text:       "ab",
			cursor:     buffer.Pos{},
			key:        KeyBackspace,
			wantText:   "ab",
			wantCursor: buffer.Pos{},
		},
		{
			name:       "delete mid line",
			text:       "abc",
			cursor:     buffer.Pos{Row: 0, Col: 1},
			key:        KeyDelete,
			wantText:   "ac",
			wantCursor: buffer.Pos{Row: 0, Col: 1},
		},
		{
			name:       "delete at line end joins next line",
			text:       "ab\ncd",
			cursor:     buffer.Pos{Row: 0, Col: 2},
			key:        KeyDelete,
			wantText:   "abcd",
			wantCursor: buffer.Pos{Row: 0, Col: 2},
		},
		{
			name:       "delete at document end",
			text:       "ab",
			cursor:     buffer.Pos{Row: 0, Col: 2},
			key:        KeyDelete,
			wantText:   "ab",
			wantCursor: buffer.Pos{Row: 0, Col: 2},
		},
		{
			name:       "enter mid line",
			text:       "abcd",
			cursor:     buffer.Pos{Row: 0, Col: 2},
			key:        KeyEnter,
			wantText:   "ab\ncd",
			wantCursor: buffer.Pos{Row: 1, Col: 0},
		},
		{
			name:       "enter at line start",
			text:       "ab",
			cursor:     buffer.Pos{},
			key:        KeyEnter,
			wantText:   "\nab",
			wantCursor: buffer.Pos{Row: 1, Col: 0},
		},
		{
			name:       "ctrl+backspace removes word",
			text:       "foo   bar",
			cursor:     buffer.Pos{Row: 0, Col: 9},
			key:        KeyCtrlBackspace,
			wantText:   "foo   ",
			wantCursor: buffer.Pos{Row: 0, Col: 6},
		},
		{
			name:       "ctrl+backspace removes whitespace and word",
			text:       "foo   ",
			cursor:     buffer.Pos{Row: 0, Col: 6},
			key:        KeyCtrlBackspace,
			wantText:   "",
			wantCursor: buffer.Pos{},
		},
		{
			name:       "ctrl+backspace at line start joins",
			text:       "ab\ncd",
			cursor:     buffer.Pos{Row: 1, Col: 0},
			key:        KeyCtrlBackspace,
			wantText:   "abcd",
			wantCursor: buffer.Pos{Row: 0, Col: 2},
		},
		{
			name:       "ctrl+delete removes whitespace and word",
			text:       "foo   bar baz",
			cursor:     buffer.Pos{Row: 0, Col: 3},
			key:        KeyCtrlDelete,
			wantText:   "foo baz",
			wantCursor: buffer.Pos{Row: 0, Col: 3},
		},
		{
			name:       "ctrl+delete at line end",
			text:       "ab\ncd",
			cursor:     buffer.Pos{Row: 0, Col: 2},
			key:        KeyCtrlDelete,
			wantText:   "ab\ncd",
			wantCursor: buffer.Pos{Row: 0, Col: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(Config{Text: tt.text})
			e.SetCursor(tt.cursor)
			e.Key(tt.key)

			if got := e.Text(); got != tt.wantText {
				t.Fatalf("text: got %q, want %q", got, tt.wantText)
			}
			if got := e.Cursor(); got != tt.wantCursor {
				t.Fatalf("cursor: got %v, want %v", got, tt.wantCursor)
			}
		})
	}
}

func TestKey_CtrlBackspaceAfterTyping(t *testing.T) {
	e := New(Config{})
	e.TypeText("foo   bar")
	e.Key(KeyCtrlBackspace)

	hpos, vpos := e.CursorPosition()
	if hpos != 6 || vpos != 0 {
		t.Fatalf("cursor position: got (%d, %d), want (6, 0)", hpos, vpos)
	}
	if got, want := e.Text(), "foo   "; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestKey_HorizontalMovesCrossLines(t *testing.T) {
	e := New(Config{Text: "ab\ncd"})
	e.SetCursor(buffer.Pos{Row: 0, Col: 2})

	e.Key(KeyRight)
	if got, want := e.Cursor(), (buffer.Pos{Row: 1, Col: 0}); got != want {
		t.Fatalf("right at line end: got %v, want %v", got, want)
	}
	e.Key(KeyLeft)
	if got, want := e.Cursor(), (buffer.Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("left at line start: got %v, want %v", got, want)
	}

	e.SetCursor(buffer.Pos{})
	e.Key(KeyLeft)
	if got, want := e.Cursor(), (buffer.Pos{}); got != want {
		t.Fatalf("left at document start: got %v, want %v", got, want)
	}

	e.SetCursor(buffer.Pos{Row: 1, Col: 2})
	e.Key(KeyRight)
	if got, want := e.Cursor(), (buffer.Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("right at document end: got %v, want %v", got, want)
	}
}

func TestKey_VerticalMovesWalkWrappedRows(t *testing.T) {
	e := newCellEditor("hello world", 5, 10)
	e.SetCursor(buffer.Pos{Row: 0, Col: 11})

	steps := []struct {
		key  Key
		want buffer.Pos
	}{
		{KeyUp, buffer.Pos{Row: 0, Col: 5}},
		{KeyUp, buffer.Pos{Row: 0, Col: 0}},
		{KeyUp, buffer.Pos{Row: 0, Col: 0}},
		{KeyDown, buffer.Pos{Row: 0, Col: 5}},
		{KeyDown, buffer.Pos{Row: 0, Col: 6}},
		{KeyDown, buffer.Pos{Row: 0, Col: 6}},
	}
	for i, st := range steps {
		e.Key(st.key)
		if got := e.Cursor(); got != st.want {
			t.Fatalf("step %d (%v): got %v, want %v", i, st.key, got, st.want)
		}
	}
}

func TestKey_VerticalMovesKeepVisualColumnAcrossLines(t *testing.T) {
	e := newCellEditor("abcdefgh\nxy", 4, 10)
	e.SetCursor(buffer.Pos{Row: 0, Col: 6})

	if got, want := e.CursorVisual(), (VisualPos{Row: 1, Col: 2}); got != want {
		t.Fatalf("visual: got %+v, want %+v", got, want)
	}

	e.Key(KeyDown)
	if got, want := e.Cursor(), (buffer.Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("down: got %v, want %v", got, want)
	}
	e.Key(KeyUp)
	if got, want := e.Cursor(), (buffer.Pos{Row: 0, Col: 6}); got != want {
		t.Fatalf("up: got %v, want %v", got, want)
	}
}

func TestKey_VerticalMoveClampsToShorterRow(t *testing.T) {
	e := newCellEditor("abcdefgh\nab", 20, 10)
	e.SetCursor(buffer.Pos{Row: 0, Col: 7})

	e.Key(KeyDown)
	if got, want := e.Cursor(), (buffer.Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("down: got %v, want %v", got, want)
	}
}

func TestKey_UnknownIsIgnored(t *testing.T) {
	e := New(Config{Text: "ab"})
	v := e.Version()
	e.Key(Key(200))
	if got := e.Version(); got != v {
		t.Fatalf("version: got %d, want %d", got, v)
	}
	if got, want := Key(200).String(), "unknown"; got != want {
		t.Fatalf("name: got %q, want %q", got, want)
	}
	if got, want := KeyCtrlDelete.String(), "ctrl+delete"; got != want {
		t.Fatalf("name: got %q, want %q", got, want)
	}
}

func TestColumnInSegment(t *testing.T) {
	tests := []struct {
		seg     Segment
		col     int
		lineLen int
		want    int
	}{
		{Segment{0, 5}, 2, 11, 2},
		{Segment{0, 5}, 9, 11, 4},
		{Segment{5, 6}, 3, 11, 5},
		{Segment{6, 11}, 9, 11, 11},
		{Segment{}, 4, 0, 0},
	}
	for _, tt := range tests {
		if got := columnInSegment(tt.seg, tt.col, tt.lineLen); got != tt.want {
			t.Fatalf("columnInSegment(%+v, %d, %d): got %d, want %d", tt.seg, tt.col, tt.lineLen, got, tt.want)
		}
	}
}
