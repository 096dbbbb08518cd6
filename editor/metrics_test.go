package editor

import (
	"testing"

	"github.com/OnlyF0uR/blackscript/buffer"
)

func TestCounts_CachedPerVersion(t *testing.T) {
	e := New(Config{Text: "one two\nthree"})

	if got, want := e.WordCount(), 3; got != want {
		t.Fatalf("words: got %d, want %d", got, want)
	}
	if got, want := e.CharCount(), 12; got != want {
		t.Fatalf("chars: got %d, want %d", got, want)
	}
	if got, want := e.counts.recomputes, 1; got != want {
		t.Fatalf("recomputes after first read: got %d, want %d", got, want)
	}

	e.Key(KeyRight)
	e.Key(KeyDown)
	e.ToggleCursorVisibility()
	e.Scroll(10)
	e.Resize(300, 300)
	_ = e.WordCount()
	_ = e.CharCount()
	if got, want := e.counts.recomputes, 1; got != want {
		t.Fatalf("recomputes after non-edits: got %d, want %d", got, want)
	}

	e.SetCursor(buffer.Pos{Row: 1, Col: 5})
	e.TypeText(" four")
	if got, want := e.WordCount(), 4; got != want {
		t.Fatalf("words after edit: got %d, want %d", got, want)
	}
	if got, want := e.counts.recomputes, 2; got != want {
		t.Fatalf("recomputes after edit: got %d, want %d", got, want)
	}
}

func TestCounts_IgnoreLineBreaks(t *testing.T) {
	e := New(Config{Text: "a\n\nb"})
	if got, want := e.CharCount(), 2; got != want {
		t.Fatalf("chars: got %d, want %d", got, want)
	}
	if got, want := e.WordCount(), 2; got != want {
		t.Fatalf("words: got %d, want %d", got, want)
	}
}
