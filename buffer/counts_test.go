package buffer

import "testing"

func TestBuffer_Counts(t *testing.T) {
	cases := []struct {
		text  string
		chars int
		words int
	}{
		{text: "", chars: 0, words: 0},
		{text: "hello world", chars: 11, words: 2},
		{text: "  leading and trailing  ", chars: 24, words: 3},
		{text: "one\ntwo three\n\n four", chars: 17, words: 4},
		{text: "tab\tseparated nbsp", chars: 18, words: 3},
		{text: "   ", chars: 3, words: 0},
	}

	for _, tc := range cases {
		got := New(tc.text, Options{}).Counts()
		if got.Chars != tc.chars || got.Words != tc.words {
			t.Fatalf("Counts(%q): got %+v, want {Chars:%d Words:%d}", tc.text, got, tc.chars, tc.words)
		}
	}
}

func TestBuffer_Counts_WordSplitAcrossLines(t *testing.T) {
	b := New("helloworld", Options{})
	b.SplitLine(0, 5)
	if got := b.Counts().Words; got != 2 {
		t.Fatalf("words after split: got %d, want %d", got, 2)
	}
}
