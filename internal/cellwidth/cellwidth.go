// Package cellwidth measures text in terminal cells.
//
// The editor core advances every rune by one fixed step. A terminal gives
// some runes zero or two cells, so the terminal host uses this package to
// keep its grid aligned with the core's columns.
package cellwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Placeholder stands in for runes that do not occupy exactly one cell.
const Placeholder = '\uFFFD'

// Rune returns the number of cells r occupies. A tab counts as one cell.
func Rune(r rune) int {
	if r == '\t' {
		return 1
	}
	return clusterWidth(string(r))
}

// String returns the number of cells s occupies, measured per grapheme
// cluster.
func String(s string) int {
	if s == "" {
		return 0
	}
	g := uniseg.NewGraphemes(s)
	w := 0
	for g.Next() {
		w += clusterWidth(g.Str())
	}
	return w
}

// Display returns the rune drawn for r on a one-cell-per-rune grid: tabs
// become spaces and runes wider or narrower than one cell become
// Placeholder.
func Display(r rune) rune {
	if r == '\t' {
		return ' '
	}
	if Rune(r) != 1 {
		return Placeholder
	}
	return r
}

func clusterWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(text); fallback > w {
			w = fallback
		}
	}
	return w
}
