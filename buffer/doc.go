// Package buffer implements the styled document model for blackscript.
//
// A document is an ordered, never-empty sequence of lines. Every line holds
// runes plus one Style per rune; the two slices always have the same length
// once a mutation returns.
//
// Coordinates are 0-based (Row, Col) in runes. Col may equal the line length
// (end of line).
package buffer
