// Package editor is the editing core of blackscript: a cursor controller
// over a buffer.Buffer, a greedy soft-wrap layout engine, and the scroll
// state that keeps the cursor inside a pixel viewport.
//
// Geometry is expressed in abstract pixels. Every rune advances by a fixed
// character width and every visual row is one line height tall, so a
// terminal host can use 1×1 cells while a graphical host passes font
// metrics.
//
// An Editor is owned by one session and is not safe for concurrent use;
// hosts that receive input on several goroutines must serialize calls.
package editor
