package editor

import "github.com/OnlyF0uR/blackscript/buffer"

// ChangeKind tells content edits apart from pure cursor motion.
type ChangeKind uint8

const (
	ChangeCursor ChangeKind = iota
	ChangeContent
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeContent:
		return "content"
	default:
		return "cursor"
	}
}

// ChangeEvent is passed to Config.OnChange after an intent changed the
// document or moved the cursor.
type ChangeEvent struct {
	Kind    ChangeKind
	Version uint64
	Cursor  buffer.Pos
	Visual  VisualPos

	// ScrollDir is -1, 0 or 1: the direction the intent scrolled the view.
	ScrollDir int
}
