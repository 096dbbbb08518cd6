package editor

// Key is a normalized editing or navigation intent delivered by the host.
type Key uint8

const (
	KeyEnter Key = iota
	KeyBackspace
	KeyCtrlBackspace
	KeyDelete
	KeyCtrlDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

var keyNames = [...]string{
	KeyEnter:         "enter",
	KeyBackspace:     "backspace",
	KeyCtrlBackspace: "ctrl+backspace",
	KeyDelete:        "delete",
	KeyCtrlDelete:    "ctrl+delete",
	KeyLeft:          "left",
	KeyRight:         "right",
	KeyUp:            "up",
	KeyDown:          "down",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Key applies one intent. Unknown keys are ignored.
func (e *Editor) Key(k Key) {
	var op func()
	switch k {
	case KeyEnter:
		op = e.enter
	case KeyBackspace:
		op = e.backspace
	case KeyCtrlBackspace:
		op = e.ctrlBackspace
	case KeyDelete:
		op = e.deleteForward
	case KeyCtrlDelete:
		op = e.ctrlDelete
	case KeyLeft:
		op = e.moveLeft
	case KeyRight:
		op = e.moveRight
	case KeyUp:
		op = e.moveUp
	case KeyDown:
		op = e.moveDown
	default:
		return
	}
	e.apply(op)
}
