package tui

// ScrollPolicy controls whether the view may move without the cursor.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the view even when the
	// cursor does not move.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly keeps vertical movement cursor-driven. Wheel
	// events are ignored.
	ScrollFollowCursorOnly
)
