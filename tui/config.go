package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/OnlyF0uR/blackscript/buffer"
	"github.com/OnlyF0uR/blackscript/editor"
)

const (
	defaultBlinkInterval = 500 * time.Millisecond
	defaultWheelRows     = 3
)

// Config configures a terminal Model.
type Config struct {
	// Editor configures the editing core. Metrics left at zero are measured
	// in terminal cells: one column per rune, one row per line, no padding.
	Editor editor.Config

	KeyMap KeyMap
	Style  Style

	// FontStyles maps font identifiers to the lipgloss style their runs are
	// drawn with. Runs in other fonts use Style.Text.
	FontStyles map[buffer.FontID]lipgloss.Style

	// ShowStatus reserves the bottom row for word, character and cursor
	// counts.
	ShowStatus bool

	ScrollPolicy ScrollPolicy

	// BlinkInterval is the cursor blink period (default: 500ms). A negative
	// value disables blinking.
	BlinkInterval time.Duration

	// WheelRows is the number of rows one wheel notch scrolls (default: 3).
	WheelRows int
}

func normalizeConfig(cfg Config) Config {
	if cfg.Editor.CharWidth <= 0 {
		cfg.Editor.CharWidth = 1
	}
	if cfg.Editor.LineHeight <= 0 {
		cfg.Editor.LineHeight = 1
	}
	if cfg.Editor.Padding == 0 {
		cfg.Editor.Padding = -1
	}
	if cfg.BlinkInterval == 0 {
		cfg.BlinkInterval = defaultBlinkInterval
	}
	if cfg.WheelRows <= 0 {
		cfg.WheelRows = defaultWheelRows
	}
	return cfg
}
