// Package settings loads blackscript's TOML settings file.
package settings

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/OnlyF0uR/blackscript/buffer"
	"github.com/OnlyF0uR/blackscript/editor"
	"github.com/OnlyF0uR/blackscript/tui"
)

var (
	// ErrUnknownKey is returned for settings keys blackscript does not know.
	ErrUnknownKey = errors.New("unknown settings key")
	// ErrInvalid is returned for settings values out of range.
	ErrInvalid = errors.New("invalid settings value")
)

// File is the decoded settings file. Zero fields keep the defaults.
type File struct {
	Font     string  `toml:"font"`
	FontSize float32 `toml:"font_size"`

	// Status shows the status bar (default: true).
	Status *bool `toml:"status"`
	// Blink is the cursor blink period as a Go duration, or "off".
	Blink string `toml:"blink"`
	// WheelRows is the number of rows one wheel notch scrolls.
	WheelRows int `toml:"wheel_rows"`
	// FollowCursor ignores the mouse wheel so the view only follows the
	// cursor.
	FollowCursor bool `toml:"follow_cursor"`
	// Color forces a color profile: "auto", "truecolor", "ansi256",
	// "ansi" or "none".
	Color string `toml:"color"`

	Fonts map[string]FontStyle `toml:"fonts"`
	Keys  Keys                 `toml:"keys"`
}

// FontStyle is the terminal look of runs in one font.
type FontStyle struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Bold       bool   `toml:"bold"`
	Italic     bool   `toml:"italic"`
	Underline  bool   `toml:"underline"`
}

// Keys overrides key bindings. A non-empty list replaces the default keys
// of that binding.
type Keys struct {
	Left          []string `toml:"left"`
	Right         []string `toml:"right"`
	Up            []string `toml:"up"`
	Down          []string `toml:"down"`
	Backspace     []string `toml:"backspace"`
	WordBackspace []string `toml:"word_backspace"`
	Delete        []string `toml:"delete"`
	WordDelete    []string `toml:"word_delete"`
	Enter         []string `toml:"enter"`
}

var profiles = map[string]termenv.Profile{
	"truecolor": termenv.TrueColor,
	"ansi256":   termenv.ANSI256,
	"ansi":      termenv.ANSI,
	"none":      termenv.Ascii,
}

// Load decodes the settings file at path.
func Load(path string) (File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("settings: load %s: %w", path, err)
	}
	if err := f.check(md); err != nil {
		return File{}, fmt.Errorf("settings: load %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes settings from TOML text.
func Parse(data string) (File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return File{}, fmt.Errorf("settings: parse: %w", err)
	}
	if err := f.check(md); err != nil {
		return File{}, fmt.Errorf("settings: parse: %w", err)
	}
	return f, nil
}

func (f File) check(md toml.MetaData) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if f.FontSize < 0 {
		return fmt.Errorf("%w: font_size %v", ErrInvalid, f.FontSize)
	}
	if f.WheelRows < 0 {
		return fmt.Errorf("%w: wheel_rows %d", ErrInvalid, f.WheelRows)
	}
	if _, err := f.blinkInterval(); err != nil {
		return err
	}
	if c := strings.ToLower(f.Color); c != "" && c != "auto" {
		if _, ok := profiles[c]; !ok {
			return fmt.Errorf("%w: color %q", ErrInvalid, f.Color)
		}
	}
	return nil
}

func (f File) blinkInterval() (time.Duration, error) {
	switch strings.ToLower(f.Blink) {
	case "":
		return 0, nil
	case "off", "none":
		return -1, nil
	}
	d, err := time.ParseDuration(f.Blink)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: blink %q", ErrInvalid, f.Blink)
	}
	return d, nil
}

// Profile returns the forced color profile. ok is false when the terminal
// should be detected.
func (f File) Profile() (p termenv.Profile, ok bool) {
	p, ok = profiles[strings.ToLower(f.Color)]
	return p, ok
}

// TUIConfig builds a terminal configuration whose styles are bound to r.
func (f File) TUIConfig(r *lipgloss.Renderer) tui.Config {
	cfg := tui.Config{
		Editor: editor.Config{
			Style: buffer.Style{Font: buffer.FontID(f.Font), Size: f.FontSize},
		},
		KeyMap: f.Keys.apply(tui.DefaultKeyMap()),
		Style:  tui.StyleFor(r),

		ShowStatus: f.Status == nil || *f.Status,
		WheelRows:  f.WheelRows,
	}
	cfg.BlinkInterval, _ = f.blinkInterval()
	if f.FollowCursor {
		cfg.ScrollPolicy = tui.ScrollFollowCursorOnly
	}

	if len(f.Fonts) > 0 {
		cfg.FontStyles = make(map[buffer.FontID]lipgloss.Style, len(f.Fonts))
		for name, fs := range f.Fonts {
			cfg.FontStyles[buffer.FontID(name)] = fs.style(r)
		}
	}
	return cfg
}

func (fs FontStyle) style(r *lipgloss.Renderer) lipgloss.Style {
	st := r.NewStyle().Bold(fs.Bold).Italic(fs.Italic).Underline(fs.Underline)
	if fs.Foreground != "" {
		st = st.Foreground(lipgloss.Color(fs.Foreground))
	}
	if fs.Background != "" {
		st = st.Background(lipgloss.Color(fs.Background))
	}
	return st
}

func (k Keys) apply(km tui.KeyMap) tui.KeyMap {
	override := func(b *key.Binding, keys []string) {
		if len(keys) > 0 {
			b.SetKeys(keys...)
		}
	}
	override(&km.Left, k.Left)
	override(&km.Right, k.Right)
	override(&km.Up, k.Up)
	override(&km.Down, k.Down)
	override(&km.Backspace, k.Backspace)
	override(&km.WordBackspace, k.WordBackspace)
	override(&km.Delete, k.Delete)
	override(&km.WordDelete, k.WordDelete)
	override(&km.Enter, k.Enter)
	return km
}
