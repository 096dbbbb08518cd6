package editor

import (
	"log/slog"

	"github.com/OnlyF0uR/blackscript/buffer"
)

const (
	defaultFont     buffer.FontID = "Courier New"
	defaultFontSize float32       = 16
	defaultPadding  float32       = 20
	defaultMaxChars               = 120
)

// Config configures an Editor. Zero values select the defaults noted on
// each field.
type Config struct {
	// Initial text for the buffer.
	Text string

	// Style applied to typed text (default: Courier New, 16).
	Style buffer.Style

	// Fixed advance of one rune (default: 0.6 × Style.Size).
	CharWidth float32
	// Height of one visual row (default: 1.2 × Style.Size).
	LineHeight float32
	// Horizontal padding, split evenly between the left and right margin
	// (default: 20). Use a negative value for no padding.
	Padding float32

	// Initial viewport size. Until a width is known, rows hold
	// defaultMaxChars runes.
	Width, Height float32

	// OnChange is called after every intent that changed content or moved
	// the cursor.
	OnChange func(ChangeEvent)

	// Logger receives debug records for structural edits (default: discard).
	Logger *slog.Logger
}

// Metrics are the resolved pixel metrics of an Editor.
type Metrics struct {
	CharWidth  float32
	LineHeight float32
	Padding    float32
}

// LeftMargin is the x offset of column 0.
func (m Metrics) LeftMargin() float32 { return m.Padding / 2 }

// MetricsForFontSize derives the default metrics for a monospace font of
// the given size.
func MetricsForFontSize(size float32) Metrics {
	return Metrics{
		CharWidth:  size * 0.6,
		LineHeight: size * 1.2,
		Padding:    defaultPadding,
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.Style.Font == "" {
		cfg.Style.Font = defaultFont
	}
	if cfg.Style.Size <= 0 {
		cfg.Style.Size = defaultFontSize
	}

	def := MetricsForFontSize(cfg.Style.Size)
	if cfg.CharWidth <= 0 {
		cfg.CharWidth = def.CharWidth
	}
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = def.LineHeight
	}
	switch {
	case cfg.Padding == 0:
		cfg.Padding = def.Padding
	case cfg.Padding < 0:
		cfg.Padding = 0
	}

	if cfg.Width < 0 {
		cfg.Width = 0
	}
	if cfg.Height < 0 {
		cfg.Height = 0
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
