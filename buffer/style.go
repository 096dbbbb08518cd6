package buffer

// FontID names a font family. The empty ID means the host's default font.
type FontID string

// Style is the per-rune presentation attached to document text.
type Style struct {
	Font FontID
	Size float32
}

// FallbackStyle fills style slots that reconciliation has to create.
var FallbackStyle = Style{Size: 12}

// Run is a maximal span [Start, End) of runes sharing one Style.
type Run struct {
	Start int
	End   int
	Style Style
}
