package buffer

import "unicode"

// Counts summarizes document text.
type Counts struct {
	// Chars is the number of runes over all lines, line breaks excluded.
	Chars int
	// Words is the number of whitespace-separated fields.
	Words int
}

// Counts walks the whole document once.
func (b *Buffer) Counts() Counts {
	var c Counts
	for _, line := range b.lines {
		c.Chars += len(line.content)
		inWord := false
		for _, r := range line.content {
			if unicode.IsSpace(r) {
				inWord = false
				continue
			}
			if !inWord {
				c.Words++
				inWord = true
			}
		}
	}
	return c
}
