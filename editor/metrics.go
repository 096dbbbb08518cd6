package editor

import "github.com/OnlyF0uR/blackscript/buffer"

// metricsCache holds word and character counts for one buffer version.
type metricsCache struct {
	valid   bool
	version uint64
	counts  buffer.Counts

	// recomputes counts how often the document was walked.
	recomputes int
}

func (c *metricsCache) invalidate() { c.valid = false }

func (c *metricsCache) get(b *buffer.Buffer) buffer.Counts {
	if c.valid && c.version == b.Version() {
		return c.counts
	}
	c.counts = b.Counts()
	c.version = b.Version()
	c.valid = true
	c.recomputes++
	return c.counts
}

// WordCount returns the number of whitespace-separated words.
func (e *Editor) WordCount() int { return e.counts.get(e.buf).Words }

// CharCount returns the number of runes in the document, line breaks
// excluded.
func (e *Editor) CharCount() int { return e.counts.get(e.buf).Chars }
