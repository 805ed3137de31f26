package shell

// Cursor reads whitespace-separated words from a line of text. It never
// modifies the text it was created with; words are substrings of it.
type Cursor struct {
	text string
	pos  int
}

// NewCursor returns a cursor positioned at the start of text.
func NewCursor(text string) *Cursor {
	return &Cursor{text: text}
}

// Next skips leading whitespace and returns the following run of
// non-whitespace characters. The cursor is left at the start of the next
// word. It returns false once only whitespace remains.
func (c *Cursor) Next() (string, bool) {
	start := skipSpace(c.text, c.pos)
	if start >= len(c.text) {
		c.pos = len(c.text)
		return "", false
	}

	end := start
	for end < len(c.text) && !isSpace(c.text[end]) {
		end++
	}

	c.pos = skipSpace(c.text, end)
	return c.text[start:end], true
}

// Rest returns the text that has not been consumed yet.
func (c *Cursor) Rest() string {
	return c.text[c.pos:]
}

// Empty reports whether no text remains.
func (c *Cursor) Empty() bool {
	return c.pos >= len(c.text)
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// isSpace matches the C locale's isspace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func trimTrailingSpace(s string) string {
	end := len(s)
	for end > 0 && isSpace(s[end-1]) {
		end--
	}
	return s[:end]
}
