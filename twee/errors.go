package twee

import (
	"fmt"
	"unicode/utf8"
)

// ParseError is the single failure kind the parser surfaces: the document
// violated the grammar at some position. Offset is the byte position of the
// remaining input when parsing stopped; Remainder holds a bounded snippet of
// the input from that position so callers can locate the problem.
type ParseError struct {
	Offset    int
	Remainder string
	err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failed at offset %d (%q): %v", e.Offset, e.Remainder, e.err)
}

func (e *ParseError) Unwrap() error {
	return e.err
}

// snippet trims s to a short prefix on a rune boundary for error reporting.
func snippet(s string) string {
	const max = 48
	if len(s) <= max {
		return s
	}
	end := max
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	return s[:end] + "..."
}
