package scan

import (
	"fmt"
	"unicode/utf8"
)

// TakeDelimited extracts the prefix of s delimited by open and close, honoring
// nesting and backslash escapes. s must begin with open. The match includes
// both delimiters; rest starts immediately after it and is left unconsumed.
// Running out of input before the block closes is an error. open and close
// must be distinct runes.
func TakeDelimited(s string, open, close rune) (match, rest string, err error) {
	first, _ := utf8.DecodeRuneInString(s)
	if first != open {
		return "", "", fmt.Errorf("delimited block must begin with %q", open)
	}

	depth := 0
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		switch r {
		case '\\':
			// An escape pair is atomic and never affects depth.
			i += w
			if i < len(s) {
				_, nw := utf8.DecodeRuneInString(s[i:])
				i += nw
			}
		case open:
			depth++
			i += w
		case close:
			depth--
			i += w
			if depth == 0 {
				return s[:i], s[i:], nil
			}
		default:
			i += w
		}
	}
	return "", "", fmt.Errorf("incomplete delimited block: no matching %q", close)
}
