package scan

import "unicode/utf8"

// A Matcher reports whether a boundary pattern begins at the start of s, and
// how many bytes it spans when it does.
type Matcher func(s string) (width int, ok bool)

// UntilPattern walks s one rune at a time, attempting match at every offset.
// On the first success it returns the text before the boundary and the
// remainder starting at the boundary, which stays unconsumed for the caller.
// Without a match the whole input is the result and rest is empty.
func UntilPattern(s string, match Matcher) (before, rest string) {
	for i := 0; i < len(s); {
		if _, ok := match(s[i:]); ok {
			return s[:i], s[i:]
		}
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return s, ""
}
