// Package scan provides the low-level escape-aware scanners behind the twee
// parser: escape decoding, balanced-delimiter extraction, pattern-boundary
// search and escaped-separator splitting. Everything here operates on plain
// strings and relative byte offsets; callers map results back onto the
// original source buffer.
package scan

import (
	"strings"
	"unicode/utf8"
)

// Unescape resolves backslash escapes in s: each backslash is dropped and the
// character following it is kept literally, whatever it is. The boolean
// reports whether decoding produced a new string; a span without a backslash
// comes back unchanged and unallocated. A trailing unmatched backslash ends
// decodable input and is dropped.
func Unescape(s string) (string, bool) {
	if !strings.ContainsRune(s, '\\') {
		return s, false
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			i++
			continue
		}
		i++
		if i >= len(s) {
			break
		}
		_, w := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[i : i+w])
		i += w
	}
	return b.String(), true
}
