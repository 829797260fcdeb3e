package scan

import "strings"

// IndexUnescaped returns the byte offset of the first occurrence of sub in s
// that is not immediately preceded by a backslash, or -1 when none exists.
// The scan moves left to right and resumes just past each escaped occurrence.
// An empty sub is never found.
func IndexUnescaped(s, sub string) int {
	if sub == "" {
		return -1
	}
	from := 0
	for {
		j := strings.Index(s[from:], sub)
		if j < 0 {
			return -1
		}
		pos := from + j
		if pos == 0 || s[pos-1] != '\\' {
			return pos
		}
		from = pos + 1
	}
}

// SplitUnescaped splits s around the first unescaped occurrence of the
// literal separator sep, which may be longer than one character. found is
// false when no unescaped occurrence exists.
func SplitUnescaped(s, sep string) (before, after string, found bool) {
	pos := IndexUnescaped(s, sep)
	if pos < 0 {
		return "", "", false
	}
	return s[:pos], s[pos+len(sep):], true
}
