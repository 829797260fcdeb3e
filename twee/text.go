package twee

import "twee/scan"

// textBlock is the two-way ownership representation backing every text value
// the parser produces: either a byte range borrowed from the story source, or
// an independently owned string when escape decoding had to rewrite the
// content, or when the value never was a slice of the source to begin with.
// Escape decoding happens exactly once, at construction; resolve only slices.
type textBlock struct {
	owned  bool
	value  string
	lo, hi int
}

// borrowedText builds the block for src[lo:hi]. The range is kept only when
// the raw span decodes to itself; otherwise the decoded copy is stored.
func borrowedText(src string, lo, hi int) textBlock {
	if decoded, changed := scan.Unescape(src[lo:hi]); changed {
		return textBlock{owned: true, value: decoded}
	}
	return textBlock{lo: lo, hi: hi}
}

// ownedText decodes value and stores the result independently of any source
// buffer. Used for values synthesized outside the story source, such as the
// start-passage name pulled out of StoryData JSON.
func ownedText(value string) textBlock {
	decoded, _ := scan.Unescape(value)
	return textBlock{owned: true, value: decoded}
}

// resolve returns the plain text view. src must be the buffer the block was
// built against; owned values ignore it.
func (t textBlock) resolve(src string) string {
	if t.owned {
		return t.value
	}
	return src[t.lo:t.hi]
}
