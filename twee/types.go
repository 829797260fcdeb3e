// Package twee parses the Twee 3 interactive fiction format into a navigable
// story model: an optional title, an optional start passage and a map of
// named passages holding tags, optional metadata and ordered text/link
// content nodes.
//
// The parser is a pure function over a single immutable source string. Text
// values borrow ranges of that string whenever escape decoding does not force
// a copy; the Story keeps the source alive for them. Parsing is
// all-or-nothing: any grammar violation fails the whole document.
//
// See https://github.com/iftechfoundation/twine-specs/blob/master/twee-3-specification.md
package twee

// Type definitions for the story model.

// NodeKind discriminates passage content nodes.
type NodeKind int

const (
	// NodeText is a plain text run.
	NodeText NodeKind = iota
	// NodeLink is a reference to another passage.
	NodeLink
)

func (k NodeKind) String() string {
	switch k {
	case NodeText:
		return "text"
	case NodeLink:
		return "link"
	default:
		return "unknown"
	}
}

// Node is the resolved view of a single content node. For NodeText only Text
// is set; for NodeLink Text carries the display text and Target the
// destination passage name.
type Node struct {
	Kind   NodeKind
	Text   string
	Target string
}

// Link is a resolved (display text, target passage name) pair. The target is
// not validated; it may name a passage that does not exist.
type Link struct {
	Text   string
	Target string
}

// StoryData carries story-level configuration from the special StoryData
// passage. Every field is optional in the source; the start-passage name is
// exposed through Story.StartName instead.
type StoryData struct {
	IFID          string
	Format        string
	FormatVersion string
}

// internal, textBlock-based structures; built once during assembly and
// immutable afterwards

type contentNode struct {
	kind   NodeKind
	text   textBlock
	target textBlock
}

type passage struct {
	title    textBlock
	tags     []textBlock
	metadata *textBlock
	nodes    []contentNode
}

// Story is the parsed story model. It owns the source text; every borrowed
// text range inside resolves against it.
type Story struct {
	source   string
	title    *textBlock
	start    *textBlock
	data     *StoryData
	passages map[string]*passage
}
