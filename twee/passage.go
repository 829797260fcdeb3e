package twee

import "strings"

// Passage is the resolved view over one parsed passage. It stays valid for
// the lifetime of the Story it came from.
type Passage struct {
	src string
	p   *passage
}

// Title returns the decoded passage title.
func (p *Passage) Title() string {
	return p.p.title.resolve(p.src)
}

// Tags returns the passage tags in the order they were written. Duplicates
// are preserved.
func (p *Passage) Tags() []string {
	if len(p.p.tags) == 0 {
		return nil
	}
	tags := make([]string, 0, len(p.p.tags))
	for _, t := range p.p.tags {
		tags = append(tags, t.resolve(p.src))
	}
	return tags
}

// Metadata returns the raw metadata block attached to the passage header,
// braces included. The engine does not interpret its fields. ok is false when
// the header carried no metadata.
func (p *Passage) Metadata() (meta string, ok bool) {
	if p.p.metadata == nil {
		return "", false
	}
	return p.p.metadata.resolve(p.src), true
}

// Nodes returns the passage content nodes in document order.
func (p *Passage) Nodes() []Node {
	if len(p.p.nodes) == 0 {
		return nil
	}
	nodes := make([]Node, 0, len(p.p.nodes))
	for _, n := range p.p.nodes {
		node := Node{Kind: n.kind, Text: n.text.resolve(p.src)}
		if n.kind == NodeLink {
			node.Target = n.target.resolve(p.src)
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// Links returns only the passage's link nodes as (text, target) pairs,
// skipping text runs.
func (p *Passage) Links() []Link {
	var links []Link
	for _, n := range p.p.nodes {
		if n.kind != NodeLink {
			continue
		}
		links = append(links, Link{
			Text:   n.text.resolve(p.src),
			Target: n.target.resolve(p.src),
		})
	}
	return links
}

// Text concatenates the display text of every content node, links included.
func (p *Passage) Text() string {
	var b strings.Builder
	for _, n := range p.p.nodes {
		b.WriteString(n.text.resolve(p.src))
	}
	return b.String()
}
