package twee

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"twee/scan"
)

// Block-by-block recursive-descent parser. The parser walks a single source
// string by absolute byte offset so that every extracted span can be kept as
// a borrowed range into the source instead of a copy.

const (
	headerPrefix = ":: "
	titleStop    = " \n\r[{"
	tagStop      = " ]"
	linkStop     = "\n\r]"
	linkOpen     = "[["
	linkClose    = "]]"
)

// Parse builds a Story from Twee 3 source text. The returned Story retains
// source to back its zero-copy text ranges. log may be nil; parse progress is
// reported at Debug, recoverable oddities (duplicate titles and such) at
// Warn. Any grammar violation aborts the whole parse and is returned as a
// *ParseError.
func Parse(source string, log *zap.Logger) (*Story, error) {
	if log == nil {
		log = zap.NewNop()
	}

	p := &parser{src: source, log: log}
	story := &Story{source: source, passages: make(map[string]*passage)}

	// every block parser skips trailing whitespace, only the first needs help
	p.skipWhitespace()
	for !p.done() {
		if err := p.parseBlock(story); err != nil {
			return nil, &ParseError{Offset: p.pos, Remainder: snippet(p.rest()), err: err}
		}
	}

	log.Debug("Parsed story", zap.Int("passages", len(story.passages)))
	return story, nil
}

type parser struct {
	src string
	pos int
	log *zap.Logger
}

func (p *parser) done() bool {
	return p.pos >= len(p.src)
}

func (p *parser) rest() string {
	return p.src[p.pos:]
}

func (p *parser) eat(prefix string) bool {
	if strings.HasPrefix(p.rest(), prefix) {
		p.pos += len(prefix)
		return true
	}
	return false
}

func (p *parser) eatLineEnding() bool {
	return p.eat("\r\n") || p.eat("\n")
}

// skipSpaces consumes horizontal whitespace.
func (p *parser) skipSpaces() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// skipWhitespace consumes whitespace including line breaks; used between
// blocks.
func (p *parser) skipWhitespace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// parseBlock recognizes one block at the current position, trying the special
// StoryTitle and StoryData passages before falling back to an ordinary
// passage. The special attempts backtrack when their header does not match;
// once a header matched, a malformed body is a hard failure.
func (p *parser) parseBlock(story *Story) error {
	mark := p.pos

	if title, ok := p.parseStoryTitle(); ok {
		if story.title != nil {
			p.log.Warn("Duplicate StoryTitle, keeping the last one")
		}
		story.title = &title
		return nil
	}
	p.pos = mark

	start, data, ok, err := p.parseStoryData()
	if err != nil {
		return err
	}
	if ok {
		if story.data != nil {
			p.log.Warn("Duplicate StoryData, keeping the last one")
		}
		if start == nil {
			p.log.Debug("StoryData without a start passage")
		}
		story.start = start
		story.data = data
		return nil
	}
	p.pos = mark

	pass, err := p.parsePassage()
	if err != nil {
		return err
	}
	name := pass.title.resolve(p.src)
	if _, exists := story.passages[name]; exists {
		p.log.Warn("Duplicate passage title, keeping the last one", zap.String("title", name))
	}
	story.passages[name] = pass
	p.log.Debug("Parsed passage", zap.String("title", name), zap.Int("nodes", len(pass.nodes)))
	return nil
}

// parseStoryTitle consumes a ":: StoryTitle" block: the remainder of the next
// line is the story title. ok is false when the block header does not match
// here.
func (p *parser) parseStoryTitle() (title textBlock, ok bool) {
	if !p.eat(":: StoryTitle") {
		return textBlock{}, false
	}
	if !p.eatLineEnding() {
		return textBlock{}, false
	}

	lo := p.pos
	if i := strings.IndexAny(p.rest(), "\r\n"); i >= 0 {
		p.pos += i
	} else {
		p.pos = len(p.src)
	}
	hi := p.pos
	p.skipWhitespace()
	return borrowedText(p.src, lo, hi), true
}

// parseStoryData consumes a ":: StoryData" block: a balanced JSON object
// whose "start" string field names the start passage. ok is false when the
// block header does not match here; a matched header with a malformed body is
// an error and fails the whole parse.
func (p *parser) parseStoryData() (start *textBlock, data *StoryData, ok bool, err error) {
	if !p.eat(":: StoryData") {
		return nil, nil, false, nil
	}
	if !p.eatLineEnding() {
		return nil, nil, false, nil
	}

	block, rem, err := scan.TakeDelimited(p.rest(), '{', '}')
	if err != nil {
		return nil, nil, true, fmt.Errorf("StoryData: %w", err)
	}
	p.pos = len(p.src) - len(rem)
	p.skipWhitespace()

	var dict map[string]any
	if err := json.Unmarshal([]byte(block), &dict); err != nil {
		return nil, nil, true, fmt.Errorf("StoryData: %w", err)
	}

	data = &StoryData{}
	if v, isString := dict["start"].(string); isString {
		tb := ownedText(v)
		start = &tb
	}
	if v, isString := dict["ifid"].(string); isString {
		data.IFID = v
	}
	if v, isString := dict["format"].(string); isString {
		data.Format = v
	}
	if v, isString := dict["format-version"].(string); isString {
		data.FormatVersion = v
	}
	return start, data, true, nil
}

// parsePassage consumes an ordinary passage: the ":: title [tags] {metadata}"
// header line, then the content block up to the next passage boundary.
func (p *parser) parsePassage() (*passage, error) {
	title, err := p.parseTitle()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()

	var tags []textBlock
	if strings.HasPrefix(p.rest(), "[") {
		if tags, err = p.parseTags(); err != nil {
			return nil, err
		}
		p.skipSpaces()
	}

	var meta *textBlock
	if strings.HasPrefix(p.rest(), "{") {
		block, _, err := scan.TakeDelimited(p.rest(), '{', '}')
		if err != nil {
			return nil, fmt.Errorf("passage metadata: %w", err)
		}
		lo := p.pos
		p.pos += len(block)
		tb := borrowedText(p.src, lo, p.pos)
		meta = &tb
		p.skipSpaces()
	}

	if !p.eatLineEnding() {
		return nil, errors.New("passage header is not terminated by a newline")
	}

	before, rem := scan.UntilPattern(p.rest(), passageBreak)
	contentLo := p.pos
	p.pos = len(p.src) - len(rem)
	p.skipWhitespace()

	content := strings.TrimRight(before, "\r\n")
	nodes, err := p.parseContent(contentLo, content)
	if err != nil {
		return nil, err
	}

	return &passage{title: title, tags: tags, metadata: meta, nodes: nodes}, nil
}

// passageBreak matches a newline immediately followed by "::", the boundary
// before the next passage header.
func passageBreak(s string) (width int, ok bool) {
	if strings.HasPrefix(s, "\n::") {
		return 3, true
	}
	return 0, false
}

// parseTitle consumes the ":: " prefix and the title: a maximal run of
// space-separated words with single interior spaces. Trailing spaces before
// tags, metadata or the newline stay out of the title.
func (p *parser) parseTitle() (textBlock, error) {
	if !p.eat(headerPrefix) {
		return textBlock{}, fmt.Errorf("passage header must begin with %q", headerPrefix)
	}

	s := p.rest()
	end := wordLen(s, titleStop)
	if end == 0 {
		return textBlock{}, errors.New("empty passage title")
	}
	for end < len(s) && s[end] == ' ' {
		next := wordLen(s[end+1:], titleStop)
		if next == 0 {
			break
		}
		end += 1 + next
	}

	lo := p.pos
	p.pos += end
	return borrowedText(p.src, lo, lo+end), nil
}

// parseTags consumes a "[tag tag ...]" list. The list may be empty; a
// dangling separator or a missing closing bracket is an error.
func (p *parser) parseTags() ([]textBlock, error) {
	if !p.eat("[") {
		return nil, errors.New("tag list must begin with '['")
	}

	var tags []textBlock
	for {
		w := wordLen(p.rest(), tagStop)
		if w == 0 {
			break
		}
		tags = append(tags, borrowedText(p.src, p.pos, p.pos+w))
		p.pos += w
		// A space separates tags only when another tag follows it.
		if !strings.HasPrefix(p.rest(), " ") || wordLen(p.src[p.pos+1:], tagStop) == 0 {
			break
		}
		p.pos++
	}

	if !p.eat("]") {
		return nil, errors.New("tag list is not terminated by ']'")
	}
	return tags, nil
}

// parseContent tokenizes a passage content block into text runs and links.
// base is the absolute offset of content within the source.
func (p *parser) parseContent(base int, content string) ([]contentNode, error) {
	var nodes []contentNode
	off := 0
	for off < len(content) {
		rem := content[off:]
		idx := scan.IndexUnescaped(rem, linkOpen)
		if idx != 0 {
			end := len(rem)
			if idx > 0 {
				end = idx
			}
			nodes = append(nodes, contentNode{
				kind: NodeText,
				text: borrowedText(p.src, base+off, base+off+end),
			})
			off += end
			continue
		}
		node, width, err := p.parseLink(base+off, rem)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		off += width
	}
	return nodes, nil
}

// parseLink consumes a "[[body]]" link at the start of s and interprets the
// body, trying the three separator notations in fixed precedence order:
// "text|target", "text->target", "target<-text". A body without a separator
// is both text and target. base is the absolute offset of s in the source.
func (p *parser) parseLink(base int, s string) (contentNode, int, error) {
	inner := s[len(linkOpen):]
	n := wordLen(inner, linkStop)
	if n == 0 {
		return contentNode{}, 0, errors.New("empty link body")
	}
	if !strings.HasPrefix(inner[n:], linkClose) {
		return contentNode{}, 0, fmt.Errorf("link is not terminated by %q", linkClose)
	}
	body := inner[:n]
	width := len(linkOpen) + n + len(linkClose)
	bodyBase := base + len(linkOpen)

	prefix := func(part string) textBlock {
		return borrowedText(p.src, bodyBase, bodyBase+len(part))
	}
	suffix := func(part string) textBlock {
		return borrowedText(p.src, bodyBase+len(body)-len(part), bodyBase+len(body))
	}

	var text, target textBlock
	if before, after, found := scan.SplitUnescaped(body, "|"); found {
		text, target = prefix(before), suffix(after)
	} else if before, after, found := scan.SplitUnescaped(body, "->"); found {
		text, target = prefix(before), suffix(after)
	} else if before, after, found := scan.SplitUnescaped(body, "<-"); found {
		// reversed notation: target first
		target, text = prefix(before), suffix(after)
	} else {
		text = prefix(body)
		target = text
	}

	return contentNode{kind: NodeLink, text: text, target: target}, width, nil
}

// wordLen reports how many bytes at the start of s belong to one word: a run
// of escape pairs and runes outside the stop set. A lone trailing backslash
// counts as an ordinary character.
func wordLen(s, stop string) int {
	i := 0
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) {
			_, w := utf8.DecodeRuneInString(s[i+1:])
			i += 1 + w
			continue
		}
		r, w := utf8.DecodeRuneInString(s[i:])
		if strings.ContainsRune(stop, r) {
			break
		}
		i += w
	}
	return i
}
