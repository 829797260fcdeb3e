package twee

import (
	"sort"

	"github.com/maruel/natural"
)

// Title returns the story title from the StoryTitle special passage. ok is
// false when the document had none.
func (s *Story) Title() (title string, ok bool) {
	if s.title == nil {
		return "", false
	}
	return s.title.resolve(s.source), true
}

// StartName returns the start-passage name declared in StoryData. The name is
// not validated against the passage map.
func (s *Story) StartName() (name string, ok bool) {
	if s.start == nil {
		return "", false
	}
	return s.start.resolve(s.source), true
}

// Start resolves the start passage. It returns nil when no start was declared
// or when the declared name is dangling.
func (s *Story) Start() *Passage {
	name, ok := s.StartName()
	if !ok {
		return nil
	}
	return s.Passage(name)
}

// Data returns story-level configuration from StoryData, or nil when the
// document had no StoryData block.
func (s *Story) Data() *StoryData {
	return s.data
}

// Passage looks up a passage by exact title. It returns nil when the title is
// unknown.
func (s *Story) Passage(name string) *Passage {
	p, ok := s.passages[name]
	if !ok {
		return nil
	}
	return &Passage{src: s.source, p: p}
}

// Len reports the number of passages.
func (s *Story) Len() int {
	return len(s.passages)
}

// Names returns all passage titles in natural sort order.
func (s *Story) Names() []string {
	names := make([]string, 0, len(s.passages))
	for name := range s.passages {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// Passages returns every passage, ordered by natural title order.
func (s *Story) Passages() []*Passage {
	names := s.Names()
	out := make([]*Passage, 0, len(names))
	for _, name := range names {
		out = append(out, s.Passage(name))
	}
	return out
}
