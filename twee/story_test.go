package twee

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestStoryNamesNaturalOrder(t *testing.T) {
	story, err := Parse(":: Chapter 10\nx\n\n:: Chapter 2\nx\n\n:: Chapter 1\nx\n", zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	names := story.Names()
	want := []string{"Chapter 1", "Chapter 2", "Chapter 10"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v", i, names)
		}
	}
}

func TestStoryPassagesMatchesNames(t *testing.T) {
	story, err := Parse(":: B\nx\n\n:: A\ny\n", zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	passages := story.Passages()
	if len(passages) != 2 {
		t.Fatalf("expected 2 passages, got %d", len(passages))
	}
	if passages[0].Title() != "A" || passages[1].Title() != "B" {
		t.Fatalf("unexpected order: %q, %q", passages[0].Title(), passages[1].Title())
	}
}

func TestStoryUnknownPassage(t *testing.T) {
	story, err := Parse(":: A\nx\n", zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if story.Passage("nope") != nil {
		t.Fatalf("lookup of unknown title must return nil")
	}
}
