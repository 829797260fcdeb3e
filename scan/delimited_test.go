package scan

import "testing"

func TestTakeDelimitedSimple(t *testing.T) {
	in := `{"position":"900,600","size":"200,200"}`
	match, rest, err := TakeDelimited(in, '{', '}')
	if err != nil {
		t.Fatalf("TakeDelimited: %v", err)
	}
	if match != in || rest != "" {
		t.Fatalf("unexpected result: match=%q rest=%q", match, rest)
	}
}

func TestTakeDelimitedNested(t *testing.T) {
	match, rest, err := TakeDelimited("{a{b}c}", '{', '}')
	if err != nil {
		t.Fatalf("TakeDelimited: %v", err)
	}
	if match != "{a{b}c}" || rest != "" {
		t.Fatalf("unexpected result: match=%q rest=%q", match, rest)
	}
}

func TestTakeDelimitedUnbalanced(t *testing.T) {
	if _, _, err := TakeDelimited("{a{b}c", '{', '}'); err == nil {
		t.Fatalf("expected error for unbalanced block")
	}
}

func TestTakeDelimitedEscapedBrackets(t *testing.T) {
	in := `{"name":"I'm \{ joe","birth":"20 of July"}`
	match, _, err := TakeDelimited(in, '{', '}')
	if err != nil {
		t.Fatalf("TakeDelimited: %v", err)
	}
	if match != in {
		t.Fatalf("escaped brace affected depth: %q", match)
	}
}

func TestTakeDelimitedRemainder(t *testing.T) {
	in := `{"a":"b"} and some other stuff`
	match, rest, err := TakeDelimited(in, '{', '}')
	if err != nil {
		t.Fatalf("TakeDelimited: %v", err)
	}
	if match != `{"a":"b"}` {
		t.Fatalf("match mismatch: %q", match)
	}
	if rest != " and some other stuff" {
		t.Fatalf("remainder mismatch: %q", rest)
	}
}

func TestTakeDelimitedWrongStart(t *testing.T) {
	if _, _, err := TakeDelimited(`no opening brace`, '{', '}'); err == nil {
		t.Fatalf("expected error when input does not begin with the opener")
	}
}
