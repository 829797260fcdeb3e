package scan

import "testing"

func TestUnescapeWithoutBackslash(t *testing.T) {
	in := "plain text with [brackets] and {braces}"
	out, changed := Unescape(in)
	if changed {
		t.Fatalf("expected no decoding for %q", in)
	}
	if out != in {
		t.Fatalf("input changed: %q", out)
	}
}

func TestUnescape(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`hello\]`, "hello]"},
		{`a\\b`, `a\b`},
		{`\[\[not a link\]\]`, "[[not a link]]"},
		{`\ leading space`, " leading space"},
		{`mixed \- and \| separators`, "mixed - and | separators"},
		{"esc\\apes", "escapes"},
	}
	for _, tc := range cases {
		out, changed := Unescape(tc.in)
		if !changed {
			t.Fatalf("expected decoding for %q", tc.in)
		}
		if out != tc.want {
			t.Fatalf("Unescape(%q) = %q, want %q", tc.in, out, tc.want)
		}
	}
}

func TestUnescapeTrailingBackslash(t *testing.T) {
	out, changed := Unescape(`ends here\`)
	if !changed {
		t.Fatalf("expected decoding")
	}
	if out != "ends here" {
		t.Fatalf("trailing backslash not dropped: %q", out)
	}
}

func TestUnescapeMultibyte(t *testing.T) {
	out, _ := Unescape("caf\\é")
	if out != "café" {
		t.Fatalf("multibyte escape mishandled: %q", out)
	}
}
