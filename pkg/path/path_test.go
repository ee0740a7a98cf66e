package path

import (
	"testing"

	"pgregory.net/rapid"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Path
	}{
		{"bare name", "asdf", New("asdf", "", "")},
		{"repo slug", "runicos/base", New("runicos/base", "", "")},
		{"repo slug with version", "runicos/base@0.1.2", New("runicos/base", "0.1.2", "")},
		{"version 'latest'", "runicos/base@latest", New("runicos/base", "latest", "")},
		{"url base", "https://github.com/hotg-ai/rune", New("https://github.com/hotg-ai/rune", "", "")},
		{"url base with version", "https://github.com/hotg-ai/rune@2", New("https://github.com/hotg-ai/rune", "2", "")},
		{
			"repo slug with version and sub_path",
			"hotg-ai/rune@v1.2#proc_blocks/normalize",
			New("hotg-ai/rune", "v1.2", "proc_blocks/normalize"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.src, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseRejectsEmptyString(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatalf("expected an error parsing the empty string")
	}
}

func TestParseRejectsDisallowedCharacters(t *testing.T) {
	if _, err := Parse("has spaces/in it"); err == nil {
		t.Fatalf("expected an error parsing a base containing a space")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		p    Path
		want string
	}{
		{"base only", New("asdf", "", ""), "asdf"},
		{"base and version", New("runicos/base", "0.1.2", ""), "runicos/base@0.1.2"},
		{"base and sub_path", New("hotg-ai/rune", "", "proc_blocks/fft"), "hotg-ai/rune#proc_blocks/fft"},
		{
			"base, version and sub_path",
			New("hotg-ai/rune", "v1.2", "proc_blocks/normalize"),
			"hotg-ai/rune@v1.2#proc_blocks/normalize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// genPath builds a rapid generator that only ever produces Paths whose
// components are drawn from the grammar's own character classes, so every
// generated Path is guaranteed parseable.
func genPath(t *rapid.T) Path {
	base := rapid.StringMatching(`[A-Za-z0-9:/._-]+`).Draw(t, "base")
	p := New(base, "", "")

	if rapid.Bool().Draw(t, "hasVersion") {
		p.Version = rapid.StringMatching(`[A-Za-z0-9./-]+`).Draw(t, "version")
	}
	if rapid.Bool().Draw(t, "hasSubPath") {
		p.SubPath = rapid.StringMatching(`[A-Za-z0-9._/-]+`).Draw(t, "sub_path")
	}
	return p
}

// TestPropertyRoundTrip checks spec.md §8 invariant 2: for every parseable
// Path p, parse(render(p)) == p.
func TestPropertyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := genPath(t)

		rendered := p.String()
		got, err := Parse(rendered)
		if err != nil {
			t.Fatalf("Parse(%q) failed to reparse a rendered Path: %v", rendered, err)
		}
		if got != p {
			t.Fatalf("round trip mismatch: %+v rendered as %q reparsed as %+v", p, rendered, got)
		}
	})
}
