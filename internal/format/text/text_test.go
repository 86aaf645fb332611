package text

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapBreaksAtWidth(t *testing.T) {
	got := Lines("Blessed is the one who does not walk in step with the wicked", DefaultWidth)
	want := []string{
		"Blessed is the one who does not",
		"walk in step with the wicked",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
}

func TestWrapCollapsesWhitespace(t *testing.T) {
	got := Wrap("  The Lord\tis my\n\n shepherd  ", DefaultWidth)
	if got != "The Lord is my shepherd" {
		t.Fatalf("expected collapsed text, got %q", got)
	}
}

func TestWrapKeepsLongWordsWhole(t *testing.T) {
	long := strings.Repeat("x", 40)
	got := Lines("a "+long+" b", DefaultWidth)
	want := []string{"a", long, "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}
}

func TestWrapDoesNotSplitOnHyphen(t *testing.T) {
	got := Lines("the well-known and long-suffering servant of all", 20)
	for _, line := range got {
		if Width(line) > 20 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
	joined := strings.Join(got, " ")
	if !strings.Contains(joined, "well-known") || !strings.Contains(joined, "long-suffering") {
		t.Fatalf("expected hyphenated words intact, got %q", got)
	}
}

func TestWrapEmpty(t *testing.T) {
	if got := Wrap("   \n\t", DefaultWidth); got != "" {
		t.Fatalf("expected empty wrap, got %q", got)
	}
	if got := Lines("", DefaultWidth); got != nil {
		t.Fatalf("expected no lines, got %#v", got)
	}
}

func TestWrapPropertiesOnRandomText(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	words := []string{"a", "in", "the", "grace", "mercy", "righteousness", "everlasting", "and", "of", strings.Repeat("z", 35)}
	for i := 0; i < 200; i++ {
		n := rng.Intn(40)
		parts := make([]string, n)
		for j := range parts {
			parts[j] = words[rng.Intn(len(words))]
		}
		input := strings.Join(parts, strings.Repeat(" ", 1+rng.Intn(3)))
		wrapped := Wrap(input, DefaultWidth)
		for _, line := range strings.Split(wrapped, "\n") {
			if Width(line) > DefaultWidth && strings.Contains(line, " ") {
				t.Fatalf("line %q exceeds %d columns for input %q", line, DefaultWidth, input)
			}
		}
		if again := Wrap(wrapped, DefaultWidth); again != wrapped {
			t.Fatalf("wrap not idempotent:\nfirst:  %q\nsecond: %q", wrapped, again)
		}
		if got, want := strings.Fields(wrapped), strings.Fields(input); !cmp.Equal(got, want) {
			t.Fatalf("wrap changed words: %s", cmp.Diff(want, got))
		}
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"faith":         "Faith",
		"PSALMS":        "Psalms",
		"song of songs": "Song of songs",
		"éxodo":         "Éxodo",
	}
	for in, want := range cases {
		if got := Capitalize(in); got != want {
			t.Fatalf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRuleAndPad(t *testing.T) {
	if got := Rule("=", 4); got != "====" {
		t.Fatalf("unexpected rule %q", got)
	}
	if got := Rule("-", 0); got != "" {
		t.Fatalf("expected empty rule, got %q", got)
	}
	if got := PadRight("1. Faith", 12); got != "1. Faith    " {
		t.Fatalf("unexpected padding %q", got)
	}
	if got := PadRight("1. Faithfulness", 5); got != "1. Faithfulness" {
		t.Fatalf("expected untouched string, got %q", got)
	}
	if got := PadRight("\x1b[33mab\x1b[0m", 4); got != "\x1b[33mab\x1b[0m  " {
		t.Fatalf("expected ANSI-aware padding, got %q", got)
	}
}
