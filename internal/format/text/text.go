// Package text holds the fixed-width layout helpers shared by the loader and
// both front ends: word wrapping, capitalisation, rules and padding.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is the column width verses and rules are laid out to.
const DefaultWidth = 32

// Wrap word-wraps s to width columns and joins the lines with "\n".
// Runs of whitespace, including existing line breaks, collapse to a single
// space first, so wrapping already wrapped text gives the same result.
// Words longer than width are kept whole on their own line.
func Wrap(s string, width int) string {
	normalized := strings.Join(strings.Fields(s), " ")
	if normalized == "" {
		return ""
	}
	if width <= 0 {
		return normalized
	}
	w := wordwrap.NewWriter(width)
	w.Breakpoints = nil
	_, _ = w.Write([]byte(normalized))
	_ = w.Close()
	return w.String()
}

// Lines is Wrap split into individual lines. Blank input yields no lines.
func Lines(s string, width int) []string {
	wrapped := Wrap(s, width)
	if wrapped == "" {
		return nil
	}
	return strings.Split(wrapped, "\n")
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// Rule returns ch repeated width times.
func Rule(ch string, width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(ch, width)
}

// PadRight pads s with spaces up to width display cells. Strings already at
// or beyond width are returned unchanged.
func PadRight(s string, width int) string {
	pad := width - Width(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// Width reports the display width of s, ignoring ANSI escape sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}
