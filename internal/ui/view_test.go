package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestViewListsThemesWithHeader(t *testing.T) {
	m := newTestModel(testDocument())
	lines := strings.Split(m.View(), "\n")
	want := []string{"Organizer", "▌ 1. Faith", "▌ 2. Hope", "▌ 3. Love", ""}
	for i, line := range want {
		if lines[i] != line {
			t.Fatalf("line %d: expected %q, got %q\n%s", i, line, lines[i], m.View())
		}
	}
	if last := lines[len(lines)-1]; !strings.HasPrefix(last, filterPromptText) {
		t.Fatalf("expected filter prompt on the last line, got %q", last)
	}
}

func TestViewReportsNoMatches(t *testing.T) {
	m := newTestModel(testDocument())
	m.currentLevel().SetFilter("zz", 2)
	if view := m.View(); !strings.Contains(view, `No matches for "zz"`) {
		t.Fatalf("expected no-match message, got:\n%s", view)
	}
}

func TestViewShowsErrorAndFooter(t *testing.T) {
	m := NewModel(testDocument(), Options{Title: "Organizer", ShowFooter: true, Styles: newTestModel(testDocument()).styles})
	m.errMsg = "boom"
	view := m.View()
	if !strings.Contains(view, "Error: boom") {
		t.Fatalf("expected error line, got:\n%s", view)
	}
	if !strings.Contains(view, footerHint) {
		t.Fatalf("expected footer hint, got:\n%s", view)
	}
}

func TestViewHonoursWidth(t *testing.T) {
	m := newTestModel(testDocument())
	m.Update(tea.WindowSizeMsg{Width: 12, Height: 10})
	for _, line := range strings.Split(m.View(), "\n") {
		if w := lipgloss.Width(line); w > 12 {
			t.Fatalf("line %q is %d columns wide", line, w)
		}
	}
}

func TestViewScrollsVersePage(t *testing.T) {
	m := newTestModel(testDocument())
	m.Update(m.handleEnterKey()())
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 6})
	view := m.View()
	if !strings.Contains(view, "Organizer → Faith") {
		t.Fatalf("expected breadcrumb header, got:\n%s", view)
	}
	if strings.Contains(view, "Psalms") {
		t.Fatalf("expected later rows outside the viewport, got:\n%s", view)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if view = m.View(); strings.Contains(view, "▌ Faith") {
		t.Fatalf("expected heading scrolled away, got:\n%s", view)
	}
}

func TestTruncateText(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 0, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "h"},
	}
	for _, tc := range cases {
		if got := truncateText(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncateText(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestLimitHeightAddsEllipsis(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}}
	got := limitHeight(lines, 2, 10)
	if len(got) != 2 || got[1].text != "…" {
		t.Fatalf("unexpected trimmed lines %#v", got)
	}
}
