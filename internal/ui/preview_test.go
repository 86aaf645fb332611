package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestActivePreviewSummarisesHighlightedTheme(t *testing.T) {
	m := newTestModel(testDocument())
	data := m.activePreview()
	if data == nil {
		t.Fatalf("expected preview on the theme list")
	}
	if data.label != "Faith" {
		t.Fatalf("expected label Faith, got %q", data.label)
	}
	want := []string{"Psalms  2 verses", "Job     0 verses", "", "2 books, 2 verses"}
	if strings.Join(data.lines, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected preview lines %#v", data.lines)
	}
}

func TestActivePreviewAbsentOnVersePage(t *testing.T) {
	m := newTestModel(testDocument())
	m.Update(m.handleEnterKey()())
	if m.activePreview() != nil {
		t.Fatalf("expected no preview on a verse page")
	}
}

func TestPreviewPanelWidth(t *testing.T) {
	m := newTestModel(testDocument())
	if w := m.previewPanelWidth(); w != 0 {
		t.Fatalf("expected no panel before a resize, got %d", w)
	}
	m.width = 50
	if w := m.previewPanelWidth(); w != 0 {
		t.Fatalf("expected no panel on a narrow terminal, got %d", w)
	}
	m.width = 100
	if w := m.previewPanelWidth(); w != 40 {
		t.Fatalf("expected 40 columns, got %d", w)
	}
	if w := m.menuColumnWidth(); w != 60 {
		t.Fatalf("expected 60 menu columns, got %d", w)
	}
}

func TestRenderPreviewPanelDimensions(t *testing.T) {
	m := newTestModel(testDocument())
	panel := m.renderPreviewPanel(m.activePreview(), 30, 8)
	rows := strings.Split(panel, "\n")
	if len(rows) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if w := lipgloss.Width(row); w != 30 {
			t.Fatalf("row %q is %d columns wide", row, w)
		}
	}
	if !strings.Contains(rows[0], "Books: Faith") {
		t.Fatalf("expected titled border, got %q", rows[0])
	}
	if !strings.Contains(rows[1], "Psalms  2 verses") {
		t.Fatalf("expected first book row, got %q", rows[1])
	}
}

func TestViewSideBySideAtWideWidth(t *testing.T) {
	m := newTestModel(testDocument())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 12})
	if !m.hasSidePreview() {
		t.Fatalf("expected side preview at 100 columns")
	}
	view := m.View()
	if !strings.Contains(view, "2 books, 2 verses") {
		t.Fatalf("expected faith summary, got:\n%s", view)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if view = m.View(); !strings.Contains(view, "1 book, 1 verse") {
		t.Fatalf("expected hope summary after moving, got:\n%s", view)
	}
}
