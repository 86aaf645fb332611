package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jewfaith/organizer/internal/ui/command"
)

func TestHandleEscapeKeyFromRootQuits(t *testing.T) {
	m := newTestModel(testDocument())
	cmd := m.handleEscapeKey()
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestHandleEnterKeyOpensHighlightedTheme(t *testing.T) {
	m := newTestModel(testDocument())
	m.currentLevel().Cursor = 1
	cmd := m.handleEnterKey()
	if cmd == nil {
		t.Fatalf("expected load command")
	}
	if !m.loading || m.pendingID != "theme:hope" {
		t.Fatalf("expected pending load of theme:hope, got loading=%v pending=%q", m.loading, m.pendingID)
	}
	m.Update(cmd())
	if m.loading {
		t.Fatalf("expected loading cleared")
	}
	current := m.currentLevel()
	if current.ID != "theme:hope" || current.Title != "Hope" {
		t.Fatalf("expected hope level, got %q (%q)", current.ID, current.Title)
	}
	if len(current.Items) == 0 || current.Items[0].Label != "Hope" {
		t.Fatalf("expected verse page heading, got %#v", current.Items)
	}
}

func TestHandleEscapeKeyPopsLevelAndRestoresCursor(t *testing.T) {
	m := newTestModel(testDocument())
	m.currentLevel().Cursor = 2
	m.Update(m.handleEnterKey()())
	m.errMsg = "previous error"
	m.currentLevel().Cursor = 0
	m.stack[0].Cursor = 0

	if cmd := m.handleEscapeKey(); cmd != nil {
		t.Fatalf("expected no command when popping a level")
	}
	if len(m.stack) != 1 {
		t.Fatalf("expected stack to shrink to 1, got %d", len(m.stack))
	}
	if got := m.currentLevel().Cursor; got != 2 {
		t.Fatalf("expected cursor back on love, got %d", got)
	}
	if m.errMsg != "" {
		t.Fatalf("expected error message cleared, got %q", m.errMsg)
	}
}

func TestEnterTargetUsesMenuNumber(t *testing.T) {
	m := newTestModel(testDocument())
	root := m.currentLevel()
	root.SetFilter("2", 1)
	item, ok := m.enterTarget(root)
	if !ok || item.ID != "theme:hope" {
		t.Fatalf("expected theme:hope, got %#v (%v)", item, ok)
	}
}

func TestEnterTargetFallsBackToFilteredRow(t *testing.T) {
	m := newTestModel(testDocument())
	root := m.currentLevel()
	root.SetFilter("lo", 2)
	item, ok := m.enterTarget(root)
	if !ok || item.ID != "theme:love" {
		t.Fatalf("expected theme:love, got %#v (%v)", item, ok)
	}
}

func TestHandleEnterKeyWithoutMatchDoesNothing(t *testing.T) {
	m := newTestModel(testDocument())
	m.currentLevel().SetFilter("9", 1)
	if cmd := m.handleEnterKey(); cmd != nil {
		t.Fatalf("expected no command for an unmatched filter")
	}
	if m.loading {
		t.Fatalf("expected no pending load")
	}
}

func TestHandleEnterKeyOnVerseRowDoesNothing(t *testing.T) {
	m := newTestModel(testDocument())
	m.Update(m.handleEnterKey()())
	if cmd := m.handleEnterKey(); cmd != nil {
		t.Fatalf("expected verse rows to be inert")
	}
	if len(m.stack) != 2 {
		t.Fatalf("expected to stay on the verse page")
	}
}

func TestHandleLevelLoadedMsgIgnoresStaleResults(t *testing.T) {
	m := newTestModel(testDocument())
	m.loading = true
	m.pendingID = "theme:hope"
	m.handleLevelLoadedMsg(command.Result{ID: "theme:faith", Title: "Faith"})
	if !m.loading || len(m.stack) != 1 {
		t.Fatalf("expected stale result to be ignored")
	}
}

func TestHandleLevelLoadedMsgReportsError(t *testing.T) {
	m := newTestModel(testDocument())
	m.loading = true
	m.pendingID = "theme:hope"
	m.handleLevelLoadedMsg(command.Result{ID: "theme:hope", Err: errors.New("boom")})
	if m.loading {
		t.Fatalf("expected loading cleared")
	}
	if m.errMsg != "boom" {
		t.Fatalf("expected error message, got %q", m.errMsg)
	}
	if len(m.stack) != 1 {
		t.Fatalf("expected no level pushed on error")
	}
}

func TestHandleLevelLoadedMsgEmptyLevel(t *testing.T) {
	m := newTestModel(testDocument())
	m.loading = true
	m.pendingID = "theme:love"
	m.handleLevelLoadedMsg(command.Result{ID: "theme:love", Title: "Love"})
	if m.infoMsg != "Love has no entries." {
		t.Fatalf("expected empty-level notice, got %q", m.infoMsg)
	}
}

func TestArrowKeysWrap(t *testing.T) {
	m := newTestModel(testDocument())
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.currentLevel().Cursor; got != 2 {
		t.Fatalf("expected wrap to last row, got %d", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.currentLevel().Cursor; got != 0 {
		t.Fatalf("expected wrap to first row, got %d", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if got := m.currentLevel().Cursor; got != 2 {
		t.Fatalf("expected end to reach last row, got %d", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if got := m.currentLevel().Cursor; got != 0 {
		t.Fatalf("expected home to reach first row, got %d", got)
	}
}

func TestMouseWheelScrollsWithoutWrapping(t *testing.T) {
	m := newTestModel(testDocument())
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := m.currentLevel().Cursor; got != 2 {
		t.Fatalf("expected cursor clamped at last row, got %d", got)
	}
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if got := m.currentLevel().Cursor; got != 0 {
		t.Fatalf("expected cursor clamped at first row, got %d", got)
	}
}

func TestCtrlCQuitsFromAnyLevel(t *testing.T) {
	m := newTestModel(testDocument())
	m.Update(m.handleEnterKey()())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
