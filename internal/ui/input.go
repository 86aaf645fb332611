package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jewfaith/organizer/internal/logging/events"
)

const (
	filterPromptText  = "» "
	filterPlaceholder = "(type to filter, a number to open)"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l != nil && before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// filterEdit runs edit against the current level and, when it changed
// something, records the caret move, clears status lines and traces it.
func (m *Model) filterEdit(edit func(*level) bool, trace func(*level)) bool {
	if m.loading {
		return false
	}
	current := m.currentLevel()
	if current == nil {
		return false
	}
	before := current.FilterCursorPos()
	if !edit(current) {
		return false
	}
	m.noteFilterCursorChange(current, before)
	if trace != nil {
		trace(current)
	}
	return true
}

// textChanged is the trace hook for edits that change the filter text.
func (m *Model) textChanged(event func(levelID, filter string)) func(*level) {
	return func(l *level) {
		m.errMsg = ""
		m.infoMsg = ""
		event(l.ID, l.Filter)
		m.syncViewport(l)
	}
}

func caretMoved(event func(levelID string, pos int)) func(*level) {
	return func(l *level) {
		event(l.ID, l.FilterCursor)
	}
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+u":
		return m.filterEdit(func(l *level) bool {
			if l.Filter == "" {
				return false
			}
			l.SetFilter("", 0)
			return true
		}, m.textChanged(func(id, _ string) { events.Filter.Cleared(id) }))
	case "ctrl+w":
		return m.filterEdit((*level).DeleteFilterWordBackward, m.textChanged(events.Filter.WordBackspace))
	case "ctrl+a":
		return m.filterEdit((*level).MoveFilterCursorStart, caretMoved(events.Filter.Cursor))
	case "ctrl+e":
		return m.filterEdit((*level).MoveFilterCursorEnd, caretMoved(events.Filter.Cursor))
	case "alt+b":
		return m.filterEdit((*level).MoveFilterCursorWordBackward, caretMoved(events.Filter.CursorWord))
	case "alt+f":
		return m.filterEdit((*level).MoveFilterCursorWordForward, caretMoved(events.Filter.CursorWord))
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.filterEdit((*level).DeleteFilterRuneBackward, m.textChanged(events.Filter.Backspace))
	case tea.KeyLeft:
		return m.filterEdit((*level).MoveFilterCursorRuneBackward, caretMoved(events.Filter.Cursor))
	case tea.KeyRight:
		return m.filterEdit((*level).MoveFilterCursorRuneForward, caretMoved(events.Filter.Cursor))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	return m.filterEdit(func(l *level) bool {
		return l.InsertFilterText(text)
	}, m.textChanged(events.Filter.Append))
}

// filterPrompt renders the bottom filter line with the caret drawn by the
// bubbles cursor.
func (m *Model) filterPrompt() string {
	current := m.currentLevel()
	prompt := m.styles.FilterPrompt.Render(filterPromptText)
	if current == nil {
		return prompt
	}
	m.filterCursor.Style = *m.styles.Cursor
	runes := []rune(current.Filter)
	if len(runes) == 0 {
		hint := []rune(filterPlaceholder)
		m.filterCursor.TextStyle = *m.styles.FilterPlaceholder
		return prompt + m.renderFilterCursor(string(hint[0])) + m.styles.FilterPlaceholder.Render(string(hint[1:]))
	}
	m.filterCursor.TextStyle = *m.styles.Filter
	pos := current.FilterCursorPos()
	caret, after := " ", ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = string(runes[pos+1:])
	}
	return prompt + m.styles.Filter.Render(string(runes[:pos])) + m.renderFilterCursor(caret) + m.styles.Filter.Render(after)
}

func (m *Model) renderFilterCursor(char string) string {
	m.filterCursor.SetChar(char)
	return m.filterCursor.View()
}
