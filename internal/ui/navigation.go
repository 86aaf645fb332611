package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jewfaith/organizer/internal/logging/events"
	"github.com/jewfaith/organizer/internal/menu"
	"github.com/jewfaith/organizer/internal/navigator"
	"github.com/jewfaith/organizer/internal/ui/command"
)

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil || len(m.stack) <= 1 {
		events.Navigator.Exit(events.ExitReasonQuit)
		return tea.Quit
	}
	events.UI.MenuBack(current.ID)
	m.stack = m.stack[:len(m.stack)-1]
	parent := m.currentLevel()
	if idx := parent.IndexOf(current.ID); idx >= 0 {
		parent.Cursor = idx
	}
	m.syncViewport(parent)
	m.errMsg = ""
	m.infoMsg = ""
	return nil
}

// handleEnterKey opens the highlighted row. On the theme list a filter that
// reads as a menu number opens that theme instead, the same way the numbered
// menu interprets its input.
func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := m.enterTarget(current)
	if !ok {
		return nil
	}
	node, ok := m.registry.Child(current.ID, item.ID)
	if !ok {
		return nil
	}
	events.UI.MenuEnter(current.ID, item.ID, item.Label, current.Filter)
	before := current.FilterCursorPos()
	current.SetFilter("", 0)
	m.noteFilterCursorChange(current, before)
	if idx := current.IndexOf(item.ID); idx >= 0 {
		current.Cursor = idx
	}
	m.syncViewport(current)
	m.loading = true
	m.pendingID = node.ID
	m.pendingLabel = node.Title
	m.errMsg = ""
	m.infoMsg = ""
	return m.bus.Execute(m.menuContext(), command.Request{ID: node.ID, Label: node.Title, Loader: node.Loader})
}

func (m *Model) enterTarget(current *level) (menu.Item, bool) {
	if current.ID == menu.RootID && current.Filter != "" {
		if idx, ok := navigator.ParseChoice(current.Filter, len(current.Full)); ok {
			return current.Full[idx], true
		}
	}
	return current.Current()
}

func (m *Model) moveCursor(delta int, wrap bool) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	if current.MoveCursor(delta, wrap) {
		events.UI.MenuCursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	current := m.currentLevel()
	switch keyMsg.String() {
	case "ctrl+c":
		events.Navigator.Exit(events.ExitReasonQuit)
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursor(-1, true)
	case "down":
		m.moveCursor(1, true)
	case "pgup":
		if current != nil && current.MoveCursorPageUp(m.maxVisibleItems()) {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	case "pgdown":
		if current != nil && current.MoveCursorPageDown(m.maxVisibleItems()) {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	case "home":
		if current != nil && current.MoveCursorHome() {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	case "end":
		if current != nil && current.MoveCursorEnd() {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || ev.Action != tea.MouseActionPress {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-3, false)
	case tea.MouseButtonWheelDown:
		m.moveCursor(3, false)
	}
	return nil
}

func (m *Model) handleLevelLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if update.ID != m.pendingID {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if update.Err != nil {
		m.errMsg = update.Err.Error()
		return nil
	}
	node, _ := m.registry.Find(update.ID)
	next := newLevel(update.ID, update.Title, update.Items, node)
	m.stack = append(m.stack, next)
	m.syncViewport(next)
	if len(next.Items) == 0 {
		m.infoMsg = fmt.Sprintf("%s has no entries.", update.Title)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	m.syncViewport(m.currentLevel())
	return nil
}
