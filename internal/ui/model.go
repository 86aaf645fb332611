package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jewfaith/organizer/internal/document"
	"github.com/jewfaith/organizer/internal/menu"
	"github.com/jewfaith/organizer/internal/theme"
	"github.com/jewfaith/organizer/internal/ui/command"
	uistate "github.com/jewfaith/organizer/internal/ui/state"
)

type level = uistate.Level

const (
	menuHeaderSeparator = " → "
	defaultTitle        = "organizer"
)

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []menu.Item, node *menu.Node) *level {
	return uistate.NewLevel(id, title, items, node)
}

// Options configures the browser.
type Options struct {
	Title string
	// Width is the wrap and rule width of verse pages.
	Width      int
	ShowFooter bool
	// Styles defaults to theme.Default().
	Styles *theme.Styles
}

// Model implements the Bubble Tea model for the theme browser.
type Model struct {
	doc       *document.Document
	registry  *menu.Registry
	bus       *command.Bus
	styles    *theme.Styles
	title     string
	textWidth int

	stack        []*level
	loading      bool
	pendingID    string
	pendingLabel string
	errMsg       string
	infoMsg      string
	width        int
	height       int
	showFooter   bool

	filterCursor      cursor.Model
	filterCursorDirty bool
	focused           bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the browser with the theme list of doc as its root level.
func NewModel(doc *document.Document, opts Options) *Model {
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	title := opts.Title
	if title == "" {
		title = defaultTitle
	}
	m := &Model{
		doc:        doc,
		registry:   menu.BuildRegistry(doc),
		bus:        command.New(),
		styles:     styles,
		title:      title,
		textWidth:  opts.Width,
		showFooter: opts.ShowFooter,
	}
	rootNode := m.registry.Root()
	items, _ := rootNode.Loader(m.menuContext())
	root := newLevel(rootNode.ID, rootNode.Title, items, rootNode)
	m.stack = []*level{root}
	if len(items) == 0 {
		m.infoMsg = "No themes found."
	}
	c := cursor.New()
	c.Style = *styles.Cursor
	c.TextStyle = *styles.Filter
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.focused = true
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 3)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleLevelLoadedMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		if m.focused {
			m.filterCursor.Blink = false
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) menuContext() menu.Context {
	return menu.Context{Document: m.doc, Width: m.textWidth}
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
