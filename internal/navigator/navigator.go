// Package navigator implements the numbered terminal menu: list the themes,
// read a choice, show the chosen theme's verses, wait, repeat. It reads lines
// from any io.Reader and writes to any io.Writer so the whole loop can run
// against a pipe as well as a terminal.
package navigator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jewfaith/organizer/internal/document"
	textfmt "github.com/jewfaith/organizer/internal/format/text"
	"github.com/jewfaith/organizer/internal/logging/events"
	"github.com/jewfaith/organizer/internal/theme"
)

// State is a node of the navigation state machine.
type State int

const (
	StateMenu State = iota
	StateInput
	StateVerses
	StateExited
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateInput:
		return "input"
	case StateVerses:
		return "verses"
	case StateExited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	menuLabelWidth = 25

	MenuPrompt           = "Choose an element: "
	ContinuePrompt       = "Press any key to continue "
	ExitMessage          = "Error: Exiting the program"
	ThemeNotFoundMessage = "Error: Theme not found"
)

// Options configures presentation.
type Options struct {
	Title    string
	Subtitle string
	// Width is the wrap and rule width; zero means text.DefaultWidth.
	Width int
	// Styles colours headings; nil renders plain text.
	Styles *theme.Styles
	// ClearScreen clears the terminal before each menu and verse page.
	ClearScreen bool
}

// Navigator drives the menu ⇄ verses loop over a Document.
type Navigator struct {
	doc      *document.Document
	in       *bufio.Reader
	out      io.Writer
	term     *termenv.Output
	opts     Options
	state    State
	selected string
	err      error
}

// New prepares a navigator in StateMenu.
func New(doc *document.Document, in io.Reader, out io.Writer, opts Options) *Navigator {
	if opts.Width <= 0 {
		opts.Width = textfmt.DefaultWidth
	}
	if opts.Styles == nil {
		opts.Styles = theme.Plain(out)
	}
	return &Navigator{
		doc:   doc,
		in:    bufio.NewReader(in),
		out:   out,
		term:  termenv.NewOutput(out),
		opts:  opts,
		state: StateMenu,
	}
}

// State reports the current state.
func (n *Navigator) State() State {
	return n.state
}

// Selected returns the name of the theme chosen most recently.
func (n *Navigator) Selected() string {
	return n.selected
}

// Run steps the state machine until input is exhausted. Running out of input
// is the normal way out and returns nil; any other read failure also ends
// the loop and is returned.
func (n *Navigator) Run() error {
	for n.state != StateExited {
		n.Step()
	}
	return n.err
}

// Step performs a single transition and returns the new state.
func (n *Navigator) Step() State {
	switch n.state {
	case StateMenu:
		n.clear()
		n.RenderMenu(n.out)
		events.Navigator.Menu(n.doc.Len())
		n.state = StateInput
	case StateInput:
		fmt.Fprint(n.out, "\n"+MenuPrompt)
		line, err := n.readLine()
		if err != nil {
			n.exit(err)
			break
		}
		idx, ok := ParseChoice(line, n.doc.Len())
		if !ok {
			events.Navigator.Retry(line)
			n.state = StateMenu
			break
		}
		events.Navigator.Choice(line, idx)
		chosen, _ := n.doc.At(idx)
		n.selected = chosen.Name
		n.state = StateVerses
	case StateVerses:
		n.clear()
		n.RenderVerses(n.out, n.selected)
		fmt.Fprint(n.out, "\n"+ContinuePrompt)
		if _, err := n.readLine(); err != nil {
			n.exit(err)
			break
		}
		n.state = StateMenu
	}
	return n.state
}

// ParseChoice converts a menu answer into a zero-based theme index. It
// succeeds only for an integer between 1 and count inclusive.
func ParseChoice(input string, count int) (int, bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < 1 || choice > count {
		return -1, false
	}
	return choice - 1, true
}

// RenderMenu writes the header and the numbered theme list. The output
// depends only on the Document and Options.
func (n *Navigator) RenderMenu(w io.Writer) {
	styles := n.opts.Styles
	rule := textfmt.Rule("=", n.opts.Width)
	fmt.Fprintln(w)
	if n.opts.Title != "" {
		fmt.Fprintln(w, styles.Warning.Render(n.opts.Title))
	}
	if n.opts.Subtitle != "" {
		fmt.Fprintln(w, styles.Info.Render(n.opts.Subtitle))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	for i, name := range n.doc.Names() {
		label := fmt.Sprintf("%d. %s", i+1, textfmt.Capitalize(name))
		fmt.Fprintln(w, textfmt.PadRight(label, menuLabelWidth))
	}
	fmt.Fprintln(w, rule)
}

// RenderVerses writes every book of the named theme with numbered, wrapped
// verses. It reports false and writes an error line when the theme is
// unknown.
func (n *Navigator) RenderVerses(w io.Writer, name string) bool {
	styles := n.opts.Styles
	chosen, ok := n.doc.Theme(name)
	if !ok {
		events.Navigator.ThemeMissing(name)
		fmt.Fprintln(w, styles.Error.Render(ThemeNotFoundMessage))
		return false
	}
	events.Navigator.Verses(chosen.Name, len(chosen.Books))
	width := n.opts.Width
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Warning.Render(textfmt.Capitalize(chosen.Name)))
	fmt.Fprintln(w, textfmt.Rule("=", width))
	for _, book := range chosen.Books {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styles.Info.Render(textfmt.Capitalize(book.Name)))
		fmt.Fprintln(w, textfmt.Rule("-", width))
		for i, verse := range book.Verses {
			fmt.Fprintln(w, textfmt.Wrap(fmt.Sprintf("%d. %s", i+1, verse), width))
		}
		fmt.Fprintln(w, textfmt.Rule("-", width))
	}
	fmt.Fprintln(w, textfmt.Rule("=", width))
	return true
}

func (n *Navigator) readLine() (string, error) {
	line, err := n.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (n *Navigator) exit(err error) {
	fmt.Fprintln(n.out)
	fmt.Fprintln(n.out, n.opts.Styles.Error.Render(ExitMessage))
	if errors.Is(err, io.EOF) {
		events.Navigator.Exit(events.ExitReasonEOF)
	} else {
		events.Navigator.Exit(events.ExitReasonError)
		n.err = fmt.Errorf("read input: %w", err)
	}
	n.state = StateExited
}

func (n *Navigator) clear() {
	if n.opts.ClearScreen {
		n.term.ClearScreen()
	}
}
