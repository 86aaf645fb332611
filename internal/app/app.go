package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jewfaith/organizer/internal/document"
	"github.com/jewfaith/organizer/internal/logging/events"
	"github.com/jewfaith/organizer/internal/navigator"
	"github.com/jewfaith/organizer/internal/theme"
	"github.com/jewfaith/organizer/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Path     string
	Width    int
	TUI      bool
	NoColor  bool
	NoClear  bool
	Footer   bool
	Title    string
	Subtitle string
	Palette  theme.Palette
}

// Run loads the document and hands it to the numbered menu or, with TUI set,
// to the full-screen browser. Load failures are returned unchanged so callers
// can match document.ErrNotFound and document.ErrMalformed.
func Run(cfg Config, stdin io.Reader, stdout io.Writer) error {
	tty := isTerminal(stdout)
	if tty {
		if restore, err := termenv.EnableVirtualTerminalProcessing(termenv.NewOutput(stdout)); err == nil {
			defer func() { _ = restore() }()
		}
	}
	styles := theme.New(theme.NewRenderer(stdout, tty && !cfg.NoColor), cfg.Palette)

	loader := document.Loader{
		Width: cfg.Width,
		OnWarning: func(w document.Warning) {
			fmt.Fprintln(stdout, styles.Error.Render(w.String()))
		},
	}
	doc, err := loader.Load(cfg.Path)
	if err != nil {
		return err
	}

	if cfg.TUI {
		defer events.App.Stop("tui")
		return runBrowser(doc, cfg, styles, stdin, stdout)
	}
	defer events.App.Stop("menu")
	nav := navigator.New(doc, stdin, stdout, navigator.Options{
		Title:       cfg.Title,
		Subtitle:    cfg.Subtitle,
		Width:       cfg.Width,
		Styles:      styles,
		ClearScreen: tty && !cfg.NoClear,
	})
	return nav.Run()
}

func runBrowser(doc *document.Document, cfg Config, styles *theme.Styles, stdin io.Reader, stdout io.Writer) error {
	model := ui.NewModel(doc, ui.Options{
		Title:      cfg.Title,
		Width:      cfg.Width,
		ShowFooter: cfg.Footer,
		Styles:     styles,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithInput(stdin), tea.WithOutput(stdout))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
