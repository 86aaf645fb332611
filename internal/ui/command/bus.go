package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jewfaith/organizer/internal/logging"
	"github.com/jewfaith/organizer/internal/logging/events"
	"github.com/jewfaith/organizer/internal/menu"
)

// Request encapsulates a level load.
type Request struct {
	ID     string
	Label  string
	Loader menu.Loader
}

// Result is delivered to the model once a load completes.
type Result struct {
	ID    string
	Title string
	Items []menu.Item
	Err   error
}

// Bus coordinates the execution of menu loaders.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a menu loader into a Bubble Tea command while emitting trace
// logs.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	events.Loader.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Loader == nil {
			err := fmt.Errorf("no loader registered for %s", req.ID)
			events.Loader.Result(req.ID, 0, err)
			return Result{ID: req.ID, Title: req.Label, Err: err}
		}
		items, err := req.Loader(ctx)
		if err != nil {
			logging.Error(err)
		}
		events.Loader.Result(req.ID, len(items), err)
		return Result{ID: req.ID, Title: req.Label, Items: items, Err: err}
	}
}
