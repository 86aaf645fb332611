package events

import "github.com/jewfaith/organizer/internal/logging"

type NavigatorTracer struct{}

type exitReason string

const (
	ExitReasonEOF   exitReason = "eof"
	ExitReasonError exitReason = "error"
	ExitReasonQuit  exitReason = "quit"
)

var Navigator = NavigatorTracer{}

func (NavigatorTracer) Menu(themes int) {
	logging.Trace("navigator.menu", map[string]interface{}{"themes": themes})
}

func (NavigatorTracer) Choice(input string, index int) {
	logging.Trace("navigator.choice", map[string]interface{}{"input": input, "index": index})
}

func (NavigatorTracer) Retry(input string) {
	logging.Trace("navigator.retry", map[string]interface{}{"input": input})
}

func (NavigatorTracer) Verses(theme string, books int) {
	logging.Trace("navigator.verses", map[string]interface{}{"theme": theme, "books": books})
}

func (NavigatorTracer) ThemeMissing(theme string) {
	logging.Trace("navigator.theme.missing", map[string]interface{}{"theme": theme})
}

func (NavigatorTracer) Exit(reason exitReason) {
	logging.Trace("navigator.exit", map[string]interface{}{"reason": string(reason)})
}
