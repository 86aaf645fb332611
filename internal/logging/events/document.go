package events

import "github.com/jewfaith/organizer/internal/logging"

type DocumentTracer struct{}

var Document = DocumentTracer{}

func (DocumentTracer) Loaded(path string, themes int) {
	logging.Trace("document.loaded", map[string]interface{}{"path": path, "themes": themes})
}

func (DocumentTracer) Failed(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("document.failed", map[string]interface{}{"path": path, "error": err.Error()})
}

func (DocumentTracer) ThemeSkipped(position int) {
	logging.Trace("document.theme.skip", map[string]interface{}{"position": position})
}

func (DocumentTracer) BookEmpty(theme, book string) {
	logging.Trace("document.book.empty", map[string]interface{}{"theme": theme, "book": book})
}
