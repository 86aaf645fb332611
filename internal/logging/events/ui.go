package events

import "github.com/jewfaith/organizer/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type LoaderTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Loader = LoaderTracer{}
)

func (UITracer) MenuEnter(levelID, itemID, label, filter string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"level":  levelID,
		"item":   itemID,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) MenuCursor(levelID string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"level": levelID, "cursor": cursor})
}

func (UITracer) MenuBack(levelID string) {
	logging.Trace("menu.back", map[string]interface{}{"level": levelID})
}

func (FilterTracer) Cleared(levelID string) {
	logging.Trace("filter.clear", map[string]interface{}{"level": levelID})
}

func (FilterTracer) WordBackspace(levelID, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Cursor(levelID string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"level": levelID, "cursor": pos})
}

func (FilterTracer) CursorWord(levelID string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"level": levelID, "cursor": pos})
}

func (FilterTracer) Append(levelID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Backspace(levelID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"level": levelID, "filter": filter})
}

func (LoaderTracer) Queue(id, label string) {
	logging.Trace("loader.queue", map[string]interface{}{"id": id, "label": label})
}

func (LoaderTracer) Result(id string, items int, err error) {
	payload := map[string]interface{}{"id": id, "items": items}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("loader.result", payload)
}
