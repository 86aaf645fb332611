package events

import "github.com/jewfaith/organizer/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(mode string) {
	logging.Trace("app.stop", map[string]interface{}{"mode": mode})
}
