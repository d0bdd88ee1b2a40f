package app

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	inputui "github.com/kk-code-lab/seldir/internal/ui/input"
)

// tickInterval bounds how long a rendered frame may lag behind state.
const tickInterval = 200 * time.Millisecond

// Run drives the session until the user commits or aborts.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.nav)

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				return
			}
		case <-ticker.C:
		}
		app.renderer.Render(app.nav)
	}
}

// handleEvent processes one terminal event; it reports whether the session
// is over.
func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch app.input.HandleKey(ev, app.nav) {
		case inputui.SignalAbort:
			return true
		case inputui.SignalCommit:
			path, _ := app.nav.CommitSelection()
			app.result = path
			return true
		case inputui.SignalYank:
			app.yankSelectedPath()
		}
	case *tcell.EventResize:
		app.screen.Sync()
	}
	return false
}

func (app *Application) yankSelectedPath() {
	sel, ok := app.nav.CurrentPane().Selected()
	if !ok {
		return
	}
	if err := clipboard.WriteAll(sel.FullPath); err != nil {
		logrus.Debugf("clipboard write failed: %v", err)
	}
}
