// Package app wires the screen, navigator, input machine and renderer
// together and runs the event loop.
package app

import (
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/seldir/internal/state"
	inputui "github.com/kk-code-lab/seldir/internal/ui/input"
	renderui "github.com/kk-code-lab/seldir/internal/ui/render"
)

// Options carries the resolved display settings into the application.
type Options struct {
	ShowHidden bool
	ShowIcons  bool
	Accent     string
}

// Application represents the running app. Result holds the committed
// directory after Run returns, empty on abort.
type Application struct {
	screen   tcell.Screen
	nav      *state.Navigator
	input    *inputui.Handler
	renderer *renderui.Renderer
	result   string
}

// NewApplication opens the terminal screen and builds the navigator rooted
// at the process working directory. The working directory is read once
// here and never changed afterwards.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	nav, err := state.NewNavigator(cwd, state.Options{
		ShowHidden: opts.ShowHidden,
		ShowIcons:  opts.ShowIcons,
		Accent:     opts.Accent,
	})
	if err != nil {
		screen.Fini()
		return nil, err
	}

	theme := renderui.NewColorTheme(opts.Accent)
	return &Application{
		screen:   screen,
		nav:      nav,
		input:    inputui.NewHandler(),
		renderer: renderui.NewRenderer(screen, theme, opts.ShowIcons),
	}, nil
}

// Result returns the committed directory path, or "" when the session was
// aborted.
func (app *Application) Result() string {
	return app.result
}

// StartDir returns the directory the navigator was rooted at.
func (app *Application) StartDir() string {
	return app.nav.CurrentDir()
}

// Close releases the terminal.
func (app *Application) Close() {
	app.screen.Fini()
}
