// Package input maps terminal key events onto navigator operations.
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/seldir/internal/state"
)

// Mode is the input interpretation the handler is currently in.
type Mode int

const (
	// ModeNormal interprets keys as navigation commands.
	ModeNormal Mode = iota
	// ModeFind interprets the next key as a jump target; any key returns
	// to ModeNormal.
	ModeFind
)

// Signal tells the event loop what to do after a key was handled.
type Signal int

const (
	SignalNone Signal = iota
	// SignalAbort ends the session without a result.
	SignalAbort
	// SignalCommit ends the session with the selected directory as result.
	SignalCommit
	// SignalYank copies the selected path to the clipboard.
	SignalYank
)

// Handler owns the input mode and dispatches key events to the navigator.
type Handler struct {
	mode Mode
}

func NewHandler() *Handler {
	return &Handler{mode: ModeNormal}
}

func (h *Handler) Mode() Mode {
	return h.mode
}

// HandleKey applies ev to nav and reports what the loop should do next.
// Unrecognized keys are ignored.
func (h *Handler) HandleKey(ev *tcell.EventKey, nav *state.Navigator) Signal {
	if h.mode == ModeFind {
		return h.handleFindKey(ev, nav)
	}
	return h.handleNormalKey(ev, nav)
}

func (h *Handler) handleNormalKey(ev *tcell.EventKey, nav *state.Navigator) Signal {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return SignalAbort
	case tcell.KeyEnter:
		if _, ok := nav.CommitSelection(); ok {
			return SignalCommit
		}
		return SignalNone
	case tcell.KeyDown:
		nav.MoveSelection(stepFor(ev, 1))
		return SignalNone
	case tcell.KeyUp:
		nav.MoveSelection(stepFor(ev, -1))
		return SignalNone
	case tcell.KeyLeft:
		nav.Leave()
		return SignalNone
	case tcell.KeyRight:
		nav.EnterSelected()
		return SignalNone
	case tcell.KeyRune:
		return h.handleNormalRune(keyRune(ev), nav)
	}
	return SignalNone
}

func (h *Handler) handleNormalRune(r rune, nav *state.Navigator) Signal {
	switch r {
	case 'j':
		nav.MoveSelection(1)
	case 'k':
		nav.MoveSelection(-1)
	case 'J':
		nav.MoveSelection(bulkStep)
	case 'K':
		nav.MoveSelection(-bulkStep)
	case 'g':
		nav.JumpFirst()
	case 'G':
		nav.JumpLast()
	case 'h':
		nav.Leave()
	case 'l':
		nav.EnterSelected()
	case 'f':
		h.mode = ModeFind
	case 'q':
		if _, ok := nav.CommitSelection(); ok {
			return SignalCommit
		}
	case 'y':
		return SignalYank
	}
	return SignalNone
}

func (h *Handler) handleFindKey(ev *tcell.EventKey, nav *state.Navigator) Signal {
	// Find is single-shot: whatever the key, we are back in normal mode.
	h.mode = ModeNormal
	if ev.Key() == tcell.KeyRune {
		nav.FindByInitial(keyRune(ev))
	}
	return SignalNone
}

// bulkStep is the jump distance for Shift-modified movement.
const bulkStep = 5

func stepFor(ev *tcell.EventKey, direction int) int {
	if ev.Modifiers()&(tcell.ModAlt|tcell.ModShift) != 0 {
		return direction * bulkStep
	}
	return direction
}

// keyRune normalizes the event rune: some terminals deliver Shift+letter as
// a lowercase rune with ModShift set instead of the uppercase rune.
func keyRune(ev *tcell.EventKey) rune {
	r := ev.Rune()
	if ev.Modifiers()&tcell.ModShift != 0 {
		return unicode.ToUpper(r)
	}
	return r
}
