package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/seldir/internal/state"
)

func navigatorFixture(t *testing.T) *state.Navigator {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"apple", "banana", "cherry"} {
		if err := os.Mkdir(filepath.Join(root, name), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "readme.md"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	nav, err := state.NewNavigator(root, state.Options{})
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	return nav
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func selectedName(t *testing.T, nav *state.Navigator) string {
	t.Helper()
	sel, ok := nav.CurrentPane().Selected()
	if !ok {
		t.Fatal("no selection")
	}
	return sel.Name
}

func TestMovementKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []*tcell.EventKey
		want string
	}{
		{"j moves down", []*tcell.EventKey{runeEvent('j')}, "banana"},
		{"k moves up", []*tcell.EventKey{runeEvent('j'), runeEvent('j'), runeEvent('k')}, "banana"},
		{"arrow down", []*tcell.EventKey{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)}, "banana"},
		{"arrow up clamps", []*tcell.EventKey{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)}, "apple"},
		{"J jumps by five and clamps", []*tcell.EventKey{runeEvent('J')}, "readme.md"},
		{"K jumps back by five and clamps", []*tcell.EventKey{runeEvent('J'), runeEvent('K')}, "apple"},
		{"G jumps to end", []*tcell.EventKey{runeEvent('G')}, "readme.md"},
		{"g jumps to start", []*tcell.EventKey{runeEvent('G'), runeEvent('g')}, "apple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := navigatorFixture(t)
			h := NewHandler()
			for _, ev := range tt.keys {
				if sig := h.HandleKey(ev, nav); sig != SignalNone {
					t.Fatalf("unexpected signal %v", sig)
				}
			}
			if got := selectedName(t, nav); got != tt.want {
				t.Fatalf("expected %q selected, got %q", tt.want, got)
			}
		})
	}
}

func TestShiftedLowercaseRuneTreatedAsBulkMove(t *testing.T) {
	// Some terminals report Shift+j as 'j' with ModShift.
	nav := navigatorFixture(t)
	h := NewHandler()

	h.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModShift), nav)
	if got := selectedName(t, nav); got != "readme.md" {
		t.Fatalf("expected bulk move to readme.md, got %q", got)
	}
}

func TestEnterAndLeaveKeys(t *testing.T) {
	nav := navigatorFixture(t)
	h := NewHandler()
	root := nav.CurrentDir()

	h.HandleKey(runeEvent('l'), nav)
	if nav.CurrentDir() != filepath.Join(root, "apple") {
		t.Fatalf("expected to enter apple, got %s", nav.CurrentDir())
	}

	h.HandleKey(runeEvent('h'), nav)
	if nav.CurrentDir() != root {
		t.Fatalf("expected to leave back to %s, got %s", root, nav.CurrentDir())
	}

	h.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), nav)
	if nav.CurrentDir() != filepath.Join(root, "apple") {
		t.Fatal("right arrow did not enter the selection")
	}
	h.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), nav)
	if nav.CurrentDir() != root {
		t.Fatal("left arrow did not leave")
	}
}

func TestCommitSignals(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		runeEvent('q'),
	} {
		nav := navigatorFixture(t)
		h := NewHandler()
		if sig := h.HandleKey(ev, nav); sig != SignalCommit {
			t.Fatalf("expected SignalCommit for %v, got %v", ev.Key(), sig)
		}
	}
}

func TestCommitOnFileKeepsSessionAlive(t *testing.T) {
	nav := navigatorFixture(t)
	h := NewHandler()

	h.HandleKey(runeEvent('G'), nav) // readme.md
	if sig := h.HandleKey(runeEvent('q'), nav); sig != SignalNone {
		t.Fatalf("expected SignalNone when a file is selected, got %v", sig)
	}
	if sig := h.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), nav); sig != SignalNone {
		t.Fatalf("expected SignalNone for Enter on a file, got %v", sig)
	}
}

func TestAbortSignals(t *testing.T) {
	for _, key := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		nav := navigatorFixture(t)
		h := NewHandler()
		if sig := h.HandleKey(tcell.NewEventKey(key, 0, tcell.ModNone), nav); sig != SignalAbort {
			t.Fatalf("expected SignalAbort for %v, got %v", key, sig)
		}
	}
}

func TestYankSignal(t *testing.T) {
	nav := navigatorFixture(t)
	h := NewHandler()
	if sig := h.HandleKey(runeEvent('y'), nav); sig != SignalYank {
		t.Fatalf("expected SignalYank, got %v", sig)
	}
}

func TestFindModeSingleShot(t *testing.T) {
	nav := navigatorFixture(t)
	h := NewHandler()

	h.HandleKey(runeEvent('f'), nav)
	if h.Mode() != ModeFind {
		t.Fatal("expected find mode after 'f'")
	}

	h.HandleKey(runeEvent('c'), nav)
	if h.Mode() != ModeNormal {
		t.Fatal("expected normal mode after the target key")
	}
	if got := selectedName(t, nav); got != "cherry" {
		t.Fatalf("expected cherry selected, got %q", got)
	}
}

func TestFindModeMissStillReturnsToNormal(t *testing.T) {
	nav := navigatorFixture(t)
	h := NewHandler()

	h.HandleKey(runeEvent('f'), nav)
	h.HandleKey(runeEvent('z'), nav)
	if h.Mode() != ModeNormal {
		t.Fatal("expected normal mode after a miss")
	}
	if got := selectedName(t, nav); got != "apple" {
		t.Fatalf("cursor moved on a miss: %q", got)
	}
}

func TestFindModeNonRuneKeyReturnsToNormal(t *testing.T) {
	nav := navigatorFixture(t)
	h := NewHandler()

	h.HandleKey(runeEvent('f'), nav)
	if sig := h.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), nav); sig != SignalNone {
		t.Fatalf("escape in find mode must not abort, got %v", sig)
	}
	if h.Mode() != ModeNormal {
		t.Fatal("expected normal mode after escape")
	}
}

func TestFindModeSwallowsNavigationRunes(t *testing.T) {
	// In find mode 'j' is a search target, not a movement command.
	nav := navigatorFixture(t)
	h := NewHandler()

	h.HandleKey(runeEvent('f'), nav)
	h.HandleKey(runeEvent('j'), nav)
	if got := selectedName(t, nav); got != "apple" {
		t.Fatalf("'j' in find mode moved the cursor: %q", got)
	}
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	nav := navigatorFixture(t)
	h := NewHandler()

	for _, ev := range []*tcell.EventKey{
		runeEvent('x'),
		tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone),
	} {
		if sig := h.HandleKey(ev, nav); sig != SignalNone {
			t.Fatalf("unbound key produced signal %v", sig)
		}
	}
	if got := selectedName(t, nav); got != "apple" {
		t.Fatalf("unbound key moved the cursor: %q", got)
	}
}
