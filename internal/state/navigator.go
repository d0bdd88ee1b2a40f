package state

import (
	"path/filepath"
	"strings"

	fsutil "github.com/kk-code-lab/seldir/internal/fs"
)

// Options are the display settings fixed at startup for the whole run.
type Options struct {
	ShowHidden bool
	ShowIcons  bool
	Accent     string
}

// Navigator is the three-pane view model. It owns the logical current
// directory as a plain field: the process working directory is read once to
// seed it and is never mutated afterwards — the hand-off file carries the
// chosen path to the wrapping shell.
type Navigator struct {
	currentDir string
	parent     *SelectableList
	current    *SelectableList
	preview    *SelectableList
	opts       Options
}

// NewNavigator builds the panes for startDir. startDir is cleaned to an
// absolute path; relative input is resolved against the working directory.
func NewNavigator(startDir string, opts Options) (*Navigator, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	n := &Navigator{
		currentDir: filepath.Clean(abs),
		parent:     NewSelectableList(nil, noCursor),
		current:    NewSelectableList(nil, noCursor),
		preview:    NewSelectableList(nil, noCursor),
		opts:       opts,
	}

	n.relistParent()
	entries := fsutil.ReadDirSorted(n.currentDir, opts.ShowHidden)
	n.current.Replace(entries, 0)
	n.refreshPreview()

	return n, nil
}

// CurrentDir returns the absolute path the current pane is listing.
func (n *Navigator) CurrentDir() string {
	return n.currentDir
}

// Options returns the immutable display settings.
func (n *Navigator) Options() Options {
	return n.opts
}

// ParentPane exposes the parent-directory listing.
func (n *Navigator) ParentPane() *SelectableList { return n.parent }

// CurrentPane exposes the current-directory listing.
func (n *Navigator) CurrentPane() *SelectableList { return n.current }

// PreviewPane exposes the listing of the selected child directory.
func (n *Navigator) PreviewPane() *SelectableList { return n.preview }

// MoveSelection advances (delta > 0) or retreats (delta < 0) the current
// pane's cursor by |delta| clamped single steps, then refreshes the preview
// from the new selection.
func (n *Navigator) MoveSelection(delta int) {
	steps := delta
	if steps < 0 {
		steps = -steps
	}
	for i := 0; i < steps; i++ {
		if delta > 0 {
			n.current.Advance()
		} else {
			n.current.Retreat()
		}
	}
	n.refreshPreview()
}

// JumpFirst moves the cursor to the first entry. The preview pane is left
// as-is until the next selection move.
func (n *Navigator) JumpFirst() {
	n.current.JumpToStart()
}

// JumpLast moves the cursor to the last entry without refreshing the preview.
func (n *Navigator) JumpLast() {
	n.current.JumpToEnd()
}

// EnterSelected descends into the selected directory. Selecting nothing or a
// file is a silent no-op. The new current pane starts at its first entry and
// the preview is re-derived from that selection with no cursor of its own.
func (n *Navigator) EnterSelected() {
	sel, ok := n.current.Selected()
	if !ok || !sel.IsDir {
		return
	}

	n.currentDir = sel.FullPath
	n.relistParent()

	entries := fsutil.ReadDirSorted(n.currentDir, n.opts.ShowHidden)
	n.current.Replace(entries, 0)
	n.refreshPreview()
}

// Leave ascends to the parent directory, positioning the cursor on the
// directory just left so an immediate EnterSelected round-trips. At the
// filesystem root it is a no-op.
func (n *Navigator) Leave() {
	parentDir := filepath.Dir(n.currentDir)
	if parentDir == n.currentDir {
		return
	}

	leftPath := n.currentDir
	n.currentDir = parentDir
	n.relistParent()

	entries := fsutil.ReadDirSorted(n.currentDir, n.opts.ShowHidden)
	// The directory we came from may have been deleted underneath us; then
	// the pane simply has no selection.
	n.current.Replace(entries, indexOfPath(entries, leftPath))
	n.refreshPreview()
}

// RefreshPreview re-lists the preview pane from the current selection.
func (n *Navigator) RefreshPreview() {
	n.refreshPreview()
}

func (n *Navigator) refreshPreview() {
	sel, ok := n.current.Selected()
	if !ok || !sel.IsDir {
		n.preview.Replace(nil, noCursor)
		return
	}
	n.preview.Replace(fsutil.ReadDirSorted(sel.FullPath, n.opts.ShowHidden), noCursor)
}

// relistParent rebuilds the parent pane for the current directory, keeping
// the "you are here" cursor on the entry matching currentDir. At the root
// the pane is empty.
func (n *Navigator) relistParent() {
	parentDir := filepath.Dir(n.currentDir)
	if parentDir == n.currentDir {
		n.parent.Replace(nil, noCursor)
		return
	}
	entries := fsutil.ReadDirSorted(parentDir, n.opts.ShowHidden)
	n.parent.Replace(entries, indexOfPath(entries, n.currentDir))
}

// CommitSelection returns the path of the selected directory, signalling that
// navigation is complete. Selecting a file is not a valid terminal action.
func (n *Navigator) CommitSelection() (string, bool) {
	sel, ok := n.current.Selected()
	if !ok || !sel.IsDir {
		return "", false
	}
	return sel.FullPath, true
}

// FindByInitial jumps the current pane's cursor to the first entry, in
// display order, whose name starts with r (case-folded on both sides) and
// refreshes the preview. It reports whether anything matched; on a miss the
// cursor and preview are untouched.
func (n *Navigator) FindByInitial(r rune) bool {
	want := strings.ToLower(string(r))
	for i := 0; i < n.current.Len(); i++ {
		if strings.HasPrefix(strings.ToLower(n.current.At(i).Name), want) {
			n.current.SetCursor(i)
			n.refreshPreview()
			return true
		}
	}
	return false
}
