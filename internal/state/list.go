package state

import (
	fsutil "github.com/kk-code-lab/seldir/internal/fs"
)

// noCursor marks a list with no selection.
const noCursor = -1

// SelectableList is an ordered sequence of entries plus an optional cursor.
// The cursor is owned by the list: it is always inside [0, len) when present
// and always absent when the sequence is empty. Callers never index into the
// sequence themselves.
type SelectableList struct {
	entries []fsutil.Entry
	cursor  int
}

// NewSelectableList builds a list over entries with the requested cursor,
// clamped into the valid range (or cleared when entries is empty).
func NewSelectableList(entries []fsutil.Entry, cursor int) *SelectableList {
	l := &SelectableList{}
	l.Replace(entries, cursor)
	return l
}

// Replace swaps the sequence and cursor in one step so no caller can observe
// a pair that violates the bounds invariant.
func (l *SelectableList) Replace(entries []fsutil.Entry, cursor int) {
	l.entries = entries
	l.cursor = clampCursor(cursor, len(entries))
}

func clampCursor(cursor, length int) int {
	if length == 0 || cursor < 0 {
		return noCursor
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}

// Advance moves the cursor one position toward the end, clamping at the last
// index. On an empty list it does nothing; on a list without a cursor it
// selects the first entry.
func (l *SelectableList) Advance() {
	if len(l.entries) == 0 {
		return
	}
	if l.cursor == noCursor {
		l.cursor = 0
		return
	}
	if l.cursor < len(l.entries)-1 {
		l.cursor++
	}
}

// Retreat moves the cursor one position toward the start, clamping at zero.
func (l *SelectableList) Retreat() {
	if len(l.entries) == 0 {
		return
	}
	if l.cursor == noCursor {
		l.cursor = 0
		return
	}
	if l.cursor > 0 {
		l.cursor--
	}
}

// JumpToStart sets the cursor to the first entry.
func (l *SelectableList) JumpToStart() {
	if len(l.entries) == 0 {
		return
	}
	l.cursor = 0
}

// JumpToEnd sets the cursor to the last entry.
func (l *SelectableList) JumpToEnd() {
	if len(l.entries) == 0 {
		return
	}
	l.cursor = len(l.entries) - 1
}

// Selected returns the entry under the cursor.
func (l *SelectableList) Selected() (fsutil.Entry, bool) {
	if l.cursor == noCursor || l.cursor >= len(l.entries) {
		return fsutil.Entry{}, false
	}
	return l.entries[l.cursor], true
}

// ClearCursor drops the selection without touching the sequence.
func (l *SelectableList) ClearCursor() {
	l.cursor = noCursor
}

// SetCursor moves the cursor to idx, clamped like Replace.
func (l *SelectableList) SetCursor(idx int) {
	l.cursor = clampCursor(idx, len(l.entries))
}

// Len reports the number of entries.
func (l *SelectableList) Len() int {
	return len(l.entries)
}

// Cursor returns the cursor index and whether one is present.
func (l *SelectableList) Cursor() (int, bool) {
	if l.cursor == noCursor {
		return 0, false
	}
	return l.cursor, true
}

// At returns the entry at idx for read-only display purposes.
func (l *SelectableList) At(idx int) fsutil.Entry {
	return l.entries[idx]
}

// indexOfPath finds the entry whose FullPath equals path, or noCursor.
func indexOfPath(entries []fsutil.Entry, path string) int {
	for i, e := range entries {
		if e.FullPath == path {
			return i
		}
	}
	return noCursor
}
