package fs

import (
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// ReadDirSorted lists the direct children of dirPath in display order:
// directories before files, byte-lexicographic by display name within each
// group. Symlinks never appear; dotfiles only when showHidden is set.
//
// Listing failures are non-fatal: an unreadable or vanished directory yields
// an empty slice so callers degrade to an empty pane instead of erroring.
func ReadDirSorted(dirPath string, showHidden bool) []Entry {
	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		// Type() is lstat-based, so this catches links without following them.
		if e.Type()&os.ModeSymlink != 0 {
			continue
		}

		rawName := e.Name()
		if !showHidden && IsHidden(rawName) {
			continue
		}

		entries = append(entries, Entry{
			Name:     norm.NFC.String(rawName),
			FullPath: filepath.Join(dirPath, rawName),
			IsDir:    e.IsDir(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}
