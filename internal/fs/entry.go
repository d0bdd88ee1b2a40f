package fs

// Entry is an immutable snapshot of a single directory child. A re-listing
// always produces fresh Entry values; nothing mutates one in place.
type Entry struct {
	Name     string // display name, NFC-normalized
	FullPath string
	IsDir    bool
}

// IsHidden reports whether the entry follows the dotfile convention.
func (e Entry) IsHidden() bool {
	return IsHidden(e.Name)
}

// IsHidden checks a raw name against the dotfile convention.
func IsHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
