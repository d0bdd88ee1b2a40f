package shellsetup

import (
	"os"
	"path/filepath"
)

// resultFileName is the well-known name the shell wrapper reads the chosen
// directory from.
const resultFileName = "seldir"

// ResultFilePath returns the fixed hand-off file location under the
// temporary directory.
func ResultFilePath() string {
	return filepath.Join(os.TempDir(), resultFileName)
}

// WriteResult stores path in the hand-off file, raw and without a trailing
// newline. The file is private to the user and overwritten on every write.
func WriteResult(path string) error {
	return os.WriteFile(ResultFilePath(), []byte(path), 0600)
}
