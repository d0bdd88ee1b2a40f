// Package log configures the process-wide debug logger. A full-screen
// terminal application cannot log to stdout, so output goes to a file, and
// only when debugging is on.
package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

func init() {
	logrus.SetOutput(io.Discard)
}

// Setup routes logrus output to the debug log file when debug is enabled.
// It returns the file so the caller can close it on shutdown; both return
// values are nil when debug is off.
func Setup(debug bool) (*os.File, error) {
	if !debug {
		return nil, nil
	}

	path, err := FilePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	logrus.SetOutput(f)
	logrus.SetLevel(logrus.DebugLevel)
	return f, nil
}

// FilePath returns the debug log location (~/.config/seldir/debug.log).
func FilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "seldir", "debug.log"), nil
}
