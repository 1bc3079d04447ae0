// Package logging configures the process logger. The TUI owns stdout,
// so logs go to a file under the XDG state directory.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a file-backed logger. path overrides the default location;
// the CERTDASH_LOG environment variable sits between the two. verbose
// lowers the level to debug.
func New(path string, verbose bool) (*zap.Logger, error) {
	if path == "" {
		path = os.Getenv("CERTDASH_LOG")
	}
	if path == "" {
		var err error
		path, err = defaultLogPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// defaultLogPath returns the log file location, creating the app
// directory if needed.
func defaultLogPath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateDir = filepath.Join(home, ".local", "state")
	}

	appDir := filepath.Join(stateDir, "certdash")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, "certdash.log"), nil
}
