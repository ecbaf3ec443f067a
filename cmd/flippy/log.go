package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// openLogger returns a logger writing to path. The TUI owns the terminal, so
// when the file cannot be opened the log is discarded rather than sent to
// stderr. The returned close function is never nil.
func openLogger(path string) (*log.Logger, func()) {
	w, closeFn := openLogFile(path)
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flippy",
	})
	return logger, closeFn
}

func openLogFile(path string) (io.Writer, func()) {
	noop := func() {}
	if path == "" {
		return io.Discard, noop
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return io.Discard, noop
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, noop
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard, noop
	}
	return f, func() { f.Close() }
}
