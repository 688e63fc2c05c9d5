package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// debugLog is discarded unless -debug is given; the terminal itself is
// owned by the game so logs go to a file.
var debugLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func debugLogPath() string {
	return filepath.Join(os.TempDir(), "consoletris-debug.log")
}

// EnableDebugLogging points debugLog at path and returns a func that closes
// the file.
func EnableDebugLogging(path string) (func() error, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	debugLog = slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return file.Close, nil
}
