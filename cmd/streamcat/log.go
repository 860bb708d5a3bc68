package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/viper"

	"github.com/streamtext/streamtext"
)

func getLogFilePath() (string, error) {
	dir, err := gap.NewScope(gap.User, "streamcat").CacheDir()
	if err != nil {
		return "", fmt.Errorf("unable to get cache dir: %w", err)
	}
	return filepath.Join(dir, "streamcat.log"), nil
}

// setupLog routes the adapter package's internal debug logging to a cache
// file when --debug is set; otherwise it stays discarded. The returned
// closer must run before the process exits.
func setupLog() (func() error, error) {
	if !debug && !viper.GetBool("debug") {
		return func() error { return nil }, nil
	}

	logFile, err := getLogFilePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		streamtext.SetDebugOutput(io.Discard, log.DebugLevel)
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		streamtext.SetDebugOutput(io.Discard, log.DebugLevel)
		return func() error { return nil }, nil
	}
	streamtext.SetDebugOutput(f, log.DebugLevel)
	return f.Close, nil
}
