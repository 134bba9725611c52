package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fmizzell/studytracker"
	"github.com/fmizzell/studytracker/config"
	"github.com/fmizzell/studytracker/observability"
)

var (
	workspaceFlag string
	configFlag    string
	ephemeralFlag bool
)

// getWorkspaceDir returns the workspace directory from flag or current directory
func getWorkspaceDir() (string, error) {
	if workspaceFlag != "" {
		return filepath.Abs(workspaceFlag)
	}
	return os.Getwd()
}

// fatal prints an error message and exits
func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the effective config for the workspace
func loadConfig(workspaceDir string) (*config.Config, error) {
	cfg, err := config.Load(workspaceDir, configFlag)
	if err != nil {
		return nil, err
	}
	if ephemeralFlag {
		cfg.Storage.Backend = studytracker.BackendMemory
	}
	return cfg, nil
}

// openTracker loads config, opens the logger and the store and builds a tracker
// for today. logOut is where logs go when no log file is configured; nil discards.
// The returned func closes the tracker and everything opened for it.
func openTracker(logOut io.Writer, opts ...studytracker.Option) (*studytracker.Tracker, func(), error) {
	workspaceDir, err := getWorkspaceDir()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get workspace directory: %w", err)
	}

	cfg, err := loadConfig(workspaceDir)
	if err != nil {
		return nil, nil, err
	}

	logPath := resolvePath(workspaceDir, cfg.Log.File)
	logger, closeLog, err := observability.OpenLogger(logPath, logOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}

	storePath := resolvePath(workspaceDir, cfg.Storage.Path)
	if storePath == "" {
		storePath = studytracker.DefaultStorePath(workspaceDir, cfg.Storage.Backend)
	}

	store, closeStore, err := studytracker.OpenStore(cfg.Storage.Backend, storePath)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("failed to open %s store: %w", cfg.Storage.Backend, err)
	}
	logger.Debug("store opened", "backend", cfg.Storage.Backend, "path", storePath)

	repo := studytracker.NewKVRepository(store, logger)
	tracker := studytracker.NewTracker(repo, append([]studytracker.Option{studytracker.WithLogger(logger)}, opts...)...)

	closeAll := func() {
		tracker.Close()
		if err := closeStore(); err != nil {
			logger.Warn("failed to close store", "error", err)
		}
		closeLog()
	}
	return tracker, closeAll, nil
}

// resolvePath makes a config path relative to the workspace
func resolvePath(workspaceDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workspaceDir, path)
}

// mustOpenTracker is openTracker for commands, logging to stderr
func mustOpenTracker() (*studytracker.Tracker, func()) {
	tracker, closeAll, err := openTracker(os.Stderr)
	if err != nil {
		fatal("%v", err)
	}
	return tracker, closeAll
}

// withTracker runs fn against an open tracker and closes it before returning, so
// callers can fatal on the error without leaking the store or the log file
func withTracker(logOut io.Writer, fn func(*studytracker.Tracker) error, opts ...studytracker.Option) error {
	tracker, closeAll, err := openTracker(logOut, opts...)
	if err != nil {
		return err
	}
	defer closeAll()
	return fn(tracker)
}
