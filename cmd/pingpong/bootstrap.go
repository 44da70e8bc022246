package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/ledger"
	"github.com/vovakirdan/pingpong/internal/storage"
)

// Score backends selectable with --store.
const (
	storeYAML   = "yaml"
	storeSQLite = "sqlite"
)

// app holds everything a front-end needs, built once from the global flags.
type app struct {
	docs   *config.Documents
	ledger *ledger.Ledger
	logger *log.Logger
	store  *storage.Store // nil unless --store sqlite

	closers []io.Closer
}

// scoresPath returns the --scores flag or the default for the chosen backend.
func scoresPath(store string) string {
	if flagScores != "" {
		return config.ExpandHome(flagScores)
	}
	name := "scores.yaml"
	if store == storeSQLite {
		name = "scores.db"
	}
	return config.ExpandHome(filepath.Join("~", ".pingpong", name))
}

// newLogger opens the log file. The terminal belongs to the UI, so nothing
// is logged to stdout or stderr.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pingpong",
		Level:           lvl,
	})
	return logger, f, nil
}

// openBackend builds the ledger backend selected by --store.
func openBackend(store, path string) (ledger.Backend, *storage.Store, error) {
	switch store {
	case storeYAML:
		return ledger.NewYAMLFile(path), nil, nil
	case storeSQLite:
		s, err := storage.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want %q or %q)", store, storeYAML, storeSQLite)
	}
}

// bootstrap loads configuration and the score ledger. Any failure here is
// fatal: the caller prints it and exits 1.
func bootstrap() (*app, error) {
	logger, logCloser, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}
	a := &app{logger: logger, closers: []io.Closer{logCloser}}

	docs, err := config.Load(flagConfig)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.docs = docs
	logger.Info("configuration loaded", "source", docs.Source)

	path := scoresPath(flagStore)
	backend, store, err := openBackend(flagStore, path)
	if err != nil {
		a.Close()
		return nil, err
	}
	if store != nil {
		a.store = store
		a.closers = append(a.closers, store)
	}

	a.ledger = ledger.New(backend)
	if err := a.ledger.Load(); err != nil {
		a.Close()
		return nil, err
	}
	logger.Info("ledger loaded", "store", flagStore, "path", path, "results", a.ledger.Len())

	return a, nil
}

// Close releases the score store and the log file, newest first.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
