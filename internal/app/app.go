// Package app wires configuration, the aria2 client, the snapshot store,
// and the UI into a running program.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"aria2top/internal/aria2"
	"aria2top/internal/config"
	"aria2top/internal/prefs"
	"aria2top/internal/state"
	"aria2top/internal/ui"
)

// Options configure the aria2top application.
type Options struct {
	ConfigPath     string
	PrefsPath      string // empty uses default ~/.config/aria2top/prefs.toml
	RPCURL         string // overrides config when non-empty
	Secret         string // overrides config when non-empty
	RefreshSeconds int    // seconds; zero uses the configured value
	LogPath        string // empty uses default ~/.local/state/aria2top/aria2top.log
}

const defaultLogPath = "~/.local/state/aria2top/aria2top.log"

// Run boots the aria2top TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.RPCURL != "" {
		cfg.RPCURL = opts.RPCURL
	}
	if opts.Secret != "" {
		cfg.Secret = opts.Secret
	}
	if opts.RefreshSeconds > 0 {
		cfg.RefreshEvery = time.Duration(opts.RefreshSeconds) * time.Second
	}

	logger, closeLog, err := newLogger(opts.LogPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := aria2.NewClient(cfg.RPCURL, cfg.Secret)
	if err != nil {
		return fmt.Errorf("init aria2 client: %w", err)
	}

	store := &state.Store{}

	// Start background poller and populate the store before the UI starts.
	StartPoller(ctx, store, client, cfg.RefreshEvery, logger)
	refresh(ctx, store, client, logger)

	uiOpts := ui.Options{
		Context:     ctx,
		Service:     client,
		Store:       store,
		Logger:      logger,
		PrefsPath:   opts.PrefsPath,
		SortColumn:  userPrefs.Sort,
		SortReverse: userPrefs.Reverse,
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

// newLogger opens the log file sink. The terminal is owned by the UI, so
// logs never go to stdout or stderr.
func newLogger(path string) (*slog.Logger, func(), error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		resolved = defaultLogPath
	}
	if strings.HasPrefix(resolved, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve home dir: %w", err)
		}
		resolved = filepath.Join(home, strings.TrimPrefix(resolved, "~"))
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(resolved, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(file, nil))
	return logger, func() { _ = file.Close() }, nil
}

// discardLogger is used when a component needs a logger but none is wired.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
