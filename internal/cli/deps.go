// Package cli provides the cobra root command of create-react-kit and the
// dependency wiring behind it. This file defines the Dependencies struct
// (Composition Root) that wires the domain packages together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/forgekit/create-react-kit/internal/config"
	"github.com/forgekit/create-react-kit/internal/ui"
)

// Dependencies holds the services used by the root command. It is the
// only place where concrete types are instantiated.
type Dependencies struct {
	Config   *config.Config
	Logger   *slog.Logger
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Progress ui.Progress
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// @MX:ANCHOR: [AUTO] InitDependencies is the Composition Root for the create command.
// @MX:REASON: [AUTO] Configuration errors surface here, before any prompt is shown.
// InitDependencies loads the configuration and wires all dependencies.
// It should be called once during application startup.
func InitDependencies() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	deps = NewDependencies(cfg)
	return nil
}

// NewDependencies wires dependencies for an already loaded configuration.
func NewDependencies(cfg *config.Config) *Dependencies {
	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	theme := ui.NewTheme(cfg.NoColor)
	hm := ui.NewHeadlessManager()

	return &Dependencies{
		Config:   cfg,
		Logger:   newLogger(cfg, os.Stderr),
		Theme:    theme,
		Headless: hm,
		Progress: ui.NewProgress(theme, hm),
	}
}

// newLogger returns a text logger on w when a log level is configured and
// a discarding logger otherwise, so diagnostics never mix with the prompts
// unless asked for.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	if !cfg.LoggingEnabled() {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	level, ok := config.ParseLogLevel(cfg.LogLevel)
	if !ok {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
