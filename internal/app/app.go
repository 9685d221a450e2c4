package app

import (
	"io"
	"log/slog"

	"roster/internal/registry"
)

// Options configures the top-level controller.
type Options struct {
	// Registry to operate on. A fresh empty registry is used when nil.
	Registry *registry.Registry
	// Logger receives debug records for every executed command.
	Logger *slog.Logger
}

// App exposes high-level operations that the shell/TUI can reuse.
// It owns the single registry for the session.
type App struct {
	reg *registry.Registry
	log *slog.Logger
}

// New constructs the shared controller facade.
func New(opts Options) *App {
	reg := opts.Registry
	if reg == nil {
		reg = registry.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{
		reg: reg,
		log: logger,
	}
}

// Registry returns the underlying registry for read-only views.
func (a *App) Registry() *registry.Registry {
	return a.reg
}
