package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vk/fsloadgo/internal/arena"
	"github.com/vk/fsloadgo/internal/profile"
	"github.com/vk/fsloadgo/internal/providers"
	"github.com/vk/fsloadgo/internal/randdist"
	"github.com/vk/fsloadgo/internal/vars"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	registry  *vars.Registry
	providers *providers.Set
	loader    *profile.Loader
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, arena, and
// registry.
func New(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	scriptName := cfg.ScriptName
	if scriptName == "" {
		scriptName = filepath.Base(cfg.ProfilePath)
	}

	store := arena.New(cfg.ArenaBudget)
	provSet := providers.NewSet(scriptName)

	registry := vars.New(vars.Config{
		Arena:     store,
		Providers: provSet.Wire(),
		NewGenerator: func() vars.Generator {
			return randdist.New()
		},
		Shutdown: os.Exit,
	})
	logger.Debug("Variable registry initialized.",
		"arena_budget", cfg.ArenaBudget, "script", scriptName)

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		registry:  registry,
		providers: provSet,
		loader:    profile.NewLoader(registry),
	}
}

// Registry returns the application's variable registry. This is primarily
// for testing.
func (a *App) Registry() *vars.Registry {
	return a.registry
}
