// Fieldops is a single-player text operation: a scripted training camp,
// a mission office, and menu-driven combat, all read from a JSON or Lua
// content pack.
// Usage: fieldops [--version] [--plain] [--content <dir>]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/nmoretto/fieldops/cli"
	"github.com/nmoretto/fieldops/config"
	"github.com/nmoretto/fieldops/content"
	"github.com/nmoretto/fieldops/engine"
	"github.com/nmoretto/fieldops/game"
	"github.com/nmoretto/fieldops/storage"
	"github.com/nmoretto/fieldops/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	contentDir := ""

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("fieldops %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--content":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--content requires a directory\n")
				os.Exit(1)
			}
			i++
			contentDir = args[i]
		default:
			fmt.Fprintf(os.Stderr, "Usage: fieldops [--version] [--plain] [--content <dir>]\n")
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading configuration: %v\n", err)
		os.Exit(1)
	}
	if contentDir == "" {
		contentDir = cfg.ContentDir
	}

	log, closeLog, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cat, err := content.Load(contentDir, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content pack: %v\n", err)
		os.Exit(1)
	}

	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	rng := engine.NewRNG(cfg.Seed)
	ctx := context.Background()

	session := func(gw engine.Gateway) error {
		g := &game.Game{
			Catalog: cat,
			Store:   store,
			GW:      gw,
			RNG:     rng,
			Log:     log,
		}
		return g.Run(ctx)
	}

	// Plain CLI when asked for, or when stdout is piped or redirected.
	if plain || !isTerminal(os.Stdout) {
		console := cli.NewConsole(os.Stdin, os.Stdout)
		console.Echo = !isTerminal(os.Stdin)
		if err := session(console); err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	err = tui.Run(func(gw *tui.Gateway) error { return session(gw) })
	if err != nil && !errors.Is(err, tui.ErrClosed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openLogger writes structured logs to the configured file, keeping the
// terminal free for the game itself.
func openLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parsing log level %q: %w", cfg.LogLevel, err)
	}
	if dir := filepath.Dir(cfg.LogFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("creating log directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}
	log := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return log, func() { f.Close() }, nil
}

// openStore selects the configured save backend.
func openStore(cfg *config.Config, log zerolog.Logger) (storage.Store, func(), error) {
	if cfg.SaveBackend == "redis" {
		rs, err := storage.NewRedisStore(cfg.RedisAddr, cfg.RedisKey, log)
		if err != nil {
			return nil, nil, err
		}
		return rs, func() { rs.Close() }, nil
	}
	return storage.NewFileStore(cfg.SavePath), func() {}, nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
