// Package config reads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds every knob the process reads from the environment.
// Everything has a default; nothing is required.
type Config struct {
	ContentDir  string `env:"FIELDOPS_CONTENT" env-default:"data"`
	SaveBackend string `env:"FIELDOPS_SAVE_BACKEND" env-default:"file"`
	SavePath    string `env:"FIELDOPS_SAVE_PATH" env-default:"~/.fieldops/save.json"`
	RedisAddr   string `env:"FIELDOPS_REDIS_ADDR" env-default:"localhost:6379"`
	RedisKey    string `env:"FIELDOPS_REDIS_KEY" env-default:"fieldops:save"`
	LogLevel    string `env:"FIELDOPS_LOG_LEVEL" env-default:"info"`
	LogFile     string `env:"FIELDOPS_LOG_FILE" env-default:"~/.fieldops/fieldops.log"`
	Seed        int64  `env:"FIELDOPS_SEED" env-default:"0"`
}

// Load reads the environment and expands a leading ~ in path settings.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if cfg.SaveBackend != "file" && cfg.SaveBackend != "redis" {
		return nil, fmt.Errorf("unknown save backend %q (want file or redis)", cfg.SaveBackend)
	}
	var err error
	if cfg.SavePath, err = expandHome(cfg.SavePath); err != nil {
		return nil, err
	}
	if cfg.LogFile, err = expandHome(cfg.LogFile); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
