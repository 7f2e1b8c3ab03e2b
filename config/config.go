// Package config loads runtime settings: defaults, then an optional
// TOML file, then YARRL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// Config holds everything the game reads at startup.
type Config struct {
	// DataDir holds the save file and the score database.
	DataDir string `toml:"data_dir" env:"DATA_DIR"`

	LogFile  string `toml:"log_file" env:"LOG_FILE"`
	LogLevel string `toml:"log_level" env:"LOG_LEVEL"`

	Audio bool `toml:"audio" env:"AUDIO"`

	// Seed pins the dice for a reproducible voyage; 0 means roll
	// fresh.
	Seed int64 `toml:"seed" env:"SEED"`
}

func Default() Config {
	dir := "."
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".yarrl")
	}
	return Config{
		DataDir:  dir,
		LogFile:  "yarrl.log",
		LogLevel: "info",
		Audio:    true,
	}
}

// Load builds the config from defaults, the TOML file at path (missing
// file is fine), and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "YARRL_"}); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

func (c Config) SavePath() string {
	return filepath.Join(c.DataDir, "voyage.sav")
}

func (c Config) ScorePath() string {
	return filepath.Join(c.DataDir, "scores.db")
}

func (c Config) LogPath() string {
	if filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, c.LogFile)
}
