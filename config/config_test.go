package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.LogLevel)
	}
	if !cfg.Audio {
		t.Error("Expected audio on by default")
	}
}

func TestLoadTomlAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "yarrl.toml")
	body := "data_dir = \"/tmp/yarrl-test\"\nlog_level = \"debug\"\nseed = 42\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("YARRL_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected a clean load, got %v", err)
	}
	if cfg.DataDir != "/tmp/yarrl-test" {
		t.Errorf("Expected the TOML data dir, got %q", cfg.DataDir)
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected the environment to win with warn, got %q", cfg.LogLevel)
	}

	if cfg.SavePath() != filepath.Join("/tmp/yarrl-test", "voyage.sav") {
		t.Errorf("Unexpected save path %q", cfg.SavePath())
	}
	if cfg.ScorePath() != filepath.Join("/tmp/yarrl-test", "scores.db") {
		t.Errorf("Unexpected score path %q", cfg.ScorePath())
	}
}

func TestBadTomlRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("data_dir = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected a parse error")
	}
}
