package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Quit = %q, want default", cfg.KeyMappings.Quit)
	}
	if cfg.Theme.Accent == "" {
		t.Error("expected default theme colors")
	}
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "tablero")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	partial := "key_mappings:\n  quit: x\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(partial), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Quit = %q, want override", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddTask != "a" {
		t.Errorf("AddTask = %q, want default for unset field", cfg.KeyMappings.AddTask)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.KeyMappings.Quit = "ctrl+c"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.KeyMappings.Quit != "ctrl+c" {
		t.Errorf("Quit = %q after round trip", loaded.KeyMappings.Quit)
	}
}
