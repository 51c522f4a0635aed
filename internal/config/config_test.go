package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Search.Includes) != 1 || cfg.Search.Includes[0] != "**/*.cs" {
		t.Errorf("default includes = %v", cfg.Search.Includes)
	}
	if !cfg.History.Enabled {
		t.Error("history not enabled by default")
	}
	if cfg.History.Dir != ".csiface" {
		t.Errorf("default history dir = %q", cfg.History.Dir)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Output.Dir = "Contracts"
	cfg.History.Enabled = false
	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Output.Dir != "Contracts" {
		t.Errorf("Output.Dir = %q", loaded.Output.Dir)
	}
	if loaded.History.Enabled {
		t.Error("History.Enabled not persisted")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	partial := "output:\n  dir: Generated\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Dir != "Generated" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if len(cfg.Search.Includes) == 0 {
		t.Error("includes default lost on partial file")
	}
	if !cfg.History.Enabled {
		t.Error("history default lost on partial file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(":\n  bad ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("malformed yaml did not error")
	}
}
