package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func init() {
	homedir.DisableCache = true
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfigDefault(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DATEKEEPER_PATH", "")
	t.Setenv("DATEKEEPER_CONFIG_PATH", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataPath() != DefaultPath {
		t.Fatalf("expected %s, got %s", DefaultPath, cfg.DataPath())
	}
	if cfg.ConfigFile() != "" {
		t.Fatalf("expected no config file, got %s", cfg.ConfigFile())
	}
}

func TestLoadConfigEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	want := filepath.Join(t.TempDir(), "dates.json")
	t.Setenv("DATEKEEPER_PATH", want)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataPath() != want {
		t.Fatalf("expected %s, got %s", want, cfg.DataPath())
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DATEKEEPER_PATH", "")
	t.Setenv("DATEKEEPER_CONFIG_PATH", "")
	if err := os.WriteFile(filepath.Join(dir, ".datekeeper.yaml"), []byte("path: custom/dates.json\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataPath() != "custom/dates.json" {
		t.Fatalf("expected path from config file, got %s", cfg.DataPath())
	}
	if cfg.ConfigFile() == "" {
		t.Fatal("expected config file to be reported")
	}
}

func TestLoadUsesConfigPath(t *testing.T) {
	p, err := Load(NewConfig(filepath.Join("x", "y.json")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Path() != filepath.Join("x", "y.json") {
		t.Fatalf("unexpected path %s", p.Path())
	}
	if _, err := Load(NewConfig("  ")); err == nil {
		t.Fatal("expected error for empty path")
	}
}
