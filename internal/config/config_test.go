package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/renoboard-test"
	warn := 90.0
	cfg.Budget.WarnUtilizationPct = &warn

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if back.General.DataDir != cfg.General.DataDir {
		t.Errorf("DataDir = %q", back.General.DataDir)
	}
	if back.Budget.WarnUtilizationPct == nil || *back.Budget.WarnUtilizationPct != 90 {
		t.Errorf("WarnUtilizationPct = %v", back.Budget.WarnUtilizationPct)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfgDir := filepath.Join(dir, "renoboard")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("not = [toml"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestDataDirOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/custom/path"
	if got := DataDir(cfg); got != "/custom/path" {
		t.Errorf("DataDir = %q", got)
	}

	cfg.General.DataDir = ""
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	if got := DataDir(cfg); got != filepath.Join("/xdg/data", "renoboard") {
		t.Errorf("DataDir = %q", got)
	}
}
