package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `steam_path: /opt/steam
applications_dir: /tmp/applications
skip_keywords:
  - Proton
  - Soundtrack
ignored_app_ids:
  - "480"
  - "1070560"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SteamPath != "/opt/steam" {
		t.Errorf("SteamPath = %q, want %q", cfg.SteamPath, "/opt/steam")
	}
	if cfg.ApplicationsDir != "/tmp/applications" {
		t.Errorf("ApplicationsDir = %q, want %q", cfg.ApplicationsDir, "/tmp/applications")
	}
	if want := []string{"Proton", "Soundtrack"}; !reflect.DeepEqual(cfg.SkipKeywords, want) {
		t.Errorf("SkipKeywords = %v, want %v", cfg.SkipKeywords, want)
	}
	if want := []string{"480", "1070560"}; !reflect.DeepEqual(cfg.IgnoredAppIDs, want) {
		t.Errorf("IgnoredAppIDs = %v, want %v", cfg.IgnoredAppIDs, want)
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load() on missing file should not error, got %v", err)
	}
	if cfg.SteamPath != "" || cfg.ApplicationsDir != "" {
		t.Errorf("Load() on missing file = %+v, want zero value", cfg)
	}
	if len(cfg.SkipKeywords) != 0 || len(cfg.IgnoredAppIDs) != 0 {
		t.Errorf("Load() on missing file should carry no exclusion lists, got %+v", cfg)
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("steam_path: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() on malformed YAML should error")
	}
}
