// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"packtrader/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.SearchPaths) != 0 {
		t.Errorf("expected default search paths to be empty, got %v", cfg.SearchPaths)
	}
	if len(cfg.StructureDirs) != 0 {
		t.Errorf("expected default structure dirs to be empty, got %v", cfg.StructureDirs)
	}
	if cfg.Verbose {
		t.Error("expected verbose to be false by default")
	}
}

func TestLoadFrom(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.cue")
	content := `
search_paths: ["/srv/plugins"]
extra_categories: ["automation"]
verbose: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() returned error: %v", err)
	}

	if !slices.Equal(cfg.SearchPaths, []string{"/srv/plugins"}) {
		t.Errorf("SearchPaths = %v", cfg.SearchPaths)
	}
	if !slices.Equal(cfg.ExtraCategories, []string{"automation"}) {
		t.Errorf("ExtraCategories = %v", cfg.ExtraCategories)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoadFromRejectsSchemaViolations(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.cue")
	if err := os.WriteFile(path, []byte(`verbose: "very"`), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("LoadFrom() accepted a config violating the schema")
	}
	if !strings.Contains(err.Error(), "verbose") {
		t.Errorf("error %q does not name the offending field", err)
	}
}

func TestConfigDirDefaultHome(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG semantics only apply on Linux and friends")
	}

	restoreHome := testutil.SetHomeDir(t, "/home/u")
	defer restoreHome()
	restoreCfg := testutil.MustSetenv(t, "XDG_CONFIG_HOME", "")
	defer restoreCfg()

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	if want := filepath.Join("/home/u", ".config", AppName); dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
}

func TestLoadWithoutConfigFileUsesDefaults(t *testing.T) {
	restore := OverrideConfigDir(t.TempDir())
	defer restore()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(cfg.SearchPaths) != 0 {
		t.Errorf("SearchPaths = %v, want empty defaults", cfg.SearchPaths)
	}
}

func TestLoadReadsConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	restore := OverrideConfigDir(tmpDir)
	defer restore()

	path := filepath.Join(tmpDir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(`search_paths: ["/opt/pkgs"]`), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if !slices.Equal(cfg.SearchPaths, []string{"/opt/pkgs"}) {
		t.Errorf("SearchPaths = %v, want [/opt/pkgs]", cfg.SearchPaths)
	}
}
