package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"deskshell/internal/config"
	"deskshell/internal/platform"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("DESKSHELL_SCRATCH_ROOT", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "deskshell", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}

	if want := filepath.Join(tempHome, ".config", "deskshell", "settings.db"); cfg.Paths.SettingsDB != want {
		t.Fatalf("unexpected settings db: got %q want %q", cfg.Paths.SettingsDB, want)
	}
	if want := filepath.Join(tempHome, ".local", "share", "deskshell", "logs"); cfg.Paths.LogDir != want {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, want)
	}
	if cfg.Paths.ScratchRoot != "" {
		t.Fatalf("expected empty scratch root, got %q", cfg.Paths.ScratchRoot)
	}
	if cfg.Paths.DocsBundleDepth != 5 {
		t.Fatalf("unexpected docs bundle depth: %d", cfg.Paths.DocsBundleDepth)
	}
	if cfg.Fonts.FontconfigBinary != "fc-list" {
		t.Fatalf("unexpected fontconfig binary: %q", cfg.Fonts.FontconfigBinary)
	}
	if cfg.TargetPlatform() != platform.Detect() {
		t.Fatalf("expected detected platform, got %v", cfg.TargetPlatform())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, filepath.Dir(cfg.Paths.SettingsDB)} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "deskshell.toml")
	scratch := filepath.Join(tempDir, "scratch")

	custom := config.Default()
	custom.Paths.ScratchRoot = scratch
	custom.Paths.DocsBundleDepth = 3
	custom.Platform.Target = "MacOS"
	custom.Logging.Format = "JSON"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom path to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Paths.ScratchRoot != scratch {
		t.Fatalf("unexpected scratch root: %q", cfg.Paths.ScratchRoot)
	}
	if cfg.Paths.DocsBundleDepth != 3 {
		t.Fatalf("unexpected docs bundle depth: %d", cfg.Paths.DocsBundleDepth)
	}
	if cfg.TargetPlatform() != platform.MacOS {
		t.Fatalf("expected macos target, got %v", cfg.TargetPlatform())
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected normalized json format, got %q", cfg.Logging.Format)
	}
}

func TestLoadScratchRootFromEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	scratch := t.TempDir()
	t.Setenv("DESKSHELL_SCRATCH_ROOT", scratch)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.ScratchRoot != scratch {
		t.Fatalf("expected scratch root from env, got %q", cfg.Paths.ScratchRoot)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"platform", "[platform]\ntarget = \"beos\"\n", "platform.target"},
		{"depth", "[paths]\ndocs_bundle_depth = 40\n", "docs_bundle_depth"},
		{"format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"timeout", "[fonts]\nlookup_timeout_seconds = -1\n", "lookup_timeout_seconds"},
		{"unknown", "[paths]\nbogus = 1\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "deskshell.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config must load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Paths.DocsBundleDepth != 5 {
		t.Fatalf("unexpected sample depth: %d", cfg.Paths.DocsBundleDepth)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := config.ExpandPath("~/x/y")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if want := filepath.Join(home, "x", "y"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
	if got, _ := config.ExpandPath(""); got != "" {
		t.Fatalf("expected empty path to stay empty, got %q", got)
	}
}
