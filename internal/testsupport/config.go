package testsupport

import (
	"path/filepath"
	"testing"

	"deskshell/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.SettingsDB = filepath.Join(base, "config", "settings.db")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithScratchRoot creates a scratch root under the test's base directory.
func WithScratchRoot() ConfigOption {
	return func(b *configBuilder) {
		root := filepath.Join(b.baseDir, "scratch")
		MkdirAll(b.t, root)
		b.cfg.Paths.ScratchRoot = root
	}
}

// WithPlatform pins the configured target platform.
func WithPlatform(target string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Platform.Target = target
	}
}

// WithFontconfigBinary points font discovery at binary.
func WithFontconfigBinary(binary string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Fonts.FontconfigBinary = binary
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
