package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.Platform.Target = strings.ToLower(strings.TrimSpace(c.Platform.Target))
	c.normalizeFonts()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.SettingsDB) == "" {
		c.Paths.SettingsDB = defaultSettingsDB
	}
	if strings.TrimSpace(c.Paths.ScratchRoot) == "" {
		if value, ok := os.LookupEnv(scratchRootEnv); ok {
			c.Paths.ScratchRoot = strings.TrimSpace(value)
		}
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"paths.settings_db", &c.Paths.SettingsDB},
		{"paths.log_dir", &c.Paths.LogDir},
		{"paths.scratch_root", &c.Paths.ScratchRoot},
		{"paths.scripts_dir", &c.Paths.ScriptsDir},
	}
	for _, field := range fields {
		expanded, err := expandPath(strings.TrimSpace(*field.value))
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}

	if c.Paths.DocsBundleDepth == 0 {
		c.Paths.DocsBundleDepth = defaultDocsBundleDepth
	}
	return nil
}

func (c *Config) normalizeFonts() {
	c.Fonts.FontconfigBinary = strings.TrimSpace(c.Fonts.FontconfigBinary)
	if c.Fonts.FontconfigBinary == "" {
		c.Fonts.FontconfigBinary = defaultFontconfigBinary
	}
	if c.Fonts.LookupTimeoutSeconds == 0 {
		c.Fonts.LookupTimeoutSeconds = defaultFontLookupTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
