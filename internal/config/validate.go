package config

import (
	"errors"
	"fmt"

	"deskshell/internal/platform"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validatePlatform(); err != nil {
		return err
	}
	if err := c.validateFonts(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.SettingsDB == "" {
		return errors.New("paths.settings_db must be set")
	}
	if c.Paths.DocsBundleDepth < 1 || c.Paths.DocsBundleDepth > maxDocsBundleDepth {
		return fmt.Errorf("paths.docs_bundle_depth must be between 1 and %d", maxDocsBundleDepth)
	}
	return nil
}

func (c *Config) validatePlatform() error {
	if _, err := platform.Parse(c.Platform.Target); err != nil {
		return fmt.Errorf("platform.target: %w (expected windows, macos or linux)", err)
	}
	return nil
}

// TargetPlatform returns the configured platform, detecting it when unset.
func (c *Config) TargetPlatform() platform.Platform {
	p, err := platform.Parse(c.Platform.Target)
	if err != nil {
		return platform.Detect()
	}
	return p
}

func (c *Config) validateFonts() error {
	if c.Fonts.LookupTimeoutSeconds < 1 || c.Fonts.LookupTimeoutSeconds > maxFontLookupTimeoutSeconds {
		return fmt.Errorf("fonts.lookup_timeout_seconds must be between 1 and %d", maxFontLookupTimeoutSeconds)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
