package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"deskshell/internal/config"
	"deskshell/internal/fonts"
	"deskshell/internal/hostenv"
	"deskshell/internal/logging"
	"deskshell/internal/options"
	"deskshell/internal/paths"
	"deskshell/internal/platform"
	"deskshell/internal/settings"
)

type globalFlags struct {
	config      string
	settings    string
	platform    string
	diagnostics bool
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if override := strings.TrimSpace(c.flags.settings); override != "" {
			expanded, err := config.ExpandPath(override)
			if err != nil {
				c.configErr = fmt.Errorf("resolve settings path: %w", err)
				return
			}
			cfg.Paths.SettingsDB = expanded
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the CLI logger once, tagged with a per-invocation
// session id so log lines from one run can be grouped.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger.With(slog.String(logging.FieldSessionID, uuid.NewString()))
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) targetPlatform(cfg *config.Config) (platform.Platform, error) {
	if value := strings.TrimSpace(c.flags.platform); value != "" {
		p, err := platform.Parse(value)
		if err != nil {
			return platform.Linux, fmt.Errorf("--platform: %w", err)
		}
		return p, nil
	}
	return cfg.TargetPlatform(), nil
}

// argv rebuilds the startup arguments the shell would have seen.
func (c *commandContext) argv() []string {
	args := []string{"deskopts"}
	if c.flags.diagnostics {
		args = append(args, options.DiagnosticsFlag)
	}
	return args
}

// withOptions opens the settings database and builds the options for the
// duration of fn.
func (c *commandContext) withOptions(fn func(*options.Options) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}
	target, err := c.targetPlatform(cfg)
	if err != nil {
		return err
	}

	store, err := settings.OpenSQLite(cfg.Paths.SettingsDB)
	if err != nil {
		return err
	}
	defer store.Close()

	timeout := time.Duration(cfg.Fonts.LookupTimeoutSeconds) * time.Second
	opts, err := options.New(options.Dependencies{
		Settings: settings.New(store, logger),
		Platform: target,
		Env:      hostenv.OS{},
		Fonts:    fonts.NewFontconfigDatabase(cfg.Fonts.FontconfigBinary, timeout, nil, logger),
		Paths: paths.Options{
			ScriptsDir:      cfg.Paths.ScriptsDir,
			ScratchRoot:     cfg.Paths.ScratchRoot,
			DocsBundleDepth: cfg.Paths.DocsBundleDepth,
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer opts.Close()

	opts.InitFromCommandLine(c.argv())
	return fn(opts)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
