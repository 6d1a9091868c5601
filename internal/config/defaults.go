package config

const (
	defaultConfigPath           = "~/.config/deskshell/config.toml"
	projectConfigName           = "deskshell.toml"
	defaultSettingsDB           = "~/.config/deskshell/settings.db"
	defaultLogDir               = "~/.local/share/deskshell/logs"
	defaultDocsBundleDepth      = 5
	defaultFontconfigBinary     = "fc-list"
	defaultFontLookupTimeout    = 5
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	scratchRootEnv              = "DESKSHELL_SCRATCH_ROOT"
	maxDocsBundleDepth          = 16
	maxFontLookupTimeoutSeconds = 120
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SettingsDB:      defaultSettingsDB,
			LogDir:          defaultLogDir,
			DocsBundleDepth: defaultDocsBundleDepth,
		},
		Fonts: Fonts{
			FontconfigBinary:     defaultFontconfigBinary,
			LookupTimeoutSeconds: defaultFontLookupTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
