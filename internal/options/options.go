package options

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"deskshell/internal/endpoint"
	"deskshell/internal/fonts"
	"deskshell/internal/logging"
	"deskshell/internal/paths"
	"deskshell/internal/platform"
	"deskshell/internal/settings"
)

// DiagnosticsFlag on the command line turns on diagnostics mode.
const DiagnosticsFlag = "--run-diagnostics"

var (
	// ErrUnsupportedPlatform is returned when setting an option that does not
	// apply to the target platform.
	ErrUnsupportedPlatform = errors.New("option not supported on this platform")
	// ErrUnknownKey is returned for option names outside the known key table.
	ErrUnknownKey = errors.New("unknown option")
	// ErrInvalidValue is returned when a value cannot be stored for an option.
	ErrInvalidValue = errors.New("invalid option value")
)

// DisplayInfo is the live view of display state that tracks the zoom level.
type DisplayInfo interface {
	SetZoomLevel(zoom float64)
}

// Environment is the slice of the host process the options depend on.
type Environment interface {
	paths.ExecutableLocator
	endpoint.EnvSetter
}

// Dependencies are the collaborators an Options is built from. Settings and
// Env are required; the rest may be left zero.
type Dependencies struct {
	Settings *settings.Settings
	Platform platform.Platform
	Env      Environment
	Display  DisplayInfo
	Fonts    fonts.Database
	Paths    paths.Options
	// Random overrides the endpoint's random source.
	Random func() int
	Logger *slog.Logger
}

// Options holds the process's runtime options.
type Options struct {
	settings *settings.Settings
	platform platform.Platform
	display  DisplayInfo
	logger   *slog.Logger

	paths    *paths.Resolver
	fonts    *fonts.Selector
	endpoint *endpoint.Namer

	runDiagnostics bool
}

// New builds the options and their derived-value components.
func New(deps Dependencies) (*Options, error) {
	if deps.Settings == nil {
		return nil, errors.New("options: settings are required")
	}
	if deps.Env == nil {
		return nil, errors.New("options: environment is required")
	}

	logger := logging.NewComponentLogger(deps.Logger, "options")
	pathOpts := deps.Paths
	pathOpts.Platform = deps.Platform

	endpointOpts := []endpoint.Option{endpoint.WithLogger(deps.Logger)}
	if deps.Random != nil {
		endpointOpts = append(endpointOpts, endpoint.WithRandom(deps.Random))
	}

	return &Options{
		settings: deps.Settings,
		platform: deps.Platform,
		display:  deps.Display,
		logger:   logger,
		paths:    paths.New(deps.Env, pathOpts, deps.Logger),
		fonts:    fonts.NewSelector(deps.Settings, deps.Platform, deps.Fonts, deps.Logger),
		endpoint: endpoint.New(deps.Platform, deps.Env, endpointOpts...),
	}, nil
}

// InitFromCommandLine records startup flags and pushes the saved zoom level
// to the display. args includes the program name.
func (o *Options) InitFromCommandLine(args []string) {
	if len(args) > 1 && slices.Contains(args[1:], DiagnosticsFlag) {
		o.runDiagnostics = true
		o.logger.Info("diagnostics mode enabled", slog.String(logging.FieldEventType, "diagnostics"))
	}
	if o.display != nil {
		o.display.SetZoomLevel(o.ZoomLevel())
	}
}

// RunDiagnostics reports whether diagnostics mode was requested.
func (o *Options) RunDiagnostics() bool {
	return o.runDiagnostics
}

// Platform returns the target platform.
func (o *Options) Platform() platform.Platform {
	return o.platform
}

// Settings returns the underlying settings.
func (o *Options) Settings() *settings.Settings {
	return o.settings
}

// Close releases resources held by the path resolver.
func (o *Options) Close() error {
	return o.paths.Close()
}

// ZoomLevel returns the saved zoom factor.
func (o *Options) ZoomLevel() float64 {
	return o.settings.Float(KeyZoomLevel, DefaultZoomLevel)
}

// SetZoomLevel updates the display before persisting, so the two agree even
// if the process exits right after the call.
func (o *Options) SetZoomLevel(zoom float64) error {
	if zoom <= 0 || math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		return fmt.Errorf("%w: zoom level %v", ErrInvalidValue, zoom)
	}
	if o.display != nil {
		o.display.SetZoomLevel(zoom)
	}
	return o.settings.SetFloat(KeyZoomLevel, zoom)
}

// EnableAccessibility reports whether screen reader support is on.
func (o *Options) EnableAccessibility() bool {
	return o.settings.Bool(KeyAccessibility, DefaultAccessibility)
}

// SetEnableAccessibility saves the screen reader preference.
func (o *Options) SetEnableAccessibility(enabled bool) error {
	return o.settings.SetBool(KeyAccessibility, enabled)
}

// ClipboardMonitoring reports whether the clipboard is watched.
func (o *Options) ClipboardMonitoring() bool {
	return o.settings.Bool(KeyClipboardMonitoring, DefaultClipboardMonitoring)
}

// SetClipboardMonitoring saves the clipboard preference.
func (o *Options) SetClipboardMonitoring(enabled bool) error {
	return o.settings.SetBool(KeyClipboardMonitoring, enabled)
}

// IgnoreGpuBlacklist reports whether the GPU is used even when blacklisted.
func (o *Options) IgnoreGpuBlacklist() bool {
	return o.settings.Bool(KeyIgnoreGpuBlacklist, DefaultIgnoreGpuBlacklist)
}

// SetIgnoreGpuBlacklist saves the GPU blacklist preference.
func (o *Options) SetIgnoreGpuBlacklist(ignore bool) error {
	return o.settings.SetBool(KeyIgnoreGpuBlacklist, ignore)
}

// DisableGpuDriverBugWorkarounds reports whether GPU driver workarounds are skipped.
func (o *Options) DisableGpuDriverBugWorkarounds() bool {
	return o.settings.Bool(KeyDisableGpuDriverBugWorkaround, DefaultDisableGpuWorkaround)
}

// SetDisableGpuDriverBugWorkarounds saves the GPU workaround preference.
func (o *Options) SetDisableGpuDriverBugWorkarounds(disable bool) error {
	return o.settings.SetBool(KeyDisableGpuDriverBugWorkaround, disable)
}

// DesktopRenderingEngine returns the configured engine, or "" for the
// toolkit's default.
func (o *Options) DesktopRenderingEngine() string {
	return o.settings.String(KeyRenderingEngine, "")
}

// SetDesktopRenderingEngine saves the rendering engine.
func (o *Options) SetDesktopRenderingEngine(engine string) error {
	return o.settings.SetString(KeyRenderingEngine, engine)
}

// RBinDir returns the user-selected R bin directory. It is always empty off
// Windows.
func (o *Options) RBinDir() string {
	if o.platform != platform.Windows {
		return ""
	}
	return o.settings.String(KeyRBinDir, "")
}

// SetRBinDir saves the R bin directory. It fails off Windows.
func (o *Options) SetRBinDir(dir string) error {
	if o.platform != platform.Windows {
		return fmt.Errorf("%s on %s: %w", KeyRBinDir, o.platform, ErrUnsupportedPlatform)
	}
	return o.settings.SetString(KeyRBinDir, dir)
}

// IgnoredUpdateVersions returns the update versions the user dismissed, in
// the order they were stored.
func (o *Options) IgnoredUpdateVersions() []string {
	return o.settings.Strings(KeyIgnoredUpdateVersions, nil)
}

// SetIgnoredUpdateVersions saves the dismissed update versions.
func (o *Options) SetIgnoredUpdateVersions(versions []string) error {
	return o.settings.SetStrings(KeyIgnoredUpdateVersions, versions)
}

// Fonts

// ProportionalFont returns the proportional font choice.
func (o *Options) ProportionalFont() fonts.Choice {
	return o.fonts.ProportionalFont()
}

// SetProportionalFont saves the proportional font override.
func (o *Options) SetProportionalFont(family string) error {
	return o.fonts.SetProportionalFont(family)
}

// FixedWidthFont returns the fixed-width font choice.
func (o *Options) FixedWidthFont() fonts.Choice {
	return o.fonts.FixedWidthFont()
}

// SetFixedWidthFont saves the fixed-width font override.
func (o *Options) SetFixedWidthFont(family string) error {
	return o.fonts.SetFixedWidthFont(family)
}

// SelectFont picks from candidates, honouring the user override.
func (o *Options) SelectFont(candidates []string, fallback string, fixedWidthOnly bool) fonts.Choice {
	return o.fonts.SelectFont(candidates, fallback, fixedWidthOnly)
}

// Endpoint

// PortNumber returns the session port, drawing one on first use.
func (o *Options) PortNumber() int {
	return o.endpoint.PortNumber()
}

// PortString returns the session port as text.
func (o *Options) PortString() string {
	return o.endpoint.PortString()
}

// NewPortNumber discards the current endpoint and draws a new one.
func (o *Options) NewPortNumber() int {
	return o.endpoint.NewPortNumber()
}

// LocalPeer returns the named-pipe peer, or "" off Windows.
func (o *Options) LocalPeer() string {
	return o.endpoint.LocalPeer()
}

// Paths

// ExecutablePath returns the running executable.
func (o *Options) ExecutablePath() paths.ResolvedPath {
	return o.paths.ExecutablePath()
}

// SupportingFilePath returns the root of the installed support files.
func (o *Options) SupportingFilePath() paths.ResolvedPath {
	return o.paths.SupportingFilePath()
}

// ScriptsPath returns the scripts directory.
func (o *Options) ScriptsPath() paths.ResolvedPath {
	return o.paths.ScriptsPath()
}

// SetScriptsPath overrides the scripts directory.
func (o *Options) SetScriptsPath(path string) {
	o.paths.SetScriptsPath(path)
}

// ResourcesPath returns the resources directory.
func (o *Options) ResourcesPath() paths.ResolvedPath {
	return o.paths.ResourcesPath()
}

// DocsPath returns the documentation directory.
func (o *Options) DocsPath() paths.ResolvedPath {
	return o.paths.DocsPath()
}

// URLOpenerPath returns the Windows URL opener helper.
func (o *Options) URLOpenerPath() paths.ResolvedPath {
	return o.paths.URLOpenerPath()
}

// InverseSearchPath returns the Windows inverse search helper.
func (o *Options) InverseSearchPath() paths.ResolvedPath {
	return o.paths.InverseSearchPath()
}

// SetScratchRoot sets the scratch root until a scratch dir is handed out.
func (o *Options) SetScratchRoot(root string) {
	o.paths.SetScratchRoot(root)
}

// ScratchTempDir returns the scratch temp directory, or defaultPath.
func (o *Options) ScratchTempDir(defaultPath string) paths.ResolvedPath {
	return o.paths.ScratchTempDir(defaultPath)
}

// CleanUpScratchTempDir removes the scratch temp directory.
func (o *Options) CleanUpScratchTempDir() {
	o.paths.CleanUpScratchTempDir()
}
