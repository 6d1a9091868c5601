package options

import (
	"deskshell/internal/fonts"
	"deskshell/internal/settings"
)

// Settings keys. These strings are persisted and must not change without a
// migration.
const (
	KeyMainWindowBounds              = "mainwindow/bounds"
	KeyRenderingEngine               = "desktop.renderingEngine"
	KeyProportionalFont              = fonts.ProportionalKey
	KeyFixedWidthFont                = fonts.FixedWidthKey
	KeyZoomLevel                     = "view.zoomLevel"
	KeyAccessibility                 = "view.accessibility"
	KeyClipboardMonitoring           = "clipboard.monitoring"
	KeyIgnoreGpuBlacklist            = "general.ignoreGpuBlacklist"
	KeyDisableGpuDriverBugWorkaround = "general.disableGpuDriverBugWorkarounds"
	KeyRBinDir                       = "RBinDir"
	KeyIgnoredUpdateVersions         = "ignoredUpdateVersions"
)

// Defaults for keys that have a fixed one.
const (
	DefaultZoomLevel            = 1.0
	DefaultAccessibility        = false
	DefaultClipboardMonitoring  = true
	DefaultIgnoreGpuBlacklist   = false
	DefaultDisableGpuWorkaround = false
)

// KeyInfo describes one known option.
type KeyInfo struct {
	Name        string
	Kind        settings.Kind
	Description string
	// Detected keys have no fixed default; an absent value is derived.
	Detected bool
	// WindowsOnly keys are rejected on other platforms.
	WindowsOnly bool
}

var knownKeys = []KeyInfo{
	{Name: KeyZoomLevel, Kind: settings.KindFloat, Description: "view zoom factor"},
	{Name: KeyAccessibility, Kind: settings.KindBool, Description: "screen reader support"},
	{Name: KeyClipboardMonitoring, Kind: settings.KindBool, Description: "watch the clipboard for changes"},
	{Name: KeyIgnoreGpuBlacklist, Kind: settings.KindBool, Description: "use the GPU even when blacklisted"},
	{Name: KeyDisableGpuDriverBugWorkaround, Kind: settings.KindBool, Description: "skip GPU driver workarounds"},
	{Name: KeyRenderingEngine, Kind: settings.KindString, Description: "desktop rendering engine"},
	{Name: KeyProportionalFont, Kind: settings.KindString, Description: "proportional font family", Detected: true},
	{Name: KeyFixedWidthFont, Kind: settings.KindString, Description: "fixed-width font family", Detected: true},
	{Name: KeyRBinDir, Kind: settings.KindString, Description: "R installation bin directory", WindowsOnly: true},
	{Name: KeyIgnoredUpdateVersions, Kind: settings.KindStrings, Description: "update versions not to offer again"},
	{Name: KeyMainWindowBounds, Kind: settings.KindStrings, Description: "main window x, y, width, height"},
}

// Keys returns every known option in display order.
func Keys() []KeyInfo {
	out := make([]KeyInfo, len(knownKeys))
	copy(out, knownKeys)
	return out
}

// LookupKey returns the description of a known option.
func LookupKey(name string) (KeyInfo, bool) {
	for _, info := range knownKeys {
		if info.Name == name {
			return info, true
		}
	}
	return KeyInfo{}, false
}
