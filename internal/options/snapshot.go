package options

import (
	"fmt"
	"strconv"
	"strings"

	"deskshell/internal/platform"
	"deskshell/internal/settings"
)

// Source says where a displayed option value came from.
type Source string

const (
	SourceStored      Source = "stored"
	SourceDefault     Source = "default"
	SourceDetected    Source = "detected"
	SourceUnsupported Source = "unsupported"
)

// Row is one option as shown to the user.
type Row struct {
	Key    string
	Value  string
	Source Source
}

// Snapshot returns every known option with its effective value.
func (o *Options) Snapshot() []Row {
	rows := make([]Row, 0, len(knownKeys))
	for _, info := range knownKeys {
		rows = append(rows, o.row(info))
	}
	return rows
}

// Get returns the effective value of a known option.
func (o *Options) Get(name string) (Row, error) {
	info, ok := LookupKey(name)
	if !ok {
		return Row{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return o.row(info), nil
}

func (o *Options) row(info KeyInfo) Row {
	row := Row{Key: info.Name, Source: SourceDefault}
	if info.WindowsOnly && o.platform != platform.Windows {
		row.Source = SourceUnsupported
		return row
	}
	if o.settings.Contains(info.Name) {
		row.Source = SourceStored
	}

	switch info.Name {
	case KeyZoomLevel:
		row.Value = strconv.FormatFloat(o.ZoomLevel(), 'g', -1, 64)
	case KeyAccessibility:
		row.Value = strconv.FormatBool(o.EnableAccessibility())
	case KeyClipboardMonitoring:
		row.Value = strconv.FormatBool(o.ClipboardMonitoring())
	case KeyIgnoreGpuBlacklist:
		row.Value = strconv.FormatBool(o.IgnoreGpuBlacklist())
	case KeyDisableGpuDriverBugWorkaround:
		row.Value = strconv.FormatBool(o.DisableGpuDriverBugWorkarounds())
	case KeyRenderingEngine:
		row.Value = o.DesktopRenderingEngine()
	case KeyRBinDir:
		row.Value = o.RBinDir()
	case KeyProportionalFont:
		row.Value = o.ProportionalFont().String()
	case KeyFixedWidthFont:
		row.Value = o.FixedWidthFont().String()
	case KeyIgnoredUpdateVersions:
		row.Value = strings.Join(o.IgnoredUpdateVersions(), ",")
	case KeyMainWindowBounds:
		if r, ok := o.MainWindowBounds(); ok {
			row.Value = r.String()
		}
	}
	if info.Detected && row.Source == SourceDefault {
		row.Source = SourceDetected
	}
	return row
}

// SetText parses text according to the option's type and stores it. Lists
// are comma-separated; window bounds are "x,y,width,height".
func (o *Options) SetText(name, text string) error {
	info, ok := LookupKey(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	text = strings.TrimSpace(text)

	switch info.Name {
	case KeyZoomLevel:
		zoom, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, name, err)
		}
		return o.SetZoomLevel(zoom)
	case KeyRBinDir:
		return o.SetRBinDir(text)
	case KeyProportionalFont:
		return o.SetProportionalFont(text)
	case KeyFixedWidthFont:
		return o.SetFixedWidthFont(text)
	case KeyMainWindowBounds:
		r, err := ParseRect(text)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return o.SetMainWindowBounds(r)
	}

	switch info.Kind {
	case settings.KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, name, err)
		}
		return o.settings.SetBool(name, b)
	case settings.KindStrings:
		return o.settings.SetStrings(name, splitList(text))
	default:
		return o.settings.SetString(name, text)
	}
}

// Unset removes a stored option so its default applies again.
func (o *Options) Unset(name string) error {
	info, ok := LookupKey(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	if info.WindowsOnly && o.platform != platform.Windows {
		return fmt.Errorf("%s on %s: %w", name, o.platform, ErrUnsupportedPlatform)
	}
	if name == KeyZoomLevel && o.display != nil {
		o.display.SetZoomLevel(DefaultZoomLevel)
	}
	return o.settings.Remove(name)
}

func splitList(text string) []string {
	if text == "" {
		return []string{}
	}
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
