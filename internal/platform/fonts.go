package platform

// Preference lists are ordered; the first installed family wins, so the
// order here is observable behaviour.
var (
	windowsProportional = []string{"Segoe UI", "Verdana", "Lucida Sans", "DejaVu Sans", "Lucida Grande", "Helvetica"}
	macProportional     = []string{"Lucida Grande", "Lucida Sans", "DejaVu Sans", "Segoe UI", "Verdana", "Helvetica"}
	linuxProportional   = []string{"Lucida Sans", "DejaVu Sans", "Lucida Grande", "Segoe UI", "Verdana", "Helvetica"}

	windowsFixedWidth = []string{"Lucida Console", "Consolas"}
	macFixedWidth     = []string{"Monaco"}
	linuxFixedWidth   = []string{"Ubuntu Mono", "Droid Sans Mono", "DejaVu Sans Mono", "Monospace"}
)

// ProportionalFonts returns the preferred proportional families for p.
// The returned slice is a copy.
func (p Platform) ProportionalFonts() []string {
	switch p {
	case Windows:
		return clone(windowsProportional)
	case MacOS:
		return clone(macProportional)
	default:
		return clone(linuxProportional)
	}
}

// FixedWidthFonts returns the preferred monospaced families for p.
// The returned slice is a copy.
func (p Platform) FixedWidthFonts() []string {
	switch p {
	case Windows:
		return clone(windowsFixedWidth)
	case MacOS:
		return clone(macFixedWidth)
	default:
		return clone(linuxFixedWidth)
	}
}

func clone(values []string) []string {
	return append([]string(nil), values...)
}
