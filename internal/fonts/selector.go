package fonts

import (
	"log/slog"

	"deskshell/internal/logging"
	"deskshell/internal/platform"
	"deskshell/internal/settings"
)

// Settings keys holding user overrides.
const (
	ProportionalKey = "font.proportional"
	FixedWidthKey   = "font.fixedWidth"
)

// Database answers questions about installed font families.
type Database interface {
	// ExactMatch reports whether family is installed under that name.
	ExactMatch(family string) bool
	// FixedWidth reports whether family is monospaced.
	FixedWidth(family string) bool
}

// FirstMatch returns the first candidate db reports as installed, and as
// monospaced when fixedWidthOnly is set. When none qualifies it returns
// fallback as a generic keyword.
func FirstMatch(db Database, candidates []string, fallback string, fixedWidthOnly bool) Choice {
	if db != nil {
		for _, family := range candidates {
			if !db.ExactMatch(family) {
				continue
			}
			if fixedWidthOnly && !db.FixedWidth(family) {
				continue
			}
			return Concrete(family)
		}
	}
	return GenericChoice(fallback)
}

// Selector resolves the shell's fonts. It is not safe for concurrent use.
type Selector struct {
	settings *settings.Settings
	platform platform.Platform
	db       Database
	logger   *slog.Logger

	proportional *Choice
	fixedWidth   *Choice
}

// NewSelector returns a Selector reading overrides from s and detecting
// installed families through db.
func NewSelector(s *settings.Settings, p platform.Platform, db Database, logger *slog.Logger) *Selector {
	return &Selector{
		settings: s,
		platform: p,
		db:       db,
		logger:   logging.NewComponentLogger(logger, "fonts"),
	}
}

// SelectFont returns the user override for the requested kind if one is
// stored, otherwise the first matching candidate, otherwise fallback.
func (s *Selector) SelectFont(candidates []string, fallback string, fixedWidthOnly bool) Choice {
	if choice, ok := s.override(fixedWidthOnly); ok {
		return choice
	}
	return FirstMatch(s.db, candidates, fallback, fixedWidthOnly)
}

// ProportionalFont returns the user override or the detected proportional
// family for the platform.
func (s *Selector) ProportionalFont() Choice {
	if choice, ok := s.override(false); ok {
		return choice
	}
	if s.proportional == nil {
		choice := FirstMatch(s.db, s.platform.ProportionalFonts(), GenericSansSerif, false)
		s.logDetected("proportional", choice)
		s.proportional = &choice
	}
	return *s.proportional
}

// FixedWidthFont returns the user override or the detected monospaced
// family for the platform.
func (s *Selector) FixedWidthFont() Choice {
	if choice, ok := s.override(true); ok {
		return choice
	}
	if s.fixedWidth == nil {
		choice := FirstMatch(s.db, s.platform.FixedWidthFonts(), GenericMonospace, true)
		s.logDetected("fixed_width", choice)
		s.fixedWidth = &choice
	}
	return *s.fixedWidth
}

// SetProportionalFont stores an override; an empty name removes it.
func (s *Selector) SetProportionalFont(name string) error {
	return s.settings.SetOptionalString(ProportionalKey, name)
}

// SetFixedWidthFont stores an override; an empty name removes it.
func (s *Selector) SetFixedWidthFont(name string) error {
	return s.settings.SetOptionalString(FixedWidthKey, name)
}

// Override returns the stored override for the given kind, if any.
func (s *Selector) Override(fixedWidth bool) (Choice, bool) {
	return s.override(fixedWidth)
}

func (s *Selector) override(fixedWidth bool) (Choice, bool) {
	key := ProportionalKey
	if fixedWidth {
		key = FixedWidthKey
	}
	choice := Concrete(s.settings.String(key, ""))
	if choice.Family == "" {
		return Choice{}, false
	}
	return choice, true
}

func (s *Selector) logDetected(kind string, choice Choice) {
	s.logger.Debug("font detected",
		slog.String("kind", kind),
		slog.String("family", choice.Family),
		slog.Bool("generic", choice.Generic))
}
