package settings

import (
	"fmt"
	"log/slog"
	"slices"

	"deskshell/internal/logging"
)

// Settings reads and writes typed values through a Store. Reads never fail:
// a missing key, a store error, or an unconvertible value all yield the
// caller's default. Writes are passed straight to the store.
type Settings struct {
	store  Store
	logger *slog.Logger
	warned map[string]struct{}
}

// New wraps store. A nil logger discards diagnostics.
func New(store Store, logger *slog.Logger) *Settings {
	return &Settings{
		store:  store,
		logger: logging.NewComponentLogger(logger, "settings"),
		warned: make(map[string]struct{}),
	}
}

// Store returns the backing store.
func (s *Settings) Store() Store {
	return s.store
}

// Contains reports whether key has a stored value.
func (s *Settings) Contains(key string) bool {
	_, ok := s.lookup(key)
	return ok
}

// Lookup returns the raw stored value.
func (s *Settings) Lookup(key string) (Value, bool) {
	return s.lookup(key)
}

// Bool returns the stored bool, or def when absent or unreadable.
func (s *Settings) Bool(key string, def bool) bool {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	b, ok := v.AsBool()
	if !ok {
		s.warnOnce(key, "convert", "stored value is not a bool", slog.String("kind", string(v.Kind())))
		return def
	}
	return b
}

// String returns the stored string, or def when absent or unreadable.
func (s *Settings) String(key, def string) string {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	str, ok := v.AsString()
	if !ok {
		s.warnOnce(key, "convert", "stored value is not a string", slog.String("kind", string(v.Kind())))
		return def
	}
	return str
}

// Float returns the stored number, or def when absent or unreadable.
func (s *Settings) Float(key string, def float64) float64 {
	v, ok := s.lookup(key)
	if !ok {
		return def
	}
	f, ok := v.AsFloat()
	if !ok {
		s.warnOnce(key, "convert", "stored value is not a number", slog.String("kind", string(v.Kind())))
		return def
	}
	return f
}

// Strings returns the stored list, or a copy of def.
func (s *Settings) Strings(key string, def []string) []string {
	v, ok := s.lookup(key)
	if !ok {
		return slices.Clone(def)
	}
	list, ok := v.AsStrings()
	if !ok {
		s.warnOnce(key, "convert", "stored value is not a list", slog.String("kind", string(v.Kind())))
		return slices.Clone(def)
	}
	return list
}

// SetBool stores a bool.
func (s *Settings) SetBool(key string, value bool) error {
	return s.set(key, BoolValue(value))
}

// SetString stores a string.
func (s *Settings) SetString(key, value string) error {
	return s.set(key, StringValue(value))
}

// SetFloat stores a number.
func (s *Settings) SetFloat(key string, value float64) error {
	return s.set(key, FloatValue(value))
}

// SetStrings stores a copy of a string list.
func (s *Settings) SetStrings(key string, value []string) error {
	return s.set(key, StringsValue(value))
}

// SetOptionalString stores value, or removes key when value is empty so that
// later reads fall through to the default.
func (s *Settings) SetOptionalString(key, value string) error {
	if value == "" {
		return s.Remove(key)
	}
	return s.SetString(key, value)
}

// Set stores an already-typed value.
func (s *Settings) Set(key string, value Value) error {
	return s.set(key, value)
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Settings) Remove(key string) error {
	if err := s.store.Remove(key); err != nil {
		return fmt.Errorf("remove setting %s: %w", key, err)
	}
	return nil
}

// Keys lists stored keys; a store failure is logged and yields nil.
func (s *Settings) Keys() []string {
	keys, err := s.store.Keys()
	if err != nil {
		s.warnOnce("", "keys", "list settings failed", logging.Error(err))
		return nil
	}
	return keys
}

func (s *Settings) set(key string, value Value) error {
	if err := s.store.Set(key, value); err != nil {
		return fmt.Errorf("write setting %s: %w", key, err)
	}
	return nil
}

func (s *Settings) lookup(key string) (Value, bool) {
	v, ok, err := s.store.Lookup(key)
	if err != nil {
		s.warnOnce(key, "read", "read setting failed; using default", logging.Error(err))
		return Value{}, false
	}
	return v, ok
}

func (s *Settings) warnOnce(key, op, msg string, attrs ...slog.Attr) {
	id := op + "\x00" + key
	if _, seen := s.warned[id]; seen {
		return
	}
	s.warned[id] = struct{}{}
	args := []any{slog.String(logging.FieldKey, key), slog.String(logging.FieldEventType, "settings_"+op)}
	for _, attr := range attrs {
		args = append(args, attr)
	}
	s.logger.Warn(msg, args...)
}
