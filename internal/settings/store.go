package settings

import (
	"errors"
	"slices"
	"strings"
)

var (
	// ErrEmptyKey is returned when a key is blank.
	ErrEmptyKey = errors.New("settings: empty key")
	// ErrInvalidValue is returned when a zero Value is written or a stored
	// kind is not recognised.
	ErrInvalidValue = errors.New("settings: invalid value")
)

// Store is a persistent key-value store keyed by dotted names.
type Store interface {
	Lookup(key string) (Value, bool, error)
	Set(key string, value Value) error
	Remove(key string) error
	Keys() ([]string, error)
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}

// MemoryStore is a map-backed Store. It is not safe for concurrent use.
type MemoryStore struct {
	values map[string]Value
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]Value)}
}

// Lookup returns the value stored under key.
func (m *MemoryStore) Lookup(key string) (Value, bool, error) {
	if err := checkKey(key); err != nil {
		return Value{}, false, err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemoryStore) Set(key string, value Value) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if value.IsZero() {
		return ErrInvalidValue
	}
	if value.kind == KindStrings {
		value.list = slices.Clone(value.list)
	}
	m.values[key] = value
	return nil
}

// Remove deletes key.
func (m *MemoryStore) Remove(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	delete(m.values, key)
	return nil
}

// Keys lists stored keys in sorted order.
func (m *MemoryStore) Keys() ([]string, error) {
	keys := make([]string, 0, len(m.values))
	for key := range m.values {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys, nil
}
