package testsupport

import (
	"testing"

	"deskshell/internal/config"
	"deskshell/internal/settings"
)

// NewSettings returns settings over a fresh in-memory store.
func NewSettings(t testing.TB) *settings.Settings {
	t.Helper()
	return settings.New(settings.NewMemoryStore(), nil)
}

// MustOpenSettings opens the SQLite store named by cfg and registers cleanup.
func MustOpenSettings(t testing.TB, cfg *config.Config) (*settings.Settings, *settings.SQLiteStore) {
	t.Helper()

	store, err := settings.OpenSQLite(cfg.Paths.SettingsDB)
	if err != nil {
		t.Fatalf("open settings: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return settings.New(store, nil), store
}
