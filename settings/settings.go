// Package settings persists the display preferences kept next to favorites.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/palettekit/palettekit/log"
	"github.com/palettekit/palettekit/storage"
)

// Theme is the display theme of the application chrome (not of the generated preview).
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Settings is the content of the settings slot.
type Settings struct {
	Theme Theme `json:"theme"`
}

// Default is used when nothing usable has been persisted.
func Default() Settings {
	return Settings{Theme: Light}
}

// Load reads the settings slot. Absent, unreadable or malformed data yields Default.
func Load(kv storage.KV) Settings {
	raw, ok, err := kv.Get(storage.SettingsKey)
	if err != nil {
		log.With("slot", storage.SettingsKey).Warnf("reading settings: %s", err)
		return Default()
	}
	if !ok || raw == "" {
		return Default()
	}

	var s Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		log.With("slot", storage.SettingsKey).Warnf("ignoring malformed settings: %s", err)
		return Default()
	}

	if !s.Theme.Valid() {
		log.With("slot", storage.SettingsKey).Warnf("ignoring unknown theme %q", s.Theme)
		return Default()
	}
	return s
}

// Save writes s to the settings slot.
func Save(kv storage.KV, s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := kv.Set(storage.SettingsKey, string(data)); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}
