// Package storage provides the durable key-value slots favorites and settings are persisted in.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Slot keys.
const (
	FavoritesKey = "aesthetic.favorites"
	SettingsKey  = "aesthetic.settings"
)

// Backend names accepted by New.
//
// BackendKeyring keeps each slot in a single secret. Some stores cap secret size
// (Windows Credential Manager at about 2.5 KB), so a long favorites list stops
// persisting there; use BackendFile for large collections.
const (
	BackendFile    = "file"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

// ErrUnknownBackend is returned by New for unrecognised backend names.
var ErrUnknownBackend = errors.New("unknown storage backend")

// KV is a string key-value store. A missing key is reported with ok == false, not an error.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Deleter is implemented by backends that can drop a slot entirely.
type Deleter interface {
	Delete(key string) error
}

// Backends lists the names New understands.
func Backends() []string {
	return []string{BackendFile, BackendKeyring, BackendMemory}
}

// New opens the named backend. The file backend lives at path.
func New(backend, path string) (KV, error) {
	switch strings.ToLower(backend) {
	case BackendFile, "":
		return NewFile(path), nil
	case BackendKeyring:
		return NewKeyring(), nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, backend)
	}
}
