package storage

import (
	"errors"

	"github.com/palettekit/palettekit/constant"
	"github.com/zalando/go-keyring"
)

// Keyring stores slots in the operating system's secret store under the application service name.
// A slot is one secret, so its size is bounded by the platform's secret limit.
type Keyring struct {
	service string
}

func NewKeyring() *Keyring {
	return &Keyring{service: constant.App}
}

func (k *Keyring) Get(key string) (string, bool, error) {
	v, err := keyring.Get(k.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (k *Keyring) Set(key, value string) error {
	return keyring.Set(k.service, key, value)
}

func (k *Keyring) Delete(key string) error {
	err := keyring.Delete(k.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
