// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/palettekit/palettekit/constant"
	"github.com/palettekit/palettekit/filesystem"
	"github.com/palettekit/palettekit/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "PALETTEKIT_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden with the PALETTEKIT_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Storage resolves the file backing the key-value persistence slots (favorites, settings).
func Storage() string {
	return filepath.Join(Config(), "storage.json")
}

// Exports resolves the directory JSON exports are downloaded to.
// The export.directory setting takes precedence when it is set.
func Exports() string {
	if custom := viper.GetString(key.ExportDirectory); custom != "" {
		return ensureDir(custom)
	}

	return ensureDir(filepath.Join(Config(), "exports"))
}
