// Package log provides structured diagnostic logging with filesystem-based persistence.
//
// Logging is opt-in: until Setup enables it through the logs.write setting every call is a no-op,
// which keeps the terminal UI free of stray output.
package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/palettekit/palettekit/filesystem"
	"github.com/palettekit/palettekit/key"
	"github.com/palettekit/palettekit/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var enabled bool

// Setup opens today's log file and configures format and level from the global configuration.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// Enabled reports whether log emissions currently reach the backend.
func Enabled() bool {
	return enabled
}

// Entry is a field-scoped logger; its methods are no-ops while logging is disabled.
type Entry struct {
	fields logrus.Fields
}

// With returns an Entry carrying the given key/value pair.
func With(k string, v any) Entry {
	return Entry{fields: logrus.Fields{k: v}}
}

// With adds another field to the entry.
func (e Entry) With(k string, v any) Entry {
	fields := make(logrus.Fields, len(e.fields)+1)
	for fk, fv := range e.fields {
		fields[fk] = fv
	}
	fields[k] = v
	return Entry{fields: fields}
}

func (e Entry) Warnf(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Warnf(format, args...)
	}
}

func (e Entry) Infof(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Infof(format, args...)
	}
}

func (e Entry) Debugf(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Debugf(format, args...)
	}
}

func (e Entry) Errorf(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Errorf(format, args...)
	}
}

// Severity-specific emissions proxied to the configured backend when logging is enabled.

func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...any) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warn(args ...any) {
	if enabled {
		logrus.Warn(args...)
	}
}
func Warnf(format string, args ...any) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...any) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...any) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debug(args ...any) {
	if enabled {
		logrus.Debug(args...)
	}
}
func Debugf(format string, args ...any) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
