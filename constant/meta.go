// Package constant defines immutable application-level identifiers.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, keyring services and CLI branding.
	App = "palettekit"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
