// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Generation - these keys control how palettes are drawn and previewed.
const (
	GenerateDefaultMode        = "generate.default_mode"
	GeneratePreviewOrientation = "generate.preview_orientation"
)

// Persistence - these keys select where favorites and settings are kept.
const (
	StorageBackend = "storage.backend"
)

// Export - these keys configure stylesheet and JSON export destinations.
const (
	ExportDirectory = "export.directory"
)

// Terminal User Interface (TUI)
const (
	TUINotificationSeconds = "tui.notification_seconds"
	TUIShowHelp            = "tui.show_help"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment
const (
	CliColored = "cli.colored"
)
