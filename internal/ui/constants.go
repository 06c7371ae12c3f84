package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Header texts
const (
	HeaderTitle    = "📦 Software Installer"
	SubtitleFormat = "Platform: %s | Select applications to install"
)

// Button and label texts
const (
	SelectAllLabel     = "Select All"
	DeselectAllLabel   = "Deselect All"
	InstallButtonLabel = "Install Selected Applications"
	ConsoleHeaderText  = "Installation Log:"
)

// Layout sizing
const (
	ConsoleMinHeight float32 = 180

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 340
)
