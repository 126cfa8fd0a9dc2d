package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	HeadwordItemFormat = "%d: %s"
	SuggestionJoiner   = ", "
)

// Layout sizing
const (
	TitleTextSize float32 = 24
	WordTextSize  float32 = 20

	SidePanelOffset = 0.25

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 320
)

// Timeouts
const (
	ShutdownWait = 2 * time.Second
)
