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
)

// Layout sizing
const (
	MinuteEntryWidth float32 = 72

	WindowWidth  float32 = 820
	WindowHeight float32 = 680

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 420
)

// Toast notification behavior
const (
	ToastAutoHide = 2000 * time.Millisecond
)

// AudioExtensions are the files offered by the upload picker
var AudioExtensions = []string{".mp3", ".wav", ".m4a", ".ogg", ".flac", ".aac", ".webm"}
