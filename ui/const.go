package ui

// aboutSplashTime is the time in seconds the splash screen is shown
const aboutSplashTime = 3 // seconds

// defaultSplitOffset is the editor/console split used when no saved layout exists
const defaultSplitOffset = 0.75

// Font size bounds offered by the settings dialog
const (
	minFontSize = 8
	maxFontSize = 72
)
