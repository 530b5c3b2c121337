package config

import "time"

// Typing animation cadence.
const (
	TypeInterval  = 100 * time.Millisecond
	HoldDuration  = 2000 * time.Millisecond
	EraseInterval = 50 * time.Millisecond
)

// Scroll tracking.
const (
	// ActivationLinePx is the offset from the viewport top, in pixels, that
	// decides which section is current on a pixel-based page.
	ActivationLinePx = 100

	// ActivationLineRows is the terminal equivalent of ActivationLinePx.
	ActivationLineRows = 2
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Application settings.
const (
	AppName        = "folio"
	EnvPrefix      = "FOLIO_"
	ResumeSuffix   = "_resume.pdf"
	DefaultEnvFile = ".env"
)
