package config

import "time"

// Layout constants.
const (
	// SidebarWidth is the fixed width of the navigation rail.
	SidebarWidth = 14

	// MaxContentWidth caps the document column on wide terminals.
	MaxContentWidth = 96

	// MinContentWidth is the narrowest document column we lay out for.
	MinContentWidth = 30

	// CompactModeThreshold drops to one-column cards below this width.
	CompactModeThreshold = 70

	// ProjectCardWidth is the preferred width of a project card.
	ProjectCardWidth = 40
)

// Display limits.
const (
	// SkillLevels is the number of dots drawn per skill badge.
	SkillLevels = 5

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	MaxNameLength    = 80
	MaxEmailLength   = 120
	MaxMessageLength = 2000
	MessageRows      = 4
)

// Smooth scrolling.
const (
	ScrollFPS        = 60
	ScrollFrequency  = 6.0
	ScrollDamping    = 1.0
	ScrollSettleRows = 0.5
	ScrollFrame      = time.Second / ScrollFPS
)
