package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLive     = "●"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Window sizing
const (
	DesktopWindowWidth  float32 = 420
	DesktopWindowHeight float32 = 820
)

// Layout sizing
const (
	RowMinHeight float32 = 64
)

// Scroll-to-zoom emulation of a pinch on pointer devices
const (
	ScrollZoomStep float32 = 0.01
	ScrollZoomMin  float32 = 0.5
	ScrollZoomMax  float32 = 2
)

// Scrim colour alpha at progress 0
const ScrimBaseAlpha uint8 = 0x99
