package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes in the platform layer.
type Color uint8

// Predefined colors for game elements. Tile tiers cycle through the
// bright colors; the platform render layer owns the exact ANSI mapping.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
