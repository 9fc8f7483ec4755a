package core

// Color is a foreground color for a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

// Palette shared by the renderer. One color per piece kind plus the
// chrome and overlay colors.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorMagenta
	ColorRed
	ColorGray
	ColorDim
	ColorWhite
	ColorBrightWhite
	ColorBrightYellow
)
