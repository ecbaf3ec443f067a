package core

// Color is the foreground color of a screen cell. The terminal front end maps
// each value to an ANSI 256-color style.
type Color uint8

// Palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
)

// Colors lists every palette entry, in order.
var Colors = []Color{
	ColorDefault, ColorRed, ColorGreen, ColorYellow, ColorBlue,
	ColorMagenta, ColorCyan, ColorWhite, ColorGray, ColorOrange,
}
