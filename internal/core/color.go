package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Palette used by the hallway scene.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDimGray // Hallway walls and floor
	ColorPink    // Mid-life hearts
	ColorBrown   // Floor line
)

// ansiCodes holds the ANSI 256-color code of each palette entry.
var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorMagenta:      "5",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightYellow: "11",
	ColorBrightWhite:  "15",
	ColorOrange:       "208",
	ColorGray:         "245",
	ColorDimGray:      "238",
	ColorPink:         "211",
	ColorBrown:        "130",
}

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

// Bold reports whether the color is drawn bold. The bright warning colors
// are, so the "!" and the caught flash stand out on dim terminals.
func (c Color) Bold() bool {
	return c == ColorBrightRed || c == ColorBrightYellow
}
