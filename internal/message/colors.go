package message

import "github.com/gdamore/tcell/v2"

// Palette used by game narrative.
var (
	ColorBlack      = tcell.NewRGBColor(0, 0, 0)
	ColorWhite      = tcell.NewRGBColor(255, 255, 255)
	ColorGrey       = tcell.NewRGBColor(100, 100, 100)
	ColorRed        = tcell.NewRGBColor(255, 0, 0)
	ColorLightRed   = tcell.NewRGBColor(255, 100, 100)
	ColorGreen      = tcell.NewRGBColor(0, 255, 0)
	ColorLightGreen = tcell.NewRGBColor(100, 255, 100)
	ColorDarkGreen  = tcell.NewRGBColor(0, 200, 0)
)
