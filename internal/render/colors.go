package render

import (
	"github.com/gdamore/tcell/v2"

	"crab-roguelike/internal/gamemap"
)

// TileTheme holds the glyphs used to draw the terrain. Emoji carry their
// own colors, so lit and remembered tiles use distinct glyphs instead of
// tinting.
type TileTheme struct {
	Wall     string
	Floor    string
	Pillar   string
	DimWall  string // explored but not currently visible blocker
	DimFloor string // explored but not currently visible floor
}

// TidePool is the only theme: a rocky pool on the shore.
var TidePool = TileTheme{
	Wall:     "🪨",
	Floor:    "🟫",
	Pillar:   "🗿",
	DimWall:  "🌑",
	DimFloor: "🔲",
}

// Targeting overlay backgrounds.
var (
	colorTargetLine   = tcell.NewRGBColor(90, 90, 90)
	colorTargetSplash = tcell.NewRGBColor(150, 40, 40)
	colorHUDRule      = tcell.ColorGray
)

// tileGlyph returns the glyph for t, or "" when the tile has never been seen.
func (th TileTheme) tileGlyph(t gamemap.Tile, visible bool) string {
	switch {
	case visible:
		switch t.Kind {
		case gamemap.TileWall:
			return th.Wall
		case gamemap.TilePillar:
			return th.Pillar
		default:
			return th.Floor
		}
	case t.Explored:
		if t.BlocksPath {
			return th.DimWall
		}
		return th.DimFloor
	}
	return ""
}
