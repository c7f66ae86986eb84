package gamemap

import (
	"fmt"

	"crab-roguelike/internal/geom"
)

// GameMap holds the tile grid for one level. Border tiles always block.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
}

// New creates a GameMap of floor enclosed by a one-tile wall border.
// Panics if either dimension is below 3, since no interior would remain.
func New(width, height int) *GameMap {
	if width < 3 || height < 3 {
		panic(fmt.Sprintf("gamemap: %dx%d map has no interior", width, height))
	}
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				tiles[y][x] = MakeWall()
			} else {
				tiles[y][x] = MakeFloor()
			}
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// OnBorder reports whether (x, y) is one of the outermost tiles.
func (m *GameMap) OnBorder(x, y int) bool {
	return x == 0 || y == 0 || x == m.Width-1 || y == m.Height-1
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("gamemap: (%d,%d) outside %dx%d map", x, y, m.Width, m.Height))
	}
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y). Panics if the tile is out of bounds or
// would open a hole in the border.
func (m *GameMap) Set(x, y int, t Tile) {
	if m.OnBorder(x, y) && !t.BlocksPath {
		panic(fmt.Sprintf("gamemap: border tile (%d,%d) must block", x, y))
	}
	*m.At(x, y) = t
}

// IsBlocked reports whether p blocks movement. Out-of-bounds counts as
// blocked.
func (m *GameMap) IsBlocked(p geom.Point) bool {
	if !m.InBounds(p.X, p.Y) {
		return true
	}
	return m.Tiles[p.Y][p.X].BlocksPath
}
