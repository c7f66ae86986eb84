package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TilePillar
)

// Tile holds the terrain and memory state for one map cell.
// Explored only ever goes from false to true.
type Tile struct {
	Kind       TileKind
	BlocksPath bool
	Explored   bool
}

// MakeWall returns a blocking wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, BlocksPath: true}
}

// MakeFloor returns a passable floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor}
}

// MakePillar returns a free-standing blocking tile inside a room.
func MakePillar() Tile {
	return Tile{Kind: TilePillar, BlocksPath: true}
}
