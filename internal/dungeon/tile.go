package dungeon

// Tile is one grid cell's terrain category.
type Tile uint8

const (
	TileWall Tile = iota
	TileFloor
	TileDoor
	TileChest
)

// Walkable reports whether the player may stand on this tile. Doors are
// deliberately not walkable: they behave like a character the player must
// approach and trigger, never walk through. Chests are walkable so that
// stepping onto one opens it.
func (t Tile) Walkable() bool {
	return t == TileFloor || t == TileChest
}

// Rune returns the display glyph for the tile.
func (t Tile) Rune() rune {
	switch t {
	case TileWall:
		return '#'
	case TileFloor:
		return '.'
	case TileDoor:
		return '+'
	case TileChest:
		return '$'
	default:
		return '?'
	}
}
