// Package dungeon implements the tile grid, the seeded level generator and
// the Level model (map plus door and chests).
package dungeon

import "sunny-days/internal/core"

// Map is a width x height grid of tiles, row-major.
type Map struct {
	Width  int
	Height int
	Tiles  []Tile
}

// NewMap creates a map filled with the given tile.
func NewMap(width, height int, fill Tile) *Map {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = fill
	}
	return &Map{Width: width, Height: height, Tiles: tiles}
}

func (m *Map) idx(x, y int) int {
	return y*m.Width + x
}

// At returns the tile at (x, y). Out-of-bounds lookups return TileWall,
// which keeps every caller's walkability check safe.
func (m *Map) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[m.idx(x, y)]
}

// Set places a tile at (x, y). Out-of-bounds writes are silently ignored.
func (m *Map) Set(x, y int, t Tile) {
	if !m.InBounds(x, y) {
		return
	}
	m.Tiles[m.idx(x, y)] = t
}

// InBounds reports whether (x, y) lies within the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// Walkable reports whether the player may stand on (x, y).
func (m *Map) Walkable(x, y int) bool {
	return m.At(x, y).Walkable()
}

// FirstFloor returns the first floor tile in scan order (top-left to
// bottom-right), used for spawn placement.
func (m *Map) FirstFloor() (core.Point, bool) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) == TileFloor {
				return core.Point{X: x, Y: y}, true
			}
		}
	}
	return core.Point{}, false
}

// FloorTiles returns every floor tile in scan order.
func (m *Map) FloorTiles() []core.Point {
	var floors []core.Point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) == TileFloor {
				floors = append(floors, core.Point{X: x, Y: y})
			}
		}
	}
	return floors
}
