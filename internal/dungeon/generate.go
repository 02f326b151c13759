package dungeon

import (
	"sunny-days/internal/config"
	"sunny-days/internal/core"
	"sunny-days/internal/rng"
)

// Generate builds the tile grid for one level: rejection-sampled rooms
// connected by L-shaped corridors carved two tiles wide. With the same
// stream state and dimensions the output is byte-for-byte reproducible.
func Generate(width, height int, r *rng.Stream, gen config.GeneratorConfig) *Map {
	m := NewMap(width, height, TileWall)

	var rooms []core.Rect
	for i := 0; i < gen.MaxRooms; i++ {
		w := r.Range(gen.RoomMinW, gen.RoomMaxW)
		h := r.Range(gen.RoomMinH, gen.RoomMaxH)

		// Not enough space left for a room of this size plus margins:
		// stop with whatever rooms exist rather than failing.
		if width <= w+2*gen.EdgeMargin || height <= h+2*gen.EdgeMargin {
			break
		}

		x := r.Range(gen.EdgeMargin, width-w-gen.EdgeMargin-1)
		y := r.Range(gen.EdgeMargin, height-h-gen.EdgeMargin-1)
		room := core.NewRect(x, y, w, h)

		// Reject rooms that land within the clearance buffer of an
		// existing room, so rooms and their hallways never fuse.
		tooClose := false
		for _, other := range rooms {
			if room.Intersects(other.Expand(gen.Clearance, width, height)) {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		carveRoom(m, room)

		if len(rooms) > 0 {
			prev := rooms[len(rooms)-1].Center()
			next := room.Center()
			if r.Coin() {
				carveHCorridor(m, prev.X, next.X, prev.Y)
				carveVCorridor(m, prev.Y, next.Y, next.X)
			} else {
				carveVCorridor(m, prev.Y, next.Y, prev.X)
				carveHCorridor(m, prev.X, next.X, next.Y)
			}
		}

		rooms = append(rooms, room)
	}

	return m
}

func carveRoom(m *Map, r core.Rect) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			m.Set(x, y, TileFloor)
		}
	}
}

// carveHCorridor carves a horizontal corridor two tiles tall, so that a
// corridor meeting a room corner never leaves a single-tile dead end.
func carveHCorridor(m *Map, x1, x2, y int) {
	lo, hi := core.Min(x1, x2), core.Max(x1, x2)
	for x := lo; x <= hi; x++ {
		m.Set(x, y, TileFloor)
		if y+1 < m.Height {
			m.Set(x, y+1, TileFloor)
		}
	}
}

// carveVCorridor carves a vertical corridor two tiles wide.
func carveVCorridor(m *Map, y1, y2, x int) {
	lo, hi := core.Min(y1, y2), core.Max(y1, y2)
	for y := lo; y <= hi; y++ {
		m.Set(x, y, TileFloor)
		if x+1 < m.Width {
			m.Set(x+1, y, TileFloor)
		}
	}
}
