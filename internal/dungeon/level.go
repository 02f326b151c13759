package dungeon

import (
	"sunny-days/internal/config"
	"sunny-days/internal/core"
	"sunny-days/internal/item"
	"sunny-days/internal/rng"
)

// Chest is a one-shot container placed on the map. Opening it clears the
// map tile back to floor and removes the reward from the chest.
type Chest struct {
	Pos        core.Point
	Consumable *item.Consumable
	Equipment  *item.Equipment
	Opened     bool
}

// Level is one explorable room-set: a map plus its door and chests.
// Levels are generated once at world creation and never regenerated.
type Level struct {
	Map    *Map
	Spawn  core.Point
	Door   core.Point
	Chests []Chest
}

// ChestAt returns the unopened chest at (x, y), or nil.
func (l *Level) ChestAt(x, y int) *Chest {
	for i := range l.Chests {
		c := &l.Chests[i]
		if !c.Opened && c.Pos.X == x && c.Pos.Y == y {
			return c
		}
	}
	return nil
}

// OpenChest marks the chest opened and restores its tile to floor. The
// caller takes the rewards out first.
func (l *Level) OpenChest(c *Chest) {
	c.Opened = true
	c.Consumable = nil
	c.Equipment = nil
	l.Map.Set(c.Pos.X, c.Pos.Y, TileFloor)
}

// AddChest places an extra chest on the level at generation or as a boss
// reward, marking its map tile.
func (l *Level) AddChest(c Chest) {
	l.Chests = append(l.Chests, c)
	l.Map.Set(c.Pos.X, c.Pos.Y, TileChest)
}

// BuildLevel generates a complete level for the given depth: the tile grid,
// the spawn tile, one door and up to MaxChests stocked chests. All
// randomness derives from the base seed, so the level is reproducible.
func BuildLevel(baseSeed uint64, depth int, cfg config.GameConfig) *Level {
	levelSeed := rng.LevelSeed(baseSeed, depth)
	m := Generate(cfg.Map.Width, cfg.Map.Height, rng.New(levelSeed), cfg.Generator)

	// A map with no floor at all degrades to the historical (1,1) spawn;
	// door and chest placement then have nothing to work with and skip.
	spawn, ok := m.FirstFloor()
	if !ok {
		spawn = core.Point{X: 1, Y: 1}
	}

	lvl := &Level{Map: m, Spawn: spawn}
	lvl.Door = placeDoor(m, rng.ForDoor(levelSeed), spawn)
	placeChests(lvl, depth, rng.ForChests(levelSeed), cfg.Generator)
	return lvl
}

// placeDoor converts one uniformly random floor tile (excluding the spawn)
// into a door. When the spawn is the only floor tile the door lands on it;
// tiny degenerate maps stay playable rather than failing.
func placeDoor(m *Map, r *rng.Stream, spawn core.Point) core.Point {
	floors := m.FloorTiles()

	door := spawn
	if len(floors) > 1 {
		for {
			candidate := floors[r.Intn(len(floors))]
			if candidate != spawn {
				door = candidate
				break
			}
		}
	}
	m.Set(door.X, door.Y, TileDoor)
	return door
}

// placeChests scatters up to MaxChests chests on floor tiles, excluding the
// spawn and door. Each chest is rejection-sampled to keep some spread from
// the spawn; after ChestAttempts failures the spacing constraint is dropped
// and any non-excluded floor tile serves.
func placeChests(lvl *Level, depth int, r *rng.Stream, gen config.GeneratorConfig) {
	m := lvl.Map
	floors := m.FloorTiles()

	used := map[core.Point]bool{lvl.Spawn: true, lvl.Door: true}
	eligible := func(p core.Point) bool {
		return !used[p] && m.At(p.X, p.Y) == TileFloor
	}

	for i := 0; i < gen.MaxChests; i++ {
		if len(floors) == 0 {
			return
		}

		var pos core.Point
		found := false
		for attempt := 0; attempt < gen.ChestAttempts; attempt++ {
			p := floors[r.Intn(len(floors))]
			if eligible(p) && !p.Adjacent(lvl.Spawn) {
				pos, found = p, true
				break
			}
		}
		if !found {
			// Relax the spacing constraint: any free floor tile.
			for _, p := range floors {
				if eligible(p) {
					pos, found = p, true
					break
				}
			}
		}
		if !found {
			return
		}

		used[pos] = true
		consumable, equipment := item.ChestLoot(depth, r)
		lvl.AddChest(Chest{Pos: pos, Consumable: consumable, Equipment: equipment})
	}
}
