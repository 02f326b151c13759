package dungeon

import (
	"testing"

	"sunny-days/internal/config"
)

func TestBuildLevelDeterminism(t *testing.T) {
	cfg := config.Default()

	a := BuildLevel(42, 0, cfg)
	b := BuildLevel(42, 0, cfg)

	if a.Spawn != b.Spawn {
		t.Errorf("spawn diverged: %v vs %v", a.Spawn, b.Spawn)
	}
	if a.Door != b.Door {
		t.Errorf("door diverged: %v vs %v", a.Door, b.Door)
	}
	if len(a.Chests) != len(b.Chests) {
		t.Fatalf("chest count diverged: %d vs %d", len(a.Chests), len(b.Chests))
	}
	for i := range a.Chests {
		if a.Chests[i].Pos != b.Chests[i].Pos {
			t.Errorf("chest %d diverged: %v vs %v", i, a.Chests[i].Pos, b.Chests[i].Pos)
		}
	}
}

func TestBuildLevelDepthsDiffer(t *testing.T) {
	cfg := config.Default()

	a := BuildLevel(42, 0, cfg)
	b := BuildLevel(42, 1, cfg)

	same := true
	for i := range a.Map.Tiles {
		if a.Map.Tiles[i] != b.Map.Tiles[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("depth 0 and depth 1 produced identical maps")
	}
}

func TestBuildLevelPlacement(t *testing.T) {
	cfg := config.Default()

	for _, seed := range []uint64{1, 42, 99999} {
		lvl := BuildLevel(seed, 0, cfg)

		if !lvl.Map.Walkable(lvl.Spawn.X, lvl.Spawn.Y) {
			t.Errorf("seed %d: spawn %v is not walkable", seed, lvl.Spawn)
		}
		if lvl.Map.At(lvl.Door.X, lvl.Door.Y) != TileDoor {
			t.Errorf("seed %d: door tile is %v", seed, lvl.Map.At(lvl.Door.X, lvl.Door.Y))
		}
		if lvl.Door == lvl.Spawn {
			t.Errorf("seed %d: door landed on spawn", seed)
		}

		if len(lvl.Chests) > cfg.Generator.MaxChests {
			t.Errorf("seed %d: %d chests, cap is %d", seed, len(lvl.Chests), cfg.Generator.MaxChests)
		}
		for _, c := range lvl.Chests {
			if lvl.Map.At(c.Pos.X, c.Pos.Y) != TileChest {
				t.Errorf("seed %d: chest at %v not marked on map", seed, c.Pos)
			}
			if c.Consumable == nil {
				t.Errorf("seed %d: chest at %v has no consumable", seed, c.Pos)
			}
		}
	}
}

func TestOpenChest(t *testing.T) {
	cfg := config.Default()
	lvl := BuildLevel(42, 0, cfg)

	if len(lvl.Chests) == 0 {
		t.Skip("seed produced no chests")
	}

	c := &lvl.Chests[0]
	pos := c.Pos

	lvl.OpenChest(c)

	if !c.Opened {
		t.Error("chest not marked opened")
	}
	if c.Consumable != nil || c.Equipment != nil {
		t.Error("opened chest still holds loot")
	}
	if lvl.Map.At(pos.X, pos.Y) != TileFloor {
		t.Errorf("opened chest tile is %v, expected floor", lvl.Map.At(pos.X, pos.Y))
	}
	if got := lvl.ChestAt(pos.X, pos.Y); got != nil {
		t.Error("ChestAt still finds an opened chest")
	}
}
