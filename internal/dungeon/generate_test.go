package dungeon

import (
	"testing"

	"sunny-days/internal/config"
	"sunny-days/internal/rng"
)

func TestGenerateDeterminism(t *testing.T) {
	cfg := config.Default()

	a := Generate(cfg.Map.Width, cfg.Map.Height, rng.New(42), cfg.Generator)
	b := Generate(cfg.Map.Width, cfg.Map.Height, rng.New(42), cfg.Generator)

	if a.Width != b.Width || a.Height != b.Height {
		t.Fatalf("dimensions diverged: %dx%d vs %dx%d", a.Width, a.Height, b.Width, b.Height)
	}
	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			t.Fatalf("tile %d diverged: %v vs %v", i, a.Tiles[i], b.Tiles[i])
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	cfg := config.Default()

	a := Generate(cfg.Map.Width, cfg.Map.Height, rng.New(1), cfg.Generator)
	b := Generate(cfg.Map.Width, cfg.Map.Height, rng.New(2), cfg.Generator)

	same := true
	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical maps")
	}
}

func TestGenerateBorderIsWall(t *testing.T) {
	cfg := config.Default()
	m := Generate(cfg.Map.Width, cfg.Map.Height, rng.New(42), cfg.Generator)

	for x := 0; x < m.Width; x++ {
		if m.At(x, 0) != TileWall || m.At(x, m.Height-1) != TileWall {
			t.Fatalf("border not wall at column %d", x)
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.At(0, y) != TileWall || m.At(m.Width-1, y) != TileWall {
			t.Fatalf("border not wall at row %d", y)
		}
	}
}

func TestGenerateHasFloor(t *testing.T) {
	cfg := config.Default()
	m := Generate(cfg.Map.Width, cfg.Map.Height, rng.New(42), cfg.Generator)

	if len(m.FloorTiles()) == 0 {
		t.Fatal("generated map has no floor tiles")
	}
}

func TestMapOutOfBounds(t *testing.T) {
	m := NewMap(10, 10, TileWall)

	if m.At(-1, 5) != TileWall {
		t.Error("At(-1, 5) should read as wall")
	}
	if m.At(10, 5) != TileWall {
		t.Error("At(10, 5) should read as wall")
	}
	// Out-of-bounds writes are dropped, not panics.
	m.Set(-1, -1, TileFloor)
	m.Set(100, 100, TileFloor)
}
