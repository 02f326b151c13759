package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := Default()
	if cfg.Map != want.Map {
		t.Errorf("Map = %+v, expected %+v", cfg.Map, want.Map)
	}
	if cfg.Generator != want.Generator {
		t.Errorf("Generator = %+v, expected %+v", cfg.Generator, want.Generator)
	}
	if cfg.Battle != want.Battle {
		t.Errorf("Battle = %+v, expected %+v", cfg.Battle, want.Battle)
	}
	if cfg.Buffs != want.Buffs {
		t.Errorf("Buffs = %+v, expected %+v", cfg.Buffs, want.Buffs)
	}
}

func TestLoadCustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yaml := `
map:
  width: 60
  height: 30
generator:
  max_rooms: 5
  room_min_w: 4
  room_max_w: 8
  room_min_h: 4
  room_max_h: 8
  clearance: 1
  edge_margin: 1
  max_chests: 2
  chest_attempts: 50
battle:
  damage_multiplier: 1.5
  deflect_factor: 0.1
  flee_chance: 0.25
buffs:
  duration_seconds: 10
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.Map.Width != 60 || cfg.Map.Height != 30 {
		t.Errorf("Map = %+v", cfg.Map)
	}
	if cfg.Generator.MaxRooms != 5 || cfg.Generator.MaxChests != 2 {
		t.Errorf("Generator = %+v", cfg.Generator)
	}
	if cfg.Battle.DamageMultiplier != 1.5 {
		t.Errorf("DamageMultiplier = %v, expected 1.5", cfg.Battle.DamageMultiplier)
	}
	if cfg.Buffs.DurationSeconds != 10 {
		t.Errorf("DurationSeconds = %d, expected 10", cfg.Buffs.DurationSeconds)
	}
}

func TestLoadMissingCustomFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}
}

func TestLoadMalformedCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("map: ["), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed YAML should fail")
	}
}
