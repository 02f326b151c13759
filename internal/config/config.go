// Package config provides YAML-based tuning for the Sunny Days simulation:
// map dimensions, generator shape, battle math and buff duration.
package config

// GameConfig contains all tunable parameters for one run.
type GameConfig struct {
	Map       MapConfig       `yaml:"map"`
	Generator GeneratorConfig `yaml:"generator"`
	Battle    BattleConfig    `yaml:"battle"`
	Buffs     BuffConfig      `yaml:"buffs"`
}

// MapConfig defines the tile grid dimensions of each level.
type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GeneratorConfig defines room placement and chest scatter parameters.
type GeneratorConfig struct {
	MaxRooms      int `yaml:"max_rooms"`
	RoomMinW      int `yaml:"room_min_w"`
	RoomMaxW      int `yaml:"room_max_w"`
	RoomMinH      int `yaml:"room_min_h"`
	RoomMaxH      int `yaml:"room_max_h"`
	Clearance     int `yaml:"clearance"`      // buffer tiles kept between rooms
	EdgeMargin    int `yaml:"edge_margin"`    // wall border around the grid
	MaxChests     int `yaml:"max_chests"`     // per level
	ChestAttempts int `yaml:"chest_attempts"` // rejection sampling cap per chest
}

// BattleConfig defines the combat math constants.
type BattleConfig struct {
	DamageMultiplier float64 `yaml:"damage_multiplier"` // damage = floor(attack * this)
	DeflectFactor    float64 `yaml:"deflect_factor"`    // chance = defense/10 * this
	FleeChance       float64 `yaml:"flee_chance"`
}

// BuffConfig defines temporary buff behavior.
type BuffConfig struct {
	DurationSeconds int `yaml:"duration_seconds"`
}
