package config

import (
	_ "embed"
)

//go:embed defaults/sunnydays.yaml
var defaultGameYAML []byte

// Default returns the built-in game configuration. The numbers mirror the
// embedded defaults/sunnydays.yaml and act as the last-resort fallback.
func Default() GameConfig {
	return GameConfig{
		Map: MapConfig{
			Width:  80,
			Height: 45,
		},
		Generator: GeneratorConfig{
			MaxRooms:      10,
			RoomMinW:      6,
			RoomMaxW:      12,
			RoomMinH:      6,
			RoomMaxH:      10,
			Clearance:     2,
			EdgeMargin:    2,
			MaxChests:     3,
			ChestAttempts: 200,
		},
		Battle: BattleConfig{
			DamageMultiplier: 1.2,
			DeflectFactor:    0.2,
			FleeChance:       0.5,
		},
		Buffs: BuffConfig{
			DurationSeconds: 30,
		},
	}
}
