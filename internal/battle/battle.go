// Package battle implements turn-based combat sessions: initiative, damage,
// deflection, flee and the one-turn slow-decision penalty.
package battle

import (
	"math"

	"sunny-days/internal/config"
	"sunny-days/internal/npc"
	"sunny-days/internal/rng"
)

// Session is one active battle against a single enemy. At most one exists
// at a time; it is destroyed when the battle ends.
type Session struct {
	Enemy npc.ID
	Name  string
	HP    int
	MaxHP int
	Atk   int
	Def   int
	Spd   int

	// Penalty forces enemy-first initiative for exactly one turn. The
	// platform sets it when the player took more than 10 seconds to pick
	// an option.
	Penalty bool

	// PlayerInitiated records that the player deliberately started this
	// fight; fleeing is then disallowed.
	PlayerInitiated bool

	cfg config.BattleConfig
}

// New creates a battle session against the given enemy identity.
func New(id npc.ID, playerInitiated bool, cfg config.BattleConfig) *Session {
	st := statsFor(id)
	return &Session{
		Enemy:           id,
		Name:            st.Name,
		HP:              st.MaxHP,
		MaxHP:           st.MaxHP,
		Atk:             st.Atk,
		Def:             st.Def,
		Spd:             st.Spd,
		PlayerInitiated: playerInitiated,
		cfg:             cfg,
	}
}

// Damage computes the hit damage for an attacker's effective attack:
// floor(attack * multiplier).
func (s *Session) Damage(attack int) int {
	return int(math.Floor(float64(attack) * s.cfg.DamageMultiplier))
}

// deflects rolls whether a defender with the given defense fully negates an
// incoming hit: chance = (defense / 10) * factor.
func (s *Session) deflects(defense int, r *rng.Stream) bool {
	return r.Chance(float64(defense) / 10.0 * s.cfg.DeflectFactor)
}

// PlayerFirst resolves initiative for this turn: the player acts first when
// their speed is at least the enemy's, unless the penalty flag is set, in
// which case the enemy acts first regardless. The penalty is consumed here;
// it only ever covers one turn.
func (s *Session) PlayerFirst(playerSpeed int) bool {
	if s.Penalty {
		s.Penalty = false
		return false
	}
	return playerSpeed >= s.Spd
}

// PlayerAttack resolves the player hitting the enemy. Returns the damage
// dealt and whether the enemy deflected. Enemy HP never increases here.
func (s *Session) PlayerAttack(playerAttack int, r *rng.Stream) (int, bool) {
	if s.deflects(s.Def, r) {
		return 0, true
	}
	dmg := s.Damage(playerAttack)
	s.HP -= dmg
	if s.HP < 0 {
		s.HP = 0
	}
	return dmg, false
}

// EnemyAttack resolves the enemy hitting the player. Returns the damage to
// apply and whether the player deflected; the caller owns player HP.
func (s *Session) EnemyAttack(playerDefense int, r *rng.Stream) (int, bool) {
	if s.deflects(playerDefense, r) {
		return 0, true
	}
	return s.Damage(s.Atk), false
}

// Defeated reports whether the enemy is down.
func (s *Session) Defeated() bool {
	return s.HP <= 0
}

// TryFlee rolls a flee attempt. Fleeing is disallowed entirely when the
// player initiated the fight; otherwise it succeeds with the configured
// chance.
func (s *Session) TryFlee(r *rng.Stream) (allowed, success bool) {
	if s.PlayerInitiated {
		return false, false
	}
	return true, r.Chance(s.cfg.FleeChance)
}
