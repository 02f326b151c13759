package battle

import (
	"testing"

	"sunny-days/internal/config"
	"sunny-days/internal/npc"
	"sunny-days/internal/rng"
)

func TestDamageFloors(t *testing.T) {
	s := New(npc.IDBandit, false, config.Default().Battle)

	tests := []struct {
		name     string
		attack   int
		expected int
	}{
		{"attack 10", 10, 12},
		{"attack 11", 11, 13},
		{"attack 13", 13, 15},
		{"attack 0", 0, 0},
		{"attack 1", 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Damage(tc.attack); got != tc.expected {
				t.Errorf("Damage(%d) = %d, expected %d", tc.attack, got, tc.expected)
			}
		})
	}
}

func TestPenaltyConsumedOnce(t *testing.T) {
	s := New(npc.IDBandit, false, config.Default().Battle)

	// Bandit speed is 4; a faster player normally goes first.
	if !s.PlayerFirst(5) {
		t.Fatal("faster player should act first")
	}

	s.Penalty = true
	if s.PlayerFirst(5) {
		t.Error("penalty turn should hand initiative to the enemy")
	}
	if s.Penalty {
		t.Error("penalty not consumed")
	}
	if !s.PlayerFirst(5) {
		t.Error("initiative not restored after the penalty turn")
	}
}

func TestInitiativeBySpeed(t *testing.T) {
	s := New(npc.IDWarden, false, config.Default().Battle)

	// Warden speed is 6; ties go to the player.
	if s.PlayerFirst(5) {
		t.Error("slower player should not act first")
	}
	if !s.PlayerFirst(6) {
		t.Error("speed tie should go to the player")
	}
}

func TestPlayerAttackNeverHealsEnemy(t *testing.T) {
	cfg := config.Default().Battle
	cfg.DeflectFactor = 0 // no deflects, every swing lands
	s := New(npc.IDBandit, false, cfg)

	r := rng.New(1)
	prev := s.HP
	for !s.Defeated() {
		s.PlayerAttack(10, r)
		if s.HP > prev {
			t.Fatalf("enemy HP rose from %d to %d", prev, s.HP)
		}
		prev = s.HP
	}
	if s.HP != 0 {
		t.Errorf("HP = %d after defeat, expected 0", s.HP)
	}
}

func TestDeflectZeroDefense(t *testing.T) {
	s := New(npc.IDBandit, false, config.Default().Battle)
	r := rng.New(7)

	for i := 0; i < 100; i++ {
		if _, deflected := s.EnemyAttack(0, r); deflected {
			t.Fatal("zero defense should never deflect")
		}
	}
}

func TestTryFlee(t *testing.T) {
	cfg := config.Default().Battle

	ambush := New(npc.IDBandit, false, cfg)
	allowed, _ := ambush.TryFlee(rng.New(1))
	if !allowed {
		t.Error("fleeing an ambush should be allowed")
	}

	challenge := New(npc.IDWarden, true, cfg)
	allowed, success := challenge.TryFlee(rng.New(1))
	if allowed || success {
		t.Error("fleeing a fight the player started should be disallowed")
	}
}

func TestEnemyStats(t *testing.T) {
	bandit := New(npc.IDBandit, false, config.Default().Battle)
	if bandit.MaxHP != 18 || bandit.Atk != 6 || bandit.Def != 2 || bandit.Spd != 4 {
		t.Errorf("bandit stats = %d/%d/%d/%d", bandit.MaxHP, bandit.Atk, bandit.Def, bandit.Spd)
	}

	warden := New(npc.IDWarden, true, config.Default().Battle)
	if warden.MaxHP != 40 || warden.Atk != 12 || warden.Def != 5 || warden.Spd != 6 {
		t.Errorf("warden stats = %d/%d/%d/%d", warden.MaxHP, warden.Atk, warden.Def, warden.Spd)
	}
}
