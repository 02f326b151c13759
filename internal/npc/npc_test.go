package npc

import (
	"testing"

	"sunny-days/internal/config"
	"sunny-days/internal/core"
	"sunny-days/internal/dungeon"
	"sunny-days/internal/rng"
)

func buildLevels(t *testing.T, seed uint64) []*dungeon.Level {
	t.Helper()
	cfg := config.Default()
	return []*dungeon.Level{
		dungeon.BuildLevel(seed, 0, cfg),
		dungeon.BuildLevel(seed, 1, cfg),
	}
}

func TestRosterPlacement(t *testing.T) {
	levels := buildLevels(t, 42)
	ros := NewRoster(levels, rng.ForNPCs(42))

	if len(ros.All()) != 4 {
		t.Fatalf("roster has %d NPCs, expected 4", len(ros.All()))
	}

	seen := map[int]map[core.Point]bool{0: {}, 1: {}}
	for _, n := range ros.All() {
		lvl := levels[n.Level]
		if !lvl.Map.Walkable(n.X, n.Y) {
			t.Errorf("%s stands on a blocked tile (%d, %d)", n.Name, n.X, n.Y)
		}
		p := core.Point{X: n.X, Y: n.Y}
		if p == lvl.Spawn || p == lvl.Door {
			t.Errorf("%s stands on spawn or door", n.Name)
		}
		if seen[n.Level][p] {
			t.Errorf("two NPCs share tile (%d, %d) on level %d", n.X, n.Y, n.Level)
		}
		seen[n.Level][p] = true
	}
}

func TestRosterDeterminism(t *testing.T) {
	a := NewRoster(buildLevels(t, 7), rng.ForNPCs(7))
	b := NewRoster(buildLevels(t, 7), rng.ForNPCs(7))

	for i, n := range a.All() {
		m := b.All()[i]
		if n.ID != m.ID || n.X != m.X || n.Y != m.Y {
			t.Errorf("NPC %d diverged: %s (%d,%d) vs %s (%d,%d)", i, n.ID, n.X, n.Y, m.ID, m.X, m.Y)
		}
	}
}

func TestHostileAndBoss(t *testing.T) {
	tests := []struct {
		id      ID
		hostile bool
		boss    bool
	}{
		{IDElder, false, false},
		{IDSmith, false, false},
		{IDBandit, true, false},
		{IDWarden, true, true},
	}

	for _, tc := range tests {
		n := &Npc{ID: tc.id}
		if n.Hostile() != tc.hostile {
			t.Errorf("%s: Hostile() = %v", tc.id, n.Hostile())
		}
		if n.Boss() != tc.boss {
			t.Errorf("%s: Boss() = %v", tc.id, n.Boss())
		}
	}
}

func TestRemove(t *testing.T) {
	levels := buildLevels(t, 42)
	ros := NewRoster(levels, rng.ForNPCs(42))

	ros.Remove(IDWarden)

	if len(ros.All()) != 3 {
		t.Fatalf("roster has %d NPCs after removal", len(ros.All()))
	}
	if len(ros.OnLevel(1)) != 0 {
		t.Error("warden still present on level 1")
	}
}

func TestFlagsAreSticky(t *testing.T) {
	levels := buildLevels(t, 42)
	ros := NewRoster(levels, rng.ForNPCs(42))

	if ros.Defeated(IDBandit) {
		t.Error("bandit starts defeated")
	}
	ros.SetDefeated(IDBandit)
	ros.SetDefeated(IDBandit) // idempotent
	if !ros.Defeated(IDBandit) {
		t.Error("defeat flag not set")
	}
	if ros.DefeatedCount() != 1 {
		t.Errorf("DefeatedCount() = %d, expected 1", ros.DefeatedCount())
	}

	ros.SetQuestDone(IDElder)
	if !ros.QuestDone(IDElder) {
		t.Error("quest flag not set")
	}
	if ros.QuestDone(IDSmith) {
		t.Error("quest flag leaked to another NPC")
	}
}

func TestAdjacent(t *testing.T) {
	levels := buildLevels(t, 42)
	ros := NewRoster(levels, rng.ForNPCs(42))

	n := ros.OnLevel(0)[0]
	if got := ros.Adjacent(0, n.X+1, n.Y); got == nil {
		t.Error("Adjacent missed a neighboring NPC")
	}
	if got := ros.At(0, n.X, n.Y); got != n {
		t.Error("At missed the NPC on its own tile")
	}
}
