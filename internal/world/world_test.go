package world

import (
	"strings"
	"testing"
	"time"

	"sunny-days/internal/config"
	"sunny-days/internal/core"
	"sunny-days/internal/dialogue"
	"sunny-days/internal/dungeon"
	"sunny-days/internal/item"
	"sunny-days/internal/npc"
)

// newPlayingWorld builds a world and confirms through the title and intro
// screens into free roam.
func newPlayingWorld(t *testing.T, seed uint64) *World {
	t.Helper()
	w := New(seed, config.Default())
	w.Apply(core.Simple(core.KindConfirm))
	w.Apply(core.Simple(core.KindConfirm))
	if w.Phase() != PhasePlaying {
		t.Fatalf("Phase() = %v after two confirms, expected playing", w.Phase())
	}
	return w
}

// parkAway moves the named NPCs onto floor tiles at least three tiles from
// every point in keep, so they cannot intercept an interact.
func parkAway(t *testing.T, w *World, level int, ids []npc.ID, keep []core.Point) {
	t.Helper()
	far := func(f core.Point) bool {
		for _, k := range keep {
			if core.Abs(f.X-k.X) <= 3 && core.Abs(f.Y-k.Y) <= 3 {
				return false
			}
		}
		return true
	}

	floors := w.LevelAt(level).Map.FloorTiles()
	i := 0
	for _, id := range ids {
		for _, cand := range w.Roster().All() {
			if cand.ID != id || cand.Level != level {
				continue
			}
			for ; i < len(floors); i++ {
				if far(floors[i]) && w.Roster().At(level, floors[i].X, floors[i].Y) == nil {
					cand.X, cand.Y = floors[i].X, floors[i].Y
					i++
					break
				}
			}
		}
	}
}

func hasLog(w *World, substr string) bool {
	for _, line := range w.Logs() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func TestPhaseFlow(t *testing.T) {
	w := New(42, config.Default())

	if w.Phase() != PhaseTitle {
		t.Fatalf("Phase() = %v, expected title", w.Phase())
	}
	if !hasLog(w, "Seed: 42") {
		t.Error("intro log does not announce the seed")
	}

	w.Apply(core.Simple(core.KindConfirm))
	if w.Phase() != PhaseIntro {
		t.Errorf("Phase() = %v, expected intro", w.Phase())
	}

	w.Apply(core.Simple(core.KindConfirm))
	if w.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", w.Phase())
	}
}

func TestQuitReturnsFalseEverywhere(t *testing.T) {
	w := New(42, config.Default())
	if w.Apply(core.Simple(core.KindQuit)) {
		t.Error("quit on the title screen should end the game")
	}

	w = newPlayingWorld(t, 42)
	if w.Apply(core.Simple(core.KindQuit)) {
		t.Error("quit in free roam should end the game")
	}
}

func TestWorldDeterminism(t *testing.T) {
	a := New(7, config.Default())
	b := New(7, config.Default())

	if a.Level().Spawn != b.Level().Spawn || a.Level().Door != b.Level().Door {
		t.Error("same seed produced different levels")
	}

	na, nb := a.Roster().All(), b.Roster().All()
	if len(na) != len(nb) {
		t.Fatalf("roster sizes diverged: %d vs %d", len(na), len(nb))
	}
	for i := range na {
		if na[i].X != nb[i].X || na[i].Y != nb[i].Y {
			t.Errorf("%s placed at (%d,%d) vs (%d,%d)", na[i].ID, na[i].X, na[i].Y, nb[i].X, nb[i].Y)
		}
	}
}

func TestDoorNeedsSwordAndShield(t *testing.T) {
	w := newPlayingWorld(t, 42)
	door := w.Level().Door

	parkAway(t, w, 0, []npc.ID{npc.IDElder, npc.IDSmith, npc.IDBandit}, []core.Point{door})
	parkAway(t, w, 1, []npc.ID{npc.IDWarden}, []core.Point{w.LevelAt(1).Door})

	p := w.Player()
	p.X, p.Y = door.X+1, door.Y

	w.Apply(core.Simple(core.KindInteract))
	if w.CurrentIndex() != 0 {
		t.Fatal("door opened without gear")
	}
	if !hasLog(w, "The door will not budge") {
		t.Error("missing refusal log")
	}

	p.Equip(item.RustySword())
	p.Equip(item.OakShield())

	w.Apply(core.Simple(core.KindInteract))
	if w.CurrentIndex() != 1 {
		t.Fatal("door did not open with sword and shield")
	}
	if !hasLog(w, "Room 2") {
		t.Error("missing transition log")
	}

	// The player lands next to (or on) the destination door, so
	// interacting again leads straight back.
	w.Apply(core.Simple(core.KindInteract))
	if w.CurrentIndex() != 0 {
		t.Error("door did not lead back to the first room")
	}
}

func TestOverlaysAreExclusive(t *testing.T) {
	w := newPlayingWorld(t, 42)

	w.Apply(core.Simple(core.KindToggleInventory))
	if !w.InventoryOpen() {
		t.Fatal("inventory did not open")
	}

	w.Apply(core.Simple(core.KindToggleStats))
	if !w.StatsOpen() || w.InventoryOpen() {
		t.Error("stats should displace the inventory overlay")
	}

	w.Apply(core.Simple(core.KindToggleStats))
	if w.StatsOpen() {
		t.Error("stats overlay did not close")
	}
}

func TestOverlayBlocksMovement(t *testing.T) {
	w := newPlayingWorld(t, 42)
	p := w.Player()
	x, y := p.X, p.Y

	w.Apply(core.Simple(core.KindToggleInventory))
	w.Apply(core.Move(1, 0))
	w.Apply(core.Move(0, 1))

	if p.X != x || p.Y != y {
		t.Errorf("player moved to (%d, %d) with the inventory open", p.X, p.Y)
	}
}

func TestElderQuestChoice(t *testing.T) {
	w := newPlayingWorld(t, 42)

	var elder *npc.Npc
	for _, n := range w.Roster().All() {
		if n.ID == npc.IDElder {
			elder = n
		}
	}
	if elder == nil {
		t.Fatal("no elder in the roster")
	}

	p := w.Player()
	p.X, p.Y = elder.X+1, elder.Y

	w.Apply(core.Simple(core.KindInteract))
	if w.Phase() != PhaseDialogue {
		t.Fatalf("Phase() = %v, expected dialogue", w.Phase())
	}

	w.Apply(core.Choice('Y')) // case-insensitive
	if !w.Roster().QuestDone(npc.IDElder) {
		t.Error("accepting did not set the quest flag")
	}

	for i := 0; i < 10 && w.Phase() == PhaseDialogue; i++ {
		w.Apply(core.Simple(core.KindConfirm))
	}
	if w.Phase() != PhasePlaying {
		t.Fatalf("dialogue did not close, stuck in %v", w.Phase())
	}

	// Talking again takes the flag-set branch with no pending choice.
	w.Apply(core.Simple(core.KindInteract))
	if d := w.Dialogue(); d == nil || d.Pending != dialogue.ChoiceNone {
		t.Error("repeat visit should not re-ask the quest question")
	}
}

func TestPendingChoiceBlocksClose(t *testing.T) {
	w := newPlayingWorld(t, 42)

	var elder *npc.Npc
	for _, n := range w.Roster().All() {
		if n.ID == npc.IDElder {
			elder = n
		}
	}
	p := w.Player()
	p.X, p.Y = elder.X+1, elder.Y
	w.Apply(core.Simple(core.KindInteract))

	for i := 0; i < 10; i++ {
		w.Apply(core.Simple(core.KindConfirm))
	}
	if w.Phase() != PhaseDialogue {
		t.Error("confirm alone closed a session with a pending choice")
	}
}

func TestBanditBattle(t *testing.T) {
	w := newPlayingWorld(t, 42)

	var bandit *npc.Npc
	for _, n := range w.Roster().All() {
		if n.ID == npc.IDBandit {
			bandit = n
		}
	}
	if bandit == nil {
		t.Fatal("no bandit in the roster")
	}

	parkAway(t, w, 0, []npc.ID{npc.IDElder, npc.IDSmith},
		[]core.Point{{X: bandit.X, Y: bandit.Y}})

	p := w.Player()
	p.X, p.Y = bandit.X+1, bandit.Y

	w.Apply(core.Simple(core.KindInteract))
	for i := 0; i < 10 && w.Phase() == PhaseDialogue; i++ {
		w.Apply(core.Simple(core.KindConfirm))
	}
	if w.Phase() != PhaseBattle {
		t.Fatalf("Phase() = %v after bandit dialogue, expected battle", w.Phase())
	}

	b := w.Battle()
	if b == nil || b.Enemy != npc.IDBandit {
		t.Fatal("battle session missing or against the wrong enemy")
	}
	if b.PlayerInitiated {
		t.Error("the bandit jumps the player; fleeing must stay possible")
	}

	// A fresh player out-damages the bandit comfortably; fight until it
	// falls, checking enemy HP only ever drops.
	prev := b.HP
	for i := 0; i < 50 && w.Phase() == PhaseBattle; i++ {
		w.Apply(core.BattleOption(1, false))
		if w.Battle() != nil {
			if w.Battle().HP > prev {
				t.Fatalf("enemy HP rose from %d to %d", prev, w.Battle().HP)
			}
			prev = w.Battle().HP
		}
	}

	if w.Dead() {
		t.Fatal("a fresh player lost to the bandit")
	}
	if !w.Roster().Defeated(npc.IDBandit) {
		t.Fatal("victory did not set the defeated flag")
	}
	if w.Phase() != PhaseDialogue || !w.Dialogue().PostBattle {
		t.Fatal("victory should open post-battle dialogue")
	}

	w.Apply(core.Simple(core.KindConfirm))
	if w.Phase() != PhasePlaying {
		t.Error("closing victory dialogue should not restart the fight")
	}
}

func TestBuffExpiresByClock(t *testing.T) {
	w := newPlayingWorld(t, 42)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	w.SetClock(func() time.Time { return now })

	p := w.Player()
	p.Inv.AddConsumable(item.EmberPepper())

	w.Apply(core.Simple(core.KindToggleInventory))
	w.Apply(core.Simple(core.KindToggleInvTab)) // weapons -> consumables
	w.Apply(core.Simple(core.KindUseConsumable))

	if got := p.Attack(now); got != 10+4 {
		t.Fatalf("Attack() = %d while buffed, expected 14", got)
	}

	now = now.Add(29 * time.Second)
	w.Apply(core.Simple(core.KindNone))
	if got := p.Attack(now); got != 14 {
		t.Errorf("Attack() = %d just before expiry, expected 14", got)
	}

	now = now.Add(2 * time.Second)
	w.Apply(core.Simple(core.KindNone))
	if got := p.Attack(now); got != 10 {
		t.Errorf("Attack() = %d after expiry, expected 10", got)
	}
	if len(p.Buffs) != 0 {
		t.Errorf("%d buffs left after purge", len(p.Buffs))
	}
}

func TestChestTakeChoice(t *testing.T) {
	w := newPlayingWorld(t, 42)
	lvl := w.Level()
	p := w.Player()

	// Plant a known chest on a floor tile next to the player's spawn
	// neighborhood, then step onto it.
	var pos core.Point
	found := false
	for _, f := range lvl.Map.FloorTiles() {
		if w.Roster().At(0, f.X, f.Y) == nil && lvl.ChestAt(f.X, f.Y) == nil &&
			lvl.Map.At(f.X-1, f.Y) == dungeon.TileFloor {
			pos = f
			found = true
			break
		}
	}
	if !found {
		t.Fatal("no suitable tile for a test chest")
	}

	fruit := item.Sunfruit()
	lvl.AddChest(dungeon.Chest{Pos: pos, Consumable: &fruit})

	p.X, p.Y = pos.X-1, pos.Y
	w.Apply(core.Move(1, 0))

	if w.Phase() != PhaseDialogue {
		t.Fatalf("Phase() = %v after stepping on a chest, expected dialogue", w.Phase())
	}

	w.Apply(core.Choice('t'))
	if w.Phase() != PhasePlaying {
		t.Fatalf("Phase() = %v after taking, expected playing", w.Phase())
	}
	if len(p.Inv.Consumables) != 1 || p.Inv.Consumables[0].Name != "Sunfruit" {
		t.Errorf("loot not taken: %v", p.Inv.Consumables)
	}
	if lvl.Map.At(pos.X, pos.Y) != dungeon.TileFloor {
		t.Error("chest tile not restored to floor")
	}
	if lvl.ChestAt(pos.X, pos.Y) != nil {
		t.Error("chest can be opened twice")
	}
}

func TestEmptyInteract(t *testing.T) {
	w := newPlayingWorld(t, 42)
	p := w.Player()

	// Find a floor tile with nothing near it.
	door := w.Level().Door
	for _, f := range w.Level().Map.FloorTiles() {
		at := core.Point{X: f.X, Y: f.Y}
		if w.Roster().Adjacent(0, f.X, f.Y) == nil && !at.Adjacent(door) && at != door &&
			w.Level().ChestAt(f.X, f.Y) == nil {
			p.X, p.Y = f.X, f.Y
			break
		}
	}

	w.Apply(core.Simple(core.KindInteract))
	if !hasLog(w, "There is nothing nearby.") {
		t.Error("missing empty-interact log")
	}
}

func TestTurnsCountActions(t *testing.T) {
	w := newPlayingWorld(t, 42)
	start := w.Turns()

	w.Apply(core.Simple(core.KindNone))
	if w.Turns() != start {
		t.Error("idle ticks should not count as turns")
	}

	w.Apply(core.Simple(core.KindToggleStats))
	if w.Turns() != start+1 {
		t.Errorf("Turns() = %d, expected %d", w.Turns(), start+1)
	}
}

func TestLogCap(t *testing.T) {
	w := newPlayingWorld(t, 42)

	for i := 0; i < 20; i++ {
		w.Apply(core.Simple(core.KindInteract))
	}
	if len(w.Logs()) > maxLogLines {
		t.Errorf("log holds %d lines, cap is %d", len(w.Logs()), maxLogLines)
	}
}
