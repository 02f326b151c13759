// Package npc holds the fixed roster of non-player characters, their seeded
// placement and the persistent one-way quest and defeat flags.
package npc

import (
	"sunny-days/internal/core"
	"sunny-days/internal/dungeon"
	"sunny-days/internal/rng"
)

// ID is an NPC identity tag. Dialogue and battle content key off it.
type ID string

const (
	IDElder  ID = "elder"  // Elder Rowan, Room 1 quest giver
	IDSmith  ID = "smith"  // Smith Mira, Room 1 starter gear
	IDBandit ID = "bandit" // Bandit Rat, Room 1 fight
	IDWarden ID = "warden" // Warden of the Sun, Room 2 boss
)

// Npc is one placed non-player character. NPCs block movement but have no
// collision geometry of their own.
type Npc struct {
	ID     ID
	Name   string
	Level  int // owning level index
	X, Y   int
	Symbol rune
}

// Hostile reports whether talking to this NPC ends in a fight.
func (n *Npc) Hostile() bool {
	return n.ID == IDBandit || n.ID == IDWarden
}

// Boss reports whether defeating this NPC removes it from the world and
// spawns themed reward chests.
func (n *Npc) Boss() bool {
	return n.ID == IDWarden
}

// Roster owns every NPC plus the persistent per-identity flags. Flags are
// one-way: once set they never clear.
type Roster struct {
	npcs      []*Npc
	questDone map[ID]bool
	defeated  map[ID]bool
}

// rosterSpec fixes which identities exist and where they live.
var rosterSpec = []struct {
	id     ID
	name   string
	level  int
	symbol rune
}{
	{IDElder, "Elder Rowan", 0, 'R'},
	{IDSmith, "Smith Mira", 0, 'M'},
	{IDBandit, "Bandit Rat", 0, 'B'},
	{IDWarden, "Warden of the Sun", 1, 'W'},
}

// NewRoster places the fixed roster on the given levels using the seeded
// stream. Each NPC lands on a floor tile away from the spawn, the door and
// every previously placed NPC; when sampling finds nothing the spacing
// constraint relaxes to any free floor tile.
func NewRoster(levels []*dungeon.Level, r *rng.Stream) *Roster {
	ros := &Roster{
		questDone: make(map[ID]bool),
		defeated:  make(map[ID]bool),
	}

	taken := make(map[int]map[core.Point]bool)
	for i, lvl := range levels {
		taken[i] = map[core.Point]bool{lvl.Spawn: true, lvl.Door: true}
	}

	for _, spec := range rosterSpec {
		if spec.level >= len(levels) {
			continue
		}
		lvl := levels[spec.level]
		pos := placeNpc(lvl, r, taken[spec.level])
		taken[spec.level][pos] = true
		ros.npcs = append(ros.npcs, &Npc{
			ID:     spec.id,
			Name:   spec.name,
			Level:  spec.level,
			X:      pos.X,
			Y:      pos.Y,
			Symbol: spec.symbol,
		})
	}
	return ros
}

func placeNpc(lvl *dungeon.Level, r *rng.Stream, taken map[core.Point]bool) core.Point {
	floors := lvl.Map.FloorTiles()
	if len(floors) == 0 {
		return lvl.Spawn
	}

	for attempt := 0; attempt < 200; attempt++ {
		p := floors[r.Intn(len(floors))]
		if !taken[p] && !p.Adjacent(lvl.Spawn) {
			return p
		}
	}
	for _, p := range floors {
		if !taken[p] {
			return p
		}
	}
	return floors[0]
}

// All returns every NPC still in the world.
func (r *Roster) All() []*Npc {
	return r.npcs
}

// OnLevel returns the NPCs on the given level.
func (r *Roster) OnLevel(level int) []*Npc {
	var out []*Npc
	for _, n := range r.npcs {
		if n.Level == level {
			out = append(out, n)
		}
	}
	return out
}

// At returns the NPC standing on (level, x, y), or nil.
func (r *Roster) At(level, x, y int) *Npc {
	for _, n := range r.npcs {
		if n.Level == level && n.X == x && n.Y == y {
			return n
		}
	}
	return nil
}

// Adjacent returns the first NPC within one tile of (x, y) on the level
// (diagonals included), or nil.
func (r *Roster) Adjacent(level, x, y int) *Npc {
	at := core.Point{X: x, Y: y}
	for _, n := range r.npcs {
		if n.Level == level && at.Adjacent(core.Point{X: n.X, Y: n.Y}) {
			return n
		}
	}
	return nil
}

// Remove deletes the NPC with the given identity from the world. Its flags
// persist.
func (r *Roster) Remove(id ID) {
	for i, n := range r.npcs {
		if n.ID == id {
			r.npcs = append(r.npcs[:i], r.npcs[i+1:]...)
			return
		}
	}
}

// QuestDone reports the persistent quest flag for an identity.
func (r *Roster) QuestDone(id ID) bool {
	return r.questDone[id]
}

// SetQuestDone sets the quest flag. Idempotent; flags never clear.
func (r *Roster) SetQuestDone(id ID) {
	r.questDone[id] = true
}

// Defeated reports whether the identity's enemy has been beaten.
func (r *Roster) Defeated(id ID) bool {
	return r.defeated[id]
}

// SetDefeated sets the defeat flag. Idempotent; flags never clear.
func (r *Roster) SetDefeated(id ID) {
	r.defeated[id] = true
}

// DefeatedCount returns how many identities carry the defeat flag.
func (r *Roster) DefeatedCount() int {
	return len(r.defeated)
}
