// Package world implements the top-level game state machine. The world owns
// the levels, the player, the NPC roster and the active dialogue or battle
// session, consumes one abstract action per invocation and appends
// human-readable log lines for the renderer to display.
package world

import (
	"fmt"
	"time"

	"sunny-days/internal/battle"
	"sunny-days/internal/config"
	"sunny-days/internal/dialogue"
	"sunny-days/internal/dungeon"
	"sunny-days/internal/entity"
	"sunny-days/internal/item"
	"sunny-days/internal/npc"
	"sunny-days/internal/rng"
)

// Phase is the current game phase. Exactly one is active; dialogue and
// battle sessions exist only while their phase does.
type Phase int

const (
	PhaseTitle Phase = iota
	PhaseIntro
	PhasePlaying
	PhaseDialogue
	PhaseBattle
	PhaseEnding
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "Title"
	case PhaseIntro:
		return "Intro"
	case PhasePlaying:
		return "Playing"
	case PhaseDialogue:
		return "Dialogue"
	case PhaseBattle:
		return "Battle"
	case PhaseEnding:
		return "Ending"
	default:
		return "Unknown"
	}
}

// maxLogLines bounds the message ring; the oldest line is evicted first.
const maxLogLines = 6

// pendingLoot holds chest contents between opening and the three-way
// take/use/discard choice.
type pendingLoot struct {
	consumable *item.Consumable
	equipment  *item.Equipment
}

// World is the complete simulation state, exclusively owned and mutated by
// Apply. The renderer only ever reads it between mutations.
type World struct {
	cfg  config.GameConfig
	seed uint64

	levels  [2]*dungeon.Level
	current int

	player *entity.Player
	npcs   *npc.Roster

	phase    Phase
	dialogue *dialogue.Session
	battle   *battle.Session
	loot     *pendingLoot

	invOpen   bool
	statsOpen bool

	logs  []string
	turns int
	dead  bool

	battleRand *rng.Stream
	clock      func() time.Time
}

// New creates a world from a seed. The seed fully determines both levels'
// geometry, door and chest placement, and NPC positions.
func New(seed uint64, cfg config.GameConfig) *World {
	w := &World{
		cfg:        cfg,
		seed:       seed,
		phase:      PhaseTitle,
		battleRand: rng.ForBattles(seed),
		clock:      time.Now,
	}

	w.levels[0] = dungeon.BuildLevel(seed, 0, cfg)
	w.levels[1] = dungeon.BuildLevel(seed, 1, cfg)
	w.npcs = npc.NewRoster(w.levels[:], rng.ForNPCs(seed))

	spawn := w.levels[0].Spawn
	w.player = entity.NewPlayer(spawn.X, spawn.Y)

	w.pushLog(fmt.Sprintf("Seed: %d", seed))
	w.pushLog("Welcome to Sunny Days.")
	w.pushLog("Move with WASD or arrow keys.")
	w.pushLog("Press I for inventory, E to interact.")
	w.pushLog("Find the white door to enter Room 2.")
	return w
}

// SetClock injects the time source; tests use it to simulate buff expiry
// without real delays.
func (w *World) SetClock(clock func() time.Time) {
	w.clock = clock
}

// pushLog appends a message, evicting the oldest past the cap.
func (w *World) pushLog(msg string) {
	w.logs = append(w.logs, msg)
	if len(w.logs) > maxLogLines {
		w.logs = w.logs[len(w.logs)-maxLogLines:]
	}
}

// Read-only snapshot accessors for the renderer and the platform shell.

// Phase returns the current game phase.
func (w *World) Phase() Phase { return w.phase }

// Seed returns the governing world seed.
func (w *World) Seed() uint64 { return w.seed }

// CurrentIndex returns the current level index (0 = Room 1, 1 = Room 2).
func (w *World) CurrentIndex() int { return w.current }

// Level returns the current level.
func (w *World) Level() *dungeon.Level { return w.levels[w.current] }

// LevelAt returns the level with the given index, nil when out of range.
func (w *World) LevelAt(i int) *dungeon.Level {
	if i < 0 || i >= len(w.levels) {
		return nil
	}
	return w.levels[i]
}

// Player returns the player.
func (w *World) Player() *entity.Player { return w.player }

// NPCs returns the NPCs on the current level.
func (w *World) NPCs() []*npc.Npc { return w.npcs.OnLevel(w.current) }

// Roster returns the full NPC roster with its persistent flags.
func (w *World) Roster() *npc.Roster { return w.npcs }

// Logs returns the bounded message log, oldest first.
func (w *World) Logs() []string { return w.logs }

// Dialogue returns the active dialogue session, nil outside PhaseDialogue.
func (w *World) Dialogue() *dialogue.Session { return w.dialogue }

// Battle returns the active battle session, nil outside PhaseBattle.
func (w *World) Battle() *battle.Session { return w.battle }

// InventoryOpen reports whether the inventory overlay is open.
func (w *World) InventoryOpen() bool { return w.invOpen }

// StatsOpen reports whether the stats overlay is open.
func (w *World) StatsOpen() bool { return w.statsOpen }

// Turns returns how many non-idle actions have been applied.
func (w *World) Turns() int { return w.turns }

// Dead reports whether the player has died.
func (w *World) Dead() bool { return w.dead }

// Now returns the world's current time, for stat display.
func (w *World) Now() time.Time { return w.clock() }
