package world

import (
	"fmt"
	"time"

	"sunny-days/internal/battle"
	"sunny-days/internal/core"
	"sunny-days/internal/dialogue"
	"sunny-days/internal/dungeon"
	"sunny-days/internal/entity"
	"sunny-days/internal/item"
	"sunny-days/internal/npc"
)

// startBattle opens a battle session against the NPC and enters the battle
// phase.
func (w *World) startBattle(n *npc.Npc, playerInitiated bool) {
	w.invOpen = false
	w.statsOpen = false
	w.battle = battle.New(n.ID, playerInitiated, w.cfg.Battle)
	w.phase = PhaseBattle
	w.pushLog(w.battle.Name + " attacks!")
}

// applyBattle handles actions during a battle. Option 1 fights, option 2
// opens the inventory overlay restricted to consumables, option 3 runs.
// Using a consumable while the overlay is open spends the turn: the enemy
// still attacks.
func (w *World) applyBattle(a core.Action, now time.Time) {
	b := w.battle
	if b == nil {
		w.phase = PhasePlaying
		return
	}

	switch a.Kind {
	case core.KindToggleInventory:
		w.invOpen = !w.invOpen
		if w.invOpen {
			w.player.Inv.SetTab(entity.TabConsumables)
		}

	case core.KindInventoryUp:
		if w.invOpen {
			w.player.Inv.MoveCursor(-1)
		}

	case core.KindInventoryDown:
		if w.invOpen {
			w.player.Inv.MoveCursor(1)
		}

	case core.KindUseConsumable:
		if !w.invOpen {
			return
		}
		c, ok := w.player.Inv.TakeSelectedConsumable()
		if !ok {
			w.pushLog("No consumables to use.")
			return
		}
		healed := w.player.Consume(c, now, w.buffDuration())
		w.logConsumed(&c, healed)
		w.invOpen = false
		// The item spends the turn; the enemy gets its attack.
		w.enemyStrike(now)

	case core.KindBattleOption:
		if w.invOpen {
			return
		}
		b.Penalty = a.Penalty
		switch a.Option {
		case 1:
			w.fightTurn(now)
		case 2:
			w.invOpen = true
			w.player.Inv.SetTab(entity.TabConsumables)
		case 3:
			w.tryRun(now)
		}
	}
}

// fightTurn resolves one full combat turn: both combatants act in
// initiative order, the second skipped when already defeated.
func (w *World) fightTurn(now time.Time) {
	b := w.battle
	if b.PlayerFirst(w.player.Speed(now)) {
		w.playerStrike(now)
		if b.Defeated() {
			w.winBattle()
			return
		}
		w.enemyStrike(now)
	} else {
		w.enemyStrike(now)
		if w.dead {
			return
		}
		w.playerStrike(now)
		if b.Defeated() {
			w.winBattle()
		}
	}
}

// playerStrike resolves the player's attack against the enemy.
func (w *World) playerStrike(now time.Time) {
	b := w.battle
	dmg, deflected := b.PlayerAttack(w.player.Attack(now), w.battleRand)
	if deflected {
		w.pushLog(b.Name + " deflects your blow!")
		return
	}
	w.pushLog(fmt.Sprintf("You hit %s for %d damage.", b.Name, dmg))
}

// enemyStrike resolves the enemy's attack against the player, ending the
// game when the player falls.
func (w *World) enemyStrike(now time.Time) {
	b := w.battle
	dmg, deflected := b.EnemyAttack(w.player.Defense(now), w.battleRand)
	if deflected {
		w.pushLog("You deflect " + b.Name + "'s attack!")
		return
	}
	w.player.HP -= dmg
	if w.player.HP < 0 {
		w.player.HP = 0
	}
	w.pushLog(fmt.Sprintf("%s hits you for %d damage.", b.Name, dmg))

	if w.player.HP <= 0 {
		w.battle = nil
		w.dead = true
		w.phase = PhaseEnding
		w.pushLog("You fall. The sun sets early today.")
	}
}

// tryRun resolves the Run option. Fleeing a fight the player started is
// disallowed and the enemy attacks instead; otherwise it succeeds half the
// time.
func (w *World) tryRun(now time.Time) {
	b := w.battle
	allowed, success := b.TryFlee(w.battleRand)
	if !allowed {
		w.pushLog("You picked this fight. No running now.")
		w.enemyStrike(now)
		return
	}
	if success {
		w.pushLog("You slip away from " + b.Name + ".")
		w.battle = nil
		w.invOpen = false
		w.phase = PhasePlaying
		return
	}
	w.pushLog("You fail to get away!")
	w.enemyStrike(now)
}

// winBattle ends the battle in victory: the one-time defeated flag is set,
// bosses leave the world and drop themed reward chests, and a short
// post-battle dialogue plays.
func (w *World) winBattle() {
	b := w.battle
	w.battle = nil
	w.invOpen = false

	first := !w.npcs.Defeated(b.Enemy)
	w.npcs.SetDefeated(b.Enemy)

	n := w.findNpc(b.Enemy)
	if first && n != nil && n.Boss() {
		w.npcs.Remove(n.ID)
		w.spawnBossRewards(n)
	}

	w.dialogue = dialogue.PostBattle(b.Enemy, b.Name)
	w.phase = PhaseDialogue
}

// spawnBossRewards places the Warden's two reward chests: one at the first
// floor neighbor of where it stood, one on a randomized nearby floor tile.
func (w *World) spawnBossRewards(n *npc.Npc) {
	lvl := w.levels[n.Level]

	sunblade := item.Sunblade()
	heart := item.WardenHeart()
	aegis := item.AegisOfDawn()

	if pos, ok := w.rewardSpot(lvl, n.X, n.Y, 1); ok {
		lvl.AddChest(dungeon.Chest{Pos: pos, Equipment: &sunblade, Consumable: &heart})
	}
	if pos, ok := w.rewardSpot(lvl, n.X, n.Y, 3); ok {
		lvl.AddChest(dungeon.Chest{Pos: pos, Equipment: &aegis})
	}
	w.pushLog("Something glints where the Warden fell.")
}

// rewardSpot finds a free floor tile within the given radius of (x, y):
// first by random sampling, then by scanning outward. Returns false when
// the neighborhood has no free floor at all.
func (w *World) rewardSpot(lvl *dungeon.Level, x, y, radius int) (core.Point, bool) {
	free := func(px, py int) bool {
		if lvl.Map.At(px, py) != dungeon.TileFloor {
			return false
		}
		if px == w.player.X && py == w.player.Y {
			return false
		}
		return w.npcs.At(w.current, px, py) == nil
	}

	for attempt := 0; attempt < 20; attempt++ {
		px := x + w.battleRand.Range(-radius, radius)
		py := y + w.battleRand.Range(-radius, radius)
		if free(px, py) {
			return core.Point{X: px, Y: py}, true
		}
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if free(x+dx, y+dy) {
				return core.Point{X: x + dx, Y: y + dy}, true
			}
		}
	}
	return core.Point{}, false
}
