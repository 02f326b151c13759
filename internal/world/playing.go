package world

import (
	"fmt"
	"strings"
	"time"

	"sunny-days/internal/core"
	"sunny-days/internal/dialogue"
	"sunny-days/internal/dungeon"
	"sunny-days/internal/entity"
	"sunny-days/internal/item"
	"sunny-days/internal/npc"
)

// applyPlaying handles free-roam actions.
func (w *World) applyPlaying(a core.Action, now time.Time) {
	switch a.Kind {
	case core.KindToggleInventory:
		w.invOpen = !w.invOpen
		if w.invOpen {
			w.statsOpen = false
			w.pushLog("Inventory opened.")
		} else {
			w.pushLog("Inventory closed.")
		}

	case core.KindToggleStats:
		w.statsOpen = !w.statsOpen
		if w.statsOpen {
			w.invOpen = false
		}

	case core.KindToggleInvTab:
		if w.invOpen {
			w.player.Inv.CycleTab()
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
		if w.invOpen {
			w.useSelected(now)
		}

	case core.KindMove:
		w.tryMove(a.DX, a.DY)

	case core.KindInteract:
		w.interact()
	}
}

// tryMove steps the player, rejecting moves while an overlay is open or
// onto an NPC's tile. Stepping onto a chest tile opens it.
func (w *World) tryMove(dx, dy int) {
	if w.invOpen || w.statsOpen {
		return
	}
	nx, ny := w.player.X+dx, w.player.Y+dy
	if w.npcs.At(w.current, nx, ny) != nil {
		return
	}

	if !w.player.TryMove(dx, dy, w.Level().Map) {
		return
	}
	w.pushLog(fmt.Sprintf("Player moved to (%d, %d)", w.player.X, w.player.Y))

	if w.Level().Map.At(w.player.X, w.player.Y) == dungeon.TileChest {
		if c := w.Level().ChestAt(w.player.X, w.player.Y); c != nil {
			w.openChest(c)
		}
	}
}

// interact resolves the Interact action in priority order: adjacent NPC,
// adjacent door, chest underfoot, nothing.
func (w *World) interact() {
	if w.invOpen || w.statsOpen {
		return
	}

	if n := w.npcs.Adjacent(w.current, w.player.X, w.player.Y); n != nil {
		w.talkTo(n)
		return
	}

	door := w.Level().Door
	at := core.Point{X: w.player.X, Y: w.player.Y}
	if at.Adjacent(door) {
		if w.player.Inv.HasSwordAndShield() {
			w.toggleRoom()
		} else {
			w.pushLog("The door will not budge. You need a sword and a shield.")
		}
		return
	}

	if c := w.Level().ChestAt(w.player.X, w.player.Y); c != nil {
		w.openChest(c)
		return
	}

	w.pushLog("There is nothing nearby.")
}

// talkTo opens a dialogue session with the NPC and enters the dialogue
// phase. Overlays close so the session owns the screen.
func (w *World) talkTo(n *npc.Npc) {
	w.invOpen = false
	w.statsOpen = false
	w.dialogue = dialogue.ForNPC(n, w.npcs.QuestDone(n.ID), w.npcs.Defeated(n.ID))
	w.phase = PhaseDialogue
}

// openChest consumes the chest one-shot, restores its tile to floor and
// raises the three-way take/use/discard choice for its contents.
func (w *World) openChest(c *dungeon.Chest) {
	loot := &pendingLoot{consumable: c.Consumable, equipment: c.Equipment}
	w.Level().OpenChest(c)

	var names []string
	if loot.consumable != nil {
		names = append(names, loot.consumable.Name)
	}
	if loot.equipment != nil {
		names = append(names, loot.equipment.Name)
	}
	if len(names) == 0 {
		w.pushLog("The chest is empty.")
		return
	}

	w.loot = loot
	w.invOpen = false
	w.statsOpen = false
	w.dialogue = dialogue.ForChest(strings.Join(names, " and "))
	w.phase = PhaseDialogue
}

// toggleRoom swaps the current level and teleports the player next to the
// destination door: the first floor neighbor in a fixed scan order, or the
// door tile itself when no floor neighbor exists.
func (w *World) toggleRoom() {
	w.current = 1 - w.current
	target := w.levels[w.current]

	pos := target.Door
	for _, d := range doorNeighborOrder {
		nx, ny := target.Door.X+d.X, target.Door.Y+d.Y
		if target.Map.At(nx, ny) == dungeon.TileFloor && w.npcs.At(w.current, nx, ny) == nil {
			pos = core.Point{X: nx, Y: ny}
			break
		}
	}
	w.player.X, w.player.Y = pos.X, pos.Y

	if w.current == 1 {
		w.pushLog("You step through the door into Room 2...")
	} else {
		w.pushLog("You step back into Room 1...")
	}
}

// doorNeighborOrder fixes the scan order for door-adjacent teleport
// targets: row-major over the 8 neighbors.
var doorNeighborOrder = []core.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// useSelected applies the inventory overlay's space action per tab:
// consumables are consumed, backpack gear is equipped, weapon slots are
// emptied into the backpack.
func (w *World) useSelected(now time.Time) {
	inv := &w.player.Inv
	switch inv.Tab() {
	case entity.TabConsumables:
		c, ok := inv.TakeSelectedConsumable()
		if !ok {
			w.pushLog("No consumables to use.")
			return
		}
		healed := w.player.Consume(c, now, w.buffDuration())
		w.logConsumed(&c, healed)

	case entity.TabBackpack:
		eq, ok := w.player.EquipFromBackpack(inv.Cursor())
		if !ok {
			w.pushLog("Nothing in the backpack.")
			return
		}
		w.pushLog("Equipped " + eq.Name + ".")

	case entity.TabWeapons:
		slot := item.SlotSword
		if inv.Cursor() == 1 {
			slot = item.SlotShield
		}
		if removed := w.player.Unequip(slot); removed != nil {
			w.pushLog("Unequipped " + removed.Name + ".")
		} else {
			w.pushLog("That slot is empty.")
		}
	}
}

// buffDuration returns the configured temp-buff lifetime.
func (w *World) buffDuration() time.Duration {
	return time.Duration(w.cfg.Buffs.DurationSeconds) * time.Second
}

// logConsumed reports a consumable use, including any buff it installed.
func (w *World) logConsumed(c *item.Consumable, healed int) {
	msg := fmt.Sprintf("Used %s (%+d HP).", c.Name, healed)
	if c.AtkBonus != 0 || c.DefBonus != 0 {
		msg = fmt.Sprintf("Used %s (%+d HP, buff %+d ATK %+d DEF).", c.Name, healed, c.AtkBonus, c.DefBonus)
	}
	w.pushLog(msg)
}
