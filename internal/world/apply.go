package world

import (
	"unicode"

	"sunny-days/internal/core"
	"sunny-days/internal/dialogue"
	"sunny-days/internal/item"
	"sunny-days/internal/npc"
)

// Apply advances the world by exactly one action and reports whether the
// game continues. Malformed or inapplicable actions are silent no-ops;
// only Quit makes Apply return false, and it does so in every phase.
func (w *World) Apply(a core.Action) bool {
	now := w.clock()
	w.player.PurgeBuffs(now)

	if a.Kind == core.KindQuit {
		return false
	}
	if a.Kind != core.KindNone {
		w.turns++
	}

	switch w.phase {
	case PhaseTitle:
		if a.Kind == core.KindConfirm {
			w.phase = PhaseIntro
		}
	case PhaseIntro:
		if a.Kind == core.KindConfirm {
			w.phase = PhasePlaying
		}
	case PhasePlaying:
		w.applyPlaying(a, now)
	case PhaseDialogue:
		w.applyDialogue(a)
	case PhaseBattle:
		w.applyBattle(a, now)
	case PhaseEnding:
		// Nothing left to do but quit.
	}
	return true
}

// applyDialogue handles actions while a dialogue session is open.
func (w *World) applyDialogue(a core.Action) {
	s := w.dialogue
	if s == nil {
		// Phase says dialogue but no session: recover to free roam.
		w.phase = PhasePlaying
		return
	}

	switch a.Kind {
	case core.KindConfirm:
		if s.Advance() {
			return
		}
		if s.Pending != dialogue.ChoiceNone {
			// A pending choice blocks closing; the session stays on
			// the same page until a recognized character arrives.
			return
		}
		w.closeDialogue(s)

	case core.KindChoice:
		w.applyChoice(s, unicode.ToLower(a.Choice))
	}
}

// closeDialogue ends the session and performs the transition its content
// demands: hostile NPC dialogues roll into battle, post-battle text simply
// returns to free roam.
func (w *World) closeDialogue(s *dialogue.Session) {
	w.dialogue = nil
	w.phase = PhasePlaying

	if s.PostBattle {
		return
	}
	if n := w.findNpc(s.NPC); n != nil && n.Hostile() && !w.npcs.Defeated(n.ID) {
		// Challenging the Warden is a deliberate act; the bandit jumps
		// you, so running from it stays possible.
		w.startBattle(n, n.Boss())
	}
}

// applyChoice resolves a pending single-character choice. Unrecognized
// characters are ignored: the session remains open on the same page.
func (w *World) applyChoice(s *dialogue.Session, c rune) {
	switch s.Pending {
	case dialogue.ChoiceQuest:
		switch c {
		case 'y':
			w.npcs.SetQuestDone(npc.IDElder)
			s.AnswerQuest(true, dialogue.ElderAcceptPages, dialogue.ElderRefusePages)
			w.pushLog("You take up the Elder's task.")
		case 'n':
			s.AnswerQuest(false, dialogue.ElderAcceptPages, dialogue.ElderRefusePages)
		}

	case dialogue.ChoiceGear:
		var eq item.Equipment
		switch c {
		case 's':
			eq = item.RustySword()
		case 'h':
			eq = item.OakShield()
		default:
			return
		}
		w.player.Equip(eq)
		w.npcs.SetQuestDone(npc.IDSmith)
		s.Answer(dialogue.SmithFollowUpPages)
		w.pushLog("Equipped " + eq.Name + ".")

	case dialogue.ChoiceChest:
		switch c {
		case 't':
			w.takeLoot()
		case 'u':
			w.useLoot()
		case 'd':
			w.pushLog("You leave it behind.")
		default:
			return
		}
		// The chest choice always closes the session afterwards.
		s.ResolveChoice()
		w.loot = nil
		w.dialogue = nil
		w.phase = PhasePlaying
	}
}

// takeLoot moves pending chest contents into the inventory.
func (w *World) takeLoot() {
	if w.loot == nil {
		return
	}
	if c := w.loot.consumable; c != nil {
		if w.player.Inv.AddConsumable(*c) {
			w.pushLog("Took " + c.Name + ".")
		} else {
			w.pushLog("Your pack is full; the " + c.Name + " is left behind.")
		}
	}
	if e := w.loot.equipment; e != nil {
		w.player.Inv.AddToBackpack(*e)
		w.pushLog("Took " + e.Name + ".")
	}
}

// useLoot consumes or equips pending chest contents immediately.
func (w *World) useLoot() {
	if w.loot == nil {
		return
	}
	now := w.clock()
	if c := w.loot.consumable; c != nil {
		healed := w.player.Consume(*c, now, w.buffDuration())
		w.logConsumed(c, healed)
	}
	if e := w.loot.equipment; e != nil {
		w.player.Equip(*e)
		w.pushLog("Equipped " + e.Name + ".")
	}
}

// findNpc returns the NPC with the given identity anywhere in the world.
func (w *World) findNpc(id npc.ID) *npc.Npc {
	for _, n := range w.npcs.All() {
		if n.ID == id {
			return n
		}
	}
	return nil
}
