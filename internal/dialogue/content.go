package dialogue

import (
	"fmt"

	"sunny-days/internal/npc"
)

// Quest acceptance/refusal follow-ups for Elder Rowan. Exposed so the
// world can feed them back into AnswerQuest.
var (
	ElderAcceptPages = []string{
		"\"Bless you, child. The Warden has kept the sun from Room 2 for an age.\"",
		"\"Arm yourself first. Mira can help, and the chests hold what the bandits left.\"",
	}
	ElderRefusePages = []string{
		"\"I see. The sun waits for no one, but I will.\"",
	}

	// Smith Mira's follow-up once a starter piece is picked.
	SmithFollowUpPages = []string{
		"\"Good choice. The other you'll have to scavenge, try the chests.\"",
	}
)

// ForNPC builds the dialogue session for talking to an NPC, branching on
// the persistent flags. First-time content asks its questions once; repeat
// visits fall through to the flag-set variant.
func ForNPC(n *npc.Npc, questDone, defeated bool) *Session {
	switch n.ID {
	case npc.IDElder:
		if questDone {
			return &Session{
				NPC:   n.ID,
				Title: n.Name,
				Pages: []string{
					"\"The Warden still waits beyond the white door.\"",
					"\"Remember: no one passes it without sword and shield in hand.\"",
				},
			}
		}
		return &Session{
			NPC:   n.ID,
			Title: n.Name,
			Pages: []string{
				"\"Ah, a new face under the old sun.\"",
				"\"The Warden of the Sun holds Room 2, and with it the morning itself.\"",
				"\"Will you take up the task? (Y/N)\"",
			},
			Page:    0,
			Pending: ChoiceQuest,
		}

	case npc.IDSmith:
		if questDone {
			return &Session{
				NPC:   n.ID,
				Title: n.Name,
				Pages: []string{
					"\"Back again? Keep that edge clean and that arm steady.\"",
				},
			}
		}
		return &Session{
			NPC:   n.ID,
			Title: n.Name,
			Pages: []string{
				"\"You'll not last a morning out there bare-handed.\"",
				"\"I can spare one piece. Sword or shield? (S/H)\"",
			},
			Pending: ChoiceGear,
		}

	case npc.IDBandit:
		if defeated {
			return &Session{
				NPC:   n.ID,
				Title: n.Name,
				Pages: []string{"The rat eyes you warily and says nothing."},
			}
		}
		return &Session{
			NPC:   n.ID,
			Title: n.Name,
			Pages: []string{
				"\"Oi. Toll road. Everything in your pack, now.\"",
				"The bandit draws a notched knife.",
			},
		}

	case npc.IDWarden:
		return &Session{
			NPC:   n.ID,
			Title: n.Name,
			Pages: []string{
				"\"WHO DARES WALK MY MORNING?\"",
				"The Warden's armor blazes like noon.",
			},
		}

	default:
		return &Session{
			NPC:   n.ID,
			Title: n.Name,
			Pages: []string{"..."},
		}
	}
}

// PostBattle builds the short dialogue shown after defeating an enemy.
// Closing it triggers nothing further.
func PostBattle(id npc.ID, name string) *Session {
	pages := []string{fmt.Sprintf("%s falls. The room is quiet again.", name)}
	if id == npc.IDWarden {
		pages = []string{
			"The Warden's armor cracks and daylight pours out.",
			"Where it stood, two chests gleam in new sunlight.",
		}
	}
	return &Session{
		NPC:        id,
		Title:      "Victory",
		Pages:      pages,
		PostBattle: true,
	}
}

// ForChest builds the three-way take/use/discard session for an opened
// chest. It always closes after the choice resolves.
func ForChest(contents string) *Session {
	return &Session{
		Title: "Chest",
		Pages: []string{
			fmt.Sprintf("Inside you find: %s.", contents),
			"Take it, use it now, or leave it? (T/U/D)",
		},
		Pending: ChoiceChest,
	}
}
