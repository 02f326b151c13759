package battle

import "sunny-days/internal/npc"

// enemyStats is the combat stat block for one enemy identity.
type enemyStats struct {
	Name  string
	MaxHP int
	Atk   int
	Def   int
	Spd   int
}

// enemyTable keys combat content by NPC identity, keeping stats out of the
// control flow.
var enemyTable = map[npc.ID]enemyStats{
	npc.IDBandit: {Name: "Bandit Rat", MaxHP: 18, Atk: 6, Def: 2, Spd: 4},
	npc.IDWarden: {Name: "Warden of the Sun", MaxHP: 40, Atk: 12, Def: 5, Spd: 6},
}

// statsFor returns the stat block for an identity, with a harmless default
// for identities missing from the table.
func statsFor(id npc.ID) enemyStats {
	if s, ok := enemyTable[id]; ok {
		return s
	}
	return enemyStats{Name: string(id), MaxHP: 10, Atk: 3, Def: 1, Spd: 3}
}
