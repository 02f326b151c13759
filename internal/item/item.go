// Package item defines equipment and consumables plus the fixed catalog
// the world hands out through chests, NPCs and boss rewards.
package item

// Slot identifies which equipment slot an item occupies.
type Slot uint8

const (
	SlotSword Slot = iota
	SlotShield
)

// String returns the slot's display name.
func (s Slot) String() string {
	if s == SlotShield {
		return "Shield"
	}
	return "Sword"
}

// Equipment is a wearable item. Ownership always transfers in full between
// an equipment slot and the backpack; an item is never duplicated.
type Equipment struct {
	Name string
	Slot Slot
	Atk  int
	Def  int
	Spd  int
	HP   int // max HP bonus while equipped
}

// Consumable is a one-shot usable item. Heal may be negative; a nonzero
// AtkBonus or DefBonus installs a timed buff on use.
type Consumable struct {
	Name     string
	Heal     int
	AtkBonus int
	DefBonus int
}
