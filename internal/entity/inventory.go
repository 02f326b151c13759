package entity

import "sunny-days/internal/item"

// Tab is one of the three inventory views, each with its own cursor.
type Tab int

const (
	TabWeapons Tab = iota
	TabConsumables
	TabBackpack

	tabCount = 3
)

// String returns the tab's display name.
func (t Tab) String() string {
	switch t {
	case TabWeapons:
		return "Weapons"
	case TabConsumables:
		return "Consumables"
	case TabBackpack:
		return "Backpack"
	default:
		return "Unknown"
	}
}

// MaxConsumables is the soft cap on carried consumables; pickups beyond it
// are refused, not dropped.
const MaxConsumables = 10

// Inventory holds the equipped sword and shield, carried consumables and
// the backpack of unequipped equipment. Invariant: each tab cursor is
// within bounds of the list it indexes, or 0 when that list is empty.
type Inventory struct {
	Sword       *item.Equipment
	Shield      *item.Equipment
	Consumables []item.Consumable
	Backpack    []item.Equipment

	tab     Tab
	cursors [tabCount]int
}

// Tab returns the active inventory tab.
func (inv *Inventory) Tab() Tab {
	return inv.tab
}

// SetTab switches directly to the given tab and re-clamps cursors. Used by
// battle, which restricts the overlay to consumables.
func (inv *Inventory) SetTab(t Tab) {
	inv.tab = t
	inv.clampCursors()
}

// CycleTab rotates Weapons -> Consumables -> Backpack -> Weapons and
// re-clamps every cursor to the current list lengths.
func (inv *Inventory) CycleTab() {
	inv.tab = (inv.tab + 1) % tabCount
	inv.clampCursors()
}

// Cursor returns the active tab's cursor.
func (inv *Inventory) Cursor() int {
	return inv.cursors[inv.tab]
}

// tabLen returns the length of the list a tab indexes. The weapons tab
// always shows the two slots.
func (inv *Inventory) tabLen(t Tab) int {
	switch t {
	case TabWeapons:
		return 2
	case TabConsumables:
		return len(inv.Consumables)
	default:
		return len(inv.Backpack)
	}
}

// MoveCursor steps the active tab's cursor by delta, wrapping around.
func (inv *Inventory) MoveCursor(delta int) {
	n := inv.tabLen(inv.tab)
	if n == 0 {
		inv.cursors[inv.tab] = 0
		return
	}
	idx := inv.cursors[inv.tab] + delta
	if idx < 0 {
		idx = n - 1
	} else if idx >= n {
		idx = 0
	}
	inv.cursors[inv.tab] = idx
}

func (inv *Inventory) clampCursors() {
	for t := Tab(0); t < tabCount; t++ {
		n := inv.tabLen(t)
		if n == 0 {
			inv.cursors[t] = 0
		} else if inv.cursors[t] >= n {
			inv.cursors[t] = n - 1
		}
	}
}

// TakeSelectedConsumable removes and returns the consumable under the
// consumables cursor. Returns false when the list is empty.
func (inv *Inventory) TakeSelectedConsumable() (item.Consumable, bool) {
	if len(inv.Consumables) == 0 {
		return item.Consumable{}, false
	}
	i := inv.cursors[TabConsumables]
	if i >= len(inv.Consumables) {
		i = 0
	}
	c := inv.Consumables[i]
	inv.Consumables = append(inv.Consumables[:i], inv.Consumables[i+1:]...)
	inv.clampCursors()
	return c, true
}

// AddConsumable appends a consumable, refusing past the soft cap.
func (inv *Inventory) AddConsumable(c item.Consumable) bool {
	if len(inv.Consumables) >= MaxConsumables {
		return false
	}
	inv.Consumables = append(inv.Consumables, c)
	return true
}

// AddToBackpack appends equipment to the backpack.
func (inv *Inventory) AddToBackpack(eq item.Equipment) {
	inv.Backpack = append(inv.Backpack, eq)
}

// slotFor returns a pointer to the slot field for the given slot kind.
func (inv *Inventory) slotFor(s item.Slot) **item.Equipment {
	if s == item.SlotShield {
		return &inv.Shield
	}
	return &inv.Sword
}

// Equipped returns the item in the given slot, or nil.
func (inv *Inventory) Equipped(s item.Slot) *item.Equipment {
	return *inv.slotFor(s)
}

// swapIntoSlot puts eq into its slot and returns whatever was displaced,
// moving it into the backpack. Ownership transfers in full, never copied
// into two places.
func (inv *Inventory) swapIntoSlot(eq item.Equipment) *item.Equipment {
	slot := inv.slotFor(eq.Slot)
	displaced := *slot
	e := eq
	*slot = &e
	if displaced != nil {
		inv.AddToBackpack(*displaced)
	}
	inv.clampCursors()
	return displaced
}

// removeFromSlot empties the given slot into the backpack and returns the
// removed item, or nil when the slot was empty.
func (inv *Inventory) removeFromSlot(s item.Slot) *item.Equipment {
	slot := inv.slotFor(s)
	removed := *slot
	if removed == nil {
		return nil
	}
	*slot = nil
	inv.AddToBackpack(*removed)
	inv.clampCursors()
	return removed
}

// takeFromBackpack removes and returns the backpack item at index i.
func (inv *Inventory) takeFromBackpack(i int) (item.Equipment, bool) {
	if i < 0 || i >= len(inv.Backpack) {
		return item.Equipment{}, false
	}
	eq := inv.Backpack[i]
	inv.Backpack = append(inv.Backpack[:i], inv.Backpack[i+1:]...)
	inv.clampCursors()
	return eq, true
}

// HasSwordAndShield reports whether both equipment slots are filled; the
// door to the next room demands it.
func (inv *Inventory) HasSwordAndShield() bool {
	return inv.Sword != nil && inv.Shield != nil
}
