// Package entity implements the player model: stats, equipment slots,
// consumables, backpack and temporary timed buffs.
package entity

import (
	"time"

	"sunny-days/internal/dungeon"
	"sunny-days/internal/item"
)

// Base stats for a fresh player.
const (
	baseMaxHP = 30
	baseAtk   = 10
	baseDef   = 2
	baseSpd   = 5
)

// Player is the single player character.
type Player struct {
	X, Y  int
	HP    int
	MaxHP int

	BaseAtk int
	BaseDef int
	BaseSpd int

	Inv   Inventory
	Buffs []TempBuff
}

// NewPlayer creates a player at the given spawn with nothing equipped or
// carried.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:       x,
		Y:       y,
		HP:      baseMaxHP,
		MaxHP:   baseMaxHP,
		BaseAtk: baseAtk,
		BaseDef: baseDef,
		BaseSpd: baseSpd,
	}
}

// PurgeBuffs drops buffs that have expired by now. Called at the start of
// every action application.
func (p *Player) PurgeBuffs(now time.Time) {
	p.Buffs = purgeBuffs(p.Buffs, now)
}

// Attack returns the effective attack at the given time: base plus equipped
// bonuses plus active buffs.
func (p *Player) Attack(now time.Time) int {
	atk, _, _ := sumBuffs(p.Buffs, now)
	return p.BaseAtk + equipBonus(p.Inv.Sword, p.Inv.Shield, func(e *item.Equipment) int { return e.Atk }) + atk
}

// Defense returns the effective defense at the given time.
func (p *Player) Defense(now time.Time) int {
	_, def, _ := sumBuffs(p.Buffs, now)
	return p.BaseDef + equipBonus(p.Inv.Sword, p.Inv.Shield, func(e *item.Equipment) int { return e.Def }) + def
}

// Speed returns the effective speed at the given time.
func (p *Player) Speed(now time.Time) int {
	_, _, spd := sumBuffs(p.Buffs, now)
	return p.BaseSpd + equipBonus(p.Inv.Sword, p.Inv.Shield, func(e *item.Equipment) int { return e.Spd }) + spd
}

func equipBonus(sword, shield *item.Equipment, f func(*item.Equipment) int) int {
	total := 0
	if sword != nil {
		total += f(sword)
	}
	if shield != nil {
		total += f(shield)
	}
	return total
}

// Equip puts eq into its slot, displacing any current occupant into the
// backpack. Max HP adjusts immediately by the difference in HP bonuses and
// current HP clamps down if it now exceeds the new maximum.
func (p *Player) Equip(eq item.Equipment) {
	displaced := p.Inv.swapIntoSlot(eq)
	delta := eq.HP
	if displaced != nil {
		delta -= displaced.HP
	}
	p.adjustMaxHP(delta)
}

// EquipFromBackpack equips the backpack item at index i, swapping with the
// current slot occupant. Returns false for an out-of-range index.
func (p *Player) EquipFromBackpack(i int) (item.Equipment, bool) {
	eq, ok := p.Inv.takeFromBackpack(i)
	if !ok {
		return item.Equipment{}, false
	}
	p.Equip(eq)
	return eq, true
}

// Unequip empties the given slot into the backpack, dropping its max HP
// bonus. Returns nil when the slot was empty.
func (p *Player) Unequip(s item.Slot) *item.Equipment {
	removed := p.Inv.removeFromSlot(s)
	if removed != nil {
		p.adjustMaxHP(-removed.HP)
	}
	return removed
}

func (p *Player) adjustMaxHP(delta int) {
	p.MaxHP += delta
	if p.MaxHP < 1 {
		p.MaxHP = 1
	}
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// Heal applies a heal amount (possibly negative), clamping to [0, MaxHP].
// Returns the actual HP change.
func (p *Player) Heal(amount int) int {
	before := p.HP
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	if p.HP < 0 {
		p.HP = 0
	}
	return p.HP - before
}

// Consume applies a consumable at the given time: heals (clamped) and, when
// the item carries a nonzero attack or defense bonus, installs a timed buff
// expiring after duration. Returns the HP change.
func (p *Player) Consume(c item.Consumable, now time.Time, duration time.Duration) int {
	healed := p.Heal(c.Heal)
	if c.AtkBonus != 0 || c.DefBonus != 0 {
		p.Buffs = append(p.Buffs, TempBuff{
			Atk:     c.AtkBonus,
			Def:     c.DefBonus,
			Expires: now.Add(duration),
		})
	}
	return healed
}

// TryMove attempts to step the player by (dx, dy) on the map. Blocked or
// out-of-bounds moves are no-ops. Returns true when the player moved.
func (p *Player) TryMove(dx, dy int, m *dungeon.Map) bool {
	nx, ny := p.X+dx, p.Y+dy
	if !m.InBounds(nx, ny) || !m.Walkable(nx, ny) {
		return false
	}
	p.X, p.Y = nx, ny
	return true
}
