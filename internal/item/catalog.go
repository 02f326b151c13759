package item

import "sunny-days/internal/rng"

// Starter gear offered by Smith Mira. The door to Room 2 only opens for a
// player holding both a sword and a shield, so the half not chosen has to
// turn up in a chest eventually.
func RustySword() Equipment {
	return Equipment{Name: "Rusty Sword", Slot: SlotSword, Atk: 3, Spd: 1}
}

func OakShield() Equipment {
	return Equipment{Name: "Oak Shield", Slot: SlotShield, Def: 3, HP: 5}
}

// Boss rewards dropped by the Warden of the Sun.
func Sunblade() Equipment {
	return Equipment{Name: "Sunblade", Slot: SlotSword, Atk: 8, Spd: 2}
}

func AegisOfDawn() Equipment {
	return Equipment{Name: "Aegis of Dawn", Slot: SlotShield, Def: 6, HP: 10}
}

func Sunfruit() Consumable {
	return Consumable{Name: "Sunfruit", Heal: 8}
}

func HoneyBread() Consumable {
	return Consumable{Name: "Honey Bread", Heal: 5}
}

func BitterRoot() Consumable {
	// Tastes awful, hardens the skin.
	return Consumable{Name: "Bitter Root", Heal: -2, DefBonus: 5}
}

func EmberPepper() Consumable {
	return Consumable{Name: "Ember Pepper", Heal: 1, AtkBonus: 4}
}

func WardenHeart() Consumable {
	return Consumable{Name: "Warden's Heart", Heal: 15, AtkBonus: 3, DefBonus: 3}
}

// chestConsumables are the consumables that may appear in scattered chests,
// per level depth.
var chestConsumables = [][]Consumable{
	{Sunfruit(), HoneyBread(), BitterRoot()},
	{Sunfruit(), BitterRoot(), EmberPepper()},
}

// chestEquipment is the equipment that may appear in scattered chests, per
// level depth. Room 1 stocks the starter pieces so a player who picked the
// sword can still find a shield and vice versa.
var chestEquipment = [][]Equipment{
	{RustySword(), OakShield()},
	{OakShield()},
}

// ChestLoot rolls the contents of one scattered chest on the given level.
// Every chest holds a consumable; roughly one in three also holds a piece
// of equipment.
func ChestLoot(depth int, r *rng.Stream) (*Consumable, *Equipment) {
	if depth < 0 || depth >= len(chestConsumables) {
		depth = 0
	}

	pool := chestConsumables[depth]
	c := pool[r.Intn(len(pool))]

	var eq *Equipment
	gear := chestEquipment[depth]
	if len(gear) > 0 && r.Chance(1.0/3.0) {
		e := gear[r.Intn(len(gear))]
		eq = &e
	}
	return &c, eq
}
