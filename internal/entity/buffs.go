package entity

import "time"

// TempBuff is a stat bonus active until a fixed expiry time. Buffs are
// purely additive: effective stats sum every unexpired buff.
type TempBuff struct {
	Atk     int
	Def     int
	Spd     int
	Expires time.Time
}

// Active reports whether the buff is still in effect at the given time.
func (b TempBuff) Active(now time.Time) bool {
	return now.Before(b.Expires)
}

// purgeBuffs drops expired buffs in place, preserving order.
func purgeBuffs(buffs []TempBuff, now time.Time) []TempBuff {
	kept := buffs[:0]
	for _, b := range buffs {
		if b.Active(now) {
			kept = append(kept, b)
		}
	}
	return kept
}

// sumBuffs totals the bonuses of every buff active at the given time.
func sumBuffs(buffs []TempBuff, now time.Time) (atk, def, spd int) {
	for _, b := range buffs {
		if b.Active(now) {
			atk += b.Atk
			def += b.Def
			spd += b.Spd
		}
	}
	return atk, def, spd
}
