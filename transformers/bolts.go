// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package transformers

import (
	"github.com/KirkDiggler/osrs-dps/distribution"
	"github.com/KirkDiggler/osrs-dps/equipment"
	"github.com/KirkDiggler/osrs-dps/monster"
	"github.com/KirkDiggler/osrs-dps/rational"
)

// BoltProcContext carries the extra inputs enchanted-bolt procs need
// beyond the base Context.
type BoltProcContext struct {
	Bolt         equipment.BoltID
	RangedLevel  int64
	UsingZCB     bool
	KandarinDiary bool
}

// procChance returns the base trigger chance for a bolt type, boosted
// 1.1x if the Kandarin diary is complete.
func procChance(bolt equipment.BoltID, kandarin bool) float64 {
	base := map[equipment.BoltID]float64{
		equipment.BoltOpal:        0.05,
		equipment.BoltPearl:       0.06,
		equipment.BoltDiamond:     0.10,
		equipment.BoltDragonstone: 0.06,
		equipment.BoltOnyx:        0.11,
		equipment.BoltRuby:        0.06,
	}[bolt]
	if kandarin {
		base *= 1.1
	}
	return base
}

// ApplyBoltProc dispatches to the per-bolt effect and blends it with the
// unmodified distribution by the proc's trigger chance. A ZCB special
// attack guarantees the proc on an accurate hit, per the documented
// special-attack override.
func ApplyBoltProc(ctx Context, bc BoltProcContext, in distribution.AttackDistribution) distribution.AttackDistribution {
	effect, applies := boltEffect(ctx, bc, in)
	if !applies {
		return in
	}
	chance := procChance(bc.Bolt, bc.KandarinDiary)
	if ctx.UsingZCBSpec {
		chance = 1.0
	}
	return blend(in, effect, 1-chance, chance)
}

func boltEffect(ctx Context, bc BoltProcContext, in distribution.AttackDistribution) (distribution.AttackDistribution, bool) {
	switch bc.Bolt {
	case equipment.BoltOpal:
		divisor := int64(10)
		if bc.UsingZCB {
			divisor = 9
		}
		bonus := rational.FloorDiv(bc.RangedLevel, divisor)
		return addFlatBonus(in, bonus), true

	case equipment.BoltPearl:
		divisor := int64(20)
		if ctx.Monster.HasTag(monster.TagFiery) {
			divisor = 15
		}
		if bc.UsingZCB {
			divisor -= 2
		}
		bonus := rational.FloorDiv(bc.RangedLevel, divisor)
		return addFlatBonus(in, bonus), true

	case equipment.BoltDiamond:
		pct := int64(115)
		if bc.UsingZCB {
			pct = 126
		}
		max := rational.FloorDiv(ctx.MaxHit*pct, 100)
		return distribution.AttackDistribution{distribution.Linear(1.0, 0, max)}, true

	case equipment.BoltDragonstone:
		if ctx.Monster.HasTag(monster.TagFiery) || ctx.Monster.HasTag(monster.TagDragon) {
			return nil, false
		}
		divisor := int64(10)
		if bc.UsingZCB {
			divisor = 9
		}
		bonus := rational.FloorDiv(bc.RangedLevel*2, divisor)
		return addFlatBonusAccurateOnly(in, bonus), true

	case equipment.BoltOnyx:
		if ctx.Monster.HasTag(monster.TagUndead) {
			return nil, false
		}
		pct := int64(120)
		if bc.UsingZCB {
			pct = 132
		}
		max := rational.FloorDiv(ctx.MaxHit*pct, 100)
		return distribution.AttackDistribution{distribution.Linear(1.0, 0, max)}, true

	case equipment.BoltRuby:
		pct := int64(20)
		cap := int64(100)
		if bc.UsingZCB {
			pct = 22
			cap = 110
		}
		dmg := rational.FloorDiv(ctx.Monster.LiveStats.HP*pct, 100)
		if dmg > cap {
			dmg = cap
		}
		return distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: dmg, Accurate: true})}, true

	default:
		return nil, false
	}
}

// addFlatBonus adds bonus damage to every hit (accurate or not, per the
// "any hit" wording of opal/pearl).
func addFlatBonus(in distribution.AttackDistribution, bonus int64) distribution.AttackDistribution {
	out := make(distribution.AttackDistribution, len(in))
	for i, d := range in {
		out[i] = d.Transform(func(h distribution.Hit) distribution.HitDistribution {
			return distribution.Single(1.0, distribution.Hit{Damage: h.Damage + bonus, Accurate: h.Accurate})
		})
	}
	return out
}

// addFlatBonusAccurateOnly adds bonus damage only to accurate hits, for
// dragonstone's "accurate hits only" wording.
func addFlatBonusAccurateOnly(in distribution.AttackDistribution, bonus int64) distribution.AttackDistribution {
	out := make(distribution.AttackDistribution, len(in))
	for i, d := range in {
		out[i] = d.Transform(func(h distribution.Hit) distribution.HitDistribution {
			if !h.Accurate {
				return distribution.Single(1.0, h)
			}
			return distribution.Single(1.0, distribution.Hit{Damage: h.Damage + bonus, Accurate: true})
		})
	}
	return out
}
