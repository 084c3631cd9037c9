// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package transformers

import (
	"github.com/KirkDiggler/osrs-dps/distribution"
	"github.com/KirkDiggler/osrs-dps/equipment"
	"github.com/KirkDiggler/osrs-dps/monster"
)

// Gadderhammer applies the Gadderhammer-on-Shade bonus: 95% damage x5/4,
// 5% damage x2.
func Gadderhammer(ctx Context, in distribution.AttackDistribution) distribution.AttackDistribution {
	if ctx.CombatType == equipment.Magic || ctx.CombatType == equipment.Ranged {
		return in
	}
	if ctx.Player.Weapon.ID != equipment.WeaponGadderhammer || !ctx.Monster.HasTag(monster.TagShade) {
		return in
	}
	common := applyScaleEach(in, 5, 4)
	rare := applyScaleEach(in, 2, 1)
	return blend(common, rare, 0.95, 0.05)
}

func applyScaleEach(in distribution.AttackDistribution, num, den int64) distribution.AttackDistribution {
	out := make(distribution.AttackDistribution, len(in))
	for i, d := range in {
		out[i] = d.ScaleDamage(num, den)
	}
	return out
}

// KerisOnKalphite applies the keris family's 1/51 chance to triple
// damage against Kalphite-tagged targets: 50/51 standard, 1/51 x3.
func KerisOnKalphite(ctx Context, in distribution.AttackDistribution) distribution.AttackDistribution {
	if ctx.CombatType == equipment.Magic || ctx.CombatType == equipment.Ranged {
		return in
	}
	if ctx.Player.Weapon.ID != equipment.WeaponKerisPartisan || !ctx.Monster.HasTag(monster.TagKalphite) {
		return in
	}
	common := in
	rare := applyScaleEach(in, 3, 1)
	return blend(common, rare, 50.0/51.0, 1.0/51.0)
}

// ChambersGuardianPickaxe applies the mining-level/pickaxe-bonus scale
// when fighting a Chambers of Xeric Guardian with a pickaxe equipped.
func ChambersGuardianPickaxe(ctx Context, in distribution.AttackDistribution) distribution.AttackDistribution {
	if ctx.CombatType == equipment.Magic || ctx.CombatType == equipment.Ranged {
		return in
	}
	if ctx.Player.Weapon.StyleClass != equipment.ClassPickaxe {
		return in
	}
	if !ctx.Monster.NameContains("Guardian (Chambers") {
		return in
	}
	num := 50 + ctx.MiningLevel + ctx.PickaxeBonus
	return applyScaleEach(in, num, 150)
}

// IceDemonFire applies the 3/2 damage multiplier when a fire spell or
// Flames of Zamorak is used against an Ice demon.
func IceDemonFire(ctx Context, usingFire bool, in distribution.AttackDistribution) distribution.AttackDistribution {
	if !ctx.Monster.NameContains("Ice demon") || !usingFire {
		return in
	}
	return applyScaleEach(in, 3, 2)
}

// CorporealBeastNonCorpbane halves damage against the Corporeal Beast
// unless the wielded weapon is corpbane (a spear or halberd).
func CorporealBeastNonCorpbane(ctx Context, isCorpbane bool, in distribution.AttackDistribution) distribution.AttackDistribution {
	if !ctx.Monster.NameContains("Corporeal Beast") || isCorpbane {
		return in
	}
	return applyScaleEach(in, 1, 2)
}

// VerzikP1Cap caps damage against Verzik Vitur phase 1: 10 for melee,
// 3 otherwise, unless the weapon is Dawnbringer (uncapped). It does not
// check the target; the combat builder calls it only for Verzik phase 1.
func VerzikP1Cap(ctx Context, in distribution.AttackDistribution) distribution.AttackDistribution {
	if ctx.Player.Weapon.ID == equipment.WeaponDawnbringer {
		return in
	}
	limit := int64(3)
	if ctx.CombatType == equipment.Stab || ctx.CombatType == equipment.Slash || ctx.CombatType == equipment.Crush {
		limit = 10
	}
	out := make(distribution.AttackDistribution, len(in))
	for i, d := range in {
		out[i] = d.Transform(func(h distribution.Hit) distribution.HitDistribution {
			if h.Damage > limit {
				return distribution.Single(1.0, distribution.Hit{Damage: limit, Accurate: h.Accurate})
			}
			return distribution.Single(1.0, h)
		})
	}
	return out
}
