// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package transformers

import (
	"github.com/KirkDiggler/osrs-dps/distribution"
	"github.com/KirkDiggler/osrs-dps/equipment"
	"github.com/KirkDiggler/osrs-dps/rational"
)

// Dharoks applies the full Dharok's set bonus: damage scaled by
// (10000 + (max_hp-current_hp)*max_hp) / 10000.
func Dharoks(ctx Context, in distribution.AttackDistribution) distribution.AttackDistribution {
	if ctx.CombatType == equipment.Magic || ctx.CombatType == equipment.Ranged || !ctx.Player.SetEffects.FullDharoks {
		return in
	}
	maxHP := ctx.Player.BaseStats.Hitpoints
	missingHP := maxHP - ctx.Player.LiveStats.Hitpoints
	num := 10000 + missingHP*maxHP
	out := make(distribution.AttackDistribution, len(in))
	for i, d := range in {
		out[i] = d.ScaleDamage(num, 10000)
	}
	return out
}

// Veracs mixes in Verac's 25% chance to ignore defence entirely: 75%
// the standard distribution, 25% a guaranteed uniform hit in
// [1, max_hit+1].
func Veracs(ctx Context, in distribution.AttackDistribution) distribution.AttackDistribution {
	if ctx.CombatType == equipment.Magic || ctx.CombatType == equipment.Ranged || !ctx.Player.SetEffects.FullVeracs {
		return in
	}
	guaranteed := distribution.AttackDistribution{distribution.Linear(1.0, 1, ctx.MaxHit+1)}
	return blend(in, guaranteed, 0.75, 0.25)
}

// Karils mixes in Karil's 25% bonus: 75% standard, 25% the same hit with
// floor(d/2) added. The bonus is folded into one splat of d + floor(d/2);
// no second hitsplat is emitted.
func Karils(ctx Context, in distribution.AttackDistribution) distribution.AttackDistribution {
	if ctx.CombatType != equipment.Ranged || !ctx.Player.SetEffects.FullKarils {
		return in
	}
	bonus := make(distribution.AttackDistribution, len(in))
	for i, d := range in {
		bonus[i] = d.Transform(func(h distribution.Hit) distribution.HitDistribution {
			half := rational.FloorDiv(h.Damage, 2)
			return distribution.Single(1.0, distribution.Hit{Damage: h.Damage + half, Accurate: h.Accurate})
		})
	}
	return blend(in, bonus, 0.75, 0.25)
}

// Ahrims mixes in Ahrim's 25% chance to scale damage by 13/10.
func Ahrims(ctx Context, in distribution.AttackDistribution) distribution.AttackDistribution {
	if ctx.CombatType != equipment.Magic || !ctx.Player.SetEffects.FullAhrims {
		return in
	}
	bonus := make(distribution.AttackDistribution, len(in))
	for i, d := range in {
		bonus[i] = d.ScaleDamage(13, 10)
	}
	return blend(in, bonus, 0.75, 0.25)
}

// blend combines two AttackDistributions positionally, scaling each by
// its own probability weight and concatenating entries within each
// inner HitDistribution (both sides must share the same shape).
func blend(a, b distribution.AttackDistribution, pa, pb float64) distribution.AttackDistribution {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(distribution.AttackDistribution, n)
	for i := 0; i < n; i++ {
		var left, right distribution.HitDistribution
		if i < len(a) {
			left = a[i].ScaleProbability(pa)
		}
		if i < len(b) {
			right = b[i].ScaleProbability(pb)
		}
		out[i] = append(append(distribution.HitDistribution{}, left...), right...)
	}
	return out
}
