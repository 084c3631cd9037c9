// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package limiters applies monster-specific post-transform damage
// clamps: Zulrah's reroll, Tekton's divide-by-five, Kraken's ranged
// divide-by-seven, the Ice demon's non-fire penalty, and the rest of
// §4.4.2's table. Limiters run last in the builder pipeline. Immunity and
// the Zulrah reroll give the same distribution when applied twice; the
// Fragment of Seren reroll and the dividing limiters change it again on
// every further application.
package limiters

import (
	"strings"

	"github.com/KirkDiggler/osrs-dps/distribution"
	"github.com/KirkDiggler/osrs-dps/equipment"
	"github.com/KirkDiggler/osrs-dps/rational"
)

// Context carries the inputs a limiter needs to decide whether it
// applies and how to reroll or clamp damage.
type Context struct {
	MonsterName  string
	CombatType   equipment.CombatType
	UsedFire     bool
	HasPickaxe   bool
	CrumbleUndead bool
	BrutalRangedAmmo bool
	CompOgreBow  bool
	IsImmune     bool
}

// transformEach rewrites every splat of every inner distribution with f.
func transformEach(in distribution.AttackDistribution, f func(distribution.Hit) distribution.Hit) distribution.AttackDistribution {
	out := make(distribution.AttackDistribution, len(in))
	for i, d := range in {
		out[i] = d.Transform(func(h distribution.Hit) distribution.HitDistribution {
			return distribution.Single(1.0, f(h))
		})
	}
	return out
}

// Zulrah rerolls any splat over 50 damage to a uniform value in [45, 50].
// The reroll is represented exactly: each such splat is replaced by an
// equal-weight fan-out over 45..50, and splats of 50 or less are kept.
func Zulrah(in distribution.AttackDistribution) distribution.AttackDistribution {
	out := make(distribution.AttackDistribution, len(in))
	for i, d := range in {
		out[i] = d.Transform(func(h distribution.Hit) distribution.HitDistribution {
			if h.Damage <= 50 {
				return distribution.Single(1.0, h)
			}
			return distribution.Linear(1.0, 45, 50)
		})
	}
	return out
}

// FragmentOfSeren replaces damage over the reroll band with the reroll
// band itself: min(damage, uniform[22,24]).
func FragmentOfSeren(in distribution.AttackDistribution) distribution.AttackDistribution {
	out := make(distribution.AttackDistribution, len(in))
	for i, d := range in {
		out[i] = d.Transform(func(h distribution.Hit) distribution.HitDistribution {
			if h.Damage <= 22 {
				return distribution.Single(1.0, h)
			}
			if h.Damage >= 24 {
				return distribution.Linear(1.0, 22, 24)
			}
			// damage == 23: min(23, {22,23,24}) averages to {22,23,23}
			return distribution.HitDistribution{
				{Probability: 1.0 / 3, Hitsplats: []distribution.Hit{{Damage: 22, Accurate: true}}},
				{Probability: 2.0 / 3, Hitsplats: []distribution.Hit{{Damage: 23, Accurate: true}}},
			}
		})
	}
	return out
}

// DivideBy divides every splat's damage by divisor, flooring, with an
// optional floor of at least `atLeast` (Kraken ranged floors at 1).
func DivideBy(in distribution.AttackDistribution, divisor, atLeast int64) distribution.AttackDistribution {
	return transformEach(in, func(h distribution.Hit) distribution.Hit {
		d := rational.FloorDiv(h.Damage, divisor)
		if d < atLeast {
			d = atLeast
		}
		return distribution.Hit{Damage: d, Accurate: h.Accurate}
	})
}

// KrakenRanged applies damage <- max(1, floor(damage/7)).
func KrakenRanged(in distribution.AttackDistribution) distribution.AttackDistribution {
	return DivideBy(in, 7, 1)
}

// TektonMagic applies damage <- floor(damage/5).
func TektonMagic(in distribution.AttackDistribution) distribution.AttackDistribution {
	return DivideBy(in, 5, 0)
}

// DivideByThree applies damage <- floor(damage/3), shared by Glowing
// crystal/Great Olm head/left claw magic, right claw ranged, Ice demon
// non-fire, and Slagilith without a pickaxe.
func DivideByThree(in distribution.AttackDistribution) distribution.AttackDistribution {
	return DivideBy(in, 3, 0)
}

// ZogreFamily applies the Zogre/Skogre/Slash Bash limiter: divide by 2
// when Crumble Undead is active, otherwise divide by 4, UNLESS the
// attack is ranged with brutal ogre-bow ammo AND a Comp ogre bow — the
// corrected De Morgan guard (the source's `!a || !b` is read here as the
// intended `!(a && b)`).
func ZogreFamily(ctx Context, in distribution.AttackDistribution) distribution.AttackDistribution {
	exempt := ctx.CombatType == equipment.Ranged && ctx.BrutalRangedAmmo && ctx.CompOgreBow
	if exempt {
		return in
	}
	if ctx.CrumbleUndead {
		return DivideBy(in, 2, 0)
	}
	return DivideBy(in, 4, 0)
}

// Immunity collapses the distribution to a guaranteed zero-damage splat
// when the monster is immune to the player's current combat type or
// attack attributes.
func Immunity(ctx Context, in distribution.AttackDistribution) distribution.AttackDistribution {
	if !ctx.IsImmune {
		return in
	}
	return distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 0, Accurate: false})}
}

// Apply dispatches to the limiter matching ctx.MonsterName and
// ctx.CombatType, per the §4.4.2 table. Limiters run after immunity so
// that an immune monster never reaches a name-specific limiter.
func Apply(ctx Context, in distribution.AttackDistribution) distribution.AttackDistribution {
	if ctx.IsImmune {
		return Immunity(ctx, in)
	}

	switch {
	case contains(ctx.MonsterName, "Zulrah"):
		return Zulrah(in)
	case contains(ctx.MonsterName, "Fragment of Seren"):
		return FragmentOfSeren(in)
	case contains(ctx.MonsterName, "Kraken") && ctx.CombatType == equipment.Ranged:
		return KrakenRanged(in)
	case contains(ctx.MonsterName, "Tekton") && ctx.CombatType == equipment.Magic:
		return TektonMagic(in)
	case (contains(ctx.MonsterName, "Glowing crystal") ||
		contains(ctx.MonsterName, "Great Olm") ||
		contains(ctx.MonsterName, "Left claw")) && ctx.CombatType == equipment.Magic:
		return DivideByThree(in)
	case contains(ctx.MonsterName, "Right claw") && ctx.CombatType == equipment.Ranged:
		return DivideByThree(in)
	case contains(ctx.MonsterName, "Ice demon") && !ctx.UsedFire:
		return DivideByThree(in)
	case contains(ctx.MonsterName, "Slagilith") && !ctx.HasPickaxe:
		return DivideByThree(in)
	case contains(ctx.MonsterName, "Zogre") || contains(ctx.MonsterName, "Skogre") || contains(ctx.MonsterName, "Slash Bash"):
		return ZogreFamily(ctx, in)
	default:
		return in
	}
}

func contains(name, fragment string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(fragment))
}
