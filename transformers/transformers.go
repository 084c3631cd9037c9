// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package transformers holds the per-weapon and per-target rules that
// reshape a baseline AttackDistribution: barrows-set behaviors, the
// scythe cascade, dual macuahuitl, enchanted-bolt procs, fang's min
// damage, and the other entries of the dispatch table. Each rule is a
// pure function from a Context and an input AttackDistribution to an
// output AttackDistribution; the builder package chains them in the
// documented order.
package transformers

import (
	"github.com/KirkDiggler/osrs-dps/distribution"
	"github.com/KirkDiggler/osrs-dps/equipment"
	"github.com/KirkDiggler/osrs-dps/monster"
	"github.com/KirkDiggler/osrs-dps/player"
	"github.com/KirkDiggler/osrs-dps/rational"
)

// Context carries every input a transformer might need. Not every field
// is relevant to every rule.
type Context struct {
	Player        *player.Player
	Monster       *monster.Monster
	CombatType    equipment.CombatType
	MaxHit        int64
	Accuracy      float64
	MiningLevel   int64
	PickaxeBonus  int64
	UsingZCBSpec  bool
}

// oneHitMonsters names monsters whose distribution always collapses to
// a guaranteed single hit at their current HP (typically scripted demo
// or tutorial targets).
var oneHitMonsters = map[string]bool{}

// RegisterOneHitMonster marks a monster name as a one-hit kill target.
func RegisterOneHitMonster(name string) {
	oneHitMonsters[name] = true
}

// Standard builds the baseline AttackDistribution for a single accurate
// roll against max hit: miss with probability 1-accuracy, else uniform
// damage in [0, maxHit].
func Standard(maxHit int64, acc float64) distribution.AttackDistribution {
	return distribution.AttackDistribution{distribution.Linear(acc, 0, maxHit)}
}

// OneHit collapses a distribution to a guaranteed hit for the monster's
// current HP, used for ONE_HIT_MONSTERS.
func OneHit(ctx Context, _ distribution.AttackDistribution) distribution.AttackDistribution {
	if !oneHitMonsters[ctx.Monster.Name] {
		return nil
	}
	hp := ctx.Monster.LiveStats.HP
	return distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: hp, Accurate: true})}
}

// SunfireFireSpell sets the floor of the distribution's min damage to
// floor(max_hit/10) when casting a Fire* standard spell with sunfire
// runes equipped.
func SunfireFireSpell(ctx Context, in distribution.AttackDistribution) distribution.AttackDistribution {
	if ctx.CombatType != equipment.Magic || !ctx.Player.Status.SunfireRunes {
		return in
	}
	if ctx.Player.ActiveSpell == nil || !ctx.Player.ActiveSpell.IsFireSpell {
		return in
	}
	minDamage := rational.FloorDiv(ctx.MaxHit, 10)
	return raiseFloor(in, minDamage)
}

// raiseFloor rebuilds a single-linear-style AttackDistribution so every
// accurate splat is at least minDamage, preserving total accuracy mass.
func raiseFloor(in distribution.AttackDistribution, minDamage int64) distribution.AttackDistribution {
	out := make(distribution.AttackDistribution, len(in))
	for i, d := range in {
		out[i] = d.Transform(func(h distribution.Hit) distribution.HitDistribution {
			if !h.Accurate || h.Damage >= minDamage {
				return distribution.Single(1.0, h)
			}
			return distribution.Single(1.0, distribution.Hit{Damage: minDamage, Accurate: true})
		})
	}
	return out
}

// FangMelee applies Osmumten's fang's min-damage floor for stab attacks:
// min = floor(max_hit*3/20), max = max_hit - min, redistributed uniformly
// with the existing accuracy.
func FangMelee(ctx Context, acc float64) distribution.AttackDistribution {
	min := rational.FloorDiv(ctx.MaxHit*3, 20)
	max := ctx.MaxHit - min
	if max < min {
		max = min
	}
	return distribution.AttackDistribution{shiftedLinear(acc, min, max)}
}

func shiftedLinear(p float64, lo, hi int64) distribution.HitDistribution {
	base := distribution.Linear(1.0, 0, hi-lo)
	shifted := base.Transform(func(h distribution.Hit) distribution.HitDistribution {
		return distribution.Single(1.0, distribution.Hit{Damage: h.Damage + lo, Accurate: true})
	})
	return addMiss(shifted.ScaleProbability(p), 1-p)
}

func addMiss(d distribution.HitDistribution, missProb float64) distribution.HitDistribution {
	if missProb <= 0 {
		return d
	}
	return append(d, distribution.WeightedHit{
		Probability: missProb,
		Hitsplats:   []distribution.Hit{{Damage: 0, Accurate: false}},
	})
}
