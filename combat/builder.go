// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package combat orchestrates stat boost assembly, roll computation,
// accuracy, transformers, and limiters into the per-action
// AttackDistribution the TTK solver and simulator both consume. This is
// the `compute_distribution` entry point named in the specification's
// external interface.
package combat

import (
	"github.com/KirkDiggler/osrs-dps/accuracy"
	"github.com/KirkDiggler/osrs-dps/distribution"
	"github.com/KirkDiggler/osrs-dps/equipment"
	"github.com/KirkDiggler/osrs-dps/limiters"
	"github.com/KirkDiggler/osrs-dps/monster"
	"github.com/KirkDiggler/osrs-dps/player"
	"github.com/KirkDiggler/osrs-dps/rational"
	"github.com/KirkDiggler/osrs-dps/rolls"
	"github.com/KirkDiggler/osrs-dps/rpgerr"
	"github.com/KirkDiggler/osrs-dps/transformers"
)

// Request configures one compute_distribution call: which combat type
// and stance the player is using, plus any situational flags the
// transformer/limiter tables need that aren't derivable from Player or
// Monster alone.
type Request struct {
	CombatType   equipment.CombatType
	Stance       equipment.CombatStance
	IsToaMonster bool
	UsingFangTwoRoll bool
	UsingZCBSpec bool
	Bolt         equipment.BoltID
	UsingZCB     bool
	KandarinDiary bool
	MiningLevel  int64
	PickaxeBonus int64
	UsedFireSpell bool
	IsCorpbaneWeapon bool
	CrumbleUndeadActive bool
	BrutalRangedAmmo bool
	CompOgreBow  bool
}

// Result bundles the computed rolls alongside the final distribution,
// since callers (TTK solver, simulator) need the rolls for DPS/HTK math
// too.
type Result struct {
	MaxAttackRoll  int64
	MaxDefenceRoll int64
	MaxHit         int64
	Accuracy       float64
	Distribution   distribution.AttackDistribution
}

// ComputeDistribution derives the full AttackDistribution for one player
// attacking one monster under the given request configuration.
func ComputeDistribution(p *player.Player, m *monster.Monster, req Request) (Result, error) {
	if p.Weapon.SpeedTicks < 1 {
		return Result{}, rpgerr.New(rpgerr.CodeInvalidConfiguration, "combat: weapon speed must be >= 1 tick",
			rpgerr.WithMeta("weapon", p.Weapon.Name))
	}
	if m.BaseStats.HP <= 0 {
		return Result{}, rpgerr.New(rpgerr.CodeInvalidConfiguration, "combat: monster has no hitpoints",
			rpgerr.WithMeta("monster", m.Name))
	}

	// HP-scaled bosses (Vardorvis) project their live strength/defence
	// from the current-HP table rather than a fixed live stat.
	if entry, ok := m.ScaleEntryForHP(); ok {
		m.LiveStats.Strength = entry.Strength
		m.LiveStats.Defence = entry.Defence
	}

	effAtt := rolls.EffectiveAttackForPlayer(p, req.CombatType, req.Stance)
	effStr := rolls.EffectiveStrengthForPlayer(p, req.CombatType, req.Stance)

	attackBonus := p.Bonuses.Attack[req.CombatType]
	strengthBonus := strengthBonusFor(p, req.CombatType)

	accMult, dmgMult := gearMultipliers(p, m, req.CombatType)

	maxAttRoll := rolls.MaxAttackRoll(effAtt, attackBonus, accMult)
	maxHit := rolls.MaxHit(effStr, strengthBonus, dmgMult)
	maxDefRoll := rolls.MonsterDefenceRoll(m, req.CombatType)

	isImmune := m.IsImmuneTo(req.CombatType)

	acc := resolveAccuracy(maxAttRoll, maxDefRoll, req)

	base := baselineDistribution(p, m, req, maxHit, acc)

	ctx := transformers.Context{
		Player:       p,
		Monster:      m,
		CombatType:   req.CombatType,
		MaxHit:       maxHit,
		Accuracy:     acc,
		MiningLevel:  req.MiningLevel,
		PickaxeBonus: req.PickaxeBonus,
		UsingZCBSpec: req.UsingZCBSpec,
	}

	dist := applyTransformers(ctx, req, base)

	limCtx := limiters.Context{
		MonsterName:      m.Name,
		CombatType:       req.CombatType,
		UsedFire:         req.UsedFireSpell,
		HasPickaxe:       p.Weapon.StyleClass == equipment.ClassPickaxe,
		CrumbleUndead:    req.CrumbleUndeadActive,
		BrutalRangedAmmo: req.BrutalRangedAmmo,
		CompOgreBow:      req.CompOgreBow,
		IsImmune:         isImmune,
	}
	dist = limiters.Apply(limCtx, dist)

	return Result{
		MaxAttackRoll:  maxAttRoll,
		MaxDefenceRoll: maxDefRoll,
		MaxHit:         maxHit,
		Accuracy:       acc,
		Distribution:   dist,
	}, nil
}

// gearMultipliers composes the documented chain of gear-based roll and
// max-hit multipliers into one accuracy-roll multiplier and one
// damage-roll multiplier, mirroring melee_gear_bonus/ranged_gear_bonus/
// obsidian_boost/inquisitor_boost/crystal_bonus. The source applies an
// extra unconditional /1000 to every melee combat type's attack roll
// (not just Crush, where inquisitor_boost is genuinely thousandths-
// scaled); that divides Stab/Slash rolls by an unintended extra 1000 and
// is not reproduced here — the inquisitor multiplier is applied only to
// Crush, as its own in-game set bonus describes.
func gearMultipliers(p *player.Player, m *monster.Monster, ct equipment.CombatType) (acc, dmg rational.Rational) {
	switch ct {
	case equipment.Ranged:
		gearAcc := rolls.RangedGearBonus(p, m)
		gearDmg := gearAcc

		dhcbAcc, dhcbDmg := rolls.DragonHunterCrossbowBonus(p, m)
		gearAcc = gearAcc.Add(dhcbAcc)
		gearDmg = gearDmg.Add(dhcbDmg)

		crystal := rolls.CrystalBonus(p)
		acc = gearAcc.Mul(rational.Must(1000+2*crystal, 1000))
		dmg = gearDmg.Mul(rational.Must(1000+crystal, 1000))

		if p.Weapon.ID == equipment.WeaponTwistedBow {
			tbowAcc, tbowDmg := rolls.TwistedBowBonuses(m.LiveStats.Magic, m.HasTag(monster.TagXerician))
			acc = acc.Mul(rational.Must(tbowAcc, 100))
			dmg = dmg.Mul(rational.Must(tbowDmg, 100))
		}
		return acc, dmg

	case equipment.Magic:
		// Magic's own gear-bonus chain (Tumeken's shadow, elemental
		// staves) has no source to mirror: the reference player_magic_
		// att_roll/player_magic_max_hit are both unimplemented stubs.
		return rational.One, rational.One

	default:
		gearBonus := rolls.MeleeGearBonus(p, m)
		obsidian := rolls.ObsidianBoost(p, ct)
		acc = gearBonus
		dmg = gearBonus.Add(obsidian)

		if ct == equipment.Crush {
			inquisitor := rolls.InquisitorBoost(p)
			acc = acc.Mul(inquisitor)
			dmg = dmg.Mul(inquisitor)
		}
		return acc, dmg
	}
}

func strengthBonusFor(p *player.Player, ct equipment.CombatType) int64 {
	switch ct {
	case equipment.Ranged:
		return p.Bonuses.Strength.Ranged
	case equipment.Magic:
		return 0 // no magic strength bonus is applied: magic max hit comes from the magic level alone
	default:
		return p.Bonuses.Strength.Melee
	}
}

func resolveAccuracy(a, d int64, req Request) float64 {
	if req.UsingFangTwoRoll {
		return accuracy.Fang(a, d, req.IsToaMonster)
	}
	return accuracy.Standard(a, d)
}

func baselineDistribution(p *player.Player, m *monster.Monster, req Request, maxHit int64, acc float64) distribution.AttackDistribution {
	switch {
	case p.Weapon.ID == equipment.WeaponScytheOfVitur && req.CombatType != equipment.Magic && req.CombatType != equipment.Ranged:
		return transformers.Scythe(transformers.Context{MaxHit: maxHit, Accuracy: acc}, m.Size)
	case p.Weapon.ID == equipment.WeaponDualMacuahuitl && req.CombatType != equipment.Magic && req.CombatType != equipment.Ranged:
		return transformers.DualMacuahuitl(transformers.Context{MaxHit: maxHit, Accuracy: acc})
	case p.Weapon.ID == equipment.WeaponOsmumtensFang && req.CombatType == equipment.Stab:
		return transformers.FangMelee(transformers.Context{MaxHit: maxHit}, acc)
	default:
		return transformers.Standard(maxHit, acc)
	}
}

func applyTransformers(ctx transformers.Context, req Request, in distribution.AttackDistribution) distribution.AttackDistribution {
	if out := transformers.OneHit(ctx, in); out != nil {
		return out
	}
	out := in
	out = transformers.SunfireFireSpell(ctx, out)
	out = transformers.Dharoks(ctx, out)
	out = transformers.Veracs(ctx, out)
	out = transformers.Karils(ctx, out)
	out = transformers.Ahrims(ctx, out)
	out = transformers.Gadderhammer(ctx, out)
	out = transformers.KerisOnKalphite(ctx, out)
	out = transformers.ChambersGuardianPickaxe(ctx, out)
	out = transformers.IceDemonFire(ctx, req.UsedFireSpell, out)

	if req.CombatType == equipment.Ranged && req.Bolt != "" {
		out = transformers.ApplyBoltProc(ctx, transformers.BoltProcContext{
			Bolt:          req.Bolt,
			RangedLevel:   ctx.Player.LiveStats.Ranged + ctx.Player.PotionBoosts.Ranged,
			UsingZCB:      req.UsingZCB,
			KandarinDiary: req.KandarinDiary,
		}, out)
	}

	out = transformers.CorporealBeastNonCorpbane(ctx, req.IsCorpbaneWeapon, out)
	if m := ctx.Monster; m.NameContains("Verzik") &&
		(m.NameContains("P1") || m.NameContains("Phase 1") || m.Version == "P1" || m.Version == "Phase 1") {
		out = transformers.VerzikP1Cap(ctx, out)
	}
	return out
}
