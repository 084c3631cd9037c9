// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package rolls derives effective levels, max attack/defence rolls, and
// max hit from a player and monster view. Every function here is a pure
// projection: callers recompute whenever upstream player or monster
// state changes rather than mutating a cached field in place.
package rolls

import (
	"strings"

	"github.com/KirkDiggler/osrs-dps/equipment"
	"github.com/KirkDiggler/osrs-dps/monster"
	"github.com/KirkDiggler/osrs-dps/player"
	"github.com/KirkDiggler/osrs-dps/rational"
)

// monsterMagicDefenceExceptions lists monsters whose magic defence roll
// uses live Defence instead of live Magic, per the documented exception
// list in the roll formula.
var monsterMagicDefenceExceptions = map[string]bool{}

// RegisterMagicDefenceException marks a monster name as using its
// defence level (not magic level) for the magic defence roll.
func RegisterMagicDefenceException(monsterName string) {
	monsterMagicDefenceExceptions[monsterName] = true
}

// EffectiveAttack returns the effective attack level for melee/ranged
// rolls: floor(live * (100+prayer%)/100) + stance bonus.
func EffectiveAttack(live int64, prayerPercent int64, stance equipment.CombatStance) int64 {
	boosted := rational.Must(100+prayerPercent, 100).FloorMulInt(live)
	return boosted + equipment.StanceBonus(stance)
}

// EffectiveStrength returns the effective strength level: floor(live *
// (100+prayer%)/100) + soulreaper bonus + stance bonus.
func EffectiveStrength(live int64, prayerPercent int64, soulreaperBonus int64, stance equipment.CombatStance) int64 {
	boosted := rational.Must(100+prayerPercent, 100).FloorMulInt(live)
	return boosted + soulreaperBonus + equipment.StanceBonus(stance)
}

// EffectiveDefence returns the effective defence level: floor(live *
// (100+prayer%)/100) + stance bonus.
func EffectiveDefence(live int64, prayerPercent int64, stance equipment.CombatStance) int64 {
	boosted := rational.Must(100+prayerPercent, 100).FloorMulInt(live)
	return boosted + equipment.StanceBonus(stance)
}

// EffectiveMagic returns the effective magic level, applying mark-of-
// darkness and charge modifiers as additive percent boosts alongside
// prayer.
func EffectiveMagic(live int64, prayerPercent int64, markOfDarkness, chargeActive bool, stance equipment.CombatStance) int64 {
	percent := int64(100) + prayerPercent
	if markOfDarkness {
		percent += 15
	}
	if chargeActive {
		percent += 10
	}
	boosted := rational.Must(percent, 100).FloorMulInt(live)
	return boosted + equipment.StanceBonus(stance)
}

// voidMultiplier is applied to effective attack/strength AFTER prayer
// and stance when the matching void set is worn.
func voidMultiplier(p *player.Player) rational.Rational {
	switch {
	case p.SetEffects.FullEliteVoid:
		return rational.Must(1125, 1000)
	case p.SetEffects.FullVoid:
		return rational.Must(11, 10)
	default:
		return rational.One
	}
}

// MaxAttackRoll computes the max attack roll for a combat type:
// effective_level * (attack_bonus + 64), with void applied after prayer
// and stance (folded into effective_level by the caller's choice of
// whether to apply voidMultiplier before this call), then the gear
// multiplier chain (salve amulet, avarice, inquisitor's, DHCB, ...)
// applied last via gearMultiplier.
func MaxAttackRoll(effectiveLevel int64, attackBonus int64, gearMultiplier rational.Rational) int64 {
	base := effectiveLevel * (attackBonus + 64)
	return gearMultiplier.FloorMulInt(base)
}

// MaxHit computes floor(effective_strength*(strength_bonus+64)/640 + 0.5),
// equivalently the integer form (eff_str*(bonus+64)+320)/640, then
// applies gearMultiplier (the strength-side gear chain, which may
// include an additive obsidian or crystal bonus folded in by the
// caller via Rational.Add before this call).
func MaxHit(effectiveStrength int64, strengthBonus int64, gearMultiplier rational.Rational) int64 {
	numerator := effectiveStrength*(strengthBonus+64) + 320
	base := rational.FloorDiv(numerator, 640)
	return gearMultiplier.FloorMulInt(base)
}

// MeleeGearBonus returns the melee roll/max-hit multiplier contributed by
// salve amulet variants and the Amulet of avarice, checked in the
// priority order the source's melee_gear_bonus uses: avarice against
// revenants first (since it would otherwise also match a salve amulet's
// undead check), then salve against undead, then an on-task black mask
// or slayer helmet.
func MeleeGearBonus(p *player.Player, m *monster.Monster) rational.Rational {
	switch {
	case p.IsWearing("Amulet of avarice") && m.NameContains("Revenant"):
		if p.Status.ForinthrySurge {
			return rational.Must(135, 100)
		}
		return rational.Must(6, 5)
	case m.HasTag(monster.TagUndead) && p.IsWearingAny("Salve amulet (e)", "Salve amulet (ei)"):
		return rational.Must(6, 5)
	case m.HasTag(monster.TagUndead) && p.IsWearingAny("Salve amulet", "Salve amulet (i)"):
		return rational.Must(7, 6)
	case p.Status.OnTask && p.IsWearingAny("Black mask", "Black mask (i)", "Slayer helmet", "Slayer helmet (i)"):
		return rational.Must(7, 6)
	default:
		return rational.One
	}
}

// RangedGearBonus is MeleeGearBonus's ranged counterpart: avarice,
// imbued salve, an imbued on-task black mask/slayer helmet (at 115/100
// rather than melee's 7/6), plus an additive wilderness top-up of 1/2
// when a Craw's bow or Webweaver bow is also worn.
func RangedGearBonus(p *player.Player, m *monster.Monster) rational.Rational {
	switch {
	case p.IsWearing("Amulet of avarice") && m.NameContains("Revenant"):
		if p.Status.ForinthrySurge {
			return rational.Must(135, 100)
		}
		return rational.Must(6, 5)
	case m.HasTag(monster.TagUndead) && p.IsWearing("Salve amulet (ei)"):
		return rational.Must(6, 5)
	case m.HasTag(monster.TagUndead) && p.IsWearing("Salve amulet (i)"):
		return rational.Must(7, 6)
	case p.Status.OnTask && p.IsWearingAny("Black mask (i)", "Slayer helmet (i)"):
		bonus := rational.Must(115, 100)
		if p.Status.InWilderness && p.IsWearingAny("Craw's bow", "Webweaver bow") {
			bonus = bonus.Add(rational.Must(1, 2))
		}
		return bonus
	default:
		return rational.One
	}
}

// ObsidianBoost returns the obsidian armour set's additive melee damage
// bonus (+10%) for Tzhaar/Toktz-named weapons; zero for any other weapon
// or combat type, since the set's bonus is max-hit only, never accuracy.
func ObsidianBoost(p *player.Player, ct equipment.CombatType) rational.Rational {
	isMelee := ct == equipment.Stab || ct == equipment.Slash || ct == equipment.Crush
	weapon := strings.ToLower(p.Weapon.Name)
	isObsidianWeapon := strings.Contains(weapon, "tzhaar") || strings.Contains(weapon, "toktz")
	if p.SetEffects.FullObsidian && isMelee && isObsidianWeapon {
		return rational.Must(1, 10)
	}
	return Rational0
}

// inquisitorPieceBonus is the per-piece crush-only boost in thousandths;
// a full set instead grants inquisitorFullSetBonus, which is more than
// three times the per-piece rate.
const (
	inquisitorPieceBonus   = 5
	inquisitorFullSetBonus = 25
)

// InquisitorBoost returns the inquisitor's armour's additive crush-only
// strength bonus: 25/1000 with the full set worn, else 5/1000 per piece
// of head/body/legs worn individually.
func InquisitorBoost(p *player.Player) rational.Rational {
	if p.SetEffects.FullInquisitor {
		return rational.Must(1000+inquisitorFullSetBonus, 1000)
	}
	var pieces int64
	for _, slot := range []equipment.Slot{equipment.SlotHead, equipment.SlotBody, equipment.SlotLegs} {
		if item, ok := p.Gear[slot]; ok && strings.Contains(strings.ToLower(item.Name), "inquisitor") {
			pieces++
		}
	}
	return rational.Must(1000+inquisitorPieceBonus*pieces, 1000)
}

// CrystalBonus returns the crystal armour set's additive per-piece bonus
// in thousandths of the base roll (helm 25, body 75, legs 50), gated on
// wielding a crystal bow or bow of Faerdhinen — the armour alone grants
// nothing without the matching bow.
func CrystalBonus(p *player.Player) int64 {
	if !p.IsWearingAny("Crystal bow", "Bow of faerdhinen", "Bow of faerdhinen (c)") {
		return 0
	}
	var bonus int64
	if p.IsWearing("Crystal helm") {
		bonus += 25
	}
	if p.IsWearing("Crystal body") {
		bonus += 75
	}
	if p.IsWearing("Crystal legs") {
		bonus += 50
	}
	return bonus
}

// DragonHunterCrossbowBonus returns the Dragon hunter crossbow's
// multiplicative ranged bonus against Draconic-tagged targets: +30%
// accuracy, +25% damage. Returns zero for both when the weapon isn't
// equipped or the target isn't tagged TagDragon.
func DragonHunterCrossbowBonus(p *player.Player, m *monster.Monster) (accBonus, dmgBonus rational.Rational) {
	if p.Weapon.ID != equipment.WeaponDragonHunterXbow || !m.HasTag(monster.TagDragon) {
		return Rational0, Rational0
	}
	return rational.Must(3, 10), rational.Must(1, 4)
}

// Rational0 is the additive identity, used where a gear bonus is absent
// and the caller will Add it into a base multiplier.
var Rational0 = rational.Must(0, 1)

// EffectiveAttackForPlayer folds prayer, stance, and void together for
// the given combat type, in the documented order: prayer+stance first,
// void multiplier applied last.
func EffectiveAttackForPlayer(p *player.Player, ct equipment.CombatType, stance equipment.CombatStance) int64 {
	var prayerPct int64
	var live int64
	switch ct {
	case equipment.Ranged:
		prayerPct = p.PrayerRangedAttPercent()
		live = p.LiveStats.Ranged + p.PotionBoosts.Ranged
	case equipment.Magic:
		prayerPct = p.PrayerMagicPercent()
		live = p.LiveStats.Magic + p.PotionBoosts.Magic
	default:
		prayerPct = p.PrayerAttackPercent()
		live = p.LiveStats.Attack + p.PotionBoosts.Attack
	}
	base := EffectiveAttack(live, prayerPct, stance)
	return voidMultiplier(p).FloorMulInt(base)
}

// EffectiveStrengthForPlayer folds prayer, stance, soulreaper stacks,
// and void together for the given combat type.
func EffectiveStrengthForPlayer(p *player.Player, ct equipment.CombatType, stance equipment.CombatStance) int64 {
	soulreaper := p.Status.SoulreaperStacks * 6
	var base int64
	switch ct {
	case equipment.Ranged:
		live := p.LiveStats.Ranged + p.PotionBoosts.Ranged
		base = EffectiveAttack(live, p.PrayerRangedStrPercent(), stance)
	case equipment.Magic:
		live := p.LiveStats.Magic + p.PotionBoosts.Magic
		base = EffectiveAttack(live, p.PrayerMagicPercent(), stance)
	default:
		live := p.LiveStats.Strength + p.PotionBoosts.Strength
		base = EffectiveStrength(live, p.PrayerStrengthPercent(), soulreaper, stance)
	}
	return voidMultiplier(p).FloorMulInt(base)
}

// MonsterDefenceRoll computes (live_defence+9)*(defence_bonus+64), or for
// magic (live_magic+9)*(magic_defence_bonus+64) unless the monster is in
// the magic-defence-exception list, in which case live_defence is used.
// TOA scaling, when the monster has a nonzero ToaLevel, multiplies the
// result by (1000+4*toa_level)/1000.
func MonsterDefenceRoll(m *monster.Monster, ct equipment.CombatType) int64 {
	level := m.LiveStats.Defence
	if ct == equipment.Magic && !monsterMagicDefenceExceptions[m.Name] {
		level = m.LiveStats.Magic
	}
	roll := (level + 9) * (m.DefenceBonus[ct] + 64)
	if m.ToaLevel > 0 {
		scale := rational.Must(1000+4*int64(m.ToaLevel), 1000)
		roll = scale.FloorMulInt(roll)
	}
	return roll
}

// TwistedBowBonuses returns (acc_bonus, dmg_bonus) for twisted bow and
// Tumeken's shadow, driven by the target's magic level M, capped at 350
// for Xerician-tagged monsters else 250. The squared terms use
// floor(3M/10), so M=250 gives (140, 215).
func TwistedBowBonuses(magicLevel int64, isXerician bool) (acc int64, dmg int64) {
	cap := int64(250)
	if isXerician {
		cap = 350
	}
	m := magicLevel
	if m > cap {
		m = cap
	}
	t := rational.FloorDiv(3*m, 10)

	accRaw := 140 + rational.FloorDiv(3*m-10, 100) - rational.FloorDiv((t-100)*(t-100), 100)
	acc = accRaw
	if acc > 140 {
		acc = 140
	}

	dmgRaw := 250 + rational.FloorDiv(3*m-14, 100) - rational.FloorDiv((t-140)*(t-140), 100)
	dmg = dmgRaw
	if dmg > 250 {
		dmg = 250
	}
	return acc, dmg
}

// RoundToBucket implements the ToA HP-scaling rounding rule: unchanged
// below 100, nearest 5 below 300, else nearest 10.
func RoundToBucket(x int64) int64 {
	switch {
	case x < 100:
		return x
	case x < 300:
		return roundToNearest(x, 5)
	default:
		return roundToNearest(x, 10)
	}
}

func roundToNearest(x, step int64) int64 {
	half := step / 2
	return ((x + half) / step) * step
}

// ScaleToaHP scales a base HP by ToA level and path level, per §6's
// formula: level_factor is 4 for most monsters, 1 for "Core (Wardens)".
func ScaleToaHP(baseHP int64, toaLevel, pathLevel uint32, levelFactor int64) int64 {
	var pathBonus int64
	if pathLevel > 0 {
		pathBonus = 80 + (int64(pathLevel)-1)*50
	}
	levelScaled := rational.Must(1000+levelFactor*int64(toaLevel), 1000).FloorMulInt(baseHP)
	pathScaled := rational.Must(1000+pathBonus, 1000).FloorMulInt(levelScaled)
	return RoundToBucket(pathScaled)
}
