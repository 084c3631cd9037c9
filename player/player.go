// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package player models the attacker side of a combat query: base and
// live levels, equipped gear, active prayers and potion boosts, set
// effects, and transient status flags consumed by the rolls and
// transformers packages.
package player

import (
	"strings"

	"github.com/KirkDiggler/osrs-dps/equipment"
	"github.com/KirkDiggler/osrs-dps/rational"
	"github.com/KirkDiggler/osrs-dps/rpgerr"
)

// Stats is the six trainable combat levels.
type Stats struct {
	Attack    int64
	Strength  int64
	Defence   int64
	Ranged    int64
	Magic     int64
	Hitpoints int64
}

// SetEffects records which full equipment sets are active. Callers set
// these flags directly; nothing in this package derives them from Gear.
type SetEffects struct {
	FullDharoks      bool
	FullVeracs       bool
	FullKarils       bool
	FullGuthans      bool
	FullTorags       bool
	FullAhrims       bool
	FullVoid         bool
	FullEliteVoid    bool
	FullInquisitor   bool
	FullJusticiar    bool
	FullObsidian     bool
	FullBloodMoon    bool
	FullBlueMoon     bool
	FullEclipseMoon  bool
}

// Status holds transient world-state and conditional boosts.
type Status struct {
	OnTask          bool
	InWilderness    bool
	SunfireRunes    bool
	KandarinDiary   bool
	ForinthrySurge  bool
	ChargeActive    bool
	MarkOfDarkness  bool
	SoulreaperStacks int64
	FirstAttack     bool
}

// PotionBoosts is the additive per-stat boost currently active from
// consumed potions (Super combat, ranging potion, Smelling salts, ...).
type PotionBoosts struct {
	Attack   int64
	Strength int64
	Defence  int64
	Ranged   int64
	Magic    int64
}

// Player is the mutable attacker state.
type Player struct {
	BaseStats    Stats
	LiveStats    Stats
	Gear         map[equipment.Slot]equipment.Armor
	Weapon       equipment.Weapon
	Bonuses      equipment.Bonuses
	ActivePrayers map[string]equipment.Prayer
	PotionBoosts PotionBoosts
	Status       Status
	SetEffects   SetEffects
	ActiveSpell  *equipment.Spell
	ActiveStyle  string

	// AttRolls and MaxHits are derived projections, recomputed by the
	// rolls package whenever upstream state changes; they are cached
	// here purely to avoid recomputation across repeated queries.
	AttRolls map[equipment.CombatType]int64
	MaxHits  map[equipment.CombatType]int64
}

// New constructs a Player with live stats equal to base stats and no
// gear equipped.
func New(base Stats) *Player {
	return &Player{
		BaseStats:     base,
		LiveStats:     base,
		Gear:          map[equipment.Slot]equipment.Armor{},
		Bonuses:       equipment.NewBonuses(),
		ActivePrayers: map[string]equipment.Prayer{},
		AttRolls:      map[equipment.CombatType]int64{},
		MaxHits:       map[equipment.CombatType]int64{},
	}
}

// EquipWeapon sets the wielded weapon, validating the two-handed/shield
// slot exclusivity invariant.
func (p *Player) EquipWeapon(w equipment.Weapon) error {
	if w.TwoHanded {
		if _, occupied := p.Gear[equipment.SlotShield]; occupied {
			return rpgerr.New(rpgerr.CodeInvalidConfiguration,
				"player: two-handed weapon cannot be equipped with a shield",
				rpgerr.WithMeta("weapon", w.Name))
		}
	}
	p.Weapon = w
	return nil
}

// EquipArmor places an armour piece into its slot, validating that a
// shield is not equipped alongside a two-handed weapon.
func (p *Player) EquipArmor(a equipment.Armor) error {
	if a.Slot == equipment.SlotShield && p.Weapon.TwoHanded {
		return rpgerr.New(rpgerr.CodeInvalidConfiguration,
			"player: shield slot is occupied by a two-handed weapon",
			rpgerr.WithMeta("item", a.Name))
	}
	p.Gear[a.Slot] = a
	return nil
}

// RecomputeBonuses sums the weapon and all equipped armour into
// p.Bonuses. Call after any Equip* mutation.
func (p *Player) RecomputeBonuses() {
	total := p.Weapon.Bonuses
	for _, item := range p.Gear {
		total = total.Add(item.Bonuses)
	}
	p.Bonuses = total
}

// Reset restores live stats to base, clears potion boosts, and sets
// first_attack back to true.
func (p *Player) Reset() {
	p.LiveStats = p.BaseStats
	p.PotionBoosts = PotionBoosts{}
	p.Status.FirstAttack = true
}

// TakeDamage reduces current hitpoints, saturating at zero.
func (p *Player) TakeDamage(amount int64) {
	p.LiveStats.Hitpoints = rational.ClampedSub(p.LiveStats.Hitpoints, amount)
}

// Heal increases current hitpoints, saturating at base max hitpoints.
func (p *Player) Heal(amount int64) {
	p.LiveStats.Hitpoints = rational.ClampedAdd(p.LiveStats.Hitpoints, amount, p.BaseStats.Hitpoints)
}

// IsWearing reports whether the wielded weapon or any equipped armour
// piece's name contains fragment, case-insensitively. Used by the gear-
// multiplier chain to recognize salve amulet variants, the avarice
// amulet, slayer helms, and set pieces by name rather than by slot.
func (p *Player) IsWearing(fragment string) bool {
	needle := strings.ToLower(fragment)
	if strings.Contains(strings.ToLower(p.Weapon.Name), needle) {
		return true
	}
	for _, item := range p.Gear {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			return true
		}
	}
	return false
}

// IsWearingAny reports whether any of fragments matches per IsWearing.
func (p *Player) IsWearingAny(fragments ...string) bool {
	for _, f := range fragments {
		if p.IsWearing(f) {
			return true
		}
	}
	return false
}

// PrayerAttackPercent sums the attack-boost percent across active prayers.
func (p *Player) PrayerAttackPercent() int64 {
	var total int64
	for _, pr := range p.ActivePrayers {
		total += pr.AttackPercent
	}
	return total
}

// PrayerStrengthPercent sums the strength-boost percent across active prayers.
func (p *Player) PrayerStrengthPercent() int64 {
	var total int64
	for _, pr := range p.ActivePrayers {
		total += pr.StrengthPercent
	}
	return total
}

// PrayerRangedAttPercent sums the ranged-attack-boost percent across active prayers.
func (p *Player) PrayerRangedAttPercent() int64 {
	var total int64
	for _, pr := range p.ActivePrayers {
		total += pr.RangedAttPercent
	}
	return total
}

// PrayerRangedStrPercent sums the ranged-strength-boost percent across active prayers.
func (p *Player) PrayerRangedStrPercent() int64 {
	var total int64
	for _, pr := range p.ActivePrayers {
		total += pr.RangedStrPercent
	}
	return total
}

// PrayerMagicPercent sums the magic-damage-boost percent across active prayers.
func (p *Player) PrayerMagicPercent() int64 {
	var total int64
	for _, pr := range p.ActivePrayers {
		total += pr.MagicPercent
	}
	return total
}

// PrayerDefencePercent sums the defence-boost percent across active prayers.
func (p *Player) PrayerDefencePercent() int64 {
	var total int64
	for _, pr := range p.ActivePrayers {
		total += pr.DefencePercent
	}
	return total
}
