// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package monster models the defender side of a combat query: base and
// live stats, tags, immunities, and the HP-dependent scaling tables used
// by bosses like Vardorvis and by the ToA raid.
package monster

import (
	"strings"

	"github.com/KirkDiggler/osrs-dps/equipment"
	"github.com/KirkDiggler/osrs-dps/rational"
	"github.com/KirkDiggler/osrs-dps/rpgerr"
)

// Tag is a case-insensitive monster attribute used by transformers and
// limiters (Dragon-hunter crossbow, keris-on-kalphite, ice demon fire...).
type Tag string

const (
	TagDragon    Tag = "dragon"
	TagDemon     Tag = "demon"
	TagUndead    Tag = "undead"
	TagKalphite  Tag = "kalphite"
	TagLeafy     Tag = "leafy"
	TagGolem     Tag = "golem"
	TagFiery     Tag = "fiery"
	TagShade     Tag = "shade"
	TagXerician  Tag = "xerician"
	TagRat       Tag = "rat"
	TagIcy       Tag = "icy"
	TagSpectral  Tag = "spectral"
	TagPenance   Tag = "penance"
	TagVampyre1  Tag = "vampyre1"
	TagVampyre2  Tag = "vampyre2"
	TagVampyre3  Tag = "vampyre3"
)

// Stats is the six base combat levels of a monster.
type Stats struct {
	HP      int64
	Attack  int64
	Strength int64
	Defence int64
	Ranged  int64
	Magic   int64
}

// Immunities records what a monster shrugs off entirely or partially.
type Immunities struct {
	Poison bool
	Venom  bool
	Cannon bool
	Thrall bool
	Freeze uint8 // 0..100, percent resistance
	Melee  bool
	Ranged bool
	Magic  bool
}

// HpScalingEntry is one row of an HP-indexed stat table: at a given
// current HP, a boss's effective strength/defence/max-hit/def-rolls.
type HpScalingEntry struct {
	Strength    int64
	Defence     int64
	MaxHit      int64
	DefRolls    map[equipment.CombatType]int64
}

// Monster is the mutable defender state. BaseStats never change after
// construction; LiveStats is drained/healed/scaled over a fight.
type Monster struct {
	Name         string
	Version      string
	Size         uint8
	Tags         map[Tag]bool
	BaseStats    Stats
	LiveStats    Stats
	AttackBonus  map[equipment.CombatType]int64
	StrengthBonus map[equipment.CombatType]int64
	DefenceBonus map[equipment.CombatType]int64
	FlatArmour   uint32
	Immunities   Immunities
	ToaLevel     uint32
	ToaPathLevel uint32

	// HpScalingTable, when non-nil, is consulted by index [0..max_hp]
	// instead of the monster's static LiveStats for strength/defence.
	HpScalingTable []HpScalingEntry
}

// New constructs a Monster with live stats equal to base stats.
func New(name, version string, size uint8, base Stats) (*Monster, error) {
	if size == 0 {
		return nil, rpgerr.New(rpgerr.CodeInvalidConfiguration, "monster: size must be >= 1",
			rpgerr.WithMeta("name", name))
	}
	if base.HP <= 0 {
		return nil, rpgerr.New(rpgerr.CodeInvalidConfiguration, "monster: base HP must be positive",
			rpgerr.WithMeta("name", name))
	}
	return &Monster{
		Name:          name,
		Version:       version,
		Size:          size,
		Tags:          map[Tag]bool{},
		BaseStats:     base,
		LiveStats:     base,
		AttackBonus:   map[equipment.CombatType]int64{},
		StrengthBonus: map[equipment.CombatType]int64{},
		DefenceBonus:  map[equipment.CombatType]int64{},
	}, nil
}

// HasTag reports whether the monster carries the given attribute.
func (m *Monster) HasTag(t Tag) bool {
	return m.Tags[t]
}

// NameContains is a case-insensitive substring check against the
// monster's display name, used by transformers that key on name
// fragments (e.g. "Guardian (Chambers", "Ice demon").
func (m *Monster) NameContains(fragment string) bool {
	return strings.Contains(strings.ToLower(m.Name), strings.ToLower(fragment))
}

// Reset restores live stats to base and clears any accumulated scaling.
func (m *Monster) Reset() {
	m.LiveStats = m.BaseStats
}

// TakeDamage reduces current HP, saturating at zero.
func (m *Monster) TakeDamage(amount int64) {
	m.LiveStats.HP = rational.ClampedSub(m.LiveStats.HP, amount)
}

// Heal increases current HP, saturating at base max HP.
func (m *Monster) Heal(amount int64) {
	m.LiveStats.HP = rational.ClampedAdd(m.LiveStats.HP, amount, m.BaseStats.HP)
}

// DrainStat reduces one of the tracked live stats, saturating at zero.
// Returns OutOfRange if the monster has no tracked field for stat.
func (m *Monster) DrainStat(stat string, amount int64) error {
	switch stat {
	case "attack":
		m.LiveStats.Attack = rational.ClampedSub(m.LiveStats.Attack, amount)
	case "strength":
		m.LiveStats.Strength = rational.ClampedSub(m.LiveStats.Strength, amount)
	case "defence":
		m.LiveStats.Defence = rational.ClampedSub(m.LiveStats.Defence, amount)
	case "ranged":
		m.LiveStats.Ranged = rational.ClampedSub(m.LiveStats.Ranged, amount)
	case "magic":
		m.LiveStats.Magic = rational.ClampedSub(m.LiveStats.Magic, amount)
	default:
		return rpgerr.New(rpgerr.CodeOutOfRange, "monster: unknown drainable stat",
			rpgerr.WithMeta("stat", stat))
	}
	return nil
}

// IsImmuneTo reports whether the monster fully resists a combat type.
func (m *Monster) IsImmuneTo(ct equipment.CombatType) bool {
	switch ct {
	case equipment.Stab, equipment.Slash, equipment.Crush:
		return m.Immunities.Melee
	case equipment.Ranged:
		return m.Immunities.Ranged
	case equipment.Magic:
		return m.Immunities.Magic
	default:
		return false
	}
}

// ScaleEntryForHP returns the HP-scaling entry for the monster's current
// HP, when an HpScalingTable is configured. ok is false otherwise.
func (m *Monster) ScaleEntryForHP() (HpScalingEntry, bool) {
	if m.HpScalingTable == nil {
		return HpScalingEntry{}, false
	}
	idx := m.LiveStats.HP
	if idx < 0 {
		idx = 0
	}
	if int(idx) >= len(m.HpScalingTable) {
		idx = int64(len(m.HpScalingTable) - 1)
	}
	return m.HpScalingTable[idx], true
}

// vardorvisParams are the literal lerp endpoints for each Vardorvis
// version, per the wiki-sourced HP scaling table.
type vardorvisParams struct {
	MaxHP   int64
	StrLo   int64
	StrHi   int64
	DefLo   int64
	DefHi   int64
}

var vardorvisVersions = map[string]vardorvisParams{
	"quest":    {MaxHP: 500, StrLo: 210, StrHi: 280, DefLo: 180, DefHi: 130},
	"awakened": {MaxHP: 1400, StrLo: 391, StrHi: 522, DefLo: 268, DefHi: 181},
	"default":  {MaxHP: 700, StrLo: 270, StrHi: 360, DefLo: 215, DefHi: 145},
}

// lerp interpolates linearly as HP falls from max toward 0: at HP=max
// the result is lo, at HP=0 the result is hi (stats rise as HP drops).
func lerp(hp, max, lo, hi int64) int64 {
	if max == 0 {
		return lo
	}
	// result = lo + (max-hp)/max * (hi-lo)
	num := (max-hp)*(hi-lo) + lo*max
	return rational.FloorDiv(num, max)
}

// BuildVardorvisHpScalingTable constructs the per-HP strength/defence
// table for a Vardorvis version ("quest", "awakened", or "" for default).
func BuildVardorvisHpScalingTable(version string) []HpScalingEntry {
	p, ok := vardorvisVersions[strings.ToLower(version)]
	if !ok {
		p = vardorvisVersions["default"]
	}
	table := make([]HpScalingEntry, p.MaxHP+1)
	for hp := int64(0); hp <= p.MaxHP; hp++ {
		str := lerp(hp, p.MaxHP, p.StrLo, p.StrHi)
		def := lerp(hp, p.MaxHP, p.DefLo, p.DefHi)
		table[hp] = HpScalingEntry{
			Strength: str,
			Defence:  def,
		}
	}
	return table
}
