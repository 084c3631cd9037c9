// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package player_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/osrs-dps/equipment"
	"github.com/KirkDiggler/osrs-dps/player"
	"github.com/KirkDiggler/osrs-dps/rpgerr"
)

type PlayerTestSuite struct {
	suite.Suite
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerTestSuite))
}

func (s *PlayerTestSuite) TestNewSeedsLiveStatsFromBase() {
	p := player.New(player.Stats{Attack: 99, Strength: 99, Defence: 99, Ranged: 99, Magic: 99, Hitpoints: 99})
	s.Equal(p.BaseStats, p.LiveStats)
}

func (s *PlayerTestSuite) TestEquipWeaponRejectsTwoHandedWithShieldEquipped() {
	p := player.New(player.Stats{Hitpoints: 99})
	s.Require().NoError(p.EquipArmor(equipment.Armor{Name: "Dragonfire shield", Slot: equipment.SlotShield}))

	err := p.EquipWeapon(equipment.Weapon{Name: "Scythe of vitur", TwoHanded: true})
	s.Error(err)
	s.True(rpgerr.IsInvalidConfiguration(err))
}

func (s *PlayerTestSuite) TestEquipArmorRejectsShieldWithTwoHandedWeaponEquipped() {
	p := player.New(player.Stats{Hitpoints: 99})
	s.Require().NoError(p.EquipWeapon(equipment.Weapon{Name: "Scythe of vitur", TwoHanded: true}))

	err := p.EquipArmor(equipment.Armor{Name: "Dragonfire shield", Slot: equipment.SlotShield})
	s.Error(err)
	s.True(rpgerr.IsInvalidConfiguration(err))
}

func (s *PlayerTestSuite) TestEquipWeaponAllowsOneHandedAlongsideShield() {
	p := player.New(player.Stats{Hitpoints: 99})
	s.Require().NoError(p.EquipArmor(equipment.Armor{Name: "Dragonfire shield", Slot: equipment.SlotShield}))
	err := p.EquipWeapon(equipment.Weapon{Name: "Ghrazi rapier", TwoHanded: false})
	s.NoError(err)
}

func (s *PlayerTestSuite) TestRecomputeBonusesSumsWeaponAndArmor() {
	p := player.New(player.Stats{Hitpoints: 99})
	s.Require().NoError(p.EquipWeapon(equipment.Weapon{
		Name: "Ghrazi rapier",
		Bonuses: equipment.Bonuses{
			Attack:   map[equipment.CombatType]int64{equipment.Stab: 120},
			Strength: equipment.StrengthBonus{Melee: 99},
		},
	}))
	s.Require().NoError(p.EquipArmor(equipment.Armor{
		Name: "Torva full helm",
		Slot: equipment.SlotHead,
		Bonuses: equipment.Bonuses{
			Attack: map[equipment.CombatType]int64{equipment.Stab: 15},
		},
	}))
	p.RecomputeBonuses()

	s.Equal(int64(135), p.Bonuses.Attack[equipment.Stab])
	s.Equal(int64(99), p.Bonuses.Strength.Melee)
}

func (s *PlayerTestSuite) TestResetRestoresBaseStatsAndClearsBoostsAndSetsFirstAttack() {
	p := player.New(player.Stats{Attack: 99, Hitpoints: 99})
	p.LiveStats.Attack = 50
	p.PotionBoosts.Attack = 13
	p.Status.FirstAttack = false

	p.Reset()

	s.Equal(p.BaseStats, p.LiveStats)
	s.Equal(player.PotionBoosts{}, p.PotionBoosts)
	s.True(p.Status.FirstAttack)
}

func (s *PlayerTestSuite) TestTakeDamageSaturatesAtZero() {
	p := player.New(player.Stats{Hitpoints: 10})
	p.TakeDamage(100)
	s.Equal(int64(0), p.LiveStats.Hitpoints)
}

func (s *PlayerTestSuite) TestHealSaturatesAtBaseMaxHitpoints() {
	p := player.New(player.Stats{Hitpoints: 10})
	p.TakeDamage(5)
	p.Heal(100)
	s.Equal(int64(10), p.LiveStats.Hitpoints)
}

func (s *PlayerTestSuite) TestPrayerPercentSumsAcrossActivePrayers() {
	p := player.New(player.Stats{Hitpoints: 99})
	p.ActivePrayers["piety"] = equipment.Prayer{
		Name: "Piety", AttackPercent: 20, StrengthPercent: 23, DefencePercent: 25,
	}
	p.ActivePrayers["rigour"] = equipment.Prayer{
		Name: "Rigour", RangedAttPercent: 20, RangedStrPercent: 23, DefencePercent: 25,
	}

	s.Equal(int64(20), p.PrayerAttackPercent())
	s.Equal(int64(23), p.PrayerStrengthPercent())
	s.Equal(int64(20), p.PrayerRangedAttPercent())
	s.Equal(int64(23), p.PrayerRangedStrPercent())
	s.Equal(int64(50), p.PrayerDefencePercent())
	s.Equal(int64(0), p.PrayerMagicPercent())
}
