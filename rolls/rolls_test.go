// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rolls_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/osrs-dps/equipment"
	"github.com/KirkDiggler/osrs-dps/monster"
	"github.com/KirkDiggler/osrs-dps/player"
	"github.com/KirkDiggler/osrs-dps/rational"
	"github.com/KirkDiggler/osrs-dps/rolls"
)

type RollsTestSuite struct {
	suite.Suite
}

func TestRollsSuite(t *testing.T) {
	suite.Run(t, new(RollsTestSuite))
}

func (s *RollsTestSuite) TestEffectiveAttackAppliesPrayerAndStance() {
	// 99 * 1.20 = 118 (floor), + 11 stance (accurate)
	got := rolls.EffectiveAttack(99, 20, equipment.Accurate)
	s.Equal(int64(129), got)
}

func (s *RollsTestSuite) TestEffectiveAttackNoPrayerUsesDefaultStanceBonus() {
	got := rolls.EffectiveAttack(99, 0, equipment.Aggressive)
	s.Equal(int64(107), got)
}

func (s *RollsTestSuite) TestEffectiveStrengthIncludesSoulreaperBonus() {
	got := rolls.EffectiveStrength(99, 0, 18, equipment.Aggressive)
	s.Equal(int64(125), got) // 99 + 18 soulreaper + 8 stance
}

func (s *RollsTestSuite) TestEffectiveMagicAppliesMarkOfDarknessAndCharge() {
	base := rolls.EffectiveMagic(99, 0, false, false, equipment.Autocast)
	boosted := rolls.EffectiveMagic(99, 0, true, true, equipment.Autocast)
	s.Greater(boosted, base)
}

func (s *RollsTestSuite) TestMaxAttackRollMultipliesLevelByBonusPlusSixtyFour() {
	got := rolls.MaxAttackRoll(129, 120, rational.One)
	s.Equal(int64(129*(120+64)), got)
}

func (s *RollsTestSuite) TestMaxAttackRollAppliesGearMultiplier() {
	got := rolls.MaxAttackRoll(129, 120, rational.Must(7, 6))
	s.Equal(rational.Must(7, 6).FloorMulInt(129*(120+64)), got)
}

func (s *RollsTestSuite) TestMaxHitMatchesKnownFormula() {
	// effStr=118, bonus=99 -> (118*163+320)/640
	got := rolls.MaxHit(118, 99, rational.One)
	s.Equal(int64((118*163+320)/640), got)
}

func (s *RollsTestSuite) TestMaxHitAppliesGearMultiplier() {
	got := rolls.MaxHit(118, 99, rational.Must(11, 10))
	want := rational.Must(11, 10).FloorMulInt((118*163 + 320) / 640)
	s.Equal(want, got)
}

func (s *RollsTestSuite) TestEffectiveAttackForPlayerAppliesVoidMultiplier() {
	p := player.New(player.Stats{Ranged: 99})
	without := rolls.EffectiveAttackForPlayer(p, equipment.Ranged, equipment.Rapid)

	p.SetEffects.FullVoid = true
	withVoid := rolls.EffectiveAttackForPlayer(p, equipment.Ranged, equipment.Rapid)

	s.Greater(withVoid, without)
}

func (s *RollsTestSuite) TestEffectiveStrengthForPlayerAppliesSoulreaperStacks() {
	p := player.New(player.Stats{Strength: 99})
	base := rolls.EffectiveStrengthForPlayer(p, equipment.Stab, equipment.Aggressive)

	p.Status.SoulreaperStacks = 5
	boosted := rolls.EffectiveStrengthForPlayer(p, equipment.Stab, equipment.Aggressive)

	s.Equal(base+30, boosted)
}

func (s *RollsTestSuite) TestMonsterDefenceRollUsesMagicLevelForMagicCombatType() {
	m, err := monster.New("Test", "", 1, monster.Stats{HP: 10, Defence: 50, Magic: 30})
	s.Require().NoError(err)

	rollMagic := rolls.MonsterDefenceRoll(m, equipment.Magic)
	rollStab := rolls.MonsterDefenceRoll(m, equipment.Stab)
	s.NotEqual(rollMagic, rollStab)
	s.Equal((int64(30)+9)*64, rollMagic)
	s.Equal((int64(50)+9)*64, rollStab)
}

func (s *RollsTestSuite) TestMonsterDefenceRollRespectsMagicDefenceException() {
	rolls.RegisterMagicDefenceException("Dagannoth Prime")
	m, err := monster.New("Dagannoth Prime", "", 1, monster.Stats{HP: 10, Defence: 65, Magic: 5})
	s.Require().NoError(err)

	got := rolls.MonsterDefenceRoll(m, equipment.Magic)
	s.Equal((int64(65)+9)*64, got)
}

func (s *RollsTestSuite) TestMonsterDefenceRollAppliesToaScaling() {
	m, err := monster.New("Ba-Ba", "", 1, monster.Stats{HP: 10, Defence: 400})
	s.Require().NoError(err)
	unscaled := rolls.MonsterDefenceRoll(m, equipment.Stab)

	m.ToaLevel = 400
	scaled := rolls.MonsterDefenceRoll(m, equipment.Stab)
	s.Greater(scaled, unscaled)
}

func (s *RollsTestSuite) TestTwistedBowBonusesCapsAtTwoFiftyForNonXerician() {
	acc, dmg := rolls.TwistedBowBonuses(500, false)
	s.LessOrEqual(acc, int64(140))
	s.LessOrEqual(dmg, int64(250))
}

func (s *RollsTestSuite) TestTwistedBowBonusesAllowsHigherCapForXerician() {
	_, dmgXerician := rolls.TwistedBowBonuses(350, true)
	_, dmgNonXerician := rolls.TwistedBowBonuses(350, false)
	s.GreaterOrEqual(dmgXerician, dmgNonXerician)
}

func (s *RollsTestSuite) TestRoundToBucketBelowOneHundredIsUnchanged() {
	s.Equal(int64(42), rolls.RoundToBucket(42))
}

func (s *RollsTestSuite) TestRoundToBucketBelowThreeHundredRoundsToNearestFive() {
	s.Equal(int64(150), rolls.RoundToBucket(152))
}

func (s *RollsTestSuite) TestRoundToBucketAtOrAboveThreeHundredRoundsToNearestTen() {
	s.Equal(int64(350), rolls.RoundToBucket(353))
}

func (s *RollsTestSuite) TestScaleToaHPScalesByLevelAndPathFactors() {
	base := rolls.ScaleToaHP(100, 0, 0, 4)
	s.Equal(int64(100), base)

	scaled := rolls.ScaleToaHP(100, 300, 1, 4)
	s.Greater(scaled, base)
}

func newGearPlayer(weaponName string) *player.Player {
	p := player.New(player.Stats{Attack: 99, Strength: 99, Ranged: 99})
	p.Weapon = equipment.Weapon{Name: weaponName}
	return p
}

func (s *RollsTestSuite) TestMeleeGearBonusAppliesSalveAmuletAgainstUndead() {
	p := newGearPlayer("Ghrazi rapier")
	s.Require().NoError(p.EquipArmor(equipment.Armor{Name: "Salve amulet", Slot: equipment.SlotNeck}))
	m, err := monster.New("Zombie", "", 1, monster.Stats{HP: 10})
	s.Require().NoError(err)
	m.Tags[monster.TagUndead] = true

	got := rolls.MeleeGearBonus(p, m)
	s.Equal(rational.Must(7, 6), got)
}

func (s *RollsTestSuite) TestMeleeGearBonusPrefersAvariceOverSalveAgainstRevenants() {
	p := newGearPlayer("Ghrazi rapier")
	s.Require().NoError(p.EquipArmor(equipment.Armor{Name: "Amulet of avarice", Slot: equipment.SlotNeck}))
	m, err := monster.New("Revenant imp", "", 1, monster.Stats{HP: 10})
	s.Require().NoError(err)
	m.Tags[monster.TagUndead] = true

	got := rolls.MeleeGearBonus(p, m)
	s.Equal(rational.Must(6, 5), got)
}

func (s *RollsTestSuite) TestMeleeGearBonusForinthrySurgeBoostsAvarice() {
	p := newGearPlayer("Ghrazi rapier")
	s.Require().NoError(p.EquipArmor(equipment.Armor{Name: "Amulet of avarice", Slot: equipment.SlotNeck}))
	p.Status.ForinthrySurge = true
	m, err := monster.New("Revenant imp", "", 1, monster.Stats{HP: 10})
	s.Require().NoError(err)

	got := rolls.MeleeGearBonus(p, m)
	s.Equal(rational.Must(135, 100), got)
}

func (s *RollsTestSuite) TestMeleeGearBonusOnTaskBlackMask() {
	p := newGearPlayer("Ghrazi rapier")
	s.Require().NoError(p.EquipArmor(equipment.Armor{Name: "Black mask", Slot: equipment.SlotHead}))
	p.Status.OnTask = true
	m, err := monster.New("Goblin", "", 1, monster.Stats{HP: 10})
	s.Require().NoError(err)

	got := rolls.MeleeGearBonus(p, m)
	s.Equal(rational.Must(7, 6), got)
}

func (s *RollsTestSuite) TestMeleeGearBonusDefaultIsIdentity() {
	p := newGearPlayer("Ghrazi rapier")
	m, err := monster.New("Goblin", "", 1, monster.Stats{HP: 10})
	s.Require().NoError(err)

	s.Equal(rational.One, rolls.MeleeGearBonus(p, m))
}

func (s *RollsTestSuite) TestRangedGearBonusWildernessBowTopUp() {
	p := newGearPlayer("Craw's bow")
	s.Require().NoError(p.EquipArmor(equipment.Armor{Name: "Slayer helmet (i)", Slot: equipment.SlotHead}))
	p.Status.OnTask = true
	p.Status.InWilderness = true
	m, err := monster.New("Goblin", "", 1, monster.Stats{HP: 10})
	s.Require().NoError(err)

	got := rolls.RangedGearBonus(p, m)
	s.Equal(rational.Must(33, 20), got) // 115/100 + 1/2
}

func (s *RollsTestSuite) TestRangedGearBonusOnTaskWithoutWildernessBow() {
	p := newGearPlayer("Twisted bow")
	s.Require().NoError(p.EquipArmor(equipment.Armor{Name: "Slayer helmet (i)", Slot: equipment.SlotHead}))
	p.Status.OnTask = true
	m, err := monster.New("Goblin", "", 1, monster.Stats{HP: 10})
	s.Require().NoError(err)

	got := rolls.RangedGearBonus(p, m)
	s.Equal(rational.Must(115, 100), got)
}

func (s *RollsTestSuite) TestObsidianBoostRequiresFullSetAndMeleeAndTzhaarWeapon() {
	p := newGearPlayer("Tzhaar-ket-om")
	p.SetEffects.FullObsidian = true

	s.Equal(rational.Must(1, 10), rolls.ObsidianBoost(p, equipment.Crush))
	s.Equal(rolls.Rational0, rolls.ObsidianBoost(p, equipment.Ranged))

	p.SetEffects.FullObsidian = false
	s.Equal(rolls.Rational0, rolls.ObsidianBoost(p, equipment.Crush))
}

func (s *RollsTestSuite) TestInquisitorBoostFullSetBeatsPartialPieces() {
	p := newGearPlayer("Inquisitor's mace")
	s.Require().NoError(p.EquipArmor(equipment.Armor{Name: "Inquisitor's great helm", Slot: equipment.SlotHead}))
	s.Require().NoError(p.EquipArmor(equipment.Armor{Name: "Inquisitor's hauberk", Slot: equipment.SlotBody}))
	partial := rolls.InquisitorBoost(p)
	s.Equal(rational.Must(1010, 1000), partial)

	p.SetEffects.FullInquisitor = true
	full := rolls.InquisitorBoost(p)
	s.Equal(rational.Must(1025, 1000), full)
	s.Greater(full.Float64(), partial.Float64())
}

func (s *RollsTestSuite) TestCrystalBonusSumsBowAndArmourPieces() {
	p := newGearPlayer("Bow of faerdhinen")
	s.Require().NoError(p.EquipArmor(equipment.Armor{Name: "Crystal helm", Slot: equipment.SlotHead}))
	s.Require().NoError(p.EquipArmor(equipment.Armor{Name: "Crystal body", Slot: equipment.SlotBody}))
	s.Require().NoError(p.EquipArmor(equipment.Armor{Name: "Crystal legs", Slot: equipment.SlotLegs}))

	s.Equal(int64(150), rolls.CrystalBonus(p)) // 25 + 75 + 50
}

func (s *RollsTestSuite) TestCrystalBonusRequiresCrystalBow() {
	p := newGearPlayer("Magic shortbow")
	s.Require().NoError(p.EquipArmor(equipment.Armor{Name: "Crystal helm", Slot: equipment.SlotHead}))
	s.Equal(int64(0), rolls.CrystalBonus(p))
}

func (s *RollsTestSuite) TestDragonHunterCrossbowBonusRequiresDragonTag() {
	p := newGearPlayer("Dragon hunter crossbow")
	p.Weapon.ID = equipment.WeaponDragonHunterXbow
	dragon, err := monster.New("Baby red dragon", "", 1, monster.Stats{HP: 10})
	s.Require().NoError(err)
	dragon.Tags[monster.TagDragon] = true

	acc, dmg := rolls.DragonHunterCrossbowBonus(p, dragon)
	s.Equal(rational.Must(3, 10), acc)
	s.Equal(rational.Must(1, 4), dmg)

	nonDragon, err := monster.New("Goblin", "", 1, monster.Stats{HP: 10})
	s.Require().NoError(err)
	accZero, dmgZero := rolls.DragonHunterCrossbowBonus(p, nonDragon)
	s.Equal(rolls.Rational0, accZero)
	s.Equal(rolls.Rational0, dmgZero)
}
