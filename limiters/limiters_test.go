package limiters_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/osrs-dps/distribution"
	"github.com/KirkDiggler/osrs-dps/equipment"
	"github.com/KirkDiggler/osrs-dps/limiters"
)

type LimitersTestSuite struct {
	suite.Suite
}

func TestLimitersSuite(t *testing.T) {
	suite.Run(t, new(LimitersTestSuite))
}

func (s *LimitersTestSuite) baseline() distribution.AttackDistribution {
	return distribution.AttackDistribution{distribution.Linear(1.0, 0, 80)}
}

func (s *LimitersTestSuite) TestKrakenRangedFloorsAtOne() {
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 2, Accurate: true})}
	out := limiters.KrakenRanged(in)
	s.Equal(int64(1), out[0][0].Hitsplats[0].Damage)
}

func (s *LimitersTestSuite) TestTektonMagicDividesByFive() {
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 37, Accurate: true})}
	out := limiters.TektonMagic(in)
	s.Equal(int64(7), out[0][0].Hitsplats[0].Damage)
}

func (s *LimitersTestSuite) TestDivideByThree() {
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 10, Accurate: true})}
	out := limiters.DivideByThree(in)
	s.Equal(int64(3), out[0][0].Hitsplats[0].Damage)
}

func (s *LimitersTestSuite) TestZulrahRerollsOver50() {
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 75, Accurate: true})}
	out := limiters.Zulrah(in)
	for _, wh := range out[0] {
		d := wh.Hitsplats[0].Damage
		s.GreaterOrEqual(d, int64(45))
		s.LessOrEqual(d, int64(50))
	}
}

func (s *LimitersTestSuite) TestZulrahLeavesLowDamageAlone() {
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 30, Accurate: true})}
	out := limiters.Zulrah(in)
	s.Equal(int64(30), out[0][0].Hitsplats[0].Damage)
}

func (s *LimitersTestSuite) TestZogreFamilyDividesByFourByDefault() {
	ctx := limiters.Context{MonsterName: "Zogre", CombatType: equipment.Crush}
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 20, Accurate: true})}
	out := limiters.ZogreFamily(ctx, in)
	s.Equal(int64(5), out[0][0].Hitsplats[0].Damage)
}

func (s *LimitersTestSuite) TestZogreFamilyDividesByTwoWithCrumbleUndead() {
	ctx := limiters.Context{MonsterName: "Zogre", CombatType: equipment.Crush, CrumbleUndead: true}
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 20, Accurate: true})}
	out := limiters.ZogreFamily(ctx, in)
	s.Equal(int64(10), out[0][0].Hitsplats[0].Damage)
}

func (s *LimitersTestSuite) TestZogreFamilyExemptWithBrutalAmmoAndCompBow() {
	ctx := limiters.Context{
		MonsterName:      "Zogre",
		CombatType:       equipment.Ranged,
		BrutalRangedAmmo: true,
		CompOgreBow:      true,
	}
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 20, Accurate: true})}
	out := limiters.ZogreFamily(ctx, in)
	s.Equal(int64(20), out[0][0].Hitsplats[0].Damage)
}

func (s *LimitersTestSuite) TestZogreFamilyNotExemptWithOnlyOneCondition() {
	ctx := limiters.Context{
		MonsterName:      "Zogre",
		CombatType:       equipment.Ranged,
		BrutalRangedAmmo: true,
		CompOgreBow:      false,
	}
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 20, Accurate: true})}
	out := limiters.ZogreFamily(ctx, in)
	s.Equal(int64(5), out[0][0].Hitsplats[0].Damage)
}

func (s *LimitersTestSuite) TestImmunityCollapsesToZero() {
	ctx := limiters.Context{IsImmune: true}
	out := limiters.Apply(ctx, s.baseline())
	s.Require().Len(out, 1)
	s.Require().Len(out[0], 1)
	s.Equal(int64(0), out[0][0].Hitsplats[0].Damage)
	s.Equal(1.0, out[0][0].Probability)
}

func (s *LimitersTestSuite) TestApplyDispatchesByName() {
	ctx := limiters.Context{MonsterName: "Tekton", CombatType: equipment.Magic}
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 25, Accurate: true})}
	out := limiters.Apply(ctx, in)
	s.Equal(int64(5), out[0][0].Hitsplats[0].Damage)
}

func (s *LimitersTestSuite) TestApplyDividesLeftClawMagicByThree() {
	ctx := limiters.Context{MonsterName: "Left claw", CombatType: equipment.Magic}
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 10, Accurate: true})}
	out := limiters.Apply(ctx, in)
	s.Equal(int64(3), out[0][0].Hitsplats[0].Damage)
}

func (s *LimitersTestSuite) TestApplyDividesRightClawRangedByThree() {
	ctx := limiters.Context{MonsterName: "Right claw", CombatType: equipment.Ranged}
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 10, Accurate: true})}
	out := limiters.Apply(ctx, in)
	s.Equal(int64(3), out[0][0].Hitsplats[0].Damage)
}

func (s *LimitersTestSuite) TestApplyLeavesLeftClawRangedUnlimited() {
	ctx := limiters.Context{MonsterName: "Left claw", CombatType: equipment.Ranged}
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 10, Accurate: true})}
	out := limiters.Apply(ctx, in)
	s.Equal(int64(10), out[0][0].Hitsplats[0].Damage)
}

func (s *LimitersTestSuite) TestApplyLeavesRightClawMagicUnlimited() {
	ctx := limiters.Context{MonsterName: "Right claw", CombatType: equipment.Magic}
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 10, Accurate: true})}
	out := limiters.Apply(ctx, in)
	s.Equal(int64(10), out[0][0].Hitsplats[0].Damage)
}

func (s *LimitersTestSuite) TestImmunityIsIdempotent() {
	ctx := limiters.Context{IsImmune: true}
	once := limiters.Apply(ctx, s.baseline())
	twice := limiters.Apply(ctx, once)
	s.Equal(once, twice)
}

func (s *LimitersTestSuite) TestZulrahIsIdempotentOnceInBand() {
	in := distribution.AttackDistribution{distribution.Single(1.0, distribution.Hit{Damage: 47, Accurate: true})}
	once := limiters.Zulrah(in)
	twice := limiters.Zulrah(once)
	s.Equal(once, twice)
}
