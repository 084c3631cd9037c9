// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ttk inverts a per-action hit distribution into a
// hits-to-kill recurrence and a time-to-kill probability mass function,
// with HP-dependent distribution recomputation and caching for bosses
// whose stats lerp with current HP. This is the `get_ttk` and
// `get_ttk_distribution` entry point named in the specification's
// external interface.
package ttk

import (
	"math"

	"github.com/KirkDiggler/osrs-dps/distribution"
	"github.com/KirkDiggler/osrs-dps/rpgerr"
)

const tickSeconds = 0.6
const epsilon = 1e-9

// ExpectedDamagePerAction sums expected_hit across every inner
// distribution of an AttackDistribution.
func ExpectedDamagePerAction(d distribution.AttackDistribution) float64 {
	return d.ExpectedDamage()
}

// DPS converts an AttackDistribution's expected damage per action into
// damage per second, given the weapon's tick speed.
func DPS(d distribution.AttackDistribution, speedTicks int64) float64 {
	return ExpectedDamagePerAction(d) / (float64(speedTicks) * tickSeconds)
}

// HitsToKill computes the expected number of actions (not ticks) to
// reduce a monster from hp to 0, given the per-action damage histogram
// h (h[0] is the miss/zero-damage mass). Returns a DegenerateDistribution
// error if h[0] == 1 (expected damage is zero, so the kill never lands).
func HitsToKill(h []float64, hp int64) (float64, error) {
	if hp <= 0 {
		return 0, nil
	}
	if len(h) == 0 || h[0] >= 1-epsilon {
		return 0, rpgerr.New(rpgerr.CodeDegenerateDistribution,
			"ttk: distribution has zero expected damage per action",
			rpgerr.WithMeta("hp", hp))
	}

	htk := make([]float64, hp+1)
	maxDamage := int64(len(h) - 1)
	for curHP := int64(1); curHP <= hp; curHP++ {
		var sum float64
		limit := curHP
		if maxDamage < limit {
			limit = maxDamage
		}
		for d := int64(1); d <= limit; d++ {
			sum += h[d] * htk[curHP-d]
		}
		htk[curHP] = (1 + sum) / (1 - h[0])
	}
	return htk[hp], nil
}

// GetTTK returns the expected time to kill in seconds, given an
// AttackDistribution, the weapon's tick speed, and the monster's
// starting HP. Returns +Inf (with a DegenerateDistribution error) when
// the distribution has zero expected damage.
func GetTTK(d distribution.AttackDistribution, speedTicks int64, hp int64) (float64, error) {
	h := d.CombinedHistogram()
	hits, err := HitsToKill(h, hp)
	if err != nil {
		return math.Inf(1), err
	}
	return hits * float64(speedTicks) * tickSeconds, nil
}

// DistributionForHP is supplied by callers whose per-action distribution
// changes with the monster's current HP (ruby bolts' HP-proportional
// cap, Vardorvis's HP-lerped stats). It is consulted lazily and its
// results are cached by HP.
type DistributionForHP func(hp int64) (distribution.AttackDistribution, error)

// PMF is the time-to-kill probability mass function: PMF[t] is the
// probability the kill lands exactly at tick t.
type PMF struct {
	Ticks []float64
}

// ProbabilityAt returns P(T = t) for a tick index, 0 if out of range.
func (p PMF) ProbabilityAt(t int64) float64 {
	if t < 0 || int(t) >= len(p.Ticks) {
		return 0
	}
	return p.Ticks[t]
}

// GetTTKDistribution computes the TTK PMF by repeatedly stepping an HP
// mass vector forward: at each HP with nonzero mass, the per-HP
// distribution (recomputed via distFor when it depends on HP) is
// convolved against the remaining mass, contributing to either a kill
// tick or the next HP's mass. Iterates until accumulated kill mass
// reaches 1-epsilon or maxIters is hit.
func GetTTKDistribution(distFor DistributionForHP, speedTicks int64, startHP int64, maxIters int, eps float64) (PMF, error) {
	if eps <= 0 {
		eps = epsilon
	}
	if startHP <= 0 {
		return PMF{Ticks: []float64{1}}, nil
	}

	cache := map[int64]distribution.AttackDistribution{}
	histFor := func(hp int64) ([]float64, error) {
		if d, ok := cache[hp]; ok {
			return d.CombinedHistogram(), nil
		}
		d, err := distFor(hp)
		if err != nil {
			return nil, err
		}
		cache[hp] = d
		return d.CombinedHistogram(), nil
	}

	maxTicks := int64(maxIters) * speedTicks
	ticks := make([]float64, maxTicks+1)
	hps := make([]float64, startHP+1)
	hps[startHP] = 1.0

	var killMass float64
	curTick := int64(0)

	for iter := 0; iter < maxIters && killMass < 1-eps; iter++ {
		curTick += speedTicks
		next := make([]float64, startHP+1)

		for hp := int64(1); hp <= startHP; hp++ {
			mass := hps[hp]
			if mass <= 0 {
				continue
			}
			h, err := histFor(hp)
			if err != nil {
				return PMF{}, err
			}
			for dmg, prob := range h {
				if prob == 0 {
					continue
				}
				contrib := mass * prob
				if int64(dmg) >= hp {
					if curTick < int64(len(ticks)) {
						ticks[curTick] += contrib
					}
					killMass += contrib
				} else {
					next[hp-int64(dmg)] += contrib
				}
			}
		}
		hps = next
	}

	return PMF{Ticks: ticks}, nil
}
