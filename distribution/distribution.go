// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package distribution implements the discrete probability algebra the
// combat engine builds every hit outcome from: Hit, WeightedHit,
// HitDistribution, and AttackDistribution, plus the pure operations
// (scale, transform, zip, histogram, expectation) transformers and
// limiters compose to describe a weapon's damage.
package distribution

import "github.com/KirkDiggler/osrs-dps/rational"

// Hit is one displayed damage number from one hit action.
type Hit struct {
	Damage   int64
	Accurate bool
}

// WeightedHit is a probability-weighted ordered sequence of splats
// produced by one action (a multi-hit weapon emits several).
type WeightedHit struct {
	Probability float64
	Hitsplats   []Hit
}

// TotalDamage sums the splats of one WeightedHit.
func (w WeightedHit) TotalDamage() int64 {
	var total int64
	for _, h := range w.Hitsplats {
		total += h.Damage
	}
	return total
}

// HitDistribution is an ordered sequence of WeightedHit whose
// probabilities sum to 1 within epsilon.
type HitDistribution []WeightedHit

// Epsilon is the probability-conservation tolerance used throughout the
// engine (§8 invariant 1).
const Epsilon = 1e-9

// Single returns a HitDistribution with exactly one WeightedHit at
// probability p.
func Single(p float64, splats ...Hit) HitDistribution {
	return HitDistribution{{Probability: p, Hitsplats: append([]Hit(nil), splats...)}}
}

// Linear returns damage uniformly distributed over [lo, hi] (inclusive)
// with total probability p; if p < 1, an additional inaccurate entry of
// probability (1-p) hitting 0 is appended.
func Linear(p float64, lo, hi int64) HitDistribution {
	if hi < lo {
		lo, hi = hi, lo
	}
	n := hi - lo + 1
	each := p / float64(n)
	dist := make(HitDistribution, 0, n+1)
	for d := lo; d <= hi; d++ {
		dist = append(dist, WeightedHit{
			Probability: each,
			Hitsplats:   []Hit{{Damage: d, Accurate: true}},
		})
	}
	if p < 1 {
		dist = append(dist, WeightedHit{
			Probability: 1 - p,
			Hitsplats:   []Hit{{Damage: 0, Accurate: false}},
		})
	}
	return dist
}

// ScaleProbability multiplies every WeightedHit's probability by q.
func (d HitDistribution) ScaleProbability(q float64) HitDistribution {
	out := make(HitDistribution, len(d))
	for i, wh := range d {
		out[i] = WeightedHit{Probability: wh.Probability * q, Hitsplats: wh.Hitsplats}
	}
	return out
}

// ScaleDamage multiplies every splat's damage by num/den, flooring.
func (d HitDistribution) ScaleDamage(num, den int64) HitDistribution {
	out := make(HitDistribution, len(d))
	for i, wh := range d {
		splats := make([]Hit, len(wh.Hitsplats))
		for j, h := range wh.Hitsplats {
			splats[j] = Hit{Damage: rational.FloorDiv(h.Damage*num, den), Accurate: h.Accurate}
		}
		out[i] = WeightedHit{Probability: wh.Probability, Hitsplats: splats}
	}
	return out
}

// Transform replaces each hit by f(hit) and aggregates, carrying the
// parent probability through as a further scaling of f's own
// distribution.
func (d HitDistribution) Transform(f func(Hit) HitDistribution) HitDistribution {
	var out HitDistribution
	for _, wh := range d {
		for _, splat := range wh.Hitsplats {
			sub := f(splat)
			out = append(out, sub.ScaleProbability(wh.Probability)...)
		}
	}
	return out
}

// Zip performs the Cartesian convolution of d and other: every
// (splat_a, splat_b) pair produces a splat list of length |a|+|b| with
// probability p_a*p_b.
func (d HitDistribution) Zip(other HitDistribution) HitDistribution {
	out := make(HitDistribution, 0, len(d)*len(other))
	for _, a := range d {
		for _, b := range other {
			combined := make([]Hit, 0, len(a.Hitsplats)+len(b.Hitsplats))
			combined = append(combined, a.Hitsplats...)
			combined = append(combined, b.Hitsplats...)
			out = append(out, WeightedHit{
				Probability: a.Probability * b.Probability,
				Hitsplats:   combined,
			})
		}
	}
	return out
}

// Compact merges WeightedHits with identical splat vectors by summing
// their probabilities, shrinking the representation without changing
// its meaning.
func (d HitDistribution) Compact() HitDistribution {
	index := map[string]int{}
	out := HitDistribution{}
	for _, wh := range d {
		k := splatKey(wh.Hitsplats)
		if i, ok := index[k]; ok {
			out[i].Probability += wh.Probability
			continue
		}
		index[k] = len(out)
		out = append(out, wh)
	}
	return out
}

func splatKey(splats []Hit) string {
	b := make([]byte, 0, len(splats)*12)
	for _, h := range splats {
		b = appendInt(b, h.Damage)
		b = append(b, ':')
		if h.Accurate {
			b = append(b, 'a')
		} else {
			b = append(b, 'i')
		}
		b = append(b, ',')
	}
	return string(b)
}

func appendInt(b []byte, n int64) []byte {
	if n == 0 {
		return append(b, '0')
	}
	neg := n < 0
	if neg {
		n = -n
	}
	start := len(b)
	for n > 0 {
		b = append(b, byte('0'+n%10))
		n /= 10
	}
	if neg {
		b = append(b, '-')
	}
	// reverse in place
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// MaxTotalDamage returns the largest total damage any WeightedHit in d
// can produce.
func (d HitDistribution) MaxTotalDamage() int64 {
	var max int64
	for _, wh := range d {
		if t := wh.TotalDamage(); t > max {
			max = t
		}
	}
	return max
}

// Histogram collapses d to a length-(max+1) vector of marginal
// probabilities of total damage.
func (d HitDistribution) Histogram() []float64 {
	max := d.MaxTotalDamage()
	hist := make([]float64, max+1)
	for _, wh := range d {
		hist[wh.TotalDamage()] += wh.Probability
	}
	return hist
}

// ExpectedHit returns Σ probability × Σ damage(splats).
func (d HitDistribution) ExpectedHit() float64 {
	var total float64
	for _, wh := range d {
		total += wh.Probability * float64(wh.TotalDamage())
	}
	return total
}

// TotalProbability sums every WeightedHit's probability, for the
// probability-conservation invariant check.
func (d HitDistribution) TotalProbability() float64 {
	var total float64
	for _, wh := range d {
		total += wh.Probability
	}
	return total
}

// AttackDistribution is one HitDistribution per concurrent independent
// hit produced by an action; total damage is the sum of independent
// draws from each inner distribution.
type AttackDistribution []HitDistribution

// ExpectedDamage sums ExpectedHit across every inner distribution.
func (a AttackDistribution) ExpectedDamage() float64 {
	var total float64
	for _, d := range a {
		total += d.ExpectedHit()
	}
	return total
}

// CombinedHistogram convolves every inner distribution's histogram into
// the marginal distribution of total damage for the whole action.
func (a AttackDistribution) CombinedHistogram() []float64 {
	combined := []float64{1}
	for _, d := range a {
		h := d.Histogram()
		combined = convolveHist(combined, h)
	}
	return combined
}

func convolveHist(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, pa := range a {
		if pa == 0 {
			continue
		}
		for j, pb := range b {
			out[i+j] += pa * pb
		}
	}
	return out
}
