// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package transformers

import (
	"github.com/KirkDiggler/osrs-dps/distribution"
	"github.com/KirkDiggler/osrs-dps/rational"
)

// Scythe builds the scythe of Vitur's cascade: k = min(max(size,1),3)
// splats, splat i uniform in [0, max_hit >> i], each independently
// accurate at acc.
func Scythe(ctx Context, size uint8) distribution.AttackDistribution {
	k := int64(size)
	if k < 1 {
		k = 1
	}
	if k > 3 {
		k = 3
	}
	out := make(distribution.AttackDistribution, k)
	for i := int64(0); i < k; i++ {
		divisor := int64(1) << uint(i)
		max := rational.FloorDiv(ctx.MaxHit, divisor)
		out[i] = distribution.Linear(ctx.Accuracy, 0, max)
	}
	return out
}

// DualMacuahuitl builds the dual macuahuitl's two-splat action: the
// first splat is linear(1, 0, floor(max/2)) — always accurate — and the
// second is linear(acc, 0, max-floor(max/2)), with the combined action
// probability including (1-acc) chance of a fully-zero second splat.
func DualMacuahuitl(ctx Context) distribution.AttackDistribution {
	firstMax := rational.FloorDiv(ctx.MaxHit, 2)
	secondMax := ctx.MaxHit - firstMax
	first := distribution.Linear(1.0, 0, firstMax)
	second := distribution.Linear(ctx.Accuracy, 0, secondMax)
	return distribution.AttackDistribution{first, second}
}
