// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package simulate

// FreezeState is the frozen/thawed/immune-cooldown state machine.
type FreezeState int

const (
	Unfrozen FreezeState = iota
	Frozen
	ImmuneCooldown
)

const immuneCooldownTicks = 5

// Freeze tracks one monster's freeze status across ticks.
type Freeze struct {
	State           FreezeState
	RemainingTicks  int64
}

// TryFreeze attempts to apply a freeze of the given duration. The caller
// passes the outcome of its resistance roll as succeeds; the freeze is
// refused when succeeds is false or resistance is 100. resistance is saturated to 100
// while ImmuneCooldown is active, per the documented effective-100%
// rule for a zero-duration freeze landing during cooldown.
func (f *Freeze) TryFreeze(duration int64, resistance uint8, succeeds bool) {
	effectiveResistance := resistance
	if f.State == ImmuneCooldown {
		effectiveResistance = 100
	}
	if effectiveResistance >= 100 || !succeeds {
		return
	}
	f.State = Frozen
	f.RemainingTicks = duration
}

// Tick advances the freeze state machine by one tick.
func (f *Freeze) Tick() {
	switch f.State {
	case Frozen:
		f.RemainingTicks--
		if f.RemainingTicks <= 0 {
			f.State = ImmuneCooldown
			f.RemainingTicks = immuneCooldownTicks
		}
	case ImmuneCooldown:
		f.RemainingTicks--
		if f.RemainingTicks <= 0 {
			f.State = Unfrozen
		}
	}
}

// PoisonVenomState is the shared off/active state machine for poison
// (decrementing severity) and venom (incrementing damage every 30
// ticks, starting from 6 after the first application).
type PoisonVenomState struct {
	Active      bool
	IsVenom     bool
	TickCounter int64
	Severity    int64 // poison damage this application, or current venom damage
}

const poisonVenomInterval = 30

// Apply starts a poison or venom effect at the given initial severity or
// damage value.
func (p *PoisonVenomState) Apply(isVenom bool, initial int64) {
	p.Active = true
	p.IsVenom = isVenom
	p.TickCounter = 0
	p.Severity = initial
}

// Tick advances the counter by one and returns the damage to apply this
// tick (0 on ticks that aren't a damage tick).
func (p *PoisonVenomState) Tick() int64 {
	if !p.Active {
		return 0
	}
	p.TickCounter++
	if p.TickCounter%poisonVenomInterval != 0 {
		return 0
	}
	dmg := p.Severity
	if p.IsVenom {
		p.Severity += 2
	} else {
		p.Severity--
		if p.Severity <= 0 {
			p.Active = false
		}
	}
	return dmg
}

// BurnState is the off/active stack-based burn state machine: every 4
// ticks, damage equals the stack count, each stack decrements, and
// zeroed stacks are dropped.
type BurnState struct {
	Active      bool
	TickCounter int64
	Stacks      []int64
}

const burnInterval = 4

// Apply adds a new burn application's stack values.
func (b *BurnState) Apply(stacks []int64) {
	b.Active = true
	b.Stacks = append(b.Stacks, stacks...)
}

// Tick advances the counter by one and returns the damage to apply this
// tick (len(stacks) on a damage tick, 0 otherwise).
func (b *BurnState) Tick() int64 {
	if !b.Active || len(b.Stacks) == 0 {
		return 0
	}
	b.TickCounter++
	if b.TickCounter%burnInterval != 0 {
		return 0
	}
	dmg := int64(len(b.Stacks))
	kept := b.Stacks[:0]
	for _, v := range b.Stacks {
		v--
		if v > 0 {
			kept = append(kept, v)
		}
	}
	b.Stacks = kept
	if len(b.Stacks) == 0 {
		b.Active = false
	}
	return dmg
}

// DelayedTimer is a count-down that fires once or a configured number of
// times, used for delayed attacks and delayed heals.
type DelayedTimer struct {
	TicksRemaining int64
	FiresLeft      int64
	Interval       int64
}

// NewDelayedTimer constructs a timer that fires `count` times, `interval`
// ticks apart, starting after the first interval elapses.
func NewDelayedTimer(interval, count int64) *DelayedTimer {
	return &DelayedTimer{TicksRemaining: interval, FiresLeft: count, Interval: interval}
}

// Tick advances the timer by one tick and reports whether it fired.
func (d *DelayedTimer) Tick() bool {
	if d.FiresLeft <= 0 {
		return false
	}
	d.TicksRemaining--
	if d.TicksRemaining > 0 {
		return false
	}
	d.FiresLeft--
	d.TicksRemaining = d.Interval
	return true
}
