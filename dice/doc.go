// Package dice provides the random-number primitives the stochastic
// combat simulator draws on, without implementing any game-specific rules.
//
// Purpose:
// The analytic engine (rolls, accuracy, distribution algebra, TTK) never
// touches randomness — it computes exact probability distributions. This
// package exists solely for the Monte-Carlo simulator, which needs
// uniform integer draws that are reproducible across runs given the same
// seed, and substitutable with fixed sequences in tests.
//
// Scope:
//   - Uniform integer draws over an inclusive range
//   - Bernoulli trials for proc chances
//   - A seeded roller for reproducible fights, and a time-seeded roller
//     (NewRoller) for fights that need no fixed seed
//   - A fixed-sequence roller for deterministic tests
//
// Non-Goals:
//   - Dice notation or polyhedral dice: OSRS combat rolls are uniform
//     integers over a computed range, not d6/d20 style dice pools
//   - Interpreting rolls: hit/miss and damage semantics belong to the
//     accuracy and distribution packages
//   - Concurrency safety between goroutines sharing one Roller: each
//     simulated fight gets its own Roller instance
//
// Integration:
// The simulator draws every attack roll, defence roll, splat damage
// value, and proc check through a Roller passed in by the caller, one per
// worker goroutine, so Monte-Carlo fights farm out across workers without
// any shared mutable RNG state.
package dice
