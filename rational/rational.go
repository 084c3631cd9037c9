// Package rational provides exact reduced-fraction arithmetic for the
// multiplicative gear and prayer modifiers the combat engine composes.
//
// Purpose:
// Three or more percentage modifiers (salve amulet, void set, inquisitor's
// armour, ...) compose multiplicatively against an effective level or a
// max hit. Doing that with successive integer divisions introduces bias
// that depends on application order; an exact fraction composes without
// rounding until the final floor, matching the game's own arithmetic.
//
// Scope:
//   - Reduced fraction construction and multiplication
//   - Floor-to-int conversion, the only place rounding happens
//   - Saturating (clamped) integer helpers used throughout roll and
//     stat-drain computations
//
// Non-Goals:
//   - General-purpose big-number arithmetic: fractions here stay within
//     int64 numerators/denominators, which is ample for any gear modifier
//   - Floating point: rational numbers never convert to float64 except
//     where callers explicitly need a probability
package rational

import (
	"fmt"

	"github.com/KirkDiggler/osrs-dps/rpgerr"
)

// Rational is an exact reduced fraction num/den, den always positive.
type Rational struct {
	Num int64
	Den int64
}

// One is the multiplicative identity.
var One = Rational{Num: 1, Den: 1}

// New constructs a reduced fraction. Returns an error if den is zero.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, rpgerr.New(rpgerr.CodeInternal, "rational: zero denominator",
			rpgerr.WithMeta("num", num))
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	if g == 0 {
		g = 1
	}
	return Rational{Num: num / g, Den: den / g}, nil
}

// Must is New but panics on error — for compile-time-known constants.
func Must(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt wraps a whole number as a fraction over 1.
func FromInt(n int64) Rational {
	return Rational{Num: n, Den: 1}
}

// Mul returns the reduced product of r and other.
func (r Rational) Mul(other Rational) Rational {
	reduced, _ := New(r.Num*other.Num, r.Den*other.Den)
	return reduced
}

// Add returns the reduced sum of r and other.
func (r Rational) Add(other Rational) Rational {
	reduced, _ := New(r.Num*other.Den+other.Num*r.Den, r.Den*other.Den)
	return reduced
}

// FloorMulInt multiplies an integer by r and floors the result, the
// standard way OSRS applies a gear or prayer percentage to a level or hit.
func (r Rational) FloorMulInt(n int64) int64 {
	product := n * r.Num
	return floorDiv(product, r.Den)
}

// Float64 converts to a float64, for callers that need a plain ratio
// (e.g. displaying a multiplier) rather than exact composition.
func (r Rational) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// String renders "num/den".
func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Equal reports whether r and other represent the same reduced ratio.
func (r Rational) Equal(other Rational) bool {
	return r.Num == other.Num && r.Den == other.Den
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// floorDiv performs floor division (rounds toward negative infinity),
// unlike Go's truncating integer division.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorDiv exposes floor division for non-rational integer arithmetic
// elsewhere in the engine (e.g. limiter divisions).
func FloorDiv(a, b int64) int64 {
	return floorDiv(a, b)
}

// ClampNonNegative saturates n at zero — used for stat drains and heals
// that must never leave a level negative.
func ClampNonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

// ClampedSub subtracts b from a, saturating at zero.
func ClampedSub(a, b int64) int64 {
	return ClampNonNegative(a - b)
}

// ClampedAdd adds b to a, saturating at max (0 means no ceiling).
func ClampedAdd(a, b, max int64) int64 {
	sum := a + b
	if max > 0 && sum > max {
		return max
	}
	return sum
}
