package domain

import "math"

// Reel math for the simulated mechanical score display. A reel bank is
// a fixed row of digit wheels driven least-significant digit first; the
// reset animation steps every wheel at once with a non-carrying rule,
// mimicking how electromechanical score motors zero the drums.

// Magnitude returns the absolute decimal value of a score as uint64.
// math.MinInt cannot be negated in int arithmetic, so the magnitude is
// computed from n+1 instead.
func Magnitude(score int) uint64 {
	if score >= 0 {
		return uint64(score)
	}
	return uint64(-(score + 1)) + 1
}

// Digits returns the decimal digit sequence of a score's magnitude,
// least-significant digit first. Zero yields a single zero digit.
func Digits(score int) []int {
	mag := Magnitude(score)
	if mag == 0 {
		return []int{0}
	}
	var digits []int
	for mag > 0 {
		digits = append(digits, int(mag%10))
		mag /= 10
	}
	return digits
}

// AdvanceDigit applies the reset rule to one wheel: digits 1-8 step
// forward, 9 rolls over to 0, and 0 holds. No carry propagates.
func AdvanceDigit(d int) int {
	switch {
	case d <= 0 || d >= 9:
		return 0
	default:
		return d + 1
	}
}

// Advance applies AdvanceDigit to every decimal digit of value at once.
// Repeated application reaches zero in at most ten steps: each wheel
// climbs to 9, rolls to 0, and holds there.
func Advance(value uint64) uint64 {
	if value == 0 {
		return 0
	}
	var out uint64
	var place uint64 = 1
	for v := value; v > 0; v /= 10 {
		out += uint64(AdvanceDigit(int(v%10))) * place
		place *= 10
	}
	return out
}

// ReelBank models a fixed, ordered set of digit wheel actuators.
// Index 0 is the least-significant wheel.
type ReelBank struct {
	wheels []int
}

// NewReelBank creates a bank of size wheels, all showing zero
func NewReelBank(size int) *ReelBank {
	if size < 1 {
		size = 1
	}
	return &ReelBank{wheels: make([]int, size)}
}

// Size returns the number of wheels in the bank
func (b *ReelBank) Size() int {
	return len(b.wheels)
}

// SetScore drives the wheels from a score, least-significant digit
// first. Wheels beyond the digit count are set to zero; digits beyond
// the wheel count are dropped, as a physical bank would.
func (b *ReelBank) SetScore(score int) {
	digits := Digits(score)
	for i := range b.wheels {
		if i < len(digits) {
			b.wheels[i] = digits[i]
		} else {
			b.wheels[i] = 0
		}
	}
}

// SetValue drives the wheels from an unsigned value
func (b *ReelBank) SetValue(value uint64) {
	if value <= math.MaxInt64 {
		b.SetScore(int(value))
		return
	}
	for i := range b.wheels {
		b.wheels[i] = int(value % 10)
		value /= 10
	}
}

// Wheels returns a copy of the wheel positions, least-significant first
func (b *ReelBank) Wheels() []int {
	out := make([]int, len(b.wheels))
	copy(out, b.wheels)
	return out
}

// Value reassembles the displayed number from the wheel positions
func (b *ReelBank) Value() uint64 {
	var out uint64
	var place uint64 = 1
	for _, d := range b.wheels {
		out += uint64(d) * place
		place *= 10
	}
	return out
}
