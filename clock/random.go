package clock

import "math/rand/v2"

// Random is the source behind payment outcomes and generated order numbers.
type Random interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type systemRandom struct{}

// SystemRandom draws from the process-wide generator. It is not seeded and
// not reproducible.
func SystemRandom() Random { return systemRandom{} }

func (systemRandom) Float64() float64 { return rand.Float64() }
func (systemRandom) IntN(n int) int   { return rand.IntN(n) }

// FixedRandom always returns the same draws.
type FixedRandom struct {
	Value float64
	Int   int
}

func (r FixedRandom) Float64() float64 { return r.Value }

func (r FixedRandom) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.Int % n
}
