// Package random supplies the injectable random-number source used by the
// lessons that need randomness.
package random

import "math/rand/v2"

// Source yields pseudo-random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// New returns a deterministic Source seeded with seed.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// UpTo returns a number in [0, n).
func UpTo(src Source, n int) int {
	return src.IntN(n)
}

// Element picks a random element of xs. xs must not be empty.
func Element[T any](src Source, xs []T) T {
	return xs[UpTo(src, len(xs))]
}

// Fixed is a Source that replays values in order, wrapping around. Each value
// is reduced into [0, n), so negative entries are safe. An empty Fixed always
// yields 0.
type Fixed []int

// IntN implements Source.
func (f *Fixed) IntN(n int) int {
	if len(*f) == 0 {
		return 0
	}
	v := (*f)[0]
	*f = append((*f)[1:], v)
	return ((v % n) + n) % n
}
