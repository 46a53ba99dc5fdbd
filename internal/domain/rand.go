package domain

// Rand is the source of every random choice the game makes: the Fake,
// random words and random moderators. *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n); n is always > 0
	IntN(n int) int
}
