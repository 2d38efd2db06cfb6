package board

// Rand is the randomness source consumed by board population and the bag.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}
