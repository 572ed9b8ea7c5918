package fnkit

import (
	"iter"
	"math/rand/v2"
	"time"
)

// processRand is the process-wide generator behind InfiniteRandomSequence.
// It is mutated by every pull and is not guarded by any lock.
var processRand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))

// InfiniteRandomSequence returns a lazy, infinite sequence of pseudo-random
// numbers in [0, 1).
//
// Nothing is computed until a value is pulled, and every pull computes a new
// value. The sequence never ends on its own: stop ranging over it (or call
// the stop function obtained from Pull) to stop producing values.
//
//	next, stop := fnkit.Pull(fnkit.InfiniteRandomSequence())
//	defer stop()
//	v, _ := next() // a different value on every run
//
// InfiniteRandomSequence is impure. All sequences it returns draw from a
// single process-wide generator, so ranging over one advances the others.
// That generator is not safe for concurrent use: pull from at most one
// goroutine at a time, or use RandomSequence with a generator owned by each
// goroutine.
func InfiniteRandomSequence() iter.Seq[float64] {
	return RandomSequence(processRand)
}

// RandomSequence is InfiniteRandomSequence drawing from r instead of the
// process-wide generator. A seeded r makes the sequence reproducible.
//
// RandomSequence panics if r is nil.
func RandomSequence(r *rand.Rand) iter.Seq[float64] {
	if r == nil {
		panic("fnkit.RandomSequence: nil generator")
	}
	return Repeatedly(r.Float64)
}
