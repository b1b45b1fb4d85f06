package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Sample draws n distinct integers from the inclusive range [lo, hi],
// returned in uniformly random order. Returns nil when the range holds
// fewer than n values.
func Sample(rng *rand.Rand, lo, hi, n int) []int {
	size := hi - lo + 1
	if n < 0 || n > size {
		return nil
	}
	pool := make([]int, size)
	for i := range pool {
		pool[i] = lo + i
	}
	// Partial Fisher-Yates: only the first n positions need settling.
	for i := 0; i < n; i++ {
		j := i + rng.IntN(size-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
