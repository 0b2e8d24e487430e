package landmark

import "math/rand"

// defaultRNGSeed is the fixed seed backing the nil-rng policy. The value
// is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngOrDefault returns rng, or a deterministic default stream when rng
// is nil.
// Complexity: O(1).
func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rand.New(rand.NewSource(defaultRNGSeed))
}
