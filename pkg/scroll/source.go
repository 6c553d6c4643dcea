package scroll

import (
	"fmt"
	"math/rand/v2"

	crand "github.com/decred/dcrd/crypto/rand"
)

// Source supplies the randomness consumed during generation. IntN must
// return a uniformly distributed value in [0, n) for n > 0. Both
// *rand.Rand from math/rand/v2 and *rand.PRNG from
// github.com/decred/dcrd/crypto/rand satisfy it unmodified.
type Source interface {
	IntN(n int) int
}

// NewSeededSource returns a deterministic Source backed by a PCG
// generator. Two sources built from the same seed yield identical draw
// sequences, so a Generator using one reproduces its output exactly.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, 0))
}

// newDefaultSource builds the Source used when neither WithSeed nor
// WithSource is given: a userspace CSPRNG seeded from the operating
// system. Titles drawn from it differ between runs.
func newDefaultSource() (Source, error) {
	prng, err := crand.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("could not initialize random source: %w", err)
	}
	return prng, nil
}
