package scroll

import (
	"math"
	"math/big"
)

// Possibilities returns the exact number of distinct generation paths the
// configured space contains. Words are counted per syllable count, titles
// per word count; when the connector is enabled, titles of n >= 3 words
// additionally contribute one shape per interior connector position.
//
// The count treats every draw sequence as distinct: syllable tables with
// repeated entries (the default syllabary carries "nes" twice) can render
// two paths as the same string, and configurations loose enough for
// MaxWordLen truncation can merge paths too. In both cases the count is
// an upper bound on distinct strings, which is how Rogue's title space
// has historically been sized.
func (g *Generator) Possibilities() *big.Int {
	syllables := big.NewInt(int64(g.syllabary.Len()))

	words := new(big.Int)
	for k := g.minSyllables; k <= g.maxSyllables; k++ {
		words.Add(words, new(big.Int).Exp(syllables, big.NewInt(int64(k)), nil))
	}

	titles := new(big.Int)
	for n := g.minWords; n <= g.maxWords; n++ {
		titles.Add(titles, new(big.Int).Exp(words, big.NewInt(int64(n)), nil))
		if g.connectorChance > 0 && n >= 3 {
			// One connector in any of the n-2 interior slots, synthesized
			// words in the remaining n-1 positions.
			shape := new(big.Int).Exp(words, big.NewInt(int64(n-1)), nil)
			shape.Mul(shape, big.NewInt(int64(n-2)))
			titles.Add(titles, shape)
		}
	}
	return titles
}

// Entropy returns the information content of the configured generation
// space in bits: log2 of Possibilities. It consumes no randomness and
// depends only on configuration, so repeated calls return the same value.
// The default configuration yields roughly 86.44 bits.
func (g *Generator) Entropy() float64 {
	return log2Big(g.Possibilities())
}

// log2Big computes log2 of a positive integer too large for float64 by
// splitting it into a mantissa in [0.5, 1) and a binary exponent.
func log2Big(n *big.Int) float64 {
	f := new(big.Float).SetInt(n)
	mant := new(big.Float)
	exp := f.MantExp(mant)
	m, _ := mant.Float64()
	return math.Log2(m) + float64(exp)
}
