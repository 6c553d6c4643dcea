package scroll

import (
	"fmt"
	"strings"
)

// Generator synthesizes scroll titles from a weighted syllable table. It
// is configured once through New and holds no mutable state of its own
// besides its randomness source, so a Generator is safe for concurrent
// use exactly when its Source is. Generators built with WithSeed or the
// CSPRNG default are meant for a single goroutine.
type Generator struct {
	minSyllables    int
	maxSyllables    int
	minWords        int
	maxWords        int
	connectorChance int
	syllabary       *Table
	kinds           *Table
	src             Source
}

// Option configures a Generator during construction.
type Option func(*Generator)

// WithSyllableCount sets the inclusive bounds on syllables per word.
func WithSyllableCount(minCount, maxCount int) Option {
	return func(g *Generator) {
		g.minSyllables = minCount
		g.maxSyllables = maxCount
	}
}

// WithWordCount sets the inclusive bounds on words per title. The bounds
// cover every space-separated token, the connector word included.
func WithWordCount(minCount, maxCount int) Option {
	return func(g *Generator) {
		g.minWords = minCount
		g.maxWords = maxCount
	}
}

// WithConnectorChance sets the percent chance in [0, 100] that a title of
// three or more words carries the connector word. Zero disables the
// connector entirely.
func WithConnectorChance(percent int) Option {
	return func(g *Generator) { g.connectorChance = percent }
}

// WithSyllabary replaces the default syllable table. Entries must fit
// within MaxWordLen; New rejects tables that do not.
func WithSyllabary(t *Table) Option {
	return func(g *Generator) { g.syllabary = t }
}

// WithSource installs a custom randomness source.
func WithSource(src Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithSeed installs a deterministic source seeded with the given value.
// Shorthand for WithSource(NewSeededSource(seed)).
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.src = NewSeededSource(seed) }
}

// New creates a Generator. Defaults match the classic Rogue behavior:
// 1 to 3 syllables per word, 2 to 4 words per title, a 10% connector
// chance, the historical syllabary, and a CSPRNG source. All
// configuration is validated here; the generation methods cannot fail.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		minSyllables:    DefaultMinSyllables,
		maxSyllables:    DefaultMaxSyllables,
		minWords:        DefaultMinWords,
		maxWords:        DefaultMaxWords,
		connectorChance: DefaultConnectorChance,
		syllabary:       defaultSyllabary,
		kinds:           defaultKinds,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.minSyllables < 1 || g.minSyllables > g.maxSyllables {
		return nil, fmt.Errorf("%w: syllables per word [%d, %d]", ErrInvalidBounds, g.minSyllables, g.maxSyllables)
	}
	if g.minWords < 1 || g.minWords > g.maxWords {
		return nil, fmt.Errorf("%w: words per title [%d, %d]", ErrInvalidBounds, g.minWords, g.maxWords)
	}
	if g.connectorChance < 0 || g.connectorChance > 100 {
		return nil, fmt.Errorf("%w: %d%% is outside [0, 100]", ErrInvalidChance, g.connectorChance)
	}
	if g.syllabary == nil || g.syllabary.Len() == 0 {
		return nil, fmt.Errorf("%w: no syllabary", ErrEmptyTable)
	}
	for _, e := range g.syllabary.entries {
		if len(e.Text) > MaxWordLen {
			return nil, fmt.Errorf("%w: syllable %q is %d bytes, limit %d", ErrEntryTooLong, e.Text, len(e.Text), MaxWordLen)
		}
	}

	if g.src == nil {
		src, err := newDefaultSource()
		if err != nil {
			return nil, err
		}
		g.src = src
	}
	return g, nil
}

// Word synthesizes a single nonsense word: a uniformly drawn number of
// syllables within the configured bounds, concatenated in draw order.
// A word stops growing at the last syllable boundary that fits within
// MaxWordLen. The result is never empty.
func (g *Generator) Word() string {
	var b strings.Builder
	n := g.randRange(g.minSyllables, g.maxSyllables)
	for i := 0; i < n; i++ {
		syl := g.syllabary.Pick(g.src)
		if b.Len()+len(syl) > MaxWordLen {
			break
		}
		b.WriteString(syl)
	}
	return b.String()
}

// Title assembles a full scroll title: a uniformly drawn number of words
// within the configured bounds, joined by single spaces. When the
// connector chance fires and the title has at least three words, one
// uniformly chosen interior position holds the connector word instead of
// a synthesized one, so the token count stays within the word bounds.
func (g *Generator) Title() string {
	n := g.randRange(g.minWords, g.maxWords)

	connectorAt := -1
	if g.connectorChance > 0 {
		if g.src.IntN(100) < g.connectorChance && n >= 3 {
			connectorAt = g.randRange(1, n-2)
		}
	}

	words := make([]string, n)
	for i := range words {
		if i == connectorAt {
			words[i] = Connector
			continue
		}
		words[i] = g.Word()
	}
	return strings.Join(words, " ")
}

// Kind draws one scroll kind according to the classic Rogue weights, e.g.
// "identify potion" or "aggravate monsters".
func (g *Generator) Kind() string {
	return g.kinds.Pick(g.src)
}

// Kinds returns the scroll kinds the Generator draws from, with their
// weights, in table order.
func (g *Generator) Kinds() []Entry {
	return g.kinds.Entries()
}

// randRange returns a uniform value in [lo, hi]. Equal bounds consume no
// randomness.
func (g *Generator) randRange(lo, hi int) int {
	if lo == hi {
		return lo
	}
	return lo + g.src.IntN(hi-lo+1)
}
