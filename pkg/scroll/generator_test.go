package scroll

import (
	"errors"
	"strings"
	"testing"
)

func TestNewValidation(t *testing.T) {
	longEntry := strings.Repeat("x", MaxWordLen+1)

	testCases := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{
			name: "defaults",
		},
		{
			name:    "min words above max",
			opts:    []Option{WithWordCount(5, 2)},
			wantErr: ErrInvalidBounds,
		},
		{
			name:    "zero min words",
			opts:    []Option{WithWordCount(0, 4)},
			wantErr: ErrInvalidBounds,
		},
		{
			name:    "min syllables above max",
			opts:    []Option{WithSyllableCount(3, 1)},
			wantErr: ErrInvalidBounds,
		},
		{
			name:    "zero min syllables",
			opts:    []Option{WithSyllableCount(0, 3)},
			wantErr: ErrInvalidBounds,
		},
		{
			name:    "negative connector chance",
			opts:    []Option{WithConnectorChance(-1)},
			wantErr: ErrInvalidChance,
		},
		{
			name:    "connector chance above 100",
			opts:    []Option{WithConnectorChance(101)},
			wantErr: ErrInvalidChance,
		},
		{
			name:    "nil syllabary",
			opts:    []Option{WithSyllabary(nil)},
			wantErr: ErrEmptyTable,
		},
		{
			name:    "syllabary entry longer than a word may be",
			opts:    []Option{WithSyllabary(mustTable(NewUniformTable([]string{"ka", longEntry})))},
			wantErr: ErrEntryTooLong,
		},
		{
			name: "custom configuration",
			opts: []Option{
				WithSyllableCount(2, 5),
				WithWordCount(1, 7),
				WithConnectorChance(0),
				WithSeed(7),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.opts...)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("New() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if g == nil {
				t.Fatal("New() returned nil Generator without error")
			}
		})
	}
}

func TestWordProperties(t *testing.T) {
	g := newTestGenerator(t, WithSeed(1))

	for i := 0; i < 1000; i++ {
		w := g.Word()
		if w == "" {
			t.Fatal("Word() returned an empty string")
		}
		if len(w) > MaxWordLen {
			t.Fatalf("Word() = %q, longer than %d bytes", w, MaxWordLen)
		}
		for _, r := range w {
			if r < 'a' || r > 'z' {
				t.Fatalf("Word() = %q, contains %q outside a-z", w, r)
			}
		}
	}
}

func TestWordStopsAtLengthCap(t *testing.T) {
	syllabary := mustTable(NewUniformTable([]string{"abcdefghij"}))
	g := newTestGenerator(t,
		WithSyllabary(syllabary),
		WithSyllableCount(5, 5),
		WithSource(zeroSource{}),
	)

	// Five 10-byte syllables would overshoot MaxWordLen; the word has to
	// stop at the fourth syllable boundary.
	want := strings.Repeat("abcdefghij", 4)
	if got := g.Word(); got != want {
		t.Errorf("Word() = %q (%d bytes), want %q", got, len(got), want)
	}
}

func TestTitleWordCountBounds(t *testing.T) {
	testCases := []struct {
		name     string
		minWords int
		maxWords int
	}{
		{name: "default bounds", minWords: 2, maxWords: 4},
		{name: "wide bounds", minWords: 4, maxWords: 6},
		{name: "single word", minWords: 1, maxWords: 1},
		{name: "fixed count", minWords: 5, maxWords: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGenerator(t, WithWordCount(tc.minWords, tc.maxWords), WithSeed(99))
			for i := 0; i < 1000; i++ {
				title := g.Title()
				n := len(strings.Fields(title))
				if n < tc.minWords || n > tc.maxWords {
					t.Fatalf("Title() = %q has %d words, want within [%d, %d]", title, n, tc.minWords, tc.maxWords)
				}
				if strings.Contains(title, "  ") || title != strings.TrimSpace(title) {
					t.Fatalf("Title() = %q has stray spacing", title)
				}
			}
		})
	}
}

func TestTitleScripted(t *testing.T) {
	t.Run("no connector", func(t *testing.T) {
		// Word count draw, connector roll (50 misses the 10% chance), then
		// three words of 1, 2 and 3 syllables.
		src := &scriptSource{t: t, values: []int{1, 50, 0, 0, 1, 10, 146, 2, 46, 53, 126}}
		g := newTestGenerator(t, WithSource(src))

		if got, want := g.Title(), "a bekzum ijour"; got != want {
			t.Errorf("Title() = %q, want %q", got, want)
		}
		if src.pos != len(src.values) {
			t.Errorf("Title() consumed %d draws, want %d", src.pos, len(src.values))
		}
	})

	t.Run("connector replaces an interior word", func(t *testing.T) {
		// Four words, the roll of 5 fires the connector, slot draw lands on
		// position 2.
		src := &scriptSource{t: t, values: []int{2, 5, 1, 0, 0, 0, 10, 0, 146}}
		g := newTestGenerator(t, WithSource(src))

		if got, want := g.Title(), "a bek of zum"; got != want {
			t.Errorf("Title() = %q, want %q", got, want)
		}
	})
}

func TestTitleConnector(t *testing.T) {
	t.Run("always fires at full chance", func(t *testing.T) {
		g := newTestGenerator(t, WithWordCount(3, 5), WithConnectorChance(100), WithSeed(3))
		for i := 0; i < 200; i++ {
			fields := strings.Fields(g.Title())
			count := 0
			for pos, f := range fields {
				if f == Connector {
					count++
					if pos == 0 || pos == len(fields)-1 {
						t.Fatalf("connector at edge position %d in %q", pos, strings.Join(fields, " "))
					}
				}
			}
			if count != 1 {
				t.Fatalf("got %d connector words in %q, want exactly 1", count, strings.Join(fields, " "))
			}
		}
	})

	t.Run("never fires at zero chance", func(t *testing.T) {
		g := newTestGenerator(t, WithWordCount(3, 5), WithConnectorChance(0), WithSeed(3))
		for i := 0; i < 200; i++ {
			title := g.Title()
			for _, f := range strings.Fields(title) {
				if f == Connector {
					t.Fatalf("connector appeared with zero chance: %q", title)
				}
			}
		}
	})

	t.Run("never fires below three words", func(t *testing.T) {
		g := newTestGenerator(t, WithWordCount(2, 2), WithConnectorChance(100), WithSeed(3))
		for i := 0; i < 200; i++ {
			title := g.Title()
			for _, f := range strings.Fields(title) {
				if f == Connector {
					t.Fatalf("connector appeared in a two-word title: %q", title)
				}
			}
		}
	})
}

func TestTitleDeterministicWithSeed(t *testing.T) {
	first := newTestGenerator(t, WithSeed(42))
	second := newTestGenerator(t, WithSeed(42))

	for i := 0; i < 100; i++ {
		a, b := first.Title(), second.Title()
		if a != b {
			t.Fatalf("same seed diverged at title %d: %q vs %q", i, a, b)
		}
	}
}

func TestTitleSeedsDiffer(t *testing.T) {
	first := newTestGenerator(t, WithSeed(1))
	second := newTestGenerator(t, WithSeed(2))

	same := true
	for i := 0; i < 50; i++ {
		if first.Title() != second.Title() {
			same = false
			break
		}
	}
	if same {
		t.Error("50 titles identical across different seeds")
	}
}

func TestTitleVariety(t *testing.T) {
	g := newTestGenerator(t, WithSeed(8))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[g.Title()] = true
	}
	if len(seen) < 2 {
		t.Errorf("100 titles produced %d distinct values, want at least 2", len(seen))
	}
}

func TestKindScripted(t *testing.T) {
	testCases := []struct {
		draw int
		want string
	}{
		{draw: 0, want: "monster confusion"},
		{draw: 6, want: "monster confusion"},
		{draw: 7, want: "magic mapping"},
		{draw: 23, want: "identify potion"},
		{draw: 98, want: "protect armor"},
		{draw: 99, want: "protect armor"},
	}

	for _, tc := range testCases {
		src := &scriptSource{t: t, values: []int{tc.draw}}
		g := newTestGenerator(t, WithSource(src))
		if got := g.Kind(); got != tc.want {
			t.Errorf("Kind() with draw %d = %q, want %q", tc.draw, got, tc.want)
		}
	}
}

func TestKindDistribution(t *testing.T) {
	g := newTestGenerator(t, WithSeed(7))

	const draws = 10000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		counts[g.Kind()]++
	}

	total := DefaultKinds().TotalWeight()
	for _, e := range DefaultKinds().Entries() {
		expected := draws * e.Weight / total
		got := counts[e.Text]
		// Very loose band; a correct weighted pick stays well inside it.
		if got < expected/2 || got > expected*2 {
			t.Errorf("kind %q drawn %d times over %d draws, want near %d", e.Text, got, draws, expected)
		}
	}
	if len(counts) != DefaultKinds().Len() {
		t.Errorf("saw %d distinct kinds, want %d", len(counts), DefaultKinds().Len())
	}
}

func TestKindsAccessor(t *testing.T) {
	g := newTestGenerator(t, WithSeed(1))

	kinds := g.Kinds()
	if len(kinds) != 18 {
		t.Fatalf("Kinds() returned %d entries, want 18", len(kinds))
	}
	if kinds[0].Text != "monster confusion" || kinds[len(kinds)-1].Text != "protect armor" {
		t.Errorf("Kinds() order changed: first %q, last %q", kinds[0].Text, kinds[len(kinds)-1].Text)
	}
}

func BenchmarkWord(b *testing.B) {
	g, err := New(WithSeed(1))
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Word()
	}
}

func BenchmarkTitle(b *testing.B) {
	g, err := New(WithSeed(1))
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := g.Title()
		b.SetBytes(int64(len(s)))
	}
}
