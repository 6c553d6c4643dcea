package scroll

import "testing"

// scriptSource replays a fixed sequence of draw values so tests can pin
// the exact path a generation takes.
type scriptSource struct {
	t      *testing.T
	values []int
	pos    int
}

func (s *scriptSource) IntN(n int) int {
	s.t.Helper()
	if s.pos >= len(s.values) {
		s.t.Fatalf("script exhausted after %d draws, next call IntN(%d)", s.pos, n)
	}
	v := s.values[s.pos]
	s.pos++
	if v < 0 || v >= n {
		s.t.Fatalf("scripted value %d out of range for IntN(%d) at draw %d", v, n, s.pos)
	}
	return v
}

// zeroSource always draws zero: minimum counts, first table entry.
type zeroSource struct{}

func (zeroSource) IntN(int) int { return 0 }

// countingSource wraps a Source and counts how many draws pass through.
type countingSource struct {
	src   Source
	calls int
}

func (c *countingSource) IntN(n int) int {
	c.calls++
	return c.src.IntN(n)
}

// newTestGenerator builds a Generator and fails the test on error.
func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	g, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}
