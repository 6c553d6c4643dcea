package scroll

import "fmt"

// Entry is a single weighted string in a Table.
type Entry struct {
	Text   string
	Weight int
}

// Table is an immutable weighted collection of strings. It drives every
// random draw the package makes: the syllabary that words are built from
// and the scroll-kind table both use it. A Table is built once, validated,
// and never mutated afterwards, so it is safe to share between goroutines.
type Table struct {
	entries []Entry
	total   int
}

// NewTable builds a Table from weighted entries. Every entry must have
// non-empty text and a weight of at least one; the entry slice is copied,
// so later changes to it do not affect the Table.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}
	t := &Table{entries: make([]Entry, len(entries))}
	copy(t.entries, entries)
	for i, e := range t.entries {
		if e.Text == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyEntry, i)
		}
		if e.Weight < 1 {
			return nil, fmt.Errorf("%w: entry %q has weight %d", ErrInvalidWeight, e.Text, e.Weight)
		}
		t.total += e.Weight
	}
	return t, nil
}

// NewUniformTable builds a Table in which every string has weight one.
func NewUniformTable(texts []string) (*Table, error) {
	entries := make([]Entry, len(texts))
	for i, s := range texts {
		entries[i] = Entry{Text: s, Weight: 1}
	}
	return NewTable(entries)
}

// Pick draws one entry text from the table, with probability proportional
// to entry weight.
func (t *Table) Pick(src Source) string {
	r := src.IntN(t.total)
	for _, e := range t.entries {
		r -= e.Weight
		if r < 0 {
			return e.Text
		}
	}
	// Unreachable: the weights sum to total.
	return t.entries[len(t.entries)-1].Text
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// TotalWeight returns the sum of all entry weights.
func (t *Table) TotalWeight() int {
	return t.total
}

// Entries returns a copy of the table contents in their original order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
