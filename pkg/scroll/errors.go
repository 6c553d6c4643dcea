package scroll

import "errors"

var (
	// ErrInvalidBounds is returned by New when a minimum bound exceeds its
	// maximum or a bound is below one.
	ErrInvalidBounds = errors.New("invalid generation bounds")
	// ErrInvalidChance is returned by New when the connector chance falls
	// outside [0, 100].
	ErrInvalidChance = errors.New("invalid connector chance")
	// ErrEmptyTable is returned when a table is constructed with no entries
	// or a Generator is given a nil syllabary.
	ErrEmptyTable = errors.New("table has no entries")
	// ErrEmptyEntry is returned when a table entry has empty text.
	ErrEmptyEntry = errors.New("table entry text is empty")
	// ErrInvalidWeight is returned when a table entry has a weight below one.
	ErrInvalidWeight = errors.New("table entry weight must be positive")
	// ErrEntryTooLong is returned by New when a syllabary entry could never
	// fit inside a synthesized word.
	ErrEntryTooLong = errors.New("table entry exceeds maximum word length")
)
