package generate

import "fmt"

// Mode selects how numbers are distributed across the BINGO columns.
type Mode string

const (
	// Segmented maps each column to its own contiguous slice of the
	// master range, classic bingo style.
	Segmented Mode = "segmented"
	// FullyRandom lets any number in the master range appear in any
	// column.
	FullyRandom Mode = "fully-random"
)

// ParseMode parses a distribution mode name
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Segmented, FullyRandom:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid distribution %q, expected %q or %q", s, Segmented, FullyRandom)
	}
}

// Range is an inclusive run of integers
type Range struct {
	Min int
	Max int
}

// Size returns the number of values in the range
func (r Range) Size() int {
	return r.Max - r.Min + 1
}

// Contains reports whether n lies within the range
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Segments splits r into five contiguous, non-overlapping sub-ranges in
// B,I,N,G,O order. Each segment gets floor(size/5) values; when the
// split is uneven the earliest columns each take one extra value. The
// surplus-to-earliest rule is user visible, so it must not change.
func Segments(r Range) [5]Range {
	base := r.Size() / 5
	remainder := r.Size() % 5
	var segments [5]Range
	lo := r.Min
	for i := range segments {
		size := base
		if i < remainder {
			size++
		}
		segments[i] = Range{Min: lo, Max: lo + size - 1}
		lo += size
	}
	return segments
}
