package generate

import "fmt"

// Warning is an advisory condition that requires explicit confirmation
// before generation proceeds. Warnings carry enough data for a front
// end to render its own message.
type Warning interface {
	Message() string
}

// UnevenSegmentation reports a range that does not split evenly across
// the five columns in segmented mode.
type UnevenSegmentation struct {
	Range     Range
	Remainder int
	Sizes     [5]int
}

func (w UnevenSegmentation) Message() string {
	return fmt.Sprintf(
		"Number range %s does not split evenly across B/I/N/G/O columns %v. This is unusual for segmented bingo.",
		w.Range, w.Sizes,
	)
}
