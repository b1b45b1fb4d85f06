package generate

import "fmt"

// InvalidRangeError reports a number range that cannot support the
// requested distribution mode. It is fatal: no cards are generated.
type InvalidRangeError struct {
	Range  Range
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("number range %s: %s", e.Range, e.Reason)
}

// CardBuildError reports a card that could not be built from an already
// validated configuration. This is an internal invariant violation and
// should be unreachable in correct operation.
type CardBuildError struct {
	Reason string
}

func (e *CardBuildError) Error() string {
	return fmt.Sprintf("cannot build card: %s", e.Reason)
}
