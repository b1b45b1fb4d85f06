package generate

import (
	"fmt"

	"github.com/lox/bingosheets/internal/card"
)

// Validate checks cfg against the selected distribution mode. It runs
// once per generation run, not per card. The returned warnings are
// advisory and need confirmation; a non-nil error means the
// configuration cannot produce cards at all.
//
// Validate is pure: calling it twice on the same config yields the same
// warnings and error.
func Validate(cfg Config) ([]Warning, error) {
	if cfg.Sheets <= 0 {
		return nil, fmt.Errorf("sheets must be greater than 0, got %d", cfg.Sheets)
	}
	if cfg.SheetsPerPage <= 0 {
		return nil, fmt.Errorf("sheets per page must be greater than 0, got %d", cfg.SheetsPerPage)
	}
	if cfg.Range.Max < cfg.Range.Min {
		return nil, &InvalidRangeError{Range: cfg.Range, Reason: "maximum must be >= minimum"}
	}

	switch cfg.Mode {
	case FullyRandom:
		if need := cfg.CellsPerCard(); cfg.Range.Size() < need {
			return nil, &InvalidRangeError{
				Range:  cfg.Range,
				Reason: fmt.Sprintf("must include at least %d values for a 5x5 card, got %d", need, cfg.Range.Size()),
			}
		}
		return nil, nil

	case Segmented:
		segments := Segments(cfg.Range)
		for i, col := range card.Columns() {
			need := cfg.columnNeed(col)
			if got := segments[i].Size(); got < need {
				return nil, &InvalidRangeError{
					Range:  cfg.Range,
					Reason: fmt.Sprintf("not enough numbers in column %s segment: need %d, got %d", col, need, got),
				}
			}
		}
		var warnings []Warning
		if remainder := cfg.Range.Size() % 5; remainder != 0 {
			var sizes [5]int
			for i := range segments {
				sizes[i] = segments[i].Size()
			}
			warnings = append(warnings, UnevenSegmentation{
				Range:     cfg.Range,
				Remainder: remainder,
				Sizes:     sizes,
			})
		}
		return warnings, nil

	default:
		return nil, fmt.Errorf("unknown distribution mode %q", cfg.Mode)
	}
}
