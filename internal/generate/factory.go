package generate

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/bingosheets/internal/card"
)

// Factory builds cards from an Engine, enforcing intra-card uniqueness.
// The configuration must have passed Validate before cards are built;
// the uniqueness check here is purely defensive.
type Factory struct {
	cfg    Config
	engine *Engine
}

// NewFactory creates a factory for one generation run
func NewFactory(cfg Config, rng *rand.Rand) *Factory {
	return &Factory{cfg: cfg, engine: NewEngine(cfg, rng)}
}

// Build produces one card. Calling it Sheets times yields the full set,
// each independently sampled.
func (f *Factory) Build() (*card.Card, error) {
	cells, err := f.engine.Deal()
	if err != nil {
		return nil, &CardBuildError{Reason: err.Error()}
	}
	seen := make(map[int]struct{}, f.cfg.CellsPerCard())
	for ci, col := range card.Columns() {
		for row := 0; row < card.Rows; row++ {
			if f.cfg.FreeCenter && col == card.ColumnN && row == card.FreeRow {
				continue
			}
			v := cells[ci][row]
			if !f.cfg.Range.Contains(v) {
				return nil, &CardBuildError{Reason: fmt.Sprintf("value %d at (%s,%d) outside range %s", v, col, row, f.cfg.Range)}
			}
			if _, dup := seen[v]; dup {
				return nil, &CardBuildError{Reason: fmt.Sprintf("duplicate value %d at (%s,%d)", v, col, row)}
			}
			seen[v] = struct{}{}
		}
	}
	return card.New(cells, f.cfg.FreeCenter), nil
}
