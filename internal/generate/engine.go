package generate

import (
	"fmt"
	rand "math/rand/v2"
	"sort"

	"github.com/lox/bingosheets/internal/card"
	"github.com/lox/bingosheets/internal/randutil"
)

// Engine assigns numbers to the cells of a single card. The random
// source is injected so that a seeded run reproduces identical cards.
// The engine performs no I/O.
type Engine struct {
	cfg      Config
	segments [5]Range
	rng      *rand.Rand
}

// NewEngine creates an engine for one generation run
func NewEngine(cfg Config, rng *rand.Rand) *Engine {
	e := &Engine{cfg: cfg, rng: rng}
	if cfg.Mode == Segmented {
		e.segments = Segments(cfg.Range)
	}
	return e
}

// Deal produces the cell grid for one card, indexed [column][row].
// Each call samples independently from the run's random source.
func (e *Engine) Deal() ([5][card.Rows]int, error) {
	if e.cfg.Mode == Segmented {
		return e.dealSegmented()
	}
	return e.dealFullyRandom()
}

// dealSegmented draws each column from its own sub-range without
// replacement and places the values sorted ascending top-to-bottom.
// Disjoint segments make cross-column duplicates impossible.
func (e *Engine) dealSegmented() ([5][card.Rows]int, error) {
	var cells [5][card.Rows]int
	for i, col := range card.Columns() {
		need := e.cfg.columnNeed(col)
		seg := e.segments[i]
		values := randutil.Sample(e.rng, seg.Min, seg.Max, need)
		if len(values) != need {
			return cells, fmt.Errorf("column %s segment %s cannot supply %d values", col, seg, need)
		}
		sort.Ints(values)
		row := 0
		for _, v := range values {
			if e.cfg.FreeCenter && col == card.ColumnN && row == card.FreeRow {
				row++
			}
			cells[i][row] = v
			row++
		}
	}
	return cells, nil
}

// dealFullyRandom draws all cells from the master range without
// replacement and fills them row-major in random order, skipping the
// free center.
func (e *Engine) dealFullyRandom() ([5][card.Rows]int, error) {
	var cells [5][card.Rows]int
	need := e.cfg.CellsPerCard()
	values := randutil.Sample(e.rng, e.cfg.Range.Min, e.cfg.Range.Max, need)
	if len(values) != need {
		return cells, fmt.Errorf("range %s cannot supply %d values", e.cfg.Range, need)
	}
	i := 0
	for row := 0; row < card.Rows; row++ {
		for ci, col := range card.Columns() {
			if e.cfg.FreeCenter && col == card.ColumnN && row == card.FreeRow {
				continue
			}
			cells[ci][row] = values[i]
			i++
		}
	}
	return cells, nil
}
