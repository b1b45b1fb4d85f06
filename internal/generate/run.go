package generate

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/bingosheets/internal/colorscheme"
	"github.com/lox/bingosheets/internal/confirm"
	"github.com/lox/bingosheets/internal/layout"
	"github.com/lox/bingosheets/internal/randutil"
)

// RunConfig carries everything a full generation run needs
type RunConfig struct {
	Distribution Config
	Paper        layout.PaperSize
	Colors       colorscheme.Config
	// Seed pins the random source for reproducible output. Nil draws a
	// fresh seed from the clock.
	Seed *int64
}

// Result is the output of a completed or aborted run
type Result struct {
	// Seed is the seed actually used, for replaying a run.
	Seed     int64
	Pages    []layout.Page
	Warnings []Warning
	// Aborted is set when the gate declined; no pages exist then.
	Aborted bool
}

// Run executes the whole pipeline: resolve colors, validate the range,
// check the page fit, pass warnings through the gate, build the cards
// and plan them onto pages. Once any error is returned no pages exist.
//
// Color resolution happens before validation on purpose: random letter
// colors consume the run's random source first, and a seeded run must
// reproduce the same draw order every time.
func Run(rc RunConfig, gate *confirm.Gate, logger *log.Logger) (*Result, error) {
	seed := time.Now().UnixNano()
	if rc.Seed != nil {
		seed = *rc.Seed
	}
	rng := randutil.New(seed)
	logger.Debug("starting run",
		"mode", rc.Distribution.Mode,
		"range", rc.Distribution.Range,
		"sheets", rc.Distribution.Sheets,
		"sheets_per_page", rc.Distribution.SheetsPerPage,
		"paper", rc.Paper.Name,
		"seed", seed,
	)

	colors, err := colorscheme.Resolve(rc.Colors, rng)
	if err != nil {
		return nil, err
	}

	warnings, err := Validate(rc.Distribution)
	if err != nil {
		return nil, err
	}
	if w := layout.CheckFit(rc.Distribution.Sheets, rc.Distribution.SheetsPerPage); w != nil {
		warnings = append(warnings, w)
	}

	gateWarnings := make([]confirm.Warning, len(warnings))
	for i, w := range warnings {
		gateWarnings[i] = w
	}
	ok, err := gate.Confirm(gateWarnings)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Info("run aborted at confirmation, nothing generated")
		return &Result{Seed: seed, Warnings: warnings, Aborted: true}, nil
	}

	factory := NewFactory(rc.Distribution, rng)
	sheets := make([]layout.Sheet, 0, rc.Distribution.Sheets)
	for i := 0; i < rc.Distribution.Sheets; i++ {
		c, err := factory.Build()
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, layout.Sheet{
			Card:     c,
			Colors:   colors,
			FreeText: rc.Distribution.FreeCenterText,
		})
	}

	pages, _ := layout.Plan(sheets, rc.Distribution.SheetsPerPage, rc.Paper)
	logger.Debug("run complete", "cards", len(sheets), "pages", len(pages))
	return &Result{Seed: seed, Pages: pages, Warnings: warnings}, nil
}
